package patients

import (
	"time"

	"github.com/google/uuid"
)

// PatientRecord maps to the patients table. PatientID is the human-assigned
// business key used on appointment forms; it is distinct from the storage id
// and not unique by construction.
type PatientRecord struct {
	ID               uuid.UUID `db:"id" json:"id"`
	PatientID        string    `db:"patient_id" json:"patient_id"`
	Name             string    `db:"name" json:"name"`
	Age              int       `db:"age" json:"age"`
	Gender           string    `db:"gender" json:"gender"`
	Contact          string    `db:"contact" json:"contact"`
	Address          *string   `db:"address" json:"address,omitempty"`
	MedicalCondition *string   `db:"medical_condition" json:"medical_condition,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}
