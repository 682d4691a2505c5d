package appointments

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
)

// Appointment references the patient by the human-assigned business key the
// receptionist typed on the form, and the doctor by storage id.
type Appointment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	PatientID string    `db:"patient_id" json:"patient_id"`
	DoctorID  uuid.UUID `db:"doctor_id" json:"doctor_id"`
	Date      string    `db:"date" json:"date"`
	Time      string    `db:"time" json:"time"`
	Notes     *string   `db:"notes" json:"notes,omitempty"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// EnrichedAppointment is an appointment joined with the matching patient
// record, or the sentinel values when the business key matches nothing.
type EnrichedAppointment struct {
	Appointment
	PatientName    string `json:"patient_name"`
	PatientContact string `json:"patient_contact"`
}

// Sentinel values for appointments whose business key has no patient record.
const (
	UnknownPatientName    = "Unknown Patient"
	UnknownPatientContact = "N/A"
)
