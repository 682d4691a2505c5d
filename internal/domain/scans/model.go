package scans

import (
	"time"

	"github.com/google/uuid"
)

// ScanEvent records one completed prediction. Events are written exactly once
// and never updated; UploadedBy is the storage id of the uploading account.
type ScanEvent struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Age         int       `db:"age" json:"age"`
	DiseaseType string    `db:"disease_type" json:"disease_type"`
	Result      string    `db:"result" json:"result"`
	Subclass    string    `db:"subclass" json:"subclass"`
	Confidence  float64   `db:"confidence" json:"confidence"`
	UploadedBy  uuid.UUID `db:"uploaded_by" json:"uploaded_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
