package appointments

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/pranay7979/BrainyCheck/internal/domain/patients"
)

var (
	ErrNotFound    = errors.New("appointment not found")
	ErrNotAssigned = errors.New("appointment belongs to another doctor")
	ErrNotPending  = errors.New("appointment is not scheduled")
)

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Appointment, error)
	// MarkCompleted transitions a scheduled appointment to completed.
	// Returns ErrNotPending if the row exists but is no longer scheduled.
	MarkCompleted(ctx context.Context, id uuid.UUID) error
}

// PatientDirectory is the slice of the patient registry the matcher needs.
// Satisfied by *patients.Service.
type PatientDirectory interface {
	ListByPatientIDs(ctx context.Context, ids []string) ([]*patients.PatientRecord, error)
}
