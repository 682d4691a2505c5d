package patients

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("patient not found")

type Repository interface {
	Create(ctx context.Context, p *PatientRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*PatientRecord, error)
	List(ctx context.Context, limit, offset int) ([]*PatientRecord, int, error)
	// ListByPatientIDs returns the records whose business key is in ids.
	// Duplicate keys yield whichever row the store returns last.
	ListByPatientIDs(ctx context.Context, ids []string) ([]*PatientRecord, error)
	Update(ctx context.Context, p *PatientRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
}
