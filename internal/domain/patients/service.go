package patients

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	records Repository
}

func NewService(records Repository) *Service {
	return &Service{records: records}
}

func validate(p *PatientRecord) error {
	if p.PatientID == "" {
		return fmt.Errorf("patient_id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Age <= 0 {
		return fmt.Errorf("age must be positive")
	}
	if p.Gender == "" {
		return fmt.Errorf("gender is required")
	}
	if p.Contact == "" {
		return fmt.Errorf("contact is required")
	}
	return nil
}

// CreateRecord validates and stores a new patient record. Validation runs
// before any write is attempted.
func (s *Service) CreateRecord(ctx context.Context, p *PatientRecord) error {
	if err := validate(p); err != nil {
		return err
	}
	return s.records.Create(ctx, p)
}

func (s *Service) GetRecord(ctx context.Context, id uuid.UUID) (*PatientRecord, error) {
	return s.records.GetByID(ctx, id)
}

func (s *Service) ListRecords(ctx context.Context, limit, offset int) ([]*PatientRecord, int, error) {
	return s.records.List(ctx, limit, offset)
}

func (s *Service) ListByPatientIDs(ctx context.Context, ids []string) ([]*PatientRecord, error) {
	return s.records.ListByPatientIDs(ctx, ids)
}

func (s *Service) UpdateRecord(ctx context.Context, p *PatientRecord) error {
	if p.ID == uuid.Nil {
		return fmt.Errorf("id is required")
	}
	if err := validate(p); err != nil {
		return err
	}
	return s.records.Update(ctx, p)
}

func (s *Service) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	return s.records.Delete(ctx, id)
}
