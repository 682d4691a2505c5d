package appointments

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pranay7979/BrainyCheck/internal/domain/patients"
)

// inListLimit caps the number of business keys per directory lookup; larger
// key sets are resolved in successive chunks.
const inListLimit = 10

type Service struct {
	appts     Repository
	directory PatientDirectory
}

func NewService(appts Repository, directory PatientDirectory) *Service {
	return &Service{appts: appts, directory: directory}
}

// Create books an appointment. Status defaults to scheduled; the referenced
// business key is not checked against the registry here — an unmatched key
// surfaces as the sentinel patient on the doctor's list instead.
func (s *Service) Create(ctx context.Context, a *Appointment) error {
	if a.PatientID == "" {
		return fmt.Errorf("patient_id is required")
	}
	if a.DoctorID == uuid.Nil {
		return fmt.Errorf("doctor_id is required")
	}
	if a.Date == "" {
		return fmt.Errorf("date is required")
	}
	if a.Time == "" {
		return fmt.Errorf("time is required")
	}
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	if a.Status != StatusScheduled && a.Status != StatusCompleted {
		return fmt.Errorf("invalid status: %s", a.Status)
	}
	return s.appts.Create(ctx, a)
}

// LoadDoctorAppointments returns the doctor's open appointments joined with
// patient records. Distinct business keys are resolved through the directory
// in chunks, unmatched keys get the sentinel patient, and completed
// appointments are dropped from the result.
func (s *Service) LoadDoctorAppointments(ctx context.Context, doctorID uuid.UUID) ([]*EnrichedAppointment, error) {
	appts, err := s.appts.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	keys := distinctKeys(appts)
	byKey, err := s.resolveKeys(ctx, keys)
	if err != nil {
		return nil, err
	}

	enriched := make([]*EnrichedAppointment, 0, len(appts))
	for _, a := range appts {
		if a.Status == StatusCompleted {
			continue
		}
		e := &EnrichedAppointment{
			Appointment:    *a,
			PatientName:    UnknownPatientName,
			PatientContact: UnknownPatientContact,
		}
		if p, ok := byKey[a.PatientID]; ok {
			e.PatientName = p.Name
			e.PatientContact = p.Contact
		}
		enriched = append(enriched, e)
	}
	return enriched, nil
}

// Complete marks an appointment completed. Only the assigned doctor may do
// so, and only from the scheduled state; the transition is one-way.
func (s *Service) Complete(ctx context.Context, id, doctorID uuid.UUID) error {
	a, err := s.appts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a.DoctorID != doctorID {
		return ErrNotAssigned
	}
	if a.Status != StatusScheduled {
		return ErrNotPending
	}
	return s.appts.MarkCompleted(ctx, id)
}

func distinctKeys(appts []*Appointment) []string {
	seen := make(map[string]bool, len(appts))
	var keys []string
	for _, a := range appts {
		if a.PatientID == "" || seen[a.PatientID] {
			continue
		}
		seen[a.PatientID] = true
		keys = append(keys, a.PatientID)
	}
	return keys
}

func (s *Service) resolveKeys(ctx context.Context, keys []string) (map[string]*patients.PatientRecord, error) {
	byKey := make(map[string]*patients.PatientRecord, len(keys))
	for start := 0; start < len(keys); start += inListLimit {
		end := start + inListLimit
		if end > len(keys) {
			end = len(keys)
		}
		records, err := s.directory.ListByPatientIDs(ctx, keys[start:end])
		if err != nil {
			return nil, err
		}
		for _, p := range records {
			byKey[p.PatientID] = p
		}
	}
	return byKey, nil
}
