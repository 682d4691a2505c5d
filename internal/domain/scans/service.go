package scans

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/pranay7979/BrainyCheck/internal/platform/auth"
	"github.com/pranay7979/BrainyCheck/internal/platform/predict"
)

// Predictor is the external prediction endpoint the service forwards images
// to. Satisfied by *predict.Client.
type Predictor interface {
	Predict(ctx context.Context, req predict.Request) (*predict.Result, error)
}

type PredictInput struct {
	Image       io.Reader
	Filename    string
	PatientName string
	Age         int
	DiseaseType string
}

type Service struct {
	events    Repository
	predictor Predictor
}

func NewService(events Repository, predictor Predictor) *Service {
	return &Service{events: events, predictor: predictor}
}

// Predict validates the submission, forwards the image to the prediction
// endpoint once, and records the outcome as an immutable scan event owned by
// the uploader. Validation failures never reach the external service.
func (s *Service) Predict(ctx context.Context, uploader uuid.UUID, in PredictInput) (*ScanEvent, error) {
	if uploader == uuid.Nil {
		return nil, fmt.Errorf("uploader is required")
	}
	if in.Image == nil {
		return nil, fmt.Errorf("image is required")
	}
	if in.PatientName == "" {
		return nil, fmt.Errorf("patientName is required")
	}
	if in.Age <= 0 {
		return nil, fmt.Errorf("age must be positive")
	}
	diseaseType, ok := predict.ParseDiseaseType(in.DiseaseType)
	if !ok {
		return nil, fmt.Errorf("invalid diseaseType: %s", in.DiseaseType)
	}

	result, err := s.predictor.Predict(ctx, predict.Request{
		Image:       in.Image,
		Filename:    in.Filename,
		PatientName: in.PatientName,
		Age:         in.Age,
		DiseaseType: diseaseType,
	})
	if err != nil {
		return nil, err
	}

	event := &ScanEvent{
		Name:        in.PatientName,
		Age:         in.Age,
		DiseaseType: string(diseaseType),
		Result:      result.DetectionResult,
		Subclass:    result.Subclass,
		Confidence:  result.Confidence,
		UploadedBy:  uploader,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// ListFor returns the scan history visible to a requester: doctors see every
// event, all other roles only their own uploads.
func (s *Service) ListFor(ctx context.Context, requester uuid.UUID, role auth.Role) ([]*ScanEvent, error) {
	if role == auth.RoleDoctor {
		return s.events.ListAll(ctx)
	}
	return s.events.ListByUploader(ctx, requester)
}

// ListScans returns every event regardless of uploader, for administrative
// aggregation.
func (s *Service) ListScans(ctx context.Context) ([]*ScanEvent, error) {
	return s.events.ListAll(ctx)
}
