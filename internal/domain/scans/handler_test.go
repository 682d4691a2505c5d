package scans

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/pranay7979/BrainyCheck/internal/platform/auth"
	"github.com/pranay7979/BrainyCheck/internal/platform/predict"
)

type stubResolver struct {
	role auth.Role
	err  error
}

func (s stubResolver) ResolveRole(_ context.Context, _ uuid.UUID) (auth.Role, error) {
	return s.role, s.err
}

func multipartBody(t *testing.T, fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if withImage {
		fw, err := w.CreateFormFile("image", "scan.png")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		if _, err := fw.Write([]byte("fake-mri-bytes")); err != nil {
			t.Fatalf("write image: %v", err)
		}
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("field %s: %v", k, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func doPredict(t *testing.T, h *Handler, principal uuid.UUID, fields map[string]string, withImage bool) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartBody(t, fields, withImage)
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/predict", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	if principal != uuid.Nil {
		req = req.WithContext(auth.WithPrincipal(req.Context(), principal))
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Predict(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

var validFields = map[string]string{
	"patientName": "Asha",
	"age":         "54",
	"diseaseType": "Tumor",
}

func TestPredictHandler(t *testing.T) {
	repo := newMockRepo()
	p := &mockPredictor{result: &predict.Result{DetectionResult: "Positive", Subclass: "glioma", Confidence: 0.88}}
	h := NewHandler(NewService(repo, p), stubResolver{role: auth.RoleUser})
	principal := uuid.New()

	rec := doPredict(t, h, principal, validFields, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var event ScanEvent
	if err := json.Unmarshal(rec.Body.Bytes(), &event); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if event.UploadedBy != principal {
		t.Errorf("uploaded_by = %s, want %s", event.UploadedBy, principal)
	}
}

func TestPredictHandlerRequiresPrincipal(t *testing.T) {
	h := NewHandler(NewService(newMockRepo(), &mockPredictor{}), stubResolver{role: auth.RoleUser})
	rec := doPredict(t, h, uuid.Nil, validFields, true)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestPredictHandlerMissingImage(t *testing.T) {
	h := NewHandler(NewService(newMockRepo(), &mockPredictor{}), stubResolver{role: auth.RoleUser})
	rec := doPredict(t, h, uuid.New(), validFields, false)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestPredictHandlerUpstreamFailure(t *testing.T) {
	p := &mockPredictor{err: predict.ErrServiceFailure}
	h := NewHandler(NewService(newMockRepo(), p), stubResolver{role: auth.RoleUser})
	rec := doPredict(t, h, uuid.New(), validFields, true)
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}

func TestListHandlerScopesByRole(t *testing.T) {
	repo := newMockRepo()
	me := uuid.New()
	other := uuid.New()
	for _, uploader := range []uuid.UUID{me, other} {
		id := uuid.New()
		repo.events[id] = &ScanEvent{ID: id, UploadedBy: uploader}
	}
	h := NewHandler(NewService(repo, &mockPredictor{}), stubResolver{role: auth.RoleUser})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/scans", nil)
	req = req.WithContext(auth.WithPrincipal(req.Context(), me))
	rec := httptest.NewRecorder()
	if err := h.List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	var events []*ScanEvent
	if err := json.Unmarshal(rec.Body.Bytes(), &events); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("len = %d, want 1", len(events))
	}
}
