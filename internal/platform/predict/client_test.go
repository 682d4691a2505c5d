package predict

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_Predict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/predict" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("patientName"); got != "Alice" {
			t.Errorf("expected patientName Alice, got %q", got)
		}
		if got := r.FormValue("age"); got != "62" {
			t.Errorf("expected age 62, got %q", got)
		}
		if got := r.FormValue("diseaseType"); got != "Tumor" {
			t.Errorf("expected diseaseType Tumor, got %q", got)
		}
		if _, _, err := r.FormFile("image"); err != nil {
			t.Errorf("expected image file: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"detectionResult":"Tumor Detected","subclass":"glioma","confidence":97.4}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	result, err := client.Predict(context.Background(), Request{
		Image:       strings.NewReader("fake image bytes"),
		Filename:    "scan.png",
		PatientName: "Alice",
		Age:         62,
		DiseaseType: DiseaseTumor,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.DetectionResult != "Tumor Detected" {
		t.Errorf("unexpected detection result %q", result.DetectionResult)
	}
	if result.Subclass != "glioma" {
		t.Errorf("unexpected subclass %q", result.Subclass)
	}
	if result.Confidence != 97.4 {
		t.Errorf("unexpected confidence %v", result.Confidence)
	}
}

func TestClient_Predict_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"model not loaded"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	_, err := client.Predict(context.Background(), Request{
		Image: strings.NewReader("x"), Filename: "scan.png",
		PatientName: "Bob", Age: 40, DiseaseType: DiseaseAlzheimer,
	})
	if !errors.Is(err, ErrServiceFailure) {
		t.Errorf("expected ErrServiceFailure, got %v", err)
	}
}

func TestClient_Predict_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	_, err := client.Predict(context.Background(), Request{
		Image: strings.NewReader("x"), Filename: "scan.png",
		PatientName: "Bob", Age: 40, DiseaseType: DiseaseAlzheimer,
	})
	if !errors.Is(err, ErrServiceFailure) {
		t.Errorf("expected ErrServiceFailure, got %v", err)
	}
}

func TestClient_Predict_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // server already stopped

	client := NewClient(srv.URL, nil)
	_, err := client.Predict(context.Background(), Request{
		Image: strings.NewReader("x"), Filename: "scan.png",
		PatientName: "Bob", Age: 40, DiseaseType: DiseaseTumor,
	})
	if !errors.Is(err, ErrServiceFailure) {
		t.Errorf("expected ErrServiceFailure, got %v", err)
	}
}

func TestParseDiseaseType(t *testing.T) {
	if _, ok := ParseDiseaseType("Alzheimer"); !ok {
		t.Error("expected Alzheimer to parse")
	}
	if _, ok := ParseDiseaseType("Tumor"); !ok {
		t.Error("expected Tumor to parse")
	}
	for _, s := range []string{"", "tumor", "Parkinson"} {
		if _, ok := ParseDiseaseType(s); ok {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}
