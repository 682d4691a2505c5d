package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
)

// ErrServiceFailure is the opaque failure surfaced for any unusable response
// from the prediction endpoint: transport error, non-2xx status, or a body
// that is not the expected JSON. Callers report it to the user as-is and do
// not retry.
var ErrServiceFailure = errors.New("prediction service failure")

// DiseaseType is the model selector sent to the prediction endpoint.
type DiseaseType string

const (
	DiseaseAlzheimer DiseaseType = "Alzheimer"
	DiseaseTumor     DiseaseType = "Tumor"
)

// ParseDiseaseType validates the disease type field of a prediction request.
func ParseDiseaseType(s string) (DiseaseType, bool) {
	switch DiseaseType(s) {
	case DiseaseAlzheimer, DiseaseTumor:
		return DiseaseType(s), true
	}
	return "", false
}

// Result is the prediction endpoint's response payload.
type Result struct {
	DetectionResult string  `json:"detectionResult"`
	Subclass        string  `json:"subclass"`
	Confidence      float64 `json:"confidence"`
}

// Request carries the fields of one prediction call.
type Request struct {
	Image       io.Reader
	Filename    string
	PatientName string
	Age         int
	DiseaseType DiseaseType
}

// Client calls the externally hosted image-classification endpoint. One
// multipart POST per prediction; no retries, no streaming.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(baseURL string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpc: httpc}
}

// Predict submits the scan image and patient fields and returns the model's
// result. Cancellation and deadlines come from ctx.
func (c *Client) Predict(ctx context.Context, req Request) (*Result, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("image", req.Filename)
	if err != nil {
		return nil, fmt.Errorf("build multipart request: %w", err)
	}
	if _, err := io.Copy(part, req.Image); err != nil {
		return nil, fmt.Errorf("copy image into request: %w", err)
	}
	mw.WriteField("patientName", req.PatientName)
	mw.WriteField("age", strconv.Itoa(req.Age))
	mw.WriteField("diseaseType", string(req.DiseaseType))
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", &body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrServiceFailure, resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: malformed response", ErrServiceFailure)
	}

	return &result, nil
}
