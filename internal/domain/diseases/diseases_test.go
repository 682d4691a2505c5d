package diseases

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestCatalog(t *testing.T) {
	infos := Catalog()
	if len(infos) != 5 {
		t.Fatalf("len = %d, want 5", len(infos))
	}
	for _, info := range infos {
		if info.Name == "" || info.Summary == "" {
			t.Errorf("incomplete entry: %+v", info)
		}
		if len(info.Symptoms) == 0 || len(info.Precautions) == 0 {
			t.Errorf("%s: missing symptoms or precautions", info.Name)
		}
	}
}

func TestListHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/diseases", nil)
	rec := httptest.NewRecorder()
	if err := NewHandler().List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var infos []Info
	if err := json.Unmarshal(rec.Body.Bytes(), &infos); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(infos) != len(Catalog()) {
		t.Errorf("len = %d, want %d", len(infos), len(Catalog()))
	}
}
