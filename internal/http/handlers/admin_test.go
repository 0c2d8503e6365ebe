package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"games-catalog-service/internal/domain"
)

type staticReader []domain.Game

func (s staticReader) Read() []domain.Game { return s }

func TestAdminExportWritesCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export", "games.json")
	admin := NewAdminHandler(staticReader{{ID: "1"}, {ID: "2"}}, path, "secret", nil)

	req := httptest.NewRequest("POST", "/admin/export", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	admin.Export(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	payload := decodeBody(t, rec)
	if payload["count"].(float64) != 2 {
		t.Fatalf("unexpected count: %v", payload)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("export file missing: %v", err)
	}
}

func TestAdminExportRejectsBadToken(t *testing.T) {
	admin := NewAdminHandler(staticReader{}, "/tmp/x.json", "secret", nil)

	req := httptest.NewRequest("POST", "/admin/export", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec := httptest.NewRecorder()
	admin.Export(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminExportRejectsWhenNoTokenConfigured(t *testing.T) {
	admin := NewAdminHandler(staticReader{}, "/tmp/x.json", "", nil)

	req := httptest.NewRequest("POST", "/admin/export", nil)
	rec := httptest.NewRecorder()
	admin.Export(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminExportMethodNotAllowed(t *testing.T) {
	admin := NewAdminHandler(staticReader{}, "/tmp/x.json", "secret", nil)

	req := httptest.NewRequest("GET", "/admin/export", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	admin.Export(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}
