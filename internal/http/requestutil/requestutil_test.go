package requestutil

import (
	"net/http/httptest"
	"testing"
)

func TestSanitizeRequestIDKeepsValid(t *testing.T) {
	if got := SanitizeRequestID("abc-123_XYZ"); got != "abc-123_XYZ" {
		t.Fatalf("valid id replaced: %q", got)
	}
}

func TestSanitizeRequestIDRejectsInvalid(t *testing.T) {
	for _, bad := range []string{"", "has space", "slash/y", "<script>"} {
		got := SanitizeRequestID(bad)
		if got == bad || got == "" {
			t.Fatalf("invalid id %q not replaced: %q", bad, got)
		}
	}
}

func TestNewRequestIDNonEmptyAndUnique(t *testing.T) {
	a, b := NewRequestID(), NewRequestID()
	if a == "" || b == "" || a == b {
		t.Fatalf("expected distinct non-empty ids, got %q / %q", a, b)
	}
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")

	if got := ClientIP(r); got != "203.0.113.9" {
		t.Fatalf("unexpected client ip: %q", got)
	}
}

func TestClientIPFallsBackToRemoteAddr(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:1234"

	if got := ClientIP(r); got != "10.0.0.1:1234" {
		t.Fatalf("unexpected client ip: %q", got)
	}
}

func TestClientIPNilRequest(t *testing.T) {
	if got := ClientIP(nil); got != "" {
		t.Fatalf("expected empty for nil request, got %q", got)
	}
}
