package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func csrfTestKey() []byte {
	return []byte("0123456789abcdef0123456789abcdef")
}

func TestDefaultCSRFConfig(t *testing.T) {
	dev := DefaultCSRFConfig(csrfTestKey(), true)
	if len(dev.AuthKey) != 32 {
		t.Errorf("dev AuthKey length = %d, want 32", len(dev.AuthKey))
	}
	if len(dev.TrustedOrigins) == 0 {
		t.Error("dev config should trust localhost origins")
	}
	for _, origin := range dev.TrustedOrigins {
		// The csrf library expects host:port values, not full URLs.
		if len(origin) > 4 && origin[:4] == "http" {
			t.Errorf("trusted origin %q should be host:port, not a URL", origin)
		}
	}

	prod := DefaultCSRFConfig(csrfTestKey(), false)
	if len(prod.TrustedOrigins) != 0 {
		t.Errorf("prod config trusts %d origins, want 0", len(prod.TrustedOrigins))
	}
}

func TestCSRF_RejectsCrossSitePost(t *testing.T) {
	handler := CSRF(DefaultCSRFConfig(csrfTestKey(), false))(okHandler())

	req := httptest.NewRequest(http.MethodPost, "https://example.com/api/login", nil)
	req.Header.Set("Sec-Fetch-Site", "cross-site")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("cross-site POST status = %d, want 403", rec.Code)
	}
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding 403 body: %v", err)
	}
	if body.Error.Code != "forbidden" {
		t.Errorf("error code = %q, want forbidden", body.Error.Code)
	}
}

func TestCSRF_AllowsSameOriginAndSafeMethods(t *testing.T) {
	handler := CSRF(DefaultCSRFConfig(csrfTestKey(), false))(okHandler())

	// Same-origin browser POST.
	req := httptest.NewRequest(http.MethodPost, "https://example.com/api/login", nil)
	req.Header.Set("Sec-Fetch-Site", "same-origin")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("same-origin POST status = %d, want 200", rec.Code)
	}

	// Safe methods pass regardless of origin.
	req = httptest.NewRequest(http.MethodGet, "https://example.com/api/user", nil)
	req.Header.Set("Sec-Fetch-Site", "cross-site")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("cross-site GET status = %d, want 200", rec.Code)
	}

	// Requests without Fetch metadata or Origin (curl, server-to-server)
	// cannot be classified and are let through.
	req = httptest.NewRequest(http.MethodPost, "https://example.com/api/login", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("headerless POST status = %d, want 200", rec.Code)
	}
}

func TestCSRF_TrustedOriginBypass(t *testing.T) {
	cfg := CSRFConfig{
		AuthKey:        csrfTestKey(),
		TrustedOrigins: []string{"app.example.com"},
	}
	handler := CSRF(cfg)(okHandler())

	req := httptest.NewRequest(http.MethodPost, "https://api.example.com/api/login", nil)
	req.Header.Set("Sec-Fetch-Site", "cross-site")
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("trusted-origin POST status = %d, want 200", rec.Code)
	}
}
