package httputil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClientTimeout(t *testing.T) {
	if got := NewClient(0).Timeout; got != DefaultTimeout {
		t.Errorf("zero timeout = %v, want %v", got, DefaultTimeout)
	}
	if got := NewClient(5 * time.Second).Timeout; got != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", got)
	}
}

func TestGetBytes(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("missing User-Agent header")
		}
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("payload"))
	}))
	defer srv.Close()

	ctx := context.Background()

	body, err := GetBytes(ctx, srv.Client(), srv.URL+"/ok", "image/*")
	if err != nil {
		t.Fatalf("GetBytes() error: %v", err)
	}
	if string(body) != "payload" {
		t.Errorf("body = %q, want payload", body)
	}

	_, err = GetBytes(ctx, srv.Client(), srv.URL+"/missing", "")
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *StatusError", err)
	}
	if se.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", se.Code)
	}
}

func TestGetRejectsPlainHTTP(t *testing.T) {
	if _, err := Get(context.Background(), http.DefaultClient, "http://example.com", ""); err == nil {
		t.Error("Get should reject non-HTTPS URLs")
	}
}
