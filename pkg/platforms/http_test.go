package platforms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestGetJSONErrorBodyTruncation(t *testing.T) {
	body := strings.Repeat("ü", 300)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	_, status, err := getJSON(context.Background(), srv.URL, nil, 5)
	if err == nil {
		t.Fatal("expected error for 502 response")
	}
	if status != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", status)
	}
	if !utf8.ValidString(err.Error()) {
		t.Fatalf("error text is invalid UTF-8: %q", err.Error())
	}
	if !strings.HasSuffix(err.Error(), "...") {
		t.Fatalf("expected truncated body marker, got %q", err.Error())
	}
}

func TestGetJSONShortErrorBodyKeptWhole(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, _, err := getJSON(context.Background(), srv.URL, nil, 5)
	if err == nil {
		t.Fatal("expected error for 429 response")
	}
	if !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("expected body in error text, got %q", err.Error())
	}
}
