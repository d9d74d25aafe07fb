package platforms

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSearchMDN(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/search" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("locale"); got != "en-US" {
			t.Errorf("locale = %q", got)
		}
		_, _ = w.Write([]byte(`{"documents":[
			{"title":"Array.prototype.map()","summary":"Creates a new array.","mdn_url":"/en-US/docs/map"},
			{"title":"Array.prototype.filter()","summary":"","mdn_url":"/en-US/docs/filter"}
		]}`))
	}))
	defer server.Close()

	client := newTestClient(t, &Config{MDN: MDNConfig{BaseURL: server.URL}})
	text, err := client.SearchMDN(t.Context(), "array map")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"1. Array.prototype.map()",
		"Creates a new array.",
		server.URL + "/en-US/docs/map",
		"2. Array.prototype.filter()",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
}

func TestSearchMDNTopFiveOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"documents":[
			{"title":"one","mdn_url":"/1"},{"title":"two","mdn_url":"/2"},
			{"title":"three","mdn_url":"/3"},{"title":"four","mdn_url":"/4"},
			{"title":"five","mdn_url":"/5"},{"title":"six","mdn_url":"/6"}
		]}`))
	}))
	defer server.Close()

	client := newTestClient(t, &Config{MDN: MDNConfig{BaseURL: server.URL}})
	text, err := client.SearchMDN(t.Context(), "overflow")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(text, "6. six") {
		t.Fatalf("more than five documents rendered:\n%s", text)
	}
	if !strings.Contains(text, "5. five") {
		t.Fatalf("fifth document missing:\n%s", text)
	}
}
