package platforms

import (
	"testing"

	"github.com/rs/zerolog"
	"go.mau.fi/util/ptr"

	"github.com/querydev/devsearch/pkg/cache"
)

func newTestClient(t *testing.T, cfg *Config) *Client {
	t.Helper()
	return NewClient(cfg, cache.NewMemory(), zerolog.Nop())
}

func TestConfigWithDefaults(t *testing.T) {
	cfg := (&Config{}).WithDefaults()

	if cfg.StackOverflow.BaseURL != "https://api.stackexchange.com/2.3" {
		t.Fatalf("unexpected stackoverflow base url %q", cfg.StackOverflow.BaseURL)
	}
	if cfg.StackOverflow.Site != "stackoverflow" {
		t.Fatalf("unexpected site %q", cfg.StackOverflow.Site)
	}
	if cfg.MDN.Locale != "en-US" {
		t.Fatalf("unexpected locale %q", cfg.MDN.Locale)
	}
	if cfg.GitHub.TimeoutSecs != DefaultTimeoutSecs {
		t.Fatalf("unexpected timeout %d", cfg.GitHub.TimeoutSecs)
	}
	if cfg.Aggregate.CacheTTLSecs != DefaultCacheTTLSecs {
		t.Fatalf("unexpected aggregate ttl %d", cfg.Aggregate.CacheTTLSecs)
	}
}

func TestApplyEnvDefaults(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "env-token")

	cfg := ApplyEnvDefaults(&Config{})
	if cfg.GitHub.Token != "env-token" {
		t.Fatalf("token not read from env, got %q", cfg.GitHub.Token)
	}

	// Explicit config wins over the environment.
	cfg = ApplyEnvDefaults(&Config{GitHub: GitHubConfig{Token: "from-config"}})
	if cfg.GitHub.Token != "from-config" {
		t.Fatalf("config token must win, got %q", cfg.GitHub.Token)
	}
}

func TestDisabledPlatformReturnsError(t *testing.T) {
	client := newTestClient(t, &Config{
		Npm: NpmConfig{Enabled: ptr.Ptr(false)},
	})

	_, err := client.SearchNpm(t.Context(), "lodash", 1)
	if err == nil {
		t.Fatalf("expected error for disabled platform")
	}
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{in: 0, want: DefaultLimit},
		{in: -3, want: DefaultLimit},
		{in: 1, want: 1},
		{in: 10, want: 10},
		{in: 99, want: MaxLimit},
	}
	for _, tc := range tests {
		if got := clampLimit(tc.in); got != tc.want {
			t.Fatalf("clampLimit(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}

	if got := clampAggregateLimit(0); got != DefaultAggregateLimit {
		t.Fatalf("clampAggregateLimit(0) = %d", got)
	}
	if got := clampAggregateLimit(9); got != MaxAggregateLimit {
		t.Fatalf("clampAggregateLimit(9) = %d", got)
	}
}
