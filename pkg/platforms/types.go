// Package platforms implements the search adapters for the supported
// developer-resource platforms and the search_all aggregator that composes
// them. Every adapter resolves to one rendered text block per request.
package platforms

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/querydev/devsearch/pkg/cache"
)

var errDisabled = errors.New("disabled in config")

// Platform tags, also used as cache key namespaces.
const (
	PlatformStackOverflow = "stackoverflow"
	PlatformMDN           = "mdn"
	PlatformGitHub        = "github"
	PlatformNpm           = "npm"
	PlatformPyPI          = "pypi"
	PlatformAll           = "all"
)

// PlatformError reports a failed upstream request. The aggregator downgrades
// it to inline text; single-platform tools surface it as-is.
type PlatformError struct {
	Platform string
	Message  string
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("%s search failed: %s", e.Platform, e.Message)
}

func platformErr(platform string, err error) error {
	return &PlatformError{Platform: platform, Message: err.Error()}
}

// Client performs searches against the configured platforms. Results are
// cached in the injected store for the per-platform TTL.
type Client struct {
	cfg   *Config
	cache cache.Store
	log   zerolog.Logger
}

// NewClient creates a search client. A nil config is replaced with defaults.
func NewClient(cfg *Config, store cache.Store, log zerolog.Logger) *Client {
	if store == nil {
		store = cache.NewMemory()
	}
	return &Client{
		cfg:   cfg.WithDefaults(),
		cache: store,
		log:   log.With().Str("component", "platforms").Logger(),
	}
}
