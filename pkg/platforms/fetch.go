package platforms

import (
	"context"
	"time"
)

// fetchSpec parameterizes the single-request adapters: one endpoint, one
// JSON body, one renderer. GitHub (two sub-queries, auth fallback) and PyPI
// (404 as success) carry their own flow.
type fetchSpec struct {
	platform string
	cacheKey string
	cacheTTL time.Duration
	url      string
	headers  map[string]string
	timeout  int
	render   func(data []byte) (string, error)
}

// fetchFormatted runs the common adapter pipeline: cache check, outbound
// GET, render, cache store. Errors are wrapped as PlatformError.
func (c *Client) fetchFormatted(ctx context.Context, spec fetchSpec) (string, error) {
	if hit, ok := c.cache.Get(spec.cacheKey); ok {
		c.log.Debug().Str("platform", spec.platform).Str("key", spec.cacheKey).Msg("cache hit")
		return hit, nil
	}

	data, _, err := getJSON(ctx, spec.url, spec.headers, spec.timeout)
	if err != nil {
		return "", platformErr(spec.platform, err)
	}
	text, err := spec.render(data)
	if err != nil {
		return "", platformErr(spec.platform, err)
	}

	c.cache.Set(spec.cacheKey, text, spec.cacheTTL)
	return text, nil
}
