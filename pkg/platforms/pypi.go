package platforms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/querydev/devsearch/pkg/cache"
	"github.com/querydev/devsearch/pkg/shared/stringutil"
)

// SearchPyPI looks up a single package by exact name. A 404 from the
// registry means the name does not exist and yields a successful
// "no package found" message rather than an error.
func (c *Client) SearchPyPI(ctx context.Context, name string) (string, error) {
	cfg := c.cfg.PyPI
	if !isEnabled(cfg.Enabled, true) {
		return "", platformErr(PlatformPyPI, errDisabled)
	}

	name = strings.TrimSpace(name)
	key := cache.Key(PlatformPyPI, name)
	if hit, ok := c.cache.Get(key); ok {
		c.log.Debug().Str("platform", PlatformPyPI).Str("key", key).Msg("cache hit")
		return hit, nil
	}

	lookupURL := cfg.BaseURL + "/pypi/" + url.PathEscape(name) + "/json"
	data, status, err := getJSON(ctx, lookupURL, nil, cfg.TimeoutSecs)
	if err != nil {
		if status == http.StatusNotFound {
			text := fmt.Sprintf("No package found matching %q on PyPI.", name)
			c.cache.Set(key, text, ttl(cfg.CacheTTLSecs))
			return text, nil
		}
		return "", platformErr(PlatformPyPI, err)
	}

	text, err := renderPyPI(data, name)
	if err != nil {
		return "", platformErr(PlatformPyPI, err)
	}
	c.cache.Set(key, text, ttl(cfg.CacheTTLSecs))
	return text, nil
}

func renderPyPI(data []byte, name string) (string, error) {
	var resp struct {
		Info struct {
			Name       string `json:"name"`
			Version    string `json:"version"`
			Summary    string `json:"summary"`
			Author     string `json:"author"`
			HomePage   string `json:"home_page"`
			ProjectURL string `json:"project_url"`
		} `json:"info"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("failed to parse package info: %w", err)
	}

	info := resp.Info
	displayName := stringutil.FirstNonEmpty(info.Name, name)

	var b strings.Builder
	fmt.Fprintf(&b, "Package: %s\n", displayName)
	fmt.Fprintf(&b, "Version: %s\n", info.Version)
	fmt.Fprintf(&b, "Summary: %s\n", stringutil.OrPlaceholder(info.Summary, "No summary available"))
	fmt.Fprintf(&b, "Author: %s\n", stringutil.OrPlaceholder(info.Author, "Unknown"))
	fmt.Fprintf(&b, "Homepage: %s\n", stringutil.FirstNonEmpty(info.HomePage, info.ProjectURL, "N/A"))
	fmt.Fprintf(&b, "https://pypi.org/project/%s/", url.PathEscape(displayName))
	return b.String(), nil
}
