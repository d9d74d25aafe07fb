package platforms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/querydev/devsearch/pkg/cache"
	"github.com/querydev/devsearch/pkg/shared/stringutil"
)

// SearchNpm queries the npm registry search endpoint and renders each
// package with version, description, weekly download count and registry URL.
func (c *Client) SearchNpm(ctx context.Context, query string, limit int) (string, error) {
	limit = clampLimit(limit)
	cfg := c.cfg.Npm
	if !isEnabled(cfg.Enabled, true) {
		return "", platformErr(PlatformNpm, errDisabled)
	}

	values := url.Values{}
	values.Set("text", query)
	values.Set("size", strconv.Itoa(limit))

	return c.fetchFormatted(ctx, fetchSpec{
		platform: PlatformNpm,
		cacheKey: cache.Key(PlatformNpm, query, strconv.Itoa(limit)),
		cacheTTL: ttl(cfg.CacheTTLSecs),
		url:      cfg.BaseURL + "/-/v1/search?" + values.Encode(),
		timeout:  cfg.TimeoutSecs,
		render:   func(data []byte) (string, error) { return renderNpm(data, limit) },
	})
}

func renderNpm(data []byte, limit int) (string, error) {
	var resp struct {
		Objects []struct {
			Package struct {
				Name        string `json:"name"`
				Version     string `json:"version"`
				Description string `json:"description"`
			} `json:"package"`
			Downloads struct {
				Weekly int64 `json:"weekly"`
			} `json:"downloads"`
		} `json:"objects"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("failed to parse results: %w", err)
	}
	if len(resp.Objects) == 0 {
		return "No packages found on npm.", nil
	}

	objects := resp.Objects
	if len(objects) > limit {
		objects = objects[:limit]
	}

	blocks := make([]string, 0, len(objects))
	for i, obj := range objects {
		pkg := obj.Package
		var b strings.Builder
		fmt.Fprintf(&b, "%d. %s\n", i+1, pkg.Name)
		fmt.Fprintf(&b, "   v%s\n", pkg.Version)
		fmt.Fprintf(&b, "   %s\n", stringutil.OrPlaceholder(pkg.Description, "No description"))
		fmt.Fprintf(&b, "   Weekly Downloads: %d\n", obj.Downloads.Weekly)
		fmt.Fprintf(&b, "   https://www.npmjs.com/package/%s", pkg.Name)
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n"), nil
}
