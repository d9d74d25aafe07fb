package platforms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/querydev/devsearch/pkg/cache"
	"github.com/querydev/devsearch/pkg/shared/stringutil"
)

// SearchMDN queries the MDN site search API for the configured locale and
// renders the top documents. The API takes no page-size parameter; the top
// five documents are rendered.
func (c *Client) SearchMDN(ctx context.Context, query string) (string, error) {
	cfg := c.cfg.MDN
	if !isEnabled(cfg.Enabled, true) {
		return "", platformErr(PlatformMDN, errDisabled)
	}

	values := url.Values{}
	values.Set("q", query)
	values.Set("locale", cfg.Locale)

	return c.fetchFormatted(ctx, fetchSpec{
		platform: PlatformMDN,
		cacheKey: cache.Key(PlatformMDN, query, cfg.Locale),
		cacheTTL: ttl(cfg.CacheTTLSecs),
		url:      cfg.BaseURL + "/api/v1/search?" + values.Encode(),
		timeout:  cfg.TimeoutSecs,
		render:   func(data []byte) (string, error) { return renderMDN(data, cfg.BaseURL) },
	})
}

func renderMDN(data []byte, baseURL string) (string, error) {
	var resp struct {
		Documents []struct {
			Title   string `json:"title"`
			Summary string `json:"summary"`
			MdnURL  string `json:"mdn_url"`
		} `json:"documents"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("failed to parse results: %w", err)
	}
	if len(resp.Documents) == 0 {
		return "No results found on MDN.", nil
	}

	docs := resp.Documents
	if len(docs) > mdnResultCount {
		docs = docs[:mdnResultCount]
	}

	blocks := make([]string, 0, len(docs))
	for i, doc := range docs {
		var b strings.Builder
		fmt.Fprintf(&b, "%d. %s\n", i+1, doc.Title)
		if summary := stringutil.Truncate(stringutil.StripHTML(doc.Summary), excerptMaxChars); summary != "" {
			fmt.Fprintf(&b, "   %s\n", summary)
		}
		// mdn_url is site-relative.
		fmt.Fprintf(&b, "   %s%s", strings.TrimRight(baseURL, "/"), doc.MdnURL)
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n"), nil
}
