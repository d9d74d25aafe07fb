package platforms

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/url"
	"strconv"
	"strings"

	"github.com/querydev/devsearch/pkg/cache"
	"github.com/querydev/devsearch/pkg/shared/stringutil"
)

// SearchStackOverflow queries the Stack Exchange search API sorted by
// relevance and renders the top results with score, answer count, link and
// a truncated answer-body excerpt.
func (c *Client) SearchStackOverflow(ctx context.Context, query string, limit int) (string, error) {
	limit = clampLimit(limit)
	cfg := c.cfg.StackOverflow
	if !isEnabled(cfg.Enabled, true) {
		return "", platformErr(PlatformStackOverflow, errDisabled)
	}

	searchURL := cfg.BaseURL + "/search/advanced"
	values := url.Values{}
	values.Set("order", "desc")
	values.Set("sort", "relevance")
	values.Set("site", cfg.Site)
	values.Set("q", query)
	values.Set("pagesize", strconv.Itoa(limit))
	values.Set("filter", "withbody")

	return c.fetchFormatted(ctx, fetchSpec{
		platform: PlatformStackOverflow,
		cacheKey: cache.Key(PlatformStackOverflow, query, strconv.Itoa(limit)),
		cacheTTL: ttl(cfg.CacheTTLSecs),
		url:      searchURL + "?" + values.Encode(),
		timeout:  cfg.TimeoutSecs,
		render:   func(data []byte) (string, error) { return renderStackOverflow(data, limit) },
	})
}

func renderStackOverflow(data []byte, limit int) (string, error) {
	var resp struct {
		Items []struct {
			Title       string `json:"title"`
			Link        string `json:"link"`
			Score       int    `json:"score"`
			AnswerCount int    `json:"answer_count"`
			Body        string `json:"body"`
		} `json:"items"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("failed to parse results: %w", err)
	}
	if len(resp.Items) == 0 {
		return "No results found on Stack Overflow.", nil
	}

	items := resp.Items
	if len(items) > limit {
		items = items[:limit]
	}

	blocks := make([]string, 0, len(items))
	for i, item := range items {
		var b strings.Builder
		fmt.Fprintf(&b, "%d. %s\n", i+1, html.UnescapeString(item.Title))
		fmt.Fprintf(&b, "   Score: %d | Answers: %d\n", item.Score, item.AnswerCount)
		fmt.Fprintf(&b, "   %s", item.Link)
		if excerpt := stringutil.Truncate(stringutil.StripHTML(item.Body), excerptMaxChars); excerpt != "" {
			fmt.Fprintf(&b, "\n   %s", excerpt)
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n"), nil
}
