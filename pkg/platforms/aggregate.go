package platforms

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/querydev/devsearch/pkg/cache"
)

// Section headers of the composite result, in render order.
var aggregateHeaders = []string{
	"## Stack Overflow Results",
	"## MDN Results",
	"## GitHub Results",
	"## npm Results",
	"## PyPI Results",
}

// SearchAll fans out to every platform concurrently and composes one
// labeled text block per platform in a fixed order. A platform failure is
// downgraded to an inline error line in its own section; it never fails the
// aggregate call. The composite result is cached under its own key.
func (c *Client) SearchAll(ctx context.Context, query string, limit int) (string, error) {
	limit = clampAggregateLimit(limit)

	key := cache.Key(PlatformAll, query, strconv.Itoa(limit))
	if hit, ok := c.cache.Get(key); ok {
		c.log.Debug().Str("platform", PlatformAll).Str("key", key).Msg("cache hit")
		return hit, nil
	}

	searches := []func(context.Context) (string, error){
		func(ctx context.Context) (string, error) { return c.SearchStackOverflow(ctx, query, limit) },
		func(ctx context.Context) (string, error) { return c.SearchMDN(ctx, query) },
		func(ctx context.Context) (string, error) { return c.SearchGitHub(ctx, query, "", limit) },
		func(ctx context.Context) (string, error) { return c.SearchNpm(ctx, query, limit) },
		func(ctx context.Context) (string, error) { return c.SearchPyPI(ctx, query) },
	}

	sections := make([]string, len(searches))
	var wg sync.WaitGroup
	for i, search := range searches {
		wg.Add(1)
		go func(i int, search func(context.Context) (string, error)) {
			defer wg.Done()
			text, err := search(ctx)
			if err != nil {
				// Partial failure stays inside its own section.
				sections[i] = "Error: " + err.Error()
				return
			}
			sections[i] = text
		}(i, search)
	}
	wg.Wait()

	var b strings.Builder
	for i, header := range aggregateHeaders {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(header)
		b.WriteString("\n\n")
		b.WriteString(sections[i])
	}
	composite := b.String()

	c.cache.Set(key, composite, ttl(c.cfg.Aggregate.CacheTTLSecs))
	return composite, nil
}
