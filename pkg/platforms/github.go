package platforms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/querydev/devsearch/pkg/cache"
	"github.com/querydev/devsearch/pkg/shared/stringutil"
)

// SearchGitHub runs the repository and code searches concurrently and
// renders them as two labeled sections. An optional language filter is
// appended to the query as a qualifier. When a bearer token is configured
// and GitHub rejects it with 401, the request is retried once without
// credentials.
func (c *Client) SearchGitHub(ctx context.Context, query, language string, limit int) (string, error) {
	limit = clampLimit(limit)
	cfg := c.cfg.GitHub
	if !isEnabled(cfg.Enabled, true) {
		return "", platformErr(PlatformGitHub, errDisabled)
	}

	q := strings.TrimSpace(query)
	if lang := strings.TrimSpace(language); lang != "" {
		q += " language:" + lang
	}

	key := cache.Key(PlatformGitHub, q, strconv.Itoa(limit))
	if hit, ok := c.cache.Get(key); ok {
		c.log.Debug().Str("platform", PlatformGitHub).Str("key", key).Msg("cache hit")
		return hit, nil
	}

	var repoSection, codeSection string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		repoSection, err = c.githubRepositories(gctx, q, limit)
		return err
	})
	g.Go(func() error {
		var err error
		codeSection, err = c.githubCode(gctx, q, limit)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", platformErr(PlatformGitHub, err)
	}

	text := "Repositories:\n\n" + repoSection + "\n\nCode Results:\n\n" + codeSection
	c.cache.Set(key, text, ttl(cfg.CacheTTLSecs))
	return text, nil
}

func (c *Client) githubRepositories(ctx context.Context, query string, limit int) (string, error) {
	values := url.Values{}
	values.Set("q", query)
	values.Set("sort", "stars")
	values.Set("order", "desc")
	values.Set("per_page", strconv.Itoa(limit))

	data, err := c.githubGet(ctx, c.cfg.GitHub.BaseURL+"/search/repositories?"+values.Encode())
	if err != nil {
		return "", err
	}

	var resp struct {
		Items []struct {
			FullName    string `json:"full_name"`
			Description string `json:"description"`
			Stars       int    `json:"stargazers_count"`
			HTMLURL     string `json:"html_url"`
		} `json:"items"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("failed to parse repository results: %w", err)
	}
	if len(resp.Items) == 0 {
		return "No repositories found.", nil
	}

	items := resp.Items
	if len(items) > limit {
		items = items[:limit]
	}
	blocks := make([]string, 0, len(items))
	for i, item := range items {
		var b strings.Builder
		fmt.Fprintf(&b, "%d. %s\n", i+1, item.FullName)
		fmt.Fprintf(&b, "   Stars: %d\n", item.Stars)
		fmt.Fprintf(&b, "   %s\n", stringutil.OrPlaceholder(item.Description, "No description"))
		fmt.Fprintf(&b, "   %s", item.HTMLURL)
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n"), nil
}

func (c *Client) githubCode(ctx context.Context, query string, limit int) (string, error) {
	values := url.Values{}
	values.Set("q", query)
	values.Set("sort", "indexed")
	values.Set("order", "desc")
	values.Set("per_page", strconv.Itoa(limit))

	data, err := c.githubGet(ctx, c.cfg.GitHub.BaseURL+"/search/code?"+values.Encode())
	if err != nil {
		return "", err
	}

	var resp struct {
		Items []struct {
			Name       string `json:"name"`
			Path       string `json:"path"`
			HTMLURL    string `json:"html_url"`
			Repository struct {
				FullName string `json:"full_name"`
			} `json:"repository"`
		} `json:"items"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("failed to parse code results: %w", err)
	}
	if len(resp.Items) == 0 {
		return "No code results found.", nil
	}

	items := resp.Items
	if len(items) > limit {
		items = items[:limit]
	}
	blocks := make([]string, 0, len(items))
	for i, item := range items {
		var b strings.Builder
		fmt.Fprintf(&b, "%d. %s\n", i+1, item.Name)
		fmt.Fprintf(&b, "   Repository: %s\n", item.Repository.FullName)
		fmt.Fprintf(&b, "   Path: %s\n", item.Path)
		fmt.Fprintf(&b, "   %s", item.HTMLURL)
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n"), nil
}

// githubGet issues a GitHub API request, preferring the configured bearer
// token. A 401 from the credentialed request triggers exactly one
// unauthenticated retry; any other failure propagates. The fallback is
// per-request: the next call attempts the credentialed path again.
func (c *Client) githubGet(ctx context.Context, rawURL string) ([]byte, error) {
	headers := map[string]string{"Accept": "application/vnd.github+json"}
	timeout := c.cfg.GitHub.TimeoutSecs

	token := strings.TrimSpace(c.cfg.GitHub.Token)
	if token == "" {
		data, _, err := getJSON(ctx, rawURL, headers, timeout)
		return data, err
	}

	authed := map[string]string{
		"Accept":        headers["Accept"],
		"Authorization": "Bearer " + token,
	}
	data, status, err := getJSON(ctx, rawURL, authed, timeout)
	if err == nil {
		return data, nil
	}
	if status != http.StatusUnauthorized {
		return nil, err
	}

	c.log.Debug().Str("platform", PlatformGitHub).Msg("token rejected, retrying unauthenticated")
	data, _, err = getJSON(ctx, rawURL, headers, timeout)
	return data, err
}
