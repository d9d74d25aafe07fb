package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/querydev/devsearch/pkg/shared/toolspec"
)

// fakeSearcher records calls and returns canned results per platform.
type fakeSearcher struct {
	lastQuery    string
	lastLanguage string
	lastLimit    int
	err          error
}

func (f *fakeSearcher) SearchStackOverflow(_ context.Context, query string, limit int) (string, error) {
	f.lastQuery, f.lastLimit = query, limit
	return "so results", f.err
}

func (f *fakeSearcher) SearchMDN(_ context.Context, query string) (string, error) {
	f.lastQuery = query
	return "mdn results", f.err
}

func (f *fakeSearcher) SearchGitHub(_ context.Context, query, language string, limit int) (string, error) {
	f.lastQuery, f.lastLanguage, f.lastLimit = query, language, limit
	return "github results", f.err
}

func (f *fakeSearcher) SearchNpm(_ context.Context, query string, limit int) (string, error) {
	f.lastQuery, f.lastLimit = query, limit
	return "npm results", f.err
}

func (f *fakeSearcher) SearchPyPI(_ context.Context, name string) (string, error) {
	f.lastQuery = name
	return "pypi results", f.err
}

func (f *fakeSearcher) SearchAll(_ context.Context, query string, limit int) (string, error) {
	f.lastQuery, f.lastLimit = query, limit
	return "all results", f.err
}

func toolByName(t *testing.T, list []*Tool, name string) *Tool {
	t.Helper()
	for _, tool := range list {
		if tool.Name == name {
			return tool
		}
	}
	t.Fatalf("tool %q not defined", name)
	return nil
}

func TestSearchToolsSurface(t *testing.T) {
	list := SearchTools(&fakeSearcher{})
	if len(list) != 6 {
		t.Fatalf("want 6 tools, got %d", len(list))
	}
	for _, name := range []string{
		toolspec.SearchStackOverflowName,
		toolspec.SearchMDNName,
		toolspec.SearchGitHubName,
		toolspec.SearchNpmName,
		toolspec.SearchPyPIName,
		toolspec.SearchAllName,
	} {
		tool := toolByName(t, list, name)
		if tool.Description == "" {
			t.Fatalf("tool %q has no description", name)
		}
		if tool.InputSchema == nil {
			t.Fatalf("tool %q has no input schema", name)
		}
		if tool.Execute == nil {
			t.Fatalf("tool %q has no execute func", name)
		}
	}
}

func TestSearchGitHubToolPassesArgs(t *testing.T) {
	searcher := &fakeSearcher{}
	tool := toolByName(t, SearchTools(searcher), toolspec.SearchGitHubName)

	res, err := tool.Execute(context.Background(), map[string]any{
		"query":    "router",
		"language": "go",
		"limit":    float64(4),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected error result: %s", res.Text)
	}
	if searcher.lastQuery != "router" || searcher.lastLanguage != "go" || searcher.lastLimit != 4 {
		t.Fatalf("args not forwarded: %q %q %d", searcher.lastQuery, searcher.lastLanguage, searcher.lastLimit)
	}
}

func TestToolMissingQuery(t *testing.T) {
	tool := toolByName(t, SearchTools(&fakeSearcher{}), toolspec.SearchNpmName)
	res, err := tool.Execute(context.Background(), map[string]any{})
	if err != nil {
		t.Fatalf("argument errors must be error results, not hard failures: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected error result for missing query")
	}
}

func TestToolUpstreamFailureIsErrorResult(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("stackoverflow search failed: http 502")}
	tool := toolByName(t, SearchTools(searcher), toolspec.SearchStackOverflowName)

	res, err := tool.Execute(context.Background(), map[string]any{"query": "defer"})
	if err != nil {
		t.Fatalf("upstream failures must map to error results: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected error result")
	}
	if res.Text != "stackoverflow search failed: http 502" {
		t.Fatalf("got %q", res.Text)
	}
}

func TestSearchAllToolFailureIsFatal(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("composition defect")}
	tool := toolByName(t, SearchTools(searcher), toolspec.SearchAllName)

	if _, err := tool.Execute(context.Background(), map[string]any{"query": "defer"}); err == nil {
		t.Fatalf("aggregate composition failure must propagate as a hard error")
	}
}
