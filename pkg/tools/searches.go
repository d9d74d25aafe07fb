package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/querydev/devsearch/pkg/platforms"
	"github.com/querydev/devsearch/pkg/shared/toolspec"
)

// Searcher is the platform surface the search tools dispatch to.
// *platforms.Client satisfies it.
type Searcher interface {
	SearchStackOverflow(ctx context.Context, query string, limit int) (string, error)
	SearchMDN(ctx context.Context, query string) (string, error)
	SearchGitHub(ctx context.Context, query, language string, limit int) (string, error)
	SearchNpm(ctx context.Context, query string, limit int) (string, error)
	SearchPyPI(ctx context.Context, name string) (string, error)
	SearchAll(ctx context.Context, query string, limit int) (string, error)
}

var _ Searcher = (*platforms.Client)(nil)

// SearchTools builds the full search tool surface backed by the given
// platform client.
func SearchTools(client Searcher) []*Tool {
	return []*Tool{
		{
			Tool: mcp.Tool{
				Name:        toolspec.SearchStackOverflowName,
				Description: toolspec.SearchStackOverflowDescription,
				Annotations: &mcp.ToolAnnotations{Title: "Search Stack Overflow"},
				InputSchema: toolspec.SearchStackOverflowSchema(),
			},
			Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
				query, err := ReadString(args, "query", true)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				limit, err := ReadLimit(args, "limit", platforms.MaxLimit)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				text, err := client.SearchStackOverflow(ctx, query, limit)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				return TextResult(text), nil
			},
		},
		{
			Tool: mcp.Tool{
				Name:        toolspec.SearchMDNName,
				Description: toolspec.SearchMDNDescription,
				Annotations: &mcp.ToolAnnotations{Title: "Search MDN"},
				InputSchema: toolspec.SearchMDNSchema(),
			},
			Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
				query, err := ReadString(args, "query", true)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				text, err := client.SearchMDN(ctx, query)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				return TextResult(text), nil
			},
		},
		{
			Tool: mcp.Tool{
				Name:        toolspec.SearchGitHubName,
				Description: toolspec.SearchGitHubDescription,
				Annotations: &mcp.ToolAnnotations{Title: "Search GitHub"},
				InputSchema: toolspec.SearchGitHubSchema(),
			},
			Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
				query, err := ReadString(args, "query", true)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				language, err := ReadString(args, "language", false)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				limit, err := ReadLimit(args, "limit", platforms.MaxLimit)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				text, err := client.SearchGitHub(ctx, query, language, limit)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				return TextResult(text), nil
			},
		},
		{
			Tool: mcp.Tool{
				Name:        toolspec.SearchNpmName,
				Description: toolspec.SearchNpmDescription,
				Annotations: &mcp.ToolAnnotations{Title: "Search npm"},
				InputSchema: toolspec.SearchNpmSchema(),
			},
			Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
				query, err := ReadString(args, "query", true)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				limit, err := ReadLimit(args, "limit", platforms.MaxLimit)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				text, err := client.SearchNpm(ctx, query, limit)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				return TextResult(text), nil
			},
		},
		{
			Tool: mcp.Tool{
				Name:        toolspec.SearchPyPIName,
				Description: toolspec.SearchPyPIDescription,
				Annotations: &mcp.ToolAnnotations{Title: "Search PyPI"},
				InputSchema: toolspec.SearchPyPISchema(),
			},
			Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
				name, err := ReadString(args, "query", true)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				text, err := client.SearchPyPI(ctx, name)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				return TextResult(text), nil
			},
		},
		{
			Tool: mcp.Tool{
				Name:        toolspec.SearchAllName,
				Description: toolspec.SearchAllDescription,
				Annotations: &mcp.ToolAnnotations{Title: "Search All Platforms"},
				InputSchema: toolspec.SearchAllSchema(),
			},
			Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
				query, err := ReadString(args, "query", true)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				limit, err := ReadLimit(args, "limit", platforms.MaxAggregateLimit)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				text, err := client.SearchAll(ctx, query, limit)
				if err != nil {
					// Composition failure is a defect, not an upstream error.
					return nil, err
				}
				return TextResult(text), nil
			},
		},
	}
}
