// Package toolspec holds the shared tool names, descriptions and JSON
// schema definitions for the search tool surface.
package toolspec

const (
	SearchStackOverflowName        = "search_stackoverflow"
	SearchStackOverflowDescription = "Search Stack Overflow for programming questions and answers. Returns titles, scores, answer counts, links and a short excerpt of the top answer body."

	SearchMDNName        = "search_mdn"
	SearchMDNDescription = "Search MDN Web Docs for web platform documentation. Returns the top matching documents with summaries and links."

	SearchGitHubName        = "search_github"
	SearchGitHubDescription = "Search GitHub for repositories and code. Returns two sections: top repositories by stars and recently indexed code matches."

	SearchNpmName        = "search_npm"
	SearchNpmDescription = "Search the npm registry for JavaScript packages. Returns names, versions, descriptions, weekly download counts and registry links."

	SearchPyPIName        = "search_pypi"
	SearchPyPIDescription = "Look up a Python package on PyPI by exact name. Returns version, summary, author and project links, or a not-found notice."

	SearchAllName        = "search_all"
	SearchAllDescription = "Search Stack Overflow, MDN, GitHub, npm and PyPI at once. Returns one labeled section per platform; a failing platform is reported inline without failing the call."
)

func queryProperty(description string) map[string]any {
	return map[string]any{
		"type":        "string",
		"description": description,
	}
}

func limitProperty(defaultValue, max int) map[string]any {
	return map[string]any{
		"type":        "integer",
		"description": "Maximum number of results. Out-of-range values are clamped.",
		"default":     defaultValue,
		"minimum":     1,
		"maximum":     max,
	}
}

// SearchStackOverflowSchema returns the JSON schema for search_stackoverflow.
func SearchStackOverflowSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": queryProperty("The search query"),
			"limit": limitProperty(5, 10),
		},
		"required": []string{"query"},
	}
}

// SearchMDNSchema returns the JSON schema for search_mdn.
func SearchMDNSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": queryProperty("The search query"),
		},
		"required": []string{"query"},
	}
}

// SearchGitHubSchema returns the JSON schema for search_github.
func SearchGitHubSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": queryProperty("The search query"),
			"language": map[string]any{
				"type":        "string",
				"description": "Optional programming language filter, e.g. 'go' or 'typescript'",
			},
			"limit": limitProperty(5, 10),
		},
		"required": []string{"query"},
	}
}

// SearchNpmSchema returns the JSON schema for search_npm.
func SearchNpmSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": queryProperty("The search query"),
			"limit": limitProperty(5, 10),
		},
		"required": []string{"query"},
	}
}

// SearchPyPISchema returns the JSON schema for search_pypi.
func SearchPyPISchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": queryProperty("The exact package name to look up"),
		},
		"required": []string{"query"},
	}
}

// SearchAllSchema returns the JSON schema for search_all.
func SearchAllSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": queryProperty("The search query"),
			"limit": limitProperty(3, 5),
		},
		"required": []string{"query"},
	}
}
