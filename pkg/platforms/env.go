package platforms

import (
	"os"
	"strings"
)

// ConfigFromEnv builds a platform config from environment variables.
// GITHUB_TOKEN is the only credential; its absence silently disables
// authenticated GitHub requests.
func ConfigFromEnv() *Config {
	return ApplyEnvDefaults(&Config{})
}

// ApplyEnvDefaults fills empty config fields from environment variables and
// then applies the static defaults. Values already present in cfg win over
// the environment.
func ApplyEnvDefaults(cfg *Config) *Config {
	if cfg == nil {
		cfg = &Config{}
	}
	cfg.GitHub.Token = envOr(cfg.GitHub.Token, os.Getenv("GITHUB_TOKEN"))

	cfg.StackOverflow.BaseURL = envOr(cfg.StackOverflow.BaseURL, os.Getenv("DEVSEARCH_STACKOVERFLOW_BASE_URL"))
	cfg.MDN.BaseURL = envOr(cfg.MDN.BaseURL, os.Getenv("DEVSEARCH_MDN_BASE_URL"))
	cfg.GitHub.BaseURL = envOr(cfg.GitHub.BaseURL, os.Getenv("DEVSEARCH_GITHUB_BASE_URL"))
	cfg.Npm.BaseURL = envOr(cfg.Npm.BaseURL, os.Getenv("DEVSEARCH_NPM_BASE_URL"))
	cfg.PyPI.BaseURL = envOr(cfg.PyPI.BaseURL, os.Getenv("DEVSEARCH_PYPI_BASE_URL"))

	return cfg.WithDefaults()
}

// envOr returns existing when it is set, otherwise the trimmed env value.
func envOr(existing, value string) string {
	if strings.TrimSpace(existing) != "" {
		return existing
	}
	return strings.TrimSpace(value)
}
