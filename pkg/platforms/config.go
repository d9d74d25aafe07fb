package platforms

import "time"

const (
	// DefaultLimit and MaxLimit bound single-platform searches.
	DefaultLimit = 5
	MaxLimit     = 10

	// DefaultAggregateLimit and MaxAggregateLimit bound search_all.
	DefaultAggregateLimit = 3
	MaxAggregateLimit     = 5

	DefaultTimeoutSecs  = 30
	DefaultCacheTTLSecs = 300

	// MDN always returns its top results; the API takes no page size.
	mdnResultCount = 5

	// Free-text excerpt fields are cut to this many characters after
	// markup stripping.
	excerptMaxChars = 200
)

// Config controls platform endpoints, credentials and cache behavior.
type Config struct {
	StackOverflow StackOverflowConfig `yaml:"stackoverflow"`
	MDN           MDNConfig           `yaml:"mdn"`
	GitHub        GitHubConfig        `yaml:"github"`
	Npm           NpmConfig           `yaml:"npm"`
	PyPI          PyPIConfig          `yaml:"pypi"`
	Aggregate     AggregateConfig     `yaml:"aggregate"`
}

type StackOverflowConfig struct {
	Enabled      *bool  `yaml:"enabled"`
	BaseURL      string `yaml:"base_url"`
	Site         string `yaml:"site"`
	TimeoutSecs  int    `yaml:"timeout_seconds"`
	CacheTTLSecs int    `yaml:"cache_ttl_seconds"`
}

type MDNConfig struct {
	Enabled      *bool  `yaml:"enabled"`
	BaseURL      string `yaml:"base_url"`
	Locale       string `yaml:"locale"`
	TimeoutSecs  int    `yaml:"timeout_seconds"`
	CacheTTLSecs int    `yaml:"cache_ttl_seconds"`
}

type GitHubConfig struct {
	Enabled *bool  `yaml:"enabled"`
	BaseURL string `yaml:"base_url"`
	// Token is the optional bearer credential. Requests that fail with 401
	// are retried once without it.
	Token        string `yaml:"token"`
	TimeoutSecs  int    `yaml:"timeout_seconds"`
	CacheTTLSecs int    `yaml:"cache_ttl_seconds"`
}

type NpmConfig struct {
	Enabled      *bool  `yaml:"enabled"`
	BaseURL      string `yaml:"base_url"`
	TimeoutSecs  int    `yaml:"timeout_seconds"`
	CacheTTLSecs int    `yaml:"cache_ttl_seconds"`
}

type PyPIConfig struct {
	Enabled      *bool  `yaml:"enabled"`
	BaseURL      string `yaml:"base_url"`
	TimeoutSecs  int    `yaml:"timeout_seconds"`
	CacheTTLSecs int    `yaml:"cache_ttl_seconds"`
}

type AggregateConfig struct {
	CacheTTLSecs int `yaml:"cache_ttl_seconds"`
}

func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	c.StackOverflow = c.StackOverflow.withDefaults()
	c.MDN = c.MDN.withDefaults()
	c.GitHub = c.GitHub.withDefaults()
	c.Npm = c.Npm.withDefaults()
	c.PyPI = c.PyPI.withDefaults()
	c.Aggregate = c.Aggregate.withDefaults()
	return c
}

func (c StackOverflowConfig) withDefaults() StackOverflowConfig {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.stackexchange.com/2.3"
	}
	if c.Site == "" {
		c.Site = "stackoverflow"
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	if c.CacheTTLSecs <= 0 {
		c.CacheTTLSecs = DefaultCacheTTLSecs
	}
	return c
}

func (c MDNConfig) withDefaults() MDNConfig {
	if c.BaseURL == "" {
		c.BaseURL = "https://developer.mozilla.org"
	}
	if c.Locale == "" {
		c.Locale = "en-US"
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	if c.CacheTTLSecs <= 0 {
		c.CacheTTLSecs = DefaultCacheTTLSecs
	}
	return c
}

func (c GitHubConfig) withDefaults() GitHubConfig {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.github.com"
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	if c.CacheTTLSecs <= 0 {
		c.CacheTTLSecs = DefaultCacheTTLSecs
	}
	return c
}

func (c NpmConfig) withDefaults() NpmConfig {
	if c.BaseURL == "" {
		c.BaseURL = "https://registry.npmjs.org"
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	if c.CacheTTLSecs <= 0 {
		c.CacheTTLSecs = DefaultCacheTTLSecs
	}
	return c
}

func (c PyPIConfig) withDefaults() PyPIConfig {
	if c.BaseURL == "" {
		c.BaseURL = "https://pypi.org"
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	if c.CacheTTLSecs <= 0 {
		c.CacheTTLSecs = DefaultCacheTTLSecs
	}
	return c
}

func (c AggregateConfig) withDefaults() AggregateConfig {
	if c.CacheTTLSecs <= 0 {
		c.CacheTTLSecs = DefaultCacheTTLSecs
	}
	return c
}

func isEnabled(flag *bool, fallback bool) bool {
	if flag == nil {
		return fallback
	}
	return *flag
}

func ttl(secs int) time.Duration {
	return time.Duration(secs) * time.Second
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func clampAggregateLimit(limit int) int {
	if limit <= 0 {
		return DefaultAggregateLimit
	}
	if limit > MaxAggregateLimit {
		return MaxAggregateLimit
	}
	return limit
}
