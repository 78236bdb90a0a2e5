package typecast

import (
	"errors"
	"net/http"
	"os"
	"time"
)

const (
	// DefaultBaseURL is the production Typecast API host.
	DefaultBaseURL = "https://api.typecast.ai"
	// DefaultTimeout is the per-request timeout applied when none is set.
	DefaultTimeout = 60 * time.Second

	// EnvAPIKey names the environment variable holding the API key.
	EnvAPIKey = "TYPECAST_API_KEY"
	// EnvAPIHost names the environment variable overriding the base URL.
	EnvAPIHost = "TYPECAST_API_HOST"
)

// ClientConfig holds the client's construction-time settings.
type ClientConfig struct {
	// APIKey authenticates every request via the X-API-KEY header.
	APIKey string
	// BaseURL is the API host, used verbatim when building request URLs.
	BaseURL string
	// Timeout bounds each request, transport included.
	Timeout time.Duration
	// HTTPClient overrides the transport the client builds from Timeout.
	HTTPClient *http.Client
}

// DefaultConfig returns a config with the default host and timeout and no
// API key.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// NewConfig returns a default config carrying the given API key.
func NewConfig(apiKey string) *ClientConfig {
	cfg := DefaultConfig()
	cfg.APIKey = apiKey
	return cfg
}

// WithBaseURL sets the API host.
func (c *ClientConfig) WithBaseURL(baseURL string) *ClientConfig {
	c.BaseURL = baseURL
	return c
}

// WithTimeout sets the per-request timeout.
func (c *ClientConfig) WithTimeout(timeout time.Duration) *ClientConfig {
	c.Timeout = timeout
	return c
}

// WithHTTPClient sets an explicit HTTP client, taking precedence over
// Timeout.
func (c *ClientConfig) WithHTTPClient(client *http.Client) *ClientConfig {
	c.HTTPClient = client
	return c
}

// Validate checks that the config can build a client. The API key must be a
// legal HTTP header value; an empty key is accepted here and rejected by the
// API with 401.
func (c *ClientConfig) Validate() error {
	if !validHeaderValue(c.APIKey) {
		return errors.New("invalid API key: must not contain control characters")
	}
	return nil
}

// validHeaderValue reports whether s can be sent as a single HTTP header
// value. Horizontal tab is the only control byte the field grammar allows.
func validHeaderValue(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == '\t' {
			continue
		}
		if b < 0x20 || b == 0x7f {
			return false
		}
	}
	return true
}

// ConfigFromEnv reads TYPECAST_API_KEY and TYPECAST_API_HOST from the
// process environment, falling back to the defaults.
func ConfigFromEnv() *ClientConfig {
	return configFromEnviron(os.LookupEnv)
}

// configFromEnviron builds a config from an injected environment lookup so
// tests can run without touching the process environment.
func configFromEnviron(lookup func(string) (string, bool)) *ClientConfig {
	cfg := DefaultConfig()
	if key, ok := lookup(EnvAPIKey); ok {
		cfg.APIKey = key
	}
	if host, ok := lookup(EnvAPIHost); ok && host != "" {
		cfg.BaseURL = host
	}
	return cfg
}
