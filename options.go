package vault

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Option configures a Client.
type Option func(*Config)

// WithToken sets the initial client token.
func WithToken(token string) Option {
	return func(c *Config) {
		c.Token = token
	}
}

// WithNamespace sets the initial namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = httpClient
	}
}

// WithTransport replaces the default transport.
func WithTransport(t Transport) Option {
	return func(c *Config) {
		c.Transport = t
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Config) {
		c.UserAgent = ua
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithMetrics records request metrics in m. See [NewMetrics].
func WithMetrics(m *Metrics) Option {
	return func(c *Config) {
		c.Metrics = m
	}
}

// WithMounts edits the mount layout before the tree is built.
func WithMounts(fn func(*Mounts)) Option {
	return func(c *Config) {
		fn(&c.Mounts)
	}
}
