package vault

import (
	"sync/atomic"

	"github.com/go-openapi/swag"
)

// Header names sent with every request.
const (
	HeaderToken     = "X-Vault-Token"
	HeaderNamespace = "X-Vault-Namespace"
	HeaderRequest   = "X-Vault-Request"
	HeaderUserAgent = "User-Agent"
)

// HeaderProvider computes the headers of one outgoing request. Entries with
// a nil value are not sent.
//
// The provider is invoked again for every request, so a token or namespace
// changed with [Client.SetToken] or [Client.SetNamespace] applies from the
// next call on.
type HeaderProvider func() map[string]*string

// credentials is the client's mutable authentication state.
//
// Reads and writes are atomic pointer swaps: the last write wins and a
// reader never sees a partially written value, but requests already in
// flight keep the value they read.
type credentials struct {
	token     atomic.Pointer[string]
	namespace atomic.Pointer[string]
}

func newCredentials(token, namespace string) *credentials {
	c := &credentials{}
	c.setToken(token)
	c.setNamespace(namespace)
	return c
}

func (c *credentials) getToken() string {
	return swag.StringValue(c.token.Load())
}

func (c *credentials) setToken(token string) {
	c.token.Store(&token)
}

func (c *credentials) getNamespace() string {
	return swag.StringValue(c.namespace.Load())
}

func (c *credentials) setNamespace(namespace string) {
	c.namespace.Store(&namespace)
}

func newHeaderProvider(creds *credentials, userAgent string) HeaderProvider {
	return func() map[string]*string {
		return map[string]*string{
			HeaderToken:     optionalHeader(creds.getToken()),
			HeaderNamespace: optionalHeader(creds.getNamespace()),
			HeaderRequest:   swag.String("true"),
			HeaderUserAgent: optionalHeader(userAgent),
		}
	}
}

func optionalHeader(value string) *string {
	if value == "" {
		return nil
	}
	return swag.String(value)
}
