package vault

// Client is the Vault API client.
//
// A Client is a tree of services sharing one transport:
//
//	client.Auth.AppRole   // v1/auth/approle
//	client.Auth.Token     // v1/auth/token
//	client.Auth.UserPass  // v1/auth/userpass
//	client.KV             // v1/kv
//	client.KV2            // v1/secret
//	client.Transit        // v1/transit
//	client.Sys            // v1/sys
//
// The tree is fixed when the client is built. Only the token and the
// namespace can change afterwards.
type Client struct {
	node

	address string
	creds   *credentials

	Auth    *AuthService
	KV      *KVService
	KV2     *KV2Service
	Transit *TransitService
	Sys     *SysService
}

// AuthService groups the auth methods.
type AuthService struct {
	node

	AppRole  *AppRoleService
	Token    *TokenService
	UserPass *UserPassService
}

// NewClient creates a client for the server at address.
//
//	client, err := vault.NewClient("http://127.0.0.1:8200",
//	    vault.WithToken(os.Getenv("VAULT_TOKEN")),
//	)
func NewClient(address string, opts ...Option) (*Client, error) {
	cfg := NewConfig(address)
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.Build()
}

// Address returns the server address.
func (c *Client) Address() string {
	return c.address
}

// Token returns the current client token.
func (c *Client) Token() string {
	return c.creds.getToken()
}

// SetToken replaces the client token. Requests started after SetToken
// returns use the new token.
func (c *Client) SetToken(token string) {
	c.creds.setToken(token)
}

// ClearToken removes the client token.
func (c *Client) ClearToken() {
	c.creds.setToken("")
}

// Namespace returns the current namespace.
func (c *Client) Namespace() string {
	return c.creds.getNamespace()
}

// SetNamespace replaces the namespace sent with each request. An empty
// namespace is not sent.
func (c *Client) SetNamespace(namespace string) {
	c.creds.setNamespace(namespace)
}

// HeaderProvider returns the function computing the headers of each request.
func (c *Client) HeaderProvider() HeaderProvider {
	return c.conn.headers
}
