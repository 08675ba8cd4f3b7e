package vault

import (
	"fmt"
	"net/url"

	"github.com/go-openapi/validate"
	"go.uber.org/zap"
)

// Build validates the configuration and assembles the client and its
// service tree.
//
// Build performs no network I/O. A missing address or an empty mount path
// is a programming error reported as a CONSTRUCTION error; it is never
// worth retrying.
func (c Config) Build() (*Client, error) {
	if v := validate.RequiredString("address", "config", c.Address); v != nil {
		return nil, constructionError("server address is required", v)
	}
	address, err := url.Parse(c.Address)
	if err != nil {
		return nil, constructionError(fmt.Sprintf("invalid server address %q", c.Address), err)
	}
	if address.Scheme == "" || address.Host == "" {
		return nil, constructionError(fmt.Sprintf("server address %q needs a scheme and a host", c.Address), nil)
	}

	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	transport := c.Transport
	if transport == nil {
		transport = newOpenAPITransport(address, c.HTTPClient, c.Timeout)
	}

	creds := newCredentials(c.Token, c.Namespace)
	shared := &conn{
		transport: transport,
		headers:   newHeaderProvider(creds, c.UserAgent),
		logger:    logger,
		metrics:   c.Metrics,
	}

	client, err := c.Mounts.build(shared)
	if err != nil {
		return nil, err
	}
	client.address = address.String()
	client.creds = creds
	return client, nil
}

// MustBuild is like [Config.Build] but panics on error.
func (c Config) MustBuild() *Client {
	client, err := c.Build()
	if err != nil {
		panic(err)
	}
	return client
}

// resolve computes the full path of a mount under parent. An empty parent
// marks the root.
func (m MountConfig) resolve(name, parent string) (string, error) {
	if v := validate.RequiredString(name+".path", "config", m.Path); v != nil {
		return "", constructionError(fmt.Sprintf("mount %s has no path", name), v)
	}
	if parent == "" {
		return m.Path, nil
	}
	return JoinPath(parent, m.Path), nil
}

// mount builds one node under parent.
func (m MountConfig) mount(c *conn, name, parent string) (node, error) {
	path, err := m.resolve(name, parent)
	if err != nil {
		return node{}, err
	}
	return node{path: path, conn: c}, nil
}

func (m Mounts) build(c *conn) (*Client, error) {
	root, err := m.mount(c, "api", "")
	if err != nil {
		return nil, err
	}

	auth, err := m.Auth.build(c, root.path)
	if err != nil {
		return nil, err
	}

	client := &Client{node: root, Auth: auth}
	leaves := []struct {
		name   string
		config MountConfig
		attach func(node)
	}{
		{"kv", m.KV, func(n node) { client.KV = &KVService{node: n} }},
		{"kv2", m.KV2, func(n node) { client.KV2 = &KV2Service{node: n} }},
		{"transit", m.Transit, func(n node) { client.Transit = &TransitService{node: n} }},
		{"sys", m.Sys, func(n node) { client.Sys = &SysService{node: n} }},
	}
	for _, leaf := range leaves {
		n, err := leaf.config.mount(c, leaf.name, root.path)
		if err != nil {
			return nil, err
		}
		leaf.attach(n)
	}
	return client, nil
}

func (m AuthMounts) build(c *conn, parent string) (*AuthService, error) {
	base, err := m.mount(c, "auth", parent)
	if err != nil {
		return nil, err
	}

	appRole, err := m.AppRole.mount(c, "auth.approle", base.path)
	if err != nil {
		return nil, err
	}
	token, err := m.Token.mount(c, "auth.token", base.path)
	if err != nil {
		return nil, err
	}
	userPass, err := m.UserPass.mount(c, "auth.userpass", base.path)
	if err != nil {
		return nil, err
	}

	return &AuthService{
		node:     base,
		AppRole:  &AppRoleService{node: appRole},
		Token:    &TokenService{node: token},
		UserPass: &UserPassService{node: userPass},
	}, nil
}
