package vault

import (
	"context"

	"github.com/go-openapi/strfmt"
)

// TokenService wraps the token auth method (auth/token).
type TokenService struct {
	node
}

// TokenCreateRequest holds the parameters of a new token.
type TokenCreateRequest struct {
	// ID requests a specific token value. Root only.
	ID string `json:"id,omitempty"`

	Policies        []string          `json:"policies,omitempty"`
	Meta            map[string]string `json:"meta,omitempty"`
	NoParent        bool              `json:"no_parent,omitempty"`
	NoDefaultPolicy bool              `json:"no_default_policy,omitempty"`
	Renewable       *bool             `json:"renewable,omitempty"`
	TTL             Duration          `json:"ttl,omitempty"`
	ExplicitMaxTTL  Duration          `json:"explicit_max_ttl,omitempty"`
	Period          Duration          `json:"period,omitempty"`
	DisplayName     string            `json:"display_name,omitempty"`
	NumUses         int               `json:"num_uses,omitempty"`
	Type            TokenType         `json:"type,omitempty"`
	EntityAlias     string            `json:"entity_alias,omitempty"`
}

// Auth is the "auth" block returned by logins and token creation.
type Auth struct {
	ClientToken      string            `json:"client_token"`
	Accessor         string            `json:"accessor"`
	Policies         []string          `json:"policies"`
	TokenPolicies    []string          `json:"token_policies"`
	IdentityPolicies []string          `json:"identity_policies,omitempty"`
	Metadata         map[string]string `json:"metadata"`
	LeaseDuration    Duration          `json:"lease_duration"`
	Renewable        bool              `json:"renewable"`
	EntityID         string            `json:"entity_id"`
	TokenType        TokenType         `json:"token_type"`
	Orphan           bool              `json:"orphan"`
	NumUses          int               `json:"num_uses"`
}

// TokenInfo describes a token, as returned by the lookup endpoints.
type TokenInfo struct {
	ID             string            `json:"id"`
	Accessor       string            `json:"accessor"`
	CreationTime   int64             `json:"creation_time"`
	CreationTTL    Duration          `json:"creation_ttl"`
	DisplayName    string            `json:"display_name"`
	EntityID       string            `json:"entity_id"`
	ExpireTime     *strfmt.DateTime  `json:"expire_time"`
	IssueTime      *strfmt.DateTime  `json:"issue_time,omitempty"`
	ExplicitMaxTTL Duration          `json:"explicit_max_ttl"`
	Meta           map[string]string `json:"meta"`
	NumUses        int               `json:"num_uses"`
	Orphan         bool              `json:"orphan"`
	Path           string            `json:"path"`
	Policies       []string          `json:"policies"`
	Renewable      bool              `json:"renewable"`
	TTL            Duration          `json:"ttl"`
	Type           TokenType         `json:"type"`
}

type tokenBody struct {
	Token string `json:"token"`
}

// Create issues a child of the client token. A nil request creates a token
// with the server defaults.
//
// The new token is returned but not installed; call [Client.SetToken] to
// use it.
func (s *TokenService) Create(ctx context.Context, req *TokenCreateRequest) (*Auth, error) {
	if req == nil {
		req = &TokenCreateRequest{}
	}
	auth, err := fetch[Auth](ctx, s.node, post(s.endpoint("create"), req), FieldAuth)
	if err != nil {
		return nil, err
	}
	return &auth, nil
}

// LookupSelf describes the client token.
func (s *TokenService) LookupSelf(ctx context.Context) (*TokenInfo, error) {
	info, err := fetch[TokenInfo](ctx, s.node, get(s.endpoint("lookup-self")), FieldData)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// Lookup describes another token.
func (s *TokenService) Lookup(ctx context.Context, token string) (*TokenInfo, error) {
	if err := requireArg("token", token); err != nil {
		return nil, err
	}
	info, err := fetch[TokenInfo](ctx, s.node, post(s.endpoint("lookup"), tokenBody{Token: token}), FieldData)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// RenewSelf extends the lease of the client token. A zero increment asks
// for the default extension.
func (s *TokenService) RenewSelf(ctx context.Context, increment Duration) (*Auth, error) {
	body := struct {
		Increment Duration `json:"increment,omitempty"`
	}{increment}
	auth, err := fetch[Auth](ctx, s.node, post(s.endpoint("renew-self"), body), FieldAuth)
	if err != nil {
		return nil, err
	}
	return &auth, nil
}

// RevokeSelf revokes the client token and its children.
func (s *TokenService) RevokeSelf(ctx context.Context) error {
	return exec(ctx, s.node, post(s.endpoint("revoke-self"), nil))
}

// Revoke revokes token and its children.
func (s *TokenService) Revoke(ctx context.Context, token string) error {
	if err := requireArg("token", token); err != nil {
		return err
	}
	return exec(ctx, s.node, post(s.endpoint("revoke"), tokenBody{Token: token}))
}
