package vault

import "context"

// AppRoleService wraps the AppRole auth method (auth/approle).
type AppRoleService struct {
	node
}

// AppRoleRequest holds the settings of a role. Zero fields are left to the
// server defaults.
type AppRoleRequest struct {
	BindSecretID         *bool     `json:"bind_secret_id,omitempty"`
	SecretIDBoundCIDRs   []string  `json:"secret_id_bound_cidrs,omitempty"`
	SecretIDNumUses      int       `json:"secret_id_num_uses,omitempty"`
	SecretIDTTL          Duration  `json:"secret_id_ttl,omitempty"`
	LocalSecretIDs       bool      `json:"local_secret_ids,omitempty"`
	TokenTTL             Duration  `json:"token_ttl,omitempty"`
	TokenMaxTTL          Duration  `json:"token_max_ttl,omitempty"`
	TokenPolicies        []string  `json:"token_policies,omitempty"`
	TokenBoundCIDRs      []string  `json:"token_bound_cidrs,omitempty"`
	TokenExplicitMaxTTL  Duration  `json:"token_explicit_max_ttl,omitempty"`
	TokenNoDefaultPolicy bool      `json:"token_no_default_policy,omitempty"`
	TokenNumUses         int       `json:"token_num_uses,omitempty"`
	TokenPeriod          Duration  `json:"token_period,omitempty"`
	TokenType            TokenType `json:"token_type,omitempty"`
}

// AppRole is a role as read back from the server.
type AppRole struct {
	BindSecretID         bool      `json:"bind_secret_id"`
	SecretIDBoundCIDRs   []string  `json:"secret_id_bound_cidrs"`
	SecretIDNumUses      int       `json:"secret_id_num_uses"`
	SecretIDTTL          Duration  `json:"secret_id_ttl"`
	LocalSecretIDs       bool      `json:"local_secret_ids"`
	TokenTTL             Duration  `json:"token_ttl"`
	TokenMaxTTL          Duration  `json:"token_max_ttl"`
	TokenPolicies        []string  `json:"token_policies"`
	TokenBoundCIDRs      []string  `json:"token_bound_cidrs"`
	TokenExplicitMaxTTL  Duration  `json:"token_explicit_max_ttl"`
	TokenNoDefaultPolicy bool      `json:"token_no_default_policy"`
	TokenNumUses         int       `json:"token_num_uses"`
	TokenPeriod          Duration  `json:"token_period"`
	TokenType            TokenType `json:"token_type"`
}

// SecretIDRequest holds the parameters of a generated secret ID.
type SecretIDRequest struct {
	// Metadata is a JSON-encoded object of string values.
	Metadata        string   `json:"metadata,omitempty"`
	CIDRList        []string `json:"cidr_list,omitempty"`
	TokenBoundCIDRs []string `json:"token_bound_cidrs,omitempty"`
	NumUses         int      `json:"num_uses,omitempty"`
	TTL             Duration `json:"ttl,omitempty"`
}

// SecretID is a freshly generated secret ID.
type SecretID struct {
	SecretID         string   `json:"secret_id"`
	SecretIDAccessor string   `json:"secret_id_accessor"`
	SecretIDTTL      Duration `json:"secret_id_ttl"`
	SecretIDNumUses  int      `json:"secret_id_num_uses"`
}

type keyList struct {
	Keys []string `json:"keys"`
}

// WriteRole creates or replaces the role name.
func (s *AppRoleService) WriteRole(ctx context.Context, name string, req *AppRoleRequest) error {
	if err := requireArg("role_name", name); err != nil {
		return err
	}
	if req == nil {
		req = &AppRoleRequest{}
	}
	return exec(ctx, s.node, post(s.endpoint("role", name), req))
}

// ReadRole reads the role name.
func (s *AppRoleService) ReadRole(ctx context.Context, name string) (*AppRole, error) {
	if err := requireArg("role_name", name); err != nil {
		return nil, err
	}
	role, err := fetch[AppRole](ctx, s.node, get(s.endpoint("role", name)), FieldData)
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// ListRoles lists role names. The server answers 404 when no role exists
// yet; see [IsNotFound].
func (s *AppRoleService) ListRoles(ctx context.Context) ([]string, error) {
	keys, err := fetch[keyList](ctx, s.node, list(s.endpoint("role")), FieldData)
	if err != nil {
		return nil, err
	}
	return keys.Keys, nil
}

// DeleteRole deletes the role name.
func (s *AppRoleService) DeleteRole(ctx context.Context, name string) error {
	if err := requireArg("role_name", name); err != nil {
		return err
	}
	return exec(ctx, s.node, del(s.endpoint("role", name)))
}

// ReadRoleID returns the role ID of name.
func (s *AppRoleService) ReadRoleID(ctx context.Context, name string) (string, error) {
	if err := requireArg("role_name", name); err != nil {
		return "", err
	}
	data, err := fetch[struct {
		RoleID string `json:"role_id"`
	}](ctx, s.node, get(s.endpoint("role", name, "role-id")), FieldData)
	if err != nil {
		return "", err
	}
	return data.RoleID, nil
}

// GenerateSecretID issues a new secret ID for name. req may be nil.
func (s *AppRoleService) GenerateSecretID(ctx context.Context, name string, req *SecretIDRequest) (*SecretID, error) {
	if err := requireArg("role_name", name); err != nil {
		return nil, err
	}
	if req == nil {
		req = &SecretIDRequest{}
	}
	secretID, err := fetch[SecretID](ctx, s.node, post(s.endpoint("role", name, "secret-id"), req), FieldData)
	if err != nil {
		return nil, err
	}
	return &secretID, nil
}

// Login exchanges a role ID and secret ID for a token.
func (s *AppRoleService) Login(ctx context.Context, roleID, secretID string) (*Auth, error) {
	if err := requireArg("role_id", roleID); err != nil {
		return nil, err
	}
	body := map[string]string{"role_id": roleID}
	if secretID != "" {
		body["secret_id"] = secretID
	}
	auth, err := fetch[Auth](ctx, s.node, post(s.endpoint("login"), body), FieldAuth)
	if err != nil {
		return nil, err
	}
	return &auth, nil
}
