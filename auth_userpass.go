package vault

import "context"

// UserPassService wraps the userpass auth method (auth/userpass).
type UserPassService struct {
	node
}

// UserPassRequest holds the settings of a user. Password is required when
// the user is created.
type UserPassRequest struct {
	Password        string    `json:"password,omitempty"`
	TokenPolicies   []string  `json:"token_policies,omitempty"`
	TokenTTL        Duration  `json:"token_ttl,omitempty"`
	TokenMaxTTL     Duration  `json:"token_max_ttl,omitempty"`
	TokenBoundCIDRs []string  `json:"token_bound_cidrs,omitempty"`
	TokenType       TokenType `json:"token_type,omitempty"`
}

// UserPassUser is a user as read back from the server.
type UserPassUser struct {
	TokenPolicies   []string  `json:"token_policies"`
	TokenTTL        Duration  `json:"token_ttl"`
	TokenMaxTTL     Duration  `json:"token_max_ttl"`
	TokenBoundCIDRs []string  `json:"token_bound_cidrs"`
	TokenType       TokenType `json:"token_type"`
}

// WriteUser creates or updates username.
func (s *UserPassService) WriteUser(ctx context.Context, username string, req *UserPassRequest) error {
	if err := requireArg("username", username); err != nil {
		return err
	}
	if req == nil {
		req = &UserPassRequest{}
	}
	return exec(ctx, s.node, post(s.endpoint("users", username), req))
}

// ReadUser reads username.
func (s *UserPassService) ReadUser(ctx context.Context, username string) (*UserPassUser, error) {
	if err := requireArg("username", username); err != nil {
		return nil, err
	}
	user, err := fetch[UserPassUser](ctx, s.node, get(s.endpoint("users", username)), FieldData)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser deletes username.
func (s *UserPassService) DeleteUser(ctx context.Context, username string) error {
	if err := requireArg("username", username); err != nil {
		return err
	}
	return exec(ctx, s.node, del(s.endpoint("users", username)))
}

// Login exchanges a username and password for a token.
func (s *UserPassService) Login(ctx context.Context, username, password string) (*Auth, error) {
	if err := requireArg("username", username); err != nil {
		return nil, err
	}
	if err := requireArg("password", password); err != nil {
		return nil, err
	}
	body := map[string]string{"password": password}
	auth, err := fetch[Auth](ctx, s.node, post(s.endpoint("login", username), body), FieldAuth)
	if err != nil {
		return nil, err
	}
	return &auth, nil
}
