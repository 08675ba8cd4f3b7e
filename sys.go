package vault

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// SysService wraps the system backend (sys).
type SysService struct {
	node
}

// Health reports the health of the node answering the request.
//
// Standby and sealed nodes answer with non-200 statuses but the same body;
// those statuses are not errors here. Check [HealthResponse.IsHealthy].
func (s *SysService) Health(ctx context.Context) (*HealthResponse, error) {
	c := get(s.endpoint("health"))
	c.query = url.Values{
		"standbyok":     {"true"},
		"perfstandbyok": {"true"},
		"sealedcode":    {"200"},
		"uninitcode":    {"200"},
	}
	return fetchUnwrapped[HealthResponse](ctx, s.node, c, isHealthStatus)
}

// SealStatus reports the seal state.
func (s *SysService) SealStatus(ctx context.Context) (*SealStatus, error) {
	return fetchUnwrapped[SealStatus](ctx, s.node, get(s.endpoint("seal-status")), isSuccess)
}

// ListMounts returns the secrets engines keyed by mount path ("secret/").
func (s *SysService) ListMounts(ctx context.Context) (map[string]*MountOutput, error) {
	return fetch[map[string]*MountOutput](ctx, s.node, get(s.endpoint("mounts")), FieldData)
}

// EnableSecretsEngine mounts a secrets engine at path.
func (s *SysService) EnableSecretsEngine(ctx context.Context, path string, in *MountInput) error {
	if err := requireArg("path", path); err != nil {
		return err
	}
	if in == nil {
		return badRequest("mount input is required")
	}
	return exec(ctx, s.node, post(s.endpoint("mounts", path), in))
}

// DisableSecretsEngine unmounts the secrets engine at path.
func (s *SysService) DisableSecretsEngine(ctx context.Context, path string) error {
	if err := requireArg("path", path); err != nil {
		return err
	}
	return exec(ctx, s.node, del(s.endpoint("mounts", path)))
}

// EnableAuthMethod mounts an auth method at path, e.g. "approle" for
// auth/approle.
func (s *SysService) EnableAuthMethod(ctx context.Context, path string, in *MountInput) error {
	if err := requireArg("path", path); err != nil {
		return err
	}
	if in == nil {
		return badRequest("mount input is required")
	}
	return exec(ctx, s.node, post(s.endpoint("auth", strings.TrimPrefix(path, "auth/")), in))
}

func isHealthStatus(status int) bool {
	switch status {
	case http.StatusOK, http.StatusTooManyRequests, 472, 473:
		return true
	}
	return false
}
