//go:build e2e

// End-to-end tests against a real Vault server.
//
// Start a dev server and run:
//
//	vault server -dev -dev-root-token-id=root
//	VAULT_ADDR=http://127.0.0.1:8200 VAULT_TOKEN=root go test -tags e2e ./...
//
// The tests mount their own engines under unique paths and remove them
// afterwards.
package vault_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/tomblancdev/vault-go"
)

// newE2EClient creates a client from the environment, skipping the test
// when no server is configured.
func newE2EClient(t *testing.T, opts ...vault.Option) *vault.Client {
	t.Helper()
	if os.Getenv(vault.EnvAddress) == "" || os.Getenv(vault.EnvToken) == "" {
		t.Skipf("Skipping: set %s and %s to run end-to-end tests", vault.EnvAddress, vault.EnvToken)
	}

	cfg := vault.ConfigFromEnv()
	cfg.Logger = zaptest.NewLogger(t)
	for _, opt := range opts {
		opt(&cfg)
	}
	client, err := cfg.Build()
	require.NoError(t, err)
	return client
}

// newTestContext creates a context with a reasonable timeout for E2E tests.
func newTestContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func uniquePath(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// TestE2E_Health tests the server health and version.
func TestE2E_Health(t *testing.T) {
	client := newE2EClient(t)
	ctx := newTestContext(t)

	health, err := client.Sys.Health(ctx)
	require.NoError(t, err)
	assert.True(t, health.Initialized)
	assert.NotEmpty(t, health.Version)

	result, err := client.CheckServerCompatibility(ctx)
	require.NoError(t, err)
	t.Logf("server %s: %s", result.ServerVersion, result.Message)
}

// TestE2E_TokenLifecycle tests creating, using and revoking a child token.
func TestE2E_TokenLifecycle(t *testing.T) {
	client := newE2EClient(t)
	ctx := newTestContext(t)
	root := client.Token()

	auth, err := client.Auth.Token.Create(ctx, &vault.TokenCreateRequest{
		Policies: []string{"default"},
		TTL:      vault.Seconds(600),
	})
	require.NoError(t, err)
	require.NotEmpty(t, auth.ClientToken)

	client.SetToken(auth.ClientToken)
	t.Cleanup(func() { client.SetToken(root) })

	info, err := client.Auth.Token.LookupSelf(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth.ClientToken, info.ID)
	assert.LessOrEqual(t, info.TTL.Std(), 10*time.Minute)

	require.NoError(t, client.Auth.Token.RevokeSelf(ctx))

	_, err = client.Auth.Token.LookupSelf(ctx)
	assert.ErrorIs(t, err, vault.ErrAPI)
}

// TestE2E_AppRole tests an AppRole login on a freshly mounted method.
func TestE2E_AppRole(t *testing.T) {
	mount := uniquePath("approle")
	client := newE2EClient(t, vault.WithMounts(func(m *vault.Mounts) {
		m.Auth.AppRole.Path = mount
	}))
	ctx := newTestContext(t)

	require.NoError(t, client.Sys.EnableAuthMethod(ctx, mount, &vault.MountInput{Type: vault.MountTypeAppRole}))

	_, err := client.Auth.AppRole.ListRoles(ctx)
	assert.True(t, vault.IsNotFound(err))

	require.NoError(t, client.Auth.AppRole.WriteRole(ctx, "app", &vault.AppRoleRequest{
		TokenTTL:      vault.Seconds(1200),
		TokenPolicies: []string{"default"},
		TokenType:     vault.TokenTypeService,
	}))

	role, err := client.Auth.AppRole.ReadRole(ctx, "app")
	require.NoError(t, err)
	assert.Equal(t, 20*time.Minute, role.TokenTTL.Std())

	roleID, err := client.Auth.AppRole.ReadRoleID(ctx, "app")
	require.NoError(t, err)
	secretID, err := client.Auth.AppRole.GenerateSecretID(ctx, "app", nil)
	require.NoError(t, err)

	auth, err := client.Auth.AppRole.Login(ctx, roleID, secretID.SecretID)
	require.NoError(t, err)
	assert.NotEmpty(t, auth.ClientToken)
	assert.Equal(t, vault.TokenTypeService, auth.TokenType)

	require.NoError(t, client.Auth.AppRole.DeleteRole(ctx, "app"))
}

// TestE2E_KV2 tests a versioned secret round trip.
func TestE2E_KV2(t *testing.T) {
	mount := uniquePath("kv2")
	client := newE2EClient(t, vault.WithMounts(func(m *vault.Mounts) {
		m.KV2.Path = mount
	}))
	ctx := newTestContext(t)

	require.NoError(t, client.Sys.EnableSecretsEngine(ctx, mount, &vault.MountInput{
		Type:    vault.MountTypeKV,
		Options: map[string]string{"version": "2"},
	}))
	t.Cleanup(func() {
		_ = client.Sys.DisableSecretsEngine(context.Background(), mount)
	})

	// New mounts finish upgrading asynchronously.
	var meta *vault.KV2VersionMetadata
	require.Eventually(t, func() bool {
		var err error
		meta, err = client.KV2.Write(ctx, "app/config", map[string]interface{}{"password": "v1"}, nil)
		return err == nil
	}, 10*time.Second, 200*time.Millisecond)
	assert.Equal(t, 1, meta.Version)

	stale := 0
	_, err := client.KV2.Write(ctx, "app/config", map[string]interface{}{"password": "v2"}, &vault.KV2WriteOptions{CAS: &stale})
	assert.ErrorIs(t, err, vault.ErrAPI)

	secret, err := client.KV2.Read(ctx, "app/config", 1)
	require.NoError(t, err)
	assert.Equal(t, "v1", secret.Data["password"])

	keys, err := client.KV2.List(ctx, "app")
	require.NoError(t, err)
	assert.Contains(t, keys, "config")
}

// TestE2E_Transit tests encryption on a freshly mounted engine.
func TestE2E_Transit(t *testing.T) {
	mount := uniquePath("transit")
	client := newE2EClient(t, vault.WithMounts(func(m *vault.Mounts) {
		m.Transit.Path = mount
	}))
	ctx := newTestContext(t)

	require.NoError(t, client.Sys.EnableSecretsEngine(ctx, mount, &vault.MountInput{Type: vault.MountTypeTransit}))
	t.Cleanup(func() {
		_ = client.Sys.DisableSecretsEngine(context.Background(), mount)
	})

	require.NoError(t, client.Transit.CreateKey(ctx, "orders", &vault.TransitKeyRequest{Type: vault.TransitKeyAES256GCM96}))

	key, err := client.Transit.ReadKey(ctx, "orders")
	require.NoError(t, err)
	assert.Equal(t, vault.TransitKeyAES256GCM96, key.Type)

	ciphertext, err := client.Transit.Encrypt(ctx, "orders", []byte("card 4242"))
	require.NoError(t, err)

	plaintext, err := client.Transit.Decrypt(ctx, "orders", ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "card 4242", string(plaintext))
}
