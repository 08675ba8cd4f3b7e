package vault

import (
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "vault-go/" + Version
)

// Environment variables read by [ConfigFromEnv].
const (
	EnvAddress   = "VAULT_ADDR"
	EnvToken     = "VAULT_TOKEN"
	EnvNamespace = "VAULT_NAMESPACE"
)

// Default mount segments.
const (
	DefaultAPIPath      = "v1"
	DefaultAuthPath     = "auth"
	DefaultAppRolePath  = "approle"
	DefaultTokenPath    = "token"
	DefaultUserPassPath = "userpass"
	DefaultKVPath       = "kv"
	DefaultKV2Path      = "secret"
	DefaultTransitPath  = "transit"
	DefaultSysPath      = "sys"
)

// MountConfig configures where one service is mounted, relative to its
// parent.
type MountConfig struct {
	// Path is the mount segment. Required.
	Path string
}

// AuthMounts configures the auth tree.
type AuthMounts struct {
	MountConfig

	AppRole  MountConfig
	Token    MountConfig
	UserPass MountConfig
}

// Mounts configures the whole service tree.
//
// The zero value is not usable; start from [DefaultMounts] and change the
// segments that differ on your server:
//
//	client, err := vault.NewClient(addr, vault.WithMounts(func(m *vault.Mounts) {
//	    m.Auth.AppRole.Path = "approle-ci" // auth/approle-ci
//	    m.KV2.Path = "kv-v2"
//	}))
type Mounts struct {
	MountConfig

	Auth    AuthMounts
	KV      MountConfig
	KV2     MountConfig
	Transit MountConfig
	Sys     MountConfig
}

// DefaultMounts returns the conventional mount layout.
func DefaultMounts() Mounts {
	return Mounts{
		MountConfig: MountConfig{Path: DefaultAPIPath},
		Auth: AuthMounts{
			MountConfig: MountConfig{Path: DefaultAuthPath},
			AppRole:     MountConfig{Path: DefaultAppRolePath},
			Token:       MountConfig{Path: DefaultTokenPath},
			UserPass:    MountConfig{Path: DefaultUserPassPath},
		},
		KV:      MountConfig{Path: DefaultKVPath},
		KV2:     MountConfig{Path: DefaultKV2Path},
		Transit: MountConfig{Path: DefaultTransitPath},
		Sys:     MountConfig{Path: DefaultSysPath},
	}
}

// Config describes a client before it is built.
//
// A Config is plain data. [Config.Build] validates it and produces an
// immutable [Client]; later changes to the Config do not affect clients
// already built from it.
type Config struct {
	// Address is the server URL, e.g. "https://vault.example.com:8200". Required.
	Address string

	// Token is the initial client token.
	Token string

	// Namespace is the initial namespace (Vault Enterprise).
	Namespace string

	// Timeout bounds each request. Zero disables the client-side timeout.
	Timeout time.Duration

	// HTTPClient is used by the default transport.
	HTTPClient *http.Client

	// Transport replaces the default transport entirely.
	Transport Transport

	// UserAgent is sent with every request.
	UserAgent string

	// Logger receives request logs. Defaults to a no-op logger.
	Logger *zap.Logger

	// Metrics records request counts and latencies. Nil disables them.
	Metrics *Metrics

	// Mounts describes the service tree.
	Mounts Mounts
}

// NewConfig returns the default configuration for the server at address.
func NewConfig(address string) Config {
	return Config{
		Address:   address,
		Timeout:   defaultTimeout,
		UserAgent: defaultUserAgent,
		Mounts:    DefaultMounts(),
	}
}

// ConfigFromEnv returns the default configuration with the address, token
// and namespace taken from VAULT_ADDR, VAULT_TOKEN and VAULT_NAMESPACE.
func ConfigFromEnv() Config {
	return configFromLookup(os.Getenv)
}

// ConfigFromEnvFile is like [ConfigFromEnv] but falls back to the given
// dotenv files (".env" when none is named) for variables unset in the
// process environment.
func ConfigFromEnvFile(filenames ...string) (Config, error) {
	file, err := godotenv.Read(filenames...)
	if err != nil {
		return Config{}, constructionError("reading env file", err)
	}
	return configFromLookup(func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return file[key]
	}), nil
}

func configFromLookup(getenv func(string) string) Config {
	cfg := NewConfig(getenv(EnvAddress))
	cfg.Token = getenv(EnvToken)
	cfg.Namespace = getenv(EnvNamespace)
	return cfg
}
