package vault

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML layout read by [LoadConfigFile]. Empty entries
// keep the defaults.
type fileConfig struct {
	Address   string     `yaml:"address"`
	Token     string     `yaml:"token"`
	Namespace string     `yaml:"namespace"`
	Timeout   string     `yaml:"timeout"`
	UserAgent string     `yaml:"userAgent"`
	Mounts    fileMounts `yaml:"mounts"`
}

type fileMounts struct {
	API      string `yaml:"api"`
	Auth     string `yaml:"auth"`
	AppRole  string `yaml:"approle"`
	Token    string `yaml:"token"`
	UserPass string `yaml:"userpass"`
	KV       string `yaml:"kv"`
	KV2      string `yaml:"kv2"`
	Transit  string `yaml:"transit"`
	Sys      string `yaml:"sys"`
}

// LoadConfigFile reads a client configuration from a YAML file:
//
//	address: https://vault.example.com:8200
//	namespace: team-a
//	timeout: 10s
//	mounts:
//	  approle: approle-ci
//	  kv2: kv-v2
//
// The timeout uses the Vault duration format. The result can be edited
// further before [Config.Build].
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, constructionError("reading config file", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, constructionError(fmt.Sprintf("parsing config file %s", path), err)
	}

	cfg := NewConfig(fc.Address)
	cfg.Token = fc.Token
	cfg.Namespace = fc.Namespace
	if fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}
	if fc.Timeout != "" {
		timeout, err := ParseDuration(fc.Timeout)
		if err != nil {
			return Config{}, constructionError(fmt.Sprintf("config file %s: timeout", path), err)
		}
		cfg.Timeout = timeout
	}

	for _, m := range []struct {
		value  string
		target *MountConfig
	}{
		{fc.Mounts.API, &cfg.Mounts.MountConfig},
		{fc.Mounts.Auth, &cfg.Mounts.Auth.MountConfig},
		{fc.Mounts.AppRole, &cfg.Mounts.Auth.AppRole},
		{fc.Mounts.Token, &cfg.Mounts.Auth.Token},
		{fc.Mounts.UserPass, &cfg.Mounts.Auth.UserPass},
		{fc.Mounts.KV, &cfg.Mounts.KV},
		{fc.Mounts.KV2, &cfg.Mounts.KV2},
		{fc.Mounts.Transit, &cfg.Mounts.Transit},
		{fc.Mounts.Sys, &cfg.Mounts.Sys},
	} {
		if m.value != "" {
			m.target.Path = m.value
		}
	}
	return cfg, nil
}
