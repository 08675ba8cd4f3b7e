package vault

import (
	"context"
	"net/url"
	"strconv"

	"github.com/go-openapi/strfmt"
)

// KV2Service wraps a version 2 key/value secrets engine.
type KV2Service struct {
	node
}

// KV2VersionMetadata describes one version of a secret.
type KV2VersionMetadata struct {
	Version        int               `json:"version"`
	CreatedTime    strfmt.DateTime   `json:"created_time"`
	DeletionTime   string            `json:"deletion_time"`
	Destroyed      bool              `json:"destroyed"`
	CustomMetadata map[string]string `json:"custom_metadata"`
}

// KV2Secret is one version of a secret with its metadata.
type KV2Secret struct {
	Data     map[string]interface{} `json:"data"`
	Metadata KV2VersionMetadata     `json:"metadata"`
}

// KV2Metadata describes every version of a secret.
type KV2Metadata struct {
	CASRequired        bool                          `json:"cas_required"`
	CreatedTime        strfmt.DateTime               `json:"created_time"`
	UpdatedTime        strfmt.DateTime               `json:"updated_time"`
	CurrentVersion     int                           `json:"current_version"`
	OldestVersion      int                           `json:"oldest_version"`
	MaxVersions        int                           `json:"max_versions"`
	DeleteVersionAfter Duration                      `json:"delete_version_after"`
	CustomMetadata     map[string]string             `json:"custom_metadata"`
	Versions           map[string]KV2VersionMetadata `json:"versions"`
}

// KV2WriteOptions controls a write.
type KV2WriteOptions struct {
	// CAS makes the write conditional on the current version. Zero only
	// succeeds if the secret does not exist yet.
	CAS *int `json:"cas,omitempty"`
}

type kv2WriteBody struct {
	Options *KV2WriteOptions       `json:"options,omitempty"`
	Data    map[string]interface{} `json:"data"`
}

// Read returns version of the secret at path. Version 0 reads the latest.
func (s *KV2Service) Read(ctx context.Context, path string, version int) (*KV2Secret, error) {
	if err := requireArg("path", path); err != nil {
		return nil, err
	}
	c := get(s.endpoint("data", path))
	if version > 0 {
		c.query = url.Values{"version": {strconv.Itoa(version)}}
	}
	secret, err := fetch[KV2Secret](ctx, s.node, c, FieldData)
	if err != nil {
		return nil, err
	}
	return &secret, nil
}

// Write stores a new version of the secret at path. opts may be nil.
func (s *KV2Service) Write(ctx context.Context, path string, data map[string]interface{}, opts *KV2WriteOptions) (*KV2VersionMetadata, error) {
	if err := requireArg("path", path); err != nil {
		return nil, err
	}
	if data == nil {
		data = map[string]interface{}{}
	}
	body := kv2WriteBody{Options: opts, Data: data}
	meta, err := fetch[KV2VersionMetadata](ctx, s.node, post(s.endpoint("data", path), body), FieldData)
	if err != nil {
		return nil, err
	}
	return &meta, nil
}

// Delete soft-deletes the latest version of the secret at path.
func (s *KV2Service) Delete(ctx context.Context, path string) error {
	if err := requireArg("path", path); err != nil {
		return err
	}
	return exec(ctx, s.node, del(s.endpoint("data", path)))
}

// ReadMetadata returns the metadata of the secret at path.
func (s *KV2Service) ReadMetadata(ctx context.Context, path string) (*KV2Metadata, error) {
	if err := requireArg("path", path); err != nil {
		return nil, err
	}
	meta, err := fetch[KV2Metadata](ctx, s.node, get(s.endpoint("metadata", path)), FieldData)
	if err != nil {
		return nil, err
	}
	return &meta, nil
}

// List returns the keys under path.
func (s *KV2Service) List(ctx context.Context, path string) ([]string, error) {
	keys, err := fetch[keyList](ctx, s.node, list(s.endpoint("metadata", path)), FieldData)
	if err != nil {
		return nil, err
	}
	return keys.Keys, nil
}
