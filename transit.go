package vault

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// TransitService wraps the transit secrets engine.
type TransitService struct {
	node
}

// TransitKeyRequest holds the parameters of a new key.
type TransitKeyRequest struct {
	Type                 TransitKeyType `json:"type,omitempty"`
	Derived              bool           `json:"derived,omitempty"`
	Exportable           bool           `json:"exportable,omitempty"`
	AllowPlaintextBackup bool           `json:"allow_plaintext_backup,omitempty"`
	AutoRotatePeriod     Duration       `json:"auto_rotate_period,omitempty"`
}

// TransitKey describes a named key.
type TransitKey struct {
	Name                 string         `json:"name"`
	Type                 TransitKeyType `json:"type"`
	Derived              bool           `json:"derived"`
	Exportable           bool           `json:"exportable"`
	AllowPlaintextBackup bool           `json:"allow_plaintext_backup"`
	DeletionAllowed      bool           `json:"deletion_allowed"`
	LatestVersion        int            `json:"latest_version"`
	MinDecryptionVersion int            `json:"min_decryption_version"`
	MinEncryptionVersion int            `json:"min_encryption_version"`
	SupportsEncryption   bool           `json:"supports_encryption"`
	SupportsDecryption   bool           `json:"supports_decryption"`
	SupportsSigning      bool           `json:"supports_signing"`
	AutoRotatePeriod     Duration       `json:"auto_rotate_period"`
}

// CreateKey creates the key name. req may be nil.
func (s *TransitService) CreateKey(ctx context.Context, name string, req *TransitKeyRequest) error {
	if err := requireArg("name", name); err != nil {
		return err
	}
	if req == nil {
		req = &TransitKeyRequest{}
	}
	return exec(ctx, s.node, post(s.endpoint("keys", name), req))
}

// ReadKey describes the key name.
func (s *TransitService) ReadKey(ctx context.Context, name string) (*TransitKey, error) {
	if err := requireArg("name", name); err != nil {
		return nil, err
	}
	key, err := fetch[TransitKey](ctx, s.node, get(s.endpoint("keys", name)), FieldData)
	if err != nil {
		return nil, err
	}
	return &key, nil
}

// Encrypt encrypts plaintext with the key name and returns the ciphertext
// ("vault:v1:...").
func (s *TransitService) Encrypt(ctx context.Context, name string, plaintext []byte) (string, error) {
	if err := requireArg("name", name); err != nil {
		return "", err
	}
	body := map[string]string{"plaintext": base64.StdEncoding.EncodeToString(plaintext)}
	data, err := fetch[struct {
		Ciphertext string `json:"ciphertext"`
	}](ctx, s.node, post(s.endpoint("encrypt", name), body), FieldData)
	if err != nil {
		return "", err
	}
	return data.Ciphertext, nil
}

// Decrypt decrypts ciphertext with the key name.
func (s *TransitService) Decrypt(ctx context.Context, name, ciphertext string) ([]byte, error) {
	if err := requireArg("name", name); err != nil {
		return nil, err
	}
	if err := requireArg("ciphertext", ciphertext); err != nil {
		return nil, err
	}
	body := map[string]string{"ciphertext": ciphertext}
	return fetchWith[[]byte](ctx, s.node, post(s.endpoint("decrypt", name), body), FieldData, plaintextFormat)
}

// plaintextFormat decodes {"plaintext": "<base64>"}.
func plaintextFormat(raw json.RawMessage) ([]byte, error) {
	var data struct {
		Plaintext string `json:"plaintext"`
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	plaintext, err := base64.StdEncoding.DecodeString(data.Plaintext)
	if err != nil {
		return nil, fmt.Errorf("plaintext is not base64: %w", err)
	}
	return plaintext, nil
}
