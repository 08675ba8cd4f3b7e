package vault_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomblancdev/vault-go"
)

type point struct {
	X int `json:"x"`
}

// TestDecodeRequiredField_Success tests extraction of a present field.
func TestDecodeRequiredField_Success(t *testing.T) {
	got, err := vault.DecodeRequiredField(`{"data":{"x":1}}`, vault.FieldData, vault.JSONFormat[point]())

	require.NoError(t, err)
	assert.Equal(t, point{X: 1}, got)
}

// TestDecodeRequiredField_Errors tests the failure categories.
func TestDecodeRequiredField_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		field    string
		sentinel error
		messages []string
	}{
		{
			name:     "errors array",
			body:     `{"errors":["bad request"]}`,
			field:    "data",
			sentinel: vault.ErrAPI,
			messages: []string{"bad request"},
		},
		{
			name:     "empty errors array",
			body:     `{"errors":[]}`,
			field:    "data",
			sentinel: vault.ErrAPI,
			messages: []string{},
		},
		{
			name:     "data.error string",
			body:     `{"data":{"error":"permission denied"}}`,
			field:    "auth",
			sentinel: vault.ErrAPI,
			messages: []string{"permission denied"},
		},
		{
			name:     "errors win over data.error",
			body:     `{"errors":["first"],"data":{"error":"second"}}`,
			field:    "auth",
			sentinel: vault.ErrAPI,
			messages: []string{"first"},
		},
		{
			name:     "empty object",
			body:     `{}`,
			field:    "data",
			sentinel: vault.ErrMissingField,
		},
		{
			name:     "empty body",
			body:     ``,
			field:    "data",
			sentinel: vault.ErrMissingField,
		},
		{
			name:     "null field",
			body:     `{"auth":null,"data":{"x":1}}`,
			field:    "auth",
			sentinel: vault.ErrMissingField,
		},
		{
			name:     "unrecognized error shape",
			body:     `{"errors":"oops","data":{"error":42}}`,
			field:    "auth",
			sentinel: vault.ErrMissingField,
		},
		{
			name:     "array body",
			body:     `[1,2]`,
			field:    "data",
			sentinel: vault.ErrParse,
		},
		{
			name:     "null body",
			body:     `null`,
			field:    "data",
			sentinel: vault.ErrParse,
		},
		{
			name:     "html body",
			body:     `<html>502 Bad Gateway</html>`,
			field:    "data",
			sentinel: vault.ErrParse,
		},
		{
			name:     "wrong field type",
			body:     `{"data":"not an object"}`,
			field:    "data",
			sentinel: vault.ErrTypeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := vault.DecodeRequiredField(tt.body, tt.field, vault.JSONFormat[point]())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)

			var vErr *vault.Error
			require.ErrorAs(t, err, &vErr)
			if tt.messages != nil {
				assert.Equal(t, tt.messages, vErr.Messages)
			}
			if errors.Is(err, vault.ErrMissingField) || errors.Is(err, vault.ErrTypeMismatch) {
				assert.Equal(t, tt.field, vErr.Field)
			}
		})
	}
}

// TestDecodeOptionalField tests that only an absent field becomes nil.
func TestDecodeOptionalField(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		got, err := vault.DecodeOptionalField(`{"data":{"x":7}}`, vault.FieldData, vault.JSONFormat[point]())

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 7, got.X)
	})

	t.Run("absent", func(t *testing.T) {
		got, err := vault.DecodeOptionalField(`{}`, vault.FieldData, vault.JSONFormat[point]())

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("empty body", func(t *testing.T) {
		got, err := vault.DecodeOptionalField(``, vault.FieldData, vault.JSONFormat[point]())

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("server error still fails", func(t *testing.T) {
		got, err := vault.DecodeOptionalField(`{"errors":["sealed"]}`, vault.FieldData, vault.JSONFormat[point]())

		assert.Nil(t, got)
		assert.ErrorIs(t, err, vault.ErrAPI)
	})

	t.Run("parse error still fails", func(t *testing.T) {
		_, err := vault.DecodeOptionalField(`"text"`, vault.FieldData, vault.JSONFormat[point]())
		assert.ErrorIs(t, err, vault.ErrParse)
	})

	t.Run("type mismatch still fails", func(t *testing.T) {
		_, err := vault.DecodeOptionalField(`{"data":[1]}`, vault.FieldData, vault.JSONFormat[point]())
		assert.ErrorIs(t, err, vault.ErrTypeMismatch)
	})
}

// TestDecodeRequiredField_CustomFormat tests a caller-supplied decoding
// strategy and the wrapping of its failures.
func TestDecodeRequiredField_CustomFormat(t *testing.T) {
	keyCount := func(raw json.RawMessage) (int, error) {
		var m map[string]interface{}
		if err := json.Unmarshal(raw, &m); err != nil {
			return 0, err
		}
		if len(m) == 0 {
			return 0, errors.New("no keys")
		}
		return len(m), nil
	}

	n, err := vault.DecodeRequiredField(`{"data":{"a":1,"b":2}}`, vault.FieldData, keyCount)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = vault.DecodeRequiredField(`{"data":{}}`, vault.FieldData, keyCount)
	assert.ErrorIs(t, err, vault.ErrTypeMismatch)
	assert.Contains(t, err.Error(), "no keys")
}

// TestDecodeRequiredField_NestedCodecErrors tests that codec failures inside
// a payload stay recognizable through the TYPE_MISMATCH wrapper.
func TestDecodeRequiredField_NestedCodecErrors(t *testing.T) {
	type role struct {
		TokenType vault.TokenType `json:"token_type"`
		TokenTTL  vault.Duration  `json:"token_ttl"`
	}

	_, err := vault.DecodeRequiredField(`{"data":{"token_type":"forever"}}`, vault.FieldData, vault.JSONFormat[role]())
	assert.ErrorIs(t, err, vault.ErrTypeMismatch)
	assert.ErrorIs(t, err, vault.ErrUnknownEnumValue)

	_, err = vault.DecodeRequiredField(`{"data":{"token_ttl":"1h1d"}}`, vault.FieldData, vault.JSONFormat[role]())
	assert.ErrorIs(t, err, vault.ErrTypeMismatch)
	assert.ErrorIs(t, err, vault.ErrInvalidDuration)
}

// TestDecodeWarnings tests reading the warnings array.
func TestDecodeWarnings(t *testing.T) {
	assert.Equal(t, []string{"ttl capped"}, vault.DecodeWarnings(`{"warnings":["ttl capped"],"data":{}}`))
	assert.Nil(t, vault.DecodeWarnings(`{"warnings":null}`))
	assert.Nil(t, vault.DecodeWarnings(``))
	assert.Nil(t, vault.DecodeWarnings(`not json`))
}

// TestDecodeRequiredField_NulledEnvelopeKeys tests a full server envelope
// where the unused keys are null.
func TestDecodeRequiredField_NulledEnvelopeKeys(t *testing.T) {
	body := `{"request_id":"r1","lease_id":"","renewable":false,"lease_duration":0,` +
		`"data":null,"wrap_info":null,"warnings":null,` +
		`"auth":{"client_token":"hvs.x","policies":["default"],"lease_duration":3600,"renewable":true}}`

	auth, err := vault.DecodeRequiredField(body, vault.FieldAuth, vault.JSONFormat[vault.Auth]())
	require.NoError(t, err)
	assert.Equal(t, "hvs.x", auth.ClientToken)

	_, err = vault.DecodeRequiredField(body, vault.FieldData, vault.JSONFormat[map[string]interface{}]())
	assert.ErrorIs(t, err, vault.ErrMissingField)
	assert.NotErrorIs(t, err, vault.ErrTypeMismatch)
}
