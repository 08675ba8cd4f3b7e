package vault

import (
	"bytes"
	"encoding/json"
)

// Envelope field names used by the server.
const (
	FieldData     = "data"
	FieldAuth     = "auth"
	FieldWarnings = "warnings"
	FieldErrors   = "errors"
	FieldWrapInfo = "wrap_info"
)

// Format decodes the raw JSON value of one envelope field into T.
type Format[T any] func(raw json.RawMessage) (T, error)

// JSONFormat returns a Format that decodes with [encoding/json].
func JSONFormat[T any]() Format[T] {
	return func(raw json.RawMessage) (T, error) {
		var v T
		err := json.Unmarshal(raw, &v)
		return v, err
	}
}

// DecodeRequiredField extracts field from a response envelope.
//
// When the field is present it is decoded with format; a decoding failure
// is a TYPE_MISMATCH error. When it is absent the envelope is searched for
// a server error, either an "errors" string array or a "data.error" string,
// and an API_ERROR is returned with those messages. Otherwise the result is
// a MISSING_FIELD error. A body that is not a JSON object is a PARSE_ERROR.
// An empty body or a JSON null value counts as an absent field. Vault
// sends every envelope key and nulls the unused ones, so a KV read
// answers with "auth": null and a login with "data": null; decoding
// "auth" from the former is a MISSING_FIELD error, not a TYPE_MISMATCH.
//
//	auth, err := vault.DecodeRequiredField(body, vault.FieldAuth, vault.JSONFormat[vault.Auth]())
func DecodeRequiredField[T any](body, field string, format Format[T]) (T, error) {
	v, ok, err := decodeField(body, field, format)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, missingFieldError(field)
	}
	return v, nil
}

// DecodeOptionalField is [DecodeRequiredField] without the MISSING_FIELD
// failure: an absent field with no server error yields nil.
func DecodeOptionalField[T any](body, field string, format Format[T]) (*T, error) {
	v, ok, err := decodeField(body, field, format)
	if err != nil || !ok {
		return nil, err
	}
	return &v, nil
}

// DecodeWarnings returns the "warnings" array of a response envelope, or
// nil when there is none or the body is not an envelope.
func DecodeWarnings(body string) []string {
	fields, err := parseEnvelope(body)
	if err != nil {
		return nil
	}
	warnings, _ := stringArray(fields[FieldWarnings])
	return warnings
}

func decodeField[T any](body, field string, format Format[T]) (T, bool, error) {
	var zero T

	fields, err := parseEnvelope(body)
	if err != nil {
		return zero, false, err
	}

	if raw, ok := fields[field]; ok && !isNull(raw) {
		v, err := format(raw)
		if err != nil {
			return zero, false, typeMismatchError(field, err)
		}
		return v, true, nil
	}

	if err := envelopeError(fields); err != nil {
		return zero, false, err
	}
	return zero, false, nil
}

// envelopeError returns the server error carried by an envelope, or nil
// when it holds neither an "errors" array nor a "data.error" string.
func envelopeError(fields map[string]json.RawMessage) *Error {
	if messages, ok := stringArray(fields[FieldErrors]); ok {
		return apiError(messages)
	}
	if message, ok := dataError(fields[FieldData]); ok {
		return apiError([]string{message})
	}
	return nil
}

// parseEnvelope returns the top-level members of body. An empty body has
// no members.
func parseEnvelope(body string) (map[string]json.RawMessage, error) {
	if body == "" {
		return nil, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &fields); err != nil {
		return nil, newError(CodeParse, "response body is not a JSON object", 0, err)
	}
	if fields == nil {
		// The body was the literal null.
		return nil, newError(CodeParse, "response body is not a JSON object", 0, nil)
	}
	return fields, nil
}

func stringArray(raw json.RawMessage) ([]string, bool) {
	if len(raw) == 0 || isNull(raw) {
		return nil, false
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, false
	}
	if values == nil {
		values = []string{}
	}
	return values, true
}

func dataError(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || isNull(raw) {
		return "", false
	}
	var data map[string]json.RawMessage
	if err := json.Unmarshal(raw, &data); err != nil {
		return "", false
	}
	msg, ok := data["error"]
	if !ok || isNull(msg) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(msg, &s); err != nil {
		return "", false
	}
	return s, true
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
