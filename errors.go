package vault

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error codes carried by [Error.Code].
const (
	CodeConstruction     = "CONSTRUCTION"
	CodeAPI              = "API_ERROR"
	CodeMissingField     = "MISSING_FIELD"
	CodeTypeMismatch     = "TYPE_MISMATCH"
	CodeParse            = "PARSE_ERROR"
	CodeInvalidDuration  = "INVALID_DURATION"
	CodeUnknownEnumValue = "UNKNOWN_ENUM_VALUE"
	CodeRequestFailed    = "REQUEST_FAILED"
	CodeBadRequest       = "BAD_REQUEST"
)

// Error represents a failure raised by the Vault client.
//
// Every failure carries a Code. Depending on the code, additional context
// is populated:
//   - API_ERROR: Messages holds the server-reported messages verbatim and
//     Status the HTTP status when the call went through a client method
//   - MISSING_FIELD, TYPE_MISMATCH: Field names the envelope field
//   - INVALID_DURATION, UNKNOWN_ENUM_VALUE: Value holds the raw wire text,
//     Valid lists the accepted enum tags
//
// Use [errors.Is] with the sentinel values to test the category:
//
//	secret, err := client.KV2.Read(ctx, "app/config", 0)
//	if errors.Is(err, vault.ErrAPI) {
//	    // the server rejected the request
//	}
type Error struct {
	Code     string
	Message  string
	Status   int
	Field    string
	Value    string
	Messages []string
	Valid    []string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vault: %s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("vault: %s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Sentinel errors, one per code. Compare with [errors.Is].
var (
	ErrConstruction     = &Error{Code: CodeConstruction, Message: "invalid client configuration"}
	ErrAPI              = &Error{Code: CodeAPI, Message: "server reported an error"}
	ErrMissingField     = &Error{Code: CodeMissingField, Message: "response field missing"}
	ErrTypeMismatch     = &Error{Code: CodeTypeMismatch, Message: "response field has unexpected type"}
	ErrParse            = &Error{Code: CodeParse, Message: "response is not a JSON object"}
	ErrInvalidDuration  = &Error{Code: CodeInvalidDuration, Message: "invalid duration format"}
	ErrUnknownEnumValue = &Error{Code: CodeUnknownEnumValue, Message: "unknown enum value"}
	ErrRequestFailed    = &Error{Code: CodeRequestFailed, Message: "request failed"}
	ErrBadRequest       = &Error{Code: CodeBadRequest, Message: "invalid request"}
)

func newError(code, message string, status int, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Status:  status,
		Cause:   cause,
	}
}

func constructionError(message string, cause error) *Error {
	return newError(CodeConstruction, message, 0, cause)
}

func apiError(messages []string) *Error {
	e := newError(CodeAPI, strings.Join(messages, "; "), 0, nil)
	e.Messages = messages
	return e
}

func missingFieldError(field string) *Error {
	e := newError(CodeMissingField, fmt.Sprintf("field %q not present in response", field), 0, nil)
	e.Field = field
	return e
}

func typeMismatchError(field string, cause error) *Error {
	e := newError(CodeTypeMismatch, fmt.Sprintf("field %q could not be decoded", field), 0, cause)
	e.Field = field
	return e
}

func durationError(text string, cause error) *Error {
	e := newError(CodeInvalidDuration, fmt.Sprintf("invalid duration %q", text), 0, cause)
	e.Value = text
	return e
}

func badRequest(message string) *Error {
	return newError(CodeBadRequest, message, http.StatusBadRequest, nil)
}

// IsNotFound reports whether err is a server error returned with HTTP 404.
//
// Vault answers reads of absent paths with 404 and an empty error list:
//
//	_, err := client.KV.Read(ctx, "missing")
//	if vault.IsNotFound(err) {
//	    // nothing stored there
//	}
func IsNotFound(err error) bool {
	var vErr *Error
	if !errors.As(err, &vErr) {
		return false
	}
	return vErr.Code == CodeAPI && vErr.Status == http.StatusNotFound
}
