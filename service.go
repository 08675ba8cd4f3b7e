package vault

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-openapi/validate"
	"go.uber.org/zap"
)

// conn is the transport handle shared by every node of one client.
type conn struct {
	transport Transport
	headers   HeaderProvider
	logger    *zap.Logger
	metrics   *Metrics
}

// node is one mounted service: its full path and the shared conn.
type node struct {
	path string
	conn *conn
}

// Path returns the full path the service is mounted at.
func (n node) Path() string {
	return n.path
}

// endpoint joins sub-path segments under the node's path. A segment may
// itself contain '/', which nests the path further.
func (n node) endpoint(segments ...string) string {
	p := n.path
	for _, s := range segments {
		p = JoinPath(p, s)
	}
	return p
}

// send performs one request and returns the raw response.
func (n node) send(ctx context.Context, method, path string, query url.Values, body interface{}) (*Response, error) {
	if err := checkSegments(path); err != nil {
		return nil, err
	}
	req := &Request{
		Method:  method,
		Path:    path,
		Query:   query,
		Headers: n.conn.headers(),
		Body:    body,
	}

	done := n.conn.metrics.observe(method)
	resp, err := n.conn.transport.Do(ctx, req)
	if err != nil {
		done(0)
		n.conn.logger.Error("vault request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, newError(CodeRequestFailed, method+" "+path, 0, err)
	}
	done(resp.StatusCode)

	n.conn.logger.Debug("vault request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
	)
	if warnings := DecodeWarnings(resp.Body); len(warnings) > 0 {
		n.conn.logger.Warn("vault response warnings",
			zap.String("path", path),
			zap.Strings("warnings", warnings),
		)
	}
	return resp, nil
}

// call is the shape shared by every endpoint method.
type call struct {
	method string
	path   string
	query  url.Values
	body   interface{}
}

func get(path string) call                   { return call{method: http.MethodGet, path: path} }
func post(path string, body interface{}) call { return call{method: http.MethodPost, path: path, body: body} }
func del(path string) call                   { return call{method: http.MethodDelete, path: path} }

func list(path string) call {
	return call{method: http.MethodGet, path: path, query: url.Values{"list": {"true"}}}
}

// fetch performs c and decodes the required envelope field as JSON.
func fetch[T any](ctx context.Context, n node, c call, field string) (T, error) {
	return fetchWith(ctx, n, c, field, JSONFormat[T]())
}

// fetchWith performs c and decodes the required envelope field with format.
func fetchWith[T any](ctx context.Context, n node, c call, field string, format Format[T]) (T, error) {
	var zero T
	resp, err := n.send(ctx, c.method, c.path, c.query, c.body)
	if err != nil {
		return zero, err
	}
	v, err := DecodeRequiredField(resp.Body, field, format)
	return v, withStatus(err, resp.StatusCode)
}

// fetchOptional performs c and decodes the envelope field if present.
func fetchOptional[T any](ctx context.Context, n node, c call, field string) (*T, error) {
	resp, err := n.send(ctx, c.method, c.path, c.query, c.body)
	if err != nil {
		return nil, err
	}
	v, err := DecodeOptionalField(resp.Body, field, JSONFormat[T]())
	return v, withStatus(err, resp.StatusCode)
}

// exec performs c for its side effect, surfacing any server error.
func exec(ctx context.Context, n node, c call) error {
	_, err := fetchOptional[json.RawMessage](ctx, n, c, FieldData)
	return err
}

// withStatus records the HTTP status on server-reported errors.
func withStatus(err error, status int) error {
	var vErr *Error
	if errors.As(err, &vErr) && vErr.Code == CodeAPI {
		vErr.Status = status
	}
	return err
}

// fetchUnwrapped performs c against an endpoint that answers with a bare
// JSON object instead of an envelope. Statuses rejected by ok are turned
// into API errors.
func fetchUnwrapped[T any](ctx context.Context, n node, c call, ok func(status int) bool) (*T, error) {
	resp, err := n.send(ctx, c.method, c.path, c.query, c.body)
	if err != nil {
		return nil, err
	}

	if !ok(resp.StatusCode) {
		if fields, perr := parseEnvelope(resp.Body); perr == nil {
			if apiErr := envelopeError(fields); apiErr != nil {
				return nil, withStatus(apiErr, resp.StatusCode)
			}
		}
		return nil, withStatus(apiError([]string{http.StatusText(resp.StatusCode)}), resp.StatusCode)
	}

	var v T
	if err := json.Unmarshal([]byte(resp.Body), &v); err != nil {
		return nil, newError(CodeParse, "unexpected response from "+c.path, resp.StatusCode, err)
	}
	return &v, nil
}

// requireArg rejects an empty path or body argument before any request is
// sent.
func requireArg(name, value string) error {
	if v := validate.RequiredString(name, "path", value); v != nil {
		err := badRequest(name + " is required")
		err.Cause = v
		return err
	}
	return nil
}

// checkSegments rejects "." and ".." segments, which the server would
// resolve outside the node's mount.
func checkSegments(path string) error {
	for _, segment := range strings.Split(path, "/") {
		if segment == "." || segment == ".." {
			return badRequest(fmt.Sprintf("path %q contains a %q segment", path, segment))
		}
	}
	return nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
