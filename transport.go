package vault

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-openapi/runtime"
	httptransport "github.com/go-openapi/runtime/client"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
)

// Request is one call handed to a [Transport].
type Request struct {
	// Method is the HTTP method.
	Method string

	// Path is relative to the server address, e.g. "v1/auth/token/lookup-self".
	// Segments are unescaped; the transport escapes each one on the wire.
	Path string

	// Query holds the query parameters, if any.
	Query url.Values

	// Headers are the request headers. Nil values are not sent.
	Headers map[string]*string

	// Body is encoded as JSON when non-nil.
	Body interface{}
}

// Response is the raw outcome of a [Request].
type Response struct {
	StatusCode int
	Body       string
}

// Transport sends requests to the server. The client shares a single
// Transport between every service.
//
// A Transport only reports failures to exchange the request; HTTP error
// statuses are returned as a normal [Response] and interpreted by the
// envelope decoder.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// openAPITransport sends requests through a go-openapi runtime.
type openAPITransport struct {
	runtime *httptransport.Runtime
	timeout time.Duration
}

func newOpenAPITransport(address *url.URL, httpClient *http.Client, timeout time.Duration) *openAPITransport {
	basePath := address.Path
	if basePath == "" {
		basePath = "/"
	}
	schemes := []string{address.Scheme}

	var rt *httptransport.Runtime
	if httpClient != nil {
		rt = httptransport.NewWithClient(address.Host, basePath, schemes, httpClient)
	} else {
		rt = httptransport.New(address.Host, basePath, schemes)
	}
	// Error pages from proxies are not always JSON; pass them on untouched.
	rt.Consumers["*/*"] = runtime.ByteStreamConsumer()

	return &openAPITransport{runtime: rt, timeout: timeout}
}

func (t *openAPITransport) Do(ctx context.Context, req *Request) (*Response, error) {
	pattern, segments := pathPattern(req.Path)
	op := &runtime.ClientOperation{
		ID:                 req.Method + " " + req.Path,
		Method:             req.Method,
		PathPattern:        pattern,
		ProducesMediaTypes: []string{runtime.JSONMime},
		ConsumesMediaTypes: []string{runtime.JSONMime},
		Context:            ctx,
		AuthInfo:           headerWriter(req.Headers),
		Params: runtime.ClientRequestWriterFunc(func(r runtime.ClientRequest, _ strfmt.Registry) error {
			// Zero clears the runtime's default timeout.
			if err := r.SetTimeout(t.timeout); err != nil {
				return err
			}
			for i, segment := range segments {
				if err := r.SetPathParam(segmentParam(i), segment); err != nil {
					return err
				}
			}
			for name, values := range req.Query {
				if err := r.SetQueryParam(name, values...); err != nil {
					return err
				}
			}
			if req.Body != nil {
				return r.SetBodyParam(req.Body)
			}
			return nil
		}),
		Reader: runtime.ClientResponseReaderFunc(func(r runtime.ClientResponse, _ runtime.Consumer) (interface{}, error) {
			body, err := io.ReadAll(r.Body())
			if err != nil {
				return nil, fmt.Errorf("reading response body: %w", err)
			}
			return &Response{StatusCode: r.Code(), Body: string(body)}, nil
		}),
	}

	result, err := t.runtime.Submit(op)
	if err != nil {
		return nil, err
	}
	resp, ok := result.(*Response)
	if !ok {
		return nil, fmt.Errorf("unexpected response type %T", result)
	}
	return resp, nil
}

// pathPattern turns a slash-separated path into a runtime path pattern
// with one parameter per segment. The runtime escapes parameter values, so
// characters like '?', '#' and '%' stay inside their segment and empty
// segments are kept.
func pathPattern(p string) (string, []string) {
	segments := strings.Split(strings.TrimLeft(p, "/"), "/")
	var b strings.Builder
	for i := range segments {
		b.WriteString("/{" + segmentParam(i) + "}")
	}
	return b.String(), segments
}

func segmentParam(i int) string {
	return "s" + strconv.Itoa(i)
}

// headerWriter applies the computed header set to an outgoing request.
func headerWriter(headers map[string]*string) runtime.ClientAuthInfoWriter {
	return runtime.ClientAuthInfoWriterFunc(func(r runtime.ClientRequest, _ strfmt.Registry) error {
		for name, value := range headers {
			if value == nil {
				continue
			}
			if err := r.SetHeaderParam(name, swag.StringValue(value)); err != nil {
				return err
			}
		}
		return nil
	})
}
