package vault_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomblancdev/vault-go"
)

// recordingTransport captures every request and answers with a fixed body.
type recordingTransport struct {
	mu       sync.Mutex
	requests []*vault.Request
	status   int
	body     string
}

func (r *recordingTransport) Do(_ context.Context, req *vault.Request) (*vault.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
	status := r.status
	if status == 0 {
		status = 200
	}
	return &vault.Response{StatusCode: status, Body: r.body}, nil
}

func (r *recordingTransport) last() *vault.Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.requests[len(r.requests)-1]
}

func headerValue(headers map[string]*string, name string) string {
	if v := headers[name]; v != nil {
		return *v
	}
	return ""
}

// TestHeaderProvider_ReadsCurrentToken tests that a rotated token is picked
// up by the next invocation.
func TestHeaderProvider_ReadsCurrentToken(t *testing.T) {
	client, err := vault.NewClient("http://127.0.0.1:8200", vault.WithToken("token-a"))
	require.NoError(t, err)
	headers := client.HeaderProvider()

	assert.Equal(t, "token-a", headerValue(headers(), vault.HeaderToken))

	client.SetToken("token-b")

	assert.Equal(t, "token-b", headerValue(headers(), vault.HeaderToken))
	assert.Equal(t, "token-b", client.Token())
}

// TestHeaderProvider_OmitsEmpty tests that unset values are nil.
func TestHeaderProvider_OmitsEmpty(t *testing.T) {
	client, err := vault.NewClient("http://127.0.0.1:8200")
	require.NoError(t, err)

	headers := client.HeaderProvider()()

	assert.Nil(t, headers[vault.HeaderToken])
	assert.Nil(t, headers[vault.HeaderNamespace])
	assert.Equal(t, "true", headerValue(headers, vault.HeaderRequest))
	assert.Equal(t, "vault-go/"+vault.Version, headerValue(headers, vault.HeaderUserAgent))

	client.SetNamespace("team-a")
	assert.Equal(t, "team-a", headerValue(client.HeaderProvider()(), vault.HeaderNamespace))

	client.SetNamespace("")
	assert.Nil(t, client.HeaderProvider()()[vault.HeaderNamespace])
}

// TestHeaderProvider_PerRequest tests that each request carries the token
// current when it was sent.
func TestHeaderProvider_PerRequest(t *testing.T) {
	transport := &recordingTransport{body: `{"data":{"id":"x"}}`}
	client, err := vault.NewClient("http://127.0.0.1:8200",
		vault.WithTransport(transport),
		vault.WithToken("token-a"),
		vault.WithNamespace("ns1"),
	)
	require.NoError(t, err)

	_, err = client.Auth.Token.LookupSelf(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-a", headerValue(transport.last().Headers, vault.HeaderToken))
	assert.Equal(t, "ns1", headerValue(transport.last().Headers, vault.HeaderNamespace))

	client.SetToken("token-b")
	client.ClearToken()
	client.SetToken("token-c")

	_, err = client.Auth.Token.LookupSelf(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-c", headerValue(transport.last().Headers, vault.HeaderToken))
	assert.Equal(t, "v1/auth/token/lookup-self", transport.last().Path)
}

// TestHeaderProvider_ConcurrentRotation tests that concurrent writers and
// readers only ever observe whole values.
func TestHeaderProvider_ConcurrentRotation(t *testing.T) {
	client, err := vault.NewClient("http://127.0.0.1:8200", vault.WithToken("initial"))
	require.NoError(t, err)
	headers := client.HeaderProvider()

	valid := map[string]bool{"initial": true, "token-one": true, "token-two": true}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if j%2 == 0 {
					client.SetToken("token-one")
				} else {
					client.SetToken("token-two")
				}
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				got := headerValue(headers(), vault.HeaderToken)
				assert.True(t, valid[got], "unexpected token %q", got)
			}
		}()
	}
	wg.Wait()

	assert.True(t, valid[client.Token()])
}
