// Package vault provides a Go SDK for the HashiCorp Vault HTTP API.
//
// The SDK exposes Vault's REST endpoints as typed methods on a tree of
// services that share one transport. Every response goes through the same
// envelope decoder, so server errors, missing fields and malformed values
// surface as one [Error] type whatever the endpoint.
//
// # Installation
//
// To install the SDK, use go get:
//
//	go get github.com/tomblancdev/vault-go
//
// # Quick Start
//
// Create a client and read a secret:
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    "github.com/tomblancdev/vault-go"
//	)
//
//	func main() {
//	    client, err := vault.NewClient("http://127.0.0.1:8200",
//	        vault.WithToken("root"),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    secret, err := client.KV2.Read(context.Background(), "app/config", 0)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(secret.Data["password"])
//	}
//
// # Client Configuration
//
// The client can be configured using functional options:
//
//	client, err := vault.NewClient("https://vault.example.com:8200",
//	    vault.WithTimeout(10*time.Second),
//	    vault.WithNamespace("team-a"),
//	    vault.WithLogger(logger),
//	    vault.WithMounts(func(m *vault.Mounts) {
//	        m.Auth.AppRole.Path = "approle-ci"
//	    }),
//	)
//
// or from a [Config] value, which is what the options edit:
//
//	cfg := vault.ConfigFromEnv()
//	cfg.Mounts.KV2.Path = "kv-v2"
//	client, err := cfg.Build()
//
// Building never touches the network. Configuration mistakes, such as a
// missing address or an empty mount path, fail with a CONSTRUCTION error.
//
// # Tokens
//
// The token and namespace are the only mutable client state. Headers are
// computed afresh for every request, so rotating the token takes effect on
// the next call:
//
//	auth, err := client.Auth.AppRole.Login(ctx, roleID, secretID)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client.SetToken(auth.ClientToken)
//
// # Error Handling
//
// The SDK reports every failure as an [Error] with a Code:
//
//	_, err := client.KV.Read(ctx, "app/config")
//	if err != nil {
//	    var vErr *vault.Error
//	    if errors.As(err, &vErr) {
//	        switch vErr.Code {
//	        case vault.CodeAPI:
//	            // vErr.Messages holds the server's messages
//	        case vault.CodeMissingField:
//	            // the response had no "data"
//	        }
//	    }
//	}
//
// Nothing is retried.
//
// # Wire Formats
//
// [Duration] reads Vault's "1d2h3m4s" form and integer seconds and writes
// whole seconds. Closed vocabularies such as [TokenType] are typed enums
// backed by an [Enum] codec; unknown tags are rejected.
//
// # Logging and Metrics
//
// Requests are logged through a [go.uber.org/zap] logger set with
// [WithLogger]; server warnings are logged at warn level. Request counts
// and latencies are exported to Prometheus with [WithMetrics]:
//
//	metrics, _ := vault.NewMetrics(prometheus.DefaultRegisterer)
//	client, err := vault.NewClient(addr, vault.WithMetrics(metrics))
//
// # Thread Safety
//
// The [Client] is safe for concurrent use by multiple goroutines. Token
// and namespace updates are atomic; requests already in flight keep the
// value they started with.
package vault
