package vault

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records request counts and latencies for every call made by a
// client.
//
//	metrics, err := vault.NewMetrics(prometheus.DefaultRegisterer)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client, err := vault.NewClient(addr, vault.WithMetrics(metrics))
//
// One Metrics value may be shared by several clients.
type Metrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// statusTransportError labels requests that got no HTTP response.
const statusTransportError = "error"

// NewMetrics creates the client collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "vault",
				Subsystem: "client",
				Name:      "requests_total",
				Help:      "Requests sent to the Vault server, labeled by method and HTTP status",
			},
			[]string{"method", "status"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "vault",
				Subsystem: "client",
				Name:      "request_duration_seconds",
				Help:      "Latency of requests sent to the Vault server, labeled by method",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.requests, m.latency} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// observe starts timing one request. The returned function records the
// outcome; status 0 means the transport failed.
func (m *Metrics) observe(method string) func(status int) {
	if m == nil {
		return func(int) {}
	}
	timer := prometheus.NewTimer(m.latency.WithLabelValues(method))
	return func(status int) {
		timer.ObserveDuration()
		label := statusTransportError
		if status > 0 {
			label = strconv.Itoa(status)
		}
		m.requests.WithLabelValues(method, label).Inc()
	}
}
