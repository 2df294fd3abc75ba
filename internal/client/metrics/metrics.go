// Package metrics defines and registers the Prometheus metrics emitted by the
// request gateway. It is the single source of truth for metric names, labels,
// and help strings; metrics register with the default registry at import time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taskhub_client"

// RequestsTotal counts every outbound request the gateway performs.
// Labels:
//   - service: logical backend ("users", "tasks", "notifications")
//   - method: HTTP method
//   - outcome: "ok", "http_error", or "network_error"
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of outbound requests, by service, method, and outcome.",
	},
	[]string{"service", "method", "outcome"},
)

// UnauthorizedTotal counts 401 classification decisions.
// Label:
//   - result: "excluded" (credential-probe path, passed through),
//     "grace" (within the post-login grace window, passed through),
//     or "expired" (session cleared and redirect issued)
var UnauthorizedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "unauthorized_total",
		Help:      "Total number of 401 responses, labelled by classification result.",
	},
	[]string{"result"},
)
