// Package metrics defines and registers all custom Prometheus metrics for
// the enrollment API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "enrollment"

// AuthzDecisionsTotal counts access-control decisions on protected routes.
// Label:
//   - decision: "permit", "unauthorized", "forbidden", or "empty"
var AuthzDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_decisions_total",
		Help:      "Total number of access-control decisions, by outcome.",
	},
	[]string{"decision"},
)

// TokensIssuedTotal counts credentials issued by POST /jwt.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of bearer credentials issued.",
	},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created" or "exists"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration requests, by result.",
	},
	[]string{"result"},
)

// RoleCacheTotal counts role-cache lookups.
// Label:
//   - result: "hit" or "miss"
var RoleCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_cache_total",
		Help:      "Total number of role cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)

// PaymentIntentsTotal counts payment-intent creations.
// Label:
//   - result: "ok" or "error"
var PaymentIntentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_intents_total",
		Help:      "Total number of payment intent creations, by result.",
	},
	[]string{"result"},
)
