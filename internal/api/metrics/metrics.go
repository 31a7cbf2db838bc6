// Package metrics defines and registers all custom Prometheus metrics for the
// todo API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at import time via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "todoapi"

// LoginsTotal counts credential-exchange attempts at POST /token.
// Label:
//   - result: "success" or "failure" (failures are not broken down further so
//     the metric cannot be used to probe which usernames exist)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of token issuance attempts, by result.",
	},
	[]string{"result"},
)

// TokenResolutionsTotal counts bearer-token resolutions on protected routes.
// Label:
//   - result: "identity", "anonymous", or "invalid"
var TokenResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_resolutions_total",
		Help:      "Total number of bearer token resolutions, by outcome.",
	},
	[]string{"result"},
)

// UsersRegisteredTotal counts successful registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts created.",
	},
)

// TodosCreatedTotal counts successfully created todo items.
var TodosCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "todos_created_total",
		Help:      "Total number of todo items created.",
	},
)
