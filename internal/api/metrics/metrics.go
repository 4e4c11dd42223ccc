// Package metrics defines and registers all custom Prometheus metrics for
// the backoffice API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init;
// the /metrics endpoint and HTTP-level metrics are wired in the router via
// echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// CardsCreatedTotal counts newly created task-board cards.
// Label:
//   - status: the initial status of the card (usually "To Do")
var CardsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cards_created_total",
		Help:      "Total number of task-board cards created, by initial status.",
	},
	[]string{"status"},
)

// CardTransitionsTotal counts status writes on existing cards.
// Label:
//   - direction: "done" when the write lands on Done, "active" otherwise
var CardTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "card_transitions_total",
		Help:      "Total number of card status writes, labelled by resulting state.",
	},
	[]string{"direction"},
)

// CardsClearedTotal counts cards removed by the bulk clear of Done cards.
var CardsClearedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cards_cleared_total",
		Help:      "Total number of completed cards removed by bulk clear.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ContactMessagesTotal counts contact-form deliveries.
// Label:
//   - result: "success" or "failure"
var ContactMessagesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_total",
		Help:      "Total number of contact-form messages forwarded, by result.",
	},
	[]string{"result"},
)
