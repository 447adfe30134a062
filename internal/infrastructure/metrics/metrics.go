// Package metrics registers the engine's Prometheus metrics on the default
// registry. Registration happens once at import time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transactionsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payengine_transactions_applied_total",
			Help: "Total number of transactions applied, by event type",
		},
		[]string{"type"},
	)

	transactionsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payengine_transactions_rejected_total",
			Help: "Total number of transactions rejected, by reason",
		},
		[]string{"reason"},
	)

	rowParseFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payengine_row_parse_failures_total",
			Help: "Total number of input rows that failed to parse",
		},
	)

	accountsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payengine_accounts_created_total",
			Help: "Total number of accounts created on first reference",
		},
	)

	accountsLocked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payengine_accounts_locked_total",
			Help: "Total number of accounts locked by a chargeback",
		},
	)
)

// RecordApplied counts one applied transaction.
func RecordApplied(eventType string) {
	transactionsApplied.WithLabelValues(eventType).Inc()
}

// RecordRejected counts one rejected transaction.
func RecordRejected(reason string) {
	transactionsRejected.WithLabelValues(reason).Inc()
}

// RecordParseFailure counts one unparseable input row.
func RecordParseFailure() {
	rowParseFailures.Inc()
}

// RecordAccountCreated counts one lazily created account.
func RecordAccountCreated() {
	accountsCreated.Inc()
}

// RecordAccountLocked counts one account locked by a chargeback.
func RecordAccountLocked() {
	accountsLocked.Inc()
}
