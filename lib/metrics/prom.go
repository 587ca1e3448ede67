package metrics

import "sync"

var promOnce sync.Once

// InitPrometheusMetrics replaces the discarding metrics with prometheus
// collectors registered to the default registry. Only the first call
// registers.
func InitPrometheusMetrics() {
	promOnce.Do(func() {
		Version = PromVersion()
		Ledger = PromLedgerMetrics()
		Voting = PromVotingMetrics()
	})
}
