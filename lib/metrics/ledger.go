package metrics

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	prometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

type LedgerMetrics struct {
	MintTotal   metrics.Counter
	MintedUnits metrics.Counter
	Holders     metrics.Gauge
}

func PromLedgerMetrics() *LedgerMetrics {
	return &LedgerMetrics{
		MintTotal: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: LedgerSubsystem,
			Name:      "mint_total",
			Help:      "Total number of mint operations.",
		}, []string{}),
		MintedUnits: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: LedgerSubsystem,
			Name:      "minted_units_total",
			Help:      "Total amount minted to holders.",
		}, []string{}),
		Holders: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: LedgerSubsystem,
			Name:      "holders",
			Help:      "Number of holders with a balance.",
		}, []string{}),
	}
}

func NopLedgerMetrics() *LedgerMetrics {
	return &LedgerMetrics{
		MintTotal:   discard.NewCounter(),
		MintedUnits: discard.NewCounter(),
		Holders:     discard.NewGauge(),
	}
}
