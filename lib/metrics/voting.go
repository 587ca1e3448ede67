package metrics

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	prometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

type VotingMetrics struct {
	ProposalsTotal      metrics.Counter
	VotesTotal          metrics.Counter
	VoteRejectionsTotal metrics.Counter
	ApprovedProposals   metrics.Gauge
}

func PromVotingMetrics() *VotingMetrics {
	return &VotingMetrics{
		ProposalsTotal: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: VotingSubsystem,
			Name:      "proposals_total",
			Help:      "Total number of submitted proposals.",
		}, []string{}),
		VotesTotal: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: VotingSubsystem,
			Name:      "votes_total",
			Help:      "Total number of accepted votes.",
		}, []string{"support"}),
		VoteRejectionsTotal: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: VotingSubsystem,
			Name:      "vote_rejections_total",
			Help:      "Total number of rejected votes.",
		}, []string{"reason"}),
		ApprovedProposals: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: VotingSubsystem,
			Name:      "approved_proposals",
			Help:      "Number of proposals currently approved.",
		}, []string{}),
	}
}

func NopVotingMetrics() *VotingMetrics {
	return &VotingMetrics{
		ProposalsTotal:      discard.NewCounter(),
		VotesTotal:          discard.NewCounter(),
		VoteRejectionsTotal: discard.NewCounter(),
		ApprovedProposals:   discard.NewGauge(),
	}
}
