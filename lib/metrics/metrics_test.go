package metrics

import (
	"testing"

	"github.com/go-kit/kit/metrics/generic"
	"github.com/stretchr/testify/require"
)

func TestNopMetrics(t *testing.T) {
	// discard metrics accept any label set
	Voting.VotesTotal.With("support", SupportYes).Add(1)
	Voting.VoteRejectionsTotal.With("reason", "no-weight").Add(1)
	Ledger.MintTotal.Add(1)
	Ledger.Holders.Set(3)
	SetVersion()
}

func TestVotingMetricsCounting(t *testing.T) {
	proposals := generic.NewCounter("proposals_total")
	m := NopVotingMetrics()
	m.ProposalsTotal = proposals

	m.ProposalsTotal.Add(1)
	m.ProposalsTotal.Add(1)

	require.Equal(t, float64(2), proposals.Value())
}
