package proposal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"boscoin.io/votingsystem/lib/common"
	"boscoin.io/votingsystem/lib/errors"
)

func TestProposalApply(t *testing.T) {
	p := NewProposal(0, "", "P1")

	require.NoError(t, p.apply(true, 1))
	require.True(t, p.IsApproved)

	require.NoError(t, p.apply(false, 1))
	require.False(t, p.IsApproved)

	require.NoError(t, p.apply(false, 3))
	require.False(t, p.IsApproved)
	require.Equal(t, common.Amount(1), p.YesVotes)
	require.Equal(t, common.Amount(4), p.NoVotes)
	require.Equal(t, common.Amount(5), p.TotalVotes())
}

func TestProposalApplyOverflow(t *testing.T) {
	p := NewProposal(0, "", "P1")
	p.YesVotes = common.MaximumAmount
	p.IsApproved = true

	require.Error(t, p.apply(true, 1))
	require.Equal(t, common.MaximumAmount, p.YesVotes)
	require.True(t, p.IsApproved)
}

func TestProposalHash(t *testing.T) {
	p := NewProposal(1, "", "P1")
	h := p.Hash()
	require.NotEmpty(t, h)
	require.Equal(t, h, NewProposal(1, "", "P1").Hash())

	require.NoError(t, p.apply(true, 1))
	require.NotEqual(t, h, p.Hash())
}

func TestProposalSerialize(t *testing.T) {
	p := NewProposal(3, "GABC", "P1")
	p.YesVotes = 10

	b, err := p.Serialize()
	require.NoError(t, err)

	var d Proposal
	require.NoError(t, d.Deserialize(b))
	require.Equal(t, *p, d)
}

func TestProposalKeyOrder(t *testing.T) {
	require.True(t, GetProposalKey(9) < GetProposalKey(10))
	require.True(t, GetBallotKey(9, "Z") < GetBallotKey(10, "A"))
}

func TestNewWeightPolicy(t *testing.T) {
	policy, err := NewWeightPolicy(common.VoteWeightFlat)
	require.NoError(t, err)
	require.Equal(t, common.Amount(1), policy.Weight(100))
	require.Equal(t, common.Amount(0), policy.Weight(0))

	policy, err = NewWeightPolicy(common.VoteWeightBalance)
	require.NoError(t, err)
	require.Equal(t, common.Amount(100), policy.Weight(100))
	require.Equal(t, common.Amount(0), policy.Weight(0))

	policy, err = NewWeightPolicy("")
	require.NoError(t, err)
	require.Equal(t, common.VoteWeightFlat, policy.Name())

	_, err = NewWeightPolicy("quadratic")
	require.True(t, errors.Equal(err, errors.InvalidConfig))
}
