package proposal

import (
	"boscoin.io/votingsystem/lib/common"
	"boscoin.io/votingsystem/lib/errors"
)

// WeightPolicy turns the ledger balance of a voter into the weight its vote
// adds to the tally. A zero weight means the voter can not vote.
type WeightPolicy interface {
	Name() string
	Weight(balance common.Amount) common.Amount
}

// FlatWeight gives every holder with tokens one vote.
type FlatWeight struct{}

func (FlatWeight) Name() string {
	return common.VoteWeightFlat
}

func (FlatWeight) Weight(balance common.Amount) common.Amount {
	if balance.IsZero() {
		return 0
	}
	return 1
}

// BalanceWeight counts every token as one vote.
type BalanceWeight struct{}

func (BalanceWeight) Name() string {
	return common.VoteWeightBalance
}

func (BalanceWeight) Weight(balance common.Amount) common.Amount {
	return balance
}

func NewWeightPolicy(name string) (WeightPolicy, error) {
	switch name {
	case common.VoteWeightFlat, "":
		return FlatWeight{}, nil
	case common.VoteWeightBalance:
		return BalanceWeight{}, nil
	default:
		return nil, errors.InvalidConfig.Clone().SetData("vote-weight", name)
	}
}
