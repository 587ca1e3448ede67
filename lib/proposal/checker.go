package proposal

import (
	"boscoin.io/votingsystem/lib/common"
	"boscoin.io/votingsystem/lib/errors"
	"boscoin.io/votingsystem/lib/storage"
)

// VoteChecker runs the validation and the application of one vote. Any
// error stops the chain before anything is written.
type VoteChecker struct {
	common.DefaultChecker

	Registry *Registry
	Voter    string
	ID       uint64
	Support  bool

	Proposal *Proposal
	Ballot   *Ballot
	Weight   common.Amount
	Approved bool // approval before the vote
}

func NewVoteChecker(r *Registry, voter string, id uint64, support bool) *VoteChecker {
	return &VoteChecker{
		DefaultChecker: common.DefaultChecker{Funcs: VoteCheckerFuncs},
		Registry:       r,
		Voter:          voter,
		ID:             id,
		Support:        support,
	}
}

var VoteCheckerFuncs = []common.CheckerFunc{
	CheckVoteProposalExists,
	CheckVoteWeight,
	CheckVoteNotVoted,
	ApplyVote,
}

func CheckVoteProposalExists(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*VoteChecker)

	if checker.Proposal, err = GetProposal(checker.Registry.storage, checker.ID); err != nil {
		return
	}
	checker.Approved = checker.Proposal.IsApproved

	return
}

func CheckVoteWeight(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*VoteChecker)

	var balance common.Amount
	if balance, err = checker.Registry.balances.BalanceOf(checker.Voter); err != nil {
		return
	}

	checker.Weight = checker.Registry.policy.Weight(balance)
	if balance.IsZero() || checker.Weight.IsZero() {
		err = errors.NoWeight.Clone().SetData("voter", checker.Voter)
		return
	}

	return
}

func CheckVoteNotVoted(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*VoteChecker)

	var voted bool
	if voted, err = ExistsBallot(checker.Registry.storage, checker.ID, checker.Voter); err != nil {
		return
	}
	if voted {
		err = errors.AlreadyVoted.Clone().SetData("voter", checker.Voter).SetData("id", checker.ID)
		return
	}

	return
}

// ApplyVote writes the new tally and the ballot in one transaction.
func ApplyVote(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*VoteChecker)

	p := *checker.Proposal
	if err = p.apply(checker.Support, checker.Weight); err != nil {
		err = errors.BalanceOverflow.Clone().SetData("id", checker.ID)
		return
	}
	b := NewBallot(checker.ID, checker.Voter, checker.Support, checker.Weight)

	var ts *storage.LevelDBBackend
	if ts, err = checker.Registry.storage.OpenTransaction(); err != nil {
		return
	}
	if err = ts.New(GetBallotKey(b.ProposalID, b.Voter), b); err != nil {
		ts.Discard()
		return
	}
	if err = ts.Set(GetProposalKey(p.ID), p); err != nil {
		ts.Discard()
		return
	}
	if err = ts.Commit(); err != nil {
		return
	}

	checker.Proposal = &p
	checker.Ballot = b

	return
}
