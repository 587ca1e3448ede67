package execfunc

import (
	"strconv"

	"boscoin.io/votingsystem/lib/common"
	"boscoin.io/votingsystem/lib/common/keypair"
	"boscoin.io/votingsystem/lib/contract/native"
	"boscoin.io/votingsystem/lib/contract/payload"
	"boscoin.io/votingsystem/lib/contract/value"
	"boscoin.io/votingsystem/lib/errors"
)

var VotingSystemAddress = "VOTINGSYSTEM"

func init() {
	native.AddContract(VotingSystemAddress, RegisterVotingSystem)
}

func RegisterVotingSystem(ex *native.NativeExecutor) {
	ex.RegisterFunc("mint", mint)
	ex.RegisterFunc("balanceOf", balanceOf)
	ex.RegisterFunc("submitProposal", submitProposal)
	ex.RegisterFunc("vote", vote)
	ex.RegisterFunc("proposals", proposals)
	ex.RegisterFunc("proposalCount", proposalCount)
	ex.RegisterFunc("hasVoted", hasVoted)
}

func invalidArgument(execCode *payload.ExecCode, reason string) error {
	return errors.InvalidContractArgument.Clone().
		SetData("method", execCode.Method).
		SetData("reason", reason)
}

func checkArgs(execCode *payload.ExecCode, n int) error {
	if len(execCode.Args) != n {
		return invalidArgument(execCode, "wrong number of arguments")
	}
	return nil
}

func parseAddress(execCode *payload.ExecCode, s string) (string, error) {
	if !keypair.IsValidAddress(s) {
		return "", invalidArgument(execCode, "invalid address")
	}
	return s, nil
}

func parseProposalID(execCode *payload.ExecCode, s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, invalidArgument(execCode, "invalid proposal id")
	}
	return id, nil
}

// mint(holder, amount)
func mint(ex *native.NativeExecutor, execCode *payload.ExecCode) (*value.Value, error) {
	if err := checkArgs(execCode, 2); err != nil {
		return nil, err
	}

	holder, err := parseAddress(execCode, execCode.Args[0])
	if err != nil {
		return nil, err
	}
	amount, err := common.AmountFromString(execCode.Args[1])
	if err != nil {
		return nil, invalidArgument(execCode, "invalid amount")
	}

	if err := ex.Context.Ledger().Mint(holder, amount); err != nil {
		return nil, err
	}

	return value.ToValue(nil)
}

// balanceOf(holder) uint
func balanceOf(ex *native.NativeExecutor, execCode *payload.ExecCode) (*value.Value, error) {
	if err := checkArgs(execCode, 1); err != nil {
		return nil, err
	}

	holder, err := parseAddress(execCode, execCode.Args[0])
	if err != nil {
		return nil, err
	}

	balance, err := ex.Context.Ledger().BalanceOf(holder)
	if err != nil {
		return nil, err
	}

	return value.ToValue(uint64(balance))
}

// submitProposal(description) uint; the id of the new proposal
func submitProposal(ex *native.NativeExecutor, execCode *payload.ExecCode) (*value.Value, error) {
	if err := checkArgs(execCode, 1); err != nil {
		return nil, err
	}

	p, err := ex.Context.Registry().Submit(ex.Context.SenderAddress(), execCode.Args[0])
	if err != nil {
		return nil, err
	}

	return value.ToValue(p.ID)
}

// vote(id, support) bool; whether the proposal is approved after the vote
func vote(ex *native.NativeExecutor, execCode *payload.ExecCode) (*value.Value, error) {
	if err := checkArgs(execCode, 2); err != nil {
		return nil, err
	}

	id, err := parseProposalID(execCode, execCode.Args[0])
	if err != nil {
		return nil, err
	}
	support, err := strconv.ParseBool(execCode.Args[1])
	if err != nil {
		return nil, invalidArgument(execCode, "invalid support")
	}

	p, err := ex.Context.Registry().Vote(ex.Context.SenderAddress(), id, support)
	if err != nil {
		return nil, err
	}

	return value.ToValue(p.IsApproved)
}

// proposals(id) string; the json of the proposal
func proposals(ex *native.NativeExecutor, execCode *payload.ExecCode) (*value.Value, error) {
	if err := checkArgs(execCode, 1); err != nil {
		return nil, err
	}

	id, err := parseProposalID(execCode, execCode.Args[0])
	if err != nil {
		return nil, err
	}

	p, err := ex.Context.Registry().Get(id)
	if err != nil {
		return nil, err
	}

	return value.ToValue(p.String())
}

// proposalCount() uint
func proposalCount(ex *native.NativeExecutor, execCode *payload.ExecCode) (*value.Value, error) {
	if err := checkArgs(execCode, 0); err != nil {
		return nil, err
	}

	count, err := ex.Context.Registry().Count()
	if err != nil {
		return nil, err
	}

	return value.ToValue(count)
}

// hasVoted(holder, id) bool
func hasVoted(ex *native.NativeExecutor, execCode *payload.ExecCode) (*value.Value, error) {
	if err := checkArgs(execCode, 2); err != nil {
		return nil, err
	}

	holder, err := parseAddress(execCode, execCode.Args[0])
	if err != nil {
		return nil, err
	}
	id, err := parseProposalID(execCode, execCode.Args[1])
	if err != nil {
		return nil, err
	}

	voted, err := ex.Context.Registry().HasVoted(holder, id)
	if err != nil {
		return nil, err
	}

	return value.ToValue(voted)
}
