package contract

import (
	"boscoin.io/votingsystem/lib/common/keypair"
	"boscoin.io/votingsystem/lib/contract/context"
	"boscoin.io/votingsystem/lib/contract/native"
	_ "boscoin.io/votingsystem/lib/contract/native/execfunc"
	"boscoin.io/votingsystem/lib/contract/payload"
	"boscoin.io/votingsystem/lib/contract/value"
	"boscoin.io/votingsystem/lib/errors"
)

type Executor interface {
	Execute(*payload.ExecCode) (*value.Value, error)
}

func NewExecutor(ctx *context.Context, execCode *payload.ExecCode) (Executor, error) {
	if !keypair.IsValidAddress(ctx.SenderAddress()) {
		return nil, errors.InvalidSender.Clone().SetData("sender", ctx.SenderAddress())
	}

	if !native.HasContract(execCode.ContractAddress) {
		return nil, errors.ContractNotFound.Clone().SetData("address", execCode.ContractAddress)
	}

	return native.NewNativeExecutor(ctx), nil
}

// Execute runs the contract method with the caller of ctx.
func Execute(ctx *context.Context, execCode *payload.ExecCode) (ret *value.Value, err error) {
	var ex Executor
	if ex, err = NewExecutor(ctx, execCode); err != nil {
		log.Debug("failed to load contract", "address", execCode.ContractAddress, "sender", ctx.SenderAddress(), "error", err)
		return
	}

	if ret, err = ex.Execute(execCode); err != nil {
		log.Debug(
			"contract call failed",
			"address", execCode.ContractAddress,
			"method", execCode.Method,
			"sender", ctx.SenderAddress(),
			"error", err,
		)
		return
	}

	log.Debug(
		"contract call",
		"address", execCode.ContractAddress,
		"method", execCode.Method,
		"sender", ctx.SenderAddress(),
		"return", ret,
	)

	return
}
