package native

import (
	"boscoin.io/votingsystem/lib/contract/context"
	"boscoin.io/votingsystem/lib/contract/payload"
	"boscoin.io/votingsystem/lib/contract/value"
	"boscoin.io/votingsystem/lib/errors"
)

type ExecFunc func(e *NativeExecutor, code *payload.ExecCode) (*value.Value, error)

type NativeExecutor struct {
	Context *context.Context

	execFuncs map[string]ExecFunc
}

func NewNativeExecutor(ctx *context.Context) *NativeExecutor {
	ex := &NativeExecutor{
		Context:   ctx,
		execFuncs: map[string]ExecFunc{},
	}

	return ex
}

func (ex *NativeExecutor) Execute(c *payload.ExecCode) (*value.Value, error) {
	if !ex.loadFuncs(c.ContractAddress) {
		return nil, errors.ContractNotFound.Clone().SetData("address", c.ContractAddress)
	}

	if f, ok := ex.execFuncs[c.Method]; ok {
		return f(ex, c)
	}

	return nil, errors.ContractMethodNotFound.Clone().
		SetData("address", c.ContractAddress).
		SetData("method", c.Method)
}

func (ex *NativeExecutor) RegisterFunc(name string, f ExecFunc) {
	ex.execFuncs[name] = f
}

func (ex *NativeExecutor) loadFuncs(addr string) bool {
	r, ok := contracts[addr]
	if !ok {
		return false
	}

	r(ex)
	return true
}
