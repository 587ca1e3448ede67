package context

import (
	"boscoin.io/votingsystem/lib/ledger"
	"boscoin.io/votingsystem/lib/proposal"
)

// Context is what a contract call sees: the caller identity supplied by the
// invoking environment and the state it works on.
type Context struct {
	sender   string
	ledger   *ledger.Ledger
	registry *proposal.Registry
}

func NewContext(senderAddr string, l *ledger.Ledger, r *proposal.Registry) *Context {
	ctx := &Context{
		sender:   senderAddr,
		ledger:   l,
		registry: r,
	}
	return ctx
}

func (c *Context) SenderAddress() string {
	return c.sender
}

func (c *Context) Ledger() *ledger.Ledger {
	return c.ledger
}

func (c *Context) Registry() *proposal.Registry {
	return c.registry
}

// WithSender returns the same state seen by another caller.
func (c *Context) WithSender(senderAddr string) *Context {
	return NewContext(senderAddr, c.ledger, c.registry)
}
