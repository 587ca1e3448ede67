package metrics

const (
	Namespace       = "votingsystem"
	LedgerSubsystem = "ledger"
	VotingSubsystem = "voting"
)

const (
	SupportYes = "yes"
	SupportNo  = "no"
)
