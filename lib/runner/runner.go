//
// Struct that bridges together the components of the voting system
//
// Runner opens the storage named by the config and builds the ledger and
// the proposal registry on it. Contract calls go through `Execute` with the
// caller identity given by the invoking environment.
//
package runner

import (
	logging "github.com/inconshreveable/log15"

	"boscoin.io/votingsystem/lib/common"
	"boscoin.io/votingsystem/lib/contract"
	"boscoin.io/votingsystem/lib/contract/context"
	"boscoin.io/votingsystem/lib/contract/payload"
	"boscoin.io/votingsystem/lib/contract/value"
	"boscoin.io/votingsystem/lib/ledger"
	"boscoin.io/votingsystem/lib/metrics"
	"boscoin.io/votingsystem/lib/proposal"
	"boscoin.io/votingsystem/lib/storage"
	"boscoin.io/votingsystem/lib/version"
)

type Runner struct {
	config   common.Config
	storage  *storage.LevelDBBackend
	ledger   *ledger.Ledger
	registry *proposal.Registry
	log      logging.Logger
}

// SetLoggingAll sets the level and the handler of every package of the
// voting system.
func SetLoggingAll(level logging.Lvl, handler logging.Handler) {
	SetLogging(level, handler)
	ledger.SetLogging(level, handler)
	proposal.SetLogging(level, handler)
	contract.SetLogging(level, handler)
}

func NewRunner(config common.Config) (r *Runner, err error) {
	if err = config.Validate(); err != nil {
		return
	}

	SetLoggingAll(config.LogLvl(), common.DefaultLogHandler)

	var policy proposal.WeightPolicy
	if policy, err = proposal.NewWeightPolicy(config.VoteWeight); err != nil {
		return
	}

	var storageConfig *storage.Config
	if storageConfig, err = storage.NewConfigFromString(config.Storage); err != nil {
		return
	}

	if config.Metrics {
		metrics.InitPrometheusMetrics()
		metrics.SetVersion()
	}

	var st *storage.LevelDBBackend
	if st, err = storage.NewStorage(storageConfig); err != nil {
		return
	}

	var l *ledger.Ledger
	if l, err = ledger.NewLedger(st); err != nil {
		st.Close()
		return
	}

	var registry *proposal.Registry
	if registry, err = proposal.NewRegistry(st, l, policy, config.ProposalCacheSize); err != nil {
		st.Close()
		return
	}

	r = &Runner{
		config:   config,
		storage:  st,
		ledger:   l,
		registry: registry,
		log:      log.New(logging.Ctx{"storage": storageConfig.String()}),
	}

	r.log.Debug(
		"runner ready",
		"version", version.ToDetailVersion(),
		"vote-weight", policy.Name(),
		"holders", l.HoldersCount(),
	)

	return
}

func (r *Runner) Config() common.Config {
	return r.config
}

func (r *Runner) Storage() *storage.LevelDBBackend {
	return r.storage
}

func (r *Runner) Ledger() *ledger.Ledger {
	return r.ledger
}

func (r *Runner) Registry() *proposal.Registry {
	return r.registry
}

func (r *Runner) Context(sender string) *context.Context {
	return context.NewContext(sender, r.ledger, r.registry)
}

// Execute calls the contract method as sender.
func (r *Runner) Execute(sender string, execCode *payload.ExecCode) (*value.Value, error) {
	return contract.Execute(r.Context(sender), execCode)
}

func (r *Runner) Close() error {
	r.log.Debug("runner closed")
	return r.storage.Close()
}
