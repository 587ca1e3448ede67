package proposal

import (
	"sync"

	logging "github.com/inconshreveable/log15"

	"boscoin.io/votingsystem/lib/common"
	"boscoin.io/votingsystem/lib/common/observer"
	"boscoin.io/votingsystem/lib/errors"
	"boscoin.io/votingsystem/lib/metrics"
	"boscoin.io/votingsystem/lib/storage"
)

// BalanceReader is the read side of the ledger the registry weighs votes
// with. The registry never changes balances.
type BalanceReader interface {
	BalanceOf(holder string) (common.Amount, error)
}

// Registry keeps the proposals and the votes cast on them.
type Registry struct {
	sync.Mutex // id assignment in Submit

	storage  *storage.LevelDBBackend
	balances BalanceReader
	policy   WeightPolicy
	cache    *proposalCache
	log      logging.Logger

	locksLock sync.Mutex
	locks     map[uint64]*sync.Mutex

	approvedLock sync.Mutex
	approved     uint64
}

func NewRegistry(st *storage.LevelDBBackend, balances BalanceReader, policy WeightPolicy, cacheSize int) (*Registry, error) {
	if policy == nil {
		policy = FlatWeight{}
	}

	r := &Registry{
		storage:  st,
		balances: balances,
		policy:   policy,
		cache:    newProposalCache(cacheSize),
		log:      log.New(logging.Ctx{"registry": common.GenerateUUID()[:8], "weight": policy.Name()}),
		locks:    map[uint64]*sync.Mutex{},
	}

	iterFunc, closeFunc := GetProposals(st, false)
	defer closeFunc()
	for {
		p, hasNext := iterFunc()
		if !hasNext {
			break
		}
		r.locks[p.ID] = &sync.Mutex{}
		if p.IsApproved {
			r.approved++
		}
	}
	metrics.Voting.ApprovedProposals.Set(float64(r.approved))

	return r, nil
}

func (r *Registry) Policy() WeightPolicy {
	return r.policy
}

func (r *Registry) addLock(id uint64) {
	r.locksLock.Lock()
	defer r.locksLock.Unlock()

	if _, found := r.locks[id]; !found {
		r.locks[id] = &sync.Mutex{}
	}
}

func (r *Registry) removeLock(id uint64) {
	r.locksLock.Lock()
	defer r.locksLock.Unlock()

	delete(r.locks, id)
}

// lock returns the lock of an existing proposal; proposals are never
// removed, so the locks are bounded by the stored proposals. A proposal
// stored by another registry on the same storage gets its lock here.
func (r *Registry) lock(id uint64) (*sync.Mutex, error) {
	r.locksLock.Lock()
	l, found := r.locks[id]
	r.locksLock.Unlock()
	if found {
		return l, nil
	}

	exists, err := ExistsProposal(r.storage, id)
	if err != nil {
		return nil, err
	} else if !exists {
		return nil, errors.UnknownProposal.Clone().SetData("id", id)
	}

	r.addLock(id)

	r.locksLock.Lock()
	defer r.locksLock.Unlock()

	return r.locks[id], nil
}

// Submit appends a new proposal with empty tallies. Anyone can submit.
func (r *Registry) Submit(proposer, description string) (p *Proposal, err error) {
	r.Lock()
	defer r.Unlock()

	var id uint64
	if id, err = GetNextProposalID(r.storage); err != nil {
		return
	}

	p = NewProposal(id, proposer, description)
	r.addLock(id)

	var ts *storage.LevelDBBackend
	if ts, err = r.storage.OpenTransaction(); err != nil {
		r.removeLock(id)
		return nil, err
	}
	if err = ts.New(GetProposalKey(id), p); err != nil {
		ts.Discard()
		r.removeLock(id)
		return nil, err
	}
	if err = ts.Put(ProposalSequenceKey, id+1); err != nil {
		ts.Discard()
		r.removeLock(id)
		return nil, err
	}
	if err = ts.Commit(); err != nil {
		r.removeLock(id)
		return nil, err
	}

	metrics.Voting.ProposalsTotal.Add(1)

	r.log.Debug("proposal submitted", "id", id, "proposer", proposer, "hash", p.Hash())

	observer.ProposalObserver.Trigger(observer.ProposalEvent(observer.EventSubmitted, id), *p)

	return
}

// Vote casts the vote of voter on the proposal. The voter must hold tokens
// and can vote once per proposal; a failed vote changes nothing.
func (r *Registry) Vote(voter string, id uint64, support bool) (*Proposal, error) {
	l, err := r.lock(id)
	if err != nil {
		r.rejected(voter, id, support, err)
		return nil, err
	}
	l.Lock()
	defer l.Unlock()

	checker := NewVoteChecker(r, voter, id, support)
	if err := common.RunChecker(checker, common.DefaultDeferFunc); err != nil {
		r.rejected(voter, id, support, err)
		return nil, err
	}

	p := checker.Proposal
	r.cache.Set(p)

	metrics.Voting.VotesTotal.With("support", supportLabel(support)).Add(1)
	if checker.Approved != p.IsApproved {
		r.approvedLock.Lock()
		r.locks[p.ID] = &sync.Mutex{}
		if p.IsApproved {
			r.approved++
		} else {
			r.approved--
		}
		metrics.Voting.ApprovedProposals.Set(float64(r.approved))
		r.approvedLock.Unlock()
	}

	r.log.Debug(
		"vote cast",
		"id", id,
		"voter", voter,
		"support", support,
		"weight", checker.Weight,
		"yes", p.YesVotes,
		"no", p.NoVotes,
		"approved", p.IsApproved,
	)

	observer.ProposalObserver.Trigger(observer.ProposalEvent(observer.EventVoted, id), *p, *checker.Ballot)
	if p.IsApproved && !checker.Approved {
		observer.ProposalObserver.Trigger(observer.ProposalEvent(observer.EventApproved, id), *p)
	}

	s := *p
	return &s, nil
}

// Get returns a snapshot of the proposal.
func (r *Registry) Get(id uint64) (*Proposal, error) {
	if p, found := r.cache.Get(id); found {
		return p, nil
	}

	// the cache is filled under the proposal lock, so a concurrent vote can
	// not be overwritten by an older tally.
	l, err := r.lock(id)
	if err != nil {
		return nil, err
	}
	l.Lock()
	defer l.Unlock()

	if p, found := r.cache.Get(id); found {
		return p, nil
	}

	p, err := GetProposal(r.storage, id)
	if err != nil {
		return nil, err
	}
	r.cache.Set(p)

	return p, nil
}

func (r *Registry) Count() (uint64, error) {
	return GetNextProposalID(r.storage)
}

func (r *Registry) Proposals() (func() (*Proposal, bool), func()) {
	return GetProposals(r.storage, false)
}

func (r *Registry) HasVoted(voter string, id uint64) (bool, error) {
	if exists, err := ExistsProposal(r.storage, id); err != nil {
		return false, err
	} else if !exists {
		return false, errors.UnknownProposal.Clone().SetData("id", id)
	}

	return ExistsBallot(r.storage, id, voter)
}

// Ballots iterates the voted set of the proposal.
func (r *Registry) Ballots(id uint64) (func() (*Ballot, bool), func()) {
	return GetBallots(r.storage, id)
}

func (r *Registry) ApprovedCount() uint64 {
	r.approvedLock.Lock()
	defer r.approvedLock.Unlock()

	return r.approved
}

func (r *Registry) rejected(voter string, id uint64, support bool, err error) {
	metrics.Voting.VoteRejectionsTotal.With("reason", rejectionReason(err)).Add(1)
	r.log.Debug("vote rejected", "id", id, "voter", voter, "support", support, "error", err)
}

func supportLabel(support bool) string {
	if support {
		return metrics.SupportYes
	}
	return metrics.SupportNo
}

func rejectionReason(err error) string {
	switch {
	case errors.Equal(err, errors.UnknownProposal):
		return "unknown-proposal"
	case errors.Equal(err, errors.NoWeight):
		return "no-weight"
	case errors.Equal(err, errors.AlreadyVoted):
		return "already-voted"
	default:
		return "error"
	}
}
