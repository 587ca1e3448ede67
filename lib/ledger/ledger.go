package ledger

import (
	"sync"

	logging "github.com/inconshreveable/log15"

	"boscoin.io/votingsystem/lib/common"
	"boscoin.io/votingsystem/lib/common/observer"
	"boscoin.io/votingsystem/lib/errors"
	"boscoin.io/votingsystem/lib/metrics"
	"boscoin.io/votingsystem/lib/storage"
)

// Ledger keeps the voting-weight balance of every holder. Balances only
// grow; there is no transfer or burn.
type Ledger struct {
	sync.RWMutex

	storage *storage.LevelDBBackend
	holders uint64
	log     logging.Logger
}

func NewLedger(st *storage.LevelDBBackend) (*Ledger, error) {
	l := &Ledger{
		storage: st,
		log:     log.New(logging.Ctx{"ledger": common.GenerateUUID()[:8]}),
	}

	iterFunc, closeFunc := GetHolders(st, false)
	defer closeFunc()
	for {
		if _, hasNext := iterFunc(); !hasNext {
			break
		}
		l.holders++
	}
	metrics.Ledger.Holders.Set(float64(l.holders))

	return l, nil
}

// Mint increases the balance of holder by amount. The holder record is
// created on the first mint.
func (l *Ledger) Mint(holder string, amount common.Amount) (err error) {
	if err = isValidHolder(holder); err != nil {
		return
	}

	l.Lock()
	defer l.Unlock()

	var h *Holder
	var exists bool
	if exists, err = ExistsHolder(l.storage, holder); err != nil {
		return
	}
	if exists {
		if h, err = GetHolder(l.storage, holder); err != nil {
			return
		}
	} else {
		h = NewHolder(holder)
	}

	var balance common.Amount
	if balance, err = h.Balance.Add(amount); err != nil {
		l.log.Debug("failed to mint", "holder", holder, "balance", h.Balance, "amount", amount, "error", err)
		return errors.BalanceOverflow.Clone().SetData("holder", holder)
	}
	h.Balance = balance

	if err = h.Save(l.storage); err != nil {
		return
	}

	if !exists {
		l.holders++
		metrics.Ledger.Holders.Set(float64(l.holders))
	}
	metrics.Ledger.MintTotal.Add(1)
	metrics.Ledger.MintedUnits.Add(float64(amount))

	l.log.Debug("minted", "holder", holder, "amount", amount, "balance", h.Balance)

	observer.LedgerObserver.Trigger(observer.AddressEvent(observer.EventMinted, holder), *h)

	return
}

// BalanceOf returns the current balance of holder; unknown holders have
// nothing.
func (l *Ledger) BalanceOf(holder string) (common.Amount, error) {
	l.RLock()
	defer l.RUnlock()

	h, err := GetHolder(l.storage, holder)
	if err != nil {
		if errors.Equal(err, errors.StorageRecordDoesNotExist) {
			return 0, nil
		}
		return 0, err
	}

	return h.Balance, nil
}

func (l *Ledger) HoldersCount() uint64 {
	l.RLock()
	defer l.RUnlock()

	return l.holders
}

func (l *Ledger) Holders() (func() (*Holder, bool), func()) {
	return GetHolders(l.storage, false)
}
