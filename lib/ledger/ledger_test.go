package ledger

import (
	"math"
	"sync"
	"testing"

	logging "github.com/inconshreveable/log15"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"boscoin.io/votingsystem/lib/common"
	"boscoin.io/votingsystem/lib/common/keypair"
	"boscoin.io/votingsystem/lib/common/observer"
	"boscoin.io/votingsystem/lib/common/test"
	"boscoin.io/votingsystem/lib/errors"
	"boscoin.io/votingsystem/lib/storage"
)

func init() {
	SetLogging(logging.LvlDebug, test.LogHandler())
}

func newTestLedger(t *testing.T) (*Ledger, *storage.LevelDBBackend) {
	st, err := storage.NewTestMemoryLevelDBBackend()
	require.NoError(t, err)

	l, err := NewLedger(st)
	require.NoError(t, err)

	return l, st
}

func TestLedgerMint(t *testing.T) {
	l, st := newTestLedger(t)
	defer st.Close()

	holder := keypair.Random().Address()

	require.NoError(t, l.Mint(holder, 100))

	balance, err := l.BalanceOf(holder)
	require.NoError(t, err)
	require.Equal(t, common.Amount(100), balance)

	require.NoError(t, l.Mint(holder, 50))
	balance, err = l.BalanceOf(holder)
	require.NoError(t, err)
	require.Equal(t, common.Amount(150), balance)
	require.Equal(t, uint64(1), l.HoldersCount())
}

func TestLedgerBalanceOfUnknown(t *testing.T) {
	l, st := newTestLedger(t)
	defer st.Close()

	balance, err := l.BalanceOf(keypair.Random().Address())
	require.NoError(t, err)
	require.True(t, balance.IsZero())
	require.Equal(t, uint64(0), l.HoldersCount())
}

func TestLedgerMintZero(t *testing.T) {
	l, st := newTestLedger(t)
	defer st.Close()

	holder := keypair.Random().Address()
	require.NoError(t, l.Mint(holder, 0))

	balance, err := l.BalanceOf(holder)
	require.NoError(t, err)
	require.True(t, balance.IsZero())

	exists, err := ExistsHolder(st, holder)
	require.NoError(t, err)
	require.True(t, exists)
}

func TestLedgerMintInvalidHolder(t *testing.T) {
	l, st := newTestLedger(t)
	defer st.Close()

	err := l.Mint("", 100)
	require.Error(t, err)
	require.True(t, errors.Equal(err, errors.InvalidHolder))
	require.Equal(t, uint64(0), l.HoldersCount())
}

func TestLedgerMintOverflow(t *testing.T) {
	l, st := newTestLedger(t)
	defer st.Close()

	holder := keypair.Random().Address()
	require.NoError(t, l.Mint(holder, common.Amount(math.MaxUint64-1)))

	err := l.Mint(holder, 2)
	require.Error(t, err)
	require.True(t, errors.Equal(err, errors.BalanceOverflow))
	require.Equal(t, holder, err.(*errors.Error).Data["holder"])

	balance, err := l.BalanceOf(holder)
	require.NoError(t, err)
	require.Equal(t, common.Amount(math.MaxUint64-1), balance)
}

func TestLedgerReopen(t *testing.T) {
	st, err := storage.NewTestMemoryLevelDBBackend()
	require.NoError(t, err)
	defer st.Close()

	l, err := NewLedger(st)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, l.Mint(keypair.Random().Address(), 10))
	}

	reopened, err := NewLedger(st)
	require.NoError(t, err)
	require.Equal(t, uint64(3), reopened.HoldersCount())
}

func TestLedgerHolders(t *testing.T) {
	l, st := newTestLedger(t)
	defer st.Close()

	minted := map[string]common.Amount{}
	for i := 0; i < 10; i++ {
		holder := keypair.Random().Address()
		amount := common.Amount(i + 1)
		require.NoError(t, l.Mint(holder, amount))
		minted[holder] = amount
	}

	var last string
	found := map[string]common.Amount{}
	iterFunc, closeFunc := l.Holders()
	for {
		h, hasNext := iterFunc()
		if !hasNext {
			break
		}
		require.True(t, last < h.Address, "holders are not in address order")
		last = h.Address
		found[h.Address] = h.Balance
	}
	closeFunc()

	require.Equal(t, minted, found)
}

func TestLedgerObserver(t *testing.T) {
	l, st := newTestLedger(t)
	defer st.Close()

	holder := keypair.Random().Address()

	var wg sync.WaitGroup
	wg.Add(1)

	var triggered Holder
	observerFunc := func(args ...interface{}) {
		triggered = args[0].(Holder)
		wg.Done()
	}
	observer.LedgerObserver.On(observer.AddressCondition(holder), observerFunc)
	defer observer.LedgerObserver.Off(observer.AddressCondition(holder), observerFunc)

	require.NoError(t, l.Mint(holder, 100))

	wg.Wait()

	require.Equal(t, holder, triggered.Address)
	require.Equal(t, common.Amount(100), triggered.Balance)
}

func TestLedgerConcurrentMint(t *testing.T) {
	l, st := newTestLedger(t)
	defer st.Close()

	holder := keypair.Random().Address()

	var g errgroup.Group
	for i := 0; i < 50; i++ {
		g.Go(func() error {
			return l.Mint(holder, 2)
		})
	}
	require.NoError(t, g.Wait())

	balance, err := l.BalanceOf(holder)
	require.NoError(t, err)
	require.Equal(t, common.Amount(100), balance)
	require.Equal(t, uint64(1), l.HoldersCount())
}
