package contract

import (
	logging "github.com/inconshreveable/log15"

	"boscoin.io/votingsystem/lib/common"
)

var log logging.Logger = logging.New("module", "contract")

func SetLogging(level logging.Lvl, handler logging.Handler) {
	common.SetLogging(log, level, handler)
}

func init() {
	SetLogging(logging.LvlCrit, common.DefaultLogHandler)
}
