package ledger

import (
	"encoding/json"
	"fmt"

	"boscoin.io/votingsystem/lib/common"
	"boscoin.io/votingsystem/lib/errors"
	"boscoin.io/votingsystem/lib/storage"
)

// Holder is the balance record of one identity. the storage keeps,
//  * 'lh-address-<Holder.Address>': `Holder`
//
// Iterating the 'lh-address-' prefix lists holders in address order.

const HolderPrefixAddress = "lh-address-"

type Holder struct {
	Address string        `json:"address"`
	Balance common.Amount `json:"balance"`
}

func NewHolder(address string) *Holder {
	return &Holder{
		Address: address,
	}
}

func (h *Holder) String() string {
	return string(common.MustMarshalJSON(h))
}

func (h *Holder) Serialize() (encoded []byte, err error) {
	encoded, err = common.EncodeJSONValue(h)
	return
}

func (h *Holder) Deserialize(encoded []byte) (err error) {
	return common.DecodeJSONValue(encoded, h)
}

func (h *Holder) Save(st *storage.LevelDBBackend) error {
	return st.Put(GetHolderKey(h.Address), h)
}

func GetHolderKey(address string) string {
	return fmt.Sprintf("%s%s", HolderPrefixAddress, address)
}

func ExistsHolder(st *storage.LevelDBBackend, address string) (bool, error) {
	return st.Has(GetHolderKey(address))
}

func GetHolder(st *storage.LevelDBBackend, address string) (h *Holder, err error) {
	if err = st.Get(GetHolderKey(address), &h); err != nil {
		return
	}

	return
}

func GetHolders(st *storage.LevelDBBackend, reverse bool) (func() (*Holder, bool), func()) {
	iterFunc, closeFunc := st.GetIterator(HolderPrefixAddress, reverse)

	return (func() (*Holder, bool) {
			item, hasNext := iterFunc()
			if !hasNext {
				return nil, false
			}

			var h Holder
			if err := json.Unmarshal(item.Value, &h); err != nil {
				log.Error("found broken holder record", "key", string(item.Key), "error", err)
				return nil, false
			}
			return &h, true
		}), (func() {
			closeFunc()
		})
}

func isValidHolder(address string) error {
	if len(address) < 1 {
		return errors.InvalidHolder
	}
	return nil
}
