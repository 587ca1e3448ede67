package proposal

import (
	"encoding/json"
	"fmt"

	"boscoin.io/votingsystem/lib/common"
	"boscoin.io/votingsystem/lib/storage"
)

// Ballot is the record of one holder's vote on one proposal. the storage
// keeps,
//  * 'pv-<Ballot.ProposalID>-<Ballot.Voter>': `Ballot`
//
// The keys of one proposal form its voted set.

const BallotPrefix = "pv-"

type Ballot struct {
	ProposalID uint64        `json:"proposal_id"`
	Voter      string        `json:"voter"`
	Support    bool          `json:"support"`
	Weight     common.Amount `json:"weight"`
}

func NewBallot(id uint64, voter string, support bool, weight common.Amount) *Ballot {
	return &Ballot{
		ProposalID: id,
		Voter:      voter,
		Support:    support,
		Weight:     weight,
	}
}

func (b Ballot) String() string {
	return string(common.MustMarshalJSON(b))
}

func (b Ballot) Serialize() (encoded []byte, err error) {
	encoded, err = common.EncodeJSONValue(b)
	return
}

func getBallotPrefix(id uint64) string {
	return fmt.Sprintf("%s%020d-", BallotPrefix, id)
}

func GetBallotKey(id uint64, voter string) string {
	return fmt.Sprintf("%s%s", getBallotPrefix(id), voter)
}

func ExistsBallot(st *storage.LevelDBBackend, id uint64, voter string) (bool, error) {
	return st.Has(GetBallotKey(id, voter))
}

func GetBallot(st *storage.LevelDBBackend, id uint64, voter string) (b *Ballot, err error) {
	if err = st.Get(GetBallotKey(id, voter), &b); err != nil {
		return
	}

	return
}

// GetBallots iterates the ballots of one proposal in voter address order.
func GetBallots(st *storage.LevelDBBackend, id uint64) (func() (*Ballot, bool), func()) {
	iterFunc, closeFunc := st.GetIterator(getBallotPrefix(id), false)

	return (func() (*Ballot, bool) {
			item, hasNext := iterFunc()
			if !hasNext {
				return nil, false
			}

			var b Ballot
			if err := json.Unmarshal(item.Value, &b); err != nil {
				log.Error("found broken ballot record", "key", string(item.Key), "error", err)
				return nil, false
			}
			return &b, true
		}), (func() {
			closeFunc()
		})
}
