package proposal

import (
	"encoding/json"
	"fmt"

	"boscoin.io/votingsystem/lib/common"
	"boscoin.io/votingsystem/lib/errors"
	"boscoin.io/votingsystem/lib/storage"
)

// Proposal is the tally of one submitted proposal. the storage keeps,
//  * 'pp-id-<Proposal.ID>': `Proposal`
//  * 'pp-sequence': the id of the next proposal
//
// The id is zero padded, so the 'pp-id-' prefix iterates in submission
// order.

const (
	ProposalPrefixID    = "pp-id-"
	ProposalSequenceKey = "pp-sequence"
)

type Proposal struct {
	ID          uint64        `json:"id"`
	Proposer    string        `json:"proposer"`
	Description string        `json:"description"`
	YesVotes    common.Amount `json:"yes_votes"`
	NoVotes     common.Amount `json:"no_votes"`
	IsApproved  bool          `json:"is_approved"`
}

func NewProposal(id uint64, proposer, description string) *Proposal {
	return &Proposal{
		ID:          id,
		Proposer:    proposer,
		Description: description,
	}
}

func (p Proposal) String() string {
	return string(common.MustMarshalJSON(p))
}

func (p Proposal) Serialize() (encoded []byte, err error) {
	encoded, err = common.EncodeJSONValue(p)
	return
}

func (p *Proposal) Deserialize(encoded []byte) (err error) {
	return common.DecodeJSONValue(encoded, p)
}

// Hash is the base58 object hash of the current tally.
func (p Proposal) Hash() string {
	h, _ := common.MakeObjectHashString(p)
	return h
}

func (p Proposal) TotalVotes() common.Amount {
	return p.YesVotes + p.NoVotes
}

// apply adds weight to the chosen side and recomputes the approval. p is
// left untouched when the tally would overflow.
func (p *Proposal) apply(support bool, weight common.Amount) (err error) {
	var tally common.Amount
	if support {
		if tally, err = p.YesVotes.Add(weight); err != nil {
			return
		}
		p.YesVotes = tally
	} else {
		if tally, err = p.NoVotes.Add(weight); err != nil {
			return
		}
		p.NoVotes = tally
	}

	// a tie is not approved
	p.IsApproved = p.YesVotes > p.NoVotes

	return
}

func GetProposalKey(id uint64) string {
	return fmt.Sprintf("%s%020d", ProposalPrefixID, id)
}

func ExistsProposal(st *storage.LevelDBBackend, id uint64) (bool, error) {
	return st.Has(GetProposalKey(id))
}

func GetProposal(st *storage.LevelDBBackend, id uint64) (p *Proposal, err error) {
	if err = st.Get(GetProposalKey(id), &p); err != nil {
		if errors.Equal(err, errors.StorageRecordDoesNotExist) {
			err = errors.UnknownProposal.Clone().SetData("id", id)
		}
		return
	}

	return
}

func GetProposals(st *storage.LevelDBBackend, reverse bool) (func() (*Proposal, bool), func()) {
	iterFunc, closeFunc := st.GetIterator(ProposalPrefixID, reverse)

	return (func() (*Proposal, bool) {
			item, hasNext := iterFunc()
			if !hasNext {
				return nil, false
			}

			var p Proposal
			if err := json.Unmarshal(item.Value, &p); err != nil {
				log.Error("found broken proposal record", "key", string(item.Key), "error", err)
				return nil, false
			}
			return &p, true
		}), (func() {
			closeFunc()
		})
}

// GetNextProposalID returns the id the next submitted proposal takes, which
// is also the number of proposals.
func GetNextProposalID(st *storage.LevelDBBackend) (id uint64, err error) {
	if err = st.Get(ProposalSequenceKey, &id); err != nil {
		if errors.Equal(err, errors.StorageRecordDoesNotExist) {
			return 0, nil
		}
		return
	}

	return
}
