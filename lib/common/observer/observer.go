package observer

import (
	"fmt"

	"github.com/GianlucaGuarini/go-observable"
)

var LedgerObserver = observable.New()
var ProposalObserver = observable.New()

const (
	EventMinted    = "minted"
	EventSubmitted = "submitted"
	EventVoted     = "voted"
	EventApproved  = "approved"
)

// AddressEvent names the event together with the holder condition, like
// "minted address-GABC...". go-observable splits the names by space, so the
// callbacks of "minted" and of "address-GABC..." are both called.
func AddressEvent(event, address string) string {
	return fmt.Sprintf("%s %s", event, AddressCondition(address))
}

// ProposalEvent names the event together with the proposal condition, like
// "voted id-3".
func ProposalEvent(event string, id uint64) string {
	return fmt.Sprintf("%s %s", event, ProposalCondition(id))
}

func AddressCondition(address string) string {
	return fmt.Sprintf("address-%s", address)
}

func ProposalCondition(id uint64) string {
	return fmt.Sprintf("id-%d", id)
}
