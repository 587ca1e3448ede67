//
// Encapsulate Stellar's keypair package
//
// Holder and sender identities are stellar addresses; this package provides
// the aliases and helpers used to validate them.
//
package keypair

import (
	stellar "github.com/stellar/go/keypair"
)

// Aliases to stellar types
type Full = stellar.Full
type KP = stellar.KP

// Aliases to stellar functions
var Parse = stellar.Parse
var RandomCanFail = stellar.Random

// IsValidAddress reports whether address is a well-formed public address.
// Secret seeds are rejected.
func IsValidAddress(address string) bool {
	kp, err := stellar.Parse(address)
	if err != nil {
		return false
	}

	_, ok := kp.(*stellar.FromAddress)
	return ok
}
