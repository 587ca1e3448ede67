//
// Define the `Amount` type, the voting-weight unit held by every holder.
//
// An `Amount` only grows: holders are minted into, never debited. The only
// bound is the range of `uint64`.
// - `Add` does an addition and returns an error object on overflow
// - `MustAdd` calls `Add` and turns any `error` into a `panic`.
//   It is provided for testing and should not be in production code.
//
package common

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/ethereum/go-ethereum/rlp"

	"boscoin.io/votingsystem/lib/errors"
)

type Amount uint64

const MaximumAmount Amount = Amount(math.MaxUint64)

func (a Amount) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, uint64(a))
}

// Stringer interface implementation
func (a Amount) String() string {
	return strconv.FormatUint(uint64(a), 10)
}

func (a Amount) IsZero() bool {
	return a == 0
}

//
// Add an `Amount` to this `Amount`
//
// If the result would overflow `uint64`, `errors.BalanceOverflow` is returned
// along with the unchanged value.
//
func (a Amount) Add(added Amount) (Amount, error) {
	if MaximumAmount-a < added {
		return a, errors.BalanceOverflow
	}
	return a + added, nil
}

// Counterpart of `Add` which panic instead of returning an error
func (a Amount) MustAdd(added Amount) Amount {
	if v, err := a.Add(added); err != nil {
		panic(err)
	} else {
		return v
	}
}

// Implement JSON's Marshaler interface
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("\"%s\"", a.String())), nil
}

// Implement JSON's Unmarshaler interface
func (a *Amount) UnmarshalJSON(b []byte) (err error) {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid amount: %s", string(b))
	}
	*a, err = AmountFromString(string(b[1 : len(b)-1]))
	return
}

// Parse an `Amount` from a string consisting only of numbers
func AmountFromString(str string) (Amount, error) {
	if value, err := strconv.ParseUint(str, 10, 64); err != nil {
		return 0, err
	} else {
		return Amount(value), nil
	}
}

// Same as AmountFromString, except it `panic`s if an error happens
func MustAmountFromString(str string) Amount {
	if value, err := AmountFromString(str); err != nil {
		panic(err)
	} else {
		return value
	}
}
