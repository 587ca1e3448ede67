package common

import (
	"testing"

	"github.com/btcsuite/btcutil/base58"
	"github.com/stretchr/testify/require"
)

type hashTarget struct {
	ID     uint64
	Name   string
	Amount Amount
}

func TestMakeObjectHash(t *testing.T) {
	a := hashTarget{ID: 1, Name: "Proposal 1", Amount: Amount(100)}
	b := hashTarget{ID: 1, Name: "Proposal 1", Amount: Amount(100)}
	c := hashTarget{ID: 1, Name: "Proposal 1", Amount: Amount(101)}

	ha, err := MakeObjectHash(a)
	require.NoError(t, err)
	require.Equal(t, 32, len(ha))
	require.Equal(t, ha, MustMakeObjectHash(b))
	require.NotEqual(t, ha, MustMakeObjectHash(c))

	s, err := MakeObjectHashString(a)
	require.NoError(t, err)
	require.Equal(t, ha, base58.Decode(s))
}

func TestMakeObjectHashNotEncodable(t *testing.T) {
	_, err := MakeObjectHash(struct{ F float64 }{1.5})
	require.Error(t, err)

	_, err = MakeObjectHashString(struct{ F float64 }{1.5})
	require.Error(t, err)
}
