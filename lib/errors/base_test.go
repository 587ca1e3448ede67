package errors

import (
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/require"
)

func TestErrorsClone(t *testing.T) {
	require.Equal(t, AlreadyVoted, AlreadyVoted)

	e := AlreadyVoted.Clone()
	e0 := e.Clone()
	require.NotEqual(t, fmt.Sprintf("%p", e), fmt.Sprintf("%p", e0))

	{
		e.Code = 200
		require.NotEqual(t, e.Code, e0.Code)
	}

	{
		e0.SetData("proposal", 1)
		require.NotEqual(t, e.Data, e0.Data)
		require.Empty(t, AlreadyVoted.Data)
	}
}

func TestErrorsRLP(t *testing.T) {
	{
		_, err := rlp.EncodeToBytes(NoWeight)
		require.NoError(t, err)
	}

	{ // with `SetData()`, the rlp encoded value must be different
		encoded, err := rlp.EncodeToBytes(NoWeight)
		require.NoError(t, err)

		e := NoWeight.Clone()
		e.SetData("holder", "GABC")
		encoded0, err := rlp.EncodeToBytes(e)
		require.NoError(t, err)
		require.NotEqual(t, encoded, encoded0)
	}
}

func TestErrorsEqual(t *testing.T) {
	require.True(t, Equal(NoWeight, NoWeight))
	require.True(t, Equal(NoWeight.Clone().SetData("holder", "GABC"), NoWeight))
	require.False(t, Equal(NoWeight, AlreadyVoted))
	require.False(t, Equal(fmt.Errorf("No tokens to vote"), NoWeight))
	require.False(t, Equal(nil, NoWeight))
}

func TestErrorsMessage(t *testing.T) {
	require.Equal(t, `{"code":120,"message":"No tokens to vote","data":{}}`, NoWeight.Error())
	require.Equal(t, "Already voted", AlreadyVoted.Message)
}
