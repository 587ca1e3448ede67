package common

import (
	"os"
	"testing"

	logging "github.com/inconshreveable/log15"
	"github.com/stretchr/testify/require"

	"boscoin.io/votingsystem/lib/errors"
)

func TestConfigDefault(t *testing.T) {
	n := NewConfig()
	require.Equal(t, DefaultStorage, n.Storage)
	require.Equal(t, VoteWeightFlat, n.VoteWeight)
	require.Equal(t, DefaultProposalCacheSize, n.ProposalCacheSize)
	require.Equal(t, DefaultLogLevel, n.LogLvl())
	require.NoError(t, n.Validate())
}

func TestConfigFromENV(t *testing.T) {
	os.Setenv("VOTING_VOTE_WEIGHT", VoteWeightBalance)
	defer os.Unsetenv("VOTING_VOTE_WEIGHT")

	n := NewConfig()
	require.Equal(t, VoteWeightBalance, n.VoteWeight)
}

func TestConfigFromYAML(t *testing.T) {
	n, err := NewConfigFromYAML([]byte(`
storage: file:///tmp/voting
vote-weight: balance
log-level: debug
proposal-cache-size: 10
metrics: true
`))
	require.NoError(t, err)
	require.Equal(t, "file:///tmp/voting", n.Storage)
	require.Equal(t, VoteWeightBalance, n.VoteWeight)
	require.Equal(t, logging.LvlDebug, n.LogLvl())
	require.Equal(t, 10, n.ProposalCacheSize)
	require.True(t, n.Metrics)
}

func TestConfigFromYAMLKeepsDefaults(t *testing.T) {
	n, err := NewConfigFromYAML([]byte(`vote-weight: flat`))
	require.NoError(t, err)
	require.Equal(t, DefaultStorage, n.Storage)
	require.Equal(t, DefaultProposalCacheSize, n.ProposalCacheSize)
}

func TestConfigInvalid(t *testing.T) {
	{
		_, err := NewConfigFromYAML([]byte(`vote-weight: quadratic`))
		require.True(t, errors.Equal(err, errors.InvalidConfig))
	}
	{
		_, err := NewConfigFromYAML([]byte(`log-level: loud`))
		require.True(t, errors.Equal(err, errors.InvalidConfig))
	}
	{
		_, err := NewConfigFromYAML([]byte(`proposal-cache-size: 0`))
		require.True(t, errors.Equal(err, errors.InvalidConfig))
	}
	{
		_, err := NewConfigFromYAML([]byte(`storage: [`))
		require.True(t, errors.Equal(err, errors.InvalidConfig))
	}
}
