package common

import (
	"fmt"

	logging "github.com/inconshreveable/log15"
	"gopkg.in/yaml.v2"

	"boscoin.io/votingsystem/lib/errors"
)

const (
	VoteWeightFlat    = "flat"
	VoteWeightBalance = "balance"

	DefaultStorage           = "memory://"
	DefaultProposalCacheSize = 128
)

//
// Config holds the settings of the ledger and the proposal registry.
//
// `VoteWeight` selects how a holder's balance turns into voting weight;
// "flat" counts one unit per holder, "balance" counts the whole balance.
//
type Config struct {
	Storage           string `yaml:"storage"`
	VoteWeight        string `yaml:"vote-weight"`
	LogLevel          string `yaml:"log-level"`
	ProposalCacheSize int    `yaml:"proposal-cache-size"`
	Metrics           bool   `yaml:"metrics"`
}

func NewConfig() Config {
	p := Config{}

	p.Storage = GetENVValue("VOTING_STORAGE", DefaultStorage)
	p.VoteWeight = GetENVValue("VOTING_VOTE_WEIGHT", VoteWeightFlat)
	p.LogLevel = GetENVValue("VOTING_LOG_LEVEL", DefaultLogLevel.String())
	p.ProposalCacheSize = DefaultProposalCacheSize
	p.Metrics = GetENVValue("VOTING_METRICS", "") == "true"

	return p
}

// NewConfigFromYAML overlays the yaml document on top of `NewConfig()`.
func NewConfigFromYAML(b []byte) (Config, error) {
	p := NewConfig()
	if err := yaml.Unmarshal(b, &p); err != nil {
		return p, errors.InvalidConfig.Clone().SetData("error", err.Error())
	}

	if err := p.Validate(); err != nil {
		return p, err
	}

	return p, nil
}

func (p Config) Validate() error {
	switch p.VoteWeight {
	case VoteWeightFlat, VoteWeightBalance:
	default:
		return errors.InvalidConfig.Clone().SetData("vote-weight", p.VoteWeight)
	}

	if _, err := logging.LvlFromString(p.LogLevel); err != nil {
		return errors.InvalidConfig.Clone().SetData("log-level", p.LogLevel)
	}

	if p.ProposalCacheSize < 1 {
		return errors.InvalidConfig.Clone().SetData(
			"proposal-cache-size",
			fmt.Sprintf("%d", p.ProposalCacheSize),
		)
	}

	if len(p.Storage) < 1 {
		return errors.InvalidConfig.Clone().SetData("storage", p.Storage)
	}

	return nil
}

func (p Config) LogLvl() logging.Lvl {
	lvl, err := logging.LvlFromString(p.LogLevel)
	if err != nil {
		return DefaultLogLevel
	}
	return lvl
}
