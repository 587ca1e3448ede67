package storage

import (
	"net/url"

	"boscoin.io/votingsystem/lib/errors"
)

// Config is parsed from a storage uri:
//  * `memory://`: in-memory leveldb
//  * `file:///path/to/db`: leveldb files under the path
type Config struct {
	Scheme string
	Path   string
}

func NewConfigFromString(s string) (*Config, error) {
	parsed, err := url.Parse(s)
	if err != nil {
		return nil, errors.UnknownStorageScheme.Clone().SetData("storage", s)
	}

	config := &Config{Scheme: parsed.Scheme}

	switch parsed.Scheme {
	case "memory":
	case "file":
		config.Path = parsed.Path
		if len(config.Path) < 1 {
			return nil, errors.UnknownStorageScheme.Clone().SetData("storage", s)
		}
	default:
		return nil, errors.UnknownStorageScheme.Clone().SetData("storage", s)
	}

	return config, nil
}

func (c Config) String() string {
	if c.Scheme == "memory" {
		return "memory://"
	}

	u := url.URL{Scheme: c.Scheme, Path: c.Path}
	return u.String()
}
