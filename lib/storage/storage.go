package storage

type IterItem struct {
	N     uint64
	Key   []byte
	Value []byte
}

func NewStorage(config *Config) (*LevelDBBackend, error) {
	st := &LevelDBBackend{}
	if err := st.Init(config); err != nil {
		return nil, err
	}

	return st, nil
}
