package proposal

import (
	"github.com/hashicorp/golang-lru"
)

// proposalCache keeps the recently read proposals decoded. A nil lru
// disables it.
type proposalCache struct {
	lruCache *lru.Cache
}

func newProposalCache(size int) *proposalCache {
	if size < 1 {
		return &proposalCache{}
	}

	lruCache, err := lru.New(size)
	if err != nil {
		panic(err)
	}

	return &proposalCache{lruCache: lruCache}
}

func (c *proposalCache) Get(id uint64) (*Proposal, bool) {
	if c.lruCache == nil {
		return nil, false
	}

	value, ok := c.lruCache.Get(id)
	if !ok {
		return nil, false
	}

	p, ok := value.(Proposal)
	if !ok {
		return nil, false
	}
	return &p, true
}

func (c *proposalCache) Set(p *Proposal) {
	if c.lruCache == nil {
		return
	}
	c.lruCache.Add(p.ID, *p)
}

func (c *proposalCache) Remove(id uint64) {
	if c.lruCache == nil {
		return
	}
	c.lruCache.Remove(id)
}

func (c *proposalCache) Len() int {
	if c.lruCache == nil {
		return 0
	}
	return c.lruCache.Len()
}
