package tracker

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

// nameIndex remembers vessel names from static reports so position-only
// messages can be labelled. Entries age out with the store TTL.
type nameIndex struct {
	c *cache.Cache
}

func newNameIndex(ttl time.Duration) *nameIndex {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &nameIndex{c: cache.New(ttl, ttl/4)}
}

func (n *nameIndex) Set(mmsi uint32, name string) {
	if name == "" {
		return
	}
	n.c.SetDefault(strconv.FormatUint(uint64(mmsi), 10), name)
}

func (n *nameIndex) Get(mmsi uint32) (string, bool) {
	v, found := n.c.Get(strconv.FormatUint(uint64(mmsi), 10))
	if !found {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}
