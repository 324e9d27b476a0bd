package trekpoint

import (
	"fmt"

	"github.com/golang/groupcache/lru"
	"github.com/mitchellh/hashstructure/v2"
	"github.com/trailsense/graded/params"
)

// NewDedupeLRUFunc returns a predicate that passes a point the first
// time it is seen and rejects repeats, using an LRU of feature hashes.
// Trackers re-push fixes on flaky uplinks; a duplicated fix makes a
// zero-distance pair downstream, so dedupe runs ahead of the engine.
func NewDedupeLRUFunc() func(TrekPoint) bool {
	var dedupeCache = lru.New(params.DefaultBatchSize)
	return func(point TrekPoint) bool {
		hash, err := hashstructure.Hash(point, hashstructure.FormatV2, nil)
		if err != nil {
			return false
		}
		key := fmt.Sprintf("%d", hash)
		_, ok := dedupeCache.Get(key)
		if ok {
			return false
		}
		dedupeCache.Add(key, true)
		return true
	}
}
