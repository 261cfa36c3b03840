package lru

import (
	"slices"

	"github.com/mohammadtauchid/pagesim/simulator"
	"github.com/secnot/orderedmap"
)

var _ simulator.Policy[int] = (*LRU[int])(nil)

type LRU[K comparable] struct {
	// resident pages, least recently used first; values are the
	// position of the most recent reference
	list *orderedmap.OrderedMap
}

func NewLRU[K comparable]() *LRU[K] {
	return &LRU[K]{
		list: orderedmap.NewOrderedMap(),
	}
}

func (lru *LRU[K]) Type() simulator.PolicyType {
	return simulator.LRU
}

func (lru *LRU[K]) Placement() simulator.Placement {
	return simulator.Append
}

// Access moves page to the MRU position and stamps it with pos.
func (lru *LRU[K]) Access(page K, pos int) {
	lru.list.Set(page, pos)
	lru.list.MoveLast(page)
}

// Recency returns the position of the last reference to a resident page.
func (lru *LRU[K]) Recency(page K) (pos int, ok bool) {
	v, ok := lru.list.Get(page)
	if !ok {
		return 0, false
	}

	return v.(int), true
}

// Victim evicts from the LRU end. Entries are unique in the list, so the
// first resident one found is the single least recent page.
func (lru *LRU[K]) Victim(frames []K, pos int) int {
	iter := lru.list.Iter()
	for key, _, ok := iter.Next(); ok; key, _, ok = iter.Next() {
		if i := slices.Index(frames, key.(K)); i >= 0 {
			lru.list.Delete(key)
			return i
		}
	}

	return 0
}
