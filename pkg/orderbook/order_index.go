package orderbook

import "slices"

type indexEntry struct {
	side  Side
	price int64
}

// orderIndex maps every resting order id to where it rests. An id is present
// iff the order sits in exactly one bookSide.
type orderIndex map[int64]indexEntry

func (idx orderIndex) Contains(id int64) bool {
	_, ok := idx[id]
	return ok
}

func (idx orderIndex) lookup(id int64) (indexEntry, bool) {
	e, ok := idx[id]
	return e, ok
}

func (idx orderIndex) ids() []int64 {
	ids := make([]int64, 0, len(idx))
	for id := range idx {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
