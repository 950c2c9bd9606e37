package boxid

import (
	"strings"

	"github.com/ecodeclub/ekit/mapx"
)

// Counter tallies string values and remembers the order in which each value
// was first added.
type Counter struct {
	counts *mapx.LinkedMap[string, int]
	n      int
}

func NewCounter() *Counter {
	counts, err := mapx.NewLinkedTreeMap[string, int](strings.Compare)
	if err != nil {
		// only a nil comparator is rejected
		panic(err)
	}
	return &Counter{counts: counts}
}

// Add increments the count of v and returns the new count.
func (c *Counter) Add(v string) int {
	cnt, ok := c.counts.Get(v)
	if !ok {
		c.n++
	}
	cnt += 1
	// tree-backed Put only fails for a nil comparator
	_ = c.counts.Put(v, cnt)
	return cnt
}

func (c *Counter) Count(v string) int {
	cnt, _ := c.counts.Get(v)
	return cnt
}

// Keys returns the distinct values in first-insertion order.
func (c *Counter) Keys() []string {
	return c.counts.Keys()
}

func (c *Counter) Len() int {
	return c.n
}
