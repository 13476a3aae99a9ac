package export

import "fmt"

// idAllocator hands out zero-padded IDs like "DMD_0001". Counters are
// per export call, never shared, so concurrent exports cannot collide.
type idAllocator struct {
	prefix string
	n      int
}

func (a *idAllocator) next() string {
	a.n++
	return fmt.Sprintf("%s_%04d", a.prefix, a.n)
}
