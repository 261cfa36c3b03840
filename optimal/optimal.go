package optimal

import (
	"slices"

	"github.com/mohammadtauchid/pagesim/simulator"
)

var _ simulator.Policy[int] = (*Optimal[int])(nil)

// Optimal is Belady's algorithm. It needs the whole reference stream up
// front to look ahead of the current position.
type Optimal[K comparable] struct {
	refs []K
}

// NewOptimal borrows refs for the lifetime of the run; it must be the
// same stream handed to simulator.Run.
func NewOptimal[K comparable](refs []K) *Optimal[K] {
	return &Optimal[K]{refs: refs}
}

func (o *Optimal[K]) Type() simulator.PolicyType {
	return simulator.Optimal
}

func (o *Optimal[K]) Placement() simulator.Placement {
	return simulator.InSlot
}

func (o *Optimal[K]) Access(page K, pos int) {}

// Victim picks the resident page whose next use lies farthest ahead. A
// page that is never used again wins outright; ties go to the earlier
// frame.
func (o *Optimal[K]) Victim(frames []K, pos int) int {
	var (
		rest     = o.refs[pos+1:]
		victim   = 0
		farthest = -1
	)

	for i, page := range frames {
		next := slices.Index(rest, page)
		if next < 0 {
			return i
		}

		if next > farthest {
			victim = i
			farthest = next
		}
	}

	return victim
}
