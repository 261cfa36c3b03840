package simulator

import "slices"

// FrameSet holds the resident pages of a run in frame order. It never
// exceeds its capacity and never holds the same page twice.
type FrameSet[K comparable] struct {
	capacity int
	pages    []K
	resident map[K]struct{}
}

func NewFrameSet[K comparable](capacity int) *FrameSet[K] {
	return &FrameSet[K]{
		capacity: capacity,
		pages:    make([]K, 0, capacity),
		resident: make(map[K]struct{}, capacity),
	}
}

func (f *FrameSet[K]) Len() int {
	return len(f.pages)
}

func (f *FrameSet[K]) Cap() int {
	return f.capacity
}

func (f *FrameSet[K]) Full() bool {
	return len(f.pages) >= f.capacity
}

func (f *FrameSet[K]) Contains(page K) bool {
	_, ok := f.resident[page]
	return ok
}

// Pages returns the live backing slice. Callers must not modify it.
func (f *FrameSet[K]) Pages() []K {
	return f.pages
}

// Snapshot returns a copy that later mutation of f never touches.
func (f *FrameSet[K]) Snapshot() []K {
	return slices.Clone(f.pages)
}

// Insert appends page to a frame set with room left. It reports false
// when the set is full or the page is already resident.
func (f *FrameSet[K]) Insert(page K) bool {
	if f.Full() || f.Contains(page) {
		return false
	}

	f.pages = append(f.pages, page)
	f.resident[page] = struct{}{}

	return true
}

// Replace evicts the page at index i and brings page in according to
// placement. It returns the evicted page.
func (f *FrameSet[K]) Replace(i int, page K, placement Placement) (evicted K) {
	evicted = f.pages[i]
	delete(f.resident, evicted)

	switch placement {
	case InSlot:
		f.pages[i] = page
	default:
		f.pages = append(slices.Delete(f.pages, i, i+1), page)
	}

	f.resident[page] = struct{}{}

	return evicted
}
