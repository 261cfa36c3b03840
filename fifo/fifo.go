package fifo

import "github.com/mohammadtauchid/pagesim/simulator"

var _ simulator.Policy[int] = (*FIFO[int])(nil)

// FIFO evicts the page that has been resident longest. The frame set
// keeps insertion order itself, so the oldest page is always at the
// head and hits leave it alone.
type FIFO[K comparable] struct{}

func NewFIFO[K comparable]() *FIFO[K] {
	return &FIFO[K]{}
}

func (f *FIFO[K]) Type() simulator.PolicyType {
	return simulator.FIFO
}

func (f *FIFO[K]) Placement() simulator.Placement {
	return simulator.Append
}

func (f *FIFO[K]) Access(page K, pos int) {}

func (f *FIFO[K]) Victim(frames []K, pos int) int {
	return 0
}
