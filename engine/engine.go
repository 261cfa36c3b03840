// Package engine is the validated entry point to the replacement
// simulator. It builds the policy for a run, checks the frame count and
// hands both to simulator.Run.
package engine

import (
	"errors"
	"fmt"

	"github.com/mohammadtauchid/pagesim/fifo"
	"github.com/mohammadtauchid/pagesim/lru"
	"github.com/mohammadtauchid/pagesim/optimal"
	"github.com/mohammadtauchid/pagesim/simulator"
)

var ErrInvalidCapacity = errors.New("frame count must be at least 1")

// NewPolicy returns a fresh policy instance for one run over refs.
func NewPolicy[K comparable](policy simulator.PolicyType, refs []K) (simulator.Policy[K], error) {
	switch policy {
	case simulator.FIFO:
		return fifo.NewFIFO[K](), nil
	case simulator.LRU:
		return lru.NewLRU[K](), nil
	case simulator.Optimal:
		return optimal.NewOptimal(refs), nil
	}

	return nil, fmt.Errorf("%w: %v", simulator.ErrUnknownPolicy, policy)
}

// Simulate runs one policy over refs with the given number of frames.
// Calls share no state; identical arguments give identical results.
func Simulate[K comparable](policy simulator.PolicyType, frames int, refs []K) (simulator.Result[K], error) {
	if frames < 1 {
		return simulator.Result[K]{}, fmt.Errorf("%w: got %d", ErrInvalidCapacity, frames)
	}

	p, err := NewPolicy(policy, refs)
	if err != nil {
		return simulator.Result[K]{}, err
	}

	return simulator.Run(p, frames, refs), nil
}

// Compare runs every policy over the same stream, in FIFO, LRU, Optimal
// order.
func Compare[K comparable](frames int, refs []K) ([]simulator.Result[K], error) {
	types := simulator.PolicyTypes()
	results := make([]simulator.Result[K], 0, len(types))

	for _, policy := range types {
		result, err := Simulate(policy, frames, refs)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

// Sweep runs one policy once per frame count, in the order given.
func Sweep[K comparable](policy simulator.PolicyType, frameCounts []int, refs []K) ([]simulator.Result[K], error) {
	for _, frames := range frameCounts {
		if frames < 1 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, frames)
		}
	}

	results := make([]simulator.Result[K], 0, len(frameCounts))
	for _, frames := range frameCounts {
		result, err := Simulate(policy, frames, refs)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}
