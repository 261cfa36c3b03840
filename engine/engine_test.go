package engine_test

import (
	"math/rand"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mohammadtauchid/pagesim/engine"
	"github.com/mohammadtauchid/pagesim/simulator"
)

func distinct(refs []int) int {
	seen := map[int]struct{}{}
	for _, r := range refs {
		seen[r] = struct{}{}
	}
	return len(seen)
}

func changes(refs []int) int {
	n := 0
	for i := range refs {
		if i == 0 || refs[i] != refs[i-1] {
			n++
		}
	}
	return n
}

var _ = Describe("Simulate", func() {
	textbook := []int{7, 0, 1, 2, 0, 3, 0, 4, 2, 3, 0, 3, 2}
	belady := []int{1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5}

	It("should reject fewer than one frame", func() {
		for _, frames := range []int{0, -3} {
			_, err := engine.Simulate(simulator.LRU, frames, textbook)
			Expect(err).To(MatchError(engine.ErrInvalidCapacity))
		}
	})

	It("should reject an unknown policy", func() {
		_, err := engine.Simulate(simulator.Undefined, 3, textbook)
		Expect(err).To(MatchError(simulator.ErrUnknownPolicy))
	})

	It("should count the textbook faults", func() {
		expected := map[simulator.PolicyType]int{
			simulator.FIFO:    10,
			simulator.LRU:     9,
			simulator.Optimal: 7,
		}

		for policy, faults := range expected {
			r, err := engine.Simulate(policy, 3, textbook)
			Expect(err).ToNot(HaveOccurred())
			Expect(r.Faults).To(Equal(faults), policy.String())
			Expect(r.Policy).To(Equal(policy))
		}
	})

	It("should return an empty trace for an empty stream", func() {
		for _, policy := range simulator.PolicyTypes() {
			r, err := engine.Simulate(policy, 3, []int{})
			Expect(err).ToNot(HaveOccurred())
			Expect(r.Faults).To(BeZero())
			Expect(r.Trace).To(BeEmpty())
		}
	})

	It("should fault on every change with a single frame", func() {
		refs := []int{1, 1, 2, 2, 1, 3, 3, 3, 1}
		for _, policy := range simulator.PolicyTypes() {
			r, err := engine.Simulate(policy, 1, refs)
			Expect(err).ToNot(HaveOccurred())
			Expect(r.Faults).To(Equal(changes(refs)), policy.String())
		}
	})

	It("should be idempotent", func() {
		for _, policy := range simulator.PolicyTypes() {
			first, err := engine.Simulate(policy, 3, textbook)
			Expect(err).ToNot(HaveOccurred())
			second, err := engine.Simulate(policy, 3, textbook)
			Expect(err).ToNot(HaveOccurred())
			Expect(second).To(Equal(first))
		}
	})

	It("should not modify the reference stream", func() {
		refs := slices.Clone(textbook)
		for _, policy := range simulator.PolicyTypes() {
			_, err := engine.Simulate(policy, 2, refs)
			Expect(err).ToNot(HaveOccurred())
		}
		Expect(refs).To(Equal(textbook))
	})

	It("should show Belady's anomaly only for FIFO", func() {
		faults := func(policy simulator.PolicyType, frames int) int {
			r, err := engine.Simulate(policy, frames, belady)
			Expect(err).ToNot(HaveOccurred())
			return r.Faults
		}

		Expect(faults(simulator.FIFO, 4)).To(BeNumerically(">", faults(simulator.FIFO, 3)))
		Expect(faults(simulator.LRU, 4)).To(BeNumerically("<=", faults(simulator.LRU, 3)))
		Expect(faults(simulator.Optimal, 4)).To(BeNumerically("<=", faults(simulator.Optimal, 3)))
	})

	Context("with random streams", func() {
		var rng *rand.Rand

		BeforeEach(func() {
			rng = rand.New(rand.NewSource(7))
		})

		It("should keep the structural invariants", func() {
			for round := 0; round < 300; round++ {
				refs := make([]int, rng.Intn(80))
				for i := range refs {
					refs[i] = rng.Intn(10)
				}
				frames := 1 + rng.Intn(6)

				results, err := engine.Compare(frames, refs)
				Expect(err).ToNot(HaveOccurred())

				for _, r := range results {
					Expect(r.Trace).To(HaveLen(len(refs)))
					Expect(r.Faults).To(BeNumerically("<=", len(refs)))
					Expect(r.Faults).To(BeNumerically(">=", min(frames, distinct(refs))))
					Expect(r.Faults + r.Hits).To(Equal(len(refs)))

					for i, step := range r.Trace {
						Expect(len(step.Frames)).To(BeNumerically("<=", frames))
						Expect(distinct(step.Frames)).To(Equal(len(step.Frames)))
						Expect(step.Frames).To(ContainElement(refs[i]))
					}
				}

				fifo, lru, opt := results[0], results[1], results[2]
				Expect(opt.Faults).To(BeNumerically("<=", fifo.Faults))
				Expect(opt.Faults).To(BeNumerically("<=", lru.Faults))
			}
		})
	})
})

var _ = Describe("Compare", func() {
	It("should run every policy in order", func() {
		results, err := engine.Compare(3, []int{1, 2, 3, 1})
		Expect(err).ToNot(HaveOccurred())
		Expect(results).To(HaveLen(3))
		Expect(results[0].Policy).To(Equal(simulator.FIFO))
		Expect(results[1].Policy).To(Equal(simulator.LRU))
		Expect(results[2].Policy).To(Equal(simulator.Optimal))
	})

	It("should reject an invalid frame count", func() {
		_, err := engine.Compare(0, []int{1})
		Expect(err).To(MatchError(engine.ErrInvalidCapacity))
	})
})

var _ = Describe("Sweep", func() {
	It("should run once per frame count", func() {
		results, err := engine.Sweep(simulator.FIFO, []int{3, 4}, []int{1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5})
		Expect(err).ToNot(HaveOccurred())
		Expect(results).To(HaveLen(2))
		Expect(results[0].Capacity).To(Equal(3))
		Expect(results[0].Faults).To(Equal(9))
		Expect(results[1].Capacity).To(Equal(4))
		Expect(results[1].Faults).To(Equal(10))
	})

	It("should validate every frame count before running", func() {
		_, err := engine.Sweep(simulator.LRU, []int{2, 0}, []int{1})
		Expect(err).To(MatchError(engine.ErrInvalidCapacity))
	})
})
