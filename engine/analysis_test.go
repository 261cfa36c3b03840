package engine_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mohammadtauchid/pagesim/engine"
	"github.com/mohammadtauchid/pagesim/simulator"
)

var _ = Describe("Rank", func() {
	It("should pick best and worst by fault count", func() {
		results, err := engine.Compare(3, []int{7, 0, 1, 2, 0, 3, 0, 4, 2, 3, 0, 3, 2})
		Expect(err).ToNot(HaveOccurred())

		ranking := engine.Rank(results)
		Expect(ranking.Best).To(Equal([]simulator.PolicyType{simulator.Optimal}))
		Expect(ranking.Worst).To(Equal([]simulator.PolicyType{simulator.FIFO}))
		Expect(ranking.MinFaults).To(Equal(7))
		Expect(ranking.MaxFaults).To(Equal(10))
	})

	It("should keep every tied policy", func() {
		results, err := engine.Compare(3, []int{1, 2, 3})
		Expect(err).ToNot(HaveOccurred())

		ranking := engine.Rank(results)
		Expect(ranking.Best).To(Equal(simulator.PolicyTypes()))
		Expect(ranking.Worst).To(Equal(simulator.PolicyTypes()))
	})

	It("should return a zero ranking for no results", func() {
		Expect(engine.Rank[int](nil)).To(Equal(engine.Ranking{}))
	})
})

var _ = Describe("Anomalies", func() {
	belady := []int{1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5}

	It("should find FIFO's anomaly regardless of sweep order", func() {
		results, err := engine.Sweep(simulator.FIFO, []int{5, 4, 3, 2}, belady)
		Expect(err).ToNot(HaveOccurred())

		anomalies := engine.Anomalies(results)
		Expect(anomalies).To(ConsistOf(engine.Anomaly{
			Policy:       simulator.FIFO,
			Frames:       3,
			Faults:       9,
			LargerFrames: 4,
			LargerFaults: 10,
		}))
	})

	It("should find nothing for LRU and Optimal", func() {
		for _, policy := range []simulator.PolicyType{simulator.LRU, simulator.Optimal} {
			results, err := engine.Sweep(policy, []int{1, 2, 3, 4, 5}, belady)
			Expect(err).ToNot(HaveOccurred())
			Expect(engine.Anomalies(results)).To(BeEmpty())
		}
	})

	It("should only compare results of the same policy", func() {
		three, err := engine.Simulate(simulator.Optimal, 3, belady)
		Expect(err).ToNot(HaveOccurred())
		four, err := engine.Simulate(simulator.FIFO, 4, belady)
		Expect(err).ToNot(HaveOccurred())

		Expect(engine.Anomalies([]simulator.Result[int]{three, four})).To(BeEmpty())
	})
})
