package engine

import (
	"cmp"
	"slices"

	"github.com/mohammadtauchid/pagesim/simulator"
)

type (
	// Ranking orders policies by fault count, fewer being better. Tied
	// policies are all listed.
	Ranking struct {
		Best      []simulator.PolicyType
		Worst     []simulator.PolicyType
		MinFaults int
		MaxFaults int
	}

	// Anomaly is an instance of Belady's anomaly: more frames, more faults.
	Anomaly struct {
		Policy       simulator.PolicyType
		Frames       int
		Faults       int
		LargerFrames int
		LargerFaults int
	}
)

// Rank picks the best and worst policies out of results. It returns a
// zero Ranking for no results.
func Rank[K comparable](results []simulator.Result[K]) Ranking {
	if len(results) == 0 {
		return Ranking{}
	}

	fewest := slices.MinFunc(results, byFaults[K]).Faults
	most := slices.MaxFunc(results, byFaults[K]).Faults

	ranking := Ranking{MinFaults: fewest, MaxFaults: most}
	for _, r := range results {
		if r.Faults == fewest {
			ranking.Best = append(ranking.Best, r.Policy)
		}
		if r.Faults == most {
			ranking.Worst = append(ranking.Worst, r.Policy)
		}
	}

	return ranking
}

// Anomalies scans a sweep for adjacent frame counts where the larger one
// faults more. results may come in any order and may mix policies.
func Anomalies[K comparable](results []simulator.Result[K]) []Anomaly {
	sorted := slices.Clone(results)
	slices.SortStableFunc(sorted, func(a, b simulator.Result[K]) int {
		return cmp.Or(
			cmp.Compare(a.Policy, b.Policy),
			cmp.Compare(a.Capacity, b.Capacity),
		)
	})

	var anomalies []Anomaly
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if prev.Policy != cur.Policy || prev.Capacity == cur.Capacity {
			continue
		}

		if cur.Faults > prev.Faults {
			anomalies = append(anomalies, Anomaly{
				Policy:       cur.Policy,
				Frames:       prev.Capacity,
				Faults:       prev.Faults,
				LargerFrames: cur.Capacity,
				LargerFaults: cur.Faults,
			})
		}
	}

	return anomalies
}

func byFaults[K comparable](a, b simulator.Result[K]) int {
	return cmp.Compare(a.Faults, b.Faults)
}
