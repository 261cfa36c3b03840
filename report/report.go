// Package report renders simulation results as plain text.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mohammadtauchid/pagesim/engine"
	"github.com/mohammadtauchid/pagesim/simulator"
	"github.com/rs/xid"
)

const chartWidth = 40

// remarks on each policy, used when it comes out best or worst
var (
	strengths = map[simulator.PolicyType]string{
		simulator.FIFO:    "FIFO works well when the reference order is predictable, but it can suffer from Belady's anomaly.",
		simulator.LRU:     "LRU is efficient when recently used pages are likely to be used again soon.",
		simulator.Optimal: "Optimal is the lower bound, but it needs knowledge of future references.",
	}
	weaknesses = map[simulator.PolicyType]string{
		simulator.FIFO:    "FIFO ignores how often and how recently a page is used.",
		simulator.LRU:     "LRU has to keep usage history for every resident page.",
		simulator.Optimal: "Optimal is theoretical and cannot be implemented by a real system.",
	}
)

// WriteResult prints the summary counters of one run.
func WriteResult[K comparable](w io.Writer, r simulator.Result[K]) error {
	_, err := fmt.Fprintf(w,
		"policy: %s\nframes: %d\nreferences: %d\npage faults: %d\npage hits: %d\nhit ratio: %.4f%%\n",
		r.Policy, r.Capacity, r.References(), r.Faults, r.Hits, r.HitRatio()*100,
	)

	return err
}

// WriteTrace prints the frame set after every step, numbered from 1.
func WriteTrace[K comparable](w io.Writer, r simulator.Result[K]) error {
	for i, step := range r.Trace {
		outcome := "hit"
		switch {
		case step.Evicted:
			outcome = fmt.Sprintf("fault, evicted %v", step.Victim)
		case step.Fault:
			outcome = "fault"
		}

		if _, err := fmt.Fprintf(w, "Step %d: %v -> %v (%s)\n", i+1, step.Page, step.Frames, outcome); err != nil {
			return err
		}
	}

	return nil
}

// WriteComparison prints a bar chart of fault counts followed by the
// best and worst policies and a remark on each.
func WriteComparison[K comparable](w io.Writer, results []simulator.Result[K]) error {
	if len(results) == 0 {
		return nil
	}

	var b strings.Builder
	ranking := engine.Rank(results)

	fmt.Fprintf(&b, "Comparison of page faults (%d frames, %d references)\n",
		results[0].Capacity, results[0].References())
	for _, r := range results {
		fmt.Fprintf(&b, "%-8s | %-*s %d\n", r.Policy, chartWidth, bar(r.Faults, ranking.MaxFaults), r.Faults)
	}

	fmt.Fprintf(&b, "\nBest: %s with the fewest page faults (%d).\n", join(ranking.Best), ranking.MinFaults)
	fmt.Fprintf(&b, "Worst: %s with the most page faults (%d).\n", join(ranking.Worst), ranking.MaxFaults)

	for _, p := range ranking.Best {
		fmt.Fprintln(&b, strengths[p])
	}
	// a three-way tie has no worst policy worth commenting on
	if ranking.MinFaults != ranking.MaxFaults {
		for _, p := range ranking.Worst {
			fmt.Fprintln(&b, weaknesses[p])
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSweep prints fault counts per frame count and any Belady's
// anomaly found between them.
func WriteSweep[K comparable](w io.Writer, results []simulator.Result[K]) error {
	var b strings.Builder

	for _, r := range results {
		fmt.Fprintf(&b, "%s frames=%d faults=%d hit ratio=%.4f%%\n", r.Policy, r.Capacity, r.Faults, r.HitRatio()*100)
	}

	anomalies := engine.Anomalies(results)
	if len(anomalies) == 0 {
		fmt.Fprintln(&b, "no Belady's anomaly")
	}
	for _, a := range anomalies {
		fmt.Fprintf(&b, "Belady's anomaly: %s faults %d times with %d frames but %d times with %d frames\n",
			a.Policy, a.Faults, a.Frames, a.LargerFaults, a.LargerFrames)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Create opens a new report file at dir/<name>/<id>_<name>.txt. The id
// is unique per call so earlier reports are never overwritten.
func Create(dir, name string) (*os.File, error) {
	name = strings.ToLower(name)

	folder := filepath.Join(dir, name)
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return nil, err
	}

	path := filepath.Join(folder, fmt.Sprintf("%s_%s.txt", xid.New().String(), name))

	return os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
}

func bar(faults, most int) string {
	if most == 0 {
		return ""
	}

	return strings.Repeat("#", faults*chartWidth/most)
}

func join(policies []simulator.PolicyType) string {
	names := make([]string, len(policies))
	for i, p := range policies {
		names[i] = p.String()
	}

	return strings.Join(names, ", ")
}
