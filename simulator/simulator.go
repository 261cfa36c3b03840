package simulator

type (
	// Step records the outcome of one reference.
	Step[K comparable] struct {
		Page    K
		Fault   bool
		Evicted bool
		Victim  K   // meaningful only when Evicted is set
		Frames  []K // frame set after the reference, copied
	}

	Result[K comparable] struct {
		Policy   PolicyType
		Capacity int
		Faults   int
		Hits     int
		Trace    []Step[K]
	}
)

// References is the number of references the run consumed.
func (r Result[K]) References() int {
	return r.Faults + r.Hits
}

// FaultRatio is the share of references that faulted, in [0, 1]. An
// empty run has a ratio of 0.
func (r Result[K]) FaultRatio() float64 {
	if r.References() == 0 {
		return 0
	}

	return float64(r.Faults) / float64(r.References())
}

func (r Result[K]) HitRatio() float64 {
	if r.References() == 0 {
		return 0
	}

	return float64(r.Hits) / float64(r.References())
}

// Run drives policy over refs with capacity frames. capacity must be at
// least 1; refs is only read.
func Run[K comparable](policy Policy[K], capacity int, refs []K) Result[K] {
	frames := NewFrameSet[K](capacity)
	result := Result[K]{
		Policy:   policy.Type(),
		Capacity: capacity,
		Trace:    make([]Step[K], 0, len(refs)),
	}

	for pos, page := range refs {
		step := Step[K]{Page: page}

		switch {
		case frames.Contains(page):
			result.Hits++
		case !frames.Full():
			frames.Insert(page)
			step.Fault = true
			result.Faults++
		default:
			victim := policy.Victim(frames.Pages(), pos)
			step.Victim = frames.Replace(victim, page, policy.Placement())
			step.Evicted = true
			step.Fault = true
			result.Faults++
		}

		policy.Access(page, pos)

		step.Frames = frames.Snapshot()
		result.Trace = append(result.Trace, step)
	}

	return result
}
