package simulator

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownPolicy = errors.New("unknown replacement policy")

type PolicyType uint

const (
	Undefined PolicyType = iota
	FIFO
	LRU
	Optimal
)

// PolicyTypes lists every supported policy in reporting order.
func PolicyTypes() []PolicyType {
	return []PolicyType{FIFO, LRU, Optimal}
}

func (p PolicyType) String() string {
	switch p {
	case FIFO:
		return "FIFO"
	case LRU:
		return "LRU"
	case Optimal:
		return "Optimal"
	default:
		return "Undefined"
	}
}

// ParsePolicyType matches a policy name case-insensitively. "OPT" is
// accepted as a short form of Optimal.
func ParsePolicyType(name string) (PolicyType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fifo":
		return FIFO, nil
	case "lru":
		return LRU, nil
	case "optimal", "opt":
		return Optimal, nil
	}

	return Undefined, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// Placement says where an incoming page lands after an eviction.
type Placement uint

const (
	// Append removes the victim and appends the incoming page at the tail.
	Append Placement = iota
	// InSlot overwrites the victim's frame with the incoming page.
	InSlot
)

// Policy is the eviction strategy driven by Run. An instance serves a
// single run and may keep private bookkeeping between calls.
type Policy[K comparable] interface {
	Type() PolicyType
	Placement() Placement

	// Access is called once per reference, hit or fault, after the frame
	// set has been updated for that reference.
	Access(page K, pos int)

	// Victim returns the index within frames of the page to evict. It is
	// only called when frames is full and the page at pos is not
	// resident. The returned page is always evicted.
	Victim(frames []K, pos int) int
}
