package astar

import (
	"errors"
	"iter"
	"math"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGraph indicates that a nil Graph was passed to Search.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNoPath indicates that the target cannot be reached from the source.
	ErrNoPath = errors.New("astar: no path to target")

	// ErrNegativeCost indicates that Neighbors reported an edge with cost < 0.
	ErrNegativeCost = errors.New("astar: negative edge cost")

	// ErrExpansionLimit indicates that the MaxExpansions budget ran out
	// before the target was reached.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("astar: MaxCost must be non-negative")

	// ErrBadMaxExpansions indicates that MaxExpansions was set to a negative value.
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be non-negative")
)

// Graph is the capability a node type must provide to be searched.
//
// Neighbors yields every (neighbour, cost) pair leaving n; costs must be
// non-negative and the sequence finite. Heuristic estimates the cost from
// one node to another and must not overestimate it.
type Graph[N comparable] interface {
	Neighbors(n N) iter.Seq2[N, int]
	Heuristic(from, to N) int
}

// Func adapts two closures to Graph. A nil HeuristicFunc means h ≡ 0.
type Func[N comparable] struct {
	NeighborsFunc func(n N) iter.Seq2[N, int]
	HeuristicFunc func(from, to N) int
}

// Neighbors calls f.NeighborsFunc.
func (f Func[N]) Neighbors(n N) iter.Seq2[N, int] {
	return f.NeighborsFunc(n)
}

// Heuristic calls f.HeuristicFunc, or returns 0 if it is nil.
func (f Func[N]) Heuristic(from, to N) int {
	if f.HeuristicFunc == nil {
		return 0
	}

	return f.HeuristicFunc(from, to)
}

// Result is the outcome of a successful Search.
type Result[N comparable] struct {
	Cost     int // total cost of Path
	Path     []N // source first, target last; nil unless path tracking was on
	Expanded int // nodes popped and expanded, stale entries excluded
}

// Options configures a search.
//
// MaxCost       – partial paths with g > MaxCost are pruned. Default math.MaxInt.
// MaxExpansions – stop with ErrExpansionLimit after this many expansions.
//
//	0 (default) means unlimited.
type Options struct {
	MaxCost       int
	MaxExpansions int
	trackPath     bool
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithMaxCost prunes every partial path whose cost exceeds max.
// A target farther than max is reported as unreachable.
// Panics with ErrBadMaxCost if max < 0.
func WithMaxCost(max int) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithMaxExpansions bounds the number of expanded nodes; 0 disables the bound.
// Panics with ErrBadMaxExpansions if n < 0.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// withPath turns on back-pointer tracking. Path and Search set it.
func withPath() Option {
	return func(o *Options) {
		o.trackPath = true
	}
}

// DefaultOptions returns the configuration used when no Option is given:
// no cost cap, no expansion cap, no path tracking.
func DefaultOptions() Options {
	return Options{
		MaxCost:       math.MaxInt,
		MaxExpansions: 0,
	}
}
