package astar

import (
	"container/heap"
	"fmt"
	"math"
	"slices"
)

// Distance returns the minimal total cost from `from` to `to`, or false if
// the target is unreachable. Reaching the source itself costs 0.
func Distance[N comparable](g Graph[N], from, to N, opts ...Option) (int, bool) {
	res, err := run(g, from, to, opts)
	if err != nil {
		return 0, false
	}

	return res.Cost, true
}

// Path returns one cheapest route from `from` to `to`, both endpoints
// included. It returns nil when the target is unreachable and []N{from}
// when from == to.
func Path[N comparable](g Graph[N], from, to N, opts ...Option) []N {
	res, err := run(g, from, to, append(slices.Clip(opts), withPath()))
	if err != nil {
		return nil
	}

	return res.Path
}

// Search runs A* with path tracking and reports why it failed, if it did.
//
// Errors (in order of detection):
//  1. ErrNilGraph if g is nil.
//  2. ErrNegativeCost (wrapped with the offending edge) during expansion.
//  3. ErrExpansionLimit if WithMaxExpansions is exhausted.
//  4. ErrNoPath once the frontier empties.
func Search[N comparable](g Graph[N], from, to N, opts ...Option) (Result[N], error) {
	return run(g, from, to, append(slices.Clip(opts), withPath()))
}

// run is shared by Distance, Path and Search.
//
// Preconditions and validation (in order):
//  1. Every Option is applied; invalid values panic inside the option.
//  2. g must be non-nil (ErrNilGraph).
//  3. Edge costs are checked lazily, as each node is expanded (ErrNegativeCost).
func run[N comparable](g Graph[N], from, to N, opts []Option) (Result[N], error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return Result[N]{}, ErrNilGraph
	}

	// 3) Prepare runner state. cameFrom is only allocated when a path is wanted.
	r := &runner[N]{
		g:       g,
		target:  to,
		options: cfg,
		gScore:  make(map[N]int),
	}
	if cfg.trackPath {
		r.cameFrom = make(map[N]N)
	}
	// 4) Seed the frontier and run the main loop.
	r.init(from)
	cost, err := r.process()
	if err != nil {
		return Result[N]{Expanded: r.expanded}, err
	}

	// 5) Rebuild the route from back-pointers if requested.
	res := Result[N]{Cost: cost, Expanded: r.expanded}
	if r.cameFrom != nil {
		res.Path = r.path(from)
	}

	return res, nil
}

// runner holds the mutable state for a single search.
type runner[N comparable] struct {
	g        Graph[N]
	target   N
	options  Options
	gScore   map[N]int // best known cost from the source
	cameFrom map[N]N   // predecessor on the best known path; nil if not tracking
	pq       frontier[N]
	expanded int
}

// init seeds the frontier with the source at g = 0.
func (r *runner[N]) init(from N) {
	r.gScore[from] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[N]{node: from, g: 0, f: satAdd(0, r.g.Heuristic(from, r.target))})
}

// process pops nodes in f order until the target is popped, returning its g.
//
// Loop invariant: every entry in the frontier has g ≤ MaxCost, and gScore
// holds the cheapest g pushed so far for each node.
func (r *runner[N]) process() (int, error) {
	for r.pq.Len() > 0 {
		// 1) Pop the entry with the smallest f.
		item := heap.Pop(&r.pq).(*nodeItem[N])

		// 2) The first pop of the target is optimal.
		if item.node == r.target {
			return item.g, nil
		}

		// 3) Skip stale entries: a cheaper one for this node was pushed later.
		if item.g > r.gScore[item.node] {
			continue
		}

		// 4) Count the expansion against the budget, then relax the edges.
		r.expanded++
		if r.options.MaxExpansions > 0 && r.expanded > r.options.MaxExpansions {
			return 0, fmt.Errorf("%w: %d expansions", ErrExpansionLimit, r.options.MaxExpansions)
		}
		if err := r.relax(item.node, item.g); err != nil {
			return 0, err
		}
	}

	return 0, ErrNoPath
}

// relax pushes every neighbour of u whose cost through u beats its best known g.
// gu ≤ MaxCost holds on entry, so MaxCost-gu never overflows.
func (r *runner[N]) relax(u N, gu int) error {
	for v, w := range r.g.Neighbors(u) {
		// 1) Reject negative costs.
		if w < 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeCost, u, v, w)
		}

		// 2) Prune paths beyond MaxCost. Comparing w with the remaining
		//    budget keeps gu+w from wrapping when w is near math.MaxInt.
		if w > r.options.MaxCost-gu {
			continue
		}
		tentative := gu + w

		// 3) Keep only strict improvements (lazy decrease-key).
		if old, seen := r.gScore[v]; seen && tentative >= old {
			continue
		}
		r.gScore[v] = tentative
		if r.cameFrom != nil {
			r.cameFrom[v] = u
		}
		heap.Push(&r.pq, &nodeItem[N]{node: v, g: tentative, f: satAdd(tentative, r.g.Heuristic(v, r.target))})
	}

	return nil
}

// satAdd returns g+h, clamped to math.MaxInt. g is never negative.
func satAdd(g, h int) int {
	if h > math.MaxInt-g {
		return math.MaxInt
	}

	return g + h
}

// path walks the back-pointers from the target to the source.
func (r *runner[N]) path(from N) []N {
	out := []N{r.target}
	for cur := r.target; cur != from; {
		cur = r.cameFrom[cur]
		out = append(out, cur)
	}
	slices.Reverse(out)

	return out
}

// nodeItem is a frontier entry: a node with its g at push time and f = g + h.
type nodeItem[N comparable] struct {
	node N
	g    int
	f    int
}

// frontier is a min-heap of *nodeItem ordered by f.
type frontier[N comparable] []*nodeItem[N]

func (pq frontier[N]) Len() int           { return len(pq) }
func (pq frontier[N]) Less(i, j int) bool { return pq[i].f < pq[j].f }
func (pq frontier[N]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier[N]) Push(x any) { *pq = append(*pq, x.(*nodeItem[N])) }

func (pq *frontier[N]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
