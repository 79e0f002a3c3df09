// Package astar implements A* shortest-path search over any caller-defined
// node type.
//
// Overview:
//
//   - A graph is anything that implements Graph[N]: it enumerates the
//     (neighbour, cost) pairs leaving a node and estimates the remaining cost
//     between two nodes. N must be comparable so it can key the score maps.
//   - Distance returns only the minimal cost; Path also rebuilds the route;
//     Search returns both plus the number of expanded nodes, with errors.
//   - Func adapts a pair of closures to Graph without declaring a type.
//
// Algorithm:
//
//   - A min-heap frontier ordered by f = g + h. Ties are broken by heap order,
//     not insertion order.
//   - A best-known g map. A neighbour is (re)pushed only when a strictly
//     cheaper g is found ("lazy decrease-key"); stale heap entries are skipped
//     when popped.
//   - The search stops the first time the target is popped. With an admissible
//     and consistent heuristic this cost is optimal, so no closed set is kept.
//   - A heuristic that always returns 0 turns A* into Dijkstra's algorithm.
//
// Caller contract:
//
//   - Edge costs must be non-negative (Search reports ErrNegativeCost).
//   - Heuristic must never overestimate, or optimality is lost.
//   - Neighbors must be finite for each node. An infinite reachable graph with
//     an unreachable target never terminates unless bounded with
//     WithMaxCost or WithMaxExpansions.
//
// Options:
//
//   - WithMaxCost(c):       ignore partial paths costing more than c.
//   - WithMaxExpansions(n): give up (ErrExpansionLimit) after n expansions.
//
// Errors (sentinel):
//
//   - ErrNilGraph:        Search called with a nil Graph.
//   - ErrNoPath:          the target is unreachable (within the limits).
//   - ErrNegativeCost:    a neighbour edge reported a negative cost.
//   - ErrExpansionLimit:  WithMaxExpansions budget exhausted.
//   - ErrBadMaxCost, ErrBadMaxExpansions: invalid option values (panic).
//
// Distance and Path fold every failure into their empty result, matching the
// "no path" signal.
//
// Complexity:
//
//   - Time:  O(E log E) heap operations in the worst case.
//   - Space: O(V + E) for the score map, back-pointers and frontier.
package astar
