// Package rips implements the Vietoris-Rips clique expansion of a weighted
// graph and the weight-assignment strategies for the simplices it creates.
//
// Expand generates every simplex of dimension <= k whose vertex-set is a
// clique in the 1-skeleton, using incremental lower-neighbour enumeration.
// The expansion is a pure transform: it returns a fresh Complex and never
// retains state between calls. It is monotone and idempotent in k:
// expanding to k and re-expanding the result to k' > k yields exactly what a
// direct expansion to k' would.
//
// Newly created simplices carry filtration value 0 until one of the
// assignment passes runs:
//
//   - AssignMaximumWeight: value = max over codimension-1 faces (and the
//     simplex's own value), guaranteeing a valid monotone filtration.
//   - AssignCombinedWeight: value = fold of a caller-supplied associative
//     combine (such as summation) over the codimension-1 faces. The caller
//     must pick a monotone combine if a valid filtration is required.
//   - AssignVertexData: value = fold of a combine over per-vertex data,
//     powering degree and degree-sum filtrations.
//
// Expansion is combinatorial in the clique structure of the graph and grows
// exponentially with k in the worst case. WithSimplexBudget bounds the total
// simplex count; the budget is enforced while the expansion grows, before any
// partially expanded complex escapes.
//
// None of the functions in this package sort their output. Establishing
// filtration order (Complex.SortByData) is the caller's explicit next step.
package rips
