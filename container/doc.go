// Package container solves "container with most water": given wall heights
// at unit spacing, pick two walls that hold the largest area of water,
// area = min(h[l], h[r]) · (r − l).
//
// What
//
//   - MaxArea:             two-pointer sweep.                      O(n)
//   - Optimal:             the sweep, also returning the walls.    O(n)
//   - BruteForce:          every pair of walls.                    O(n²)
//   - OptimizedBruteForce: per left wall, scan from the right and
//     stop once the left wall limits the height.                  O(n²) worst case
//   - Render:              ASCII picture of the optimal container.
//
// Why the sweep is correct
//
//	Starting with the widest container, moving the taller wall inward can only
//	shrink the width without raising the limiting height, so only the shorter
//	wall is ever worth moving. On equal heights the right wall moves.
//
// Tracing
//
//	MaxArea accepts WithTrace to observe each sweep iteration (both walls,
//	width, limiting height, area, best area so far and which wall moved).
//
// Input
//
//	Heights are expected to be non-negative and, for n walls, at most
//	math.MaxInt / (n-1) so that no area overflows int. Validate reports
//	ErrNegativeHeight or ErrAreaOverflow otherwise. The strategies themselves
//	never fail: fewer than two walls hold no water and yield 0, and areas of
//	unvalidated input wrap like any int product.
package container
