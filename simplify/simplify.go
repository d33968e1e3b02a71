// Package simplify implements tolerance-bounded point reduction for GPS
// trajectories using the Douglas-Peucker algorithm.
//
// The algorithm treats (lat, lon) as a 2-D Euclidean plane: perpendicular
// distances are computed directly in degree space with no map projection.
// At the tolerances trajectory simplification operates with (well below one
// degree) the planar approximation error is negligible, and it keeps the
// computation exact, cheap and deterministic. Altitude and timestamp never
// participate in the distance calculation.
//
// The divide-and-conquer recursion is driven by an explicit stack of
// (start, end) index pairs rather than the call stack: the recursion depth
// can approach the input length for long trajectories that resist
// simplification, and the explicit stack keeps that bounded to heap
// allocations.
package simplify

import (
	"math"

	"github.com/arloliu/trajo/errs"
	"github.com/arloliu/trajo/track"
)

// Simplify reduces a trajectory to the subset of its points whose removal
// would deviate the path by more than epsilon, in perpendicular-distance
// terms on the (lat, lon) plane. Epsilon is expressed in degrees.
//
// Guarantees:
//   - The first and last input points are always present, in input order.
//   - Every output point is an input point at its original relative order;
//     no points are synthesized or reordered.
//   - The input trajectory is never mutated; the result is a new slice.
//   - Inputs of length <= 2 are returned unchanged (as a copy).
//
// When several interior points tie for the maximum distance, the first one in
// sequence order is selected, so results are bit-for-bit reproducible.
//
// Returns errs.ErrNegativeEpsilon if epsilon is negative or NaN; no
// processing happens in that case.
func Simplify(points track.Trajectory, epsilon float64) (track.Trajectory, error) {
	if epsilon < 0 || math.IsNaN(epsilon) {
		return nil, errs.ErrNegativeEpsilon
	}

	if len(points) <= 2 {
		return points.Clone(), nil
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.Lat
		ys[i] = p.Lon
	}

	keep := douglasPeucker(xs, ys, epsilon)

	out := make(track.Trajectory, 0, countKept(keep))
	for i, k := range keep {
		if k {
			out = append(out, points[i])
		}
	}

	return out, nil
}

// Mask runs the same reduction over parallel fixed-point coordinate slices
// (microdegrees, as produced by track.QuantizeCoord) and returns the keep
// mask instead of a filtered sequence. Epsilon is expressed in microdegrees;
// 1000 is roughly 100 meters.
//
// This is the columnar entry point for callers that hold trajectories as
// separate coordinate columns and want to filter several parallel slices
// (timestamps, altitudes) with one mask.
//
// Returns errs.ErrNegativeEpsilon for a negative epsilon and
// errs.ErrLengthMismatch when the slices differ in length.
func Mask(lats, lons []int64, epsilon int64) ([]bool, error) {
	if epsilon < 0 {
		return nil, errs.ErrNegativeEpsilon
	}
	if len(lats) != len(lons) {
		return nil, errs.ErrLengthMismatch
	}

	if len(lats) <= 2 {
		keep := make([]bool, len(lats))
		for i := range keep {
			keep[i] = true
		}

		return keep, nil
	}

	xs := make([]float64, len(lats))
	ys := make([]float64, len(lons))
	for i := range lats {
		xs[i] = float64(lats[i])
		ys[i] = float64(lons[i])
	}

	return douglasPeucker(xs, ys, float64(epsilon)), nil
}

// segment is a pending (start, end) index range on the work stack.
type segment struct {
	start int
	end   int
}

// douglasPeucker computes the keep mask for the classic algorithm. The
// endpoints are always kept; an interior point survives only if some segment
// scan finds it as the farthest point with distance strictly greater than
// epsilon.
func douglasPeucker(xs, ys []float64, epsilon float64) []bool {
	n := len(xs)
	keep := make([]bool, n)
	keep[0] = true
	keep[n-1] = true

	// Squared distances avoid a sqrt per interior point.
	epsilonSq := epsilon * epsilon

	stack := make([]segment, 0, 64)
	stack = append(stack, segment{0, n - 1})

	for len(stack) > 0 {
		seg := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if seg.end-seg.start <= 1 {
			continue
		}

		sx := xs[seg.start]
		sy := ys[seg.start]
		ex := xs[seg.end]
		ey := ys[seg.end]
		dx := ex - sx
		dy := ey - sy
		lineLenSq := dx*dx + dy*dy

		maxDistSq := 0.0
		maxIndex := seg.start

		for i := seg.start + 1; i < seg.end; i++ {
			d := perpDistSq(xs[i], ys[i], sx, sy, dx, dy, lineLenSq)
			// Strict comparison: on a tie the earliest point wins.
			if d > maxDistSq {
				maxDistSq = d
				maxIndex = i
			}
		}

		if maxDistSq > epsilonSq {
			keep[maxIndex] = true
			stack = append(stack, segment{seg.start, maxIndex})
			stack = append(stack, segment{maxIndex, seg.end})
		}
	}

	return keep
}

// perpDistSq returns the squared perpendicular distance from (x, y) to the
// line through (sx, sy) with direction (dx, dy). For a degenerate segment
// (coincident endpoints) it falls back to the squared point-to-point
// distance, which also avoids the division by zero.
func perpDistSq(x, y, sx, sy, dx, dy, lineLenSq float64) float64 {
	if lineLenSq == 0 {
		ex := x - sx
		ey := y - sy

		return ex*ex + ey*ey
	}

	area := dx*(sy-y) - (sx-x)*dy

	return area * area / lineLenSq
}

func countKept(keep []bool) int {
	n := 0
	for _, k := range keep {
		if k {
			n++
		}
	}

	return n
}
