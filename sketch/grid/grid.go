// Package grid lays out sample points on a regular lattice filling a centered
// square (dims=2) or cube (dims=3).
package grid

import (
	"math"

	"fieldviz/sketch/vmath"
)

// eps absorbs float noise in span/d so that e.g. 1000 points in 3D give 10 steps
// per axis even when span/d evaluates to 9.999999999999998.
const eps = 1e-9

// Spacing returns the lattice step d = span / nthRoot(n, dims).
func Spacing(n int, span float64, dims int) float64 {
	if n <= 0 || dims <= 0 {
		return math.Inf(1)
	}
	return span / vmath.NthRoot(float64(n), dims)
}

// Steps returns the number of lattice coordinates along one axis.
func Steps(n int, span float64, dims int) int {
	d := Spacing(n, span, dims)
	if !(span > 0) || !(d > 0) || math.IsInf(d, 0) || math.IsNaN(d) {
		return 0
	}
	return int(math.Floor(span/d + eps))
}

// Count predicts the number of points Generate returns for the same inputs.
func Count(n int, span float64, dims int) int {
	k := Steps(n, span, dims)
	out := 1
	for i := 0; i < dims; i++ {
		out *= k
	}
	if k == 0 {
		return 0
	}
	return out
}

// Generate returns the lattice points for roughly n samples inside a centered
// domain of side span. Each axis runs from -span/2 in steps of d; X is the
// outermost loop, Z (dims=3) the innermost. Degenerate inputs yield an empty
// slice.
func Generate(n int, span float64, dims int) []vmath.Vec3 {
	k := Steps(n, span, dims)
	if k == 0 || dims < 2 || dims > 3 {
		return nil
	}
	d := Spacing(n, span, dims)
	start := -span / 2

	coord := func(i int) float64 { return start + float64(i)*d }

	out := make([]vmath.Vec3, 0, Count(n, span, dims))
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			if dims == 2 {
				out = append(out, vmath.V3(coord(i), coord(j), 0))
				continue
			}
			for l := 0; l < k; l++ {
				out = append(out, vmath.V3(coord(i), coord(j), coord(l)))
			}
		}
	}
	return out
}
