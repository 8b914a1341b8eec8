package vector

import (
	"math"

	"github.com/viant/vec/search"
)

// normFloor keeps the denominator finite for all-zero or empty operands.
// Scores near zero are not meaningful when either operand may be all-zero.
const normFloor = 1e-9

// Cosine computes the cosine similarity between a and b. Vectors of unequal
// length are compared over their common prefix only; the tail of the longer
// vector is ignored. Degenerate operands (empty or all-zero) yield a finite
// near-zero score rather than NaN or an error. The function is pure and
// deterministic.
func Cosine(a, b []float32) float64 {
	if len(a) == len(b) && len(a) > 0 {
		va := search.Float32s(a)
		vb := search.Float32s(b)
		ma := va.Magnitude()
		mb := vb.Magnitude()
		// The SIMD path skips the norm floor, so take it only when both
		// norms are comfortably above it. CosineDistance is the exported
		// method on every platform; the magnitude-taking variants are
		// arm64-only.
		if float64(ma)*float64(ma) >= normFloor && float64(mb)*float64(mb) >= normFloor {
			return 1 - float64(va.CosineDistance(b))
		}
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na2, nb2 float64
	for i := 0; i < n; i++ {
		va := float64(a[i])
		vb := float64(b[i])
		dot += va * vb
		na2 += va * va
		nb2 += vb * vb
	}
	return dot / (math.Sqrt(math.Max(na2, normFloor)) * math.Sqrt(math.Max(nb2, normFloor)))
}

// L2 computes the Euclidean distance between a and b over their common
// prefix, mirroring the truncation policy of Cosine.
func L2(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}
