package integrate

import (
	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	for _, b := range []Backend{
		{Name: "vecmath", SIMDLevel: cpu.SIMDSSE2, Priority: 10, Integrate: integrateBlocks},
		{Name: "vecmath", SIMDLevel: cpu.SIMDNEON, Priority: 15, Integrate: integrateBlocks},
		{Name: "vecmath", SIMDLevel: cpu.SIMDAVX2, Priority: 20, Integrate: integrateBlocks},
	} {
		Backends.Register(b)
	}
}

// blockSize is the number of nodes evaluated per vecmath call. It is a
// multiple of four so Simpson weights keep their phase across blocks.
const blockSize = 256

var (
	blockOffsets [blockSize]float64 // 0, 1, 2, ...
	blockOnes    [blockSize]float64
	blockSimpson [blockSize]float64 // 4, 2, 4, 2, ...
)

func init() {
	for j := range blockSize {
		blockOffsets[j] = float64(j)
		blockOnes[j] = 1
		blockSimpson[j] = 4
		if j%2 == 1 {
			blockSimpson[j] = 2
		}
	}
}

// integrateBlocks evaluates the interior nodes in blocks through the
// runtime-dispatched vecmath kernels. Only the reciprocal is scalar, since
// vecmath has no division kernel.
func integrateBlocks(rule Rule, g Grid) float64 {
	first, count, offset := rule.interior(g)

	var (
		base [blockSize]float64
		x    [blockSize]float64
		y    [blockSize]float64
	)

	sum := 0.0
	for k := 0; k < count; k += blockSize {
		m := min(blockSize, count-k)
		xs, ys, bs := x[:m], y[:m], base[:m]

		// x = (offsets + base) * h
		vecmath.ScaleBlock(bs, blockOnes[:m], float64(first+k)+offset)
		vecmath.AddMulBlock(xs, blockOffsets[:m], bs, g.H)

		// y = 4 / (x*x + 1)
		vecmath.MulAddBlock(ys, xs, xs, blockOnes[:m])
		for j := range ys {
			ys[j] = 4 / ys[j]
		}

		if rule == Simpson {
			sum += vecmath.DotProduct(ys, blockSimpson[:m])
		} else {
			sum += vecmath.Sum(ys)
		}
	}

	return (Boundary(rule, g) + sum) * Scale(rule, g)
}
