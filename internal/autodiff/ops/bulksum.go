package ops

import (
	"github.com/gomlx/exceptions"

	"github.com/born-ml/revgrad/internal/vecops"
)

// BulkSumOp is the element-wise sum of N equal-length nodes:
// output = x_1 + x_2 + ... + x_N.
//
// Backward pass:
//   - d(Σx)/dx_k = 1, so every input receives upstream unchanged
type BulkSumOp struct {
	composite
}

// NewBulkSumOp creates a new BulkSumOp over xs. At least one input is
// required and all inputs must have the same length.
func NewBulkSumOp(id NodeID, xs ...Node) *BulkSumOp {
	checkID("BulkSum", id)
	if len(xs) == 0 {
		exceptions.Panicf("BulkSum: at least one input is required")
	}
	for i, x := range xs {
		if x == nil {
			exceptions.Panicf("BulkSum: nil operand at position %d", i)
		}
	}
	n := len(xs[0].Value())
	for i, x := range xs[1:] {
		if l := len(x.Value()); l != n {
			exceptions.Panicf("BulkSum: operand %d (%s) has length %d, operand 0 has %d",
				i+1, x.Name(), l, n)
		}
	}

	value := vecops.Zeros(n)
	for _, x := range xs {
		vecops.Add(value, x.Value())
	}
	children := make([]Node, len(xs))
	copy(children, xs)
	return &BulkSumOp{composite: newComposite(id, value, children...)}
}

// Name returns "BulkSum".
func (op *BulkSumOp) Name() string { return "BulkSum" }

// ComputeGrad copies upstream to every input.
func (op *BulkSumOp) ComputeGrad(upstream []float32, out [][]float32) {
	for _, g := range out {
		copy(g, upstream)
	}
}
