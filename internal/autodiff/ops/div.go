package ops

import "github.com/born-ml/revgrad/internal/vecops"

// DivOp represents an element-wise division: output = a / b.
//
// Backward pass:
//   - d(a/b)/da = 1/b, so grad_a = upstream / b
//   - d(a/b)/db = -a/b², so grad_b = -upstream * a / b²
//
// A zero divisor is not special-cased; the result is Inf or NaN.
type DivOp struct {
	composite
}

// NewDivOp creates a new DivOp and computes a / b.
func NewDivOp(id NodeID, a, b Node) *DivOp {
	checkBinary("Div", id, a, b)
	value := make([]float32, len(a.Value()))
	vecops.DivTo(value, a.Value(), b.Value())
	return &DivOp{composite: newComposite(id, value, a, b)}
}

// Name returns "Div".
func (op *DivOp) Name() string { return "Div" }

// ComputeGrad computes input gradients for division.
func (op *DivOp) ComputeGrad(upstream []float32, out [][]float32) {
	a, b := op.children[0].Value(), op.children[1].Value()

	// grad_a = upstream / b
	vecops.DivTo(out[0], upstream, b)

	// grad_b = -(a / b²) * upstream
	gradB := out[1]
	for i := range gradB {
		gradB[i] = -a[i] / (b[i] * b[i])
	}
	vecops.Mul(gradB, upstream)
}
