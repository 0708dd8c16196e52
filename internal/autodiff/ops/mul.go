package ops

import "github.com/born-ml/revgrad/internal/vecops"

// MulOp represents an element-wise multiplication: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = upstream * b
//   - d(a*b)/db = a, so grad_b = upstream * a
type MulOp struct {
	composite
}

// NewMulOp creates a new MulOp and computes a * b.
func NewMulOp(id NodeID, a, b Node) *MulOp {
	checkBinary("Mul", id, a, b)
	value := make([]float32, len(a.Value()))
	vecops.MulTo(value, a.Value(), b.Value())
	return &MulOp{composite: newComposite(id, value, a, b)}
}

// Name returns "Mul".
func (op *MulOp) Name() string { return "Mul" }

// ComputeGrad computes input gradients for multiplication.
func (op *MulOp) ComputeGrad(upstream []float32, out [][]float32) {
	a, b := op.children[0].Value(), op.children[1].Value()
	vecops.MulTo(out[0], b, upstream)
	vecops.MulTo(out[1], a, upstream)
}
