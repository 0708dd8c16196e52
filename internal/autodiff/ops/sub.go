package ops

import "github.com/born-ml/revgrad/internal/vecops"

// SubOp represents an element-wise subtraction: output = a - b.
//
// Backward pass:
//   - d(a-b)/da = 1, so grad_a = upstream
//   - d(a-b)/db = -1, so grad_b = -upstream
type SubOp struct {
	composite
}

// NewSubOp creates a new SubOp and computes a - b.
func NewSubOp(id NodeID, a, b Node) *SubOp {
	checkBinary("Sub", id, a, b)
	value := make([]float32, len(a.Value()))
	vecops.SubTo(value, a.Value(), b.Value())
	return &SubOp{composite: newComposite(id, value, a, b)}
}

// Name returns "Sub".
func (op *SubOp) Name() string { return "Sub" }

// ComputeGrad computes input gradients for subtraction.
func (op *SubOp) ComputeGrad(upstream []float32, out [][]float32) {
	copy(out[0], upstream)
	vecops.NegTo(out[1], upstream)
}
