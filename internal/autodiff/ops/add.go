package ops

import "github.com/born-ml/revgrad/internal/vecops"

// AddOp represents an element-wise addition: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = upstream
//   - d(a+b)/db = 1, so grad_b = upstream
type AddOp struct {
	composite
}

// NewAddOp creates a new AddOp and computes a + b.
func NewAddOp(id NodeID, a, b Node) *AddOp {
	checkBinary("Add", id, a, b)
	value := make([]float32, len(a.Value()))
	vecops.AddTo(value, a.Value(), b.Value())
	return &AddOp{composite: newComposite(id, value, a, b)}
}

// Name returns "Add".
func (op *AddOp) Name() string { return "Add" }

// ComputeGrad copies the upstream gradient to both inputs.
func (op *AddOp) ComputeGrad(upstream []float32, out [][]float32) {
	copy(out[0], upstream)
	copy(out[1], upstream)
}
