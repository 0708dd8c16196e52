package ops

import "github.com/born-ml/revgrad/internal/vecops"

// NegOp represents negation: y = -x.
type NegOp struct {
	composite
}

// NewNegOp creates a new NegOp.
func NewNegOp(id NodeID, x Node) *NegOp {
	checkUnary("Neg", id, x)
	value := make([]float32, len(x.Value()))
	vecops.NegTo(value, x.Value())
	return &NegOp{composite: newComposite(id, value, x)}
}

// Name returns "Neg".
func (op *NegOp) Name() string { return "Neg" }

// ComputeGrad sets grad_input = -upstream.
func (op *NegOp) ComputeGrad(upstream []float32, out [][]float32) {
	vecops.NegTo(out[0], upstream)
}
