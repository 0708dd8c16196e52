package ops

import (
	"github.com/chewxy/math32"

	"github.com/born-ml/revgrad/internal/vecops"
)

// ExpOp represents the exponential operation: y = exp(x).
//
// Backward pass:
//   - d(exp(x))/dx = exp(x) = y
//   - grad_input = upstream * output
type ExpOp struct {
	composite
}

// NewExpOp creates a new ExpOp.
func NewExpOp(id NodeID, x Node) *ExpOp {
	checkUnary("Exp", id, x)
	in := x.Value()
	value := make([]float32, len(in))
	for i, v := range in {
		value[i] = math32.Exp(v)
	}
	return &ExpOp{composite: newComposite(id, value, x)}
}

// Name returns "Exp".
func (op *ExpOp) Name() string { return "Exp" }

// ComputeGrad computes the input gradient for exp.
//
// Since d(exp(x))/dx = exp(x), and we already have exp(x) as output:
// grad_input = upstream * output.
func (op *ExpOp) ComputeGrad(upstream []float32, out [][]float32) {
	vecops.MulTo(out[0], op.value, upstream)
}
