package ops

import (
	"github.com/chewxy/math32"

	"github.com/born-ml/revgrad/internal/vecops"
)

// PowOp represents an element-wise power: output = x ^ y.
//
// Backward pass:
//   - d(x^y)/dx = y * x^(y-1), so grad_x = upstream * y * x^(y-1)
//   - d(x^y)/dy = ln(x) * x^y, so grad_y = upstream * ln(x) * x^y
//
// The exponent term is always evaluated, even when the exponent is a
// constant whose gradient is discarded. For x <= 0 it is NaN or Inf.
type PowOp struct {
	composite
}

// NewPowOp creates a new PowOp and computes base ^ exp.
func NewPowOp(id NodeID, base, exp Node) *PowOp {
	checkBinary("Pow", id, base, exp)
	x, y := base.Value(), exp.Value()
	value := make([]float32, len(x))
	for i := range value {
		value[i] = math32.Pow(x[i], y[i])
	}
	return &PowOp{composite: newComposite(id, value, base, exp)}
}

// Name returns "Pow".
func (op *PowOp) Name() string { return "Pow" }

// ComputeGrad computes input gradients for the power operation.
func (op *PowOp) ComputeGrad(upstream []float32, out [][]float32) {
	x, y := op.children[0].Value(), op.children[1].Value()

	gradX := out[0]
	for i := range gradX {
		gradX[i] = y[i] * math32.Pow(x[i], y[i]-1)
	}
	vecops.Mul(gradX, upstream)

	// x^y is the cached output.
	gradY := out[1]
	for i := range gradY {
		gradY[i] = math32.Log(x[i]) * op.value[i]
	}
	vecops.Mul(gradY, upstream)
}
