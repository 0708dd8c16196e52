package ops

import "github.com/chewxy/math32"

// LogOp represents element-wise natural logarithm.
//
// Forward:
//
//	output = log(input)
//
// Backward:
//
//	∂L/∂input = ∂L/∂output * (1 / input)
//
// Non-positive inputs are not rejected: log gives NaN or -Inf and the
// gradient follows.
type LogOp struct {
	composite
}

// NewLogOp creates a new log operation.
func NewLogOp(id NodeID, x Node) *LogOp {
	checkUnary("Log", id, x)
	in := x.Value()
	value := make([]float32, len(in))
	for i, v := range in {
		value[i] = math32.Log(v)
	}
	return &LogOp{composite: newComposite(id, value, x)}
}

// Name returns "Log".
func (op *LogOp) Name() string { return "Log" }

// ComputeGrad computes the gradient with respect to input.
func (op *LogOp) ComputeGrad(upstream []float32, out [][]float32) {
	x := op.children[0].Value()
	for i, g := range upstream {
		out[0][i] = g / x[i]
	}
}
