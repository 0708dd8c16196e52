package ops

import "github.com/chewxy/math32"

// SinOp represents the sine operation: y = sin(x).
//
// Backward pass:
//   - d(sin(x))/dx = cos(x)
//   - grad_input = upstream * cos(input)
type SinOp struct {
	composite
}

// NewSinOp creates a new SinOp.
func NewSinOp(id NodeID, x Node) *SinOp {
	checkUnary("Sin", id, x)
	in := x.Value()
	value := make([]float32, len(in))
	for i, v := range in {
		value[i] = math32.Sin(v)
	}
	return &SinOp{composite: newComposite(id, value, x)}
}

// Name returns "Sin".
func (op *SinOp) Name() string { return "Sin" }

// ComputeGrad computes the input gradient for sin.
func (op *SinOp) ComputeGrad(upstream []float32, out [][]float32) {
	x := op.children[0].Value()
	for i, g := range upstream {
		out[0][i] = g * math32.Cos(x[i])
	}
}
