package ops

import "github.com/chewxy/math32"

// CosOp represents the cosine operation: y = cos(x).
//
// Backward pass:
//   - d(cos(x))/dx = -sin(x)
//   - grad_input = upstream * (-sin(input))
type CosOp struct {
	composite
}

// NewCosOp creates a new CosOp.
func NewCosOp(id NodeID, x Node) *CosOp {
	checkUnary("Cos", id, x)
	in := x.Value()
	value := make([]float32, len(in))
	for i, v := range in {
		value[i] = math32.Cos(v)
	}
	return &CosOp{composite: newComposite(id, value, x)}
}

// Name returns "Cos".
func (op *CosOp) Name() string { return "Cos" }

// ComputeGrad computes the input gradient for cos.
func (op *CosOp) ComputeGrad(upstream []float32, out [][]float32) {
	x := op.children[0].Value()
	for i, g := range upstream {
		out[0][i] = g * -math32.Sin(x[i])
	}
}
