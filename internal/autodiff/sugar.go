package autodiff

import (
	"github.com/born-ml/revgrad/internal/autodiff/ops"
)

// Scalar helpers. Each one fills a constant to the operand's length and goes
// through the ordinary constructors, so forward values and gradients are
// exactly those of the spelled-out graph.

// like returns a constant shaped like x holding v.
func (b *Builder) like(x ops.Node, v float32) ops.Node {
	return b.Full(len(x.Value()), v)
}

// AddScalar returns x + s.
func (b *Builder) AddScalar(x ops.Node, s float32) ops.Node {
	return b.Add(x, b.like(x, s))
}

// SubScalar returns x - s.
func (b *Builder) SubScalar(x ops.Node, s float32) ops.Node {
	return b.Sub(x, b.like(x, s))
}

// MulScalar returns x * s.
func (b *Builder) MulScalar(x ops.Node, s float32) ops.Node {
	return b.Mul(x, b.like(x, s))
}

// DivScalar returns x / s.
func (b *Builder) DivScalar(x ops.Node, s float32) ops.Node {
	return b.Div(x, b.like(x, s))
}

// ScalarDiv returns s / x.
func (b *Builder) ScalarDiv(s float32, x ops.Node) ops.Node {
	return b.Div(b.like(x, s), x)
}

// PowScalar returns x ^ s.
func (b *Builder) PowScalar(x ops.Node, s float32) ops.Node {
	return b.Pow(x, b.like(x, s))
}

// Dot returns Σ x_i * y_i as a single-element node.
func (b *Builder) Dot(x, y ops.Node) ops.Node {
	return b.Sum(b.Mul(x, y))
}

// Mean returns the average of the elements of x as a single-element node.
func (b *Builder) Mean(x ops.Node) ops.Node {
	return b.DivScalar(b.Sum(x), float32(len(x.Value())))
}

// Sigmoid returns 1 / (1 + e^-x).
func (b *Builder) Sigmoid(x ops.Node) ops.Node {
	return b.ScalarDiv(1, b.AddScalar(b.Exp(b.Neg(x)), 1))
}

// Sqrt returns x ^ 0.5.
func (b *Builder) Sqrt(x ops.Node) ops.Node {
	return b.PowScalar(x, 0.5)
}

// Tanh returns the hyperbolic tangent of x, written as 2·sigmoid(2x) - 1.
func (b *Builder) Tanh(x ops.Node) ops.Node {
	return b.SubScalar(b.MulScalar(b.Sigmoid(b.MulScalar(x, 2)), 2), 1)
}

// SiLU returns x · sigmoid(x).
func (b *Builder) SiLU(x ops.Node) ops.Node {
	return b.Mul(x, b.Sigmoid(x))
}
