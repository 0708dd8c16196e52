// Package autodiff implements reverse-mode automatic differentiation over
// eagerly evaluated computation graphs.
//
// Architecture:
//   - Builder: creates leaves and operations; every node gets a fresh id
//     from the builder's IDAllocator and computes its value immediately
//   - ops.Node: each operation knows its local gradient (ComputeGrad)
//   - Graph: the backward context; walks the graph from one root in
//     reverse topological order and accumulates gradients per node id
//
// Usage:
//
//	b := autodiff.NewBuilder()
//	x := b.Variable(3)
//	y := b.Mul(x, x) // y = x²
//
//	g := autodiff.NewGraph()
//	g.Backward(y)
//	grad, _ := g.Grad(x) // dy/dx = 2x = [6]
package autodiff

import (
	"github.com/born-ml/revgrad/internal/autodiff/ops"
)

// Builder constructs computation graph nodes.
//
// A Builder is safe for concurrent use: the only shared state is its
// IDAllocator, which is lock-free. Builders that share an allocator produce
// nodes that may be freely mixed in one graph; so may builders with
// separate allocators, since allocators never issue the same id.
type Builder struct {
	ids *ops.IDAllocator
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithIDAllocator makes the builder draw ids from ids instead of a private
// allocator.
func WithIDAllocator(ids *ops.IDAllocator) BuilderOption {
	return func(b *Builder) {
		b.ids = ids
	}
}

// NewBuilder creates a new Builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	if b.ids == nil {
		b.ids = ops.NewIDAllocator()
	}
	return b
}

// IDs returns the allocator the builder draws ids from.
func (b *Builder) IDs() *ops.IDAllocator {
	return b.ids
}

// Variable creates a gradient-tracked leaf holding a copy of values.
func (b *Builder) Variable(values ...float32) ops.Node {
	return ops.NewVariableOp(b.ids.Next(), values)
}

// Constant creates an untracked leaf holding a copy of values.
func (b *Builder) Constant(values ...float32) ops.Node {
	return ops.NewConstantOp(b.ids.Next(), values)
}

// Scalar creates a single-element constant.
func (b *Builder) Scalar(v float32) ops.Node {
	return ops.NewScalarOp(b.ids.Next(), v)
}

// Full creates a constant of length n filled with v.
func (b *Builder) Full(n int, v float32) ops.Node {
	return ops.NewFullOp(b.ids.Next(), n, v)
}

// Add returns x + y.
func (b *Builder) Add(x, y ops.Node) ops.Node {
	return ops.NewAddOp(b.ids.Next(), x, y)
}

// Sub returns x - y.
func (b *Builder) Sub(x, y ops.Node) ops.Node {
	return ops.NewSubOp(b.ids.Next(), x, y)
}

// Mul returns x * y.
func (b *Builder) Mul(x, y ops.Node) ops.Node {
	return ops.NewMulOp(b.ids.Next(), x, y)
}

// Div returns x / y.
func (b *Builder) Div(x, y ops.Node) ops.Node {
	return ops.NewDivOp(b.ids.Next(), x, y)
}

// Pow returns x ^ y.
func (b *Builder) Pow(x, y ops.Node) ops.Node {
	return ops.NewPowOp(b.ids.Next(), x, y)
}

// Sum reduces x to a single value.
func (b *Builder) Sum(x ops.Node) ops.Node {
	return ops.NewSumVecOp(b.ids.Next(), x)
}

// Cos returns cos(x).
func (b *Builder) Cos(x ops.Node) ops.Node {
	return ops.NewCosOp(b.ids.Next(), x)
}

// Sin returns sin(x).
func (b *Builder) Sin(x ops.Node) ops.Node {
	return ops.NewSinOp(b.ids.Next(), x)
}

// Log returns ln(x).
func (b *Builder) Log(x ops.Node) ops.Node {
	return ops.NewLogOp(b.ids.Next(), x)
}

// Exp returns e^x.
func (b *Builder) Exp(x ops.Node) ops.Node {
	return ops.NewExpOp(b.ids.Next(), x)
}

// Neg returns -x.
func (b *Builder) Neg(x ops.Node) ops.Node {
	return ops.NewNegOp(b.ids.Next(), x)
}

// BulkSum returns the element-wise sum of xs.
func (b *Builder) BulkSum(xs ...ops.Node) ops.Node {
	return ops.NewBulkSumOp(b.ids.Next(), xs...)
}
