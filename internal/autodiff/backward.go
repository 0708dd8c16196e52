package autodiff

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"

	"github.com/born-ml/revgrad/internal/autodiff/ops"
)

// Backward runs a fresh backward pass from root and returns its context.
//
// Example:
//
//	b := NewBuilder()
//	x := b.Variable(1, 2)
//	g := Backward(b.Sum(b.Mul(x, x)))
//	grad, _ := g.Grad(x) // [2, 4]
func Backward(root ops.Node, opts ...GraphOption) *Graph {
	g := NewGraph(opts...)
	g.Backward(root)
	return g
}

// Build runs fn, which constructs nodes, and reports construction contract
// violations (mismatched lengths, missing operands, empty inputs) as an error
// instead of a panic. Panics that are not errors are propagated.
func Build(fn func() ops.Node) (node ops.Node, err error) {
	err = exceptions.TryCatch[error](func() { node = fn() })
	if err != nil {
		return nil, errors.WithMessage(err, "failed to build computation graph")
	}
	return node, nil
}
