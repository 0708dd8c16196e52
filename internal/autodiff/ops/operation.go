// Package ops defines the node contract and the operator catalog for
// reverse-mode automatic differentiation.
//
// Every node computes its forward value eagerly at construction and knows
// how to turn the gradient flowing into it into per-child contributions:
//   - Forward pass: computed once by the constructor, cached, never mutated
//   - Backward pass: ComputeGrad writes the local chain-rule term for each child
//
// Supported operations:
//   - VariableOp, ConstantOp: leaves (tracked and untracked)
//   - AddOp, SubOp, MulOp, DivOp, PowOp: element-wise binary operations
//   - CosOp, SinOp, LogOp, ExpOp, NegOp: element-wise unary operations
//   - SumVecOp: reduction of a vector to a single value
//   - BulkSumOp: element-wise sum of N equal-length nodes
package ops

// Node is a vertex of the computation graph.
//
// A Node is immutable once constructed. The same Node may be the child of
// any number of parents; holding the interface value is holding a shared
// handle to it.
type Node interface {
	// ID returns the unique identity of the node.
	ID() NodeID

	// Name returns the operator name, used in diagnostics.
	Name() string

	// Value returns the cached forward value. Callers must not modify it.
	Value() []float32

	// Children returns the operands in order, or nil for leaves.
	Children() []Node

	// IsLeaf reports whether the node has no children.
	IsLeaf() bool

	// RequiresGrad reports whether the node is a gradient-tracked source.
	// Only variables are; constants and composite operations are not.
	RequiresGrad() bool

	// ComputeGrad computes the contribution of this node to each child's
	// gradient.
	//
	// upstream is the gradient of the output with respect to this node's
	// value and has the same length. out holds one buffer per child, sized to
	// that child's value. ComputeGrad overwrites out[i]; it never
	// accumulates, since summing contributions from several consumers is the
	// backward engine's job.
	//
	// Example for AddOp:
	//   upstream: dL/d(a+b)
	//   out:      [dL/d(a+b), dL/d(a+b)]
	ComputeGrad(upstream []float32, out [][]float32)
}
