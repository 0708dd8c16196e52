package ops

import (
	"github.com/gomlx/exceptions"

	"github.com/born-ml/revgrad/internal/vecops"
)

// VariableOp is a gradient-tracked leaf: the quantity a caller wants
// gradients for.
type VariableOp struct {
	computation
}

// NewVariableOp creates a variable holding a copy of value.
func NewVariableOp(id NodeID, value []float32) *VariableOp {
	checkLeaf("Variable", id, value)
	return &VariableOp{computation: computation{id: id, value: vecops.Clone(value)}}
}

// Name returns "Variable".
func (op *VariableOp) Name() string { return "Variable" }

// Children returns nil.
func (op *VariableOp) Children() []Node { return nil }

// IsLeaf returns true.
func (op *VariableOp) IsLeaf() bool { return true }

// RequiresGrad returns true.
func (op *VariableOp) RequiresGrad() bool { return true }

// ComputeGrad does nothing: there is nothing below a variable.
func (op *VariableOp) ComputeGrad(_ []float32, _ [][]float32) {}

// ConstantOp is an untracked leaf. It takes part in the graph structurally
// but no gradient is kept for it.
type ConstantOp struct {
	computation
}

// NewConstantOp creates a constant holding a copy of value.
func NewConstantOp(id NodeID, value []float32) *ConstantOp {
	checkLeaf("Constant", id, value)
	return &ConstantOp{computation: computation{id: id, value: vecops.Clone(value)}}
}

// NewScalarOp creates a single-element constant.
func NewScalarOp(id NodeID, v float32) *ConstantOp {
	return NewConstantOp(id, []float32{v})
}

// NewFullOp creates a constant of length n with every element set to v.
func NewFullOp(id NodeID, n int, v float32) *ConstantOp {
	if n <= 0 {
		exceptions.Panicf("Constant: length must be positive, got %d", n)
	}
	value := make([]float32, n)
	vecops.Fill(value, v)
	return NewConstantOp(id, value)
}

// Name returns "Constant".
func (op *ConstantOp) Name() string { return "Constant" }

// Children returns nil.
func (op *ConstantOp) Children() []Node { return nil }

// IsLeaf returns true.
func (op *ConstantOp) IsLeaf() bool { return true }

// RequiresGrad returns false.
func (op *ConstantOp) RequiresGrad() bool { return false }

// ComputeGrad does nothing.
func (op *ConstantOp) ComputeGrad(_ []float32, _ [][]float32) {}

func checkLeaf(op string, id NodeID, value []float32) {
	checkID(op, id)
	if len(value) == 0 {
		exceptions.Panicf("%s: value must not be empty", op)
	}
}
