package ops

import (
	"github.com/gomlx/exceptions"
)

// computation holds what every node carries: identity and cached value.
type computation struct {
	id    NodeID
	value []float32
}

// ID returns the node id.
func (c *computation) ID() NodeID { return c.id }

// Value returns the cached forward value.
func (c *computation) Value() []float32 { return c.value }

// composite is embedded by every non-leaf operation.
type composite struct {
	computation
	children []Node
}

// Children returns the operands in order.
func (c *composite) Children() []Node { return c.children }

// IsLeaf is always false for composite operations.
func (c *composite) IsLeaf() bool { return false }

// RequiresGrad is always false for composite operations; tracking is
// anchored at variables.
func (c *composite) RequiresGrad() bool { return false }

func newComposite(id NodeID, value []float32, children ...Node) composite {
	return composite{
		computation: computation{id: id, value: value},
		children:    children,
	}
}

// checkID rejects the zero id, which would alias other unassigned nodes.
func checkID(op string, id NodeID) {
	if id.IsZero() {
		exceptions.Panicf("%s: node id was not allocated", op)
	}
}

// checkUnary validates the operand of a one-input operation.
func checkUnary(op string, id NodeID, x Node) {
	checkID(op, id)
	if x == nil {
		exceptions.Panicf("%s: nil operand", op)
	}
}

// checkBinary validates the operands of an element-wise binary operation:
// both present and of equal length.
func checkBinary(op string, id NodeID, a, b Node) {
	checkID(op, id)
	if a == nil || b == nil {
		exceptions.Panicf("%s: nil operand", op)
	}
	if la, lb := len(a.Value()), len(b.Value()); la != lb {
		exceptions.Panicf("%s(%s, %s): operand lengths differ: %d != %d",
			op, a.Name(), b.Name(), la, lb)
	}
}
