package ops

import (
	"github.com/gomlx/exceptions"

	"github.com/born-ml/revgrad/internal/vecops"
)

// SumVecOp reduces a vector to a single value: output = [Σ x_i].
//
// Backward pass:
//   - d(Σx)/dx_i = 1, so every input element receives upstream[0]
type SumVecOp struct {
	composite
}

// NewSumVecOp creates a new SumVecOp. The input must not be empty.
func NewSumVecOp(id NodeID, x Node) *SumVecOp {
	checkUnary("SumVec", id, x)
	if len(x.Value()) == 0 {
		exceptions.Panicf("SumVec(%s): empty input", x.Name())
	}
	value := []float32{vecops.Sum(x.Value())}
	return &SumVecOp{composite: newComposite(id, value, x)}
}

// Name returns "SumVec".
func (op *SumVecOp) Name() string { return "SumVec" }

// ComputeGrad broadcasts the single upstream value to every input element.
func (op *SumVecOp) ComputeGrad(upstream []float32, out [][]float32) {
	vecops.Fill(out[0], upstream[0])
}
