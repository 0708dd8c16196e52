package ops_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/revgrad/internal/autodiff/ops"
)

var approx = cmpopts.EquateApprox(0, 1e-6)

// float32Equal checks float32 slices are equal within epsilon.
func float32Equal(a, b []float32, epsilon float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		diff := a[i] - b[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > epsilon {
			return false
		}
	}
	return true
}

// grads runs ComputeGrad of op into buffers sized like its children.
func grads(op ops.Node, upstream []float32) [][]float32 {
	children := op.Children()
	out := make([][]float32, len(children))
	for i, c := range children {
		out[i] = make([]float32, len(c.Value()))
	}
	op.ComputeGrad(upstream, out)
	return out
}

func TestBinaryForward(t *testing.T) {
	ids := ops.NewIDAllocator()
	x := ops.NewVariableOp(ids.Next(), []float32{0, 1})
	y := ops.NewVariableOp(ids.Next(), []float32{2, 3})

	tests := []struct {
		name string
		node ops.Node
		want []float32
	}{
		{"Add", ops.NewAddOp(ids.Next(), x, y), []float32{2, 4}},
		{"Sub", ops.NewSubOp(ids.Next(), x, y), []float32{-2, -2}},
		{"Mul", ops.NewMulOp(ids.Next(), x, y), []float32{0, 3}},
		{"Div", ops.NewDivOp(ids.Next(), x, y), []float32{0, 1.0 / 3.0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.node.Value(), approx); diff != "" {
				t.Errorf("%s value mismatch (-want +got):\n%s", tc.name, diff)
			}
			assert.Equal(t, tc.name, tc.node.Name())
			assert.False(t, tc.node.IsLeaf())
			assert.False(t, tc.node.RequiresGrad())
			require.Len(t, tc.node.Children(), 2)
			assert.Equal(t, x.ID(), tc.node.Children()[0].ID())
			assert.Equal(t, y.ID(), tc.node.Children()[1].ID())
		})
	}
}

func TestPowOp_Forward(t *testing.T) {
	ids := ops.NewIDAllocator()
	x := ops.NewVariableOp(ids.Next(), []float32{0, 1, 2})
	y := ops.NewVariableOp(ids.Next(), []float32{2, 3, 3})

	res := ops.NewPowOp(ids.Next(), x, y)
	assert.InDeltaSlice(t, []float32{0, 1, 8}, res.Value(), 1e-6)
}

func TestUnaryForward(t *testing.T) {
	ids := ops.NewIDAllocator()
	in := []float32{0.5, 1, 2}
	x := ops.NewVariableOp(ids.Next(), in)

	tests := []struct {
		name string
		node ops.Node
		fn   func(float64) float64
	}{
		{"Cos", ops.NewCosOp(ids.Next(), x), math.Cos},
		{"Sin", ops.NewSinOp(ids.Next(), x), math.Sin},
		{"Log", ops.NewLogOp(ids.Next(), x), math.Log},
		{"Exp", ops.NewExpOp(ids.Next(), x), math.Exp},
		{"Neg", ops.NewNegOp(ids.Next(), x), func(v float64) float64 { return -v }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			want := make([]float32, len(in))
			for i, v := range in {
				want[i] = float32(tc.fn(float64(v)))
			}
			if !float32Equal(tc.node.Value(), want, 1e-5) {
				t.Errorf("%s: got %v, want %v", tc.name, tc.node.Value(), want)
			}
			require.Len(t, tc.node.Children(), 1)
		})
	}
}

func TestReductions_Forward(t *testing.T) {
	ids := ops.NewIDAllocator()
	a := ops.NewVariableOp(ids.Next(), []float32{1, 2, 3})
	b := ops.NewConstantOp(ids.Next(), []float32{10, 20, 30})

	sum := ops.NewSumVecOp(ids.Next(), a)
	assert.Equal(t, []float32{6}, sum.Value())

	bulk := ops.NewBulkSumOp(ids.Next(), a, b, a)
	assert.Equal(t, []float32{12, 24, 36}, bulk.Value())
	assert.Len(t, bulk.Children(), 3)

	single := ops.NewBulkSumOp(ids.Next(), b)
	assert.Equal(t, []float32{10, 20, 30}, single.Value())
}

func TestLeaves(t *testing.T) {
	ids := ops.NewIDAllocator()
	src := []float32{1, 2}
	v := ops.NewVariableOp(ids.Next(), src)
	c := ops.NewConstantOp(ids.Next(), src)
	s := ops.NewScalarOp(ids.Next(), 2)
	f := ops.NewFullOp(ids.Next(), 3, 7)

	assert.True(t, v.IsLeaf())
	assert.True(t, v.RequiresGrad())
	assert.Nil(t, v.Children())
	assert.True(t, c.IsLeaf())
	assert.False(t, c.RequiresGrad())
	assert.Equal(t, []float32{2}, s.Value())
	assert.Equal(t, []float32{7, 7, 7}, f.Value())

	// Leaves own their storage.
	src[0] = 100
	assert.Equal(t, []float32{1, 2}, v.Value())
	assert.Equal(t, []float32{1, 2}, c.Value())

	// Backward on a leaf touches nothing.
	v.ComputeGrad([]float32{1, 1}, nil)
	c.ComputeGrad([]float32{1, 1}, nil)
}

func TestComputeGrad(t *testing.T) {
	ids := ops.NewIDAllocator()
	x := ops.NewVariableOp(ids.Next(), []float32{1, 2})
	y := ops.NewVariableOp(ids.Next(), []float32{4, 0.5})
	g := []float32{1, 2}

	tests := []struct {
		name string
		node ops.Node
		want [][]float32
	}{
		{"Add", ops.NewAddOp(ids.Next(), x, y), [][]float32{{1, 2}, {1, 2}}},
		{"Sub", ops.NewSubOp(ids.Next(), x, y), [][]float32{{1, 2}, {-1, -2}}},
		{"Mul", ops.NewMulOp(ids.Next(), x, y), [][]float32{{4, 1}, {1, 4}}},
		// grad_x = g/y, grad_y = -g*x/y²
		{"Div", ops.NewDivOp(ids.Next(), x, y), [][]float32{{0.25, 4}, {-1.0 / 16, -16}}},
		// grad_x = g*y*x^(y-1), grad_y = g*ln(x)*x^y
		{"Pow", ops.NewPowOp(ids.Next(), x, y), [][]float32{
			{4, 2 * 0.5 * float32(math.Pow(2, -0.5))},
			{0, 2 * float32(math.Log(2)*math.Sqrt(2))},
		}},
		{"Neg", ops.NewNegOp(ids.Next(), x), [][]float32{{-1, -2}}},
		{"Exp", ops.NewExpOp(ids.Next(), x), [][]float32{{float32(math.E), 2 * float32(math.Exp(2))}}},
		{"Log", ops.NewLogOp(ids.Next(), x), [][]float32{{1, 1}}},
		{"Sin", ops.NewSinOp(ids.Next(), x), [][]float32{{float32(math.Cos(1)), 2 * float32(math.Cos(2))}}},
		{"Cos", ops.NewCosOp(ids.Next(), x), [][]float32{{-float32(math.Sin(1)), -2 * float32(math.Sin(2))}}},
		{"BulkSum", ops.NewBulkSumOp(ids.Next(), x, y, x), [][]float32{{1, 2}, {1, 2}, {1, 2}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := grads(tc.node, g)
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateApprox(1e-5, 1e-6)); diff != "" {
				t.Errorf("%s gradients mismatch (-want +got):\n%s", tc.name, diff)
			}
		})
	}
}

func TestSumVecOp_ComputeGrad(t *testing.T) {
	ids := ops.NewIDAllocator()
	x := ops.NewVariableOp(ids.Next(), []float32{1, 2, 3})
	sum := ops.NewSumVecOp(ids.Next(), x)

	got := grads(sum, []float32{3})
	assert.Equal(t, [][]float32{{3, 3, 3}}, got)
}

func TestComputeGrad_Overwrites(t *testing.T) {
	ids := ops.NewIDAllocator()
	x := ops.NewVariableOp(ids.Next(), []float32{1, 2})
	y := ops.NewVariableOp(ids.Next(), []float32{3, 4})
	add := ops.NewAddOp(ids.Next(), x, y)

	out := [][]float32{{100, 100}, {-5, -5}}
	add.ComputeGrad([]float32{1, 1}, out)
	assert.Equal(t, [][]float32{{1, 1}, {1, 1}}, out)
}

func TestDomainErrorsPropagate(t *testing.T) {
	ids := ops.NewIDAllocator()
	zero := ops.NewVariableOp(ids.Next(), []float32{0, -1})
	one := ops.NewConstantOp(ids.Next(), []float32{1, 1})

	div := ops.NewDivOp(ids.Next(), one, zero)
	assert.True(t, math.IsInf(float64(div.Value()[0]), 1))

	lg := ops.NewLogOp(ids.Next(), zero)
	assert.True(t, math.IsInf(float64(lg.Value()[0]), -1))
	assert.True(t, math.IsNaN(float64(lg.Value()[1])))

	// 0^2: the base gradient is fine, the exponent term is ln(0)*0 = NaN.
	two := ops.NewConstantOp(ids.Next(), []float32{2, 2})
	pow := ops.NewPowOp(ids.Next(), zero, two)
	got := grads(pow, []float32{1, 1})
	assert.Equal(t, float32(0), got[0][0])
	assert.True(t, math.IsNaN(float64(got[1][0])))
}
