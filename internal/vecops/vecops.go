// Package vecops provides element-wise arithmetic over float32 vectors.
//
// Every binary operation comes in two forms:
//   - To variants (AddTo, SubTo, MulTo, DivTo) write a[i] op b[i] into dst.
//   - In-place variants (Add, Sub, Mul, Div) update dst[i] = dst[i] op s[i].
//
// All operands must have the same length. The package knows nothing about
// computation graphs; it is the arithmetic kernel the autodiff operators are
// written against.
package vecops

// AddTo computes dst[i] = a[i] + b[i].
func AddTo(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// SubTo computes dst[i] = a[i] - b[i].
func SubTo(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// MulTo computes dst[i] = a[i] * b[i].
func MulTo(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// DivTo computes dst[i] = a[i] / b[i].
//
// Division by zero yields +Inf, -Inf or NaN following IEEE 754.
func DivTo(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

// Add accumulates s into dst: dst[i] += s[i].
func Add(dst, s []float32) {
	for i := range dst {
		dst[i] += s[i]
	}
}

// Sub computes dst[i] -= s[i].
func Sub(dst, s []float32) {
	for i := range dst {
		dst[i] -= s[i]
	}
}

// Mul computes dst[i] *= s[i].
func Mul(dst, s []float32) {
	for i := range dst {
		dst[i] *= s[i]
	}
}

// Div computes dst[i] /= s[i].
func Div(dst, s []float32) {
	for i := range dst {
		dst[i] /= s[i]
	}
}

// NegTo computes dst[i] = -s[i].
func NegTo(dst, s []float32) {
	for i := range dst {
		dst[i] = -s[i]
	}
}

// Fill sets every element of dst to v.
func Fill(dst []float32, v float32) {
	for i := range dst {
		dst[i] = v
	}
}

// Sum returns the sum of all elements of v, or 0 if v is empty.
func Sum(v []float32) float32 {
	var sum float32
	for _, x := range v {
		sum += x
	}
	return sum
}

// Zeros returns a new zero-filled vector of length n.
func Zeros(n int) []float32 {
	return make([]float32, n)
}

// Ones returns a new vector of length n filled with 1.
func Ones(n int) []float32 {
	out := make([]float32, n)
	Fill(out, 1)
	return out
}

// Clone returns a copy of v.
func Clone(v []float32) []float32 {
	out := make([]float32, len(v))
	copy(out, v)
	return out
}
