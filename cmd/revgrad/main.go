// Package main provides the revgrad CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"

	"github.com/born-ml/revgrad/autodiff"
)

const version = "v0.0.1-dev"

var flagX = flag.Float64("x", 1.5, "input value used by the demo functions")

func main() {
	klog.InitFlags(nil)
	flag.Usage = usage
	flag.Parse()
	defer klog.Flush()

	switch cmd := flag.Arg(0); cmd {
	case "version":
		printVersion(os.Stdout)
	case "demo":
		demo(os.Stdout, float32(*flagX))
	case "":
		usage()
	default:
		klog.Exitf("unknown command %q", cmd)
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, "revgrad - reverse-mode automatic differentiation for Go")
	fmt.Fprintf(out, "Version: %s\n\n", version)
	fmt.Fprintln(out, "Usage: revgrad [flags] <command>")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  version    Show version")
	fmt.Fprintln(out, "  demo       Differentiate a few sample functions")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Flags:")
	flag.PrintDefaults()
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "revgrad %s\n", version)
}

// demo evaluates sample functions at x and writes their values and gradients
// to w.
func demo(w io.Writer, x float32) {
	b := autodiff.NewBuilder()

	type sample struct {
		name string
		fn   func(v autodiff.Node) autodiff.Node
	}
	samples := []sample{
		{"x^3 - 2x^2 + x", func(v autodiff.Node) autodiff.Node {
			cube := b.Mul(b.Mul(v, v), v)
			return b.Add(b.Sub(cube, b.MulScalar(b.Mul(v, v), 2)), v)
		}},
		{"sigmoid(x)", func(v autodiff.Node) autodiff.Node {
			return b.Sigmoid(v)
		}},
		{"sin(x) * exp(x)", func(v autodiff.Node) autodiff.Node {
			return b.Mul(b.Sin(v), b.Exp(v))
		}},
		{"x^x", func(v autodiff.Node) autodiff.Node {
			return b.Pow(v, v)
		}},
	}

	for _, s := range samples {
		v := b.Variable(x)
		f := must.M1(autodiff.Build(func() autodiff.Node { return s.fn(v) }))
		g := autodiff.Backward(f)
		grad, _ := g.Grad(v)
		fmt.Fprintf(w, "%-16s f(%g) = %-12g f'(%g) = %g\n", s.name, x, f.Value()[0], x, grad[0])
	}

	// Gradient of a dot product with respect to a vector.
	v := b.Variable(x, 2*x, 3*x)
	c := b.Constant(1, -1, 0.5)
	dot := must.M1(autodiff.Build(func() autodiff.Node { return b.Dot(v, c) }))
	g := autodiff.Backward(dot)
	grad, _ := g.Grad(v)
	fmt.Fprintf(w, "%-16s value = %g, d/dw = %v\n", "dot(w, c)", dot.Value()[0], grad)
}
