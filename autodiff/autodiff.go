// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// float32 vectors.
//
// Values are computed eagerly when a node is constructed. A backward pass
// walks the graph from an output node and accumulates the gradient of that
// output with respect to every node reachable from it.
//
// Example:
//
//	import "github.com/born-ml/revgrad/autodiff"
//
//	func main() {
//	    b := autodiff.NewBuilder()
//	    x := b.Variable(1, 2, 3)
//	    w := b.Constant(0.5, 0.5, 0.5)
//
//	    loss := b.Dot(x, w) // 3
//
//	    g := autodiff.Backward(loss)
//	    grad, _ := g.Grad(x) // [0.5 0.5 0.5]
//	}
//
// Construction panics when operands are nil or their lengths differ. Use
// Build to receive those violations as errors.
package autodiff

import (
	"k8s.io/klog/v2"

	"github.com/born-ml/revgrad/internal/autodiff"
	"github.com/born-ml/revgrad/internal/autodiff/ops"
)

// Node is a vertex of a computation graph.
type Node = ops.Node

// NodeID identifies a node. IDs are unique across allocators.
type NodeID = ops.NodeID

// IDAllocator hands out node ids.
type IDAllocator = ops.IDAllocator

// NewIDAllocator creates an allocator with its own id space.
func NewIDAllocator() *IDAllocator {
	return ops.NewIDAllocator()
}

// Builder constructs nodes.
type Builder = autodiff.Builder

// BuilderOption configures a Builder.
type BuilderOption = autodiff.BuilderOption

// NewBuilder creates a builder.
//
// Example:
//
//	ids := autodiff.NewIDAllocator()
//	b := autodiff.NewBuilder(autodiff.WithIDAllocator(ids))
func NewBuilder(opts ...BuilderOption) *Builder {
	return autodiff.NewBuilder(opts...)
}

// WithIDAllocator makes a builder draw ids from ids.
func WithIDAllocator(ids *IDAllocator) BuilderOption {
	return autodiff.WithIDAllocator(ids)
}

// Graph is a backward context holding the gradients of one pass.
type Graph = autodiff.Graph

// GraphOption configures a Graph.
type GraphOption = autodiff.GraphOption

// NewGraph creates an empty backward context.
func NewGraph(opts ...GraphOption) *Graph {
	return autodiff.NewGraph(opts...)
}

// WithLogVerbosity sets the klog level for pass summaries.
func WithLogVerbosity(level klog.Level) GraphOption {
	return autodiff.WithLogVerbosity(level)
}

// Backward runs a backward pass from root and returns its context.
func Backward(root Node, opts ...GraphOption) *Graph {
	return autodiff.Backward(root, opts...)
}

// Build runs fn and returns construction contract violations as an error.
//
// Example:
//
//	loss, err := autodiff.Build(func() autodiff.Node {
//	    return b.Dot(x, w)
//	})
func Build(fn func() Node) (Node, error) {
	return autodiff.Build(fn)
}
