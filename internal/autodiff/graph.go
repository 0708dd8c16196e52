package autodiff

import (
	"slices"

	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"

	"github.com/born-ml/revgrad/internal/autodiff/ops"
	"github.com/born-ml/revgrad/internal/vecops"
)

// DefaultLogVerbosity is the klog level at which a Graph reports passes.
// Per-node tracing is logged one level higher.
const DefaultLogVerbosity klog.Level = 2

// Graph is the backward context: it computes the gradient of one output with
// respect to every node reachable from it, and keeps those gradients for
// lookup.
//
// Usage:
//
//	g := NewGraph()
//	g.Backward(loss)
//	grad, ok := g.Grad(x)
//
// A Graph is not safe for concurrent use. Independent graphs may run over
// the same nodes concurrently, since nodes are never mutated.
type Graph struct {
	grads     map[ops.NodeID][]float32 // accumulated gradient per node
	order     []ops.Node               // processing order of the last pass
	verbosity klog.Level
}

// GraphOption configures a Graph.
type GraphOption func(*Graph)

// WithLogVerbosity sets the klog level for pass summaries.
func WithLogVerbosity(level klog.Level) GraphOption {
	return func(g *Graph) {
		g.verbosity = level
	}
}

// NewGraph creates an empty backward context.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		grads:     make(map[ops.NodeID][]float32),
		verbosity: DefaultLogVerbosity,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Backward computes gradients of root with respect to every node reachable
// from it.
//
// Algorithm:
//  1. Order the reachable nodes so every node comes after all of its
//     consumers (reverse post-order, each node id visited once)
//  2. Seed root with ones: the gradient of each output element w.r.t. itself
//  3. For each node in order, compute its children's contributions and add
//     them to the children's accumulators
//
// Any gradients from a previous pass are discarded first. Gradients of
// constants are dropped once they have been reached; every other reached
// node keeps its accumulated gradient.
func (g *Graph) Backward(root ops.Node) {
	if root == nil {
		exceptions.Panicf("backward: nil root")
	}

	order := postOrder(root)
	slices.Reverse(order)
	g.order = order
	g.grads = make(map[ops.NodeID][]float32, len(order))
	g.grads[root.ID()] = vecops.Ones(len(root.Value()))

	for _, node := range order {
		g.propagate(node)
	}

	klog.V(g.verbosity).Infof("backward: root %s (%s), %d reachable nodes, %d gradients kept",
		root.ID(), root.Name(), len(order), len(g.grads))
}

// propagate pushes the accumulated gradient of node into its children.
func (g *Graph) propagate(node ops.Node) {
	id := node.ID()
	upstream, ok := g.grads[id]
	if !ok {
		return
	}
	if node.IsLeaf() {
		if !node.RequiresGrad() {
			delete(g.grads, id)
		}
		return
	}

	children := node.Children()
	contributions := make([][]float32, len(children))
	for i, child := range children {
		contributions[i] = vecops.Zeros(len(child.Value()))
	}
	node.ComputeGrad(upstream, contributions)

	for i, child := range children {
		childID := child.ID()
		if acc, exists := g.grads[childID]; exists {
			vecops.Add(acc, contributions[i])
		} else {
			// Contributions are freshly allocated, so the first one can
			// become the accumulator.
			g.grads[childID] = contributions[i]
		}
	}

	if v := klog.V(g.verbosity + 1); v.Enabled() {
		v.Infof("backward: %s %s -> %d children", id, node.Name(), len(children))
	}
}

// postOrder returns the nodes reachable from root with every node placed
// after all of its children. Each node id appears once. The walk uses an
// explicit stack so deep chains do not grow the goroutine stack.
func postOrder(root ops.Node) []ops.Node {
	type frame struct {
		node ops.Node
		next int // index of the next child to visit
	}

	visited := map[ops.NodeID]ops.Node{root.ID(): root}
	stack := []frame{{node: root}}
	var order []ops.Node

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		children := top.node.Children()
		if top.next < len(children) {
			child := children[top.next]
			top.next++
			if seen, ok := visited[child.ID()]; ok {
				if seen != child {
					exceptions.Panicf("backward: nodes %s and %s share id %s",
						seen.Name(), child.Name(), child.ID())
				}
				continue
			}
			visited[child.ID()] = child
			stack = append(stack, frame{node: child})
			continue
		}
		order = append(order, top.node)
		stack = stack[:len(stack)-1]
	}
	return order
}

// Grad returns the gradient accumulated for node in the last pass.
//
// The second result is false when no gradient was recorded: node is a
// constant, it is not reachable from the root, or Backward has not run. A
// recorded gradient is never fabricated, so false is distinct from a
// gradient of zeros. The returned slice is a copy; modifying it does not
// change the Graph.
func (g *Graph) Grad(node ops.Node) ([]float32, bool) {
	if node == nil {
		return nil, false
	}
	return g.GradByID(node.ID())
}

// GradByID is like Grad but looks the gradient up by node id.
func (g *Graph) GradByID(id ops.NodeID) ([]float32, bool) {
	grad, ok := g.grads[id]
	if !ok {
		return nil, false
	}
	return slices.Clone(grad), true
}

// NumGrads returns how many gradients the last pass kept.
func (g *Graph) NumGrads() int {
	return len(g.grads)
}

// Order returns the processing order of the last pass: root first, leaves
// last.
func (g *Graph) Order() []ops.Node {
	return slices.Clone(g.order)
}
