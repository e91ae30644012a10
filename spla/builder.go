package spla

import (
	"github.com/sparselinalg/spla/descriptor"
	"github.com/sparselinalg/spla/expr"
)

// Builder accumulates expr.Node values into one Expression, automatically
// sequencing operations that touch the same Vector/Matrix/Scalar handle:
// the previous node to read or write a handle becomes a dependency of the
// next one, so two ops sharing a destination never race in the scheduler.
type Builder struct {
	lib  *Library
	expr *expr.Expression
	last map[any]*expr.Node
}

func newBuilder(lib *Library) *Builder {
	return &Builder{lib: lib, expr: expr.New(), last: make(map[any]*expr.Node)}
}

// Expression exposes the underlying DAG, e.g. to inspect State after a
// Submit.
func (b *Builder) Expression() *expr.Expression { return b.expr }

// addNode appends kind with args/desc/shapes, then wires a dependency
// edge from the last node to touch each handle in touched (in the order
// given) to the new node, and records the new node as the latest for
// each of those handles.
func (b *Builder) addNode(kind expr.Kind, args []any, desc *descriptor.Descriptor, outShape expr.Shape, argShapes []expr.Shape, touched []any) (*expr.Node, error) {
	n, err := b.expr.MakeNode(kind, args, desc, outShape, argShapes)
	if err != nil {
		return nil, err
	}
	// Two passes, not one: a handle can appear twice in touched (e.g. an
	// mxm masked by one of its own operands). Resolving prior writers
	// before recording this node as the new one avoids wiring a
	// self-dependency the second time the same handle is seen, which
	// TopoSort would otherwise report as a cycle.
	seen := make(map[any]bool, len(touched))
	var prevs []*expr.Node
	for _, h := range touched {
		if h == nil || seen[h] {
			continue
		}
		seen[h] = true
		if prev, ok := b.last[h]; ok {
			prevs = append(prevs, prev)
		}
	}
	for _, prev := range prevs {
		if err := b.expr.Dependency(prev, n); err != nil {
			return nil, err
		}
	}
	for h := range seen {
		b.last[h] = n
	}
	return n, nil
}

func maskDesc(complement bool) *descriptor.Descriptor {
	d := descriptor.New()
	d.SetFlag(descriptor.MaskComplement, complement)
	return d
}

func accumDesc(complement bool, accumKey string) *descriptor.Descriptor {
	d := maskDesc(complement)
	if accumKey != "" {
		d.SetParam(descriptor.AccumResult, accumKey)
	}
	return d
}
