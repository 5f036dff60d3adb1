package yoga

import (
	"github.com/matzehuels/yogabind/pkg/errors"
	"github.com/matzehuels/yogabind/pkg/native"
)

// Layout is the computed box of a node relative to its parent, valid as of
// the last layout pass.
type Layout struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
	Width  float32
	Height float32
}

// Size returns the extent along d.
func (l Layout) Size(d Dimension) float32 {
	if d == DimensionHeight {
		return l.Height
	}
	return l.Width
}

// ComputedLayout returns the node's box from the last pass. Before any pass
// the engine defaults are returned.
func (n *Node) ComputedLayout() (Layout, error) {
	if err := n.live(); err != nil {
		return Layout{}, err
	}
	t, ref := n.b.tab, n.ref
	return Layout{
		Left:   t.LayoutGetLeft(ref),
		Top:    t.LayoutGetTop(ref),
		Right:  t.LayoutGetRight(ref),
		Bottom: t.LayoutGetBottom(ref),
		Width:  t.LayoutGetWidth(ref),
		Height: t.LayoutGetHeight(ref),
	}, nil
}

func (n *Node) ComputedLeft() (float32, error)   { return n.getScalar(n.b.tab.LayoutGetLeft) }
func (n *Node) ComputedTop() (float32, error)    { return n.getScalar(n.b.tab.LayoutGetTop) }
func (n *Node) ComputedRight() (float32, error)  { return n.getScalar(n.b.tab.LayoutGetRight) }
func (n *Node) ComputedBottom() (float32, error) { return n.getScalar(n.b.tab.LayoutGetBottom) }
func (n *Node) ComputedWidth() (float32, error)  { return n.getScalar(n.b.tab.LayoutGetWidth) }
func (n *Node) ComputedHeight() (float32, error) { return n.getScalar(n.b.tab.LayoutGetHeight) }

// ComputedDirection returns the resolved direction of the last pass.
func (n *Node) ComputedDirection() (Direction, error) {
	v, err := n.getEnum(n.b.tab.LayoutGetDirection)
	return Direction(v), err
}

// HadOverflow reports whether children overflowed the node in the last pass.
func (n *Node) HadOverflow() (bool, error) {
	if err := n.live(); err != nil {
		return false, err
	}
	return n.b.tab.LayoutGetHadOverflow(n.ref), nil
}

func (n *Node) computedEdge(edge Edge, get func(native.NodeRef, int32) float32) (float32, error) {
	if err := n.live(); err != nil {
		return 0, err
	}
	if edge > EdgeEnd || edge < EdgeLeft {
		return 0, errors.New(errors.ErrCodeInvalidInput, "computed layout has no %s edge", edge)
	}
	return get(n.ref, int32(edge)), nil
}

// ComputedMargin returns the resolved margin on a physical edge or on
// EdgeStart or EdgeEnd.
func (n *Node) ComputedMargin(edge Edge) (float32, error) {
	return n.computedEdge(edge, n.b.tab.LayoutGetMargin)
}

// ComputedBorder returns the resolved border width on edge.
func (n *Node) ComputedBorder(edge Edge) (float32, error) {
	return n.computedEdge(edge, n.b.tab.LayoutGetBorder)
}

// ComputedPadding returns the resolved padding on edge.
func (n *Node) ComputedPadding(edge Edge) (float32, error) {
	return n.computedEdge(edge, n.b.tab.LayoutGetPadding)
}
