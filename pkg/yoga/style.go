package yoga

import (
	"math"

	"github.com/matzehuels/yogabind/pkg/errors"
	"github.com/matzehuels/yogabind/pkg/native"
)

// Helpers binding a node handle to per-unit entry points.

func (n *Node) dim(name string, point, percent func(native.NodeRef, float32), auto func(native.NodeRef)) valueSetters {
	s := valueSetters{name: name}
	s.point = func(f float32) { point(n.ref, f) }
	if percent != nil {
		s.percent = func(f float32) { percent(n.ref, f) }
	}
	if auto != nil {
		s.auto = func() { auto(n.ref) }
	}
	return s
}

func (n *Node) edged(name string, edge int32, point, percent func(native.NodeRef, int32, float32), auto func(native.NodeRef, int32)) valueSetters {
	s := valueSetters{name: name}
	s.point = func(f float32) { point(n.ref, edge, f) }
	if percent != nil {
		s.percent = func(f float32) { percent(n.ref, edge, f) }
	}
	if auto != nil {
		s.auto = func() { auto(n.ref, edge) }
	}
	return s
}

func (n *Node) setValue(s valueSetters, v Value) error {
	if err := n.live(); err != nil {
		return err
	}
	if err := s.apply(v); err != nil {
		return err
	}
	return n.b.drain()
}

func (n *Node) getValue(get func(native.NodeRef) native.Value) (Value, error) {
	if err := n.live(); err != nil {
		return Undefined(), err
	}
	return fromNative(get(n.ref)), nil
}

func (n *Node) getEdgeValue(edge Edge, get func(native.NodeRef, int32) native.Value) (Value, error) {
	if err := n.live(); err != nil {
		return Undefined(), err
	}
	if !edge.valid() {
		return Undefined(), errors.New(errors.ErrCodeInvalidStyleInput, "invalid edge %d", edge)
	}
	return fromNative(get(n.ref, int32(edge))), nil
}

// checkEdge applies the freed-node check before validating edge.
func (n *Node) checkEdge(edge Edge) error {
	if err := n.live(); err != nil {
		return err
	}
	if !edge.valid() {
		return errors.New(errors.ErrCodeInvalidStyleInput, "invalid edge %d", edge)
	}
	return nil
}

func (n *Node) setEnum(kind string, names []string, v int32, set func(native.NodeRef, int32)) error {
	if err := n.live(); err != nil {
		return err
	}
	if v < 0 || int(v) >= len(names) {
		return errors.New(errors.ErrCodeInvalidStyleInput, "invalid %s %d", kind, v)
	}
	set(n.ref, v)
	return n.b.drain()
}

func (n *Node) getEnum(get func(native.NodeRef) int32) (int32, error) {
	if err := n.live(); err != nil {
		return 0, err
	}
	return get(n.ref), nil
}

func (n *Node) setScalar(name string, f float32, set func(native.NodeRef, float32)) error {
	if err := n.live(); err != nil {
		return err
	}
	if math.IsInf(float64(f), 0) {
		return errors.New(errors.ErrCodeInvalidStyleInput, "%s must be finite", name)
	}
	set(n.ref, f)
	return n.b.drain()
}

func (n *Node) getScalar(get func(native.NodeRef) float32) (float32, error) {
	if err := n.live(); err != nil {
		return 0, err
	}
	return get(n.ref), nil
}

// Enumerations

func (n *Node) SetDirection(d Direction) error {
	return n.setEnum("direction", directionNames, int32(d), n.b.tab.StyleSetDirection)
}

func (n *Node) Direction() (Direction, error) {
	v, err := n.getEnum(n.b.tab.StyleGetDirection)
	return Direction(v), err
}

func (n *Node) SetFlexDirection(d FlexDirection) error {
	return n.setEnum("flex direction", flexDirectionNames, int32(d), n.b.tab.StyleSetFlexDirection)
}

func (n *Node) FlexDirection() (FlexDirection, error) {
	v, err := n.getEnum(n.b.tab.StyleGetFlexDirection)
	return FlexDirection(v), err
}

func (n *Node) SetJustifyContent(j Justify) error {
	return n.setEnum("justify", justifyNames, int32(j), n.b.tab.StyleSetJustifyContent)
}

func (n *Node) JustifyContent() (Justify, error) {
	v, err := n.getEnum(n.b.tab.StyleGetJustifyContent)
	return Justify(v), err
}

func (n *Node) SetAlignContent(a Align) error {
	return n.setEnum("align", alignNames, int32(a), n.b.tab.StyleSetAlignContent)
}

func (n *Node) AlignContent() (Align, error) {
	v, err := n.getEnum(n.b.tab.StyleGetAlignContent)
	return Align(v), err
}

func (n *Node) SetAlignItems(a Align) error {
	return n.setEnum("align", alignNames, int32(a), n.b.tab.StyleSetAlignItems)
}

func (n *Node) AlignItems() (Align, error) {
	v, err := n.getEnum(n.b.tab.StyleGetAlignItems)
	return Align(v), err
}

func (n *Node) SetAlignSelf(a Align) error {
	return n.setEnum("align", alignNames, int32(a), n.b.tab.StyleSetAlignSelf)
}

func (n *Node) AlignSelf() (Align, error) {
	v, err := n.getEnum(n.b.tab.StyleGetAlignSelf)
	return Align(v), err
}

func (n *Node) SetPositionType(p PositionType) error {
	return n.setEnum("position type", positionTypeNames, int32(p), n.b.tab.StyleSetPositionType)
}

func (n *Node) PositionType() (PositionType, error) {
	v, err := n.getEnum(n.b.tab.StyleGetPositionType)
	return PositionType(v), err
}

func (n *Node) SetFlexWrap(w Wrap) error {
	return n.setEnum("wrap", wrapNames, int32(w), n.b.tab.StyleSetFlexWrap)
}

func (n *Node) FlexWrap() (Wrap, error) {
	v, err := n.getEnum(n.b.tab.StyleGetFlexWrap)
	return Wrap(v), err
}

func (n *Node) SetOverflow(o Overflow) error {
	return n.setEnum("overflow", overflowNames, int32(o), n.b.tab.StyleSetOverflow)
}

func (n *Node) Overflow() (Overflow, error) {
	v, err := n.getEnum(n.b.tab.StyleGetOverflow)
	return Overflow(v), err
}

func (n *Node) SetDisplay(d Display) error {
	return n.setEnum("display", displayNames, int32(d), n.b.tab.StyleSetDisplay)
}

func (n *Node) Display() (Display, error) {
	v, err := n.getEnum(n.b.tab.StyleGetDisplay)
	return Display(v), err
}

func (n *Node) SetBoxSizing(b BoxSizing) error {
	return n.setEnum("box sizing", boxSizingNames, int32(b), n.b.tab.StyleSetBoxSizing)
}

func (n *Node) BoxSizing() (BoxSizing, error) {
	v, err := n.getEnum(n.b.tab.StyleGetBoxSizing)
	return BoxSizing(v), err
}

// Scalars. NaN resets a scalar to its default.

func (n *Node) SetFlex(f float32) error {
	return n.setScalar("flex", f, n.b.tab.StyleSetFlex)
}

func (n *Node) Flex() (float32, error) {
	return n.getScalar(n.b.tab.StyleGetFlex)
}

func (n *Node) SetFlexGrow(f float32) error {
	return n.setScalar("flex grow", f, n.b.tab.StyleSetFlexGrow)
}

func (n *Node) FlexGrow() (float32, error) {
	return n.getScalar(n.b.tab.StyleGetFlexGrow)
}

func (n *Node) SetFlexShrink(f float32) error {
	return n.setScalar("flex shrink", f, n.b.tab.StyleSetFlexShrink)
}

func (n *Node) FlexShrink() (float32, error) {
	return n.getScalar(n.b.tab.StyleGetFlexShrink)
}

func (n *Node) SetAspectRatio(f float32) error {
	return n.setScalar("aspect ratio", f, n.b.tab.StyleSetAspectRatio)
}

func (n *Node) AspectRatio() (float32, error) {
	return n.getScalar(n.b.tab.StyleGetAspectRatio)
}

// Flex basis

func (n *Node) flexBasis() valueSetters {
	t := n.b.tab
	return n.dim("flex basis", t.StyleSetFlexBasis, t.StyleSetFlexBasisPercent, t.StyleSetFlexBasisAuto)
}

func (n *Node) SetFlexBasis(v Value) error          { return n.setValue(n.flexBasis(), v) }
func (n *Node) SetFlexBasisPercent(f float32) error { return n.SetFlexBasis(Percent(f)) }
func (n *Node) SetFlexBasisAuto() error             { return n.SetFlexBasis(Auto()) }

func (n *Node) FlexBasis() (Value, error) {
	return n.getValue(n.b.tab.StyleGetFlexBasis)
}

// Dimensions

func (n *Node) width() valueSetters {
	t := n.b.tab
	return n.dim("width", t.StyleSetWidth, t.StyleSetWidthPercent, t.StyleSetWidthAuto)
}

func (n *Node) SetWidth(v Value) error          { return n.setValue(n.width(), v) }
func (n *Node) SetWidthPercent(f float32) error { return n.SetWidth(Percent(f)) }
func (n *Node) SetWidthAuto() error             { return n.SetWidth(Auto()) }

func (n *Node) Width() (Value, error) {
	return n.getValue(n.b.tab.StyleGetWidth)
}

func (n *Node) height() valueSetters {
	t := n.b.tab
	return n.dim("height", t.StyleSetHeight, t.StyleSetHeightPercent, t.StyleSetHeightAuto)
}

func (n *Node) SetHeight(v Value) error          { return n.setValue(n.height(), v) }
func (n *Node) SetHeightPercent(f float32) error { return n.SetHeight(Percent(f)) }
func (n *Node) SetHeightAuto() error             { return n.SetHeight(Auto()) }

func (n *Node) Height() (Value, error) {
	return n.getValue(n.b.tab.StyleGetHeight)
}

func (n *Node) SetMinWidth(v Value) error {
	return n.setValue(n.dim("min width", n.b.tab.StyleSetMinWidth, n.b.tab.StyleSetMinWidthPercent, nil), v)
}

func (n *Node) SetMinWidthPercent(f float32) error { return n.SetMinWidth(Percent(f)) }

func (n *Node) MinWidth() (Value, error) {
	return n.getValue(n.b.tab.StyleGetMinWidth)
}

func (n *Node) SetMinHeight(v Value) error {
	return n.setValue(n.dim("min height", n.b.tab.StyleSetMinHeight, n.b.tab.StyleSetMinHeightPercent, nil), v)
}

func (n *Node) SetMinHeightPercent(f float32) error { return n.SetMinHeight(Percent(f)) }

func (n *Node) MinHeight() (Value, error) {
	return n.getValue(n.b.tab.StyleGetMinHeight)
}

func (n *Node) SetMaxWidth(v Value) error {
	return n.setValue(n.dim("max width", n.b.tab.StyleSetMaxWidth, n.b.tab.StyleSetMaxWidthPercent, nil), v)
}

func (n *Node) SetMaxWidthPercent(f float32) error { return n.SetMaxWidth(Percent(f)) }

func (n *Node) MaxWidth() (Value, error) {
	return n.getValue(n.b.tab.StyleGetMaxWidth)
}

func (n *Node) SetMaxHeight(v Value) error {
	return n.setValue(n.dim("max height", n.b.tab.StyleSetMaxHeight, n.b.tab.StyleSetMaxHeightPercent, nil), v)
}

func (n *Node) SetMaxHeightPercent(f float32) error { return n.SetMaxHeight(Percent(f)) }

func (n *Node) MaxHeight() (Value, error) {
	return n.getValue(n.b.tab.StyleGetMaxHeight)
}

// Edges

func (n *Node) SetMargin(edge Edge, v Value) error {
	if err := n.checkEdge(edge); err != nil {
		return err
	}
	t := n.b.tab
	return n.setValue(n.edged("margin", int32(edge), t.StyleSetMargin, t.StyleSetMarginPercent, t.StyleSetMarginAuto), v)
}

func (n *Node) SetMarginPercent(edge Edge, f float32) error { return n.SetMargin(edge, Percent(f)) }
func (n *Node) SetMarginAuto(edge Edge) error               { return n.SetMargin(edge, Auto()) }

func (n *Node) Margin(edge Edge) (Value, error) {
	return n.getEdgeValue(edge, n.b.tab.StyleGetMargin)
}

func (n *Node) SetPosition(edge Edge, v Value) error {
	if err := n.checkEdge(edge); err != nil {
		return err
	}
	t := n.b.tab
	return n.setValue(n.edged("position", int32(edge), t.StyleSetPosition, t.StyleSetPositionPercent, t.StyleSetPositionAuto), v)
}

func (n *Node) SetPositionPercent(edge Edge, f float32) error { return n.SetPosition(edge, Percent(f)) }
func (n *Node) SetPositionAuto(edge Edge) error               { return n.SetPosition(edge, Auto()) }

func (n *Node) Position(edge Edge) (Value, error) {
	return n.getEdgeValue(edge, n.b.tab.StyleGetPosition)
}

func (n *Node) SetPadding(edge Edge, v Value) error {
	if err := n.checkEdge(edge); err != nil {
		return err
	}
	t := n.b.tab
	return n.setValue(n.edged("padding", int32(edge), t.StyleSetPadding, t.StyleSetPaddingPercent, nil), v)
}

func (n *Node) SetPaddingPercent(edge Edge, f float32) error { return n.SetPadding(edge, Percent(f)) }

func (n *Node) Padding(edge Edge) (Value, error) {
	return n.getEdgeValue(edge, n.b.tab.StyleGetPadding)
}

// SetBorder sets a border width in points. NaN resets it.
func (n *Node) SetBorder(edge Edge, width float32) error {
	if err := n.checkEdge(edge); err != nil {
		return err
	}
	v := Points(width)
	if native.IsUndefined(width) {
		v = Undefined()
	}
	return n.setValue(n.edged("border", int32(edge), n.b.tab.StyleSetBorder, nil, nil), v)
}

// Border returns the border width set on edge, NaN when unset.
func (n *Node) Border(edge Edge) (float32, error) {
	if err := n.checkEdge(edge); err != nil {
		return 0, err
	}
	return n.b.tab.StyleGetBorder(n.ref, int32(edge)), nil
}

// Gap

func (n *Node) SetGap(gutter Gutter, v Value) error {
	if err := n.live(); err != nil {
		return err
	}
	if !gutter.valid() {
		return errors.New(errors.ErrCodeInvalidStyleInput, "invalid gutter %d", gutter)
	}
	t := n.b.tab
	return n.setValue(n.edged("gap", int32(gutter), t.StyleSetGap, t.StyleSetGapPercent, nil), v)
}

func (n *Node) SetGapPercent(gutter Gutter, f float32) error { return n.SetGap(gutter, Percent(f)) }

func (n *Node) Gap(gutter Gutter) (Value, error) {
	if err := n.live(); err != nil {
		return Undefined(), err
	}
	if !gutter.valid() {
		return Undefined(), errors.New(errors.ErrCodeInvalidStyleInput, "invalid gutter %d", gutter)
	}
	return fromNative(n.b.tab.StyleGetGap(n.ref, int32(gutter))), nil
}
