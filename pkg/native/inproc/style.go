package inproc

import (
	"github.com/kjk/flex"

	"github.com/matzehuels/yogabind/pkg/native"
)

func (e *Engine) style(ref native.NodeRef) (*flex.Style, *extStyle) {
	if ent := e.lookup(ref); ent != nil {
		return &ent.node.Style, &ent.ext
	}
	s := flex.NewNode().Style
	ext := defaultExt(&s)
	return &s, &ext
}

// Enumerations

func (e *Engine) setDirection(ref native.NodeRef, v int32) {
	e.setStyle(ref, func(s *flex.Style, _ *extStyle) { s.Direction = flex.Direction(v) })
}

func (e *Engine) getDirection(ref native.NodeRef) int32 {
	s, _ := e.style(ref)
	return int32(s.Direction)
}

func (e *Engine) setFlexDirection(ref native.NodeRef, v int32) {
	e.setStyle(ref, func(s *flex.Style, _ *extStyle) { s.FlexDirection = flex.FlexDirection(v) })
}

func (e *Engine) getFlexDirection(ref native.NodeRef) int32 {
	s, _ := e.style(ref)
	return int32(s.FlexDirection)
}

func (e *Engine) setJustifyContent(ref native.NodeRef, v int32) {
	e.setStyle(ref, func(s *flex.Style, ext *extStyle) {
		ext.justify = v
		setFlexJustify(s, v)
	})
}

func (e *Engine) getJustifyContent(ref native.NodeRef) int32 {
	_, ext := e.style(ref)
	return ext.justify
}

func (e *Engine) setAlignContent(ref native.NodeRef, v int32) {
	e.setStyle(ref, func(s *flex.Style, ext *extStyle) {
		ext.alignContent = v
		s.AlignContent = toFlexAlign(v)
	})
}

func (e *Engine) getAlignContent(ref native.NodeRef) int32 {
	_, ext := e.style(ref)
	return ext.alignContent
}

func (e *Engine) setAlignItems(ref native.NodeRef, v int32) {
	e.setStyle(ref, func(s *flex.Style, ext *extStyle) {
		ext.alignItems = v
		s.AlignItems = toFlexAlign(v)
	})
}

func (e *Engine) getAlignItems(ref native.NodeRef) int32 {
	_, ext := e.style(ref)
	return ext.alignItems
}

func (e *Engine) setAlignSelf(ref native.NodeRef, v int32) {
	e.setStyle(ref, func(s *flex.Style, ext *extStyle) {
		ext.alignSelf = v
		s.AlignSelf = toFlexAlign(v)
	})
}

func (e *Engine) getAlignSelf(ref native.NodeRef) int32 {
	_, ext := e.style(ref)
	return ext.alignSelf
}

func (e *Engine) setPositionType(ref native.NodeRef, v int32) {
	e.setStyle(ref, func(s *flex.Style, ext *extStyle) {
		ext.positionType = v
		setFlexPositionType(s, v)
	})
}

func (e *Engine) getPositionType(ref native.NodeRef) int32 {
	_, ext := e.style(ref)
	return ext.positionType
}

func (e *Engine) setFlexWrap(ref native.NodeRef, v int32) {
	e.setStyle(ref, func(s *flex.Style, _ *extStyle) { setFlexWrap(s, v) })
}

func (e *Engine) getFlexWrap(ref native.NodeRef) int32 {
	s, _ := e.style(ref)
	return getFlexWrap(s)
}

func (e *Engine) setOverflow(ref native.NodeRef, v int32) {
	e.setStyle(ref, func(s *flex.Style, _ *extStyle) { setFlexOverflow(s, v) })
}

func (e *Engine) getOverflow(ref native.NodeRef) int32 {
	s, _ := e.style(ref)
	return getFlexOverflow(s)
}

func (e *Engine) setDisplay(ref native.NodeRef, v int32) {
	e.setStyle(ref, func(s *flex.Style, ext *extStyle) {
		ext.display = v
		setFlexDisplay(s, v)
	})
}

func (e *Engine) getDisplay(ref native.NodeRef) int32 {
	_, ext := e.style(ref)
	return ext.display
}

func (e *Engine) setBoxSizing(ref native.NodeRef, v int32) {
	e.setStyle(ref, func(_ *flex.Style, ext *extStyle) { ext.boxSizing = v })
}

func (e *Engine) getBoxSizing(ref native.NodeRef) int32 {
	_, ext := e.style(ref)
	return ext.boxSizing
}

// Scalars

func (e *Engine) setFlex(ref native.NodeRef, f float32) {
	e.setStyle(ref, func(s *flex.Style, _ *extStyle) { s.Flex = f })
}

func (e *Engine) getFlex(ref native.NodeRef) float32 {
	s, _ := e.style(ref)
	return s.Flex
}

func (e *Engine) setFlexGrow(ref native.NodeRef, f float32) {
	e.setStyle(ref, func(s *flex.Style, _ *extStyle) { s.FlexGrow = f })
}

func (e *Engine) getFlexGrow(ref native.NodeRef) float32 {
	if ent := e.lookup(ref); ent != nil {
		return ent.node.StyleGetFlexGrow()
	}
	return 0
}

func (e *Engine) setFlexShrink(ref native.NodeRef, f float32) {
	e.setStyle(ref, func(s *flex.Style, _ *extStyle) { s.FlexShrink = f })
}

func (e *Engine) getFlexShrink(ref native.NodeRef) float32 {
	if ent := e.lookup(ref); ent != nil {
		return ent.node.StyleGetFlexShrink()
	}
	return 0
}

func (e *Engine) setAspectRatio(ref native.NodeRef, f float32) {
	e.setStyle(ref, func(s *flex.Style, _ *extStyle) { s.AspectRatio = f })
}

func (e *Engine) getAspectRatio(ref native.NodeRef) float32 {
	s, _ := e.style(ref)
	return s.AspectRatio
}

// Flex basis

func (e *Engine) setFlexBasis(ref native.NodeRef, f float32) {
	e.setStyle(ref, func(s *flex.Style, _ *extStyle) { s.FlexBasis = points(f) })
}

func (e *Engine) setFlexBasisPercent(ref native.NodeRef, f float32) {
	e.setStyle(ref, func(s *flex.Style, _ *extStyle) { s.FlexBasis = percent(f) })
}

func (e *Engine) setFlexBasisAuto(ref native.NodeRef) {
	e.setStyle(ref, func(s *flex.Style, _ *extStyle) { s.FlexBasis = auto() })
}

func (e *Engine) getFlexBasis(ref native.NodeRef) native.Value {
	s, _ := e.style(ref)
	return unitCode(s.FlexBasis)
}

// Edges

func (e *Engine) setEdge(ref native.NodeRef, edge int32, pick func(*flex.Style) *[flex.EdgeCount]flex.Value, v flex.Value) {
	if !validEdge(edge) {
		return
	}
	e.setStyle(ref, func(s *flex.Style, _ *extStyle) { pick(s)[edge] = v })
}

func (e *Engine) getEdge(ref native.NodeRef, edge int32, pick func(*flex.Style) *[flex.EdgeCount]flex.Value) native.Value {
	if !validEdge(edge) {
		return native.Value{Value: native.Undefined, Unit: unitUndefined}
	}
	s, _ := e.style(ref)
	return unitCode(pick(s)[edge])
}

func marginOf(s *flex.Style) *[flex.EdgeCount]flex.Value  { return &s.Margin }
func paddingOf(s *flex.Style) *[flex.EdgeCount]flex.Value { return &s.Padding }
func borderOf(s *flex.Style) *[flex.EdgeCount]flex.Value  { return &s.Border }
func insetOf(s *flex.Style) *[flex.EdgeCount]flex.Value   { return &s.Position }

func (e *Engine) setMargin(ref native.NodeRef, edge int32, f float32) {
	e.setEdge(ref, edge, marginOf, points(f))
}

func (e *Engine) setMarginPercent(ref native.NodeRef, edge int32, f float32) {
	e.setEdge(ref, edge, marginOf, percent(f))
}

func (e *Engine) setMarginAuto(ref native.NodeRef, edge int32) {
	e.setEdge(ref, edge, marginOf, auto())
}

func (e *Engine) getMargin(ref native.NodeRef, edge int32) native.Value {
	return e.getEdge(ref, edge, marginOf)
}

func (e *Engine) setPadding(ref native.NodeRef, edge int32, f float32) {
	e.setEdge(ref, edge, paddingOf, points(f))
}

func (e *Engine) setPaddingPercent(ref native.NodeRef, edge int32, f float32) {
	e.setEdge(ref, edge, paddingOf, percent(f))
}

func (e *Engine) getPadding(ref native.NodeRef, edge int32) native.Value {
	return e.getEdge(ref, edge, paddingOf)
}

func (e *Engine) setBorder(ref native.NodeRef, edge int32, f float32) {
	e.setEdge(ref, edge, borderOf, points(f))
}

func (e *Engine) getBorder(ref native.NodeRef, edge int32) float32 {
	v := e.getEdge(ref, edge, borderOf)
	if v.Unit == unitUndefined {
		return native.Undefined
	}
	return v.Value
}

func (e *Engine) setPositionValue(ref native.NodeRef, edge int32, v flex.Value, isAuto bool) {
	if !validEdge(edge) {
		return
	}
	e.setStyle(ref, func(s *flex.Style, ext *extStyle) {
		s.Position[edge] = v
		ext.positionAuto[edge] = isAuto
	})
}

func (e *Engine) setPosition(ref native.NodeRef, edge int32, f float32) {
	e.setPositionValue(ref, edge, points(f), false)
}

func (e *Engine) setPositionPercent(ref native.NodeRef, edge int32, f float32) {
	e.setPositionValue(ref, edge, percent(f), false)
}

// setPositionAuto records the auto inset; kjk/flex lays it out as unset.
func (e *Engine) setPositionAuto(ref native.NodeRef, edge int32) {
	e.setPositionValue(ref, edge, points(native.Undefined), true)
}

func (e *Engine) getPosition(ref native.NodeRef, edge int32) native.Value {
	if !validEdge(edge) {
		return native.Value{Value: native.Undefined, Unit: unitUndefined}
	}
	if _, ext := e.style(ref); ext.positionAuto[edge] {
		return native.Value{Value: native.Undefined, Unit: unitAuto}
	}
	return e.getEdge(ref, edge, insetOf)
}

// Gap

func (e *Engine) setGapValue(ref native.NodeRef, gutter int32, v native.Value) {
	if gutter < 0 || gutter >= gutterCount {
		return
	}
	e.setStyle(ref, func(_ *flex.Style, ext *extStyle) { ext.gap[gutter] = v })
}

func (e *Engine) setGap(ref native.NodeRef, gutter int32, f float32) {
	e.setGapValue(ref, gutter, nativePoints(f))
}

func (e *Engine) setGapPercent(ref native.NodeRef, gutter int32, f float32) {
	e.setGapValue(ref, gutter, nativePercent(f))
}

func (e *Engine) getGap(ref native.NodeRef, gutter int32) native.Value {
	if gutter < 0 || gutter >= gutterCount {
		return native.Value{Value: native.Undefined, Unit: unitUndefined}
	}
	_, ext := e.style(ref)
	return ext.gap[gutter]
}

// Dimensions

type dimension struct {
	pick func(*flex.Style) *flex.Value
}

func (d dimension) set(e *Engine, ref native.NodeRef, v flex.Value) {
	e.setStyle(ref, func(s *flex.Style, _ *extStyle) { *d.pick(s) = v })
}

func (d dimension) get(e *Engine, ref native.NodeRef) native.Value {
	s, _ := e.style(ref)
	return unitCode(*d.pick(s))
}

var (
	dimWidth     = dimension{func(s *flex.Style) *flex.Value { return &s.Dimensions[flex.DimensionWidth] }}
	dimHeight    = dimension{func(s *flex.Style) *flex.Value { return &s.Dimensions[flex.DimensionHeight] }}
	dimMinWidth  = dimension{func(s *flex.Style) *flex.Value { return &s.MinDimensions[flex.DimensionWidth] }}
	dimMinHeight = dimension{func(s *flex.Style) *flex.Value { return &s.MinDimensions[flex.DimensionHeight] }}
	dimMaxWidth  = dimension{func(s *flex.Style) *flex.Value { return &s.MaxDimensions[flex.DimensionWidth] }}
	dimMaxHeight = dimension{func(s *flex.Style) *flex.Value { return &s.MaxDimensions[flex.DimensionHeight] }}
)

// pointSetter and friends adapt a dimension to the per-unit entry points.
func (e *Engine) pointSetter(d dimension) func(native.NodeRef, float32) {
	return func(ref native.NodeRef, f float32) { d.set(e, ref, points(f)) }
}

func (e *Engine) percentSetter(d dimension) func(native.NodeRef, float32) {
	return func(ref native.NodeRef, f float32) { d.set(e, ref, percent(f)) }
}

func (e *Engine) autoSetter(d dimension) func(native.NodeRef) {
	return func(ref native.NodeRef) { d.set(e, ref, auto()) }
}

func (e *Engine) getter(d dimension) func(native.NodeRef) native.Value {
	return func(ref native.NodeRef) native.Value { return d.get(e, ref) }
}
