package inproc

import (
	"github.com/kjk/flex"

	"github.com/matzehuels/yogabind/pkg/native"
)

// Managed enumeration codes used on the native boundary.
const (
	alignAuto         int32 = 0
	alignFlexStart    int32 = 1
	alignCenter       int32 = 2
	alignFlexEnd      int32 = 3
	alignStretch      int32 = 4
	alignBaseline     int32 = 5
	alignSpaceBetween int32 = 6
	alignSpaceAround  int32 = 7
	alignSpaceEvenly  int32 = 8

	justifyFlexStart    int32 = 0
	justifyCenter       int32 = 1
	justifyFlexEnd      int32 = 2
	justifySpaceBetween int32 = 3
	justifySpaceAround  int32 = 4
	justifySpaceEvenly  int32 = 5

	positionStatic   int32 = 0
	positionRelative int32 = 1
	positionAbsolute int32 = 2

	displayFlex     int32 = 0
	displayNone     int32 = 1
	displayContents int32 = 2

	wrapNoWrap      int32 = 0
	wrapWrap        int32 = 1
	wrapWrapReverse int32 = 2

	overflowVisible int32 = 0
	overflowHidden  int32 = 1
	overflowScroll  int32 = 2

	unitUndefined int32 = 0
	unitPoint     int32 = 1
	unitPercent   int32 = 2
	unitAuto      int32 = 3

	edgeLeft   int32 = 0
	edgeTop    int32 = 1
	edgeRight  int32 = 2
	edgeBottom int32 = 3
	edgeStart  int32 = 4
	edgeEnd    int32 = 5
	edgeAll    int32 = 8

	gutterCount = 3

	featureWebFlexBasis int32 = 0
)

// kjk/flex keeps the 2017 Yoga enum order, where Hidden and Wrap sit right
// after Visible and NoWrap.
const (
	flexOverflowHidden = flex.OverflowVisible + 1
	flexWrapWrap       = flex.WrapNoWrap + 1
)

func toFlexAlign(v int32) flex.Align {
	switch v {
	case alignAuto:
		return flex.AlignAuto
	case alignFlexStart:
		return flex.AlignFlexStart
	case alignCenter:
		return flex.AlignCenter
	case alignFlexEnd:
		return flex.AlignFlexEnd
	case alignBaseline:
		return flex.AlignBaseline
	case alignSpaceBetween:
		return flex.AlignSpaceBetween
	case alignSpaceAround, alignSpaceEvenly:
		return flex.AlignSpaceAround
	}
	return flex.AlignStretch
}

func fromFlexAlign(a flex.Align) int32 {
	switch a {
	case flex.AlignAuto:
		return alignAuto
	case flex.AlignFlexStart:
		return alignFlexStart
	case flex.AlignCenter:
		return alignCenter
	case flex.AlignFlexEnd:
		return alignFlexEnd
	case flex.AlignBaseline:
		return alignBaseline
	case flex.AlignSpaceBetween:
		return alignSpaceBetween
	case flex.AlignSpaceAround:
		return alignSpaceAround
	}
	return alignStretch
}

func setFlexJustify(s *flex.Style, v int32) {
	switch v {
	case justifyCenter:
		s.JustifyContent = flex.JustifyCenter
	case justifyFlexEnd:
		s.JustifyContent = flex.JustifyFlexEnd
	case justifySpaceBetween:
		s.JustifyContent = flex.JustifySpaceBetween
	case justifySpaceAround, justifySpaceEvenly:
		s.JustifyContent = flex.JustifySpaceAround
	default:
		s.JustifyContent = flex.JustifyFlexStart
	}
}

func setFlexPositionType(s *flex.Style, v int32) {
	if v == positionAbsolute {
		s.PositionType = flex.PositionTypeAbsolute
		return
	}
	s.PositionType = flex.PositionTypeRelative
}

func setFlexDisplay(s *flex.Style, v int32) {
	if v == displayNone {
		s.Display = flex.DisplayNone
		return
	}
	s.Display = flex.DisplayFlex
}

func setFlexWrap(s *flex.Style, v int32) {
	switch v {
	case wrapWrap:
		s.FlexWrap = flexWrapWrap
	case wrapWrapReverse:
		s.FlexWrap = flex.WrapWrapReverse
	default:
		s.FlexWrap = flex.WrapNoWrap
	}
}

func getFlexWrap(s *flex.Style) int32 {
	switch s.FlexWrap {
	case flex.WrapNoWrap:
		return wrapNoWrap
	case flex.WrapWrapReverse:
		return wrapWrapReverse
	}
	return wrapWrap
}

func setFlexOverflow(s *flex.Style, v int32) {
	switch v {
	case overflowHidden:
		s.Overflow = flexOverflowHidden
	case overflowScroll:
		s.Overflow = flex.OverflowScroll
	default:
		s.Overflow = flex.OverflowVisible
	}
}

func getFlexOverflow(s *flex.Style) int32 {
	switch s.Overflow {
	case flex.OverflowVisible:
		return overflowVisible
	case flex.OverflowScroll:
		return overflowScroll
	}
	return overflowHidden
}

func unitCode(v flex.Value) native.Value {
	switch v.Unit {
	case flex.UnitPoint:
		return native.Value{Value: v.Value, Unit: unitPoint}
	case flex.UnitPercent:
		return native.Value{Value: v.Value, Unit: unitPercent}
	case flex.UnitAuto:
		return native.Value{Value: native.Undefined, Unit: unitAuto}
	}
	return native.Value{Value: native.Undefined, Unit: unitUndefined}
}

func points(f float32) flex.Value {
	if native.IsUndefined(f) {
		return flex.Value{Value: flex.Undefined, Unit: flex.UnitUndefined}
	}
	return flex.Value{Value: f, Unit: flex.UnitPoint}
}

func percent(f float32) flex.Value {
	if native.IsUndefined(f) {
		return flex.Value{Value: flex.Undefined, Unit: flex.UnitUndefined}
	}
	return flex.Value{Value: f, Unit: flex.UnitPercent}
}

func auto() flex.Value {
	return flex.Value{Value: flex.Undefined, Unit: flex.UnitAuto}
}

func nativePoints(f float32) native.Value {
	if native.IsUndefined(f) {
		return native.Value{Value: native.Undefined, Unit: unitUndefined}
	}
	return native.Value{Value: f, Unit: unitPoint}
}

func nativePercent(f float32) native.Value {
	if native.IsUndefined(f) {
		return native.Value{Value: native.Undefined, Unit: unitUndefined}
	}
	return native.Value{Value: f, Unit: unitPercent}
}

func validEdge(edge int32) bool {
	return edge >= edgeLeft && edge <= edgeAll
}

// layoutEdge resolves a physical or relative edge against the computed
// layout, which stores horizontal edges as start and end.
func layoutEdge(edges [6]float32, dir flex.Direction, edge int32) float32 {
	rtl := dir == flex.DirectionRTL
	switch edge {
	case edgeLeft:
		if rtl {
			return edges[flex.EdgeEnd]
		}
		return edges[flex.EdgeStart]
	case edgeRight:
		if rtl {
			return edges[flex.EdgeStart]
		}
		return edges[flex.EdgeEnd]
	case edgeTop:
		return edges[flex.EdgeTop]
	case edgeBottom:
		return edges[flex.EdgeBottom]
	case edgeStart:
		return edges[flex.EdgeStart]
	case edgeEnd:
		return edges[flex.EdgeEnd]
	}
	return native.Undefined
}

func sameFloat(a, b float32) bool {
	return a == b || (native.IsUndefined(a) && native.IsUndefined(b))
}

func sameValue(a, b native.Value) bool {
	return a.Unit == b.Unit && sameFloat(a.Value, b.Value)
}
