//go:build darwin || freebsd || (linux && (amd64 || arm64))

package shim

import (
	"runtime"

	"github.com/matzehuels/yogabind/pkg/native"
)

// bind fills tab with the library's entry points.
func bind(tab *native.Table, h uintptr) {
	symbols := []struct {
		fptr any
		name string
	}{
		// Config
		{&tab.ConfigNew, "YGConfigNew"},
		{&tab.ConfigFree, "YGConfigFree"},
		{&tab.ConfigSetUseWebDefaults, "YGConfigSetUseWebDefaults"},
		{&tab.ConfigGetUseWebDefaults, "YGConfigGetUseWebDefaults"},
		{&tab.ConfigSetPointScaleFactor, "YGConfigSetPointScaleFactor"},
		{&tab.ConfigGetPointScaleFactor, "YGConfigGetPointScaleFactor"},
		{&tab.ConfigSetErrata, "YGConfigSetErrata"},
		{&tab.ConfigGetErrata, "YGConfigGetErrata"},
		{&tab.ConfigSetExperimentalFeatureEnabled, "YGConfigSetExperimentalFeatureEnabled"},
		{&tab.ConfigIsExperimentalFeatureEnabled, "YGConfigIsExperimentalFeatureEnabled"},

		// Node lifecycle
		{&tab.NodeNew, "YGNodeNew"},
		{&tab.NodeNewWithConfig, "YGNodeNewWithConfig"},
		{&tab.NodeFree, "YGNodeFree"},
		{&tab.NodeFreeRecursive, "YGNodeFreeRecursive"},
		{&tab.NodeReset, "YGNodeReset"},
		{&tab.NodeClone, "YGNodeClone"},
		{&tab.NodeCopyStyle, "YGNodeCopyStyle"},
		{&tab.NodeSetIsReferenceBaseline, "YGNodeSetIsReferenceBaseline"},
		{&tab.NodeIsReferenceBaseline, "YGNodeIsReferenceBaseline"},
		{&tab.NodeSetAlwaysFormsContainingBlock, "YGNodeSetAlwaysFormsContainingBlock"},

		// Hierarchy
		{&tab.NodeInsertChild, "YGNodeInsertChild"},
		{&tab.NodeRemoveChild, "YGNodeRemoveChild"},
		{&tab.NodeRemoveAllChildren, "YGNodeRemoveAllChildren"},
		{&tab.NodeGetChild, "YGNodeGetChild"},
		{&tab.NodeGetChildCount, "YGNodeGetChildCount"},
		{&tab.NodeGetParent, "YGNodeGetParent"},

		// Layout
		{&tab.NodeCalculateLayout, "YGNodeCalculateLayout"},
		{&tab.NodeGetHasNewLayout, "YGNodeGetHasNewLayout"},
		{&tab.NodeSetHasNewLayout, "YGNodeSetHasNewLayout"},
		{&tab.NodeMarkDirty, "YGNodeMarkDirty"},
		{&tab.NodeIsDirty, "YGNodeIsDirty"},
		{&tab.LayoutGetLeft, "YGNodeLayoutGetLeft"},
		{&tab.LayoutGetTop, "YGNodeLayoutGetTop"},
		{&tab.LayoutGetRight, "YGNodeLayoutGetRight"},
		{&tab.LayoutGetBottom, "YGNodeLayoutGetBottom"},
		{&tab.LayoutGetWidth, "YGNodeLayoutGetWidth"},
		{&tab.LayoutGetHeight, "YGNodeLayoutGetHeight"},
		{&tab.LayoutGetDirection, "YGNodeLayoutGetDirection"},
		{&tab.LayoutGetHadOverflow, "YGNodeLayoutGetHadOverflow"},
		{&tab.LayoutGetMargin, "YGNodeLayoutGetMargin"},
		{&tab.LayoutGetBorder, "YGNodeLayoutGetBorder"},
		{&tab.LayoutGetPadding, "YGNodeLayoutGetPadding"},

		// Style enumerations
		{&tab.StyleSetDirection, "YGNodeStyleSetDirection"},
		{&tab.StyleGetDirection, "YGNodeStyleGetDirection"},
		{&tab.StyleSetFlexDirection, "YGNodeStyleSetFlexDirection"},
		{&tab.StyleGetFlexDirection, "YGNodeStyleGetFlexDirection"},
		{&tab.StyleSetJustifyContent, "YGNodeStyleSetJustifyContent"},
		{&tab.StyleGetJustifyContent, "YGNodeStyleGetJustifyContent"},
		{&tab.StyleSetAlignContent, "YGNodeStyleSetAlignContent"},
		{&tab.StyleGetAlignContent, "YGNodeStyleGetAlignContent"},
		{&tab.StyleSetAlignItems, "YGNodeStyleSetAlignItems"},
		{&tab.StyleGetAlignItems, "YGNodeStyleGetAlignItems"},
		{&tab.StyleSetAlignSelf, "YGNodeStyleSetAlignSelf"},
		{&tab.StyleGetAlignSelf, "YGNodeStyleGetAlignSelf"},
		{&tab.StyleSetPositionType, "YGNodeStyleSetPositionType"},
		{&tab.StyleGetPositionType, "YGNodeStyleGetPositionType"},
		{&tab.StyleSetFlexWrap, "YGNodeStyleSetFlexWrap"},
		{&tab.StyleGetFlexWrap, "YGNodeStyleGetFlexWrap"},
		{&tab.StyleSetOverflow, "YGNodeStyleSetOverflow"},
		{&tab.StyleGetOverflow, "YGNodeStyleGetOverflow"},
		{&tab.StyleSetDisplay, "YGNodeStyleSetDisplay"},
		{&tab.StyleGetDisplay, "YGNodeStyleGetDisplay"},
		{&tab.StyleSetBoxSizing, "YGNodeStyleSetBoxSizing"},
		{&tab.StyleGetBoxSizing, "YGNodeStyleGetBoxSizing"},

		// Style scalars
		{&tab.StyleSetFlex, "YGNodeStyleSetFlex"},
		{&tab.StyleGetFlex, "YGNodeStyleGetFlex"},
		{&tab.StyleSetFlexGrow, "YGNodeStyleSetFlexGrow"},
		{&tab.StyleGetFlexGrow, "YGNodeStyleGetFlexGrow"},
		{&tab.StyleSetFlexShrink, "YGNodeStyleSetFlexShrink"},
		{&tab.StyleGetFlexShrink, "YGNodeStyleGetFlexShrink"},
		{&tab.StyleSetAspectRatio, "YGNodeStyleSetAspectRatio"},
		{&tab.StyleGetAspectRatio, "YGNodeStyleGetAspectRatio"},

		// Style values
		{&tab.StyleSetFlexBasis, "YGNodeStyleSetFlexBasis"},
		{&tab.StyleSetFlexBasisPercent, "YGNodeStyleSetFlexBasisPercent"},
		{&tab.StyleSetFlexBasisAuto, "YGNodeStyleSetFlexBasisAuto"},
		{&tab.StyleSetPosition, "YGNodeStyleSetPosition"},
		{&tab.StyleSetPositionPercent, "YGNodeStyleSetPositionPercent"},
		{&tab.StyleSetPositionAuto, "YGNodeStyleSetPositionAuto"},
		{&tab.StyleSetMargin, "YGNodeStyleSetMargin"},
		{&tab.StyleSetMarginPercent, "YGNodeStyleSetMarginPercent"},
		{&tab.StyleSetMarginAuto, "YGNodeStyleSetMarginAuto"},
		{&tab.StyleSetPadding, "YGNodeStyleSetPadding"},
		{&tab.StyleSetPaddingPercent, "YGNodeStyleSetPaddingPercent"},
		{&tab.StyleSetBorder, "YGNodeStyleSetBorder"},
		{&tab.StyleGetBorder, "YGNodeStyleGetBorder"},
		{&tab.StyleSetGap, "YGNodeStyleSetGap"},
		{&tab.StyleSetGapPercent, "YGNodeStyleSetGapPercent"},
		{&tab.StyleSetWidth, "YGNodeStyleSetWidth"},
		{&tab.StyleSetWidthPercent, "YGNodeStyleSetWidthPercent"},
		{&tab.StyleSetWidthAuto, "YGNodeStyleSetWidthAuto"},
		{&tab.StyleSetHeight, "YGNodeStyleSetHeight"},
		{&tab.StyleSetHeightPercent, "YGNodeStyleSetHeightPercent"},
		{&tab.StyleSetHeightAuto, "YGNodeStyleSetHeightAuto"},
		{&tab.StyleSetMinWidth, "YGNodeStyleSetMinWidth"},
		{&tab.StyleSetMinWidthPercent, "YGNodeStyleSetMinWidthPercent"},
		{&tab.StyleSetMinHeight, "YGNodeStyleSetMinHeight"},
		{&tab.StyleSetMinHeightPercent, "YGNodeStyleSetMinHeightPercent"},
		{&tab.StyleSetMaxWidth, "YGNodeStyleSetMaxWidth"},
		{&tab.StyleSetMaxWidthPercent, "YGNodeStyleSetMaxWidthPercent"},
		{&tab.StyleSetMaxHeight, "YGNodeStyleSetMaxHeight"},
		{&tab.StyleSetMaxHeightPercent, "YGNodeStyleSetMaxHeightPercent"},

		// Callbacks
		{&tab.NodeSetMeasureFunc, "YGBindNodeSetMeasureThunk"},
		{&tab.NodeHasMeasureFunc, "YGNodeHasMeasureFunc"},
		{&tab.NodeSetBaselineFunc, "YGBindNodeSetBaselineThunk"},
		{&tab.NodeHasBaselineFunc, "YGNodeHasBaselineFunc"},
		{&tab.NodeSetDirtiedFunc, "YGNodeSetDirtiedFunc"},
		{&tab.StoreMeasureResult, "YGBindStoreMeasureResult"},
		{&tab.StoreBaselineResult, "YGBindStoreBaselineResult"},
	}
	for _, s := range symbols {
		register(s.fptr, h, s.name)
	}

	bindValue(&tab.StyleGetFlexBasis, h, "FlexBasis")
	bindValue(&tab.StyleGetWidth, h, "Width")
	bindValue(&tab.StyleGetHeight, h, "Height")
	bindValue(&tab.StyleGetMinWidth, h, "MinWidth")
	bindValue(&tab.StyleGetMinHeight, h, "MinHeight")
	bindValue(&tab.StyleGetMaxWidth, h, "MaxWidth")
	bindValue(&tab.StyleGetMaxHeight, h, "MaxHeight")
	bindEdgeValue(&tab.StyleGetPosition, h, "Position")
	bindEdgeValue(&tab.StyleGetMargin, h, "Margin")
	bindEdgeValue(&tab.StyleGetPadding, h, "Padding")
	bindEdgeValue(&tab.StyleGetGap, h, "Gap")

	tab.NewMeasureSlotThunk = func(fn native.MeasureSlotThunk) native.Thunk { return newCallback(fn) }
	tab.NewBaselineSlotThunk = func(fn native.BaselineSlotThunk) native.Thunk { return newCallback(fn) }
	tab.NewDirtiedThunk = func(fn native.DirtiedThunk) native.Thunk { return newCallback(fn) }
}

// bindValue binds a YGValue getter. purego returns structs by value only on
// darwin; elsewhere the out-pointer variant from the companion layer is used.
func bindValue(dst *func(native.NodeRef) native.Value, h uintptr, prop string) {
	if runtime.GOOS == "darwin" {
		register(dst, h, "YGNodeStyleGet"+prop)
		return
	}
	var get func(native.NodeRef, *native.Value)
	register(&get, h, "YGBindNodeStyleGet"+prop)
	if get == nil {
		return
	}
	*dst = func(n native.NodeRef) native.Value {
		var v native.Value
		get(n, &v)
		return v
	}
}

func bindEdgeValue(dst *func(native.NodeRef, int32) native.Value, h uintptr, prop string) {
	if runtime.GOOS == "darwin" {
		register(dst, h, "YGNodeStyleGet"+prop)
		return
	}
	var get func(native.NodeRef, int32, *native.Value)
	register(&get, h, "YGBindNodeStyleGet"+prop)
	if get == nil {
		return
	}
	*dst = func(n native.NodeRef, edge int32) native.Value {
		var v native.Value
		get(n, edge, &v)
		return v
	}
}
