package inproc

import (
	"github.com/matzehuels/yogabind/pkg/native"
)

// Table returns the engine's entry points. Every call to Table returns a new
// table addressing the same engine state.
func (e *Engine) Table() *native.Table {
	t := &native.Table{
		Name:       "inproc",
		Convention: e.convention,
		Gate:       &e.gate,

		ConfigNew:                           e.configNew,
		ConfigFree:                          e.configFree,
		ConfigSetUseWebDefaults:             e.configSetUseWebDefaults,
		ConfigGetUseWebDefaults:             e.configGetUseWebDefaults,
		ConfigSetPointScaleFactor:           e.configSetPointScaleFactor,
		ConfigGetPointScaleFactor:           e.configGetPointScaleFactor,
		ConfigSetErrata:                     e.configSetErrata,
		ConfigGetErrata:                     e.configGetErrata,
		ConfigSetExperimentalFeatureEnabled: e.configSetExperimentalFeatureEnabled,
		ConfigIsExperimentalFeatureEnabled:  e.configIsExperimentalFeatureEnabled,

		NodeNew:                           e.nodeNew,
		NodeNewWithConfig:                 e.nodeNewWithConfig,
		NodeFree:                          e.nodeFree,
		NodeFreeRecursive:                 e.nodeFreeRecursive,
		NodeReset:                         e.nodeReset,
		NodeClone:                         e.nodeClone,
		NodeCopyStyle:                     e.nodeCopyStyle,
		NodeSetIsReferenceBaseline:        e.nodeSetIsReferenceBaseline,
		NodeIsReferenceBaseline:           e.nodeIsReferenceBaseline,
		NodeSetAlwaysFormsContainingBlock: e.nodeSetAlwaysFormsContainingBlock,

		NodeInsertChild:       e.nodeInsertChild,
		NodeRemoveChild:       e.nodeRemoveChild,
		NodeRemoveAllChildren: e.nodeRemoveAllChildren,
		NodeGetChild:          e.nodeGetChild,
		NodeGetChildCount:     e.nodeGetChildCount,
		NodeGetParent:         e.nodeGetParent,

		NodeCalculateLayout:  e.nodeCalculateLayout,
		NodeGetHasNewLayout:  e.nodeGetHasNewLayout,
		NodeSetHasNewLayout:  e.nodeSetHasNewLayout,
		NodeMarkDirty:        e.nodeMarkDirty,
		NodeIsDirty:          e.nodeIsDirty,
		LayoutGetLeft:        e.layoutGetLeft,
		LayoutGetTop:         e.layoutGetTop,
		LayoutGetRight:       e.layoutGetRight,
		LayoutGetBottom:      e.layoutGetBottom,
		LayoutGetWidth:       e.layoutGetWidth,
		LayoutGetHeight:      e.layoutGetHeight,
		LayoutGetDirection:   e.layoutGetDirection,
		LayoutGetHadOverflow: e.layoutGetHadOverflow,
		LayoutGetMargin:      e.layoutGetMargin,
		LayoutGetBorder:      e.layoutGetBorder,
		LayoutGetPadding:     e.layoutGetPadding,

		StyleSetDirection:      e.setDirection,
		StyleGetDirection:      e.getDirection,
		StyleSetFlexDirection:  e.setFlexDirection,
		StyleGetFlexDirection:  e.getFlexDirection,
		StyleSetJustifyContent: e.setJustifyContent,
		StyleGetJustifyContent: e.getJustifyContent,
		StyleSetAlignContent:   e.setAlignContent,
		StyleGetAlignContent:   e.getAlignContent,
		StyleSetAlignItems:     e.setAlignItems,
		StyleGetAlignItems:     e.getAlignItems,
		StyleSetAlignSelf:      e.setAlignSelf,
		StyleGetAlignSelf:      e.getAlignSelf,
		StyleSetPositionType:   e.setPositionType,
		StyleGetPositionType:   e.getPositionType,
		StyleSetFlexWrap:       e.setFlexWrap,
		StyleGetFlexWrap:       e.getFlexWrap,
		StyleSetOverflow:       e.setOverflow,
		StyleGetOverflow:       e.getOverflow,
		StyleSetDisplay:        e.setDisplay,
		StyleGetDisplay:        e.getDisplay,
		StyleSetBoxSizing:      e.setBoxSizing,
		StyleGetBoxSizing:      e.getBoxSizing,

		StyleSetFlex:        e.setFlex,
		StyleGetFlex:        e.getFlex,
		StyleSetFlexGrow:    e.setFlexGrow,
		StyleGetFlexGrow:    e.getFlexGrow,
		StyleSetFlexShrink:  e.setFlexShrink,
		StyleGetFlexShrink:  e.getFlexShrink,
		StyleSetAspectRatio: e.setAspectRatio,
		StyleGetAspectRatio: e.getAspectRatio,

		StyleSetFlexBasis:        e.setFlexBasis,
		StyleSetFlexBasisPercent: e.setFlexBasisPercent,
		StyleSetFlexBasisAuto:    e.setFlexBasisAuto,
		StyleGetFlexBasis:        e.getFlexBasis,

		StyleSetPosition:        e.setPosition,
		StyleSetPositionPercent: e.setPositionPercent,
		StyleSetPositionAuto:    e.setPositionAuto,
		StyleGetPosition:        e.getPosition,

		StyleSetMargin:        e.setMargin,
		StyleSetMarginPercent: e.setMarginPercent,
		StyleSetMarginAuto:    e.setMarginAuto,
		StyleGetMargin:        e.getMargin,

		StyleSetPadding:        e.setPadding,
		StyleSetPaddingPercent: e.setPaddingPercent,
		StyleGetPadding:        e.getPadding,

		StyleSetBorder: e.setBorder,
		StyleGetBorder: e.getBorder,

		StyleSetGap:        e.setGap,
		StyleSetGapPercent: e.setGapPercent,
		StyleGetGap:        e.getGap,

		StyleSetWidth:        e.pointSetter(dimWidth),
		StyleSetWidthPercent: e.percentSetter(dimWidth),
		StyleSetWidthAuto:    e.autoSetter(dimWidth),
		StyleGetWidth:        e.getter(dimWidth),

		StyleSetHeight:        e.pointSetter(dimHeight),
		StyleSetHeightPercent: e.percentSetter(dimHeight),
		StyleSetHeightAuto:    e.autoSetter(dimHeight),
		StyleGetHeight:        e.getter(dimHeight),

		StyleSetMinWidth:        e.pointSetter(dimMinWidth),
		StyleSetMinWidthPercent: e.percentSetter(dimMinWidth),
		StyleGetMinWidth:        e.getter(dimMinWidth),

		StyleSetMinHeight:        e.pointSetter(dimMinHeight),
		StyleSetMinHeightPercent: e.percentSetter(dimMinHeight),
		StyleGetMinHeight:        e.getter(dimMinHeight),

		StyleSetMaxWidth:        e.pointSetter(dimMaxWidth),
		StyleSetMaxWidthPercent: e.percentSetter(dimMaxWidth),
		StyleGetMaxWidth:        e.getter(dimMaxWidth),

		StyleSetMaxHeight:        e.pointSetter(dimMaxHeight),
		StyleSetMaxHeightPercent: e.percentSetter(dimMaxHeight),
		StyleGetMaxHeight:        e.getter(dimMaxHeight),

		NodeSetMeasureFunc:  e.nodeSetMeasureFunc,
		NodeHasMeasureFunc:  e.nodeHasMeasureFunc,
		NodeSetBaselineFunc: e.nodeSetBaselineFunc,
		NodeHasBaselineFunc: e.nodeHasBaselineFunc,
		NodeSetDirtiedFunc:  e.nodeSetDirtiedFunc,

		NewDirtiedThunk: func(fn native.DirtiedThunk) native.Thunk { return e.registerThunk(fn) },
	}

	switch e.convention {
	case native.SideChannel:
		t.NewMeasureSlotThunk = func(fn native.MeasureSlotThunk) native.Thunk { return e.registerThunk(fn) }
		t.NewBaselineSlotThunk = func(fn native.BaselineSlotThunk) native.Thunk { return e.registerThunk(fn) }
		t.StoreMeasureResult = e.storeMeasureResult
		t.StoreBaselineResult = e.storeBaselineResult
	default:
		t.NewMeasureThunk = func(fn native.MeasureThunk) native.Thunk { return e.registerThunk(fn) }
		t.NewBaselineThunk = func(fn native.BaselineThunk) native.Thunk { return e.registerThunk(fn) }
	}
	return t
}
