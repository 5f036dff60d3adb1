package native

import (
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/matzehuels/yogabind/pkg/errors"
)

// Table is the full set of engine entry points.
//
// Enumerations travel as int32 using the managed codes, edges and gutters
// included. Value getters return the engine's {magnitude, unit} pair. Setting
// a value entry point to Undefined resets the property.
type Table struct {
	// Name identifies the engine in logs ("inproc", "shim").
	Name string
	// Convention is how callback results return to the engine.
	Convention Convention
	// Gate serializes layout passes over a SideChannel engine's result slot.
	// Tables addressing the same engine state share one Gate.
	Gate *sync.Mutex

	// Config
	ConfigNew                           func() ConfigRef
	ConfigFree                          func(ConfigRef)
	ConfigSetUseWebDefaults             func(ConfigRef, bool)
	ConfigGetUseWebDefaults             func(ConfigRef) bool
	ConfigSetPointScaleFactor           func(ConfigRef, float32)
	ConfigGetPointScaleFactor           func(ConfigRef) float32
	ConfigSetErrata                     func(ConfigRef, int32)
	ConfigGetErrata                     func(ConfigRef) int32
	ConfigSetExperimentalFeatureEnabled func(ConfigRef, int32, bool)
	ConfigIsExperimentalFeatureEnabled  func(ConfigRef, int32) bool

	// Node lifecycle
	NodeNew                           func() NodeRef
	NodeNewWithConfig                 func(ConfigRef) NodeRef
	NodeFree                          func(NodeRef)
	NodeFreeRecursive                 func(NodeRef)
	NodeReset                         func(NodeRef)
	NodeClone                         func(NodeRef) NodeRef
	NodeCopyStyle                     func(dst, src NodeRef)
	NodeSetIsReferenceBaseline        func(NodeRef, bool)
	NodeIsReferenceBaseline           func(NodeRef) bool
	NodeSetAlwaysFormsContainingBlock func(NodeRef, bool)

	// Hierarchy
	NodeInsertChild       func(parent, child NodeRef, index uint)
	NodeRemoveChild       func(parent, child NodeRef)
	NodeRemoveAllChildren func(NodeRef)
	NodeGetChild          func(NodeRef, uint) NodeRef
	NodeGetChildCount     func(NodeRef) uint
	NodeGetParent         func(NodeRef) NodeRef

	// Layout
	NodeCalculateLayout  func(node NodeRef, width, height float32, direction int32)
	NodeGetHasNewLayout  func(NodeRef) bool
	NodeSetHasNewLayout  func(NodeRef, bool)
	NodeMarkDirty        func(NodeRef)
	NodeIsDirty          func(NodeRef) bool
	LayoutGetLeft        func(NodeRef) float32
	LayoutGetTop         func(NodeRef) float32
	LayoutGetRight       func(NodeRef) float32
	LayoutGetBottom      func(NodeRef) float32
	LayoutGetWidth       func(NodeRef) float32
	LayoutGetHeight      func(NodeRef) float32
	LayoutGetDirection   func(NodeRef) int32
	LayoutGetHadOverflow func(NodeRef) bool
	LayoutGetMargin      func(NodeRef, int32) float32
	LayoutGetBorder      func(NodeRef, int32) float32
	LayoutGetPadding     func(NodeRef, int32) float32

	// Style enumerations
	StyleSetDirection      func(NodeRef, int32)
	StyleGetDirection      func(NodeRef) int32
	StyleSetFlexDirection  func(NodeRef, int32)
	StyleGetFlexDirection  func(NodeRef) int32
	StyleSetJustifyContent func(NodeRef, int32)
	StyleGetJustifyContent func(NodeRef) int32
	StyleSetAlignContent   func(NodeRef, int32)
	StyleGetAlignContent   func(NodeRef) int32
	StyleSetAlignItems     func(NodeRef, int32)
	StyleGetAlignItems     func(NodeRef) int32
	StyleSetAlignSelf      func(NodeRef, int32)
	StyleGetAlignSelf      func(NodeRef) int32
	StyleSetPositionType   func(NodeRef, int32)
	StyleGetPositionType   func(NodeRef) int32
	StyleSetFlexWrap       func(NodeRef, int32)
	StyleGetFlexWrap       func(NodeRef) int32
	StyleSetOverflow       func(NodeRef, int32)
	StyleGetOverflow       func(NodeRef) int32
	StyleSetDisplay        func(NodeRef, int32)
	StyleGetDisplay        func(NodeRef) int32
	StyleSetBoxSizing      func(NodeRef, int32)
	StyleGetBoxSizing      func(NodeRef) int32

	// Style scalars
	StyleSetFlex        func(NodeRef, float32)
	StyleGetFlex        func(NodeRef) float32
	StyleSetFlexGrow    func(NodeRef, float32)
	StyleGetFlexGrow    func(NodeRef) float32
	StyleSetFlexShrink  func(NodeRef, float32)
	StyleGetFlexShrink  func(NodeRef) float32
	StyleSetAspectRatio func(NodeRef, float32)
	StyleGetAspectRatio func(NodeRef) float32

	// Style values, one entry point per unit
	StyleSetFlexBasis        func(NodeRef, float32)
	StyleSetFlexBasisPercent func(NodeRef, float32)
	StyleSetFlexBasisAuto    func(NodeRef)
	StyleGetFlexBasis        func(NodeRef) Value

	StyleSetPosition        func(NodeRef, int32, float32)
	StyleSetPositionPercent func(NodeRef, int32, float32)
	StyleSetPositionAuto    func(NodeRef, int32)
	StyleGetPosition        func(NodeRef, int32) Value

	StyleSetMargin        func(NodeRef, int32, float32)
	StyleSetMarginPercent func(NodeRef, int32, float32)
	StyleSetMarginAuto    func(NodeRef, int32)
	StyleGetMargin        func(NodeRef, int32) Value

	StyleSetPadding        func(NodeRef, int32, float32)
	StyleSetPaddingPercent func(NodeRef, int32, float32)
	StyleGetPadding        func(NodeRef, int32) Value

	StyleSetBorder func(NodeRef, int32, float32)
	StyleGetBorder func(NodeRef, int32) float32

	StyleSetGap        func(NodeRef, int32, float32)
	StyleSetGapPercent func(NodeRef, int32, float32)
	StyleGetGap        func(NodeRef, int32) Value

	StyleSetWidth        func(NodeRef, float32)
	StyleSetWidthPercent func(NodeRef, float32)
	StyleSetWidthAuto    func(NodeRef)
	StyleGetWidth        func(NodeRef) Value

	StyleSetHeight        func(NodeRef, float32)
	StyleSetHeightPercent func(NodeRef, float32)
	StyleSetHeightAuto    func(NodeRef)
	StyleGetHeight        func(NodeRef) Value

	StyleSetMinWidth        func(NodeRef, float32)
	StyleSetMinWidthPercent func(NodeRef, float32)
	StyleGetMinWidth        func(NodeRef) Value

	StyleSetMinHeight        func(NodeRef, float32)
	StyleSetMinHeightPercent func(NodeRef, float32)
	StyleGetMinHeight        func(NodeRef) Value

	StyleSetMaxWidth        func(NodeRef, float32)
	StyleSetMaxWidthPercent func(NodeRef, float32)
	StyleGetMaxWidth        func(NodeRef) Value

	StyleSetMaxHeight        func(NodeRef, float32)
	StyleSetMaxHeightPercent func(NodeRef, float32)
	StyleGetMaxHeight        func(NodeRef) Value

	// Callback registration
	NodeSetMeasureFunc  func(NodeRef, Thunk)
	NodeHasMeasureFunc  func(NodeRef) bool
	NodeSetBaselineFunc func(NodeRef, Thunk)
	NodeHasBaselineFunc func(NodeRef) bool
	NodeSetDirtiedFunc  func(NodeRef, Thunk)

	// Thunk factories. DirectReturn tables provide NewMeasureThunk and
	// NewBaselineThunk; SideChannel tables provide the Slot variants and the
	// Store entry points.
	NewMeasureThunk      func(MeasureThunk) Thunk
	NewBaselineThunk     func(BaselineThunk) Thunk
	NewMeasureSlotThunk  func(MeasureSlotThunk) Thunk
	NewBaselineSlotThunk func(BaselineSlotThunk) Thunk
	NewDirtiedThunk      func(DirtiedThunk) Thunk
	StoreMeasureResult   func(width, height float32)
	StoreBaselineResult  func(baseline float32)
}

// conventionFields lists the entry points only one convention needs.
var conventionFields = map[string]Convention{
	"NewMeasureThunk":      DirectReturn,
	"NewBaselineThunk":     DirectReturn,
	"NewMeasureSlotThunk":  SideChannel,
	"NewBaselineSlotThunk": SideChannel,
	"StoreMeasureResult":   SideChannel,
	"StoreBaselineResult":  SideChannel,
}

// Missing returns the names of entry points the table leaves nil, taking the
// convention into account.
func (t *Table) Missing() []string {
	var missing []string
	v := reflect.ValueOf(t).Elem()
	typ := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if f.Kind() != reflect.Func || !f.IsNil() {
			continue
		}
		name := typ.Field(i).Name
		if c, ok := conventionFields[name]; ok && c != t.Convention {
			continue
		}
		missing = append(missing, name)
	}
	sort.Strings(missing)
	return missing
}

// Validate reports an ENGINE_MISSING_SYMBOL error when the table is incomplete.
func (t *Table) Validate() error {
	if t == nil {
		return errors.New(errors.ErrCodeMissingSymbol, "nil engine table")
	}
	if missing := t.Missing(); len(missing) > 0 {
		return errors.New(errors.ErrCodeMissingSymbol, "engine %q lacks %s", t.Name, strings.Join(missing, ", "))
	}
	return nil
}
