package inproc

import (
	"github.com/kjk/flex"

	"github.com/matzehuels/yogabind/pkg/native"
)

// Config handles

func (e *Engine) configNew() native.ConfigRef {
	ce := &configEntry{
		ref:          native.ConfigRef(e.allocRef()),
		cfg:          flex.NewConfig(),
		experimental: make(map[int32]bool),
	}
	e.configs[ce.ref] = ce
	return ce.ref
}

func (e *Engine) configFree(ref native.ConfigRef) {
	delete(e.configs, ref)
}

func (e *Engine) configSetUseWebDefaults(ref native.ConfigRef, enabled bool) {
	if ce := e.config(ref); ce != nil {
		ce.cfg.UseWebDefaults = enabled
	}
}

func (e *Engine) configGetUseWebDefaults(ref native.ConfigRef) bool {
	if ce := e.config(ref); ce != nil {
		return ce.cfg.UseWebDefaults
	}
	return false
}

func (e *Engine) configSetPointScaleFactor(ref native.ConfigRef, factor float32) {
	if ce := e.config(ref); ce != nil && factor >= 0 {
		ce.cfg.SetPointScaleFactor(factor)
	}
}

func (e *Engine) configGetPointScaleFactor(ref native.ConfigRef) float32 {
	if ce := e.config(ref); ce != nil {
		return ce.cfg.PointScaleFactor
	}
	return 0
}

func (e *Engine) configSetErrata(ref native.ConfigRef, errata int32) {
	if ce := e.config(ref); ce != nil {
		ce.errata = errata
	}
}

func (e *Engine) configGetErrata(ref native.ConfigRef) int32 {
	if ce := e.config(ref); ce != nil {
		return ce.errata
	}
	return 0
}

func (e *Engine) configSetExperimentalFeatureEnabled(ref native.ConfigRef, feature int32, enabled bool) {
	ce := e.config(ref)
	if ce == nil {
		return
	}
	if feature == featureWebFlexBasis {
		ce.cfg.SetExperimentalFeatureEnabled(flex.ExperimentalFeatureWebFlexBasis, enabled)
	}
	ce.experimental[feature] = enabled
}

func (e *Engine) configIsExperimentalFeatureEnabled(ref native.ConfigRef, feature int32) bool {
	if ce := e.config(ref); ce != nil {
		return ce.experimental[feature]
	}
	return false
}

// Node lifecycle

func (e *Engine) nodeNew() native.NodeRef {
	if e.fallback == nil {
		e.fallback = e.configs[e.configNew()]
	}
	return e.nodeNewWithConfig(e.fallback.ref)
}

func (e *Engine) nodeNewWithConfig(cref native.ConfigRef) native.NodeRef {
	ce := e.config(cref)
	if ce == nil {
		return 0
	}
	n := flex.NewNodeWithConfig(ce.cfg)
	ent := &entry{
		ref:          native.NodeRef(e.allocRef()),
		node:         n,
		config:       ce,
		ext:          defaultExt(&n.Style),
		hasNewLayout: true,
	}
	n.Context = ent
	e.nodes[ent.ref] = ent
	return ent.ref
}

func (e *Engine) nodeFree(ref native.NodeRef) {
	ent := e.lookup(ref)
	if ent == nil {
		return
	}
	n := ent.node
	if parent := entryOf(n.Parent); parent != nil {
		e.track(parent, func() { parent.node.RemoveChild(n) })
	}
	for _, child := range n.Children {
		if child.Parent == n {
			child.Parent = nil
		}
	}
	n.Children = nil
	n.Context = nil
	delete(e.nodes, ref)
}

func (e *Engine) nodeFreeRecursive(ref native.NodeRef) {
	ent := e.lookup(ref)
	if ent == nil {
		return
	}
	n := ent.node
	children := n.Children
	n.Children = nil
	for i := len(children) - 1; i >= 0; i-- {
		child := children[i]
		// Clones share children they do not own.
		if child.Parent != n {
			continue
		}
		child.Parent = nil
		e.nodeFreeRecursive(refOf(child))
	}
	e.nodeFree(ref)
}

func (e *Engine) nodeReset(ref native.NodeRef) {
	ent := e.lookup(ref)
	if ent == nil {
		return
	}
	ent.node.Reset()
	ent.node.Context = ent
	ent.ext = defaultExt(&ent.node.Style)
	ent.measure, ent.baseline, ent.dirtied = 0, 0, 0
	ent.hasNewLayout = true
}

func (e *Engine) nodeClone(ref native.NodeRef) native.NodeRef {
	ent := e.lookup(ref)
	if ent == nil {
		return 0
	}
	n := *ent.node
	n.Parent = nil
	n.Children = append([]*flex.Node(nil), ent.node.Children...)
	clone := &entry{
		ref:          native.NodeRef(e.allocRef()),
		node:         &n,
		config:       ent.config,
		ext:          ent.ext,
		measure:      ent.measure,
		baseline:     ent.baseline,
		dirtied:      ent.dirtied,
		hasNewLayout: ent.hasNewLayout,
	}
	n.Context = clone
	e.nodes[clone.ref] = clone
	return clone.ref
}

func (e *Engine) nodeCopyStyle(dst, src native.NodeRef) {
	from := e.lookup(src)
	if from == nil {
		return
	}
	e.setStyle(dst, func(s *flex.Style, ext *extStyle) {
		*s = from.node.Style
		ext.justify = from.ext.justify
		ext.alignContent = from.ext.alignContent
		ext.alignItems = from.ext.alignItems
		ext.alignSelf = from.ext.alignSelf
		ext.positionType = from.ext.positionType
		ext.display = from.ext.display
		ext.boxSizing = from.ext.boxSizing
		ext.gap = from.ext.gap
		ext.positionAuto = from.ext.positionAuto
	})
}

func (e *Engine) nodeSetIsReferenceBaseline(ref native.NodeRef, enabled bool) {
	e.setStyle(ref, func(_ *flex.Style, ext *extStyle) {
		ext.referenceBaseline = enabled
	})
}

func (e *Engine) nodeIsReferenceBaseline(ref native.NodeRef) bool {
	if ent := e.lookup(ref); ent != nil {
		return ent.ext.referenceBaseline
	}
	return false
}

func (e *Engine) nodeSetAlwaysFormsContainingBlock(ref native.NodeRef, enabled bool) {
	if ent := e.lookup(ref); ent != nil {
		ent.ext.alwaysFormsContainingBlock = enabled
	}
}

// Hierarchy

func (e *Engine) nodeInsertChild(parent, child native.NodeRef, index uint) {
	p, c := e.lookup(parent), e.lookup(child)
	if p == nil || c == nil {
		return
	}
	e.track(p, func() { p.node.InsertChild(c.node, int(index)) })
}

func (e *Engine) nodeRemoveChild(parent, child native.NodeRef) {
	p, c := e.lookup(parent), e.lookup(child)
	if p == nil || c == nil {
		return
	}
	e.track(p, func() { p.node.RemoveChild(c.node) })
}

func (e *Engine) nodeRemoveAllChildren(ref native.NodeRef) {
	p := e.lookup(ref)
	if p == nil {
		return
	}
	e.track(p, func() {
		for len(p.node.Children) > 0 {
			p.node.RemoveChild(p.node.Children[len(p.node.Children)-1])
		}
	})
}

func (e *Engine) nodeGetChild(ref native.NodeRef, index uint) native.NodeRef {
	if ent := e.lookup(ref); ent != nil {
		return refOf(ent.node.GetChild(int(index)))
	}
	return 0
}

func (e *Engine) nodeGetChildCount(ref native.NodeRef) uint {
	if ent := e.lookup(ref); ent != nil {
		return uint(len(ent.node.Children))
	}
	return 0
}

func (e *Engine) nodeGetParent(ref native.NodeRef) native.NodeRef {
	if ent := e.lookup(ref); ent != nil {
		return refOf(ent.node.Parent)
	}
	return 0
}

// Layout

type layoutSnapshot struct {
	ent   *entry
	dirty bool
	box   [6]float32
}

func boxOf(n *flex.Node) [6]float32 {
	l := &n.Layout
	return [6]float32{
		l.Position[flex.EdgeLeft], l.Position[flex.EdgeTop],
		l.Position[flex.EdgeRight], l.Position[flex.EdgeBottom],
		l.Dimensions[flex.DimensionWidth], l.Dimensions[flex.DimensionHeight],
	}
}

func snapshot(n *flex.Node, out []layoutSnapshot) []layoutSnapshot {
	if ent := entryOf(n); ent != nil {
		out = append(out, layoutSnapshot{ent: ent, dirty: n.IsDirty, box: boxOf(n)})
	}
	for _, child := range n.Children {
		out = snapshot(child, out)
	}
	return out
}

// nodeCalculateLayout runs a pass and flags every node that was dirty or
// whose box moved as having a new layout.
func (e *Engine) nodeCalculateLayout(ref native.NodeRef, width, height float32, direction int32) {
	ent := e.lookup(ref)
	if ent == nil {
		return
	}
	before := snapshot(ent.node, nil)
	flex.CalculateLayout(ent.node, width, height, flex.Direction(direction))
	ent.hasNewLayout = true
	for _, s := range before {
		if s.dirty {
			s.ent.hasNewLayout = true
			continue
		}
		after := boxOf(s.ent.node)
		for i := range s.box {
			if !sameFloat(s.box[i], after[i]) {
				s.ent.hasNewLayout = true
				break
			}
		}
	}
}

func (e *Engine) nodeGetHasNewLayout(ref native.NodeRef) bool {
	if ent := e.lookup(ref); ent != nil {
		return ent.hasNewLayout
	}
	return false
}

func (e *Engine) nodeSetHasNewLayout(ref native.NodeRef, v bool) {
	if ent := e.lookup(ref); ent != nil {
		ent.hasNewLayout = v
	}
}

func (e *Engine) nodeMarkDirty(ref native.NodeRef) {
	ent := e.lookup(ref)
	if ent == nil || ent.node.Measure == nil {
		return
	}
	e.track(ent, ent.node.MarkDirty)
}

func (e *Engine) nodeIsDirty(ref native.NodeRef) bool {
	if ent := e.lookup(ref); ent != nil {
		return ent.node.IsDirty
	}
	return false
}

func (e *Engine) layout(ref native.NodeRef) *flex.Layout {
	if ent := e.lookup(ref); ent != nil {
		return &ent.node.Layout
	}
	return &flex.Layout{}
}

func (e *Engine) layoutGetLeft(ref native.NodeRef) float32 {
	return e.layout(ref).Position[flex.EdgeLeft]
}

func (e *Engine) layoutGetTop(ref native.NodeRef) float32 {
	return e.layout(ref).Position[flex.EdgeTop]
}

func (e *Engine) layoutGetRight(ref native.NodeRef) float32 {
	return e.layout(ref).Position[flex.EdgeRight]
}

func (e *Engine) layoutGetBottom(ref native.NodeRef) float32 {
	return e.layout(ref).Position[flex.EdgeBottom]
}

func (e *Engine) layoutGetWidth(ref native.NodeRef) float32 {
	return e.layout(ref).Dimensions[flex.DimensionWidth]
}

func (e *Engine) layoutGetHeight(ref native.NodeRef) float32 {
	return e.layout(ref).Dimensions[flex.DimensionHeight]
}

func (e *Engine) layoutGetDirection(ref native.NodeRef) int32 {
	return int32(e.layout(ref).Direction)
}

func (e *Engine) layoutGetHadOverflow(ref native.NodeRef) bool {
	return e.layout(ref).HadOverflow
}

func (e *Engine) layoutGetMargin(ref native.NodeRef, edge int32) float32 {
	l := e.layout(ref)
	return layoutEdge(l.Margin, l.Direction, edge)
}

func (e *Engine) layoutGetBorder(ref native.NodeRef, edge int32) float32 {
	l := e.layout(ref)
	return layoutEdge(l.Border, l.Direction, edge)
}

func (e *Engine) layoutGetPadding(ref native.NodeRef, edge int32) float32 {
	l := e.layout(ref)
	return layoutEdge(l.Padding, l.Direction, edge)
}

// Callbacks

func (e *Engine) nodeSetMeasureFunc(ref native.NodeRef, th native.Thunk) {
	ent := e.lookup(ref)
	if ent == nil {
		return
	}
	ent.measure = th
	if th == 0 {
		ent.node.SetMeasureFunc(nil)
		return
	}
	ent.node.SetMeasureFunc(e.measure)
}

func (e *Engine) nodeHasMeasureFunc(ref native.NodeRef) bool {
	if ent := e.lookup(ref); ent != nil {
		return ent.node.Measure != nil
	}
	return false
}

func (e *Engine) nodeSetBaselineFunc(ref native.NodeRef, th native.Thunk) {
	ent := e.lookup(ref)
	if ent == nil {
		return
	}
	ent.baseline = th
	if th == 0 {
		ent.node.Baseline = nil
		return
	}
	ent.node.Baseline = e.baseline
}

func (e *Engine) nodeHasBaselineFunc(ref native.NodeRef) bool {
	if ent := e.lookup(ref); ent != nil {
		return ent.node.Baseline != nil
	}
	return false
}

func (e *Engine) nodeSetDirtiedFunc(ref native.NodeRef, th native.Thunk) {
	if ent := e.lookup(ref); ent != nil {
		ent.dirtied = th
	}
}

func (e *Engine) measure(n *flex.Node, width float32, widthMode flex.MeasureMode, height float32, heightMode flex.MeasureMode) flex.Size {
	ent := entryOf(n)
	if ent == nil {
		return flex.Size{}
	}
	switch fn := e.thunks[ent.measure].(type) {
	case native.MeasureThunk:
		s := fn(ent.ref, width, int32(widthMode), height, int32(heightMode))
		return flex.Size{Width: s.Width, Height: s.Height}
	case native.MeasureSlotThunk:
		e.measureSlot = native.Size{}
		fn(ent.ref, width, int32(widthMode), height, int32(heightMode))
		return flex.Size{Width: e.measureSlot.Width, Height: e.measureSlot.Height}
	}
	return flex.Size{}
}

func (e *Engine) baseline(n *flex.Node, width, height float32) float32 {
	ent := entryOf(n)
	if ent == nil {
		return height
	}
	var b float32
	switch fn := e.thunks[ent.baseline].(type) {
	case native.BaselineThunk:
		b = fn(ent.ref, width, height)
	case native.BaselineSlotThunk:
		e.baselineSlot = height
		fn(ent.ref, width, height)
		b = e.baselineSlot
	default:
		b = height
	}
	// kjk/flex asserts on a NaN baseline.
	if native.IsUndefined(b) {
		return height
	}
	return b
}

func (e *Engine) registerThunk(fn any) native.Thunk {
	e.nextThunk++
	th := native.Thunk(0x100 + e.nextThunk)
	e.thunks[th] = fn
	return th
}

func (e *Engine) storeMeasureResult(width, height float32) {
	e.measureSlot = native.Size{Width: width, Height: height}
}

func (e *Engine) storeBaselineResult(b float32) {
	e.baselineSlot = b
}
