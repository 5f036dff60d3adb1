package yoga

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/yogabind/pkg/errors"
	"github.com/matzehuels/yogabind/pkg/native"
	"github.com/matzehuels/yogabind/pkg/native/inproc"
)

func TestHierarchyReturnsCanonicalWrappers(t *testing.T) {
	b, _ := newBinding(t, conventions[0])
	root := mustNode(t, b)
	a := mustChild(t, b, root)
	c := mustNode(t, b)
	require.NoError(t, root.InsertChild(c, 0))

	count, err := root.ChildCount()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	got, err := root.Child(0)
	require.NoError(t, err)
	assert.Same(t, c, got)
	got, err = root.Child(1)
	require.NoError(t, err)
	assert.Same(t, a, got)

	parent, err := a.Parent()
	require.NoError(t, err)
	assert.Same(t, root, parent)

	parent, err = root.Parent()
	require.NoError(t, err)
	assert.Nil(t, parent)

	missing, err := root.Child(5)
	require.NoError(t, err)
	assert.Nil(t, missing)
	missing, err = root.Child(-1)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestInsertChildValidatesInput(t *testing.T) {
	b, _ := newBinding(t, conventions[0])
	root := mustNode(t, b)
	child := mustNode(t, b)

	err := root.InsertChild(nil, 0)
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetCode(err))

	err = root.InsertChild(child, 1)
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetCode(err))

	require.NoError(t, root.InsertChild(child, 0))
	require.NoError(t, root.RemoveChild(child))
	count, err := root.ChildCount()
	require.NoError(t, err)
	assert.Zero(t, count)

	parent, err := child.Parent()
	require.NoError(t, err)
	assert.Nil(t, parent)
}

func TestRemoveAllChildren(t *testing.T) {
	b, _ := newBinding(t, conventions[0])
	root := mustNode(t, b)
	kids := []*Node{mustChild(t, b, root), mustChild(t, b, root), mustChild(t, b, root)}

	require.NoError(t, root.RemoveAllChildren())

	count, err := root.ChildCount()
	require.NoError(t, err)
	assert.Zero(t, count)
	for _, k := range kids {
		p, err := k.Parent()
		require.NoError(t, err)
		assert.Nil(t, p)
	}
}

func TestFreeIsIdempotent(t *testing.T) {
	eachConvention(t, func(t *testing.T, b *Binding) {
		n := mustNode(t, b)
		var measured, dirtied int
		require.NoError(t, n.SetMeasureFunc(func(float32, MeasureMode, float32, MeasureMode) Size {
			measured++
			return Size{}
		}))
		require.NoError(t, n.SetDirtiedFunc(func(*Node) { dirtied++ }))

		n.Free()
		n.Free()

		assert.True(t, n.IsFreed())
		assert.Zero(t, b.LiveNodes())
		assert.Zero(t, measured)
		assert.Zero(t, dirtied)
		assert.Contains(t, n.String(), "freed")
	})
}

func TestFreeReleasesCallbacksBeforeHandle(t *testing.T) {
	eng := inproc.New()
	tab := *eng.Table()
	var events []string
	setMeasure := tab.NodeSetMeasureFunc
	tab.NodeSetMeasureFunc = func(ref native.NodeRef, th native.Thunk) {
		if th == 0 {
			events = append(events, "clear-measure")
		}
		setMeasure(ref, th)
	}
	free := tab.NodeFree
	tab.NodeFree = func(ref native.NodeRef) {
		events = append(events, "free")
		free(ref)
	}
	b, err := NewBinding(&tab)
	require.NoError(t, err)

	n := mustNode(t, b)
	require.NoError(t, n.SetMeasureFunc(func(float32, MeasureMode, float32, MeasureMode) Size { return Size{} }))
	events = nil

	n.Free()

	assert.Equal(t, []string{"clear-measure", "free"}, events)
	assert.Zero(t, eng.LiveNodes())
}

func TestFreeDetachesFromParent(t *testing.T) {
	b, _ := newBinding(t, conventions[0])
	root := mustNode(t, b)
	child := mustChild(t, b, root)

	child.Free()

	count, err := root.ChildCount()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestFreeRecursive(t *testing.T) {
	eachConvention(t, func(t *testing.T, b *Binding) {
		root := mustNode(t, b)
		mid := mustChild(t, b, root)
		leaf := mustChild(t, b, mid)
		require.NoError(t, leaf.SetMeasureFunc(func(float32, MeasureMode, float32, MeasureMode) Size { return Size{} }))
		other := mustChild(t, b, root)

		root.FreeRecursive()
		root.FreeRecursive()

		for _, n := range []*Node{root, mid, leaf, other} {
			assert.True(t, n.IsFreed(), "%v not freed", n)
		}
		assert.Zero(t, b.LiveNodes())
	})
}

func TestFreeRecursiveKeepsSharedChildrenOfClone(t *testing.T) {
	b, eng := newBinding(t, conventions[0])
	root := mustNode(t, b)
	child := mustChild(t, b, root)

	clone, err := root.Clone()
	require.NoError(t, err)
	clone.FreeRecursive()

	assert.True(t, clone.IsFreed())
	assert.False(t, child.IsFreed())
	parent, err := child.Parent()
	require.NoError(t, err)
	assert.Same(t, root, parent)

	root.FreeRecursive()
	assert.Zero(t, eng.LiveNodes())
}

func TestUseAfterFree(t *testing.T) {
	b, _ := newBinding(t, conventions[0])
	other := mustNode(t, b)
	n := mustNode(t, b)
	n.Free()

	ops := map[string]func() error{
		"SetWidth":        func() error { return n.SetWidth(Points(1)) },
		"Width":           func() error { _, err := n.Width(); return err },
		"SetMargin":       func() error { return n.SetMargin(EdgeLeft, Points(1)) },
		"SetFlexGrow":     func() error { return n.SetFlexGrow(1) },
		"SetFlexWrap":     func() error { return n.SetFlexWrap(WrapWrap) },
		"Border":          func() error { _, err := n.Border(EdgeTop); return err },
		"InsertChild":     func() error { return n.InsertChild(other, 0) },
		"ChildCount":      func() error { _, err := n.ChildCount(); return err },
		"Parent":          func() error { _, err := n.Parent(); return err },
		"CalculateLayout": func() error { return n.CalculateLayout(1, 1, DirectionLTR) },
		"ComputedWidth":   func() error { _, err := n.ComputedWidth(); return err },
		"ComputedLayout":  func() error { _, err := n.ComputedLayout(); return err },
		"MarkDirty":       func() error { return n.MarkDirty() },
		"SetMeasureFunc":  func() error { return n.SetMeasureFunc(nil) },
		"Clone":           func() error { _, err := n.Clone(); return err },
		"Reset":           func() error { return n.Reset() },
		"CopyStyle":       func() error { return other.CopyStyle(n) },
		"AddFreedChild":   func() error { return other.InsertChild(n, 0) },
		"HasDirtiedFunc":  func() error { _, err := n.HasDirtiedFunc(); return err },
		"BadEdgeMargin":   func() error { return n.SetMargin(Edge(99), Points(1)) },
		"BadEdgePadding":  func() error { return n.SetPadding(Edge(99), Points(1)) },
		"BadEdgeBorder":   func() error { return n.SetBorder(Edge(99), 1) },
		"BadGutterGap":    func() error { return n.SetGap(Gutter(99), Points(1)) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			err := op()
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeUseAfterFree, errors.GetCode(err))
		})
	}

	n.UnsetMeasureFunc()
	n.UnsetBaselineFunc()
	n.UnsetDirtiedFunc()
}

func TestResetRestoresDefaults(t *testing.T) {
	b, _ := newBinding(t, conventions[0])
	fresh := mustNode(t, b)
	want, err := fresh.Width()
	require.NoError(t, err)
	require.Equal(t, UnitAuto, want.Unit)

	n := mustNode(t, b)
	require.NoError(t, n.SetWidth(Points(40)))
	require.NoError(t, n.SetFlexDirection(FlexDirectionRow))
	require.NoError(t, n.SetMeasureFunc(func(float32, MeasureMode, float32, MeasureMode) Size { return Size{} }))

	require.NoError(t, n.Reset())

	w, err := n.Width()
	require.NoError(t, err)
	assert.True(t, w.Equal(want), "width after reset = %v, want %v", w, want)
	dir, err := n.FlexDirection()
	require.NoError(t, err)
	assert.Equal(t, FlexDirectionColumn, dir)
	has, err := n.HasMeasureFunc()
	require.NoError(t, err)
	assert.False(t, has)
	assert.Equal(t, 2, b.LiveNodes())
}

func TestResetRejectsAttachedNodes(t *testing.T) {
	b, _ := newBinding(t, conventions[0])
	root := mustNode(t, b)
	child := mustChild(t, b, root)

	assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetCode(root.Reset()))
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetCode(child.Reset()))
}

func TestCloneCopiesStyleAndCallbacks(t *testing.T) {
	eachConvention(t, func(t *testing.T, b *Binding) {
		n := mustNode(t, b)
		require.NoError(t, n.SetPadding(EdgeAll, Points(2)))
		var calls int
		require.NoError(t, n.SetMeasureFunc(func(float32, MeasureMode, float32, MeasureMode) Size {
			calls++
			return Size{Width: 8, Height: 4}
		}))

		clone, err := n.Clone()
		require.NoError(t, err)
		require.NotEqual(t, n.String(), clone.String())

		has, err := clone.HasMeasureFunc()
		require.NoError(t, err)
		assert.True(t, has)
		pad, err := clone.Padding(EdgeAll)
		require.NoError(t, err)
		assert.True(t, pad.Equal(Points(2)))

		layoutOf(t, clone, Unconstrained, Unconstrained)
		assert.Positive(t, calls)
		assert.Equal(t, Layout{Width: 12, Height: 8}, mustLayout(t, clone))

		n.Free()
		has, err = clone.HasMeasureFunc()
		require.NoError(t, err)
		assert.True(t, has)
	})
}

func TestCopyStyleReproducesProperties(t *testing.T) {
	b, _ := newBinding(t, conventions[0])
	src := mustNode(t, b)
	require.NoError(t, src.SetFlexDirection(FlexDirectionRowReverse))
	require.NoError(t, src.SetJustifyContent(JustifySpaceBetween))
	require.NoError(t, src.SetAlignItems(AlignFlexEnd))
	require.NoError(t, src.SetFlexWrap(WrapWrap))
	require.NoError(t, src.SetOverflow(OverflowHidden))
	require.NoError(t, src.SetWidthPercent(50))
	require.NoError(t, src.SetHeightAuto())
	require.NoError(t, src.SetMargin(EdgeTop, Points(5)))
	require.NoError(t, src.SetPadding(EdgeLeft, Points(3)))
	require.NoError(t, src.SetBorder(EdgeBottom, 2))
	require.NoError(t, src.SetFlexGrow(2))
	require.NoError(t, src.SetAspectRatio(1.5))
	require.NoError(t, src.SetGap(GutterColumn, Points(4)))

	dst := mustNode(t, b)
	require.NoError(t, dst.CopyStyle(src))

	dir, _ := dst.FlexDirection()
	assert.Equal(t, FlexDirectionRowReverse, dir)
	j, _ := dst.JustifyContent()
	assert.Equal(t, JustifySpaceBetween, j)
	ai, _ := dst.AlignItems()
	assert.Equal(t, AlignFlexEnd, ai)
	wrap, _ := dst.FlexWrap()
	assert.Equal(t, WrapWrap, wrap)
	ov, _ := dst.Overflow()
	assert.Equal(t, OverflowHidden, ov)
	w, _ := dst.Width()
	assert.True(t, w.Equal(Percent(50)), "width %v", w)
	h, _ := dst.Height()
	assert.True(t, h.Equal(Auto()), "height %v", h)
	m, _ := dst.Margin(EdgeTop)
	assert.True(t, m.Equal(Points(5)), "margin %v", m)
	p, _ := dst.Padding(EdgeLeft)
	assert.True(t, p.Equal(Points(3)), "padding %v", p)
	border, _ := dst.Border(EdgeBottom)
	assert.Equal(t, float32(2), border)
	grow, _ := dst.FlexGrow()
	assert.Equal(t, float32(2), grow)
	ar, _ := dst.AspectRatio()
	assert.Equal(t, float32(1.5), ar)
	gap, _ := dst.Gap(GutterColumn)
	assert.True(t, gap.Equal(Points(4)), "gap %v", gap)

	assert.Error(t, dst.CopyStyle(nil))
}

func TestStyleRoundTrips(t *testing.T) {
	b, _ := newBinding(t, conventions[0])
	n := mustNode(t, b)

	require.NoError(t, n.SetAlignContent(AlignSpaceAround))
	ac, err := n.AlignContent()
	require.NoError(t, err)
	assert.Equal(t, AlignSpaceAround, ac)

	require.NoError(t, n.SetAlignSelf(AlignCenter))
	as, err := n.AlignSelf()
	require.NoError(t, err)
	assert.Equal(t, AlignCenter, as)

	require.NoError(t, n.SetPositionType(PositionTypeAbsolute))
	pt, err := n.PositionType()
	require.NoError(t, err)
	assert.Equal(t, PositionTypeAbsolute, pt)

	require.NoError(t, n.SetDisplay(DisplayNone))
	d, err := n.Display()
	require.NoError(t, err)
	assert.Equal(t, DisplayNone, d)

	require.NoError(t, n.SetBoxSizing(BoxSizingContentBox))
	bs, err := n.BoxSizing()
	require.NoError(t, err)
	assert.Equal(t, BoxSizingContentBox, bs)

	require.NoError(t, n.SetDirection(DirectionRTL))
	dir, err := n.Direction()
	require.NoError(t, err)
	assert.Equal(t, DirectionRTL, dir)

	require.NoError(t, n.SetFlexShrink(0.5))
	fs, err := n.FlexShrink()
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), fs)

	require.NoError(t, n.SetFlexBasisAuto())
	fb, err := n.FlexBasis()
	require.NoError(t, err)
	assert.True(t, fb.Equal(Auto()))

	require.NoError(t, n.SetMinWidth(Points(10)))
	require.NoError(t, n.SetMaxHeightPercent(80))
	mw, err := n.MinWidth()
	require.NoError(t, err)
	assert.True(t, mw.Equal(Points(10)))
	mh, err := n.MaxHeight()
	require.NoError(t, err)
	assert.True(t, mh.Equal(Percent(80)))

	require.NoError(t, n.SetPosition(EdgeTop, Points(7)))
	pos, err := n.Position(EdgeTop)
	require.NoError(t, err)
	assert.True(t, pos.Equal(Points(7)))
	require.NoError(t, n.SetPositionAuto(EdgeLeft))
	pos, err = n.Position(EdgeLeft)
	require.NoError(t, err)
	assert.True(t, pos.Equal(Auto()))

	require.NoError(t, n.SetGapPercent(GutterRow, 10))
	gap, err := n.Gap(GutterRow)
	require.NoError(t, err)
	assert.True(t, gap.Equal(Percent(10)))

	require.NoError(t, n.SetIsReferenceBaseline(true))
	ref, err := n.IsReferenceBaseline()
	require.NoError(t, err)
	assert.True(t, ref)

	require.NoError(t, n.SetWidth(Undefined()))
	w, err := n.Width()
	require.NoError(t, err)
	assert.True(t, w.IsUndefined())

	require.NoError(t, n.SetBorder(EdgeTop, 3))
	require.NoError(t, n.SetBorder(EdgeTop, Unconstrained))
	border, err := n.Border(EdgeTop)
	require.NoError(t, err)
	assert.True(t, native.IsUndefined(border))
}

func TestStyleRejectsInvalidInput(t *testing.T) {
	b, _ := newBinding(t, conventions[0])
	n := mustNode(t, b)

	tests := map[string]error{
		"padding auto":   n.SetPadding(EdgeAll, Auto()),
		"min width auto": n.SetMinWidth(Auto()),
		"bad edge":       n.SetMargin(Edge(42), Points(1)),
		"bad gutter":     n.SetGap(Gutter(9), Points(1)),
		"bad align":      n.SetAlignItems(Align(99)),
		"infinite grow":  n.SetFlexGrow(float32(1) / float32(zero())),
	}
	for name, err := range tests {
		assert.Equal(t, errors.ErrCodeInvalidStyleInput, errors.GetCode(err), name)
	}
}

func zero() float32 { return 0 }
