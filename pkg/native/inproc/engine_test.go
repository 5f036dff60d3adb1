package inproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/yogabind/pkg/native"
)

func TestTableIsComplete(t *testing.T) {
	for _, c := range []native.Convention{native.DirectReturn, native.SideChannel} {
		t.Run(c.String(), func(t *testing.T) {
			tab := New(WithConvention(c)).Table()
			require.NoError(t, tab.Validate())
			assert.Equal(t, c, tab.Convention)
		})
	}
}

func TestHandlesAreDistinctAndReleased(t *testing.T) {
	e := New()
	tab := e.Table()

	cfg := tab.ConfigNew()
	a := tab.NodeNewWithConfig(cfg)
	b := tab.NodeNewWithConfig(cfg)
	assert.NotZero(t, a)
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, e.LiveNodes())

	tab.NodeFree(a)
	tab.NodeFree(b)
	assert.Equal(t, 0, e.LiveNodes())

	assert.Zero(t, tab.NodeNewWithConfig(native.ConfigRef(12345)))
}

func TestFreeRecursiveSkipsSharedChildren(t *testing.T) {
	e := New()
	tab := e.Table()

	root := tab.NodeNew()
	child := tab.NodeNew()
	tab.NodeInsertChild(root, child, 0)

	clone := tab.NodeClone(root)
	require.Equal(t, uint(1), tab.NodeGetChildCount(clone))
	assert.Equal(t, root, tab.NodeGetParent(child))

	tab.NodeFreeRecursive(clone)
	assert.Equal(t, 2, e.LiveNodes())

	tab.NodeFreeRecursive(root)
	assert.Equal(t, 0, e.LiveNodes())
}

func TestRowLayout(t *testing.T) {
	tab := New().Table()

	root := tab.NodeNew()
	tab.StyleSetFlexDirection(root, 2)
	tab.StyleSetWidth(root, 100)
	tab.StyleSetHeight(root, 100)

	a, b := tab.NodeNew(), tab.NodeNew()
	tab.StyleSetFlexGrow(a, 1)
	tab.StyleSetFlexGrow(b, 1)
	tab.NodeInsertChild(root, a, 0)
	tab.NodeInsertChild(root, b, 1)

	tab.NodeCalculateLayout(root, native.Undefined, native.Undefined, 1)

	assert.InDelta(t, 50, tab.LayoutGetWidth(a), 0.01)
	assert.InDelta(t, 50, tab.LayoutGetLeft(b), 0.01)
	assert.True(t, tab.NodeGetHasNewLayout(b))
	assert.False(t, tab.NodeIsDirty(root))
}

func TestStoredStyleRoundTrips(t *testing.T) {
	tab := New().Table()
	n := tab.NodeNew()

	tab.StyleSetGap(n, 1, 10)
	assert.Equal(t, native.Value{Value: 10, Unit: unitPoint}, tab.StyleGetGap(n, 1))

	tab.StyleSetJustifyContent(n, justifySpaceEvenly)
	assert.Equal(t, justifySpaceEvenly, tab.StyleGetJustifyContent(n))

	tab.StyleSetPositionAuto(n, edgeLeft)
	assert.Equal(t, unitAuto, tab.StyleGetPosition(n, edgeLeft).Unit)
	tab.StyleSetPosition(n, edgeLeft, 4)
	assert.Equal(t, native.Value{Value: 4, Unit: unitPoint}, tab.StyleGetPosition(n, edgeLeft))

	tab.StyleSetOverflow(n, overflowHidden)
	assert.Equal(t, overflowHidden, tab.StyleGetOverflow(n))
	tab.StyleSetFlexWrap(n, wrapWrap)
	assert.Equal(t, wrapWrap, tab.StyleGetFlexWrap(n))

	assert.True(t, native.IsUndefined(tab.StyleGetBorder(n, edgeTop)))
	tab.StyleSetBorder(n, edgeTop, 2)
	assert.Equal(t, float32(2), tab.StyleGetBorder(n, edgeTop))
}

func TestDirtiedFiresOnCleanToDirty(t *testing.T) {
	tab := New().Table()
	n := tab.NodeNew()

	measure := tab.NewMeasureThunk(func(native.NodeRef, float32, int32, float32, int32) native.Size {
		return native.Size{Width: 10, Height: 10}
	})
	calls := 0
	dirtied := tab.NewDirtiedThunk(func(native.NodeRef) { calls++ })

	tab.NodeSetMeasureFunc(n, measure)
	tab.NodeCalculateLayout(n, native.Undefined, native.Undefined, 1)
	tab.NodeSetDirtiedFunc(n, dirtied)

	tab.NodeMarkDirty(n)
	tab.NodeMarkDirty(n)
	assert.Equal(t, 1, calls)

	tab.NodeCalculateLayout(n, native.Undefined, native.Undefined, 1)
	tab.StyleSetAspectRatio(n, 2)
	assert.Equal(t, 2, calls)
}

func TestMarkDirtyWithoutMeasureIsIgnored(t *testing.T) {
	tab := New().Table()
	n := tab.NodeNew()
	tab.NodeCalculateLayout(n, 10, 10, 1)

	assert.NotPanics(t, func() { tab.NodeMarkDirty(n) })
	assert.False(t, tab.NodeIsDirty(n))
}

func TestSideChannelMeasure(t *testing.T) {
	e := New(WithConvention(native.SideChannel))
	tab := e.Table()

	root := tab.NodeNew()
	leaf := tab.NodeNew()
	tab.NodeInsertChild(root, leaf, 0)
	tab.StyleSetAlignSelf(leaf, alignFlexStart)

	th := tab.NewMeasureSlotThunk(func(native.NodeRef, float32, int32, float32, int32) {
		tab.StoreMeasureResult(30, 20)
	})
	tab.NodeSetMeasureFunc(leaf, th)
	tab.NodeCalculateLayout(root, native.Undefined, native.Undefined, 1)

	assert.InDelta(t, 30, tab.LayoutGetWidth(leaf), 0.01)
	assert.InDelta(t, 20, tab.LayoutGetHeight(leaf), 0.01)
}
