package yoga

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedSizeNode(t *testing.T) {
	eachConvention(t, func(t *testing.T, b *Binding) {
		root := mustNode(t, b)
		require.NoError(t, root.SetWidth(Points(37)))
		require.NoError(t, root.SetHeight(Points(21)))
		layoutOf(t, root, Unconstrained, Unconstrained)

		l := mustLayout(t, root)
		assert.Equal(t, Layout{Width: 37, Height: 21}, l)
		assert.Equal(t, float32(37), l.Size(DimensionWidth))
		assert.Equal(t, float32(21), l.Size(DimensionHeight))
	})
}

func TestRowFlexGrowSplitsEvenly(t *testing.T) {
	eachConvention(t, func(t *testing.T, b *Binding) {
		root := mustNode(t, b)
		require.NoError(t, root.SetFlexDirection(FlexDirectionRow))
		require.NoError(t, root.SetWidth(Points(100)))
		require.NoError(t, root.SetHeight(Points(100)))
		first := mustChild(t, b, root)
		second := mustChild(t, b, root)
		require.NoError(t, first.SetFlexGrow(1))
		require.NoError(t, second.SetFlexGrow(1))

		layoutOf(t, root, Unconstrained, Unconstrained)

		l1, l2 := mustLayout(t, first), mustLayout(t, second)
		assert.Equal(t, float32(0), l1.Left)
		assert.Equal(t, float32(50), l1.Width)
		assert.Equal(t, float32(100), l1.Height)
		assert.Equal(t, float32(50), l2.Left)
		assert.Equal(t, float32(50), l2.Width)
	})
}

func TestMarginOffsetsChild(t *testing.T) {
	eachConvention(t, func(t *testing.T, b *Binding) {
		root := mustNode(t, b)
		require.NoError(t, root.SetWidth(Points(100)))
		require.NoError(t, root.SetHeight(Points(100)))
		child := mustChild(t, b, root)
		require.NoError(t, child.SetWidth(Points(50)))
		require.NoError(t, child.SetHeight(Points(50)))
		require.NoError(t, child.SetMargin(EdgeLeft, Points(10)))
		require.NoError(t, child.SetMargin(EdgeTop, Points(5)))

		layoutOf(t, root, Unconstrained, Unconstrained)

		l := mustLayout(t, child)
		assert.Equal(t, float32(10), l.Left)
		assert.Equal(t, float32(5), l.Top)
		m, err := child.ComputedMargin(EdgeLeft)
		require.NoError(t, err)
		assert.Equal(t, float32(10), m)
	})
}

func TestPaddingAndBorderInsetChildren(t *testing.T) {
	eachConvention(t, func(t *testing.T, b *Binding) {
		padded := mustNode(t, b)
		require.NoError(t, padded.SetWidth(Points(100)))
		require.NoError(t, padded.SetHeight(Points(100)))
		require.NoError(t, padded.SetPadding(EdgeAll, Points(10)))
		inner := mustChild(t, b, padded)
		require.NoError(t, inner.SetFlexGrow(1))
		layoutOf(t, padded, Unconstrained, Unconstrained)
		il := mustLayout(t, inner)
		assert.Equal(t, float32(10), il.Left)
		assert.Equal(t, float32(10), il.Top)
		assert.Equal(t, float32(80), il.Width)
		assert.Equal(t, float32(80), il.Height)

		bordered := mustNode(t, b)
		require.NoError(t, bordered.SetWidth(Points(100)))
		require.NoError(t, bordered.SetHeight(Points(100)))
		require.NoError(t, bordered.SetBorder(EdgeAll, 5))
		child := mustChild(t, b, bordered)
		require.NoError(t, child.SetFlexGrow(1))
		layoutOf(t, bordered, Unconstrained, Unconstrained)
		l := mustLayout(t, child)
		assert.Equal(t, float32(5), l.Left)
		assert.Equal(t, float32(5), l.Top)
		assert.Equal(t, float32(90), l.Width)
		assert.Equal(t, float32(90), l.Height)

		border, err := bordered.ComputedBorder(EdgeRight)
		require.NoError(t, err)
		assert.Equal(t, float32(5), border)
	})
}

func TestMarginInsideBorder(t *testing.T) {
	eachConvention(t, func(t *testing.T, b *Binding) {
		root := mustNode(t, b)
		require.NoError(t, root.SetWidth(Points(100)))
		require.NoError(t, root.SetHeight(Points(100)))
		require.NoError(t, root.SetBorder(EdgeAll, 5))
		child := mustChild(t, b, root)
		require.NoError(t, child.SetWidth(Points(20)))
		require.NoError(t, child.SetHeight(Points(20)))
		require.NoError(t, child.SetMargin(EdgeLeft, Points(10)))

		layoutOf(t, root, Unconstrained, Unconstrained)

		left, err := child.ComputedLeft()
		require.NoError(t, err)
		assert.Equal(t, float32(15), left)
	})
}

func TestPercentValues(t *testing.T) {
	eachConvention(t, func(t *testing.T, b *Binding) {
		root := mustNode(t, b)
		require.NoError(t, root.SetWidth(Points(200)))
		require.NoError(t, root.SetHeight(Points(200)))

		sized := mustChild(t, b, root)
		require.NoError(t, sized.SetWidthPercent(50))
		require.NoError(t, sized.SetHeightPercent(25))

		layoutOf(t, root, Unconstrained, Unconstrained)

		l := mustLayout(t, sized)
		assert.Equal(t, float32(100), l.Width)
		assert.Equal(t, float32(50), l.Height)
	})
}

func TestPercentMargin(t *testing.T) {
	eachConvention(t, func(t *testing.T, b *Binding) {
		root := mustNode(t, b)
		require.NoError(t, root.SetWidth(Points(200)))
		require.NoError(t, root.SetHeight(Points(200)))
		child := mustChild(t, b, root)
		require.NoError(t, child.SetWidth(Points(50)))
		require.NoError(t, child.SetHeight(Points(50)))
		require.NoError(t, child.SetMarginPercent(EdgeLeft, 10))

		layoutOf(t, root, Unconstrained, Unconstrained)

		l := mustLayout(t, child)
		assert.Equal(t, float32(20), l.Left)
		m, err := child.ComputedMargin(EdgeLeft)
		require.NoError(t, err)
		assert.Equal(t, float32(20), m)

		v, err := child.Margin(EdgeLeft)
		require.NoError(t, err)
		assert.True(t, v.Equal(Percent(10)), "Margin(left) = %v", v)
	})
}

func TestPercentPaddingUsesContainerWidth(t *testing.T) {
	eachConvention(t, func(t *testing.T, b *Binding) {
		root := mustNode(t, b)
		require.NoError(t, root.SetWidth(Points(200)))
		require.NoError(t, root.SetHeight(Points(100)))
		require.NoError(t, root.SetPaddingPercent(EdgeAll, 10))
		child := mustChild(t, b, root)
		require.NoError(t, child.SetFlexGrow(1))

		layoutOf(t, root, 200, 100)

		l := mustLayout(t, child)
		assert.Equal(t, float32(20), l.Left)
		assert.Equal(t, float32(20), l.Top)
		assert.Equal(t, float32(160), l.Width)
		assert.Equal(t, float32(60), l.Height)
	})
}

func TestAutoMarginPushesToEnd(t *testing.T) {
	eachConvention(t, func(t *testing.T, b *Binding) {
		root := mustNode(t, b)
		require.NoError(t, root.SetFlexDirection(FlexDirectionRow))
		require.NoError(t, root.SetWidth(Points(200)))
		require.NoError(t, root.SetHeight(Points(100)))
		child := mustChild(t, b, root)
		require.NoError(t, child.SetWidth(Points(50)))
		require.NoError(t, child.SetHeight(Points(50)))
		require.NoError(t, child.SetMarginAuto(EdgeLeft))

		layoutOf(t, root, Unconstrained, Unconstrained)

		left, err := child.ComputedLeft()
		require.NoError(t, err)
		assert.Equal(t, float32(150), left)
	})
}

func TestFlexBasisAndMaxPercent(t *testing.T) {
	eachConvention(t, func(t *testing.T, b *Binding) {
		row := mustNode(t, b)
		require.NoError(t, row.SetFlexDirection(FlexDirectionRow))
		require.NoError(t, row.SetWidth(Points(200)))
		require.NoError(t, row.SetHeight(Points(100)))
		basis := mustChild(t, b, row)
		require.NoError(t, basis.SetFlexBasisPercent(50))
		layoutOf(t, row, Unconstrained, Unconstrained)
		w, err := basis.ComputedWidth()
		require.NoError(t, err)
		assert.Equal(t, float32(100), w)

		col := mustNode(t, b)
		require.NoError(t, col.SetWidth(Points(200)))
		require.NoError(t, col.SetHeight(Points(200)))
		capped := mustChild(t, b, col)
		require.NoError(t, capped.SetWidthPercent(100))
		require.NoError(t, capped.SetMaxWidthPercent(75))
		require.NoError(t, capped.SetHeight(Points(10)))
		layoutOf(t, col, Unconstrained, Unconstrained)
		w, err = capped.ComputedWidth()
		require.NoError(t, err)
		assert.Equal(t, float32(150), w)
	})
}

func TestAvailableSizeConstrainsRoot(t *testing.T) {
	b, _ := newBinding(t, conventions[0])
	root := mustNode(t, b)
	child := mustChild(t, b, root)
	require.NoError(t, child.SetFlexGrow(1))

	layoutOf(t, root, 300, 120)

	assert.Equal(t, Layout{Width: 300, Height: 120}, mustLayout(t, root))
	assert.Equal(t, float32(120), mustLayout(t, child).Height)
}

func TestComputedEdgeRejectsLogicalGroups(t *testing.T) {
	b, _ := newBinding(t, conventions[0])
	n := mustNode(t, b)
	layoutOf(t, n, 10, 10)

	_, err := n.ComputedMargin(EdgeAll)
	assert.Error(t, err)
	_, err = n.ComputedPadding(EdgeHorizontal)
	assert.Error(t, err)
	_, err = n.ComputedPadding(EdgeStart)
	assert.NoError(t, err)
}

func TestHasNewLayout(t *testing.T) {
	b, _ := newBinding(t, conventions[0])
	root := mustNode(t, b)
	require.NoError(t, root.SetWidth(Points(10)))
	require.NoError(t, root.SetHeight(Points(10)))
	layoutOf(t, root, Unconstrained, Unconstrained)

	fresh, err := root.HasNewLayout()
	require.NoError(t, err)
	assert.True(t, fresh)

	require.NoError(t, root.MarkLayoutSeen())
	fresh, err = root.HasNewLayout()
	require.NoError(t, err)
	assert.False(t, fresh)

	dirty, err := root.IsDirty()
	require.NoError(t, err)
	assert.False(t, dirty)

	require.NoError(t, root.SetWidth(Points(20)))
	dirty, err = root.IsDirty()
	require.NoError(t, err)
	assert.True(t, dirty)
}
