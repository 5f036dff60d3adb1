package yoga

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matzehuels/yogabind/pkg/native"
	"github.com/matzehuels/yogabind/pkg/native/inproc"
)

var conventions = []native.Convention{native.DirectReturn, native.SideChannel}

func newBinding(t *testing.T, c native.Convention) (*Binding, *inproc.Engine) {
	t.Helper()
	eng := inproc.New(inproc.WithConvention(c))
	b, err := NewBinding(eng.Table())
	require.NoError(t, err)
	return b, eng
}

// eachConvention runs fn once per callback convention on a fresh binding.
func eachConvention(t *testing.T, fn func(t *testing.T, b *Binding)) {
	t.Helper()
	for _, c := range conventions {
		t.Run(c.String(), func(t *testing.T) {
			b, _ := newBinding(t, c)
			fn(t, b)
		})
	}
}

func mustNode(t *testing.T, b *Binding) *Node {
	t.Helper()
	n, err := b.NewNode()
	require.NoError(t, err)
	return n
}

func mustChild(t *testing.T, b *Binding, parent *Node) *Node {
	t.Helper()
	n := mustNode(t, b)
	count, err := parent.ChildCount()
	require.NoError(t, err)
	require.NoError(t, parent.InsertChild(n, count))
	return n
}

func mustLayout(t *testing.T, n *Node) Layout {
	t.Helper()
	l, err := n.ComputedLayout()
	require.NoError(t, err)
	return l
}

func layoutOf(t *testing.T, root *Node, width, height float32) {
	t.Helper()
	require.NoError(t, root.CalculateLayout(width, height, DirectionLTR))
}
