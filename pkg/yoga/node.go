package yoga

import (
	"fmt"
	"time"

	"github.com/matzehuels/yogabind/pkg/errors"
	"github.com/matzehuels/yogabind/pkg/native"
	"github.com/matzehuels/yogabind/pkg/observability"
)

// Node is a managed handle to one engine node. A Node is single-owner: free
// it exactly once with Free or through an ancestor's FreeRecursive. After
// that every method except Free, FreeRecursive and the Unset methods returns
// a USE_AFTER_FREE error.
type Node struct {
	b      *Binding
	ref    native.NodeRef
	config *Config
	state  lifecycle
}

// NewNode creates a node with the engine's default config.
func (b *Binding) NewNode() (*Node, error) {
	return b.adopt(b.tab.NodeNew(), nil)
}

// NewNodeWithConfig creates a node that uses cfg. cfg cannot be freed while
// the node is live.
func (b *Binding) NewNodeWithConfig(cfg *Config) (*Node, error) {
	if cfg == nil {
		return b.NewNode()
	}
	if err := cfg.live(); err != nil {
		return nil, err
	}
	if cfg.b != b {
		return nil, errors.New(errors.ErrCodeInvalidInput, "config belongs to another binding")
	}
	return b.adopt(b.tab.NodeNewWithConfig(cfg.ref), cfg)
}

func (b *Binding) adopt(ref native.NodeRef, cfg *Config) (*Node, error) {
	if ref == 0 {
		return nil, errors.New(errors.ErrCodeAllocationFailure, "engine %q could not allocate a node", b.tab.Name)
	}
	n := &Node{b: b, ref: ref, config: cfg}
	if cfg != nil {
		cfg.users++
	}
	b.register(n)
	observability.Lifecycle().OnNodeCreate(uintptr(ref))
	return n, nil
}

func (n *Node) live() error {
	return n.state.check("node")
}

// String identifies the node by handle for logs.
func (n *Node) String() string {
	if n.state.freed {
		return fmt.Sprintf("Node(%#x, freed)", uintptr(n.ref))
	}
	return fmt.Sprintf("Node(%#x)", uintptr(n.ref))
}

// IsFreed reports whether the node has been released.
func (n *Node) IsFreed() bool {
	return n.state.freed
}

// Config returns the config the node was created with, or nil for the
// engine default.
func (n *Node) Config() *Config {
	return n.config
}

// Free releases the node. Callback registrations are torn down before the
// handle is released. Freeing a freed node is a no-op.
func (n *Node) Free() {
	if n.state.freed {
		return
	}
	n.b.release(n.ref)
	n.b.tab.NodeFree(n.ref)
	n.markFreed()
}

// FreeRecursive releases the node and every descendant it owns.
func (n *Node) FreeRecursive() {
	if n.state.freed {
		return
	}
	subtree := n.ownedSubtree(nil)
	for _, m := range subtree {
		n.b.release(m.ref)
	}
	n.b.tab.NodeFreeRecursive(n.ref)
	for _, m := range subtree {
		m.markFreed()
	}
}

func (n *Node) ownedSubtree(out []*Node) []*Node {
	out = append(out, n)
	count := n.b.tab.NodeGetChildCount(n.ref)
	for i := uint(0); i < count; i++ {
		ref := n.b.tab.NodeGetChild(n.ref, i)
		if n.b.tab.NodeGetParent(ref) != n.ref {
			continue
		}
		if s := n.b.lookup(ref); s != nil {
			out = s.node.ownedSubtree(out)
		}
	}
	return out
}

func (n *Node) markFreed() {
	n.state.markFreed()
	if n.config != nil {
		n.config.users--
	}
	observability.Lifecycle().OnNodeFree(uintptr(n.ref))
	logger().Debug("freed node", "node", fmt.Sprintf("%#x", uintptr(n.ref)))
}

// Reset restores the node to its freshly created state, dropping style,
// layout and callbacks. The node must have no parent and no children.
func (n *Node) Reset() error {
	if err := n.live(); err != nil {
		return err
	}
	if n.b.tab.NodeGetChildCount(n.ref) > 0 || n.b.tab.NodeGetParent(n.ref) != 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cannot reset a node that has a parent or children")
	}
	n.b.release(n.ref)
	n.b.tab.NodeReset(n.ref)
	n.b.register(n)
	return nil
}

// Clone returns a new node with the same style, layout, children and
// callbacks. Children are shared, not copied, and stay owned by n.
func (n *Node) Clone() (*Node, error) {
	if err := n.live(); err != nil {
		return nil, err
	}
	clone, err := n.b.adopt(n.b.tab.NodeClone(n.ref), n.config)
	if err != nil {
		return nil, err
	}
	src := n.b.lookup(n.ref)
	if src == nil {
		return clone, nil
	}
	n.b.update(clone.ref, func(s *slot) {
		s.measure, s.baseline, s.dirtied = src.measure, src.baseline, src.dirtied
	})
	if src.measure != nil {
		n.b.tab.NodeSetMeasureFunc(clone.ref, n.b.measureThunk)
	}
	if src.baseline != nil {
		n.b.tab.NodeSetBaselineFunc(clone.ref, n.b.baselineThunk)
	}
	if src.dirtied != nil {
		n.b.tab.NodeSetDirtiedFunc(clone.ref, n.b.dirtiedThunk)
	}
	return clone, nil
}

// CopyStyle replaces the node's style with src's.
func (n *Node) CopyStyle(src *Node) error {
	if err := n.live(); err != nil {
		return err
	}
	if src == nil {
		return errors.New(errors.ErrCodeInvalidInput, "copy style from nil node")
	}
	if err := src.live(); err != nil {
		return err
	}
	n.b.tab.NodeCopyStyle(n.ref, src.ref)
	return n.b.drain()
}

// SetIsReferenceBaseline makes this child the one its parent aligns
// baselines to.
func (n *Node) SetIsReferenceBaseline(enabled bool) error {
	if err := n.live(); err != nil {
		return err
	}
	n.b.tab.NodeSetIsReferenceBaseline(n.ref, enabled)
	return n.b.drain()
}

// IsReferenceBaseline reports whether the node is its parent's reference
// baseline.
func (n *Node) IsReferenceBaseline() (bool, error) {
	if err := n.live(); err != nil {
		return false, err
	}
	return n.b.tab.NodeIsReferenceBaseline(n.ref), nil
}

// SetAlwaysFormsContainingBlock makes the node the containing block of
// absolute descendants even when it is statically positioned.
func (n *Node) SetAlwaysFormsContainingBlock(enabled bool) error {
	if err := n.live(); err != nil {
		return err
	}
	n.b.tab.NodeSetAlwaysFormsContainingBlock(n.ref, enabled)
	return nil
}

// NodeType is NodeTypeText for measured leaves and NodeTypeDefault otherwise.
func (n *Node) NodeType() (NodeType, error) {
	if err := n.live(); err != nil {
		return NodeTypeDefault, err
	}
	if n.b.tab.NodeHasMeasureFunc(n.ref) {
		return NodeTypeText, nil
	}
	return NodeTypeDefault, nil
}

// Hierarchy

// InsertChild inserts child at index, shifting later children right.
func (n *Node) InsertChild(child *Node, index int) error {
	if err := n.live(); err != nil {
		return err
	}
	if child == nil {
		return errors.New(errors.ErrCodeInvalidInput, "insert nil child")
	}
	if err := child.live(); err != nil {
		return err
	}
	count := n.b.tab.NodeGetChildCount(n.ref)
	if index < 0 || uint(index) > count {
		return errors.New(errors.ErrCodeInvalidInput, "child index %d out of range [0, %d]", index, count)
	}
	n.b.tab.NodeInsertChild(n.ref, child.ref, uint(index))
	return n.b.drain()
}

// RemoveChild detaches child from the node.
func (n *Node) RemoveChild(child *Node) error {
	if err := n.live(); err != nil {
		return err
	}
	if child == nil {
		return errors.New(errors.ErrCodeInvalidInput, "remove nil child")
	}
	if err := child.live(); err != nil {
		return err
	}
	n.b.tab.NodeRemoveChild(n.ref, child.ref)
	return n.b.drain()
}

// RemoveAllChildren detaches every child.
func (n *Node) RemoveAllChildren() error {
	if err := n.live(); err != nil {
		return err
	}
	n.b.tab.NodeRemoveAllChildren(n.ref)
	return n.b.drain()
}

// Child returns the child at index, or nil when index is out of range.
func (n *Node) Child(index int) (*Node, error) {
	if err := n.live(); err != nil {
		return nil, err
	}
	if index < 0 {
		return nil, nil
	}
	return n.wrapper(n.b.tab.NodeGetChild(n.ref, uint(index)))
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() (int, error) {
	if err := n.live(); err != nil {
		return 0, err
	}
	return int(n.b.tab.NodeGetChildCount(n.ref)), nil
}

// Parent returns the owning node, or nil for a root.
func (n *Node) Parent() (*Node, error) {
	if err := n.live(); err != nil {
		return nil, err
	}
	return n.wrapper(n.b.tab.NodeGetParent(n.ref))
}

// wrapper returns the canonical Node for ref.
func (n *Node) wrapper(ref native.NodeRef) (*Node, error) {
	if ref == 0 {
		return nil, nil
	}
	s := n.b.lookup(ref)
	if s == nil {
		return nil, errors.New(errors.ErrCodeInternal, "engine returned unknown node handle %#x", uintptr(ref))
	}
	return s.node, nil
}

// Layout

// CalculateLayout lays out the tree rooted at n within the available width
// and height. Pass Unconstrained for an axis without a limit. Measure and
// baseline callbacks run synchronously on the calling goroutine and must not
// call CalculateLayout themselves.
func (n *Node) CalculateLayout(width, height float32, direction Direction) (err error) {
	if err := n.live(); err != nil {
		return err
	}
	release := n.b.ret.enter()
	defer release()

	hooks := observability.Layout()
	hooks.OnLayoutStart(uintptr(n.ref), width, height)
	start := time.Now()
	defer func() {
		hooks.OnLayoutComplete(uintptr(n.ref), time.Since(start), err)
	}()

	n.b.tab.NodeCalculateLayout(n.ref, width, height, int32(direction))
	n.b.redirty()
	return n.b.drain()
}

// MarkDirty forces a measured leaf to be measured again on the next pass.
// On a node without a measure function it does nothing.
func (n *Node) MarkDirty() error {
	if err := n.live(); err != nil {
		return err
	}
	if s := n.b.lookup(n.ref); s == nil || s.measure == nil {
		return nil
	}
	n.b.tab.NodeMarkDirty(n.ref)
	return n.b.drain()
}

// IsDirty reports whether the node needs layout.
func (n *Node) IsDirty() (bool, error) {
	if err := n.live(); err != nil {
		return false, err
	}
	return n.b.tab.NodeIsDirty(n.ref), nil
}

// HasNewLayout reports whether the last pass changed this node's layout and
// it has not been acknowledged with MarkLayoutSeen.
func (n *Node) HasNewLayout() (bool, error) {
	if err := n.live(); err != nil {
		return false, err
	}
	return n.b.tab.NodeGetHasNewLayout(n.ref), nil
}

// MarkLayoutSeen clears the new-layout flag.
func (n *Node) MarkLayoutSeen() error {
	if err := n.live(); err != nil {
		return err
	}
	n.b.tab.NodeSetHasNewLayout(n.ref, false)
	return nil
}

// Callbacks

// SetMeasureFunc registers fn as the node's measure function, replacing any
// previous one. A nil fn unsets it. Nodes with a measure function cannot
// have children.
func (n *Node) SetMeasureFunc(fn MeasureFunc) error {
	if err := n.live(); err != nil {
		return err
	}
	n.UnsetMeasureFunc()
	if fn == nil {
		return nil
	}
	n.b.update(n.ref, func(s *slot) { s.measure = fn })
	n.b.tab.NodeSetMeasureFunc(n.ref, n.b.measureThunk)
	return nil
}

// UnsetMeasureFunc removes the measure function. It is a no-op on a freed
// node.
func (n *Node) UnsetMeasureFunc() {
	if n.state.freed {
		return
	}
	n.b.update(n.ref, func(s *slot) { s.measure = nil })
	n.b.tab.NodeSetMeasureFunc(n.ref, 0)
}

// HasMeasureFunc reports whether a measure function is registered.
func (n *Node) HasMeasureFunc() (bool, error) {
	if err := n.live(); err != nil {
		return false, err
	}
	return n.b.tab.NodeHasMeasureFunc(n.ref), nil
}

// SetBaselineFunc registers fn as the node's baseline function, replacing
// any previous one. A nil fn unsets it.
func (n *Node) SetBaselineFunc(fn BaselineFunc) error {
	if err := n.live(); err != nil {
		return err
	}
	n.UnsetBaselineFunc()
	if fn == nil {
		return nil
	}
	n.b.update(n.ref, func(s *slot) { s.baseline = fn })
	n.b.tab.NodeSetBaselineFunc(n.ref, n.b.baselineThunk)
	return nil
}

// UnsetBaselineFunc removes the baseline function. It is a no-op on a freed
// node.
func (n *Node) UnsetBaselineFunc() {
	if n.state.freed {
		return
	}
	n.b.update(n.ref, func(s *slot) { s.baseline = nil })
	n.b.tab.NodeSetBaselineFunc(n.ref, 0)
}

// HasBaselineFunc reports whether a baseline function is registered.
func (n *Node) HasBaselineFunc() (bool, error) {
	if err := n.live(); err != nil {
		return false, err
	}
	return n.b.tab.NodeHasBaselineFunc(n.ref), nil
}

// SetDirtiedFunc registers fn to run whenever the node goes from clean to
// dirty. A nil fn unsets it.
func (n *Node) SetDirtiedFunc(fn DirtiedFunc) error {
	if err := n.live(); err != nil {
		return err
	}
	n.UnsetDirtiedFunc()
	if fn == nil {
		return nil
	}
	n.b.update(n.ref, func(s *slot) { s.dirtied = fn })
	n.b.tab.NodeSetDirtiedFunc(n.ref, n.b.dirtiedThunk)
	return nil
}

// UnsetDirtiedFunc removes the dirtied callback. It is a no-op on a freed
// node.
func (n *Node) UnsetDirtiedFunc() {
	if n.state.freed {
		return
	}
	n.b.update(n.ref, func(s *slot) { s.dirtied = nil })
	n.b.tab.NodeSetDirtiedFunc(n.ref, 0)
}

// HasDirtiedFunc reports whether a dirtied callback is registered.
func (n *Node) HasDirtiedFunc() (bool, error) {
	if err := n.live(); err != nil {
		return false, err
	}
	s := n.b.lookup(n.ref)
	return s != nil && s.dirtied != nil, nil
}
