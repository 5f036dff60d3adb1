package document

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/matzehuels/yogabind/pkg/errors"
	"github.com/matzehuels/yogabind/pkg/yoga"
)

// Tree is a built document: live yoga nodes plus the layout parameters. Free
// it when done.
type Tree struct {
	Root   *yoga.Node
	Config *yoga.Config

	width     float32
	height    float32
	direction yoga.Direction

	names  map[*yoga.Node]string
	byName map[string]*yoga.Node
}

// Build creates the nodes described by doc on b, or on the process binding
// when b is nil. Nothing is leaked on failure.
func Build(b *yoga.Binding, doc *Document) (*Tree, error) {
	if b == nil {
		b = yoga.Default()
	}
	t := &Tree{
		names:     make(map[*yoga.Node]string),
		byName:    make(map[string]*yoga.Node),
		direction: yoga.DirectionLTR,
	}

	var err error
	if t.width, err = availableSize(doc.Width, "width"); err != nil {
		return nil, err
	}
	if t.height, err = availableSize(doc.Height, "height"); err != nil {
		return nil, err
	}
	if doc.Direction != "" {
		if t.direction, err = yoga.ParseDirection(doc.Direction); err != nil {
			return nil, err
		}
	}

	if doc.Config != nil {
		if t.Config, err = buildConfig(b, doc.Config); err != nil {
			return nil, err
		}
	}

	t.Root, err = t.build(b, &doc.Root, "0")
	if err != nil {
		if t.Config != nil {
			_ = t.Config.Free()
		}
		return nil, err
	}
	return t, nil
}

// availableSize reads a top-level width or height: points, "auto" or absent.
func availableSize(in any, field string) (float32, error) {
	v, err := yoga.Encode(in)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidDocument, err, "document %s", field)
	}
	switch v.Unit {
	case yoga.UnitUndefined, yoga.UnitAuto:
		return yoga.Unconstrained, nil
	case yoga.UnitPoint:
		return v.Value, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidDocument, "document %s must be a number or \"auto\", got %v", field, v)
}

func buildConfig(b *yoga.Binding, spec *ConfigSpec) (*yoga.Config, error) {
	cfg, err := b.NewConfig()
	if err != nil {
		return nil, err
	}
	if err := applyConfig(cfg, spec); err != nil {
		_ = cfg.Free()
		return nil, err
	}
	return cfg, nil
}

func applyConfig(cfg *yoga.Config, spec *ConfigSpec) error {
	if err := cfg.SetUseWebDefaults(spec.WebDefaults); err != nil {
		return err
	}
	if spec.PointScaleFactor != nil {
		if err := cfg.SetPointScaleFactor(*spec.PointScaleFactor); err != nil {
			return err
		}
	}
	if len(spec.Errata) > 0 {
		errata, err := yoga.ParseErrata(strings.Join(spec.Errata, "|"))
		if err != nil {
			return err
		}
		if err := cfg.SetErrata(errata); err != nil {
			return err
		}
	}
	for _, name := range spec.Experimental {
		feature, err := yoga.ParseExperimentalFeature(name)
		if err != nil {
			return err
		}
		if err := cfg.SetExperimentalFeatureEnabled(feature, true); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree) build(b *yoga.Binding, spec *NodeSpec, path string) (*yoga.Node, error) {
	name := spec.Name
	if name == "" {
		name = "node-" + path
	}
	if err := errors.ValidateNodeName(name); err != nil {
		return nil, err
	}
	if _, dup := t.byName[name]; dup {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "duplicate node name %q", name)
	}
	if spec.Measure != nil && len(spec.Children) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "node %q: measured nodes cannot have children", name)
	}

	n, err := b.NewNodeWithConfig(t.Config)
	if err != nil {
		return nil, err
	}
	t.names[n] = name
	t.byName[name] = n

	if err := applyStyle(n, spec); err != nil {
		n.FreeRecursive()
		return nil, fmt.Errorf("node %s: %w", name, err)
	}
	for i := range spec.Children {
		child, err := t.build(b, &spec.Children[i], path+"."+strconv.Itoa(i))
		if err != nil {
			n.FreeRecursive()
			return nil, err
		}
		if err := n.InsertChild(child, i); err != nil {
			child.FreeRecursive()
			n.FreeRecursive()
			return nil, err
		}
	}
	return n, nil
}

func applyStyle(n *yoga.Node, s *NodeSpec) error {
	steps := []func() error{
		func() error { return setEnum(s.Direction, yoga.ParseDirection, n.SetDirection) },
		func() error { return setEnum(s.FlexDirection, yoga.ParseFlexDirection, n.SetFlexDirection) },
		func() error { return setEnum(s.JustifyContent, yoga.ParseJustify, n.SetJustifyContent) },
		func() error { return setEnum(s.AlignContent, yoga.ParseAlign, n.SetAlignContent) },
		func() error { return setEnum(s.AlignItems, yoga.ParseAlign, n.SetAlignItems) },
		func() error { return setEnum(s.AlignSelf, yoga.ParseAlign, n.SetAlignSelf) },
		func() error { return setEnum(s.PositionType, yoga.ParsePositionType, n.SetPositionType) },
		func() error { return setEnum(s.FlexWrap, yoga.ParseWrap, n.SetFlexWrap) },
		func() error { return setEnum(s.Overflow, yoga.ParseOverflow, n.SetOverflow) },
		func() error { return setEnum(s.Display, yoga.ParseDisplay, n.SetDisplay) },
		func() error { return setEnum(s.BoxSizing, yoga.ParseBoxSizing, n.SetBoxSizing) },

		func() error { return setScalar(s.Flex, n.SetFlex) },
		func() error { return setScalar(s.FlexGrow, n.SetFlexGrow) },
		func() error { return setScalar(s.FlexShrink, n.SetFlexShrink) },
		func() error { return setScalar(s.AspectRatio, n.SetAspectRatio) },

		func() error { return setValue(s.FlexBasis, n.SetFlexBasis) },
		func() error { return setValue(s.Width, n.SetWidth) },
		func() error { return setValue(s.Height, n.SetHeight) },
		func() error { return setValue(s.MinWidth, n.SetMinWidth) },
		func() error { return setValue(s.MinHeight, n.SetMinHeight) },
		func() error { return setValue(s.MaxWidth, n.SetMaxWidth) },
		func() error { return setValue(s.MaxHeight, n.SetMaxHeight) },

		func() error { return setEdges(s.Margin, n.SetMargin) },
		func() error { return setEdges(s.Position, n.SetPosition) },
		func() error { return setEdges(s.Padding, n.SetPadding) },
		func() error { return setEdges(s.Border, func(e yoga.Edge, v yoga.Value) error { return setBorder(n, e, v) }) },
		func() error { return setGaps(s.Gap, n.SetGap) },

		func() error { return setMeasure(n, s.Measure) },
		func() error { return setBaseline(n, s.Baseline) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func setEnum[T any](name string, parse func(string) (T, error), set func(T) error) error {
	if name == "" {
		return nil
	}
	v, err := parse(name)
	if err != nil {
		return err
	}
	return set(v)
}

func setScalar(f *float32, set func(float32) error) error {
	if f == nil {
		return nil
	}
	return set(*f)
}

func setValue(in any, set func(yoga.Value) error) error {
	if in == nil {
		return nil
	}
	v, err := yoga.Encode(in)
	if err != nil {
		return err
	}
	return set(v)
}

// sortedKeys keeps application order stable across formats.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func setEdges(m map[string]any, set func(yoga.Edge, yoga.Value) error) error {
	for _, key := range sortedKeys(m) {
		edge, err := yoga.ParseEdge(key)
		if err != nil {
			return err
		}
		v, err := yoga.Encode(m[key])
		if err != nil {
			return err
		}
		if err := set(edge, v); err != nil {
			return err
		}
	}
	return nil
}

func setBorder(n *yoga.Node, edge yoga.Edge, v yoga.Value) error {
	switch v.Unit {
	case yoga.UnitPoint:
		return n.SetBorder(edge, v.Value)
	case yoga.UnitUndefined:
		return n.SetBorder(edge, yoga.Unconstrained)
	}
	return errors.New(errors.ErrCodeInvalidStyleInput, "border takes points, got %v", v)
}

func setGaps(m map[string]any, set func(yoga.Gutter, yoga.Value) error) error {
	for _, key := range sortedKeys(m) {
		gutter, err := yoga.ParseGutter(key)
		if err != nil {
			return err
		}
		v, err := yoga.Encode(m[key])
		if err != nil {
			return err
		}
		if err := set(gutter, v); err != nil {
			return err
		}
	}
	return nil
}

func setMeasure(n *yoga.Node, spec *MeasureSpec) error {
	if spec == nil {
		return nil
	}
	return n.SetMeasureFunc(FixedMeasure(spec.Width, spec.Height))
}

func setBaseline(n *yoga.Node, offset *float32) error {
	if offset == nil {
		return nil
	}
	b := *offset
	return n.SetBaselineFunc(func(_, _ float32) float32 { return b })
}

// FixedMeasure returns a measure function for content of a fixed intrinsic
// size: the size is used as is when unconstrained, clamped under AtMost and
// replaced by the available size under Exactly.
func FixedMeasure(width, height float32) yoga.MeasureFunc {
	return func(w float32, wm yoga.MeasureMode, h float32, hm yoga.MeasureMode) yoga.Size {
		return yoga.Size{Width: fit(width, w, wm), Height: fit(height, h, hm)}
	}
}

func fit(want, avail float32, mode yoga.MeasureMode) float32 {
	switch mode {
	case yoga.MeasureModeExactly:
		return avail
	case yoga.MeasureModeAtMost:
		return min(want, avail)
	}
	return want
}

// Layout computes the layout of the tree.
func (t *Tree) Layout() error {
	return t.Root.CalculateLayout(t.width, t.height, t.direction)
}

// Name returns the document name of n.
func (t *Tree) Name(n *yoga.Node) string {
	return t.names[n]
}

// Node looks a node up by name.
func (t *Tree) Node(name string) (*yoga.Node, bool) {
	n, ok := t.byName[name]
	return n, ok
}

// Free releases every node and the config.
func (t *Tree) Free() error {
	if t.Root != nil {
		t.Root.FreeRecursive()
	}
	if t.Config != nil {
		return t.Config.Free()
	}
	return nil
}

// Layout builds doc, lays it out and returns the result, releasing all nodes
// before returning.
func Layout(b *yoga.Binding, doc *Document) (res *Result, err error) {
	t, err := Build(b, doc)
	if err != nil {
		return nil, err
	}
	defer func() {
		if ferr := t.Free(); err == nil {
			err = ferr
		}
	}()
	if err := t.Layout(); err != nil {
		return nil, err
	}
	return t.Result()
}
