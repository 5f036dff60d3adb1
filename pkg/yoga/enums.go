package yoga

import (
	"strings"

	"github.com/matzehuels/yogabind/pkg/errors"
)

// Align controls cross-axis alignment of items and lines.
type Align int32

const (
	AlignAuto Align = iota
	AlignFlexStart
	AlignCenter
	AlignFlexEnd
	AlignStretch
	AlignBaseline
	AlignSpaceBetween
	AlignSpaceAround
	AlignSpaceEvenly
)

var alignNames = []string{"auto", "flex-start", "center", "flex-end", "stretch", "baseline", "space-between", "space-around", "space-evenly"}

func (a Align) String() string { return enumName(alignNames, int(a)) }

// ParseAlign parses names like "flex-start", "flexStart" or "FLEX_START".
func ParseAlign(s string) (Align, error) {
	i, err := parseEnum("align", alignNames, s)
	return Align(i), err
}

// BoxSizing selects whether dimensions include padding and border.
type BoxSizing int32

const (
	BoxSizingBorderBox BoxSizing = iota
	BoxSizingContentBox
)

var boxSizingNames = []string{"border-box", "content-box"}

func (b BoxSizing) String() string { return enumName(boxSizingNames, int(b)) }

func ParseBoxSizing(s string) (BoxSizing, error) {
	i, err := parseEnum("box sizing", boxSizingNames, s)
	return BoxSizing(i), err
}

// Dimension selects width or height.
type Dimension int32

const (
	DimensionWidth Dimension = iota
	DimensionHeight
)

var dimensionNames = []string{"width", "height"}

func (d Dimension) String() string { return enumName(dimensionNames, int(d)) }

func ParseDimension(s string) (Dimension, error) {
	i, err := parseEnum("dimension", dimensionNames, s)
	return Dimension(i), err
}

// Direction is the inline text direction.
type Direction int32

const (
	DirectionInherit Direction = iota
	DirectionLTR
	DirectionRTL
)

var directionNames = []string{"inherit", "ltr", "rtl"}

func (d Direction) String() string { return enumName(directionNames, int(d)) }

func ParseDirection(s string) (Direction, error) {
	i, err := parseEnum("direction", directionNames, s)
	return Direction(i), err
}

// Display controls whether a node takes part in layout.
type Display int32

const (
	DisplayFlex Display = iota
	DisplayNone
	DisplayContents
)

var displayNames = []string{"flex", "none", "contents"}

func (d Display) String() string { return enumName(displayNames, int(d)) }

func ParseDisplay(s string) (Display, error) {
	i, err := parseEnum("display", displayNames, s)
	return Display(i), err
}

// Edge addresses one or more sides of a box.
type Edge int32

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
	EdgeStart
	EdgeEnd
	EdgeHorizontal
	EdgeVertical
	EdgeAll
)

var edgeNames = []string{"left", "top", "right", "bottom", "start", "end", "horizontal", "vertical", "all"}

func (e Edge) String() string { return enumName(edgeNames, int(e)) }

func ParseEdge(s string) (Edge, error) {
	i, err := parseEnum("edge", edgeNames, s)
	return Edge(i), err
}

// PhysicalEdges are the edges computed layout can be queried for directly.
var PhysicalEdges = []Edge{EdgeLeft, EdgeTop, EdgeRight, EdgeBottom}

func (e Edge) valid() bool { return e >= EdgeLeft && e <= EdgeAll }

// Errata is a bit-set of legacy layout behaviors to keep.
type Errata int32

const (
	ErrataNone                                         Errata = 0
	ErrataStretchFlexBasis                             Errata = 1
	ErrataAbsolutePositionWithoutInsetsExcludesPadding Errata = 2
	ErrataAbsolutePercentAgainstInnerSize              Errata = 4
	ErrataAll                                          Errata = 2147483647
	ErrataClassic                                      Errata = 2147483646
)

var errataNames = []struct {
	name string
	bit  Errata
}{
	{"stretch-flex-basis", ErrataStretchFlexBasis},
	{"absolute-position-without-insets-excludes-padding", ErrataAbsolutePositionWithoutInsetsExcludesPadding},
	{"absolute-percent-against-inner-size", ErrataAbsolutePercentAgainstInnerSize},
}

// Has reports whether every bit of flag is set in e.
func (e Errata) Has(flag Errata) bool {
	return e&flag == flag
}

func (e Errata) String() string {
	switch e {
	case ErrataNone:
		return "none"
	case ErrataAll:
		return "all"
	case ErrataClassic:
		return "classic"
	}
	var parts []string
	for _, n := range errataNames {
		if e.Has(n.bit) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "|")
}

// ParseErrata parses one errata name, or several joined with '|'.
func ParseErrata(s string) (Errata, error) {
	var out Errata
	for _, part := range strings.Split(s, "|") {
		key := normalizeEnum(part)
		switch key {
		case "none":
			continue
		case "all":
			out |= ErrataAll
			continue
		case "classic":
			out |= ErrataClassic
			continue
		}
		found := false
		for _, n := range errataNames {
			if normalizeEnum(n.name) == key {
				out |= n.bit
				found = true
				break
			}
		}
		if !found {
			return ErrataNone, errors.New(errors.ErrCodeInvalidStyleInput, "unknown errata %q", part)
		}
	}
	return out, nil
}

// ExperimentalFeature names an opt-in engine behavior.
type ExperimentalFeature int32

const (
	ExperimentalFeatureWebFlexBasis ExperimentalFeature = iota
)

var experimentalFeatureNames = []string{"web-flex-basis"}

func (f ExperimentalFeature) String() string { return enumName(experimentalFeatureNames, int(f)) }

func ParseExperimentalFeature(s string) (ExperimentalFeature, error) {
	i, err := parseEnum("experimental feature", experimentalFeatureNames, s)
	return ExperimentalFeature(i), err
}

// FlexDirection is the main axis of a container.
type FlexDirection int32

const (
	FlexDirectionColumn FlexDirection = iota
	FlexDirectionColumnReverse
	FlexDirectionRow
	FlexDirectionRowReverse
)

var flexDirectionNames = []string{"column", "column-reverse", "row", "row-reverse"}

func (d FlexDirection) String() string { return enumName(flexDirectionNames, int(d)) }

func ParseFlexDirection(s string) (FlexDirection, error) {
	i, err := parseEnum("flex direction", flexDirectionNames, s)
	return FlexDirection(i), err
}

// Gutter selects which gap a value applies to.
type Gutter int32

const (
	GutterColumn Gutter = iota
	GutterRow
	GutterAll
)

var gutterNames = []string{"column", "row", "all"}

func (g Gutter) String() string { return enumName(gutterNames, int(g)) }

func ParseGutter(s string) (Gutter, error) {
	i, err := parseEnum("gutter", gutterNames, s)
	return Gutter(i), err
}

func (g Gutter) valid() bool { return g >= GutterColumn && g <= GutterAll }

// Justify distributes items along the main axis.
type Justify int32

const (
	JustifyFlexStart Justify = iota
	JustifyCenter
	JustifyFlexEnd
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

var justifyNames = []string{"flex-start", "center", "flex-end", "space-between", "space-around", "space-evenly"}

func (j Justify) String() string { return enumName(justifyNames, int(j)) }

func ParseJustify(s string) (Justify, error) {
	i, err := parseEnum("justify", justifyNames, s)
	return Justify(i), err
}

// LogLevel is the severity of a binding log line.
type LogLevel int32

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
	LogLevelVerbose
	LogLevelFatal
)

var logLevelNames = []string{"error", "warn", "info", "debug", "verbose", "fatal"}

func (l LogLevel) String() string { return enumName(logLevelNames, int(l)) }

func ParseLogLevel(s string) (LogLevel, error) {
	i, err := parseEnum("log level", logLevelNames, s)
	return LogLevel(i), err
}

// MeasureMode tells a measure callback how to treat an available size.
type MeasureMode int32

const (
	// MeasureModeUndefined means the size is unconstrained.
	MeasureModeUndefined MeasureMode = iota
	// MeasureModeExactly means the result must equal the size.
	MeasureModeExactly
	// MeasureModeAtMost means the result must not exceed the size.
	MeasureModeAtMost
)

var measureModeNames = []string{"undefined", "exactly", "at-most"}

func (m MeasureMode) String() string { return enumName(measureModeNames, int(m)) }

func ParseMeasureMode(s string) (MeasureMode, error) {
	i, err := parseEnum("measure mode", measureModeNames, s)
	return MeasureMode(i), err
}

// NodeType distinguishes text leaves from ordinary nodes.
type NodeType int32

const (
	NodeTypeDefault NodeType = iota
	NodeTypeText
)

var nodeTypeNames = []string{"default", "text"}

func (t NodeType) String() string { return enumName(nodeTypeNames, int(t)) }

func ParseNodeType(s string) (NodeType, error) {
	i, err := parseEnum("node type", nodeTypeNames, s)
	return NodeType(i), err
}

// Overflow controls how children that exceed the box are treated.
type Overflow int32

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
)

var overflowNames = []string{"visible", "hidden", "scroll"}

func (o Overflow) String() string { return enumName(overflowNames, int(o)) }

func ParseOverflow(s string) (Overflow, error) {
	i, err := parseEnum("overflow", overflowNames, s)
	return Overflow(i), err
}

// PositionType selects how insets apply.
type PositionType int32

const (
	PositionTypeStatic PositionType = iota
	PositionTypeRelative
	PositionTypeAbsolute
)

var positionTypeNames = []string{"static", "relative", "absolute"}

func (p PositionType) String() string { return enumName(positionTypeNames, int(p)) }

func ParsePositionType(s string) (PositionType, error) {
	i, err := parseEnum("position type", positionTypeNames, s)
	return PositionType(i), err
}

// Unit tags a style magnitude.
type Unit int32

const (
	UnitUndefined Unit = iota
	UnitPoint
	UnitPercent
	UnitAuto
)

var unitNames = []string{"undefined", "point", "percent", "auto"}

func (u Unit) String() string { return enumName(unitNames, int(u)) }

func ParseUnit(s string) (Unit, error) {
	i, err := parseEnum("unit", unitNames, s)
	return Unit(i), err
}

// Wrap controls whether items wrap onto multiple lines.
type Wrap int32

const (
	WrapNoWrap Wrap = iota
	WrapWrap
	WrapWrapReverse
)

var wrapNames = []string{"no-wrap", "wrap", "wrap-reverse"}

func (w Wrap) String() string { return enumName(wrapNames, int(w)) }

func ParseWrap(s string) (Wrap, error) {
	i, err := parseEnum("wrap", wrapNames, s)
	return Wrap(i), err
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "unknown"
	}
	return names[i]
}

// normalizeEnum folds case and drops separators so "flex-start",
// "flexStart" and "FLEX_START" compare equal.
func normalizeEnum(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch r {
		case '-', '_', ' ':
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

func parseEnum(kind string, names []string, s string) (int, error) {
	key := normalizeEnum(s)
	for i, name := range names {
		if normalizeEnum(name) == key {
			return i, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidStyleInput, "unknown %s %q", kind, s)
}
