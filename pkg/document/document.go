package document

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/yogabind/pkg/errors"
)

// Format is a document encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat parses a format name or file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown document format %q", s)
}

// FormatOf infers the format from a file extension.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Document is a layout request: a node tree and the space to lay it out in.
type Document struct {
	Width     any         `toml:"width" yaml:"width" json:"width,omitempty"`
	Height    any         `toml:"height" yaml:"height" json:"height,omitempty"`
	Direction string      `toml:"direction" yaml:"direction" json:"direction,omitempty"`
	Config    *ConfigSpec `toml:"config" yaml:"config" json:"config,omitempty"`
	Root      NodeSpec    `toml:"root" yaml:"root" json:"root"`
}

// ConfigSpec configures the engine config shared by every node.
type ConfigSpec struct {
	WebDefaults      bool     `toml:"web_defaults" yaml:"web_defaults" json:"web_defaults,omitempty"`
	PointScaleFactor *float32 `toml:"point_scale_factor" yaml:"point_scale_factor" json:"point_scale_factor,omitempty"`
	Errata           []string `toml:"errata" yaml:"errata" json:"errata,omitempty"`
	Experimental     []string `toml:"experimental" yaml:"experimental" json:"experimental,omitempty"`
}

// NodeSpec describes one node and its subtree.
type NodeSpec struct {
	Name string `toml:"name" yaml:"name" json:"name,omitempty"`

	Direction      string `toml:"direction" yaml:"direction" json:"direction,omitempty"`
	FlexDirection  string `toml:"flex_direction" yaml:"flex_direction" json:"flex_direction,omitempty"`
	JustifyContent string `toml:"justify_content" yaml:"justify_content" json:"justify_content,omitempty"`
	AlignContent   string `toml:"align_content" yaml:"align_content" json:"align_content,omitempty"`
	AlignItems     string `toml:"align_items" yaml:"align_items" json:"align_items,omitempty"`
	AlignSelf      string `toml:"align_self" yaml:"align_self" json:"align_self,omitempty"`
	PositionType   string `toml:"position_type" yaml:"position_type" json:"position_type,omitempty"`
	FlexWrap       string `toml:"flex_wrap" yaml:"flex_wrap" json:"flex_wrap,omitempty"`
	Overflow       string `toml:"overflow" yaml:"overflow" json:"overflow,omitempty"`
	Display        string `toml:"display" yaml:"display" json:"display,omitempty"`
	BoxSizing      string `toml:"box_sizing" yaml:"box_sizing" json:"box_sizing,omitempty"`

	Flex        *float32 `toml:"flex" yaml:"flex" json:"flex,omitempty"`
	FlexGrow    *float32 `toml:"flex_grow" yaml:"flex_grow" json:"flex_grow,omitempty"`
	FlexShrink  *float32 `toml:"flex_shrink" yaml:"flex_shrink" json:"flex_shrink,omitempty"`
	AspectRatio *float32 `toml:"aspect_ratio" yaml:"aspect_ratio" json:"aspect_ratio,omitempty"`

	FlexBasis any `toml:"flex_basis" yaml:"flex_basis" json:"flex_basis,omitempty"`
	Width     any `toml:"width" yaml:"width" json:"width,omitempty"`
	Height    any `toml:"height" yaml:"height" json:"height,omitempty"`
	MinWidth  any `toml:"min_width" yaml:"min_width" json:"min_width,omitempty"`
	MinHeight any `toml:"min_height" yaml:"min_height" json:"min_height,omitempty"`
	MaxWidth  any `toml:"max_width" yaml:"max_width" json:"max_width,omitempty"`
	MaxHeight any `toml:"max_height" yaml:"max_height" json:"max_height,omitempty"`

	Margin   map[string]any `toml:"margin" yaml:"margin" json:"margin,omitempty"`
	Position map[string]any `toml:"position" yaml:"position" json:"position,omitempty"`
	Padding  map[string]any `toml:"padding" yaml:"padding" json:"padding,omitempty"`
	Border   map[string]any `toml:"border" yaml:"border" json:"border,omitempty"`
	Gap      map[string]any `toml:"gap" yaml:"gap" json:"gap,omitempty"`

	Measure  *MeasureSpec `toml:"measure" yaml:"measure" json:"measure,omitempty"`
	Baseline *float32     `toml:"baseline" yaml:"baseline" json:"baseline,omitempty"`

	Children []NodeSpec `toml:"children" yaml:"children" json:"children,omitempty"`
}

// MeasureSpec is the intrinsic size of a measured leaf.
type MeasureSpec struct {
	Width  float32 `toml:"width" yaml:"width" json:"width"`
	Height float32 `toml:"height" yaml:"height" json:"height"`
}

// Read decodes a document from r. Unknown keys are rejected.
func Read(r io.Reader, f Format) (*Document, error) {
	var doc Document
	switch f {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode yaml")
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown document format %q", f)
	}
	return &doc, nil
}

// Load reads a document file, inferring the format from its extension.
func Load(path string) (*Document, error) {
	if err := errors.ValidateDocumentPath(path); err != nil {
		return nil, err
	}
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "document %s not found", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	return Read(file, f)
}
