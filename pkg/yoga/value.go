package yoga

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/yogabind/pkg/errors"
	"github.com/matzehuels/yogabind/pkg/native"
)

// Unconstrained passed to CalculateLayout leaves that axis without an
// available size. It is the engine's NaN sentinel and unrelated to the auto
// unit.
var Unconstrained = float32(math.NaN())

// Value is a style value: a magnitude tagged with a unit. The magnitude is NaN
// unless the unit is UnitPoint or UnitPercent.
type Value struct {
	Unit  Unit
	Value float32
}

// Points returns a point value.
func Points(v float32) Value { return Value{Unit: UnitPoint, Value: v} }

// Percent returns a percentage value.
func Percent(v float32) Value { return Value{Unit: UnitPercent, Value: v} }

// Auto returns the auto value.
func Auto() Value { return Value{Unit: UnitAuto, Value: Unconstrained} }

// Undefined returns the value that resets a property to its default.
func Undefined() Value { return Value{Unit: UnitUndefined, Value: Unconstrained} }

// IsUndefined reports whether v carries no value.
func (v Value) IsUndefined() bool { return v.Unit == UnitUndefined }

// Equal compares two values, treating the magnitude of unitless values as
// irrelevant.
func (v Value) Equal(o Value) bool {
	if v.Unit != o.Unit {
		return false
	}
	if v.Unit == UnitPoint || v.Unit == UnitPercent {
		return v.Value == o.Value
	}
	return true
}

// String renders v the way ParseValue reads it.
func (v Value) String() string {
	switch v.Unit {
	case UnitPoint:
		return formatFloat(v.Value)
	case UnitPercent:
		return formatFloat(v.Value) + "%"
	case UnitAuto:
		return "auto"
	}
	return "undefined"
}

// MarshalText implements encoding.TextMarshaler.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Value) UnmarshalText(b []byte) error {
	parsed, err := ParseValue(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

// ParseValue parses "auto", "undefined", "N%" and plain numbers.
func ParseValue(s string) (Value, error) {
	t := strings.TrimSpace(s)
	switch strings.ToLower(t) {
	case "auto":
		return Auto(), nil
	case "undefined":
		return Undefined(), nil
	case "":
		return Value{}, errors.New(errors.ErrCodeInvalidStyleInput, "empty style value")
	}
	if rest, ok := strings.CutSuffix(t, "%"); ok {
		f, err := parseMagnitude(rest)
		if err != nil {
			return Value{}, errors.Wrap(errors.ErrCodeInvalidStyleInput, err, "invalid percentage %q", s)
		}
		return Percent(f), nil
	}
	f, err := parseMagnitude(t)
	if err != nil {
		return Value{}, errors.Wrap(errors.ErrCodeInvalidStyleInput, err, "invalid style value %q", s)
	}
	return Points(f), nil
}

func parseMagnitude(s string) (float32, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, err
	}
	return checkMagnitude(f)
}

func checkMagnitude(f float64) (float32, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxFloat32 {
		return 0, errors.New(errors.ErrCodeInvalidStyleInput, "magnitude %v is not finite", f)
	}
	return float32(f), nil
}

// Encode converts a dynamically typed style input into a Value:
//
//	nil           -> Undefined
//	"auto"        -> Auto
//	"50%"         -> Percent(50)
//	10, "10", 1.5 -> Points
//
// Anything else fails with INVALID_STYLE_INPUT.
func Encode(input any) (Value, error) {
	switch v := input.(type) {
	case nil:
		return Undefined(), nil
	case Value:
		return v, nil
	case *Value:
		if v == nil {
			return Undefined(), nil
		}
		return *v, nil
	case string:
		return ParseValue(v)
	case json.Number:
		return ParseValue(v.String())
	case float32:
		f, err := checkMagnitude(float64(v))
		return Points(f), err
	case float64:
		f, err := checkMagnitude(v)
		return Points(f), err
	case int:
		return Points(float32(v)), nil
	case int8:
		return Points(float32(v)), nil
	case int16:
		return Points(float32(v)), nil
	case int32:
		return Points(float32(v)), nil
	case int64:
		return Points(float32(v)), nil
	case uint:
		return Points(float32(v)), nil
	case uint8:
		return Points(float32(v)), nil
	case uint16:
		return Points(float32(v)), nil
	case uint32:
		return Points(float32(v)), nil
	case uint64:
		return Points(float32(v)), nil
	}
	return Value{}, errors.New(errors.ErrCodeInvalidStyleInput, "unsupported style input of type %T", input)
}

func fromNative(v native.Value) Value {
	out := Value{Unit: Unit(v.Unit), Value: v.Value}
	if out.Unit != UnitPoint && out.Unit != UnitPercent {
		out.Value = Unconstrained
	}
	return out
}

// valueSetters are the per-unit entry points of one style property. A nil
// setter means the property does not accept that unit.
type valueSetters struct {
	name    string
	point   func(float32)
	percent func(float32)
	auto    func()
}

// apply dispatches v to the entry point matching its unit.
func (s valueSetters) apply(v Value) error {
	switch v.Unit {
	case UnitUndefined:
		s.point(Unconstrained)
		return nil
	case UnitPoint:
		if _, err := checkMagnitude(float64(v.Value)); err != nil {
			return err
		}
		s.point(v.Value)
		return nil
	case UnitPercent:
		if s.percent == nil {
			return errors.New(errors.ErrCodeInvalidStyleInput, "%s does not accept percentages", s.name)
		}
		if _, err := checkMagnitude(float64(v.Value)); err != nil {
			return err
		}
		s.percent(v.Value)
		return nil
	case UnitAuto:
		if s.auto == nil {
			return errors.New(errors.ErrCodeInvalidStyleInput, "%s does not accept auto", s.name)
		}
		s.auto()
		return nil
	}
	return errors.New(errors.ErrCodeInvalidStyleInput, "unknown unit %d for %s", v.Unit, s.name)
}
