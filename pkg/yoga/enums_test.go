package yoga

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/yogabind/pkg/errors"
)

func TestEnumCodes(t *testing.T) {
	assert.EqualValues(t, 8, AlignSpaceEvenly)
	assert.EqualValues(t, 5, JustifySpaceEvenly)
	assert.EqualValues(t, 2, DisplayContents)
	assert.EqualValues(t, 8, EdgeAll)
	assert.EqualValues(t, 3, FlexDirectionRowReverse)
	assert.EqualValues(t, 2, GutterAll)
	assert.EqualValues(t, 5, LogLevelFatal)
	assert.EqualValues(t, 2, MeasureModeAtMost)
	assert.EqualValues(t, 2, PositionTypeAbsolute)
	assert.EqualValues(t, 3, UnitAuto)
	assert.EqualValues(t, 2, WrapWrapReverse)
	assert.EqualValues(t, 2147483646, ErrataClassic)
}

func TestParseEnumSpellings(t *testing.T) {
	for _, s := range []string{"flex-start", "flexStart", "FLEX_START", " FlexStart "} {
		a, err := ParseAlign(s)
		require.NoError(t, err, s)
		assert.Equal(t, AlignFlexStart, a)
	}

	d, err := ParseFlexDirection("row-reverse")
	require.NoError(t, err)
	assert.Equal(t, FlexDirectionRowReverse, d)

	_, err = ParseJustify("middle")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidStyleInput, errors.GetCode(err))
}

func TestEnumStringRoundTrip(t *testing.T) {
	for _, e := range []Edge{EdgeLeft, EdgeTop, EdgeRight, EdgeBottom, EdgeStart, EdgeEnd, EdgeHorizontal, EdgeVertical, EdgeAll} {
		got, err := ParseEdge(e.String())
		require.NoError(t, err)
		assert.Equal(t, e, got)
	}
	assert.Equal(t, "unknown", Align(42).String())
	assert.Equal(t, "at-most", MeasureModeAtMost.String())
}

func TestErrata(t *testing.T) {
	e := ErrataStretchFlexBasis | ErrataAbsolutePercentAgainstInnerSize
	assert.True(t, e.Has(ErrataStretchFlexBasis))
	assert.False(t, e.Has(ErrataAbsolutePositionWithoutInsetsExcludesPadding))
	assert.Equal(t, "stretch-flex-basis|absolute-percent-against-inner-size", e.String())

	parsed, err := ParseErrata(e.String())
	require.NoError(t, err)
	assert.Equal(t, e, parsed)

	classic, err := ParseErrata("classic")
	require.NoError(t, err)
	assert.Equal(t, ErrataClassic, classic)
	assert.True(t, ErrataAll.Has(ErrataClassic))

	_, err = ParseErrata("everything")
	assert.Error(t, err)
}
