package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/yogabind/pkg/errors"
)

func TestValidateNilTable(t *testing.T) {
	var tab *Table
	err := tab.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeMissingSymbol))
}

func TestMissingReportsEmptyTable(t *testing.T) {
	tab := &Table{Name: "empty", Convention: DirectReturn}
	missing := tab.Missing()

	assert.Contains(t, missing, "NodeNew")
	assert.Contains(t, missing, "NewMeasureThunk")
	assert.NotContains(t, missing, "NewMeasureSlotThunk")
	assert.NotContains(t, missing, "StoreMeasureResult")

	err := tab.Validate()
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeMissingSymbol, errors.GetCode(err))
}

func TestMissingSideChannel(t *testing.T) {
	tab := &Table{Name: "empty", Convention: SideChannel}
	missing := tab.Missing()

	assert.Contains(t, missing, "NewMeasureSlotThunk")
	assert.Contains(t, missing, "StoreBaselineResult")
	assert.NotContains(t, missing, "NewMeasureThunk")
	assert.NotContains(t, missing, "NewBaselineThunk")
}

func TestConventionString(t *testing.T) {
	assert.Equal(t, "direct", DirectReturn.String())
	assert.Equal(t, "side-channel", SideChannel.String())
	assert.Equal(t, "unknown", Convention(9).String())
}

func TestIsUndefined(t *testing.T) {
	assert.True(t, IsUndefined(Undefined))
	assert.False(t, IsUndefined(0))
}
