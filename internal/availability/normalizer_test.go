package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CRS-AvailabilityService/pkg/types"
)

func TestNewTimeNormalizerUnknownTimezone(t *testing.T) {
	_, err := NewTimeNormalizer("Campus/Nowhere")
	require.Error(t, err)
}

func TestToLocalWinterOffset(t *testing.T) {
	n, err := NewTimeNormalizer("America/New_York")
	require.NoError(t, err)

	// Январь: EST, UTC-5
	local := n.ToLocal(time.Date(2024, time.January, 15, 18, 0, 0, 0, time.UTC))
	assert.Equal(t, types.NewCivilDate(2024, time.January, 15), local.Date())
	assert.Equal(t, 13.0, local.HourOfDay())
}

func TestToLocalSummerOffset(t *testing.T) {
	n, err := NewTimeNormalizer("America/New_York")
	require.NoError(t, err)

	// Июль: EDT, UTC-4
	local := n.ToLocal(time.Date(2024, time.July, 4, 18, 0, 0, 0, time.UTC))
	assert.Equal(t, types.NewCivilDate(2024, time.July, 4), local.Date())
	assert.Equal(t, 14.0, local.HourOfDay())
}

func TestToLocalDateBoundary(t *testing.T) {
	n, err := NewTimeNormalizer("America/New_York")
	require.NoError(t, err)

	// 03:00 UTC - это еще предыдущий день по локальному календарю
	local := n.ToLocal(time.Date(2024, time.March, 5, 3, 0, 0, 0, time.UTC))
	assert.Equal(t, types.NewCivilDate(2024, time.March, 4), local.Date())
	assert.Equal(t, time.Monday, local.Weekday())
	assert.Equal(t, 22*60, local.MinutesOfDay())
}
