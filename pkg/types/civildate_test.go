package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCivilDate(t *testing.T) {
	date, err := ParseCivilDate("2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, NewCivilDate(2024, time.March, 4), date)

	// Фид отдает даты с суффиксом времени
	date, err = ParseCivilDate("2024-03-04T00:00:00")
	require.NoError(t, err)
	assert.Equal(t, NewCivilDate(2024, time.March, 4), date)

	_, err = ParseCivilDate("04.03.2024")
	require.Error(t, err)

	_, err = ParseCivilDate("")
	require.Error(t, err)
}

func TestCivilDateString(t *testing.T) {
	assert.Equal(t, "2024-03-04", NewCivilDate(2024, time.March, 4).String())
	assert.Equal(t, "2024-12-25", NewCivilDate(2024, time.December, 25).String())
}

func TestCivilDateWeekday(t *testing.T) {
	assert.Equal(t, time.Monday, NewCivilDate(2024, time.March, 4).Weekday())
	assert.Equal(t, time.Saturday, NewCivilDate(2024, time.March, 2).Weekday())
	assert.Equal(t, time.Thursday, NewCivilDate(2024, time.July, 4).Weekday())
}

func TestLocalDateTime(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	local := NewLocalDateTime(time.Date(2024, time.March, 4, 13, 30, 0, 0, loc))
	assert.Equal(t, NewCivilDate(2024, time.March, 4), local.Date())
	assert.Equal(t, time.Monday, local.Weekday())
	assert.Equal(t, 13.5, local.HourOfDay())
	assert.Equal(t, 810, local.MinutesOfDay())
}
