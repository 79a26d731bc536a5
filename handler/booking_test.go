package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayRange(t *testing.T) {
	start, end, err := dayRange("2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), end)
}

func TestDayRangeNormalizesTimestamps(t *testing.T) {
	// The duplicate guard compares calendar days, so any time of day on the
	// same date must land in the same window.
	morningStart, morningEnd, err := dayRange("2025-03-15T06:00:00Z")
	require.NoError(t, err)
	eveningStart, eveningEnd, err := dayRange("2025-03-15T23:59:00Z")
	require.NoError(t, err)
	dateStart, dateEnd, err := dayRange("2025-03-15")
	require.NoError(t, err)

	assert.Equal(t, dateStart, morningStart)
	assert.Equal(t, dateStart, eveningStart)
	assert.Equal(t, dateEnd, morningEnd)
	assert.Equal(t, dateEnd, eveningEnd)
}

func TestDayRangeAdjacentDaysDoNotOverlap(t *testing.T) {
	_, firstEnd, err := dayRange("2025-03-15")
	require.NoError(t, err)
	secondStart, _, err := dayRange("2025-03-16")
	require.NoError(t, err)

	assert.Equal(t, firstEnd, secondStart)
}

func TestDayRangeInvalidDate(t *testing.T) {
	_, _, err := dayRange("15/03/2025")
	assert.Error(t, err)

	_, _, err = dayRange("")
	assert.Error(t, err)
}
