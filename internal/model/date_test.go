package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 1, d.Day())
	assert.Equal(t, "2025-06-01", d.String())

	_, err = ParseDate("01/06/2025")
	assert.Error(t, err)
	_, err = ParseDate("2025-6-1")
	assert.Error(t, err)
}

// The same instant must bucket to the same calendar day whatever the
// caller's local offset: bucketing is done on the UTC day.
func TestDateOf_TimezoneInvariant(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	instant := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, DateOf(instant.In(kolkata)).Equal(DateOf(instant)))
	assert.True(t, DateOf(instant.In(newYork)).Equal(DateOf(instant)))
	assert.Equal(t, "2025-06-01", DateOf(instant.In(newYork)).String())
}

func TestDateOnly_JSON(t *testing.T) {
	d := NewDate(2025, time.June, 1)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-01"`, string(data))

	var parsed DateOnly
	require.NoError(t, json.Unmarshal([]byte(`"2025-06-01"`), &parsed))
	assert.True(t, d.Equal(parsed))

	// Legacy clients sent instants; only the UTC day is kept.
	var fromInstant DateOnly
	require.NoError(t, json.Unmarshal([]byte(`"2025-06-01T18:30:00+05:30"`), &fromInstant))
	assert.Equal(t, "2025-06-01", fromInstant.String())

	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &parsed))
}

func TestDateOnly_Comparisons(t *testing.T) {
	a := NewDate(2025, time.June, 1)
	b := NewDate(2025, time.June, 2)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Equal(b))
	assert.True(t, a.AddDays(1).Equal(b))
	assert.True(t, b.AddDays(-1).Equal(a))
}

func TestDateOnly_AddDaysAcrossMonths(t *testing.T) {
	d := NewDate(2025, time.January, 31)
	assert.Equal(t, "2025-02-01", d.AddDays(1).String())

	// Leap handling.
	assert.Equal(t, "2024-02-29", NewDate(2024, time.February, 28).AddDays(1).String())
	assert.Equal(t, "2025-03-01", NewDate(2025, time.February, 28).AddDays(1).String())
}

func TestDateOnly_Scan(t *testing.T) {
	var d DateOnly

	require.NoError(t, d.Scan(time.Date(2025, 6, 1, 23, 45, 0, 0, time.UTC)))
	assert.Equal(t, "2025-06-01", d.String())

	require.NoError(t, d.Scan([]byte("2025-06-02")))
	assert.Equal(t, "2025-06-02", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}
