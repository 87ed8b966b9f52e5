package timeclock

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhris/timeclock-import-go/internal/domain/timeclock"
)

func TestParseDateFormatsAgree(t *testing.T) {
	t.Parallel()

	want := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	for _, token := range []string{"01/06/2024", "1/6/2024", "01-06-2024", "2024-06-01", "2024/6/1", "01.06.2024"} {
		got, err := ParseDate(token)
		require.NoError(t, err, "token %q", token)
		assert.True(t, got.Equal(want), "token %q parsed as %s", token, got)
	}
}

func TestParseDateInvalid(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"", "  ", "32/01/2024", "01/13/2024", "2024-13-01", "not-a-date", "1/6/24"} {
		_, err := ParseDate(token)
		require.Error(t, err, "token %q", token)
		assert.ErrorIs(t, err, timeclock.ErrInvalidDate)
	}
}

func TestParseDateSerialEpoch(t *testing.T) {
	t.Parallel()

	// Serial day 1 minus the two-day vendor correction lands on 1899-12-30;
	// serial 3 is therefore 1900-01-01.
	got, err := ParseDate("3")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("4")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1900, time.January, 2, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDateSerialNoDrift(t *testing.T) {
	t.Parallel()

	// Consecutive serials are exactly one calendar day apart across month
	// and year boundaries.
	prev, err := ParseDate("100")
	require.NoError(t, err)
	for serial := 101; serial < 900; serial++ {
		cur, err := ParseDate(strconv.Itoa(serial))
		require.NoError(t, err)
		assert.Equal(t, 24*time.Hour, cur.Sub(prev), "serial %d", serial)
		prev = cur
	}
}

func TestParseClock(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	got, err := ParseClock("08:00", base)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC), *got)

	got, err = ParseClock("17:30:15", base)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, time.June, 1, 17, 30, 15, 0, time.UTC), *got)
}

func TestParseClockAbsent(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	for _, token := range []string{"", "  ", "-"} {
		got, err := ParseClock(token, base)
		require.NoError(t, err)
		assert.Nil(t, got)
	}
}

func TestParseClockInvalid(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	for _, token := range []string{"25:00", "08:60", "8h30", "0800"} {
		_, err := ParseClock(token, base)
		require.Error(t, err, "token %q", token)
		assert.ErrorIs(t, err, timeclock.ErrInvalidTime)
	}
}

func TestParseDecimalToken(t *testing.T) {
	t.Parallel()

	value, err := parseDecimalToken("1,5")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.True(t, value.Equal(decimalFromString(t, "1.5")))

	value, err = parseDecimalToken("0")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.True(t, value.IsZero())

	value, err = parseDecimalToken("")
	require.NoError(t, err)
	assert.Nil(t, value)

	_, err = parseDecimalToken("abc")
	require.Error(t, err)
}
