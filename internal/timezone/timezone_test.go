package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Mars/Olympus").String())
	assert.Equal(t, "Europe/Lisbon", Location("Europe/Lisbon").String())
}

func TestDateOfUsesLocalCalendarDay(t *testing.T) {
	// 01:30 UTC on the 2nd is still the 1st in São Paulo.
	at := time.Date(2025, 11, 2, 1, 30, 0, 0, time.UTC).In(Location(DefaultTimezone))

	d := DateOf(at)
	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), d)
}

func TestParseAndFormatDate(t *testing.T) {
	d, err := ParseDate("2025-11-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-11-01", *FormatDate(&d))

	_, err = ParseDate("01/11/2025")
	assert.Error(t, err)

	assert.Nil(t, FormatDate(nil))
}
