package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:40")
	require.NoError(t, err)
	assert.Equal(t, "09:40", ts.String())

	for _, raw := range []string{"", "9:40:00", "25:00", "09:61", "morning"} {
		_, err := NewTimeStringFromString(raw)
		assert.Error(t, err, raw)
	}
}

func TestMinutesRoundTrip(t *testing.T) {
	for _, m := range []int{0, 540, 780, 1100, 1439} {
		minutes, err := FromMinutes(m).Minutes()
		require.NoError(t, err)
		assert.Equal(t, m, minutes)
	}
}

func TestFromMinutes(t *testing.T) {
	assert.Equal(t, TimeString("09:00"), FromMinutes(540))
	assert.Equal(t, TimeString("18:20"), FromMinutes(1100))
	assert.Equal(t, TimeString("00:00"), FromMinutes(-10))
}

func TestAddMinutes(t *testing.T) {
	ts, err := TimeString("12:20").AddMinutes(40)
	require.NoError(t, err)
	assert.Equal(t, TimeString("13:00"), ts)

	_, err = TimeString("bogus").AddMinutes(40)
	assert.Error(t, err)
}

func TestScanTruncatesSeconds(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:20:00"))
	assert.Equal(t, TimeString("10:20"), ts)

	require.NoError(t, ts.Scan([]byte("17:40:00")))
	assert.Equal(t, TimeString("17:40"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("09:00"), ts)

	assert.Error(t, ts.Scan(42))
}
