package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalTimeCanonical(t *testing.T) {
	lt, err := ParseLocalTime("2024-06-01T10:00:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01T10:00:00", lt.String())
	assert.Equal(t, "2024-06-01", lt.DateString())
	assert.Equal(t, 10, lt.Hour())
	assert.Equal(t, 0, lt.Minute())
}

func TestParseLocalTimeTolerance(t *testing.T) {
	// Serialization noise is stripped; the written wall clock survives.
	cases := []struct {
		in   string
		want string
	}{
		{"2024-06-01T10:00:00.000", "2024-06-01T10:00:00"},
		{"2024-06-01T10:00:00.123456789", "2024-06-01T10:00:00"},
		{"2024-06-01T10:00:00Z", "2024-06-01T10:00:00"},
		{"2024-06-01T10:00:00+05:30", "2024-06-01T10:00:00"},
		{"2024-06-01T10:00:00-08:00", "2024-06-01T10:00:00"},
		{"2024-06-01T10:00", "2024-06-01T10:00:00"},
	}
	for _, tc := range cases {
		lt, err := ParseLocalTime(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, lt.String(), "input %q", tc.in)
	}
}

func TestParseLocalTimeRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "2024-06-01", "10:00:00", "June 1st 2024", "2024-13-45T99:99:99"} {
		_, err := ParseLocalTime(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestLocalTimeTruncateAndEqual(t *testing.T) {
	a, err := ParseLocalTime("2024-06-01T10:00:42")
	require.NoError(t, err)
	b, err := ParseLocalTime("2024-06-01T10:00:07")
	require.NoError(t, err)
	c, err := ParseLocalTime("2024-06-01T10:01:00")
	require.NoError(t, err)
	d, err := ParseLocalTime("2024-06-02T10:00:00")
	require.NoError(t, err)

	assert.True(t, a.Equal(b), "same minute, different seconds")
	assert.False(t, a.Equal(c), "different minute")
	assert.False(t, a.Equal(d), "different day")
	assert.Equal(t, "2024-06-01T10:00:00", a.Truncate().String())
}

func TestLocalTimeOfDropsZone(t *testing.T) {
	loc := time.FixedZone("TEST", 3*3600)
	src := time.Date(2024, time.June, 1, 10, 0, 0, 0, loc)
	lt := LocalTimeOf(src)
	assert.Equal(t, "2024-06-01T10:00:00", lt.String())
}

func TestLocalTimeOrderingAndAdd(t *testing.T) {
	a := NewLocalTime(2024, time.June, 1, 10, 0)
	b := a.Add(30 * time.Minute)

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.Equal(t, "2024-06-01T10:30:00", b.String())
	assert.True(t, LocalTime{}.IsZero())
	assert.False(t, a.IsZero())
}

func TestLocalTimeJSONRoundTrip(t *testing.T) {
	type envelope struct {
		When LocalTime `json:"when"`
	}

	out, err := json.Marshal(envelope{When: NewLocalTime(2024, time.June, 1, 10, 0)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"when":"2024-06-01T10:00:00"}`, string(out))

	var in envelope
	require.NoError(t, json.Unmarshal([]byte(`{"when":"2024-06-01T10:00:00"}`), &in))
	assert.Equal(t, "2024-06-01T10:00:00", in.When.String())

	assert.Error(t, json.Unmarshal([]byte(`{"when":"not a time"}`), &in))
	assert.Error(t, json.Unmarshal([]byte(`{"when":42}`), &in))
}

func TestLocalTimeLexicographicOrder(t *testing.T) {
	// The canonical layout sorts lexicographically in chronological order,
	// which the storage layer relies on for day-window range scans.
	a := NewLocalTime(2024, time.June, 1, 9, 0)
	b := NewLocalTime(2024, time.June, 1, 16, 0)
	c := NewLocalTime(2024, time.June, 2, 9, 0)

	assert.Less(t, a.String(), b.String())
	assert.Less(t, b.String(), c.String())
	assert.Less(t, "2024-06-01T00:00:00", a.String())
	assert.Less(t, b.String(), "2024-06-01T23:59:59")
}
