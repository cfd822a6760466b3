package dbtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMonthsClampsToMonthEnd(t *testing.T) {
	cases := []struct {
		from Date
		n    int
		want string
	}{
		{NewDate(2024, time.January, 15), 1, "2024-02-15"},
		{NewDate(2024, time.January, 31), 1, "2024-02-29"},
		{NewDate(2023, time.January, 31), 1, "2023-02-28"},
		{NewDate(2024, time.January, 31), 3, "2024-04-30"},
		{NewDate(2024, time.November, 30), 3, "2025-02-28"},
		{NewDate(2024, time.December, 31), 1, "2025-01-31"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, AddMonths(tc.from, tc.n).String(), "from %s +%d", tc.from, tc.n)
	}
}

func TestAddYearsFromLeapDay(t *testing.T) {
	assert.Equal(t, "2025-02-28", AddYears(NewDate(2024, time.February, 29), 1).String())
	assert.Equal(t, "2028-02-29", AddYears(NewDate(2024, time.February, 29), 4).String())
}

func TestDateJSONAndScan(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-01"`), &d))
	assert.Equal(t, "2024-03-01", d.String())

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-03-01"`, string(b))

	var s Date
	require.NoError(t, s.Scan(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, s.Equal(d.Time))

	require.NoError(t, s.Scan("2024-05-01 00:00:00+00:00"))
	assert.Equal(t, "2024-05-01", s.String())
}

func TestDateOfDropsClock(t *testing.T) {
	d := DateOf(time.Date(2024, 3, 1, 23, 59, 0, 0, time.FixedZone("WIB", 7*3600)))
	assert.Equal(t, "2024-03-01", d.String())
	assert.Equal(t, time.UTC, d.StartOfDay().Location())
}
