package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizes(t *testing.T) {
	assert.Equal(t, Date{2018, time.February, 1}, New(2018, 1, 32))
	assert.Equal(t, Date{2017, time.December, 31}, New(2018, 1, 0))
}

func TestParse(t *testing.T) {
	d, err := Parse("2018-07-14")
	require.NoError(t, err)
	assert.Equal(t, New(2018, 7, 14), d)
	assert.Equal(t, "2018-07-14", d.String())

	for _, bad := range []string{"", "2018-7-14", "14/07/2018", "2018-02-30"} {
		_, err := Parse(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestIntRoundTrip(t *testing.T) {
	start := New(2019, 12, 25)
	for d := start; d.Before(New(2020, 3, 5)); d = d.AddDays(1) {
		got, err := FromInt(d.Int())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	assert.Equal(t, 20180714, New(2018, 7, 14).Int())
	assert.Equal(t, 201807, New(2018, 7, 14).YearMonth())

	for _, bad := range []int{0, -1, 20190230, 20181301, 20180700} {
		_, err := FromInt(bad)
		assert.Error(t, err, "input %d", bad)
	}
}

func TestDateArithmetic(t *testing.T) {
	d := New(2020, 2, 27)
	assert.Equal(t, New(2020, 3, 1), d.AddDays(3))
	assert.Equal(t, New(2020, 2, 20), d.AddDays(-7))
	assert.Equal(t, 3, New(2020, 3, 1).DaysSince(d))
	assert.Equal(t, -365, New(2019, 2, 27).DaysSince(d))
	assert.True(t, d.Before(New(2020, 2, 28)))
	assert.True(t, d.After(New(2019, 12, 31)))
	assert.False(t, d.Before(d))
	assert.Equal(t, New(2020, 2, 29), d.MonthEnd())
	assert.Equal(t, New(2019, 2, 28), New(2019, 2, 3).MonthEnd())
	assert.Equal(t, New(2020, 2, 1), d.FirstOfMonth())
}

func TestISOWeek(t *testing.T) {
	assert.Equal(t, 1, New(2018, 1, 1).ISOWeek())
	assert.Equal(t, 53, New(2016, 1, 1).ISOWeek())
	assert.Equal(t, 1, New(2019, 12, 30).ISOWeek())
}

func TestDateJSON(t *testing.T) {
	data, err := json.Marshal(New(2018, 7, 4))
	require.NoError(t, err)
	assert.JSONEq(t, `"2018-07-04"`, string(data))

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2019-11-29"`), &d))
	assert.Equal(t, New(2019, 11, 29), d)
	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &d))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2018, 7, 4, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, New(2018, 7, 4), d)

	require.NoError(t, d.Scan("2019-01-02 00:00:00+00:00"))
	assert.Equal(t, New(2019, 1, 2), d)

	require.NoError(t, d.Scan([]byte("2020-02-29")))
	assert.Equal(t, New(2020, 2, 29), d)

	assert.Error(t, d.Scan(42))
	assert.Error(t, d.Scan("2019"))

	v, err := New(2018, 7, 4).Value()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2018, 7, 4, 0, 0, 0, 0, time.UTC), v)
}
