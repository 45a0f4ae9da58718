package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusinessDaysInMonth(t *testing.T) {
	tests := []struct {
		date     Date
		expected int
	}{
		{New(2018, 1, 17), 21},
		{New(2018, 2, 1), 19},
		{New(2018, 11, 30), 20},
		{New(2018, 12, 1), 18},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, BusinessDaysInMonth(tt.date, nil), "month of %s", tt.date)
	}
}

func TestBusinessDaysInMonthOverrides(t *testing.T) {
	overrides := Overrides{
		New(2018, 1, 2): "Company Day",
		New(2018, 1, 6): "Saturday Party", // weekend, no effect
	}
	assert.Equal(t, 20, BusinessDaysInMonth(New(2018, 1, 1), overrides))
}

func TestIsBusinessDay(t *testing.T) {
	assert.False(t, IsBusinessDay(New(2018, 1, 1), nil))
	assert.True(t, IsBusinessDay(New(2018, 1, 2), nil))
	assert.False(t, IsBusinessDay(New(2018, 1, 6), nil))
	assert.False(t, IsBusinessDay(New(2018, 1, 7), nil))
	assert.True(t, IsWeekday(New(2018, 1, 1)))
	assert.False(t, IsWeekday(New(2018, 1, 7)))
}
