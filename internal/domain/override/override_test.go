package override

import (
	"testing"

	"date_dimension/internal/domain/calendar"

	"github.com/stretchr/testify/assert"
)

func TestToMap(t *testing.T) {
	m := ToMap([]*Override{
		{Date: calendar.New(2018, 1, 2), Name: "Company Day"},
		{Date: calendar.New(2018, 3, 9), Name: "Offsite"},
	})
	assert.Equal(t, calendar.Overrides{
		calendar.New(2018, 1, 2): "Company Day",
		calendar.New(2018, 3, 9): "Offsite",
	}, m)

	assert.Empty(t, ToMap(nil))
}
