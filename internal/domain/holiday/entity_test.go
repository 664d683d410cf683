package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHoliday_Matches_Recurring(t *testing.T) {
	christmas := Holiday{
		Name:        "Christmas",
		Date:        time.Date(2020, 12, 25, 0, 0, 0, 0, time.UTC),
		IsRecurring: true,
	}

	assert.True(t, christmas.Matches(time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)))
	assert.True(t, christmas.Matches(time.Date(2030, 12, 25, 0, 0, 0, 0, time.UTC)))
	assert.False(t, christmas.Matches(time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC)))
	assert.False(t, christmas.Matches(time.Date(2024, 11, 25, 0, 0, 0, 0, time.UTC)))
}

func TestHoliday_Matches_Exact(t *testing.T) {
	offsite := Holiday{
		Name: "Company Offsite",
		Date: time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, offsite.Matches(time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)))
	assert.False(t, offsite.Matches(time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)))
}
