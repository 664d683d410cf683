package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceDate_LocalMidnightBoundary(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	// 18:30 UTC on March 4 is already 01:30 on March 5 in Jakarta.
	instant := time.Date(2024, 3, 4, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, jakarta), ServiceDate(instant, jakarta))
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), ServiceDate(instant, time.UTC))
}

func TestFormatInstant(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	instant := time.Date(2024, 3, 4, 2, 15, 0, 0, time.UTC)
	got := FormatInstant(&instant, jakarta)
	require.NotNil(t, got)
	assert.Equal(t, "2024-03-04 09:15:00", *got)

	assert.Nil(t, FormatInstant(nil, jakarta))
}
