package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateLayouts(t *testing.T) {
	want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	for _, raw := range []string{"2025-01-15", "2025-01-15T09:30:00Z", "2025-01-15T09:30:00.123Z", " 2025-01-15T09:30:00 "} {
		got, err := ParseDate(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
}

func TestParseDatesRejectsGarbage(t *testing.T) {
	_, err := ParseDates([]string{"2025-01-01", "next week"})
	require.Error(t, err)
	_, err = ParseDate("")
	require.Error(t, err)
}
