package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	// Calendar string, never ISO form
	d := time.Date(2024, 1, 1, 18, 45, 0, 0, time.UTC)
	assert.Equal(t, "Mon Jan 01 2024", FormatDate(d))
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2023-01-15")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC), d)

	_, err = parseDate("15/01/2023")
	assert.Error(t, err)

	_, err = parseDate("")
	assert.Error(t, err)
}
