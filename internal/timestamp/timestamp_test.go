package timestamp

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "no zero padding",
			input:    time.Date(2024, time.March, 5, 9, 7, 2, 0, time.UTC),
			expected: "5/3/2024 9:7:2",
		},
		{
			name:     "double digit components",
			input:    time.Date(2023, time.December, 31, 23, 59, 58, 0, time.UTC),
			expected: "31/12/2023 23:59:58",
		},
		{
			name:     "midnight",
			input:    time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			expected: "1/1/2024 0:0:0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.input))
		})
	}
}

func TestNow(t *testing.T) {
	stamp := Now()
	assert.Regexp(t, regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4} \d{1,2}:\d{1,2}:\d{1,2}$`), stamp)
}
