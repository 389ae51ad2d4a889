package parse

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp(t *testing.T) {
	chicago, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	testCases := []struct {
		name      string
		raw       string
		expected  time.Time
		expectErr bool
	}{
		{
			name:     "RFC3339 with offset",
			raw:      "2025-05-02T08:35:12-05:00",
			expected: time.Date(2025, 5, 2, 8, 35, 12, 0, chicago),
		},
		{
			name:     "Trailing Z reinterpreted as UTC",
			raw:      "2025-05-02T13:35:12Z",
			// 13:35 UTC is 08:35 in Chicago during CDT.
			expected: time.Date(2025, 5, 2, 8, 35, 12, 0, chicago),
		},
		{
			name:     "Space separator with trailing Z",
			raw:      "2025-05-02 13:35:12Z",
			expected: time.Date(2025, 5, 2, 8, 35, 12, 0, chicago),
		},
		{
			name:     "Zone-less ISO taken as local",
			raw:      "2025-05-02T08:35:12",
			expected: time.Date(2025, 5, 2, 8, 35, 12, 0, chicago),
		},
		{
			name:     "Zone-less ISO with fractional seconds",
			raw:      "2025-05-02T08:35:12.250000",
			expected: time.Date(2025, 5, 2, 8, 35, 12, 250000000, chicago),
		},
		{
			name:     "Space-separated form",
			raw:      "2025-05-03 10:05:00",
			expected: time.Date(2025, 5, 3, 10, 5, 0, 0, chicago),
		},
		{
			name:     "Stringified time value",
			raw:      "2025-05-02 08:35:12 -0500 CDT",
			expected: time.Date(2025, 5, 2, 8, 35, 12, 0, chicago),
		},
		{
			name:     "Surrounding whitespace tolerated",
			raw:      "  2025-05-02T08:35:12  ",
			expected: time.Date(2025, 5, 2, 8, 35, 12, 0, chicago),
		},
		{
			name:      "Empty string",
			raw:       "",
			expectErr: true,
		},
		{
			name:      "Date only",
			raw:       "2025-05-02",
			expectErr: true,
		},
		{
			name:      "Garbage",
			raw:       "yesterday-ish",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Timestamp(tc.raw, chicago)
			if tc.expectErr {
				var parseErr *ParseError
				require.Error(t, err)
				require.True(t, errors.As(err, &parseErr))
				assert.Equal(t, tc.raw, parseErr.Raw)
			} else {
				require.NoError(t, err)
				assert.True(t, tc.expected.Equal(got), "expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestBadgeID(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expected  int64
		expectErr bool
	}{
		{name: "Plain number", raw: "72", expected: 72},
		{name: "Whitespace trimmed", raw: " 72 ", expected: 72},
		{name: "Empty", raw: "", expectErr: true},
		{name: "Non-numeric", raw: "badge-72", expectErr: true},
		{name: "Decimal", raw: "7.2", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := BadgeID(tc.raw)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, id)
			}
		})
	}
}
