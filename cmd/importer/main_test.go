package main

import (
	"strings"
	"testing"

	"upcoming-elections/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    []models.Region
		expectError bool
	}{
		{
			name:  "valid rows",
			input: "country,code,name\nus,ma,Massachusetts\nCA, ON ,Ontario\n",
			expected: []models.Region{
				{Country: "US", Code: "MA", Name: "Massachusetts"},
				{Country: "CA", Code: "ON", Name: "Ontario"},
			},
		},
		{
			name:     "header only",
			input:    "country,code,name\n",
			expected: nil,
		},
		{
			name:        "missing header",
			input:       "",
			expectError: true,
		},
		{
			name:        "short row",
			input:       "country,code,name\nUS,MA\n",
			expectError: true,
		},
		{
			name:        "bad country",
			input:       "country,code,name\nUSA,MA,Massachusetts\n",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regions, err := parseCSV(strings.NewReader(tt.input))
			if tt.expectError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, regions)
		})
	}
}
