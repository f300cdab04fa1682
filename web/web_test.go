package web

import (
	"bytes"
	"testing"

	"upcoming-elections/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatISO8601(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "utc timestamp", input: "2019-05-10T03:12:45Z", expected: "Friday, May 10, 2019"},
		{name: "offset timestamp", input: "2020-11-03T00:00:00-05:00", expected: "Tuesday, November 3, 2020"},
		{name: "not a date", input: "next tuesday", expected: "next tuesday"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatISO8601(tt.input))
		})
	}
}

func TestTemplates(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	assert.NotNil(t, tmpl.Lookup("search.html"))
	assert.NotNil(t, tmpl.Lookup("election_results.html"))

	var buf bytes.Buffer
	data := struct {
		Countries []models.Country
		Regions   []models.Region
		Form      map[string]string
		Flash     string
		Error     string
		Lookup    *models.Lookup
	}{
		Countries: []models.Country{{Code: "US", Name: "United States"}},
		Regions:   []models.Region{{Country: "US", Code: "MA", Name: "Massachusetts"}},
		Form:      map[string]string{"addressRegion": "MA"},
	}

	err = tmpl.ExecuteTemplate(&buf, "search.html", data)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `name="addressLocality"`)
	assert.Contains(t, buf.String(), `<option value="MA" selected>Massachusetts</option>`)
	assert.Contains(t, buf.String(), `<option value="US">United States</option>`)
}
