package service

import (
	"context"
	"sort"
	"testing"

	"upcoming-elections/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRegionRepository is a mock implementation of the RegionRepository interface
type MockRegionRepository struct {
	mock.Mock
}

func (m *MockRegionRepository) ListRegions(ctx context.Context, country string) ([]models.Region, error) {
	args := m.Called(ctx, country)
	return args.Get(0).([]models.Region), args.Error(1)
}

func TestRegionService_Regions(t *testing.T) {
	stored := []models.Region{
		{Country: "US", Code: "MA", Name: "Massachusetts"},
	}

	tests := []struct {
		name        string
		country     string
		useRepo     bool
		repoCountry string
		mockRegions []models.Region
		mockError   error
		expected    []models.Region
		expectError bool
	}{
		{
			name:        "stored regions win",
			country:     "us",
			useRepo:     true,
			repoCountry: "US",
			mockRegions: stored,
			expected:    stored,
		},
		{
			name:        "empty store falls back to built-in table",
			country:     "",
			useRepo:     true,
			repoCountry: "US",
			mockRegions: []models.Region{},
			expected:    usPostalAbbreviations,
		},
		{
			name:     "no repository",
			country:  " US ",
			expected: usPostalAbbreviations,
		},
		{
			name:        "repository error",
			country:     "US",
			useRepo:     true,
			repoCountry: "US",
			mockRegions: []models.Region{},
			mockError:   assert.AnError,
			expectError: true,
		},
		{
			name:     "unknown country",
			country:  "not-a-country",
			expected: []models.Region{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockRepo := new(MockRegionRepository)
			var service *RegionService
			if tt.useRepo {
				service = NewRegionService(mockRepo)
				mockRepo.On("ListRegions", mock.Anything, tt.repoCountry).Return(tt.mockRegions, tt.mockError)
			} else {
				service = NewRegionService(nil)
			}

			// Execute
			result, err := service.Regions(context.Background(), tt.country)

			// Assert
			if tt.expectError {
				assert.ErrorIs(t, err, assert.AnError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestRegionService_RegionsFromSubdivisions(t *testing.T) {
	service := NewRegionService(nil)

	regions, err := service.Regions(context.Background(), "CA")
	require.NoError(t, err)
	require.NotEmpty(t, regions)

	for _, r := range regions {
		assert.Equal(t, "CA", r.Country)
		assert.NotEmpty(t, r.Code)
		assert.NotContains(t, r.Code, "CA-")
	}
	assert.True(t, sort.SliceIsSorted(regions, func(i, j int) bool {
		return regions[i].Name < regions[j].Name
	}))
}

func TestRegionService_Countries(t *testing.T) {
	result := NewRegionService(nil).Countries()
	require.NotEmpty(t, result)

	var found bool
	for _, c := range result {
		assert.Len(t, c.Code, 2)
		if c.Code == "US" {
			found = true
		}
	}
	assert.True(t, found)
	assert.True(t, sort.SliceIsSorted(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	}))
}
