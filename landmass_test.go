package hologlobe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLandmasses(t *testing.T) {
	landmasses, err := Landmasses()
	require.NoError(t, err)
	require.Len(t, landmasses, 6)

	for _, landmass := range landmasses {
		assert.NotEmpty(t, landmass.Name)
		assert.True(t, landmass.Outline.IsClosed(), landmass.Name)

		points := landmass.Points(EarthRadius * ContinentRadiusFactor)
		require.GreaterOrEqual(t, len(points), 4, landmass.Name)

		assert.True(t, points[0].Equals(points[len(points)-1]), "%s: outline should end where it starts", landmass.Name)

		for _, p := range points {
			assert.InDelta(t, EarthRadius*ContinentRadiusFactor, p.Magnitude(), 1e-9, landmass.Name)
		}
	}
}

func TestNewLandmass_Errors(t *testing.T) {
	tests := []struct {
		name   string
		latLon [][2]float64
	}{
		{
			name:   "too few points",
			latLon: [][2]float64{{0, 0}, {10, 10}, {0, 0}},
		},
		{
			name:   "open outline",
			latLon: [][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		},
		{
			name:   "latitude out of range",
			latLon: [][2]float64{{0, 0}, {95, 0}, {10, 10}, {0, 0}},
		},
		{
			name:   "longitude out of range",
			latLon: [][2]float64{{0, 0}, {10, 190}, {10, 10}, {0, 0}},
		},
		{
			name:   "degenerate outline",
			latLon: [][2]float64{{5, 5}, {5, 5}, {5, 5}, {5, 5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLandmass("Test", tt.latLon)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidLandmass)
		})
	}
}

func TestNewLandmass_Points(t *testing.T) {
	landmass, err := NewLandmass("Square", [][2]float64{{0, 0}, {0, -90}, {10, -90}, {0, 0}})
	require.NoError(t, err)

	points := landmass.Points(1)
	require.Len(t, points, 4)

	// Latitude and longitude come back out in the order they went in.
	assertVectorInDelta(t, NewVector(1, 0, 0), points[0], 1e-9)
	assertVectorInDelta(t, NewVector(0, 0, 1), points[1], 1e-9)
	assertVectorInDelta(t, Project(10, -90, 1), points[2], 1e-9)
}
