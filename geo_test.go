package hologlobe

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertVectorInDelta(t *testing.T, expected, actual Vector, delta float64, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, delta, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, delta, msgAndArgs...)
	assert.InDelta(t, expected.Z, actual.Z, delta, msgAndArgs...)
}

func TestProject_Axes(t *testing.T) {
	assertVectorInDelta(t, NewVector(0, 5, 0), Project(90, 37, 5), 1e-9, "north pole")
	assertVectorInDelta(t, NewVector(0, -5, 0), Project(-90, -120, 5), 1e-9, "south pole")
	assertVectorInDelta(t, NewVector(1, 0, 0), Project(0, 0, 1), 1e-9, "prime meridian")
	assertVectorInDelta(t, NewVector(0, 0, 1), Project(0, -90, 1), 1e-9, "90 degrees west")
	assertVectorInDelta(t, NewVector(-1, 0, 0), Project(0, 180, 1), 1e-9, "antimeridian")
}

func TestProject_KeepsRadius(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 500; i++ {
		lat := rng.Float64()*180 - 90
		lon := rng.Float64()*360 - 180
		radius := rng.Float64()*10 + 0.1

		v := Project(lat, lon, radius)
		assert.InDelta(t, radius, v.Magnitude(), 1e-9, "lat %v lon %v", lat, lon)
		assert.True(t, v.IsFinite())
	}
}

func TestGeoPoint_Position(t *testing.T) {
	newYork := DefaultLocations()[0]
	assert.Equal(t, "New York", newYork.Name)

	pos := newYork.Position(EarthRadius * MarkerRadiusFactor)
	assertVectorInDelta(t, NewVector(1.2009, 3.7505, 4.1897), pos, 1e-3)
	assert.InDelta(t, 5.75, pos.Magnitude(), 1e-9)
}

func TestDefaultLocations(t *testing.T) {
	locations := DefaultLocations()

	names := make([]string, 0, len(locations))
	for _, l := range locations {
		names = append(names, l.Name)
		assert.LessOrEqual(t, math.Abs(l.Latitude), 90.0)
		assert.LessOrEqual(t, math.Abs(l.Longitude), 180.0)
		assert.Equal(t, float32(1), l.Color.A)
	}

	assert.Equal(t, []string{"New York", "London", "Tokyo", "Sydney", "São Paulo"}, names)
	assert.Equal(t, uint32(0x44ff00), locations[4].Color.Hex())
}
