package hologlobe

import "math"

// GeoPoint is a named location on the globe, with its latitude and longitude in degrees.
type GeoPoint struct {
	Name      string
	Latitude  float64
	Longitude float64
	Color     Color
}

// Project converts a latitude and longitude in degrees to a point on a sphere of the given radius centered on the origin,
// with the poles on the Y axis. Longitude 0 lies along +X and longitude -90 along +Z; the negated X and the +180 offset
// match the orientation of the continent outlines and must not change.
func Project(latitude, longitude, radius float64) Vector {

	phi := (90 - latitude) * math.Pi / 180
	theta := (longitude + 180) * math.Pi / 180

	return Vector{
		X: -radius * math.Sin(phi) * math.Cos(theta),
		Y: radius * math.Cos(phi),
		Z: radius * math.Sin(phi) * math.Sin(theta),
	}

}

// Position returns the GeoPoint projected onto a sphere of the given radius.
func (point GeoPoint) Position(radius float64) Vector {
	return Project(point.Latitude, point.Longitude, radius)
}

// DefaultLocations returns the locations marked on the globe when none are configured.
func DefaultLocations() []GeoPoint {
	return []GeoPoint{
		{Name: "New York", Latitude: 40.7128, Longitude: -74.0060, Color: NewColorFromHex(0x00ff00)},
		{Name: "London", Latitude: 51.5074, Longitude: -0.1278, Color: NewColorFromHex(0x00ff88)},
		{Name: "Tokyo", Latitude: 35.6762, Longitude: 139.6503, Color: NewColorFromHex(0x00ffaa)},
		{Name: "Sydney", Latitude: -33.8688, Longitude: 151.2093, Color: NewColorFromHex(0x00ff44)},
		{Name: "São Paulo", Latitude: -23.5505, Longitude: -46.6333, Color: NewColorFromHex(0x44ff00)},
	}
}
