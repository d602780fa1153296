package hologlobe

import (
	"fmt"

	geom "github.com/peterstace/simplefeatures/geom"
)

// Landmass is a named, closed outline of a continent. The outline is held with longitude as X and latitude as Y.
type Landmass struct {
	Name    string
	Outline geom.LineString
}

// NewLandmass builds a Landmass from a list of [latitude, longitude] pairs in degrees. The outline must have at least
// four points, end where it starts, and stay within valid latitude and longitude ranges.
func NewLandmass(name string, latLon [][2]float64) (Landmass, error) {

	if len(latLon) < 4 {
		return Landmass{}, fmt.Errorf("%s: outline must have at least 4 points, got %d: %w", name, len(latLon), ErrInvalidLandmass)
	}

	flatCoords := make([]float64, 0, len(latLon)*2)
	for i, c := range latLon {
		lat, lon := c[0], c[1]
		if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
			return Landmass{}, fmt.Errorf("%s: point %d (%v, %v) out of range: %w", name, i, lat, lon, ErrInvalidLandmass)
		}
		flatCoords = append(flatCoords, lon, lat)
	}

	ls, err := geom.NewLineString(geom.NewSequence(flatCoords, geom.DimXY))
	if err != nil {
		return Landmass{}, fmt.Errorf("%s: %w: %w", name, err, ErrInvalidLandmass)
	}

	if !ls.IsClosed() {
		return Landmass{}, fmt.Errorf("%s: outline is not closed: %w", name, ErrInvalidLandmass)
	}

	return Landmass{Name: name, Outline: ls}, nil

}

// Points returns the Landmass's outline projected onto a sphere of the given radius, in order.
func (landmass Landmass) Points(radius float64) []Vector {
	seq := landmass.Outline.Coordinates()
	points := make([]Vector, 0, seq.Length())
	for i := 0; i < seq.Length(); i++ {
		xy := seq.GetXY(i)
		points = append(points, Project(xy.Y, xy.X, radius))
	}
	return points
}

// Landmasses returns the simplified outlines of the six continents drawn on the globe.
func Landmasses() ([]Landmass, error) {

	out := make([]Landmass, 0, len(continentOutlines))

	for _, c := range continentOutlines {
		landmass, err := NewLandmass(c.name, c.latLon)
		if err != nil {
			return nil, err
		}
		out = append(out, landmass)
	}

	return out, nil

}

// Approximate outlines; not geodetically accurate.
var continentOutlines = []struct {
	name   string
	latLon [][2]float64
}{
	{
		name: "North America",
		latLon: [][2]float64{
			{71, -156}, {70, -141}, {69, -133}, {68, -133}, {66, -162}, {64, -165},
			{60, -165}, {59, -151}, {58, -137}, {56, -132}, {54, -130}, {52, -128},
			{49, -125}, {47, -125}, {45, -124}, {42, -124}, {39, -123}, {36, -121},
			{33, -118}, {30, -115}, {28, -97}, {26, -97}, {26, -80}, {28, -80},
			{30, -81}, {32, -81}, {35, -76}, {37, -76}, {40, -74}, {42, -71},
			{45, -68}, {47, -60}, {49, -54}, {52, -55}, {55, -57}, {58, -61},
			{60, -64}, {62, -68}, {65, -74}, {68, -81}, {70, -95}, {71, -156},
		},
	},
	{
		name: "South America",
		latLon: [][2]float64{
			{13, -59}, {10, -61}, {6, -61}, {2, -60}, {-2, -60}, {-6, -63},
			{-10, -65}, {-14, -67}, {-18, -65}, {-22, -64}, {-26, -60},
			{-30, -58}, {-34, -58}, {-38, -62}, {-42, -65}, {-46, -67},
			{-50, -69}, {-53, -68}, {-55, -67}, {-55, -65}, {-54, -63},
			{-52, -59}, {-48, -58}, {-44, -57}, {-40, -38}, {-37, -38},
			{-34, -38}, {-30, -38}, {-26, -43}, {-22, -43}, {-18, -39},
			{-14, -39}, {-10, -35}, {-6, -35}, {-2, -48}, {2, -49},
			{6, -51}, {10, -60}, {13, -59},
		},
	},
	{
		name: "Africa",
		latLon: [][2]float64{
			{32, 22}, {31, 25}, {30, 30}, {24, 32}, {18, 38}, {15, 39},
			{11, 42}, {4, 41}, {-1, 41}, {-6, 20}, {-11, 17}, {-15, 12},
			{-18, 12}, {-22, 14}, {-26, 15}, {-29, 17}, {-33, 18},
			{-35, 20}, {-34, 28}, {-29, 29}, {-24, 31}, {-20, 40},
			{-15, 48}, {-11, 51}, {-6, 51}, {0, 51}, {4, 48}, {8, 47},
			{12, 43}, {16, 40}, {20, 37}, {24, 34}, {28, 31}, {31, 29}, {32, 22},
		},
	},
	{
		name: "Europe",
		latLon: [][2]float64{
			{36, -9}, {43, -8}, {44, -2}, {46, 2}, {48, 2}, {50, 4},
			{53, 5}, {55, 10}, {58, 11}, {60, 23}, {61, 28}, {69, 33},
			{71, 40}, {70, 55}, {68, 60}, {65, 58}, {63, 55}, {61, 50},
			{58, 49}, {55, 37}, {53, 32}, {50, 30}, {48, 29}, {46, 16},
			{44, 12}, {43, 7}, {41, 3}, {38, 0}, {36, -9},
		},
	},
	{
		name: "Asia",
		latLon: [][2]float64{
			{70, 40}, {68, 60}, {65, 80}, {60, 100}, {55, 120}, {50, 135},
			{45, 140}, {40, 140}, {35, 138}, {30, 135}, {25, 125}, {20, 95},
			{15, 75}, {25, 65}, {35, 60}, {45, 50}, {55, 45}, {65, 40}, {70, 40},
		},
	},
	{
		name: "Australia",
		latLon: [][2]float64{
			{-12, 130}, {-15, 132}, {-20, 135}, {-25, 140}, {-30, 145},
			{-35, 150}, {-38, 148}, {-37, 145}, {-35, 140}, {-32, 135},
			{-28, 130}, {-25, 125}, {-22, 120}, {-18, 115}, {-15, 115},
			{-12, 120}, {-12, 130},
		},
	},
}
