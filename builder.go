package hologlobe

import (
	"math"
	"math/rand/v2"
)

// Marker is a pulsing, clickable glyph floating above a GeoPoint. Its Group holds the glyph, a ring lying flat against
// the local horizon, and a beam pointing away from the globe.
type Marker struct {
	Point *GeoPoint

	Group *Node
	Glyph *Model
	Ring  *Model
	Beam  *Model

	PulsePhase float64 // Current pulse phase in radians; advances with time
	PulseSpeed float64 // Radians of pulse phase per second
	phase0     float64

	BasePosition Vector  // Position of the Group before the globe's rotation is applied
	BaseRotation Matrix4 // Orientation of the Group (facing the globe's center) before the globe's rotation is applied
}

// PulseScale returns the Marker's current uniform scale, which swings between 0.7 and 1.3.
func (marker *Marker) PulseScale() float64 {
	return 1 + math.Sin(marker.PulsePhase)*0.3
}

// update advances the pulse to the elapsed time given and re-places the Marker on the globe rotated by orbit.
func (marker *Marker) update(elapsedSeconds float64, orbit Matrix4) {
	marker.PulsePhase = marker.phase0 + elapsedSeconds*marker.PulseSpeed
	s := marker.PulseScale()
	marker.Group.SetLocalScale(s, s, s)
	marker.Group.SetLocalPositionVec(orbit.MultVec(marker.BasePosition))
	marker.Group.SetLocalRotation(marker.BaseRotation.Mult(orbit))
}

// Scene is the globe's scene graph, along with references to the parts the widget animates.
type Scene struct {
	Root           *Node
	Globe          *Node // Rotated by the orbit; parents the base sphere, inner glow, continents and grid
	BaseSphere     *Model
	InnerGlow      *Model
	Continents     []*Model
	LatitudeRings  []*Model
	LongitudeRings []*Model
	Atmosphere     *Atmosphere
	Markers        []*Marker
	Landmasses     []Landmass
}

// BuildScene constructs the globe, its atmosphere, and one Marker per point. Marker pulses are randomized with rng.
// The points slice is referenced, not copied, by the Markers.
func BuildScene(points []GeoPoint, rng *rand.Rand) (*Scene, error) {

	landmasses, err := Landmasses()
	if err != nil {
		return nil, err
	}

	scene := &Scene{
		Root:       NewNode("Root"),
		Globe:      NewNode("Globe"),
		Landmasses: landmasses,
	}

	baseMat := NewMaterial("Base Sphere")
	baseMat.Color = NewColorFromHex(0x004400).WithAlpha(0.3)
	baseMat.Wireframe = true
	scene.BaseSphere = NewModel("Base Sphere", NewSphereMesh(EarthRadius, 32, 32), baseMat)

	for _, landmass := range landmasses {
		mat := NewMaterial(landmass.Name)
		mat.Color = NewColorFromHex(0x00ff00).WithAlpha(0.8)
		mat.LineWidth = 2
		model := NewModel(landmass.Name, NewLineStripMesh(landmass.Points(EarthRadius*ContinentRadiusFactor), true), mat)
		scene.Continents = append(scene.Continents, model)
	}

	scene.LatitudeRings, scene.LongitudeRings = buildGrid(EarthRadius * GridRadiusFactor)

	glowMat := NewMaterial("Inner Glow")
	glowMat.Color = NewColorFromHex(0x003300).WithAlpha(0.15)
	scene.InnerGlow = NewModel("Inner Glow", NewSphereMesh(EarthRadius*InnerGlowRadiusFactor, 16, 16), glowMat)

	scene.Globe.AddChildren(scene.BaseSphere)
	for _, c := range scene.Continents {
		scene.Globe.AddChildren(c)
	}
	for _, l := range scene.LatitudeRings {
		scene.Globe.AddChildren(l)
	}
	for _, l := range scene.LongitudeRings {
		scene.Globe.AddChildren(l)
	}
	scene.Globe.AddChildren(scene.InnerGlow)

	scene.Atmosphere = NewAtmosphere(EarthRadius * AtmosphereRadiusFactor)

	scene.Root.AddChildren(scene.Globe, scene.Atmosphere.Model)

	for i := range points {
		marker := buildMarker(&points[i], rng)
		scene.Markers = append(scene.Markers, marker)
		scene.Root.AddChildren(marker.Group)
	}

	return scene, nil

}

// buildGrid returns latitude rings every 20 degrees from -80 to 80, sampled every 5 degrees of longitude, and longitude
// rings every 30 degrees from -180 to 180, sampled every 3 degrees of latitude.
func buildGrid(radius float64) (latitudeRings, longitudeRings []*Model) {

	mat := NewMaterial("Grid")
	mat.Color = NewColorFromHex(0x004400).WithAlpha(0.4)

	for lat := -80; lat <= 80; lat += 20 {
		points := make([]Vector, 0, 73)
		for lon := -180; lon <= 180; lon += 5 {
			points = append(points, Project(float64(lat), float64(lon), radius))
		}
		latitudeRings = append(latitudeRings, NewModel("Latitude Ring", NewLineStripMesh(points, false), mat))
	}

	for lon := -180; lon <= 180; lon += 30 {
		points := make([]Vector, 0, 61)
		for lat := -90; lat <= 90; lat += 3 {
			points = append(points, Project(float64(lat), float64(lon), radius))
		}
		longitudeRings = append(longitudeRings, NewModel("Longitude Ring", NewLineStripMesh(points, false), mat))
	}

	return latitudeRings, longitudeRings

}

func buildMarker(point *GeoPoint, rng *rand.Rand) *Marker {

	glyphMat := NewMaterial("Marker Glyph")
	glyphMat.Color = point.Color.WithAlpha(0.9)
	glyph := NewModel(point.Name, NewOctahedronMesh(0.15), glyphMat)

	ringMat := NewMaterial("Marker Ring")
	ringMat.Color = point.Color.WithAlpha(0.4)
	ringMat.CullMode = CullModeNone
	ring := NewModel("Ring", NewRingMesh(0.2, 0.25, 16), ringMat)

	beamMat := NewMaterial("Marker Beam")
	beamMat.Color = point.Color.WithAlpha(0.6)
	beam := NewModel("Beam", NewCylinderMesh(0.02, 1, 8), beamMat)
	// The group's +Z faces the globe's center, so the beam runs along -Z.
	beam.SetLocalRotation(NewMatrix4Rotate(1, 0, 0, -math.Pi/2))
	beam.SetLocalPosition(0, 0, -0.5)

	group := NewNode(point.Name)
	group.SetData(point)
	group.AddChildren(glyph, ring, beam)

	position := point.Position(EarthRadius * MarkerRadiusFactor)
	rotation := NewLookAtMatrix(position, Vector{}, WorldUp)

	group.SetLocalPositionVec(position)
	group.SetLocalRotation(rotation)

	phase := rng.Float64() * math.Pi * 2

	return &Marker{
		Point:        point,
		Group:        group,
		Glyph:        glyph,
		Ring:         ring,
		Beam:         beam,
		PulsePhase:   phase,
		phase0:       phase,
		PulseSpeed:   (rng.Float64()*0.02 + 0.01) * 1000,
		BasePosition: position,
		BaseRotation: rotation,
	}

}
