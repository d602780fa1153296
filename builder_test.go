package hologlobe

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestScene(t *testing.T) *Scene {
	t.Helper()
	scene, err := BuildScene(DefaultLocations(), rand.New(rand.NewPCG(3, 4)))
	require.NoError(t, err)
	return scene
}

func TestBuildScene_Grid(t *testing.T) {
	scene := buildTestScene(t)

	require.Len(t, scene.LatitudeRings, 9)
	require.Len(t, scene.LongitudeRings, 13)

	for _, ring := range scene.LatitudeRings {
		assert.Len(t, ring.Mesh.VertexPositions, 73)
		assert.Len(t, ring.Mesh.Lines, 72)
		assert.Same(t, scene.Globe, ring.Parent())
	}

	for _, ring := range scene.LongitudeRings {
		assert.Len(t, ring.Mesh.VertexPositions, 61)
		for _, v := range ring.Mesh.VertexPositions {
			assert.InDelta(t, EarthRadius*GridRadiusFactor, v.Magnitude(), 1e-9)
		}
	}

	// Latitude rings run from -80 to 80 degrees.
	assert.InDelta(t, Project(-80, 0, EarthRadius*GridRadiusFactor).Y, scene.LatitudeRings[0].Mesh.VertexPositions[0].Y, 1e-9)
	assert.InDelta(t, Project(80, 0, EarthRadius*GridRadiusFactor).Y, scene.LatitudeRings[8].Mesh.VertexPositions[0].Y, 1e-9)
}

func TestBuildScene_Layers(t *testing.T) {
	scene := buildTestScene(t)

	assert.Len(t, scene.Continents, 6)
	assert.Len(t, scene.Landmasses, 6)
	assert.True(t, scene.BaseSphere.Material.Wireframe)
	assert.InDelta(t, EarthRadius, scene.BaseSphere.Mesh.Radius(), 1e-9)
	assert.InDelta(t, EarthRadius*InnerGlowRadiusFactor, scene.InnerGlow.Mesh.Radius(), 1e-9)
	assert.InDelta(t, EarthRadius*AtmosphereRadiusFactor, scene.Atmosphere.Mesh.Radius(), 1e-9)

	for _, c := range scene.Continents {
		assert.Same(t, scene.Globe, c.Parent())
		assert.Empty(t, c.Mesh.Triangles)
	}

	// The atmosphere and the markers aren't part of the rotating globe.
	assert.Same(t, scene.Root, scene.Atmosphere.Parent())
	for _, marker := range scene.Markers {
		assert.Same(t, scene.Root, marker.Group.Parent())
	}

	names := []string{}
	for _, model := range Models(scene.Root) {
		names = append(names, model.Name())
	}
	assert.Contains(t, names, "Atmosphere")
	assert.Contains(t, names, "Inner Glow")
	assert.Contains(t, names, "New York")
}

func TestBuildScene_Markers(t *testing.T) {
	points := DefaultLocations()
	scene, err := BuildScene(points, rand.New(rand.NewPCG(3, 4)))
	require.NoError(t, err)
	require.Len(t, scene.Markers, len(points))

	for i, marker := range scene.Markers {

		assert.Same(t, &points[i], marker.Point)
		assert.Same(t, &points[i], marker.Group.Data())
		assert.Equal(t, points[i].Name, marker.Glyph.Name())

		pos := marker.Group.WorldPosition()
		assert.InDelta(t, EarthRadius*MarkerRadiusFactor, pos.Magnitude(), 1e-9)
		assertVectorInDelta(t, points[i].Position(EarthRadius*MarkerRadiusFactor), pos, 1e-9)

		// The group faces the globe's center.
		assertVectorInDelta(t, pos.Unit().Invert(), marker.Group.Transform().Forward(), 1e-9, points[i].Name)

		// The beam points away from the globe, starting at the glyph.
		assertVectorInDelta(t, pos.Unit(), marker.Beam.Transform().Up(), 1e-9, points[i].Name)
		assert.InDelta(t, EarthRadius*MarkerRadiusFactor+0.5, marker.Beam.WorldPosition().Magnitude(), 1e-9)

		assert.Equal(t, CullModeNone, marker.Ring.Material.CullMode)
		assert.InDelta(t, 0.9, marker.Glyph.Material.Opacity(), 1e-6)
		assert.Equal(t, points[i].Color.Hex(), marker.Glyph.Material.Color.Hex())
	}
}

func TestBuildScene_MarkersDontShareMaterials(t *testing.T) {
	scene := buildTestScene(t)

	scene.Markers[0].Glyph.Material.Wireframe = true
	assert.False(t, scene.Markers[1].Glyph.Material.Wireframe)
}
