package hologlobe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestCamera() *Camera {
	camera := NewCamera(796, 448)
	camera.SetLocalPosition(0, 0, 15)
	return camera
}

func TestCamera_WorldToScreenPixels(t *testing.T) {
	camera := newTestCamera()

	center := camera.WorldToScreenPixels(NewVectorZero())
	assert.InDelta(t, 398.0, center.X, 1e-9)
	assert.InDelta(t, 224.0, center.Y, 1e-9)
	assert.InDelta(t, 15.0, center.W, 1e-9)

	// Up in the world is up on the screen.
	up := camera.WorldToScreenPixels(NewVector(0, 1, 0))
	assert.Less(t, up.Y, center.Y)

	right := camera.WorldToScreenPixels(NewVector(1, 0, 0))
	assert.Greater(t, right.X, center.X)

	behind := camera.WorldToScreenPixels(NewVector(0, 0, 20))
	assert.Less(t, behind.W, camera.Near())
}

func TestCamera_ScreenToRay(t *testing.T) {
	camera := newTestCamera()

	ray := camera.ScreenToRay(398, 224)
	assertVectorInDelta(t, NewVector(0, 0, 15), ray.Origin, 1e-9)
	assertVectorInDelta(t, NewVector(0, 0, -1), ray.Direction, 1e-9)

	for _, p := range []Vector{NewVector(1.2, 3.75, 4.19), NewVector(-4, -2, 1), NewVector(3, 0, -5)} {
		px := camera.WorldToScreenPixels(p)
		ray := camera.ScreenToRay(px.X, px.Y)
		assertVectorInDelta(t, p.Sub(ray.Origin).Unit(), ray.Direction, 1e-9, "%v", p)
	}
}

func TestCamera_Resize(t *testing.T) {
	camera := NewCamera(100, 100)
	assert.InDelta(t, 1.0, camera.AspectRatio(), 1e-12)

	camera.Resize(400, 200)
	w, h := camera.Size()
	assert.Equal(t, 400, w)
	assert.Equal(t, 200, h)
	assert.InDelta(t, 2.0, camera.AspectRatio(), 1e-12)
	assert.True(t, camera.Projection().Equals(NewProjectionPerspective(DefaultFieldOfView, 0.1, 1000, 400, 200)))

	camera.Resize(0, -5)
	w, h = camera.Size()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestCamera_FieldOfView(t *testing.T) {
	camera := newTestCamera()

	edge := camera.WorldToScreenPixels(NewVector(0, 3, 0))

	camera.SetFieldOfView(30)
	assert.InDelta(t, 30.0, camera.FieldOfView(), 1e-12)

	narrower := camera.WorldToScreenPixels(NewVector(0, 3, 0))
	assert.Less(t, narrower.Y, edge.Y, "a narrower field of view magnifies")
}
