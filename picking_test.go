package hologlobe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func markerNamed(t *testing.T, g *GlobeWidget, name string) *Marker {
	t.Helper()
	for _, marker := range g.Markers() {
		if marker.Point.Name == name {
			return marker
		}
	}
	t.Fatalf("no marker named %q", name)
	return nil
}

func TestPickAt(t *testing.T) {
	g := newTestWidget(t, newTestOptions())

	for _, name := range []string{"New York", "London", "São Paulo"} {
		marker := markerNamed(t, g, name)
		px := g.Camera.WorldToScreenPixels(marker.Group.WorldPosition())

		picked, ok := g.PickAt(px.X, px.Y)
		require.True(t, ok, name)
		assert.Equal(t, name, picked.Point.Name)
		assert.Same(t, marker, picked)
	}

	_, ok := g.PickAt(1, 1)
	assert.False(t, ok, "the corner of the view is empty space")
}

func TestPickAt_FollowsRotation(t *testing.T) {
	g := newTestWidget(t, newTestOptions())
	g.orbit.SetTarget(0.3, 2)
	g.orbit.Smooth(1)
	g.Tick(0)

	marker := markerNamed(t, g, "Tokyo")
	px := g.Camera.WorldToScreenPixels(marker.Group.WorldPosition())
	require.Greater(t, px.W, g.Camera.Near())

	picked, ok := g.PickAt(px.X, px.Y)
	require.True(t, ok)
	assert.Equal(t, "Tokyo", picked.Point.Name)
}

func TestSelect_Notifies(t *testing.T) {
	g := newTestWidget(t, newTestOptions())
	host := &fakeHost{w: DefaultWidth, h: DefaultHeight}
	require.NoError(t, g.Attach(host))

	marker := markerNamed(t, g, "New York")
	px := g.Camera.WorldToScreenPixels(marker.Group.WorldPosition())

	// A click is a press and release that stays inside the dead zone.
	g.HandlePointer(PointerEvent{Kind: PointerDown, X: px.X, Y: px.Y})
	g.HandlePointer(PointerEvent{Kind: PointerUp, X: px.X + 1, Y: px.Y})

	require.Len(t, host.notifications, 1)
	assert.Equal(t, "New York", host.notifications[0].title)
	assert.Equal(t, "Location: New York\nCoordinates: 40.7128°, -74.006°", host.notifications[0].message)
	assert.True(t, g.HUD.ToastVisible())

	// Dragging across the marker isn't a click.
	g.HandlePointer(PointerEvent{Kind: PointerDown, X: px.X - 30, Y: px.Y})
	g.HandlePointer(PointerEvent{Kind: PointerMove, X: px.X, Y: px.Y})
	g.HandlePointer(PointerEvent{Kind: PointerUp, X: px.X, Y: px.Y})

	assert.Len(t, host.notifications, 1)

	// Clicking empty space does nothing.
	_, ok := g.Select(1, 1)
	assert.False(t, ok)
	assert.Len(t, host.notifications, 1)
}

func TestLocationMessage(t *testing.T) {
	msg := LocationMessage(GeoPoint{Name: "Sydney", Latitude: -33.8688, Longitude: 151.2093})
	assert.Equal(t, "Location: Sydney\nCoordinates: -33.8688°, 151.2093°", msg)
}
