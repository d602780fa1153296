package hologlobe

import "fmt"

// PickAt casts a ray from the camera through the pixel position given and returns the Marker whose glyph it strikes
// first. Rings and beams aren't pickable.
func (g *GlobeWidget) PickAt(x, y float64) (*Marker, bool) {

	glyphs := make([]*Model, 0, len(g.Scene.Markers))
	owners := make(map[*Model]*Marker, len(g.Scene.Markers))

	for _, marker := range g.Scene.Markers {
		glyphs = append(glyphs, marker.Glyph)
		owners[marker.Glyph] = marker
	}

	hits := RayTest(g.Camera.ScreenToRay(x, y), glyphs...)
	if len(hits) == 0 {
		return nil, false
	}

	return owners[hits[0].Object], true

}

// Select picks at the pixel position given and, on a hit, tells the user which location was picked through the
// Host and the HUD. A miss does nothing.
func (g *GlobeWidget) Select(x, y float64) (*Marker, bool) {

	marker, ok := g.PickAt(x, y)
	if !ok {
		g.logger.Debug().Float64("x", x).Float64("y", y).Msg("pick missed")
		return nil, false
	}

	message := LocationMessage(*marker.Point)

	g.logger.Debug().Str("location", marker.Point.Name).Msg("marker picked")

	g.HUD.ShowToast(marker.Point.Name, message)
	if g.host != nil {
		g.host.Notify(marker.Point.Name, message)
	}

	return marker, true

}

// LocationMessage returns the notification text for a picked location.
func LocationMessage(point GeoPoint) string {
	return fmt.Sprintf("Location: %s\nCoordinates: %v°, %v°", point.Name, point.Latitude, point.Longitude)
}
