package hologlobe

// ToggleRotation flips auto-rotation on or off. While it's off, the globe still eases towards its target angles.
func (g *GlobeWidget) ToggleRotation() {
	g.autoRotate = !g.autoRotate
	g.logger.Debug().Bool("autoRotate", g.autoRotate).Msg("rotation toggled")
}

// AutoRotating returns whether auto-rotation is on.
func (g *GlobeWidget) AutoRotating() bool {
	return g.autoRotate
}

// ResetView sets the target angles to zero and the camera back to its default distance. The current angles are left
// alone, so the globe eases back over the following frames. Calling it twice is the same as calling it once.
func (g *GlobeWidget) ResetView() {
	g.orbit.SetTarget(0, 0)
	g.cameraState.SetDistance(g.opts.DefaultDistance)
	g.syncCamera()
	g.logger.Debug().Msg("view reset")
}

// AddScanLines starts a scan line sweep. Every call adds another, independent ring.
func (g *GlobeWidget) AddScanLines() {
	scan := NewScanLine(EarthRadius*ScanInnerRadiusFactor, EarthRadius*ScanOuterRadiusFactor)
	g.scanLines = append(g.scanLines, scan)
	g.Scene.Root.AddChildren(scan.Model)
	g.logger.Debug().Int("active", len(g.scanLines)).Msg("scan line added")
}

// ScanLines returns the scan lines currently sweeping.
func (g *GlobeWidget) ScanLines() []*ScanLine {
	return g.scanLines
}

// ToggleWireframe switches the inner glow and the marker glyphs between filled and wireframe drawing.
func (g *GlobeWidget) ToggleWireframe() {
	g.wireframe = !g.wireframe
	g.Scene.InnerGlow.Material.Wireframe = g.wireframe
	for _, marker := range g.Scene.Markers {
		marker.Glyph.Material.Wireframe = g.wireframe
	}
	g.logger.Debug().Bool("wireframe", g.wireframe).Msg("wireframe toggled")
}

// Wireframe returns whether the globe is in wireframe mode.
func (g *GlobeWidget) Wireframe() bool {
	return g.wireframe
}
