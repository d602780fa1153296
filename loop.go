package hologlobe

// AtmosphereParallax is how much of the globe's rotation the atmosphere follows.
const AtmosphereParallax = 0.3

// Tick advances the animation by one frame, to elapsedSeconds since the widget started. It never blocks, and can be
// driven by any scheduler; Update() drives it from Ebitengine's game loop.
func (g *GlobeWidget) Tick(elapsedSeconds float64) {

	dt := elapsedSeconds - g.elapsed
	if dt < 0 {
		dt = 0
	}
	g.elapsed = elapsedSeconds
	g.frames++

	if g.autoRotate && !g.drag.Active {
		g.orbit.AddTarget(0, g.opts.AutoRotateIncrement)
	}

	g.orbit.Smooth(g.opts.Smoothing)

	orbit := g.orbit.Rotation()
	g.Scene.Globe.SetLocalRotation(orbit)

	atmo := g.Scene.Atmosphere
	atmo.SetLocalRotation(NewMatrix4RotateXY(g.orbit.CurrentX*AtmosphereParallax, g.orbit.CurrentY*AtmosphereParallax))
	atmo.SetTime(elapsedSeconds)

	for _, marker := range g.Scene.Markers {
		marker.update(elapsedSeconds, orbit)
	}

	g.advanceScanLines()

	g.HUD.Update(dt)

	g.syncCamera()

}

func (g *GlobeWidget) advanceScanLines() {

	live := g.scanLines[:0]

	for _, scan := range g.scanLines {
		if scan.Advance() {
			scan.Model.Unparent()
			continue
		}
		live = append(live, scan)
	}

	for i := len(live); i < len(g.scanLines); i++ {
		g.scanLines[i] = nil
	}

	g.scanLines = live

}
