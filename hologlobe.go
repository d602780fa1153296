package hologlobe

// hologlobe renders an interactive, stylized wireframe globe with geographic markers by usage of Ebitengine.
// A GlobeWidget owns the scene, the orbit and camera state, and the input state machine; it implements ebiten.Game,
// so a host can run it directly with ebiten.RunGame().

import "errors"

const (
	EarthRadius = 5.0 // Radius of the base sphere, in world units.

	ContinentRadiusFactor  = 1.001
	GridRadiusFactor       = 1.002
	MarkerRadiusFactor     = 1.15
	InnerGlowRadiusFactor  = 0.98
	AtmosphereRadiusFactor = 1.2
	ScanInnerRadiusFactor  = 1.30
	ScanOuterRadiusFactor  = 1.35
)

// Default tunables; every one of these can be overridden through Options.
const (
	DefaultSensitivity         = 0.01  // Radians of orbit per pixel dragged
	DefaultZoomSensitivity     = 0.01  // World units of zoom per pixel scrolled
	DefaultMinDistance         = 8.0   // Closest the camera gets to the globe's center
	DefaultMaxDistance         = 25.0  // Furthest the camera gets from the globe's center
	DefaultDistance            = 15.0  // Camera distance on start and after ResetView()
	DefaultSmoothing           = 0.05  // Fraction of the remaining orbit gap closed each frame
	DefaultAutoRotateIncrement = 0.003 // Radians added to the Y target each frame while auto-rotating
	DefaultFieldOfView         = 45.0  // Vertical field of view in degrees
	DefaultWheelPixelsPerLine  = 100.0 // How many pixels of scroll a single wheel notch counts for
	DefaultWidth               = 796
	DefaultHeight              = 448

	// ClickDeadZone is how far, in pixels, a pointer may travel between press and release and still count as a click.
	ClickDeadZone = 4.0
)

var (
	ErrNoContainer        = errors.New("host container not found")
	ErrSurfaceUnavailable = errors.New("render surface unavailable")
	ErrInvalidLandmass    = errors.New("invalid landmass outline")
	ErrNotAttached        = errors.New("globe widget is not attached to a host")
)
