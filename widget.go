package hologlobe

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Host is the environment a GlobeWidget is shown in: a desktop window, or a page in a browser.
type Host interface {
	// Container returns the size, in pixels, of the area the globe renders into, or an error if there is none.
	Container() (w, h int, err error)
	// HideLoading hides the host's loading indicator. It's called once, after the first frame is drawn.
	HideLoading()
	// ShowError surfaces an initialization failure to the user.
	ShowError(err error)
	// Notify shows a message to the user, such as the details of a picked marker.
	Notify(title, message string)
}

// ContainerFitter is implemented by hosts whose container, rather than the outside size Ebitengine reports, sets the
// size of the render surface. Layout asks such hosts for their container size every frame.
type ContainerFitter interface {
	FitsContainer() bool
}

// Options configures a GlobeWidget. Zero values are replaced with defaults by NewGlobeWidget(), except for the booleans.
type Options struct {
	Width  int
	Height int

	Locations []GeoPoint // Locations to mark; DefaultLocations() when empty

	AutoRotate          bool
	AutoRotateIncrement float64
	Smoothing           float64

	Controls           Controls
	WheelPixelsPerLine float64

	MinDistance     float64
	MaxDistance     float64
	DefaultDistance float64
	FieldOfView     float64

	Seed uint64 // Seed for the markers' pulse randomization; 0 picks a random seed
}

// DefaultOptions returns the Options the globe uses when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Width:               DefaultWidth,
		Height:              DefaultHeight,
		AutoRotate:          true,
		AutoRotateIncrement: DefaultAutoRotateIncrement,
		Smoothing:           DefaultSmoothing,
		Controls:            DefaultControls(),
		WheelPixelsPerLine:  DefaultWheelPixelsPerLine,
		MinDistance:         DefaultMinDistance,
		MaxDistance:         DefaultMaxDistance,
		DefaultDistance:     DefaultDistance,
		FieldOfView:         DefaultFieldOfView,
	}
}

func (opts Options) withDefaults() Options {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if len(opts.Locations) == 0 {
		opts.Locations = DefaultLocations()
	}
	if opts.AutoRotateIncrement == 0 {
		opts.AutoRotateIncrement = def.AutoRotateIncrement
	}
	if opts.Smoothing <= 0 || opts.Smoothing > 1 {
		opts.Smoothing = def.Smoothing
	}
	if opts.Controls.Sensitivity == 0 {
		opts.Controls.Sensitivity = def.Controls.Sensitivity
	}
	if opts.Controls.ZoomSensitivity == 0 {
		opts.Controls.ZoomSensitivity = def.Controls.ZoomSensitivity
	}
	if opts.Controls.ClickDeadZone <= 0 {
		opts.Controls.ClickDeadZone = def.Controls.ClickDeadZone
	}
	if opts.WheelPixelsPerLine <= 0 {
		opts.WheelPixelsPerLine = def.WheelPixelsPerLine
	}
	if opts.MinDistance <= 0 {
		opts.MinDistance = def.MinDistance
	}
	if opts.MaxDistance < opts.MinDistance {
		opts.MaxDistance = max(def.MaxDistance, opts.MinDistance)
	}
	if opts.DefaultDistance <= 0 {
		opts.DefaultDistance = def.DefaultDistance
	}
	if opts.FieldOfView <= 0 || opts.FieldOfView >= 180 {
		opts.FieldOfView = def.FieldOfView
	}
	return opts
}

// WidgetOption customizes a GlobeWidget at construction.
type WidgetOption func(*GlobeWidget)

// WithLogger sets the logger the GlobeWidget reports to. By default, nothing is logged.
func WithLogger(logger zerolog.Logger) WidgetOption {
	return func(g *GlobeWidget) {
		g.logger = logger
	}
}

// WithClock sets the function the GlobeWidget reads wall-clock time from in Update().
func WithClock(now func() time.Time) WidgetOption {
	return func(g *GlobeWidget) {
		g.now = now
	}
}

// GlobeWidget is an interactive wireframe globe. It owns its scene, camera, orbit and input state, so any number of
// them can exist side by side. GlobeWidget implements ebiten.Game.
type GlobeWidget struct {
	opts   Options
	logger zerolog.Logger
	now    func() time.Time

	host     Host
	attached bool
	initErr  error

	Scene  *Scene
	Camera *Camera
	HUD    *HUD
	Input  *InputAdapter

	orbit       OrbitState
	cameraState CameraState
	drag        DragState

	autoRotate bool
	wireframe  bool
	scanLines  []*ScanLine

	start         time.Time
	elapsed       float64
	frames        uint64
	loadingHidden bool
	shaderWarned  bool

	// DrawDebugInfo draws the camera's render statistics over the globe.
	DrawDebugInfo bool
}

// NewGlobeWidget builds a GlobeWidget's scene with the options given. The widget must be attached to a Host before
// it's run.
func NewGlobeWidget(opts Options, options ...WidgetOption) (*GlobeWidget, error) {

	opts = opts.withDefaults()

	g := &GlobeWidget{
		opts:       opts,
		logger:     zerolog.Nop(),
		now:        time.Now,
		HUD:        NewHUD(),
		Input:      NewInputAdapter(opts.WheelPixelsPerLine),
		autoRotate: opts.AutoRotate,
	}

	for _, option := range options {
		option(g)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	locations := append([]GeoPoint(nil), opts.Locations...)

	scene, err := BuildScene(locations, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
	if err != nil {
		return nil, fmt.Errorf("building globe scene: %w", err)
	}

	g.Scene = scene
	g.cameraState = NewCameraState(opts.DefaultDistance, opts.MinDistance, opts.MaxDistance)

	g.Camera = NewCamera(opts.Width, opts.Height)
	g.Camera.SetFieldOfView(opts.FieldOfView)
	g.syncCamera()

	g.logger.Info().
		Int("markers", len(scene.Markers)).
		Int("landmasses", len(scene.Landmasses)).
		Int("latitudeRings", len(scene.LatitudeRings)).
		Int("longitudeRings", len(scene.LongitudeRings)).
		Msg("globe scene built")

	return g, nil

}

// Attach connects the GlobeWidget to its Host, sizing the camera to the Host's container. If the container can't be
// found or has no area, the error is shown through the Host, the loading indicator stays up, and Update() returns
// the error from then on.
func (g *GlobeWidget) Attach(host Host) error {

	g.host = host

	w, h, err := host.Container()
	if err != nil {
		err = fmt.Errorf("attaching globe: %w", err)
	} else if w <= 0 || h <= 0 {
		err = fmt.Errorf("attaching globe: container is %dx%d: %w", w, h, ErrSurfaceUnavailable)
	}

	if err != nil {
		g.initErr = err
		g.logger.Error().Err(err).Msg("globe initialization failed")
		host.ShowError(err)
		return err
	}

	g.Resize(w, h)
	g.attached = true
	g.initErr = nil
	g.start = g.now()

	g.logger.Info().Int("width", w).Int("height", h).Msg("globe attached")

	return nil

}

// Err returns the initialization error, if any.
func (g *GlobeWidget) Err() error {
	return g.initErr
}

// Orbit returns the current orbit state.
func (g *GlobeWidget) Orbit() OrbitState {
	return g.orbit
}

// Drag returns the current drag state.
func (g *GlobeWidget) Drag() DragState {
	return g.drag
}

// CameraDistance returns the camera's current distance from the globe's center.
func (g *GlobeWidget) CameraDistance() float64 {
	return g.cameraState.Distance()
}

// Markers returns the globe's Markers.
func (g *GlobeWidget) Markers() []*Marker {
	return g.Scene.Markers
}

// Frames returns the number of frames ticked so far.
func (g *GlobeWidget) Frames() uint64 {
	return g.frames
}

// HandlePointer runs a pointer or touch event through the drag state machine, applying the resulting orbit change and
// picking on clicks.
func (g *GlobeWidget) HandlePointer(event PointerEvent) {

	var delta OrbitDelta
	g.drag, delta = g.opts.Controls.Transition(g.drag, event)

	if delta.DX != 0 || delta.DY != 0 {
		g.orbit.AddTarget(delta.DX, delta.DY)
	}

	if delta.Click {
		g.Select(delta.ClickX, delta.ClickY)
	}

}

// HandleWheel zooms the camera by a scroll of deltaY pixels; positive values zoom out.
func (g *GlobeWidget) HandleWheel(deltaY float64) {
	if deltaY == 0 {
		return
	}
	g.cameraState.SetDistance(g.opts.Controls.Zoom(g.cameraState.Distance(), deltaY))
	g.syncCamera()
}

// Resize resizes the render surface, recomputing the camera's aspect ratio.
func (g *GlobeWidget) Resize(w, h int) {
	if cw, ch := g.Camera.Size(); cw == w && ch == h {
		return
	}
	g.Camera.Resize(w, h)
	g.logger.Debug().Int("width", w).Int("height", h).Msg("globe resized")
}

func (g *GlobeWidget) syncCamera() {
	g.Camera.SetLocalPosition(0, 0, g.cameraState.Distance())
}

// Update implements ebiten.Game: it polls input, then advances the animation to the current wall-clock time.
func (g *GlobeWidget) Update() error {

	if g.initErr != nil {
		return g.initErr
	}

	if !g.attached {
		return ErrNotAttached
	}

	events, wheel := g.Input.Poll()
	for _, event := range events {
		g.HandlePointer(event)
	}
	g.HandleWheel(wheel)

	g.Tick(g.now().Sub(g.start).Seconds())

	return nil

}

// Draw implements ebiten.Game.
func (g *GlobeWidget) Draw(screen *ebiten.Image) {

	if g.initErr != nil {
		g.HUD.DrawError(screen, g.initErr)
		return
	}

	if !g.attached {
		g.HUD.DrawLoading(screen, 0)
		return
	}

	if err := g.Scene.Atmosphere.compileShader(); err != nil && !g.shaderWarned {
		g.shaderWarned = true
		g.logger.Warn().Err(err).Msg("drawing atmosphere without its shader")
	}

	screen.Fill(color.Black)

	g.Camera.Render(screen, g.Scene.Root)

	g.HUD.Draw(screen)

	if g.DrawDebugInfo {
		g.HUD.DrawDebugRenderInfo(screen, g.Camera)
	}

	g.frameDrawn()

}

// frameDrawn hides the host's loading indicator after the first frame.
func (g *GlobeWidget) frameDrawn() {
	if g.loadingHidden || g.host == nil {
		return
	}
	g.loadingHidden = true
	g.host.HideLoading()
	g.logger.Info().Msg("first frame drawn")
}

// Layout implements ebiten.Game. The render surface matches the outside size, unless the host is a ContainerFitter,
// in which case it matches the host's container.
func (g *GlobeWidget) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := outsideWidth, outsideHeight
	if fitter, ok := g.host.(ContainerFitter); ok && g.attached && fitter.FitsContainer() {
		if cw, ch, err := g.host.Container(); err == nil && cw > 0 && ch > 0 {
			w, h = cw, ch
		}
	}
	g.Resize(w, h)
	return max(w, 1), max(h, 1)
}
