package hologlobe

import (
	"math"
)

// OrbitState holds the globe's rotation, in radians. Targets are written by input and auto-rotation; the current
// angles chase them a little every frame.
type OrbitState struct {
	CurrentX float64
	CurrentY float64
	TargetX  float64
	TargetY  float64
}

// SetTarget sets both target angles, clamping the X (tilt) angle to [-π/2, π/2].
func (orbit *OrbitState) SetTarget(x, y float64) {
	orbit.TargetX = clamp(x, -math.Pi/2, math.Pi/2)
	orbit.TargetY = y
}

// AddTarget adds to the target angles, clamping the X (tilt) angle to [-π/2, π/2].
func (orbit *OrbitState) AddTarget(dx, dy float64) {
	orbit.SetTarget(orbit.TargetX+dx, orbit.TargetY+dy)
}

// Smooth moves the current angles towards the targets by the fraction given.
func (orbit *OrbitState) Smooth(factor float64) {
	orbit.CurrentX += (orbit.TargetX - orbit.CurrentX) * factor
	orbit.CurrentY += (orbit.TargetY - orbit.CurrentY) * factor
}

// Rotation returns the orbit's current rotation: a spin of CurrentY around +Y followed by a tilt of CurrentX around +X.
func (orbit OrbitState) Rotation() Matrix4 {
	return NewMatrix4RotateXY(orbit.CurrentX, orbit.CurrentY)
}

// CameraState holds the camera's distance from the globe's center, kept within [MinDistance, MaxDistance].
type CameraState struct {
	MinDistance float64
	MaxDistance float64
	distance    float64
}

// NewCameraState returns a CameraState at the distance given, clamped to the range.
func NewCameraState(distance, minDistance, maxDistance float64) CameraState {
	cs := CameraState{MinDistance: minDistance, MaxDistance: maxDistance}
	cs.SetDistance(distance)
	return cs
}

// Distance returns the camera's distance from the globe's center.
func (cs CameraState) Distance() float64 {
	return cs.distance
}

// SetDistance sets the camera's distance, clamped to [MinDistance, MaxDistance].
func (cs *CameraState) SetDistance(distance float64) {
	cs.distance = clamp(distance, cs.MinDistance, cs.MaxDistance)
}

// DragState tracks a drag gesture from press to release.
type DragState struct {
	Active bool
	LastX  float64
	LastY  float64
	PressX float64
	PressY float64
	Moved  bool // Whether the pointer has left the click dead zone since the press
}

type PointerEventKind int

const (
	PointerDown PointerEventKind = iota
	PointerMove
	PointerUp
	TouchStart
	TouchMove
	TouchEnd
	TouchCancel
)

func (kind PointerEventKind) String() string {
	switch kind {
	case PointerDown:
		return "PointerDown"
	case PointerMove:
		return "PointerMove"
	case PointerUp:
		return "PointerUp"
	case TouchStart:
		return "TouchStart"
	case TouchMove:
		return "TouchMove"
	case TouchEnd:
		return "TouchEnd"
	case TouchCancel:
		return "TouchCancel"
	}
	return "Unknown"
}

// PointerEvent is a single mouse or touch event, in pixels. Touches is the number of fingers down when the event
// happened, and is only used by touch events.
type PointerEvent struct {
	Kind    PointerEventKind
	X, Y    float64
	Touches int
}

// OrbitDelta is what a PointerEvent asks of the orbit: radians to add to the X and Y targets, and whether the event
// finished a click (a press and release within the dead zone).
type OrbitDelta struct {
	DX, DY float64
	Click  bool
	ClickX float64
	ClickY float64
}

// Controls holds the tunables of the interaction state machine.
type Controls struct {
	Sensitivity     float64 // Radians of orbit per pixel dragged
	ZoomSensitivity float64 // World units of zoom per pixel scrolled
	ClickDeadZone   float64 // Pixels a press may travel and still count as a click
}

// DefaultControls returns Controls with the default tunables.
func DefaultControls() Controls {
	return Controls{
		Sensitivity:     DefaultSensitivity,
		ZoomSensitivity: DefaultZoomSensitivity,
		ClickDeadZone:   ClickDeadZone,
	}
}

// Transition is the drag state machine: it returns the state following the event and the orbit change it causes.
// It has no side effects.
func (c Controls) Transition(state DragState, event PointerEvent) (DragState, OrbitDelta) {

	switch event.Kind {

	case PointerDown, TouchStart:

		if event.Kind == TouchStart && event.Touches != 1 {
			return state, OrbitDelta{}
		}

		return DragState{
			Active: true,
			LastX:  event.X,
			LastY:  event.Y,
			PressX: event.X,
			PressY: event.Y,
		}, OrbitDelta{}

	case PointerMove, TouchMove:

		if !state.Active || (event.Kind == TouchMove && event.Touches != 1) {
			return state, OrbitDelta{}
		}

		delta := OrbitDelta{
			DX: (event.Y - state.LastY) * c.Sensitivity,
			DY: (event.X - state.LastX) * c.Sensitivity,
		}

		state.LastX = event.X
		state.LastY = event.Y

		if math.Hypot(event.X-state.PressX, event.Y-state.PressY) > c.ClickDeadZone {
			state.Moved = true
		}

		return state, delta

	case PointerUp, TouchEnd:

		if !state.Active {
			return state, OrbitDelta{}
		}

		delta := OrbitDelta{}

		if !state.Moved && math.Hypot(event.X-state.PressX, event.Y-state.PressY) <= c.ClickDeadZone {
			delta.Click = true
			delta.ClickX = event.X
			delta.ClickY = event.Y
		}

		state.Active = false

		return state, delta

	case TouchCancel:

		state.Active = false
		return state, OrbitDelta{}

	}

	return state, OrbitDelta{}

}

// Zoom returns the camera distance after scrolling deltaY pixels (positive zooms out), without clamping.
func (c Controls) Zoom(distance, deltaY float64) float64 {
	return distance + deltaY*c.ZoomSensitivity
}
