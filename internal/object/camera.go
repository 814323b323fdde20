// Package object holds the ship, asteroid factory, camera transform and
// visual particles of the asteroid field.
package object

import (
	"math"

	"github.com/tomz197/asteroidfield/internal/physics"
)

// CullMargin is how far outside the viewport a body may sit and still be
// considered visible, so large rocks don't pop at the edges.
const CullMargin = 100.0

// Viewport is the visible area in world units.
type Viewport struct {
	Width  float64
	Height float64
}

// Center returns the viewport center in screen coordinates.
func (v Viewport) Center() physics.Vec2 {
	return physics.Vec2{X: v.Width / 2, Y: v.Height / 2}
}

// Contains reports whether a screen position lies inside the viewport.
func (v Viewport) Contains(screen physics.Vec2) bool {
	return screen.X >= 0 && screen.X < v.Width && screen.Y >= 0 && screen.Y < v.Height
}

// WorldToScreen converts world coordinates to screen coordinates for a
// camera centered on the given world position.
func WorldToScreen(world, camera physics.Vec2, view Viewport) physics.Vec2 {
	return world.Sub(camera).Add(view.Center())
}

// Visible reports whether a screen position falls within the viewport
// expanded by CullMargin on every side. Renderers skip bodies that fail it.
func Visible(screen physics.Vec2, view Viewport) bool {
	return screen.X >= -CullMargin && screen.X <= view.Width+CullMargin &&
		screen.Y >= -CullMargin && screen.Y <= view.Height+CullMargin
}

// EdgeArrow places an indicator on the viewport edge pointing from the
// center toward an off-screen target. inset keeps the arrow away from the
// border. ok is false when the target is on screen and no arrow is needed.
func EdgeArrow(target physics.Vec2, view Viewport, inset float64) (pos physics.Vec2, angle float64, ok bool) {
	if view.Contains(target) {
		return physics.Vec2{}, 0, false
	}

	center := view.Center()
	d := target.Sub(center)
	angle = math.Atan2(d.Y, d.X)

	halfW := view.Width/2 - inset
	halfH := view.Height/2 - inset

	// Pick the edge the ray from center to target crosses first
	if math.Abs(d.X)*halfH > math.Abs(d.Y)*halfW {
		x := halfW
		if d.X < 0 {
			x = -halfW
		}
		pos = center.Add(physics.Vec2{X: x, Y: d.Y * halfW / math.Abs(d.X)})
	} else {
		y := halfH
		if d.Y < 0 {
			y = -halfH
		}
		pos = center.Add(physics.Vec2{X: d.X * halfH / math.Abs(d.Y), Y: y})
	}
	return pos, angle, true
}
