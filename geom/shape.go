package geom

import "math"

// Shape is a collision primitive positioned in world space. Implementations
// keep their position synchronized with the owning body every update.
type Shape interface {
	// Bounds returns the world-space axis-aligned bounding box.
	Bounds() AABB
	// Center returns the world-space center point.
	Center() Vec2
	// SetCenter moves the shape so its center is at c.
	SetCenter(c Vec2)
	// Intersects reports whether the shape overlaps other.
	Intersects(other Shape) bool
}

// AABB is an axis-aligned box identified by its top-left corner.
type AABB struct {
	X, Y          float64
	Width, Height float64
}

func NewAABB(x, y, w, h float64) *AABB {
	return &AABB{X: x, Y: y, Width: w, Height: h}
}

func (a *AABB) Bounds() AABB {
	return *a
}

func (a *AABB) Center() Vec2 {
	return Vec2{X: a.X + a.Width/2, Y: a.Y + a.Height/2}
}

func (a *AABB) SetCenter(c Vec2) {
	a.X = c.X - a.Width/2
	a.Y = c.Y - a.Height/2
}

func (a *AABB) Intersects(other Shape) bool {
	switch o := other.(type) {
	case *AABB:
		return a.overlapsBox(*o)
	case *Circle:
		return circleOverlapsBox(o, *a)
	default:
		if other == nil {
			return false
		}
		return a.overlapsBox(other.Bounds())
	}
}

func (a *AABB) overlapsBox(b AABB) bool {
	return a.X < b.X+b.Width &&
		a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height &&
		a.Y+a.Height > b.Y
}

// Contains reports whether the point lies inside the box.
func (a *AABB) Contains(p Vec2) bool {
	return p.X >= a.X && p.X <= a.X+a.Width &&
		p.Y >= a.Y && p.Y <= a.Y+a.Height
}

// Circle is a circle identified by its center.
type Circle struct {
	Pos    Vec2
	Radius float64
}

func NewCircle(x, y, r float64) *Circle {
	return &Circle{Pos: Vec2{X: x, Y: y}, Radius: r}
}

func (c *Circle) Bounds() AABB {
	return AABB{
		X:      c.Pos.X - c.Radius,
		Y:      c.Pos.Y - c.Radius,
		Width:  c.Radius * 2,
		Height: c.Radius * 2,
	}
}

func (c *Circle) Center() Vec2 {
	return c.Pos
}

func (c *Circle) SetCenter(p Vec2) {
	c.Pos = p
}

func (c *Circle) Intersects(other Shape) bool {
	switch o := other.(type) {
	case *Circle:
		r := c.Radius + o.Radius
		return c.Pos.Minus(o.Pos).LengthSquared() <= r*r
	case *AABB:
		return circleOverlapsBox(c, *o)
	default:
		if other == nil {
			return false
		}
		b := c.Bounds()
		return b.overlapsBox(other.Bounds())
	}
}

func circleOverlapsBox(c *Circle, b AABB) bool {
	// closest point on the box to the circle center
	cx := math.Max(b.X, math.Min(c.Pos.X, b.X+b.Width))
	cy := math.Max(b.Y, math.Min(c.Pos.Y, b.Y+b.Height))
	dx := c.Pos.X - cx
	dy := c.Pos.Y - cy
	return dx*dx+dy*dy <= c.Radius*c.Radius
}
