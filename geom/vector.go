package geom

import "math"

// Vec2 is a mutable 2D vector. The Add/Sub/Scale methods mutate in place;
// callers that need the original value must copy first.
type Vec2 struct {
	X, Y float64
}

func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Set overwrites both components.
func (v *Vec2) Set(x, y float64) {
	v.X = x
	v.Y = y
}

// Add adds other into v.
func (v *Vec2) Add(other Vec2) {
	v.X += other.X
	v.Y += other.Y
}

// Sub subtracts other from v.
func (v *Vec2) Sub(other Vec2) {
	v.X -= other.X
	v.Y -= other.Y
}

// Scale multiplies both components by factor.
func (v *Vec2) Scale(factor float64) {
	v.X *= factor
	v.Y *= factor
}

// Normalize scales v to unit length. A zero vector stays zero.
func (v *Vec2) Normalize() {
	mag := v.Length()
	if mag == 0 {
		return
	}
	inv := 1.0 / mag
	v.X *= inv
	v.Y *= inv
}

func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

func (v Vec2) Distance(other Vec2) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Plus returns v + other without mutating v.
func (v Vec2) Plus(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Minus returns v - other without mutating v.
func (v Vec2) Minus(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scaled returns v * factor without mutating v.
func (v Vec2) Scaled(factor float64) Vec2 {
	return Vec2{X: v.X * factor, Y: v.Y * factor}
}

// Lerp returns the linear interpolation between a and b at t.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
