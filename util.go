package gdsgeom

import (
	"fmt"
	"math"
)

const Epsilon = 1e-10

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float64
}

// IsZero returns true if P is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Rot rotates the line OP by phi radians CCW around p0.
func (p Point) Rot(phi float64, p0 Point) Point {
	sinphi, cosphi := math.Sincos(phi)
	return Point{
		p0.X + cosphi*(p.X-p0.X) - sinphi*(p.Y-p0.Y),
		p0.Y + sinphi*(p.X-p0.X) + cosphi*(p.Y-p0.Y),
	}
}

// PerpDot returns the perp dot product between OP and OQ, ie. zero if aligned and |OP|*|OQ| if perpendicular.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) String() string {
	return fmt.Sprintf("[%g; %g]", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned rectangle spanning [X0,X1] x [Y0,Y1].
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// W returns the width of the rectangle.
func (r Rect) W() float64 {
	return r.X1 - r.X0
}

// H returns the height of the rectangle.
func (r Rect) H() float64 {
	return r.Y1 - r.Y0
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{(r.X0 + r.X1) / 2.0, (r.Y0 + r.Y1) / 2.0}
}

// Expand returns the rectangle grown by d on all four sides.
func (r Rect) Expand(d float64) Rect {
	return Rect{r.X0 - d, r.Y0 - d, r.X1 + d, r.Y1 + d}
}

// Union returns the smallest rectangle containing both R and Q.
func (r Rect) Union(q Rect) Rect {
	return Rect{
		math.Min(r.X0, q.X0),
		math.Min(r.Y0, q.Y0),
		math.Max(r.X1, q.X1),
		math.Max(r.Y1, q.Y1),
	}
}

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g; %g]--[%g; %g]", r.X0, r.Y0, r.X1, r.Y1)
}
