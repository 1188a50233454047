package gdsgeom

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestPoint(t *testing.T) {
	test.That(t, Point{}.IsZero())
	test.That(t, !Point{1, 0}.IsZero())
	test.That(t, Point{1, 2}.Equals(Point{1, 2}))
	test.That(t, !Point{1, 2}.Equals(Point{1, 3}))

	test.T(t, Point{1, 2}.Add(Point{3, 4}), Point{4, 6})
	test.T(t, Point{1, 2}.Sub(Point{3, 4}), Point{-2, -2})
	test.T(t, Point{1, 2}.Mul(3), Point{3, 6})
	test.Float(t, Point{1, 2}.PerpDot(Point{3, 4}), -2.0)
}

func TestPointRot(t *testing.T) {
	test.That(t, Point{1, 0}.Rot(math.Pi/2.0, Point{}).Equals(Point{0, 1}))
	test.That(t, Point{1, 0}.Rot(math.Pi, Point{}).Equals(Point{-1, 0}))
	test.That(t, Point{2, 1}.Rot(math.Pi, Point{1, 1}).Equals(Point{0, 1}))
}

func TestPointString(t *testing.T) {
	test.T(t, Point{1.5, -2.0}.String(), "[1.5; -2]")
}

func TestRect(t *testing.T) {
	r := Rect{0, 0, 4, 2}
	test.Float(t, r.W(), 4.0)
	test.Float(t, r.H(), 2.0)
	test.T(t, r.Center(), Point{2, 1})
	test.That(t, !r.Empty())
	test.That(t, Rect{1, 1, 1, 5}.Empty())

	test.T(t, r.Expand(1.0), Rect{-1, -1, 5, 3})
	test.T(t, r.Union(Rect{3, -2, 6, 1}), Rect{0, -2, 6, 2})
}

func TestRectString(t *testing.T) {
	test.T(t, Rect{0, 0, 1, 2}.String(), "[0; 0]--[1; 2]")
}
