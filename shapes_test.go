package gdsgeom

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestRectangle(t *testing.T) {
	r := Rectangle(Point{1, 2}, Point{4, 6}, Tag{Layer: 3})
	test.T(t, r.Len(), 1)
	test.T(t, len(r.Polygons[0]), 4)
	test.Float(t, r.Area(), 12.0)
	test.T(t, r.Tag(0), Tag{Layer: 3})

	bounds, ok := r.Bounds()
	test.That(t, ok)
	test.T(t, bounds, Rect{1, 2, 4, 6})
}

func TestRectangleCentered(t *testing.T) {
	r := RectangleCentered(Point{5, 5}, 4.0, 2.0, Tag{})
	bounds, _ := r.Bounds()
	test.T(t, bounds, Rect{3, 4, 7, 6})
	test.Float(t, r.Area(), 8.0)
}

func TestRoundDisk(t *testing.T) {
	r := Round(Point{0, 0}, 5.0, 0.0, 0.0, 0.0, 0.01, 0, Tag{})
	test.T(t, r.Len(), 1)
	test.That(t, math.Abs(r.Area()-25.0*math.Pi) < 0.3)

	bounds, _ := r.Bounds()
	test.That(t, math.Abs(bounds.X1-5.0) < 0.01)
	test.That(t, math.Abs(bounds.X0+5.0) < 0.01)
}

func TestRoundRing(t *testing.T) {
	r := Round(Point{0, 0}, 5.0, 2.0, 0.0, 0.0, 0.01, 0, Tag{})
	test.T(t, r.Len(), 1)
	test.That(t, math.Abs(r.Area()-21.0*math.Pi) < 0.4)
}

func TestRoundSector(t *testing.T) {
	// quarter pie slice anchored at the center
	r := Round(Point{0, 0}, 4.0, 0.0, 0.0, math.Pi/2.0, 0.01, 0, Tag{})
	test.T(t, r.Len(), 1)
	test.That(t, math.Abs(r.Area()-4.0*math.Pi) < 0.1)

	bounds, _ := r.Bounds()
	test.That(t, bounds.X0 >= -Epsilon && bounds.Y0 >= -Epsilon)
}

func TestRoundAnnularSector(t *testing.T) {
	r := Round(Point{0, 0}, 4.0, 2.0, 0.0, math.Pi, 0.01, 0, Tag{})
	test.T(t, r.Len(), 1)
	test.That(t, math.Abs(r.Area()-6.0*math.Pi) < 0.2)
}

func TestRoundFractured(t *testing.T) {
	r := Round(Point{0, 0}, 5.0, 0.0, 0.0, 0.0, 0.01, 16, Tag{})
	test.That(t, 1 < r.Len())
	for _, poly := range r.Polygons {
		test.That(t, len(poly) <= 16)
	}
	test.That(t, math.Abs(r.Area()-25.0*math.Pi) < 0.5)
}

func TestRoundCentered(t *testing.T) {
	r := Round(Point{10, -3}, 2.0, 0.0, 0.0, 0.0, 0.01, 0, Tag{})
	bounds, _ := r.Bounds()
	test.That(t, math.Abs(bounds.Center().X-10.0) < 0.01)
	test.That(t, math.Abs(bounds.Center().Y+3.0) < 0.01)
}
