package gdsgeom

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestText(t *testing.T) {
	p := Text("A", 9.0, Point{}, true, 0.0, Tag{Layer: 2})
	test.That(t, 0 < p.Len())
	test.T(t, p.Tag(0), Tag{Layer: 2})

	// a glyph fits the 5x9 character cell
	bounds, ok := p.Bounds()
	test.That(t, ok)
	test.That(t, -Epsilon <= bounds.X0 && bounds.X1 <= 5.0+Epsilon)
	test.That(t, -Epsilon <= bounds.Y0 && bounds.Y1 <= 9.0+Epsilon)
}

func TestTextAdvance(t *testing.T) {
	p := Text("AB", 9.0, Point{}, true, 0.0, Tag{})
	bounds, _ := p.Bounds()
	test.That(t, 8.0 < bounds.X1 && bounds.X1 <= 13.0+Epsilon)
}

func TestTextSize(t *testing.T) {
	small, _ := Text("H", 9.0, Point{}, true, 0.0, Tag{}).Bounds()
	large, _ := Text("H", 18.0, Point{}, true, 0.0, Tag{}).Bounds()
	test.Float(t, large.W(), 2.0*small.W())
	test.Float(t, large.H(), 2.0*small.H())
}

func TestTextPosition(t *testing.T) {
	origin, _ := Text("A", 9.0, Point{}, true, 0.0, Tag{}).Bounds()
	moved, _ := Text("A", 9.0, Point{100, 50}, true, 0.0, Tag{}).Bounds()
	test.Float(t, moved.X0-origin.X0, 100.0)
	test.Float(t, moved.Y0-origin.Y0, 50.0)
}

func TestTextNewline(t *testing.T) {
	p := Text("A\nA", 9.0, Point{}, true, 0.0, Tag{})
	bounds, _ := p.Bounds()
	test.That(t, bounds.Y0 < -2.0)
	test.That(t, bounds.X1 <= 5.0+Epsilon)
}

func TestTextVertical(t *testing.T) {
	p := Text("AA", 9.0, Point{}, false, 0.0, Tag{})
	bounds, _ := p.Bounds()
	test.That(t, bounds.Y0 < -2.0)
	test.That(t, bounds.X1 <= 5.0+Epsilon)
}

func TestTextRotated(t *testing.T) {
	p := Text("A", 9.0, Point{}, true, math.Pi/2.0, Tag{})
	bounds, _ := p.Bounds()
	test.That(t, bounds.X0 <= Epsilon)
	test.That(t, -Epsilon <= bounds.Y0)
}

func TestTextUnknownGlyph(t *testing.T) {
	p := Text("\x01", 9.0, Point{}, true, 0.0, Tag{})
	test.T(t, p.Len(), 0)
}
