package gdsgeom

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestPolygonArea(t *testing.T) {
	ccw := Polygon{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	cw := Polygon{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	test.Float(t, ccw.Area(), 1.0)
	test.Float(t, cw.Area(), -1.0)
}

func TestPolygonBounds(t *testing.T) {
	q := Polygon{{2, -1}, {5, 3}, {0, 1}}
	test.T(t, q.Bounds(), Rect{0, -1, 5, 3})
	test.T(t, Polygon{}.Bounds(), Rect{})
}

func TestPolygonCopy(t *testing.T) {
	q := Polygon{{1, 2}, {3, 4}}
	r := q.Copy()
	r[0] = Point{9, 9}
	test.T(t, q[0], Point{1, 2})
}

func TestPolygonSetNew(t *testing.T) {
	p := NewPolygonSet([]Polygon{{{0, 0}}, {{1, 1}}}, Tag{Layer: 3, Datatype: 1, Name: "m1", Color: "red"})
	test.T(t, p.Len(), 2)
	test.T(t, len(p.Layers), 2)
	test.T(t, len(p.Datatypes), 2)
	test.T(t, len(p.Names), 2)
	test.T(t, len(p.Colors), 2)
	test.T(t, p.Tag(1), Tag{3, 1, "m1", "red"})
}

func TestPolygonSetAppend(t *testing.T) {
	a := NewPolygonSet([]Polygon{{{0, 0}, {1, 0}, {1, 1}}}, Tag{Layer: 1})
	b := NewPolygonSet([]Polygon{{{5, 5}, {6, 5}, {6, 6}}}, Tag{Layer: 2})
	a.Append(b)
	test.T(t, a.Len(), 2)
	test.T(t, a.Layers[0], 1)
	test.T(t, a.Layers[1], 2)
	test.T(t, a.Polygons[1][0], Point{5, 5})

	// appended entries are deep copies
	b.Polygons[0][0] = Point{9, 9}
	test.T(t, a.Polygons[1][0], Point{5, 5})

	a.Append(nil)
	test.T(t, a.Len(), 2)
}

func TestPolygonSetCopy(t *testing.T) {
	p := NewPolygonSet([]Polygon{{{0, 0}, {1, 0}, {1, 1}}}, Tag{Layer: 4, Name: "gnd"})
	q := p.Copy()
	q.Polygons[0][0] = Point{7, 7}
	q.Layers[0] = 9
	test.T(t, p.Polygons[0][0], Point{0, 0})
	test.T(t, p.Layers[0], 4)
	test.T(t, q.Names[0], "gnd")
}

func TestPolygonSetTranslate(t *testing.T) {
	p := Rectangle(Point{0, 0}, Point{2, 2}, Tag{Layer: 5})
	p.Translate(3, -1)
	bounds, ok := p.Bounds()
	test.That(t, ok)
	test.T(t, bounds, Rect{3, -1, 5, 1})
	test.T(t, p.Layers[0], 5)
}

func TestPolygonSetRotate(t *testing.T) {
	p := NewPolygonSet([]Polygon{{{1, 0}}}, Tag{})
	p.Rotate(math.Pi/2.0, Point{})
	test.That(t, p.Polygons[0][0].Equals(Point{0, 1}))
}

func TestPolygonSetScale(t *testing.T) {
	p := Rectangle(Point{0, 0}, Point{2, 2}, Tag{})
	p.Scale(2, 3, Point{})
	bounds, _ := p.Bounds()
	test.T(t, bounds, Rect{0, 0, 4, 6})
}

func TestPolygonSetMirror(t *testing.T) {
	p := NewPolygonSet([]Polygon{{{1, 2}}}, Tag{})
	p.Mirror(Point{0, 0}, Point{1, 0})
	test.That(t, p.Polygons[0][0].Equals(Point{1, -2}))

	// degenerate axis leaves the set untouched
	p.Mirror(Point{3, 3}, Point{3, 3})
	test.That(t, p.Polygons[0][0].Equals(Point{1, -2}))
}

func TestPolygonSetBounds(t *testing.T) {
	p := &PolygonSet{}
	_, ok := p.Bounds()
	test.That(t, !ok)

	p = Rectangle(Point{0, 0}, Point{1, 1}, Tag{})
	p.Append(Rectangle(Point{5, 5}, Point{6, 7}, Tag{}))
	bounds, ok := p.Bounds()
	test.That(t, ok)
	test.T(t, bounds, Rect{0, 0, 6, 7})
}

func TestPolygonSetArea(t *testing.T) {
	outer := Polygon{{0, 0}, {4, 0}, {4, 4}, {0, 4}}           // CCW
	hole := Polygon{{1, 1}, {1, 3}, {3, 3}, {3, 1}}            // CW
	p := &PolygonSet{Polygons: []Polygon{outer, hole}, Layers: []int{0, 0}, Datatypes: []int{0, 0}, Names: []string{"", ""}, Colors: []string{"", ""}}
	test.Float(t, p.Area(), 12.0)
}

func TestPolygonSetChangeLayer(t *testing.T) {
	p := Rectangle(Point{0, 0}, Point{1, 1}, Tag{Layer: 1})
	p.Append(Rectangle(Point{2, 2}, Point{3, 3}, Tag{Layer: 2}))
	p.ChangeLayer(Tag{Layer: 8, Datatype: 3, Name: "via", Color: "#00f"})
	for i := 0; i < p.Len(); i++ {
		test.T(t, p.Tag(i), Tag{8, 3, "via", "#00f"})
	}
}

func TestPolygonSetString(t *testing.T) {
	p := Rectangle(Point{0, 0}, Point{1, 1}, Tag{})
	test.T(t, p.String(), "PolygonSet (1 polygons, 4 vertices)")
}
