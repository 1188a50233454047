package gdsgeom

import (
	"testing"

	"github.com/tdewolff/test"
)

func areaOf(polys []Polygon) float64 {
	area := 0.0
	for _, poly := range polys {
		area += poly.Area()
	}
	return area
}

func TestPathsRoundTrip(t *testing.T) {
	polys := []Polygon{{{0.0015, 0.0}, {1.0, 0.0}, {1.0, 1.0004}}}
	out := fromPaths(toPaths(polys, 1000.0), 1000.0)
	test.T(t, len(out), 1)
	test.T(t, out[0][0], Point{0.002, 0.0})
	test.T(t, out[0][1], Point{1.0, 0.0})
	test.T(t, out[0][2], Point{1.0, 1.0})
}

func TestRoundScaled(t *testing.T) {
	test.T(t, roundScaled(0.0015, 1000.0), roundScaled(0.002, 1000.0))
	test.T(t, int64(roundScaled(-0.25, 10.0)), int64(-2))
	test.T(t, int64(roundScaled(2.5, 1.0)), int64(3))
}

func TestClipPolys(t *testing.T) {
	a := rectPolygon(Rect{0, 0, 10, 10})
	b := rectPolygon(Rect{5, 0, 15, 10})

	var tests = []struct {
		op   Op
		area float64
	}{
		{OpOr, 150.0},
		{OpAnd, 50.0},
		{OpXor, 100.0},
		{OpNot, 50.0},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			result := clipPolys([]Polygon{a}, []Polygon{b}, tt.op, 1000.0)
			test.Float(t, areaOf(result), tt.area)
		})
	}
}

func TestClipPolysDisjoint(t *testing.T) {
	a := rectPolygon(Rect{0, 0, 1, 1})
	b := rectPolygon(Rect{5, 5, 6, 6})
	test.T(t, len(clipPolys([]Polygon{a}, []Polygon{b}, OpAnd, 1000.0)), 0)

	union := clipPolys([]Polygon{a}, []Polygon{b}, OpOr, 1000.0)
	test.T(t, len(union), 2)
}

func TestOffsetPolys(t *testing.T) {
	square := rectPolygon(Rect{0, 0, 10, 10})
	grown := offsetPolys([]Polygon{square}, 1.0, JoinMiter, 2.0, 1000.0, false)
	test.Float(t, areaOf(grown), 144.0)

	shrunk := offsetPolys([]Polygon{square}, -1.0, JoinMiter, 2.0, 1000.0, false)
	test.Float(t, areaOf(shrunk), 64.0)
}

func TestOffsetPolysJoinFirst(t *testing.T) {
	a := rectPolygon(Rect{0, 0, 10, 10})
	b := rectPolygon(Rect{10, 0, 20, 10})

	joined := offsetPolys([]Polygon{a, b}, -1.0, JoinMiter, 2.0, 1000.0, true)
	test.Float(t, areaOf(joined), 144.0)

	separate := offsetPolys([]Polygon{a, b}, -1.0, JoinMiter, 2.0, 1000.0, false)
	test.Float(t, areaOf(separate), 128.0)
}

func TestOffsetPolysVanish(t *testing.T) {
	square := rectPolygon(Rect{0, 0, 1, 1})
	test.T(t, len(offsetPolys([]Polygon{square}, -1.0, JoinMiter, 2.0, 1000.0, false)), 0)
}

func TestChopPoly(t *testing.T) {
	square := rectPolygon(Rect{0, 0, 10, 10})

	regions := chopPoly(square, []float64{4.0}, 0, 1000.0)
	test.T(t, len(regions), 2)
	test.Float(t, areaOf(regions[0]), 40.0)
	test.Float(t, areaOf(regions[1]), 60.0)

	regions = chopPoly(square, []float64{3.0, 7.0}, 1, 1000.0)
	test.T(t, len(regions), 3)
	test.Float(t, areaOf(regions[0]), 30.0)
	test.Float(t, areaOf(regions[1]), 40.0)
	test.Float(t, areaOf(regions[2]), 30.0)
}

func TestChopPolyOutsideCut(t *testing.T) {
	square := rectPolygon(Rect{0, 0, 10, 10})

	// cut left of the polygon, everything lands in the second region
	regions := chopPoly(square, []float64{-5.0}, 0, 1000.0)
	test.T(t, len(regions[0]), 0)
	test.Float(t, areaOf(regions[1]), 100.0)

	// cut right of the polygon
	regions = chopPoly(square, []float64{15.0}, 0, 1000.0)
	test.Float(t, areaOf(regions[0]), 100.0)
	test.T(t, len(regions[1]), 0)
}

func TestInsidePaths(t *testing.T) {
	paths := toPaths([]Polygon{rectPolygon(Rect{0, 0, 10, 10})}, 1000.0)
	test.That(t, insidePaths(Point{5, 5}, paths, 1000.0))
	test.That(t, insidePaths(Point{0, 5}, paths, 1000.0)) // boundary counts as inside
	test.That(t, !insidePaths(Point{15, 5}, paths, 1000.0))
}

func TestRectPolygon(t *testing.T) {
	q := rectPolygon(Rect{1, 2, 3, 5})
	test.T(t, len(q), 4)
	test.Float(t, q.Area(), 6.0) // counter clockwise
}
