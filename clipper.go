package gdsgeom

import (
	"math"

	clipper "github.com/ctessum/go.clipper"
)

// The clipping kernel works on integer coordinates. All conversions below
// quantize by scale, the reciprocal of the requested coordinate precision.

// toPaths converts polygons to the kernel's fixed-point representation.
func toPaths(polys []Polygon, scale float64) clipper.Paths {
	paths := make(clipper.Paths, len(polys))
	for i, poly := range polys {
		path := make(clipper.Path, len(poly))
		for j, v := range poly {
			path[j] = &clipper.IntPoint{X: roundScaled(v.X, scale), Y: roundScaled(v.Y, scale)}
		}
		paths[i] = path
	}
	return paths
}

// fromPaths converts kernel output back to the floating coordinate space.
func fromPaths(paths clipper.Paths, scale float64) []Polygon {
	polys := make([]Polygon, len(paths))
	for i, path := range paths {
		poly := make(Polygon, len(path))
		for j, v := range path {
			poly[j] = Point{float64(v.X) / scale, float64(v.Y) / scale}
		}
		polys[i] = poly
	}
	return polys
}

func roundScaled(f, scale float64) clipper.CInt {
	return clipper.CInt(math.Floor(f*scale + 0.5))
}

// clipPolys executes the boolean operation of subject against clip at the
// given inverse-precision scale and returns the resulting polygons.
func clipPolys(subject, clip []Polygon, op Op, scale float64) []Polygon {
	var ct clipper.ClipType
	switch op {
	case OpOr:
		ct = clipper.CtUnion
	case OpAnd:
		ct = clipper.CtIntersection
	case OpXor:
		ct = clipper.CtXor
	case OpNot:
		ct = clipper.CtDifference
	}
	c := clipper.NewClipper(clipper.IoNone)
	c.AddPaths(toPaths(subject, scale), clipper.PtSubject, true)
	c.AddPaths(toPaths(clip, scale), clipper.PtClip, true)
	solution, ok := c.Execute1(ct, clipper.PftNonZero, clipper.PftNonZero)
	if !ok {
		return nil
	}
	return fromPaths(solution, scale)
}

// offsetPolys grows (distance > 0) or shrinks (distance < 0) the polygons by
// distance. For miter joins tolerance is the miter limit, for round joins the
// number of points per full circle. When joinFirst is set all input paths are
// unioned before offsetting, avoiding spurious joins on adjacent polygon
// edges.
func offsetPolys(polys []Polygon, distance float64, join Join, tolerance, scale float64, joinFirst bool) []Polygon {
	paths := toPaths(polys, scale)
	if joinFirst {
		c := clipper.NewClipper(clipper.IoNone)
		c.AddPaths(paths, clipper.PtSubject, true)
		solution, ok := c.Execute1(clipper.CtUnion, clipper.PftNonZero, clipper.PftNonZero)
		if !ok {
			return nil
		}
		paths = solution
	}

	co := clipper.NewClipperOffset()
	var jt clipper.JoinType
	switch join {
	case JoinMiter:
		jt = clipper.JtMiter
		co.MiterLimit = tolerance
	case JoinBevel:
		jt = clipper.JtSquare
	case JoinRound:
		jt = clipper.JtRound
		// tolerance is points per full circle, the kernel wants the maximum
		// chord deviation in integer units
		co.ArcTolerance = math.Abs(distance) * scale * (1.0 - math.Cos(math.Pi/tolerance))
	}
	co.AddPaths(paths, jt, clipper.EtClosedPolygon)
	return fromPaths(co.Execute(distance*scale), scale)
}

// chopPoly partitions one polygon at the given ascending cut positions along
// axis (0 = x, 1 = y). It returns len(positions)+1 fragment lists, one per
// region between consecutive cuts, in ascending order along the axis. The two
// end regions are unbounded and clamped to the polygon extents.
func chopPoly(poly Polygon, positions []float64, axis int, scale float64) [][]Polygon {
	bounds := poly.Bounds()
	lo, hi := bounds.X0, bounds.X1
	if axis == 1 {
		lo, hi = bounds.Y0, bounds.Y1
	}
	// grow past the extremes so that the end regions capture everything
	lo -= 1.0
	hi += 1.0

	result := make([][]Polygon, len(positions)+1)
	min := lo
	for i := 0; i <= len(positions); i++ {
		max := hi
		if i < len(positions) {
			max = positions[i]
		}
		if max <= min {
			min = max
			continue
		}
		var window Rect
		if axis == 0 {
			window = Rect{min, bounds.Y0 - 1.0, max, bounds.Y1 + 1.0}
		} else {
			window = Rect{bounds.X0 - 1.0, min, bounds.X1 + 1.0, max}
		}
		result[i] = clipPolys([]Polygon{poly}, []Polygon{rectPolygon(window)}, OpAnd, scale)
		min = max
	}
	return result
}

// insidePaths reports whether the quantized point lies inside or on the
// boundary of any of the paths.
func insidePaths(pt Point, paths clipper.Paths, scale float64) bool {
	ip := &clipper.IntPoint{X: roundScaled(pt.X, scale), Y: roundScaled(pt.Y, scale)}
	for _, path := range paths {
		if clipper.PointInPolygon(ip, path) != 0 {
			return true
		}
	}
	return false
}

// rectPolygon returns the rectangle as a polygon in counter clockwise order.
func rectPolygon(r Rect) Polygon {
	return Polygon{
		{r.X0, r.Y0},
		{r.X1, r.Y0},
		{r.X1, r.Y1},
		{r.X0, r.Y1},
	}
}
