package gdsgeom

import "math"

// Rectangle returns a polygon set holding the axis-aligned rectangle spanning
// the two opposite corners p1 and p2.
func Rectangle(p1, p2 Point, tag Tag) *PolygonSet {
	return NewPolygonSet([]Polygon{{
		{p1.X, p1.Y},
		{p1.X, p2.Y},
		{p2.X, p2.Y},
		{p2.X, p1.Y},
	}}, tag)
}

// RectangleCentered returns a polygon set holding the rectangle of size dx by
// dy centered at center.
func RectangleCentered(center Point, dx, dy float64, tag Tag) *PolygonSet {
	return Rectangle(
		Point{center.X - dx/2.0, center.Y - dy/2.0},
		Point{center.X + dx/2.0, center.Y + dy/2.0},
		tag,
	)
}

// Round returns a circle, ring, circular arc or annular sector around center.
// With innerRadius zero and equal angles it is a full disk, with innerRadius
// positive a ring. Unequal initial and final angles (radians) limit the shape
// to that angular section. The vertex count follows from tolerance, the
// maximal distance between the polygon and the exact curve. Shapes needing
// more than maxPoints vertices are fractured into multiple polygons; maxPoints
// zero disables fracturing.
func Round(center Point, radius, innerRadius, initialAngle, finalAngle, tolerance float64, maxPoints int, tag Tag) *PolygonSet {
	fullAngle := 2.0 * math.Pi
	if finalAngle != initialAngle {
		fullAngle = math.Abs(finalAngle - initialAngle)
	}
	numPoints := 1 + int(0.5*fullAngle/math.Acos(1.0-tolerance/radius)+0.5)
	if numPoints < 3 {
		numPoints = 3
	}
	if innerRadius > 0.0 {
		numPoints *= 2
	}

	pieces := 1
	if maxPoints > 0 {
		pieces = int(math.Ceil(float64(numPoints) / float64(maxPoints)))
	}
	numPoints /= pieces
	if finalAngle == initialAngle && pieces > 1 {
		finalAngle += 2.0 * math.Pi
	}

	polygons := make([]Polygon, pieces)
	for ii := 0; ii < pieces; ii++ {
		angle0 := initialAngle + (finalAngle-initialAngle)*float64(ii)/float64(pieces)
		angle1 := initialAngle + (finalAngle-initialAngle)*float64(ii+1)/float64(pieces)
		poly := make(Polygon, numPoints)

		if angle0 == angle1 {
			// single piece covering the full revolution
			if innerRadius <= 0.0 {
				for i := 0; i < numPoints; i++ {
					t := float64(i) * 2.0 * math.Pi / float64(numPoints)
					poly[i] = Point{center.X + radius*math.Cos(t), center.Y + radius*math.Sin(t)}
				}
			} else {
				n2 := numPoints / 2
				n1 := numPoints - n2
				for i := 0; i < n1; i++ {
					t := float64(i) * 2.0 * math.Pi / float64(n1-1)
					poly[i] = Point{center.X + radius*math.Cos(t), center.Y + radius*math.Sin(t)}
				}
				for i := 0; i < n2; i++ {
					t := float64(i) * -2.0 * math.Pi / float64(n2-1)
					poly[n1+i] = Point{center.X + innerRadius*math.Cos(t), center.Y + innerRadius*math.Sin(t)}
				}
			}
		} else {
			if innerRadius <= 0.0 {
				// pie slice anchored at the center
				poly[0] = center
				for i := 1; i < numPoints; i++ {
					t := angle0 + (angle1-angle0)*float64(i-1)/float64(numPoints-2)
					poly[i] = Point{center.X + radius*math.Cos(t), center.Y + radius*math.Sin(t)}
				}
			} else {
				// annular sector, outer arc forward then inner arc back
				n2 := numPoints / 2
				n1 := numPoints - n2
				for i := 0; i < n1; i++ {
					t := angle0 + (angle1-angle0)*float64(i)/float64(n1-1)
					poly[i] = Point{center.X + radius*math.Cos(t), center.Y + radius*math.Sin(t)}
				}
				for i := 0; i < n2; i++ {
					t := angle1 + (angle0-angle1)*float64(i)/float64(n2-1)
					poly[n1+i] = Point{center.X + innerRadius*math.Cos(t), center.Y + innerRadius*math.Sin(t)}
				}
			}
		}
		polygons[ii] = poly
	}
	return NewPolygonSet(polygons, tag)
}
