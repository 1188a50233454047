package gdsgeom

import (
	"fmt"
	"math"
)

// Polygon is a single polygon given by its ordered list of vertices. The
// boundary closes itself, the first vertex is not repeated at the end.
type Polygon []Point

// Copy returns a deep copy of the polygon.
func (q Polygon) Copy() Polygon {
	r := make(Polygon, len(q))
	copy(r, q)
	return r
}

// Bounds returns the bounding rectangle of the polygon.
func (q Polygon) Bounds() Rect {
	if len(q) == 0 {
		return Rect{}
	}
	r := Rect{q[0].X, q[0].Y, q[0].X, q[0].Y}
	for _, v := range q[1:] {
		r.X0 = math.Min(r.X0, v.X)
		r.Y0 = math.Min(r.Y0, v.Y)
		r.X1 = math.Max(r.X1, v.X)
		r.Y1 = math.Max(r.Y1, v.Y)
	}
	return r
}

// Area returns the signed area of the polygon, positive for counter clockwise
// vertex order and negative for clockwise.
func (q Polygon) Area() float64 {
	area := 0.0
	for i, v := range q {
		w := q[(i+1)%len(q)]
		area += v.PerpDot(w)
	}
	return area / 2.0
}

////////////////////////////////////////////////////////////////

// Tag is the layer metadata carried by each polygon of a PolygonSet: the mask
// layer and datatype numbers plus free-form name and color annotations.
type Tag struct {
	Layer    int
	Datatype int
	Name     string
	Color    string
}

// PolygonSet is an ordered collection of polygons where every polygon carries
// its own layer, datatype, name and color. The five slices are always of equal
// length; entry i of each slice belongs to polygon i.
//
// A nil *PolygonSet is the "no result" state of a degenerated operation. It is
// distinct from a non-nil set of length zero, which is valid, empty geometry.
type PolygonSet struct {
	Polygons  []Polygon
	Layers    []int
	Datatypes []int
	Names     []string
	Colors    []string
}

// NewPolygonSet returns a polygon set over the given polygons with every entry
// tagged by tag.
func NewPolygonSet(polygons []Polygon, tag Tag) *PolygonSet {
	p := &PolygonSet{Polygons: polygons}
	p.Layers = make([]int, len(polygons))
	p.Datatypes = make([]int, len(polygons))
	p.Names = make([]string, len(polygons))
	p.Colors = make([]string, len(polygons))
	for i := range polygons {
		p.Layers[i] = tag.Layer
		p.Datatypes[i] = tag.Datatype
		p.Names[i] = tag.Name
		p.Colors[i] = tag.Color
	}
	return p
}

// Len returns the number of polygons in the set.
func (p *PolygonSet) Len() int {
	return len(p.Polygons)
}

// Empty returns true if the set contains no polygons.
func (p *PolygonSet) Empty() bool {
	return len(p.Polygons) == 0
}

// Tag returns the metadata of polygon i.
func (p *PolygonSet) Tag(i int) Tag {
	return Tag{p.Layers[i], p.Datatypes[i], p.Names[i], p.Colors[i]}
}

// Append concatenates the entries of q onto p, keeping q's per-polygon
// metadata and preserving order. The appended entries are deep copies, p and q
// share no vertex storage afterwards. It returns p.
func (p *PolygonSet) Append(q *PolygonSet) *PolygonSet {
	if q == nil {
		return p
	}
	for _, poly := range q.Polygons {
		p.Polygons = append(p.Polygons, poly.Copy())
	}
	p.Layers = append(p.Layers, q.Layers...)
	p.Datatypes = append(p.Datatypes, q.Datatypes...)
	p.Names = append(p.Names, q.Names...)
	p.Colors = append(p.Colors, q.Colors...)
	return p
}

// Copy returns a deep copy of the set.
func (p *PolygonSet) Copy() *PolygonSet {
	q := &PolygonSet{
		Polygons:  make([]Polygon, len(p.Polygons)),
		Layers:    make([]int, len(p.Layers)),
		Datatypes: make([]int, len(p.Datatypes)),
		Names:     make([]string, len(p.Names)),
		Colors:    make([]string, len(p.Colors)),
	}
	for i, poly := range p.Polygons {
		q.Polygons[i] = poly.Copy()
	}
	copy(q.Layers, p.Layers)
	copy(q.Datatypes, p.Datatypes)
	copy(q.Names, p.Names)
	copy(q.Colors, p.Colors)
	return q
}

// Translate moves all polygons by (dx,dy) in place and returns p.
func (p *PolygonSet) Translate(dx, dy float64) *PolygonSet {
	for _, poly := range p.Polygons {
		for i := range poly {
			poly[i].X += dx
			poly[i].Y += dy
		}
	}
	return p
}

// Rotate rotates all polygons by phi radians CCW around center in place and
// returns p.
func (p *PolygonSet) Rotate(phi float64, center Point) *PolygonSet {
	for _, poly := range p.Polygons {
		for i := range poly {
			poly[i] = poly[i].Rot(phi, center)
		}
	}
	return p
}

// Scale scales all polygons by (sx,sy) relative to center in place and
// returns p.
func (p *PolygonSet) Scale(sx, sy float64, center Point) *PolygonSet {
	for _, poly := range p.Polygons {
		for i := range poly {
			poly[i].X = center.X + sx*(poly[i].X-center.X)
			poly[i].Y = center.Y + sy*(poly[i].Y-center.Y)
		}
	}
	return p
}

// Mirror reflects all polygons across the line through p1 and p2 in place and
// returns p.
func (p *PolygonSet) Mirror(p1, p2 Point) *PolygonSet {
	d := p2.Sub(p1)
	dd := d.X*d.X + d.Y*d.Y
	if equal(dd, 0.0) {
		return p
	}
	for _, poly := range p.Polygons {
		for i := range poly {
			v := poly[i].Sub(p1)
			t := (v.X*d.X + v.Y*d.Y) / dd
			foot := p1.Add(d.Mul(t))
			poly[i] = foot.Add(foot.Sub(poly[i]))
		}
	}
	return p
}

// Bounds returns the common bounding rectangle of all polygons. The second
// return value is false if the set holds no geometry.
func (p *PolygonSet) Bounds() (Rect, bool) {
	first := true
	var r Rect
	for _, poly := range p.Polygons {
		if len(poly) == 0 {
			continue
		}
		if first {
			r = poly.Bounds()
			first = false
		} else {
			r = r.Union(poly.Bounds())
		}
	}
	return r, !first
}

// Area returns the total enclosed area of the set, counting clockwise polygons
// (holes) negatively before taking the absolute value.
func (p *PolygonSet) Area() float64 {
	area := 0.0
	for _, poly := range p.Polygons {
		area += poly.Area()
	}
	return math.Abs(area)
}

// ChangeLayer retags every entry of the set with tag in place and returns p.
func (p *PolygonSet) ChangeLayer(tag Tag) *PolygonSet {
	for i := range p.Polygons {
		p.Layers[i] = tag.Layer
		p.Datatypes[i] = tag.Datatype
		p.Names[i] = tag.Name
		p.Colors[i] = tag.Color
	}
	return p
}

func (p *PolygonSet) String() string {
	vertices := 0
	for _, poly := range p.Polygons {
		vertices += len(poly)
	}
	return fmt.Sprintf("PolygonSet (%d polygons, %d vertices)", len(p.Polygons), vertices)
}
