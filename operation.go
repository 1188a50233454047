package gdsgeom

import (
	"fmt"
	"math"
	"sort"
)

// DefaultPrecision is the coordinate rounding granularity used by operations
// that take no explicit precision.
const DefaultPrecision = 1e-3

// Op is the kind of a boolean operation between two polygon collections.
type Op int

const (
	OpOr  Op = iota // union
	OpAnd           // intersection
	OpXor           // symmetric difference
	OpNot           // difference, operand1 minus operand2
)

func (op Op) String() string {
	switch op {
	case OpOr:
		return "or"
	case OpAnd:
		return "and"
	case OpXor:
		return "xor"
	case OpNot:
		return "not"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Join is the corner treatment used when offsetting a polygon boundary.
type Join int

const (
	JoinMiter Join = iota
	JoinBevel
	JoinRound
)

// Side selects the edge from which Crop trims.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

// Axis selects the coordinate axis for Slice.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

////////////////////////////////////////////////////////////////

// Operand is a polygon source for the operations in this package: a
// *PolygonSet, a bare Polygon, or an Operands list of either. A nil Operand
// contributes no polygons.
type Operand interface {
	appendPolygons(dst []Polygon) []Polygon
}

// Operands is a list of operands treated as the concatenation of its elements.
type Operands []Operand

func (p *PolygonSet) appendPolygons(dst []Polygon) []Polygon {
	if p == nil {
		return dst
	}
	return append(dst, p.Polygons...)
}

func (q Polygon) appendPolygons(dst []Polygon) []Polygon {
	return append(dst, q)
}

func (ops Operands) appendPolygons(dst []Polygon) []Polygon {
	for _, op := range ops {
		if op != nil {
			dst = op.appendPolygons(dst)
		}
	}
	return dst
}

// gatherPolys flattens an operand into a plain polygon list, dropping all
// metadata and preserving polygon order.
func gatherPolys(op Operand) []Polygon {
	if op == nil {
		return nil
	}
	return op.appendPolygons(nil)
}

func checkPrecision(precision float64) error {
	if precision <= 0.0 || math.IsInf(precision, 1) || math.IsNaN(precision) {
		return fmt.Errorf("precision must be a positive finite number, got %v", precision)
	}
	return nil
}

////////////////////////////////////////////////////////////////

// Boolean executes a boolean operation between two polygon collections and
// returns the result with every polygon tagged by tag. Vertex coordinates are
// rounded to multiples of precision.
//
// A nil result with a nil error means the operation degenerated to empty
// geometry, it is not a failure. When b gathers to nothing and op is OpNot or
// OpXor, a is returned as-is: a copy keeping its own per-polygon metadata when
// a is a *PolygonSet, the gathered polygons tagged by tag otherwise.
func Boolean(a, b Operand, op Op, precision float64, tag Tag) (*PolygonSet, error) {
	if err := checkPrecision(precision); err != nil {
		return nil, err
	}
	if op < OpOr || OpNot < op {
		return nil, fmt.Errorf("unknown boolean operation %v", op)
	}

	poly1 := gatherPolys(a)
	poly2 := gatherPolys(b)
	if len(poly2) == 0 {
		if len(poly1) == 0 {
			return nil, nil
		}
		if op == OpNot || op == OpXor {
			if set, ok := a.(*PolygonSet); ok && set != nil {
				return set.Copy(), nil
			}
			polys := make([]Polygon, len(poly1))
			for i, q := range poly1 {
				polys[i] = q.Copy()
			}
			return NewPolygonSet(polys, tag), nil
		}
		// operate the remaining polygons against the last one, keeping union
		// and intersection well-defined with an empty second operand
		poly2 = append(poly2, poly1[len(poly1)-1])
		poly1 = poly1[:len(poly1)-1]
	}

	result := clipPolys(poly1, poly2, op, 1.0/precision)
	if len(result) == 0 {
		return nil, nil
	}
	return NewPolygonSet(result, tag), nil
}

// Addition executes the OR boolean operation between two polygon collections.
func Addition(a, b Operand, precision float64, tag Tag) (*PolygonSet, error) {
	return Boolean(a, b, OpOr, precision, tag)
}

// Subtraction executes the NOT boolean operation between two polygon
// collections, returning a minus b.
func Subtraction(a, b Operand, precision float64, tag Tag) (*PolygonSet, error) {
	return Boolean(a, b, OpNot, precision, tag)
}

// Intersection executes the AND boolean operation between two polygon
// collections.
func Intersection(a, b Operand, precision float64, tag Tag) (*PolygonSet, error) {
	return Boolean(a, b, OpAnd, precision, tag)
}

// Difference executes the XOR boolean operation between two polygon
// collections.
func Difference(a, b Operand, precision float64, tag Tag) (*PolygonSet, error) {
	return Boolean(a, b, OpXor, precision, tag)
}

// Offset shrinks or expands a polygon collection by distance, positive to
// expand and negative to shrink. For miter joins tolerance is the maximal
// distance in multiples of distance between new vertices and their original
// position before beveling, at least 2. For round joins it is the curvature
// resolution in points per full circle. When joinFirst is set all paths are
// joined before offsetting to avoid unnecessary joins on adjacent polygon
// sides.
//
// A nil result with a nil error means the offset geometry vanished.
func Offset(polys Operand, distance float64, join Join, tolerance, precision float64, joinFirst bool, tag Tag) (*PolygonSet, error) {
	if err := checkPrecision(precision); err != nil {
		return nil, err
	}
	if join < JoinMiter || JoinRound < join {
		return nil, fmt.Errorf("unknown join style %d", int(join))
	}
	if join == JoinMiter && tolerance < 2.0 {
		return nil, fmt.Errorf("miter tolerance must be at least 2, got %v", tolerance)
	}
	if join == JoinRound && tolerance <= 2.0 {
		return nil, fmt.Errorf("round tolerance must be more than 2 points per circle, got %v", tolerance)
	}

	result := offsetPolys(gatherPolys(polys), distance, join, tolerance, 1.0/precision, joinFirst)
	if len(result) == 0 {
		return nil, nil
	}
	return NewPolygonSet(result, tag), nil
}

// Crop trims the polygon set by value from the given side, intersecting it
// with its own bounding box reduced along that side. A nil result with a nil
// error means the set had no geometry to crop.
func Crop(p *PolygonSet, side Side, value float64, tag Tag) (*PolygonSet, error) {
	if side < Top || Left < side {
		return nil, fmt.Errorf("crop side must be Top, Right, Bottom or Left, got %d", int(side))
	}
	if p == nil {
		return nil, nil
	}
	bounds, ok := p.Bounds()
	if !ok {
		return nil, nil
	}

	window := bounds
	switch side {
	case Top:
		window.Y1 -= value
	case Right:
		window.X1 -= value
	case Bottom:
		window.Y0 += value
	case Left:
		window.X0 += value
	}
	return Boolean(p, rectPolygon(window), OpAnd, DefaultPrecision, tag)
}

// Slice cuts a polygon collection at the given positions along an axis and
// returns len(positions)+1 region results in ascending order along that axis.
// A region that receives no geometry is nil in the returned slice. The layer
// and datatype lists are reused cyclically when shorter than the number of
// regions; empty lists default to 0.
func Slice(polys Operand, positions []float64, axis Axis, precision float64, layers, datatypes []int) ([]*PolygonSet, error) {
	if err := checkPrecision(precision); err != nil {
		return nil, err
	}
	if axis != AxisX && axis != AxisY {
		return nil, fmt.Errorf("slice axis must be AxisX or AxisY, got %d", int(axis))
	}
	if len(layers) == 0 {
		layers = []int{0}
	}
	if len(datatypes) == 0 {
		datatypes = []int{0}
	}

	pos := make([]float64, len(positions))
	copy(pos, positions)
	sort.Float64s(pos)

	regions := make([][]Polygon, len(pos)+1)
	scale := 1.0 / precision
	for _, poly := range gatherPolys(polys) {
		for i, fragments := range chopPoly(poly, pos, int(axis), scale) {
			regions[i] = append(regions[i], fragments...)
		}
	}

	result := make([]*PolygonSet, len(regions))
	for i, region := range regions {
		if len(region) == 0 {
			continue
		}
		result[i] = NewPolygonSet(region, Tag{
			Layer:    layers[i%len(layers)],
			Datatype: datatypes[i%len(datatypes)],
		})
	}
	return result, nil
}

// Merge unions all polygons that share the same layer, datatype, name and
// color, eliminating overlaps within each tag. Groups appear in the output in
// the order their tag first occurs in p. Groups whose union comes out empty
// are skipped; the result is never nil but may be empty.
func Merge(p *PolygonSet) *PolygonSet {
	merged := &PolygonSet{}
	if p == nil {
		return merged
	}

	groups := map[Tag][]Polygon{}
	order := []Tag{}
	for i, poly := range p.Polygons {
		tag := p.Tag(i)
		if _, ok := groups[tag]; !ok {
			order = append(order, tag)
		}
		groups[tag] = append(groups[tag], poly)
	}

	for _, tag := range order {
		ops := make(Operands, len(groups[tag]))
		for i, poly := range groups[tag] {
			ops[i] = poly
		}
		set, _ := Boolean(ops, nil, OpOr, DefaultPrecision, tag)
		if set != nil {
			merged.Append(set)
		}
	}
	return merged
}

// InversePolarity inverts the polarity of the set: it returns the XOR of the
// set against its bounding box expanded by safetyMargin on all four sides. A
// nil result with a nil error means the set had no geometry or the inversion
// came out empty.
func InversePolarity(p *PolygonSet, safetyMargin float64, tag Tag) (*PolygonSet, error) {
	if p == nil {
		return nil, nil
	}
	bounds, ok := p.Bounds()
	if !ok {
		return nil, nil
	}

	frame := rectPolygon(bounds.Expand(safetyMargin))
	result := clipPolys([]Polygon{frame}, p.Polygons, OpXor, 1.0/DefaultPrecision)
	if len(result) == 0 {
		return nil, nil
	}
	return NewPolygonSet(result, tag), nil
}

// GridCover fills the shape with a grid of squares of width squareWidth
// separated by squareGap, after shrinking the shape by safetyMargin. With
// centered false the grid is aligned to the bottom left of each connected
// polygon, with centered true to its bounding-box center. The grid is built
// per connected polygon of the merged, shrunk shape so that no square bridges
// disjoint sub-shapes. The result is never nil; it is empty when the shrunk
// shape vanished.
func GridCover(p *PolygonSet, squareWidth, squareGap, safetyMargin float64, centered bool, tag Tag) (*PolygonSet, error) {
	if squareWidth <= 0.0 || squareWidth+squareGap <= 0.0 {
		return nil, fmt.Errorf("square width and pitch must be positive, got width %v gap %v", squareWidth, squareGap)
	}

	result := &PolygonSet{}
	shrunk, err := Offset(p, -safetyMargin, JoinMiter, 2.0, DefaultPrecision, true, tag)
	if err != nil {
		return nil, err
	}
	if shrunk == nil {
		return result, nil
	}

	// merge first so that grids are built per connected shape
	for _, poly := range Merge(shrunk).Polygons {
		if len(poly) < 3 {
			continue
		}
		bounds := poly.Bounds()
		nx := int(math.Ceil(bounds.W() / (squareWidth + squareGap)))
		ny := int(math.Ceil(bounds.H() / (squareWidth + squareGap)))

		tiles := []Polygon{{
			{0.0, 0.0},
			{0.0, squareWidth},
			{squareWidth, squareWidth},
			{squareWidth, 0.0},
		}}
		// double the lattice extent until it covers the required tile count,
		// the intersection below trims the overshoot
		for xi := 1; xi < nx+1; xi *= 2 {
			tiles = appendShifted(tiles, tilesBounds(tiles).W()+squareGap, 0.0)
		}
		for yi := 1; yi < ny+1; yi *= 2 {
			tiles = appendShifted(tiles, 0.0, tilesBounds(tiles).H()+squareGap)
		}

		var offset Point
		if centered {
			offset = bounds.Center().Sub(tilesBounds(tiles).Center())
		} else {
			offset = Point{bounds.X0, bounds.Y0}
		}
		for _, tile := range tiles {
			for i := range tile {
				tile[i] = tile[i].Add(offset)
			}
		}

		clipped := clipPolys(tiles, []Polygon{poly}, OpAnd, 1000.0)
		result.Append(NewPolygonSet(clipped, tag))
	}
	return result.ChangeLayer(tag), nil
}

// appendShifted appends a copy of all tiles translated by (dx,dy).
func appendShifted(tiles []Polygon, dx, dy float64) []Polygon {
	n := len(tiles)
	for i := 0; i < n; i++ {
		tile := tiles[i].Copy()
		for j := range tile {
			tile[j].X += dx
			tile[j].Y += dy
		}
		tiles = append(tiles, tile)
	}
	return tiles
}

func tilesBounds(tiles []Polygon) Rect {
	bounds := tiles[0].Bounds()
	for _, tile := range tiles[1:] {
		bounds = bounds.Union(tile.Bounds())
	}
	return bounds
}

////////////////////////////////////////////////////////////////

// ShortCircuit is the containment condition applied to a point group by
// InsideGroups.
type ShortCircuit int

const (
	InsideAny ShortCircuit = iota // true if any point of the group is inside
	InsideAll                     // true if all points of the group are inside
)

// Inside tests each point for containment in the union of the polygons of the
// operand, evaluated at the given coordinate precision. Points on a polygon
// boundary count as inside.
func Inside(points []Point, polys Operand, precision float64) ([]bool, error) {
	if err := checkPrecision(precision); err != nil {
		return nil, err
	}
	scale := 1.0 / precision
	paths := toPaths(gatherPolys(polys), scale)
	result := make([]bool, len(points))
	for i, pt := range points {
		result[i] = insidePaths(pt, paths, scale)
	}
	return result, nil
}

// InsideGroups tests point groups for containment in the union of the
// polygons of the operand, returning one boolean per group. With InsideAny a
// group counts as inside as soon as any of its points is inside, with
// InsideAll only if all of them are.
func InsideGroups(groups [][]Point, polys Operand, shortCircuit ShortCircuit, precision float64) ([]bool, error) {
	if err := checkPrecision(precision); err != nil {
		return nil, err
	}
	if shortCircuit != InsideAny && shortCircuit != InsideAll {
		return nil, fmt.Errorf("short circuit must be InsideAny or InsideAll, got %d", int(shortCircuit))
	}
	scale := 1.0 / precision
	paths := toPaths(gatherPolys(polys), scale)

	result := make([]bool, len(groups))
	for i, group := range groups {
		inside := shortCircuit == InsideAll
		for _, pt := range group {
			if insidePaths(pt, paths, scale) == (shortCircuit == InsideAny) {
				inside = shortCircuit == InsideAny
				break
			}
		}
		if len(group) == 0 {
			inside = false
		}
		result[i] = inside
	}
	return result, nil
}

// SelectLayer returns a new set with copies of exactly the entries whose layer
// and datatype match, keeping their metadata verbatim. The source set is not
// modified. When merge is set the selection is merged before returning.
func SelectLayer(p *PolygonSet, layer, datatype int, merge bool) *PolygonSet {
	selected := &PolygonSet{}
	for i := range p.Polygons {
		if p.Layers[i] != layer || p.Datatypes[i] != datatype {
			continue
		}
		selected.Polygons = append(selected.Polygons, p.Polygons[i].Copy())
		selected.Layers = append(selected.Layers, p.Layers[i])
		selected.Datatypes = append(selected.Datatypes, p.Datatypes[i])
		selected.Names = append(selected.Names, p.Names[i])
		selected.Colors = append(selected.Colors, p.Colors[i])
	}
	if merge {
		return Merge(selected)
	}
	return selected
}

// Copy returns a deep copy of the set translated by (dx,dy).
func Copy(p *PolygonSet, dx, dy float64) *PolygonSet {
	q := p.Copy()
	if dx != 0.0 || dy != 0.0 {
		q.Translate(dx, dy)
	}
	return q
}
