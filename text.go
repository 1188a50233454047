package gdsgeom

import "math"

// Text returns the polygonal outlines of a text, each letter formed by a
// series of polygons. size is the height of a character; the width of a
// character and the distance between characters are size multiplied by 5/9
// and 8/9 respectively. position is the lower left corner of the text. With
// horizontal false the text runs from top to bottom, with the line distance
// multiplied by 11/9. angle rotates the whole text in radians CCW around
// position. Characters without a glyph are skipped.
func Text(text string, size float64, position Point, horizontal bool, angle float64, tag Tag) *PolygonSet {
	polygons := []Polygon{}
	posX, posY := 0.0, 0.0
	scale := size / 9.0
	sa, ca := 0.0, 1.0
	if angle != 0.0 {
		sa, ca = math.Sincos(angle)
	}
	for _, c := range text {
		switch c {
		case '\n':
			if horizontal {
				posY -= 11.0
				posX = 0.0
			} else {
				posX += 8.0
				posY = 0.0
			}
			continue
		case '\t':
			if horizontal {
				posX += 32.0 - math.Mod(posX+8.0, 32.0)
			} else {
				m := math.Mod(posY-22.0, 44.0)
				if m < 0.0 {
					m += 44.0
				}
				posY -= 11.0 + m
			}
			continue
		}
		if glyph, ok := font[c]; ok {
			for _, outline := range glyph {
				poly := make(Polygon, len(outline))
				for i, v := range outline {
					xp := scale * (posX + v.X)
					yp := scale * (posY + v.Y)
					poly[i] = Point{
						position.X + xp*ca - yp*sa,
						position.Y + xp*sa + yp*ca,
					}
				}
				polygons = append(polygons, poly)
			}
		}
		if horizontal {
			posX += 8.0
		} else {
			posY -= 11.0
		}
	}
	return NewPolygonSet(polygons, tag)
}

// font is the polygonal 5x9 glyph outlines used by Text, one list of
// polygons per character on a unit grid.
var font = map[rune][]Polygon{
	'!': {{{2, 2}, {3, 2}, {3, 3}, {2, 3}}, {{2, 4}, {3, 4}, {3, 5}, {3, 6}, {3, 7}, {3, 8}, {3, 9}, {2, 9}, {2, 8}, {2, 7}, {2, 6}, {2, 5}}},
	'"': {{{1, 7}, {2, 7}, {2, 8}, {2, 9}, {1, 9}, {1, 8}}, {{3, 7}, {4, 7}, {4, 8}, {4, 9}, {3, 9}, {3, 8}}},
	'#': {{{0, 3}, {1, 3}, {1, 2}, {2, 2}, {2, 3}, {2, 4}, {2, 5}, {3, 5}, {3, 4}, {2, 4}, {2, 3}, {3, 3}, {3, 2}, {4, 2}, {4, 3}, {5, 3}, {5, 4}, {4, 4}, {4, 5}, {5, 5}, {5, 6}, {4, 6}, {4, 7}, {3, 7}, {3, 6}, {2, 6}, {2, 7}, {1, 7}, {1, 6}, {0, 6}, {0, 5}, {1, 5}, {1, 4}, {0, 4}}},
	'$': {{{0, 2}, {1, 2}, {2, 2}, {2, 1}, {3, 1}, {3, 2}, {4, 2}, {4, 3}, {3, 3}, {3, 4}, {4, 4}, {4, 5}, {3, 5}, {3, 6}, {3, 7}, {4, 7}, {5, 7}, {5, 8}, {4, 8}, {3, 8}, {3, 9}, {2, 9}, {2, 8}, {1, 8}, {1, 7}, {2, 7}, {2, 6}, {1, 6}, {1, 5}, {2, 5}, {2, 4}, {2, 3}, {1, 3}, {0, 3}}, {{0, 6}, {1, 6}, {1, 7}, {0, 7}}, {{4, 3}, {5, 3}, {5, 4}, {4, 4}}},
	'%': {{{0, 2}, {1, 2}, {1, 3}, {1, 4}, {0, 4}, {0, 3}}, {{0, 7}, {1, 7}, {2, 7}, {2, 8}, {2, 9}, {1, 9}, {0, 9}, {0, 8}}, {{1, 4}, {2, 4}, {2, 5}, {1, 5}}, {{2, 5}, {3, 5}, {3, 6}, {2, 6}}, {{3, 2}, {4, 2}, {5, 2}, {5, 3}, {5, 4}, {4, 4}, {3, 4}, {3, 3}}, {{3, 6}, {4, 6}, {4, 7}, {3, 7}}, {{4, 7}, {5, 7}, {5, 8}, {5, 9}, {4, 9}, {4, 8}}},
	'&': {{{0, 3}, {1, 3}, {1, 4}, {1, 5}, {0, 5}, {0, 4}}, {{0, 6}, {1, 6}, {1, 7}, {1, 8}, {0, 8}, {0, 7}}, {{1, 2}, {2, 2}, {3, 2}, {3, 3}, {2, 3}, {1, 3}}, {{1, 5}, {2, 5}, {3, 5}, {3, 6}, {3, 7}, {3, 8}, {2, 8}, {2, 7}, {2, 6}, {1, 6}}, {{1, 8}, {2, 8}, {2, 9}, {1, 9}}, {{3, 3}, {4, 3}, {4, 4}, {4, 5}, {3, 5}, {3, 4}}, {{4, 2}, {5, 2}, {5, 3}, {4, 3}}, {{4, 5}, {5, 5}, {5, 6}, {4, 6}}},
	'\'': {{{2, 7}, {3, 7}, {3, 8}, {3, 9}, {2, 9}, {2, 8}}},
	'(': {{{1, 4}, {2, 4}, {2, 5}, {2, 6}, {2, 7}, {1, 7}, {1, 6}, {1, 5}}, {{2, 3}, {3, 3}, {3, 4}, {2, 4}}, {{2, 7}, {3, 7}, {3, 8}, {2, 8}}, {{3, 2}, {4, 2}, {4, 3}, {3, 3}}, {{3, 8}, {4, 8}, {4, 9}, {3, 9}}},
	')': {{{3, 4}, {4, 4}, {4, 5}, {4, 6}, {4, 7}, {3, 7}, {3, 6}, {3, 5}}, {{1, 2}, {2, 2}, {2, 3}, {1, 3}}, {{1, 8}, {2, 8}, {2, 9}, {1, 9}}, {{2, 3}, {3, 3}, {3, 4}, {2, 4}}, {{2, 7}, {3, 7}, {3, 8}, {2, 8}}},
	'*': {{{0, 2}, {1, 2}, {1, 3}, {0, 3}}, {{0, 4}, {1, 4}, {1, 3}, {2, 3}, {2, 2}, {3, 2}, {3, 3}, {4, 3}, {4, 4}, {5, 4}, {5, 5}, {4, 5}, {4, 6}, {3, 6}, {3, 7}, {2, 7}, {2, 6}, {1, 6}, {1, 5}, {0, 5}}, {{0, 6}, {1, 6}, {1, 7}, {0, 7}}, {{4, 2}, {5, 2}, {5, 3}, {4, 3}}, {{4, 6}, {5, 6}, {5, 7}, {4, 7}}},
	'+': {{{0, 4}, {1, 4}, {2, 4}, {2, 3}, {2, 2}, {3, 2}, {3, 3}, {3, 4}, {4, 4}, {5, 4}, {5, 5}, {4, 5}, {3, 5}, {3, 6}, {3, 7}, {2, 7}, {2, 6}, {2, 5}, {1, 5}, {0, 5}}},
	',': {{{1, 0}, {2, 0}, {2, 1}, {1, 1}}, {{2, 1}, {3, 1}, {3, 2}, {3, 3}, {2, 3}, {2, 2}}},
	'-': {{{0, 4}, {1, 4}, {2, 4}, {3, 4}, {4, 4}, {5, 4}, {5, 5}, {4, 5}, {3, 5}, {2, 5}, {1, 5}, {0, 5}}},
	'.': {{{2, 2}, {3, 2}, {3, 3}, {2, 3}}},
	'/': {{{0, 2}, {1, 2}, {1, 3}, {1, 4}, {0, 4}, {0, 3}}, {{1, 4}, {2, 4}, {2, 5}, {1, 5}}, {{2, 5}, {3, 5}, {3, 6}, {2, 6}}, {{3, 6}, {4, 6}, {4, 7}, {3, 7}}, {{4, 7}, {5, 7}, {5, 8}, {5, 9}, {4, 9}, {4, 8}}},
	'0': {{{0, 3}, {1, 3}, {1, 4}, {2, 4}, {2, 5}, {1, 5}, {1, 6}, {1, 7}, {1, 8}, {0, 8}, {0, 7}, {0, 6}, {0, 5}, {0, 4}}, {{1, 2}, {2, 2}, {3, 2}, {4, 2}, {4, 3}, {3, 3}, {2, 3}, {1, 3}}, {{1, 8}, {2, 8}, {3, 8}, {4, 8}, {4, 9}, {3, 9}, {2, 9}, {1, 9}}, {{2, 5}, {3, 5}, {3, 6}, {2, 6}}, {{3, 6}, {4, 6}, {4, 5}, {4, 4}, {4, 3}, {5, 3}, {5, 4}, {5, 5}, {5, 6}, {5, 7}, {5, 8}, {4, 8}, {4, 7}, {3, 7}}},
	'1': {{{1, 2}, {2, 2}, {3, 2}, {4, 2}, {4, 3}, {3, 3}, {3, 4}, {3, 5}, {3, 6}, {3, 7}, {3, 8}, {3, 9}, {2, 9}, {2, 8}, {1, 8}, {1, 7}, {2, 7}, {2, 6}, {2, 5}, {2, 4}, {2, 3}, {1, 3}}},
	'2': {{{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 2}, {5, 2}, {5, 3}, {4, 3}, {3, 3}, {2, 3}, {1, 3}, {1, 4}, {0, 4}, {0, 3}}, {{0, 7}, {1, 7}, {1, 8}, {0, 8}}, {{1, 4}, {2, 4}, {3, 4}, {3, 5}, {2, 5}, {1, 5}}, {{1, 8}, {2, 8}, {3, 8}, {4, 8}, {4, 9}, {3, 9}, {2, 9}, {1, 9}}, {{3, 5}, {4, 5}, {4, 6}, {3, 6}}, {{4, 6}, {5, 6}, {5, 7}, {5, 8}, {4, 8}, {4, 7}}},
	'3': {{{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 2}, {4, 3}, {3, 3}, {2, 3}, {1, 3}, {0, 3}}, {{0, 8}, {1, 8}, {2, 8}, {3, 8}, {4, 8}, {4, 9}, {3, 9}, {2, 9}, {1, 9}, {0, 9}}, {{1, 5}, {2, 5}, {3, 5}, {4, 5}, {4, 6}, {3, 6}, {2, 6}, {1, 6}}, {{4, 3}, {5, 3}, {5, 4}, {5, 5}, {4, 5}, {4, 4}}, {{4, 6}, {5, 6}, {5, 7}, {5, 8}, {4, 8}, {4, 7}}},
	'4': {{{0, 4}, {1, 4}, {2, 4}, {3, 4}, {3, 3}, {3, 2}, {4, 2}, {4, 3}, {4, 4}, {5, 4}, {5, 5}, {4, 5}, {4, 6}, {4, 7}, {4, 8}, {4, 9}, {3, 9}, {2, 9}, {2, 8}, {3, 8}, {3, 7}, {3, 6}, {3, 5}, {2, 5}, {1, 5}, {1, 6}, {0, 6}, {0, 5}}, {{1, 6}, {2, 6}, {2, 7}, {2, 8}, {1, 8}, {1, 7}}},
	'5': {{{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 2}, {4, 3}, {3, 3}, {2, 3}, {1, 3}, {0, 3}}, {{0, 5}, {1, 5}, {2, 5}, {3, 5}, {4, 5}, {4, 6}, {3, 6}, {2, 6}, {1, 6}, {1, 7}, {1, 8}, {2, 8}, {3, 8}, {4, 8}, {5, 8}, {5, 9}, {4, 9}, {3, 9}, {2, 9}, {1, 9}, {0, 9}, {0, 8}, {0, 7}, {0, 6}}, {{4, 3}, {5, 3}, {5, 4}, {5, 5}, {4, 5}, {4, 4}}},
	'6': {{{0, 3}, {1, 3}, {1, 4}, {1, 5}, {2, 5}, {3, 5}, {4, 5}, {4, 6}, {3, 6}, {2, 6}, {1, 6}, {1, 7}, {1, 8}, {0, 8}, {0, 7}, {0, 6}, {0, 5}, {0, 4}}, {{1, 2}, {2, 2}, {3, 2}, {4, 2}, {4, 3}, {3, 3}, {2, 3}, {1, 3}}, {{1, 8}, {2, 8}, {3, 8}, {4, 8}, {4, 9}, {3, 9}, {2, 9}, {1, 9}}, {{4, 3}, {5, 3}, {5, 4}, {5, 5}, {4, 5}, {4, 4}}},
	'7': {{{0, 8}, {1, 8}, {2, 8}, {3, 8}, {4, 8}, {4, 7}, {4, 6}, {5, 6}, {5, 7}, {5, 8}, {5, 9}, {4, 9}, {3, 9}, {2, 9}, {1, 9}, {0, 9}}, {{2, 2}, {3, 2}, {3, 3}, {3, 4}, {3, 5}, {2, 5}, {2, 4}, {2, 3}}, {{3, 5}, {4, 5}, {4, 6}, {3, 6}}},
	'8': {{{0, 3}, {1, 3}, {1, 4}, {1, 5}, {0, 5}, {0, 4}}, {{0, 6}, {1, 6}, {1, 7}, {1, 8}, {0, 8}, {0, 7}}, {{1, 2}, {2, 2}, {3, 2}, {4, 2}, {4, 3}, {3, 3}, {2, 3}, {1, 3}}, {{1, 5}, {2, 5}, {3, 5}, {4, 5}, {4, 6}, {3, 6}, {2, 6}, {1, 6}}, {{1, 8}, {2, 8}, {3, 8}, {4, 8}, {4, 9}, {3, 9}, {2, 9}, {1, 9}}, {{4, 3}, {5, 3}, {5, 4}, {5, 5}, {4, 5}, {4, 4}}, {{4, 6}, {5, 6}, {5, 7}, {5, 8}, {4, 8}, {4, 7}}},
	'9': {{{0, 6}, {1, 6}, {1, 7}, {1, 8}, {0, 8}, {0, 7}}, {{1, 2}, {2, 2}, {3, 2}, {4, 2}, {4, 3}, {3, 3}, {2, 3}, {1, 3}}, {{1, 5}, {2, 5}, {3, 5}, {4, 5}, {4, 4}, {4, 3}, {5, 3}, {5, 4}, {5, 5}, {5, 6}, {5, 7}, {5, 8}, {4, 8}, {4, 7}, {4, 6}, {3, 6}, {2, 6}, {1, 6}}, {{1, 8}, {2, 8}, {3, 8}, {4, 8}, {4, 9}, {3, 9}, {2, 9}, {1, 9}}},
	':': {{{2, 2}, {3, 2}, {3, 3}, {2, 3}}, {{2, 5}, {3, 5}, {3, 6}, {2, 6}}},
	';': {{{1, 0}, {2, 0}, {2, 1}, {1, 1}}, {{2, 1}, {3, 1}, {3, 2}, {3, 3}, {2, 3}, {2, 2}}, {{2, 4}, {3, 4}, {3, 5}, {2, 5}}},
	'<': {{{0, 5}, {1, 5}, {1, 6}, {0, 6}}, {{1, 4}, {2, 4}, {2, 5}, {1, 5}}, {{1, 6}, {2, 6}, {2, 7}, {1, 7}}, {{2, 3}, {3, 3}, {4, 3}, {4, 4}, {3, 4}, {2, 4}}, {{2, 7}, {3, 7}, {4, 7}, {4, 8}, {3, 8}, {2, 8}}, {{4, 2}, {5, 2}, {5, 3}, {4, 3}}, {{4, 8}, {5, 8}, {5, 9}, {4, 9}}},
	'=': {{{0, 3}, {1, 3}, {2, 3}, {3, 3}, {4, 3}, {5, 3}, {5, 4}, {4, 4}, {3, 4}, {2, 4}, {1, 4}, {0, 4}}, {{0, 5}, {1, 5}, {2, 5}, {3, 5}, {4, 5}, {5, 5}, {5, 6}, {4, 6}, {3, 6}, {2, 6}, {1, 6}, {0, 6}}},
	'>': {{{0, 2}, {1, 2}, {1, 3}, {0, 3}}, {{0, 8}, {1, 8}, {1, 9}, {0, 9}}, {{1, 3}, {2, 3}, {3, 3}, {3, 4}, {2, 4}, {1, 4}}, {{1, 7}, {2, 7}, {3, 7}, {3, 8}, {2, 8}, {1, 8}}, {{3, 4}, {4, 4}, {4, 5}, {3, 5}}, {{3, 6}, {4, 6}, {4, 7}, {3, 7}}, {{4, 5}, {5, 5}, {5, 6}, {4, 6}}},
	'?': {{{0, 7}, {1, 7}, {1, 8}, {0, 8}}, {{1, 8}, {2, 8}, {3, 8}, {4, 8}, {4, 9}, {3, 9}, {2, 9}, {1, 9}}, {{2, 2}, {3, 2}, {3, 3}, {2, 3}}, {{2, 4}, {3, 4}, {3, 5}, {2, 5}}, {{3, 5}, {4, 5}, {4, 6}, {3, 6}}, {{4, 6}, {5, 6}, {5, 7}, {5, 8}, {4, 8}, {4, 7}}},
	'@': {{{0, 3}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, {1, 7}, {1, 8}, {0, 8}, {0, 7}, {0, 6}, {0, 5}, {0, 4}}, {{1, 2}, {2, 2}, {3, 2}, {4, 2}, {4, 3}, {3, 3}, {2, 3}, {1, 3}}, {{1, 8}, {2, 8}, {3, 8}, {4, 8}, {4, 9}, {3, 9}, {2, 9}, {1, 9}}, {{2, 4}, {3, 4}, {4, 4}, {4, 5}, {3, 5}, {3, 6}, {3, 7}, {2, 7}, {2, 6}, {2, 5}}, {{4, 5}, {5, 5}, {5, 6}, {5, 7}, {5, 8}, {4, 8}, {4, 7}, {4, 6}}},
	'A': {{{0, 2}, {1, 2}, {1, 3}, {1, 4}, {2, 4}, {3, 4}, {4, 4}, {4, 3}, {4, 2}, {5, 2}, {5, 3}, {5, 4}, {5, 5}, {5, 6}, {5, 7}, {5, 8}, {4, 8}, {4, 7}, {4, 6}, {4, 5}, {3, 5}, {2, 5}, {1, 5}, {1, 6}, {1, 7}, {1, 8}, {0, 8}, {0, 7}, {0, 6}, {0, 5}, {0, 4}, {0, 3}}, {{1, 8}, {2, 8}, {3, 8}, {4, 8}, {4, 9}, {3, 9}, {2, 9}, {1, 9}}},
	'B': {{{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 2}, {4, 3}, {3, 3}, {2, 3}, {1, 3}, {1, 4}, {1, 5}, {2, 5}, {3, 5}, {4, 5}, {4, 6}, {3, 6}, {2, 6}, {1, 6}, {1, 7}, {1, 8}, {2, 8}, {3, 8}, {4, 8}, {4, 9}, {3, 9}, {2, 9}, {1, 9}, {0, 9}, {0, 8}, {0, 7}, {0, 6}, {0, 5}, {0, 4}, {0, 3}}, {{4, 3}, {5, 3}, {5, 4}, {5, 5}, {4, 5}, {4, 4}}, {{4, 6}, {5, 6}, {5, 7}, {5, 8}, {4, 8}, {4, 7}}},
	'C': {{{0, 3}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, {1, 7}, {1, 8}, {0, 8}, {0, 7}, {0, 6}, {0, 5}, {0, 4}}, {{1, 2}, {2, 2}, {3, 2}, {4, 2}, {5, 2}, {5, 3}, {4, 3}, {3, 3}, {2, 3}, {1, 3}}, {{1, 8}, {2, 8}, {3, 8}, {4, 8}, {5, 8}, {5, 9}, {4, 9}, {3, 9}, {2, 9}, {1, 9}}},
	'D': {{{0, 2}, {1, 2}, {2, 2}, {3, 2}, {3, 3}, {2, 3}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, {1, 7}, {1, 8}, {2, 8}, {3, 8}, {3, 9}, {2, 9}, {1, 9}, {0, 9}, {0, 8}, {0, 7}, {0, 6}, {0, 5}, {0, 4}, {0, 3}}, {{3, 3}, {4, 3}, {4, 4}, {3, 4}}, {{3, 7}, {4, 7}, {4, 8}, {3, 8}}, {{4, 4}, {5, 4}, {5, 5}, {5, 6}, {5, 7}, {4, 7}, {4, 6}, {4, 5}}},
	'E': {{{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 2}, {5, 2}, {5, 3}, {4, 3}, {3, 3}, {2, 3}, {1, 3}, {1, 4}, {1, 5}, {2, 5}, {3, 5}, {4, 5}, {4, 6}, {3, 6}, {2, 6}, {1, 6}, {1, 7}, {1, 8}, {2, 8}, {3, 8}, {4, 8}, {5, 8}, {5, 9}, {4, 9}, {3, 9}, {2, 9}, {1, 9}, {0, 9}, {0, 8}, {0, 7}, {0, 6}, {0, 5}, {0, 4}, {0, 3}}},
	'F': {{{0, 2}, {1, 2}, {1, 3}, {1, 4}, {1, 5}, {2, 5}, {3, 5}, {4, 5}, {4, 6}, {3, 6}, {2, 6}, {1, 6}, {1, 7}, {1, 8}, {2, 8}, {3, 8}, {4, 8}, {5, 8}, {5, 9}, {4, 9}, {3, 9}, {2, 9}, {1, 9}, {0, 9}, {0, 8}, {0, 7}, {0, 6}, {0, 5}, {0, 4}, {0, 3}}},
	'G': {{{0, 3}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, {1, 7}, {1, 8}, {0, 8}, {0, 7}, {0, 6}, {0, 5}, {0, 4}}, {{1, 2}, {2, 2}, {3, 2}, {4, 2}, {5, 2}, {5, 3}, {5, 4}, {5, 5}, {5, 6}, {4, 6}, {3, 6}, {2, 6}, {2, 5}, {3, 5}, {4, 5}, {4, 4}, {4, 3}, {3, 3}, {2, 3}, {1, 3}}, {{1, 8}, {2, 8}, {3, 8}, {4, 8}, {5, 8}, {5, 9}, {4, 9}, {3, 9}, {2, 9}, {1, 9}}},
	'H': {{{0, 2}, {1, 2}, {1, 3}, {1, 4}, {1, 5}, {2, 5}, {3, 5}, {4, 5}, {4, 4}, {4, 3}, {4, 2}, {5, 2}, {5, 3}, {5, 4}, {5, 5}, {5, 6}, {5, 7}, {5, 8}, {5, 9}, {4, 9}, {4, 8}, {4, 7}, {4, 6}, {3, 6}, {2, 6}, {1, 6}, {1, 7}, {1, 8}, {1, 9}, {0, 9}, {0, 8}, {0, 7}, {0, 6}, {0, 5}, {0, 4}, {0, 3}}},
	'I': {{{1, 2}, {2, 2}, {3, 2}, {4, 2}, {4, 3}, {3, 3}, {3, 4}, {3, 5}, {3, 6}, {3, 7}, {3, 8}, {4, 8}, {4, 9}, {3, 9}, {2, 9}, {1, 9}, {1, 8}, {2, 8}, {2, 7}, {2, 6}, {2, 5}, {2, 4}, {2, 3}, {1, 3}}},
	'J': {{{0, 3}, {1, 3}, {1, 4}, {0, 4}}, {{0, 8}, {1, 8}, {2, 8}, {3, 8}, {3, 7}, {3, 6}, {3, 5}, {3, 4}, {3, 3}, {4, 3}, {4, 4}, {4, 5}, {4, 6}, {4, 7}, {4, 8}, {5, 8}, {5, 9}, {4, 9}, {3, 9}, {2, 9}, {1, 9}, {0, 9}}, {{1, 2}, {2, 2}, {3, 2}, {3, 3}, {2, 3}, {1, 3}}},
	'K': {{{0, 2}, {1, 2}, {1, 3}, {1, 4}, {1, 5}, {2, 5}, {2, 6}, {1, 6}, {1, 7}, {1, 8}, {1, 9}, {0, 9}, {0, 8}, {0, 7}, {0, 6}, {0, 5}, {0, 4}, {0, 3}}, {{2, 4}, {3, 4}, {3, 5}, {2, 5}}, {{2, 6}, {3, 6}, {3, 7}, {2, 7}}, {{3, 3}, {4, 3}, {4, 4}, {3, 4}}, {{3, 7}, {4, 7}, {4, 8}, {3, 8}}, {{4, 2}, {5, 2}, {5, 3}, {4, 3}}, {{4, 8}, {5, 8}, {5, 9}, {4, 9}}},
	'L': {{{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 2}, {5, 2}, {5, 3}, {4, 3}, {3, 3}, {2, 3}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, {1, 7}, {1, 8}, {1, 9}, {0, 9}, {0, 8}, {0, 7}, {0, 6}, {0, 5}, {0, 4}, {0, 3}}},
	'M': {{{0, 2}, {1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, {1, 7}, {2, 7}, {2, 8}, {1, 8}, {1, 9}, {0, 9}, {0, 8}, {0, 7}, {0, 6}, {0, 5}, {0, 4}, {0, 3}}, {{2, 5}, {3, 5}, {3, 6}, {3, 7}, {2, 7}, {2, 6}}, {{3, 7}, {4, 7}, {4, 6}, {4, 5}, {4, 4}, {4, 3}, {4, 2}, {5, 2}, {5, 3}, {5, 4}, {5, 5}, {5, 6}, {5, 7}, {5, 8}, {5, 9}, {4, 9}, {4, 8}, {3, 8}}},
	'N': {{{0, 2}, {1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, {1, 7}, {2, 7}, {2, 8}, {1, 8}, {1, 9}, {0, 9}, {0, 8}, {0, 7}, {0, 6}, {0, 5}, {0, 4}, {0, 3}}, {{2, 5}, {3, 5}, {3, 6}, {3, 7}, {2, 7}, {2, 6}}, {{3, 4}, {4, 4}, {4, 3}, {4, 2}, {5, 2}, {5, 3}, {5, 4}, {5, 5}, {5, 6}, {5, 7}, {5, 8}, {5, 9}, {4, 9}, {4, 8}, {4, 7}, {4, 6}, {4, 5}, {3, 5}}},
	'O': {{{0, 3}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, {1, 7}, {1, 8}, {0, 8}, {0, 7}, {0, 6}, {0, 5}, {0, 4}}, {{1, 2}, {2, 2}, {3, 2}, {4, 2}, {4, 3}, {3, 3}, {2, 3}, {1, 3}}, {{1, 8}, {2, 8}, {3, 8}, {4, 8}, {4, 9}, {3, 9}, {2, 9}, {1, 9}}, {{4, 3}, {5, 3}, {5, 4}, {5, 5}, {5, 6}, {5, 7}, {5, 8}, {4, 8}, {4, 7}, {4, 6}, {4, 5}, {4, 4}}},
	'P': {{{0, 2}, {1, 2}, {1, 3}, {1, 4}, {1, 5}, {2, 5}, {3, 5}, {4, 5}, {4, 6}, {3, 6}, {2, 6}, {1, 6}, {1, 7}, {1, 8}, {2, 8}, {3, 8}, {4, 8}, {4, 9}, {3, 9}, {2, 9}, {1, 9}, {0, 9}, {0, 8}, {0, 7}, {0, 6}, {0, 5}, {0, 4}, {0, 3}}, {{4, 6}, {5, 6}, {5, 7}, {5, 8}, {4, 8}, {4, 7}}},
	'Q': {{{0, 3}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, {1, 7}, {1, 8}, {0, 8}, {0, 7}, {0, 6}, {0, 5}, {0, 4}}, {{1, 2}, {2, 2}, {3, 2}, {4, 2}, {4, 3}, {5, 3}, {5, 4}, {5, 5}, {5, 6}, {5, 7}, {5, 8}, {4, 8}, {4, 7}, {4, 6}, {4, 5}, {4, 4}, {3, 4}, {3, 3}, {2, 3}, {1, 3}}, {{1, 8}, {2, 8}, {3, 8}, {4, 8}, {4, 9}, {3, 9}, {2, 9}, {1, 9}}, {{2, 4}, {3, 4}, {3, 5}, {2, 5}}},
	'R': {{{0, 2}, {1, 2}, {1, 3}, {1, 4}, {1, 5}, {2, 5}, {3, 5}, {3, 4}, {4, 4}, {4, 5}, {4, 6}, {3, 6}, {2, 6}, {1, 6}, {1, 7}, {1, 8}, {2, 8}, {3, 8}, {4, 8}, {4, 9}, {3, 9}, {2, 9}, {1, 9}, {0, 9}, {0, 8}, {0, 7}, {0, 6}, {0, 5}, {0, 4}, {0, 3}}, {{4, 2}, {5, 2}, {5, 3}, {5, 4}, {4, 4}, {4, 3}}, {{4, 6}, {5, 6}, {5, 7}, {5, 8}, {4, 8}, {4, 7}}},
	'S': {{{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 2}, {4, 3}, {3, 3}, {2, 3}, {1, 3}, {0, 3}}, {{0, 6}, {1, 6}, {1, 7}, {1, 8}, {0, 8}, {0, 7}}, {{1, 5}, {2, 5}, {3, 5}, {4, 5}, {4, 6}, {3, 6}, {2, 6}, {1, 6}}, {{1, 8}, {2, 8}, {3, 8}, {4, 8}, {5, 8}, {5, 9}, {4, 9}, {3, 9}, {2, 9}, {1, 9}}, {{4, 3}, {5, 3}, {5, 4}, {5, 5}, {4, 5}, {4, 4}}},
	'T': {{{0, 8}, {1, 8}, {2, 8}, {2, 7}, {2, 6}, {2, 5}, {2, 4}, {2, 3}, {2, 2}, {3, 2}, {3, 3}, {3, 4}, {3, 5}, {3, 6}, {3, 7}, {3, 8}, {4, 8}, {5, 8}, {5, 9}, {4, 9}, {3, 9}, {2, 9}, {1, 9}, {0, 9}}},
	'U': {{{0, 3}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, {1, 7}, {1, 8}, {1, 9}, {0, 9}, {0, 8}, {0, 7}, {0, 6}, {0, 5}, {0, 4}}, {{1, 2}, {2, 2}, {3, 2}, {4, 2}, {4, 3}, {3, 3}, {2, 3}, {1, 3}}, {{4, 3}, {5, 3}, {5, 4}, {5, 5}, {5, 6}, {5, 7}, {5, 8}, {5, 9}, {4, 9}, {4, 8}, {4, 7}, {4, 6}, {4, 5}, {4, 4}}},
	'V': {{{0, 5}, {1, 5}, {1, 6}, {1, 7}, {1, 8}, {1, 9}, {0, 9}, {0, 8}, {0, 7}, {0, 6}}, {{1, 3}, {2, 3}, {2, 4}, {2, 5}, {1, 5}, {1, 4}}, {{2, 2}, {3, 2}, {3, 3}, {2, 3}}, {{3, 3}, {4, 3}, {4, 4}, {4, 5}, {3, 5}, {3, 4}}, {{4, 5}, {5, 5}, {5, 6}, {5, 7}, {5, 8}, {5, 9}, {4, 9}, {4, 8}, {4, 7}, {4, 6}}},
	'W': {{{0, 3}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, {1, 7}, {1, 8}, {1, 9}, {0, 9}, {0, 8}, {0, 7}, {0, 6}, {0, 5}, {0, 4}}, {{1, 2}, {2, 2}, {2, 3}, {1, 3}}, {{2, 3}, {3, 3}, {3, 4}, {3, 5}, {3, 6}, {2, 6}, {2, 5}, {2, 4}}, {{3, 2}, {4, 2}, {4, 3}, {3, 3}}, {{4, 3}, {5, 3}, {5, 4}, {5, 5}, {5, 6}, {5, 7}, {5, 8}, {5, 9}, {4, 9}, {4, 8}, {4, 7}, {4, 6}, {4, 5}, {4, 4}}},
	'X': {{{0, 2}, {1, 2}, {1, 3}, {1, 4}, {0, 4}, {0, 3}}, {{0, 7}, {1, 7}, {1, 8}, {1, 9}, {0, 9}, {0, 8}}, {{1, 4}, {2, 4}, {2, 5}, {1, 5}}, {{1, 6}, {2, 6}, {2, 7}, {1, 7}}, {{2, 5}, {3, 5}, {3, 6}, {2, 6}}, {{3, 4}, {4, 4}, {4, 5}, {3, 5}}, {{3, 6}, {4, 6}, {4, 7}, {3, 7}}, {{4, 2}, {5, 2}, {5, 3}, {5, 4}, {4, 4}, {4, 3}}, {{4, 7}, {5, 7}, {5, 8}, {5, 9}, {4, 9}, {4, 8}}},
	'Y': {{{0, 7}, {1, 7}, {1, 8}, {1, 9}, {0, 9}, {0, 8}}, {{1, 5}, {2, 5}, {2, 6}, {2, 7}, {1, 7}, {1, 6}}, {{2, 2}, {3, 2}, {3, 3}, {3, 4}, {3, 5}, {2, 5}, {2, 4}, {2, 3}}, {{3, 5}, {4, 5}, {4, 6}, {4, 7}, {3, 7}, {3, 6}}, {{4, 7}, {5, 7}, {5, 8}, {5, 9}, {4, 9}, {4, 8}}},
	'Z': {{{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 2}, {5, 2}, {5, 3}, {4, 3}, {3, 3}, {2, 3}, {1, 3}, {1, 4}, {0, 4}, {0, 3}}, {{0, 8}, {1, 8}, {2, 8}, {3, 8}, {4, 8}, {4, 7}, {5, 7}, {5, 8}, {5, 9}, {4, 9}, {3, 9}, {2, 9}, {1, 9}, {0, 9}}, {{1, 4}, {2, 4}, {2, 5}, {1, 5}}, {{2, 5}, {3, 5}, {3, 6}, {2, 6}}, {{3, 6}, {4, 6}, {4, 7}, {3, 7}}},
	'[': {{{1, 2}, {2, 2}, {3, 2}, {4, 2}, {4, 3}, {3, 3}, {2, 3}, {2, 4}, {2, 5}, {2, 6}, {2, 7}, {2, 8}, {3, 8}, {4, 8}, {4, 9}, {3, 9}, {2, 9}, {1, 9}, {1, 8}, {1, 7}, {1, 6}, {1, 5}, {1, 4}, {1, 3}}},
	'\\': {{{0, 7}, {1, 7}, {1, 8}, {1, 9}, {0, 9}, {0, 8}}, {{1, 6}, {2, 6}, {2, 7}, {1, 7}}, {{2, 5}, {3, 5}, {3, 6}, {2, 6}}, {{3, 4}, {4, 4}, {4, 5}, {3, 5}}, {{4, 2}, {5, 2}, {5, 3}, {5, 4}, {4, 4}, {4, 3}}},
	']': {{{1, 2}, {2, 2}, {3, 2}, {4, 2}, {4, 3}, {4, 4}, {4, 5}, {4, 6}, {4, 7}, {4, 8}, {4, 9}, {3, 9}, {2, 9}, {1, 9}, {1, 8}, {2, 8}, {3, 8}, {3, 7}, {3, 6}, {3, 5}, {3, 4}, {3, 3}, {2, 3}, {1, 3}}},
	'^': {{{0, 6}, {1, 6}, {1, 7}, {0, 7}}, {{1, 7}, {2, 7}, {2, 8}, {1, 8}}, {{2, 8}, {3, 8}, {3, 9}, {2, 9}}, {{3, 7}, {4, 7}, {4, 8}, {3, 8}}, {{4, 6}, {5, 6}, {5, 7}, {4, 7}}},
	'_': {{{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 2}, {5, 2}, {5, 3}, {4, 3}, {3, 3}, {2, 3}, {1, 3}, {0, 3}}},
	'`': {{{1, 8}, {2, 8}, {2, 9}, {1, 9}}, {{2, 7}, {3, 7}, {3, 8}, {2, 8}}},
	'a': {{{0, 3}, {1, 3}, {1, 4}, {0, 4}}, {{1, 2}, {2, 2}, {3, 2}, {4, 2}, {5, 2}, {5, 3}, {5, 4}, {5, 5}, {5, 6}, {4, 6}, {4, 5}, {3, 5}, {2, 5}, {1, 5}, {1, 4}, {2, 4}, {3, 4}, {4, 4}, {4, 3}, {3, 3}, {2, 3}, {1, 3}}, {{1, 6}, {2, 6}, {3, 6}, {4, 6}, {4, 7}, {3, 7}, {2, 7}, {1, 7}}},
	'b': {{{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 2}, {4, 3}, {3, 3}, {2, 3}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, {2, 6}, {3, 6}, {4, 6}, {4, 7}, {3, 7}, {2, 7}, {1, 7}, {1, 8}, {1, 9}, {0, 9}, {0, 8}, {0, 7}, {0, 6}, {0, 5}, {0, 4}, {0, 3}}, {{4, 3}, {5, 3}, {5, 4}, {5, 5}, {5, 6}, {4, 6}, {4, 5}, {4, 4}}},
	'c': {{{0, 3}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, {0, 6}, {0, 5}, {0, 4}}, {{1, 2}, {2, 2}, {3, 2}, {4, 2}, {5, 2}, {5, 3}, {4, 3}, {3, 3}, {2, 3}, {1, 3}}, {{1, 6}, {2, 6}, {3, 6}, {4, 6}, {5, 6}, {5, 7}, {4, 7}, {3, 7}, {2, 7}, {1, 7}}},
	'd': {{{0, 3}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, {0, 6}, {0, 5}, {0, 4}}, {{1, 2}, {2, 2}, {3, 2}, {4, 2}, {5, 2}, {5, 3}, {5, 4}, {5, 5}, {5, 6}, {5, 7}, {5, 8}, {5, 9}, {4, 9}, {4, 8}, {4, 7}, {3, 7}, {2, 7}, {1, 7}, {1, 6}, {2, 6}, {3, 6}, {4, 6}, {4, 5}, {4, 4}, {4, 3}, {3, 3}, {2, 3}, {1, 3}}},
	'e': {{{0, 3}, {1, 3}, {1, 4}, {2, 4}, {3, 4}, {4, 4}, {5, 4}, {5, 5}, {5, 6}, {4, 6}, {4, 5}, {3, 5}, {2, 5}, {1, 5}, {1, 6}, {0, 6}, {0, 5}, {0, 4}}, {{1, 2}, {2, 2}, {3, 2}, {4, 2}, {4, 3}, {3, 3}, {2, 3}, {1, 3}}, {{1, 6}, {2, 6}, {3, 6}, {4, 6}, {4, 7}, {3, 7}, {2, 7}, {1, 7}}},
	'f': {{{0, 5}, {1, 5}, {1, 4}, {1, 3}, {1, 2}, {2, 2}, {2, 3}, {2, 4}, {2, 5}, {3, 5}, {4, 5}, {4, 6}, {3, 6}, {2, 6}, {2, 7}, {2, 8}, {1, 8}, {1, 7}, {1, 6}, {0, 6}}, {{2, 8}, {3, 8}, {4, 8}, {5, 8}, {5, 9}, {4, 9}, {3, 9}, {2, 9}}},
	'g': {{{0, 3}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, {0, 6}, {0, 5}, {0, 4}}, {{1, 0}, {2, 0}, {3, 0}, {4, 0}, {4, 1}, {3, 1}, {2, 1}, {1, 1}}, {{1, 2}, {2, 2}, {3, 2}, {4, 2}, {4, 1}, {5, 1}, {5, 2}, {5, 3}, {5, 4}, {5, 5}, {5, 6}, {4, 6}, {4, 5}, {4, 4}, {4, 3}, {3, 3}, {2, 3}, {1, 3}}, {{1, 6}, {2, 6}, {3, 6}, {4, 6}, {4, 7}, {3, 7}, {2, 7}, {1, 7}}},
	'h': {{{0, 2}, {1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, {2, 6}, {3, 6}, {4, 6}, {4, 7}, {3, 7}, {2, 7}, {1, 7}, {1, 8}, {1, 9}, {0, 9}, {0, 8}, {0, 7}, {0, 6}, {0, 5}, {0, 4}, {0, 3}}, {{4, 2}, {5, 2}, {5, 3}, {5, 4}, {5, 5}, {5, 6}, {4, 6}, {4, 5}, {4, 4}, {4, 3}}},
	'i': {{{1, 6}, {2, 6}, {2, 5}, {2, 4}, {2, 3}, {2, 2}, {3, 2}, {4, 2}, {4, 3}, {3, 3}, {3, 4}, {3, 5}, {3, 6}, {3, 7}, {2, 7}, {1, 7}}, {{2, 8}, {3, 8}, {3, 9}, {2, 9}}},
	'j': {{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {1, 1}, {0, 1}}, {{1, 6}, {2, 6}, {2, 5}, {2, 4}, {2, 3}, {2, 2}, {2, 1}, {3, 1}, {3, 2}, {3, 3}, {3, 4}, {3, 5}, {3, 6}, {3, 7}, {2, 7}, {1, 7}}, {{2, 8}, {3, 8}, {3, 9}, {2, 9}}},
	'k': {{{0, 2}, {1, 2}, {1, 3}, {1, 4}, {2, 4}, {3, 4}, {3, 5}, {2, 5}, {1, 5}, {1, 6}, {1, 7}, {1, 8}, {1, 9}, {0, 9}, {0, 8}, {0, 7}, {0, 6}, {0, 5}, {0, 4}, {0, 3}}, {{3, 3}, {4, 3}, {4, 4}, {3, 4}}, {{3, 5}, {4, 5}, {4, 6}, {3, 6}}, {{4, 2}, {5, 2}, {5, 3}, {4, 3}}, {{4, 6}, {5, 6}, {5, 7}, {4, 7}}},
	'l': {{{1, 8}, {2, 8}, {2, 7}, {2, 6}, {2, 5}, {2, 4}, {2, 3}, {2, 2}, {3, 2}, {4, 2}, {4, 3}, {3, 3}, {3, 4}, {3, 5}, {3, 6}, {3, 7}, {3, 8}, {3, 9}, {2, 9}, {1, 9}}},
	'm': {{{0, 2}, {1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, {2, 6}, {2, 5}, {2, 4}, {2, 3}, {2, 2}, {3, 2}, {3, 3}, {3, 4}, {3, 5}, {3, 6}, {4, 6}, {4, 7}, {3, 7}, {2, 7}, {1, 7}, {0, 7}, {0, 6}, {0, 5}, {0, 4}, {0, 3}}, {{4, 2}, {5, 2}, {5, 3}, {5, 4}, {5, 5}, {5, 6}, {4, 6}, {4, 5}, {4, 4}, {4, 3}}},
	'n': {{{0, 2}, {1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, {2, 6}, {3, 6}, {4, 6}, {4, 7}, {3, 7}, {2, 7}, {1, 7}, {0, 7}, {0, 6}, {0, 5}, {0, 4}, {0, 3}}, {{4, 2}, {5, 2}, {5, 3}, {5, 4}, {5, 5}, {5, 6}, {4, 6}, {4, 5}, {4, 4}, {4, 3}}},
	'o': {{{0, 3}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, {0, 6}, {0, 5}, {0, 4}}, {{1, 2}, {2, 2}, {3, 2}, {4, 2}, {4, 3}, {3, 3}, {2, 3}, {1, 3}}, {{1, 6}, {2, 6}, {3, 6}, {4, 6}, {4, 7}, {3, 7}, {2, 7}, {1, 7}}, {{4, 3}, {5, 3}, {5, 4}, {5, 5}, {5, 6}, {4, 6}, {4, 5}, {4, 4}}},
	'p': {{{0, 0}, {1, 0}, {1, 1}, {1, 2}, {2, 2}, {3, 2}, {4, 2}, {4, 3}, {3, 3}, {2, 3}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, {2, 6}, {3, 6}, {4, 6}, {4, 7}, {3, 7}, {2, 7}, {1, 7}, {0, 7}, {0, 6}, {0, 5}, {0, 4}, {0, 3}, {0, 2}, {0, 1}}, {{4, 3}, {5, 3}, {5, 4}, {5, 5}, {5, 6}, {4, 6}, {4, 5}, {4, 4}}},
	'q': {{{0, 3}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, {0, 6}, {0, 5}, {0, 4}}, {{1, 2}, {2, 2}, {3, 2}, {4, 2}, {4, 1}, {4, 0}, {5, 0}, {5, 1}, {5, 2}, {5, 3}, {5, 4}, {5, 5}, {5, 6}, {4, 6}, {4, 5}, {4, 4}, {4, 3}, {3, 3}, {2, 3}, {1, 3}}, {{1, 6}, {2, 6}, {3, 6}, {4, 6}, {4, 7}, {3, 7}, {2, 7}, {1, 7}}},
	'r': {{{0, 2}, {1, 2}, {1, 3}, {1, 4}, {1, 5}, {2, 5}, {3, 5}, {3, 6}, {2, 6}, {1, 6}, {1, 7}, {0, 7}, {0, 6}, {0, 5}, {0, 4}, {0, 3}}, {{3, 6}, {4, 6}, {5, 6}, {5, 7}, {4, 7}, {3, 7}}},
	's': {{{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 2}, {4, 3}, {3, 3}, {2, 3}, {1, 3}, {0, 3}}, {{0, 5}, {1, 5}, {1, 6}, {0, 6}}, {{1, 4}, {2, 4}, {3, 4}, {4, 4}, {4, 5}, {3, 5}, {2, 5}, {1, 5}}, {{1, 6}, {2, 6}, {3, 6}, {4, 6}, {5, 6}, {5, 7}, {4, 7}, {3, 7}, {2, 7}, {1, 7}}, {{4, 3}, {5, 3}, {5, 4}, {4, 4}}},
	't': {{{1, 6}, {2, 6}, {2, 5}, {2, 4}, {2, 3}, {3, 3}, {3, 4}, {3, 5}, {3, 6}, {4, 6}, {5, 6}, {5, 7}, {4, 7}, {3, 7}, {3, 8}, {3, 9}, {2, 9}, {2, 8}, {2, 7}, {1, 7}}, {{3, 2}, {4, 2}, {5, 2}, {5, 3}, {4, 3}, {3, 3}}},
	'u': {{{0, 3}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, {1, 7}, {0, 7}, {0, 6}, {0, 5}, {0, 4}}, {{1, 2}, {2, 2}, {3, 2}, {4, 2}, {4, 3}, {3, 3}, {2, 3}, {1, 3}}, {{4, 3}, {5, 3}, {5, 4}, {5, 5}, {5, 6}, {5, 7}, {4, 7}, {4, 6}, {4, 5}, {4, 4}}},
	'v': {{{0, 5}, {1, 5}, {1, 6}, {1, 7}, {0, 7}, {0, 6}}, {{1, 3}, {2, 3}, {2, 4}, {2, 5}, {1, 5}, {1, 4}}, {{2, 2}, {3, 2}, {3, 3}, {2, 3}}, {{3, 3}, {4, 3}, {4, 4}, {4, 5}, {3, 5}, {3, 4}}, {{4, 5}, {5, 5}, {5, 6}, {5, 7}, {4, 7}, {4, 6}}},
	'w': {{{0, 3}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, {1, 7}, {0, 7}, {0, 6}, {0, 5}, {0, 4}}, {{1, 2}, {2, 2}, {2, 3}, {1, 3}}, {{2, 3}, {3, 3}, {3, 4}, {3, 5}, {3, 6}, {2, 6}, {2, 5}, {2, 4}}, {{3, 2}, {4, 2}, {4, 3}, {3, 3}}, {{4, 3}, {5, 3}, {5, 4}, {5, 5}, {5, 6}, {5, 7}, {4, 7}, {4, 6}, {4, 5}, {4, 4}}},
	'x': {{{0, 2}, {1, 2}, {1, 3}, {0, 3}}, {{0, 6}, {1, 6}, {1, 7}, {0, 7}}, {{1, 3}, {2, 3}, {2, 4}, {1, 4}}, {{1, 5}, {2, 5}, {2, 6}, {1, 6}}, {{2, 4}, {3, 4}, {3, 5}, {2, 5}}, {{3, 3}, {4, 3}, {4, 4}, {3, 4}}, {{3, 5}, {4, 5}, {4, 6}, {3, 6}}, {{4, 2}, {5, 2}, {5, 3}, {4, 3}}, {{4, 6}, {5, 6}, {5, 7}, {4, 7}}},
	'y': {{{0, 3}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, {1, 7}, {0, 7}, {0, 6}, {0, 5}, {0, 4}}, {{1, 0}, {2, 0}, {3, 0}, {4, 0}, {4, 1}, {3, 1}, {2, 1}, {1, 1}}, {{1, 2}, {2, 2}, {3, 2}, {4, 2}, {4, 1}, {5, 1}, {5, 2}, {5, 3}, {5, 4}, {5, 5}, {5, 6}, {5, 7}, {4, 7}, {4, 6}, {4, 5}, {4, 4}, {4, 3}, {3, 3}, {2, 3}, {1, 3}}},
	'z': {{{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 2}, {5, 2}, {5, 3}, {4, 3}, {3, 3}, {2, 3}, {2, 4}, {1, 4}, {1, 3}, {0, 3}}, {{0, 6}, {1, 6}, {2, 6}, {3, 6}, {3, 5}, {4, 5}, {4, 6}, {5, 6}, {5, 7}, {4, 7}, {3, 7}, {2, 7}, {1, 7}, {0, 7}}, {{2, 4}, {3, 4}, {3, 5}, {2, 5}}},
	'{': {{{1, 5}, {2, 5}, {2, 4}, {2, 3}, {3, 3}, {3, 4}, {3, 5}, {3, 6}, {3, 7}, {3, 8}, {2, 8}, {2, 7}, {2, 6}, {1, 6}}, {{3, 2}, {4, 2}, {5, 2}, {5, 3}, {4, 3}, {3, 3}}, {{3, 8}, {4, 8}, {5, 8}, {5, 9}, {4, 9}, {3, 9}}},
	'|': {{{2, 2}, {3, 2}, {3, 3}, {3, 4}, {3, 5}, {3, 6}, {3, 7}, {3, 8}, {3, 9}, {2, 9}, {2, 8}, {2, 7}, {2, 6}, {2, 5}, {2, 4}, {2, 3}}},
	'}': {{{0, 2}, {1, 2}, {2, 2}, {2, 3}, {1, 3}, {0, 3}}, {{0, 8}, {1, 8}, {2, 8}, {2, 9}, {1, 9}, {0, 9}}, {{2, 3}, {3, 3}, {3, 4}, {3, 5}, {4, 5}, {4, 6}, {3, 6}, {3, 7}, {3, 8}, {2, 8}, {2, 7}, {2, 6}, {2, 5}, {2, 4}}},
	'~': {{{0, 6}, {1, 6}, {1, 7}, {1, 8}, {0, 8}, {0, 7}}, {{1, 8}, {2, 8}, {2, 9}, {1, 9}}, {{2, 7}, {3, 7}, {3, 8}, {2, 8}}, {{3, 6}, {4, 6}, {4, 7}, {3, 7}}, {{4, 7}, {5, 7}, {5, 8}, {5, 9}, {4, 9}, {4, 8}}},
}
