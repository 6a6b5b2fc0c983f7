// seehuhn.de/go/bdf - read and render glyph bitmap distribution format fonts
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package bdf

// Glyph represents a single glyph in a BDF font.
type Glyph struct {
	// Name is the human-readable glyph name from the STARTCHAR line.
	Name string

	// Encoding is the glyph's codepoint. A value of -1 marks a glyph
	// outside the font's encoding scheme; in this case AltEncoding
	// holds the font-specific code, if any.
	Encoding    int
	AltEncoding int

	Widths

	// BBX is the glyph bounding box. The offsets position the lower
	// left corner of the box relative to the glyph origin on the
	// baseline.
	BBX BoundingBox

	// Bitmap holds one row per bounding box line, top row first. Each
	// row occupies the low PaddedWidth bits of the value, with the
	// most significant of these bits corresponding to the leftmost
	// pixel.
	Bitmap []uint32
}

// PaddedWidth returns the bounding box width rounded up to the next
// multiple of 8. Bitmap rows in a BDF file always occupy whole bytes.
func (g *Glyph) PaddedWidth() int {
	return (g.BBX.Width + 7) / 8 * 8
}

// Pixel reports whether the glyph has ink at the given position,
// with x counted from the left edge of the bounding box and y from
// its top row. Positions outside the bounding box are blank.
func (g *Glyph) Pixel(x, y int) bool {
	w := g.PaddedWidth()
	if x < 0 || x >= w || y < 0 || y >= len(g.Bitmap) {
		return false
	}
	return g.Bitmap[y]>>uint(w-1-x)&1 != 0
}

// IsBlank reports whether the glyph has no visible pixels.
func (g *Glyph) IsBlank() bool {
	for _, row := range g.Bitmap {
		if row != 0 {
			return false
		}
	}
	return true
}
