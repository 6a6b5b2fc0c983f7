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

// Package bdf reads fonts in the Glyph Bitmap Distribution Format, the
// text-based bitmap font format used by the X Window System.
package bdf

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// Font contains the information from a BDF file.
type Font struct {
	// Version is the format version from the STARTFONT line,
	// usually "2.1" or "2.2".
	Version string

	// Comment is the text of the last COMMENT line in the file.
	Comment string

	// ContentVersion is the font-specific revision number, if any.
	ContentVersion int

	// Name is the PostScript or XLFD name of the font.
	Name string

	Size Size
	BBox BoundingBox

	// MetricsSet indicates which writing directions the font carries
	// metrics for: 0 for horizontal, 1 for vertical, 2 for both.
	MetricsSet int

	// Defaults holds the font-level width vectors. Glyphs do not
	// inherit these; a glyph without an explicit SWIDTH or DWIDTH has
	// zero-valued fields.
	Defaults Widths

	// Properties lists the STARTPROPERTIES block in file order.
	// The values are not interpreted.
	Properties []Property

	// Glyphs maps each glyph's codepoint to the glyph. If the file
	// assigns the same codepoint twice, the later glyph wins.
	// Glyphs with no standard encoding are stored under the key -1.
	Glyphs map[rune]*Glyph
}

// Size is the SIZE record of a font: the point size of the glyphs and
// the resolution of the device they were designed for.
type Size struct {
	PointSize int
	Xres      int // horizontal resolution, dots per inch
	Yres      int // vertical resolution, dots per inch
}

// BoundingBox describes a pixel rectangle together with the offset of
// its lower left corner from the origin.
type BoundingBox struct {
	Width   int
	Height  int
	XOffset int
	YOffset int
}

// Vector is an (x, y) pair of integer metrics.
type Vector struct {
	X int
	Y int
}

// Widths holds the width vectors which can be given both at font level
// and for individual glyphs.
type Widths struct {
	SWidth  Vector // scalable width, writing direction 0
	DWidth  Vector // device width, writing direction 0
	SWidth1 Vector // scalable width, writing direction 1
	DWidth1 Vector // device width, writing direction 1
	VVector Vector // offset from origin 0 to origin 1
}

// Property is one name/value pair from the STARTPROPERTIES block.
type Property struct {
	Name  string
	Value string
}

// GlyphList returns the codepoints of all glyphs in the font, in
// increasing order.
func (f *Font) GlyphList() []rune {
	cc := maps.Keys(f.Glyphs)
	sort.Slice(cc, func(i, j int) bool {
		return cc[i] < cc[j]
	})
	return cc
}

// Property returns the value of the named property, and whether the
// property is present.
func (f *Font) Property(name string) (string, bool) {
	for _, prop := range f.Properties {
		if prop.Name == name {
			return prop.Value, true
		}
	}
	return "", false
}

// propertyInt returns the named property as an integer. Quotes around
// the value are ignored, since property values are often quoted.
func (f *Font) propertyInt(name string) (int, bool) {
	val, ok := f.Property(name)
	if !ok {
		return 0, false
	}
	x, err := strconv.Atoi(strings.Trim(val, `"`))
	if err != nil {
		return 0, false
	}
	return x, true
}

// Ascent returns the height of the font above the baseline, in pixels.
// This is the FONT_ASCENT property if present, and otherwise the part
// of the font bounding box above the baseline.
func (f *Font) Ascent() int {
	if x, ok := f.propertyInt("FONT_ASCENT"); ok {
		return x
	}
	return f.BBox.Height + f.BBox.YOffset
}

// Descent returns the depth of the font below the baseline, in pixels.
// This is the FONT_DESCENT property if present, and otherwise the part
// of the font bounding box below the baseline.
func (f *Font) Descent() int {
	if x, ok := f.propertyInt("FONT_DESCENT"); ok {
		return x
	}
	return -f.BBox.YOffset
}

// DefaultGlyph returns the glyph named by the DEFAULT_CHAR property,
// or nil if the font does not specify one.
func (f *Font) DefaultGlyph() *Glyph {
	if code, ok := f.propertyInt("DEFAULT_CHAR"); ok {
		return f.Glyphs[rune(code)]
	}
	return nil
}
