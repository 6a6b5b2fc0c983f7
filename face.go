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

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// NewFace returns a [font.Face] for drawing text in this font with the
// standard image and image/draw packages. Glyph bitmaps are used
// pixel-exact, without scaling or anti-aliasing. Runes without a glyph
// fall back to the glyph named by the DEFAULT_CHAR property.
//
// The face is read-only and can be used concurrently.
func (f *Font) NewFace() font.Face {
	return &face{font: f}
}

type face struct {
	font *Font
}

func (f *face) Close() error {
	return nil
}

func (f *face) lookup(r rune) (*Glyph, bool) {
	if g, ok := f.font.GlyphForRune(r); ok {
		return g, true
	}
	if g := f.font.DefaultGlyph(); g != nil {
		return g, true
	}
	return nil, false
}

func (f *face) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	g, ok := f.lookup(r)
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}

	// dot is on the baseline; the glyph bounding box is anchored
	// relative to it, with image coordinates growing downwards.
	x := dot.X.Round()
	y := dot.Y.Round()
	dr := image.Rect(
		x+g.BBX.XOffset,
		y-g.BBX.Height-g.BBX.YOffset,
		x+g.BBX.XOffset+g.BBX.Width,
		y-g.BBX.YOffset,
	)
	return dr, &glyphMask{g}, image.Point{}, fixed.I(g.DWidth.X), true
}

func (f *face) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	g, ok := f.lookup(r)
	if !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	bounds := fixed.R(
		g.BBX.XOffset,
		-g.BBX.Height-g.BBX.YOffset,
		g.BBX.XOffset+g.BBX.Width,
		-g.BBX.YOffset,
	)
	return bounds, fixed.I(g.DWidth.X), true
}

func (f *face) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	g, ok := f.lookup(r)
	if !ok {
		return 0, false
	}
	return fixed.I(g.DWidth.X), true
}

// Kern implements [font.Face]. BDF fonts have no kerning information.
func (f *face) Kern(r0, r1 rune) fixed.Int26_6 {
	return 0
}

func (f *face) Metrics() font.Metrics {
	m := font.Metrics{
		Height:     fixed.I(f.font.BBox.Height),
		Ascent:     fixed.I(f.font.Ascent()),
		Descent:    fixed.I(f.font.Descent()),
		CaretSlope: image.Point{X: 0, Y: 1},
	}
	if x, ok := f.font.propertyInt("X_HEIGHT"); ok {
		m.XHeight = fixed.I(x)
	}
	if x, ok := f.font.propertyInt("CAP_HEIGHT"); ok {
		m.CapHeight = fixed.I(x)
	}
	return m
}

// glyphMask presents a glyph bitmap as an opaque/transparent mask for
// use with image/draw.
type glyphMask struct {
	g *Glyph
}

func (m *glyphMask) ColorModel() color.Model {
	return color.Alpha16Model
}

func (m *glyphMask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.g.BBX.Width, m.g.BBX.Height)
}

func (m *glyphMask) At(x, y int) color.Color {
	if m.g.Pixel(x, y) {
		return color.Opaque
	}
	return color.Transparent
}
