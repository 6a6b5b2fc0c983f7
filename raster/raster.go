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

// Package raster renders text strings into monochrome bitmaps using
// the glyphs of a BDF font.
package raster

import (
	"strings"

	"seehuhn.de/go/bdf"
)

// A Bitmap is a monochrome image. Pixels are stored in row-major
// order, top row first; true means ink.
type Bitmap struct {
	Width  int
	Height int
	Pix    []bool
}

// New allocates a blank bitmap of the given size.
func New(width, height int) *Bitmap {
	return &Bitmap{
		Width:  width,
		Height: height,
		Pix:    make([]bool, width*height),
	}
}

// At reports whether the pixel at (x, y) is inked. Positions outside
// the bitmap are blank.
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return false
	}
	return b.Pix[y*b.Width+x]
}

// Set inks the pixel at (x, y). Positions outside the bitmap are
// ignored.
func (b *Bitmap) Set(x, y int) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	b.Pix[y*b.Width+x] = true
}

// String returns the bitmap as text, one line per pixel row, using '@'
// for inked and '-' for blank pixels.
func (b *Bitmap) String() string {
	var sb strings.Builder
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.Pix[y*b.Width+x] {
				sb.WriteByte('@')
			} else {
				sb.WriteByte('-')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Render draws the text into a new bitmap.
//
// The bitmap is as wide as the sum of the glyphs' advance widths and
// as high as the font bounding box, with each glyph positioned on the
// common baseline. Text is indexed by codepoint; a codepoint without a
// glyph gives a [LookupError]. If inconsistent font metrics place
// glyph pixels outside the bitmap, the pixels are clipped; use
// [RenderStrict] to detect this instead. Advance widths can be
// negative; if they sum to less than zero the bitmap is empty.
func Render(f *bdf.Font, text string) (*Bitmap, error) {
	return render(f, text, false)
}

// RenderStrict is like [Render], except that a glyph pixel outside the
// bitmap is an [OutOfBoundsError] instead of being clipped.
func RenderStrict(f *bdf.Font, text string) (*Bitmap, error) {
	return render(f, text, true)
}

func render(f *bdf.Font, text string, strict bool) (*Bitmap, error) {
	var glyphs []*bdf.Glyph
	width := 0
	for _, r := range text {
		g, ok := f.Glyphs[r]
		if !ok {
			return nil, &LookupError{CodePoint: r}
		}
		glyphs = append(glyphs, g)
		width += g.DWidth.X
	}
	if width < 0 {
		// negative advance widths can make the total negative
		width = 0
	}

	bm := New(width, f.BBox.Height)
	pen := 0
	for _, g := range glyphs {
		// Align the top of the glyph bounding box with the font
		// bounding box, both measured from the baseline.
		yTop := f.BBox.Height + f.BBox.YOffset - g.BBX.Height - g.BBX.YOffset
		for y := 0; y < g.BBX.Height; y++ {
			for x := 0; x < g.PaddedWidth(); x++ {
				if !g.Pixel(x, y) {
					continue
				}
				dx := pen + x + g.BBX.XOffset
				dy := y + yTop
				if dx < 0 || dx >= bm.Width || dy < 0 || dy >= bm.Height {
					if strict {
						return nil, &OutOfBoundsError{Glyph: g.Name, X: dx, Y: dy}
					}
					continue
				}
				bm.Pix[dy*bm.Width+dx] = true
			}
		}
		pen += g.DWidth.X
	}
	return bm, nil
}
