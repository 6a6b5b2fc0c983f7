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

package raster

import (
	"seehuhn.de/go/bdf"
	"seehuhn.de/go/geom/rect"
)

// BoundString measures the text without rendering it. The returned
// rectangle is the union of the glyph bounding boxes, in pixels
// relative to the start of the baseline with y pointing up; glyphs
// with an empty bounding box are skipped. The second return value is
// the total advance width.
func BoundString(f *bdf.Font, text string) (rect.Rect, int, error) {
	var bounds rect.Rect
	advance := 0
	first := true
	for _, r := range text {
		g, ok := f.Glyphs[r]
		if !ok {
			return rect.Rect{}, 0, &LookupError{CodePoint: r}
		}
		if g.BBX.Width > 0 && g.BBX.Height > 0 {
			b := rect.Rect{
				LLx: float64(advance + g.BBX.XOffset),
				LLy: float64(g.BBX.YOffset),
				URx: float64(advance + g.BBX.XOffset + g.BBX.Width),
				URy: float64(g.BBX.YOffset + g.BBX.Height),
			}
			if first {
				bounds = b
				first = false
			} else {
				bounds.Extend(b)
			}
		}
		advance += g.DWidth.X
	}
	return bounds, advance, nil
}
