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

import "fmt"

// LookupError indicates that a codepoint in the text has no glyph in
// the font.
type LookupError struct {
	CodePoint rune
}

func (err *LookupError) Error() string {
	return fmt.Sprintf("raster: no glyph for codepoint %d", err.CodePoint)
}

// OutOfBoundsError indicates that the metrics of a glyph place ink
// outside the output bitmap. X and Y give the offending position.
type OutOfBoundsError struct {
	Glyph string
	X, Y  int
}

func (err *OutOfBoundsError) Error() string {
	return fmt.Sprintf("raster: glyph %q out of bounds at (%d, %d)",
		err.Glyph, err.X, err.Y)
}
