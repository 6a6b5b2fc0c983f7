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

import "fmt"

// FormatError indicates a problem with the BDF data. Line is the
// 1-based number of the offending line in the input.
type FormatError struct {
	Line   int
	Reason string
}

func (err *FormatError) Error() string {
	return fmt.Sprintf("bdf: line %d: %s", err.Line, err.Reason)
}
