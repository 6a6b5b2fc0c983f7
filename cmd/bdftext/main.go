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

// Bdftext renders a text string using a BDF font read from stdin and
// prints the resulting bitmap to stdout, '@' for ink and '-' for
// background.
//
// Usage:
//
//	bdftext "Hello" <font.bdf
package main

import (
	"fmt"
	"log"
	"os"

	"seehuhn.de/go/bdf"
	"seehuhn.de/go/bdf/raster"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("bdftext: ")

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: bdftext <text> <font.bdf")
		os.Exit(2)
	}

	font, err := bdf.Read(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}

	bitmap, err := raster.Render(font, os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(bitmap)
}
