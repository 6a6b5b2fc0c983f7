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
	"fmt"
	"io"
)

// Write writes the font to the given writer in BDF format.
//
// Records are written in canonical order, so writing a font read with
// [Read] and reading the output again gives back the same font.
func (f *Font) Write(w io.Writer) error {
	write := func(format string, a ...interface{}) error {
		_, err := fmt.Fprintf(w, format+"\n", a...)
		return err
	}

	// Write header
	if err := write("STARTFONT %s", f.Version); err != nil {
		return err
	}
	if f.Comment != "" {
		if err := write("COMMENT %s", f.Comment); err != nil {
			return err
		}
	}
	if f.ContentVersion != 0 {
		if err := write("CONTENTVERSION %d", f.ContentVersion); err != nil {
			return err
		}
	}
	if err := write("FONT %s", f.Name); err != nil {
		return err
	}
	if err := write("SIZE %d %d %d", f.Size.PointSize, f.Size.Xres, f.Size.Yres); err != nil {
		return err
	}
	bbx := f.BBox
	if err := write("FONTBOUNDINGBOX %d %d %d %d",
		bbx.Width, bbx.Height, bbx.XOffset, bbx.YOffset); err != nil {
		return err
	}
	if f.MetricsSet != 0 {
		if err := write("METRICSSET %d", f.MetricsSet); err != nil {
			return err
		}
	}
	if err := writeWidths(write, &f.Defaults); err != nil {
		return err
	}

	// Write properties
	if len(f.Properties) > 0 {
		if err := write("STARTPROPERTIES %d", len(f.Properties)); err != nil {
			return err
		}
		for _, prop := range f.Properties {
			if err := write("%s %s", prop.Name, prop.Value); err != nil {
				return err
			}
		}
		if err := write("ENDPROPERTIES"); err != nil {
			return err
		}
	}

	// Write glyphs
	if err := write("CHARS %d", len(f.Glyphs)); err != nil {
		return err
	}
	for _, code := range f.GlyphList() {
		g := f.Glyphs[code]
		if err := write("STARTCHAR %s", g.Name); err != nil {
			return err
		}
		if g.Encoding == -1 {
			if err := write("ENCODING -1 %d", g.AltEncoding); err != nil {
				return err
			}
		} else {
			if err := write("ENCODING %d", g.Encoding); err != nil {
				return err
			}
		}
		if err := writeWidths(write, &g.Widths); err != nil {
			return err
		}
		if err := write("BBX %d %d %d %d",
			g.BBX.Width, g.BBX.Height, g.BBX.XOffset, g.BBX.YOffset); err != nil {
			return err
		}
		if err := write("BITMAP"); err != nil {
			return err
		}
		digits := g.PaddedWidth() / 4
		for _, row := range g.Bitmap {
			if err := write("%0*X", digits, row); err != nil {
				return err
			}
		}
		if err := write("ENDCHAR"); err != nil {
			return err
		}
	}

	// Write footer
	return write("ENDFONT")
}

func writeWidths(write func(string, ...interface{}) error, ww *Widths) error {
	if v := ww.SWidth; v != (Vector{}) {
		if err := write("SWIDTH %d %d", v.X, v.Y); err != nil {
			return err
		}
	}
	if v := ww.DWidth; v != (Vector{}) {
		if err := write("DWIDTH %d %d", v.X, v.Y); err != nil {
			return err
		}
	}
	if v := ww.SWidth1; v != (Vector{}) {
		if err := write("SWIDTH1 %d %d", v.X, v.Y); err != nil {
			return err
		}
	}
	if v := ww.DWidth1; v != (Vector{}) {
		if err := write("DWIDTH1 %d %d", v.X, v.Y); err != nil {
			return err
		}
	}
	if v := ww.VVector; v != (Vector{}) {
		if err := write("VVECTOR %d %d", v.X, v.Y); err != nil {
			return err
		}
	}
	return nil
}
