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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Read reads a BDF font file.
//
// The parse is all-or-nothing: any syntax error aborts reading and is
// reported as a [FormatError] carrying the offending line number.
func Read(fd io.Reader) (*Font, error) {
	var lines []string
	scanner := bufio.NewScanner(fd)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	p := &parser{lines: lines}
	return p.readFont()
}

// parser is the cursor over the input lines. Nested records advance
// pos past their terminator, so after a STARTPROPERTIES or CHARS block
// pos points at the line following ENDPROPERTIES or the last ENDCHAR.
type parser struct {
	lines []string
	pos   int
}

func (p *parser) readFont() (*Font, error) {
	font := &Font{
		Glyphs: make(map[rune]*Glyph),
	}

	for p.pos < len(p.lines) {
		lineno := p.pos + 1
		keyword, value := splitLine(p.lines[p.pos])
		p.pos++

		switch keyword {
		case "":
			// blank line
		case "STARTFONT":
			font.Version = value
		case "COMMENT":
			font.Comment = value
		case "CONTENTVERSION":
			vv, err := parseInts(lineno, keyword, value, 1)
			if err != nil {
				return nil, err
			}
			font.ContentVersion = vv[0]
		case "FONT":
			font.Name = value
		case "SIZE":
			vv, err := parseInts(lineno, keyword, value, 3)
			if err != nil {
				return nil, err
			}
			font.Size = Size{PointSize: vv[0], Xres: vv[1], Yres: vv[2]}
		case "FONTBOUNDINGBOX":
			bbx, err := parseBBox(lineno, keyword, value)
			if err != nil {
				return nil, err
			}
			font.BBox = bbx
		case "METRICSSET", "METRICSET":
			vv, err := parseInts(lineno, keyword, value, 1)
			if err != nil {
				return nil, err
			}
			if vv[0] < 0 || vv[0] > 2 {
				return nil, &FormatError{
					Line:   lineno,
					Reason: fmt.Sprintf("METRICSSET must be 0, 1 or 2, got %d", vv[0]),
				}
			}
			font.MetricsSet = vv[0]
		case "SWIDTH", "DWIDTH", "SWIDTH1", "DWIDTH1", "VVECTOR":
			err := parseWidth(&font.Defaults, lineno, keyword, value)
			if err != nil {
				return nil, err
			}
		case "STARTPROPERTIES":
			err := p.readProperties(font, lineno, value)
			if err != nil {
				return nil, err
			}
		case "CHARS":
			err := p.readGlyphs(font, lineno, value)
			if err != nil {
				return nil, err
			}
		case "ENDFONT":
			// any remaining lines are ignored
			return font, nil
		default:
			return nil, &FormatError{
				Line:   lineno,
				Reason: fmt.Sprintf("unknown keyword %q", keyword),
			}
		}
	}

	return nil, &FormatError{
		Line:   len(p.lines),
		Reason: "missing ENDFONT",
	}
}

// readProperties reads the body of a STARTPROPERTIES block. The
// declared number of property lines must be followed by ENDPROPERTIES.
func (p *parser) readProperties(font *Font, lineno int, value string) error {
	vv, err := parseInts(lineno, "STARTPROPERTIES", value, 1)
	if err != nil {
		return err
	}
	n := vv[0]
	if n < 0 {
		return &FormatError{
			Line:   lineno,
			Reason: fmt.Sprintf("invalid property count %d", n),
		}
	}

	for i := 0; i < n; i++ {
		if p.pos >= len(p.lines) {
			return &FormatError{
				Line:   len(p.lines),
				Reason: "missing ENDPROPERTIES",
			}
		}
		name, val := splitLine(p.lines[p.pos])
		p.pos++
		font.Properties = append(font.Properties, Property{Name: name, Value: val})
	}

	if p.pos >= len(p.lines) || strings.TrimSpace(p.lines[p.pos]) != "ENDPROPERTIES" {
		return &FormatError{
			Line:   p.pos + 1,
			Reason: "missing ENDPROPERTIES",
		}
	}
	p.pos++
	return nil
}

// readGlyphs reads the declared number of glyph blocks after a CHARS
// line.
func (p *parser) readGlyphs(font *Font, lineno int, value string) error {
	vv, err := parseInts(lineno, "CHARS", value, 1)
	if err != nil {
		return err
	}
	n := vv[0]
	if n < 0 {
		return &FormatError{
			Line:   lineno,
			Reason: fmt.Sprintf("invalid glyph count %d", n),
		}
	}

	for i := 0; i < n; i++ {
		g, err := p.readGlyph()
		if err != nil {
			return err
		}
		font.Glyphs[rune(g.Encoding)] = g
	}
	return nil
}

// readGlyph reads one glyph block, from its STARTCHAR line up to and
// including the ENDCHAR line. Keywords the parser does not know are
// skipped.
func (p *parser) readGlyph() (*Glyph, error) {
	g := &Glyph{}

	for p.pos < len(p.lines) {
		lineno := p.pos + 1
		keyword, value := splitLine(p.lines[p.pos])
		p.pos++

		switch keyword {
		case "STARTCHAR":
			g.Name = value
		case "ENCODING":
			ff := strings.Fields(value)
			if len(ff) < 1 {
				return nil, &FormatError{
					Line:   lineno,
					Reason: "ENCODING needs at least 1 argument",
				}
			}
			code, err := strconv.Atoi(ff[0])
			if err != nil {
				return nil, &FormatError{
					Line:   lineno,
					Reason: fmt.Sprintf("invalid ENCODING argument %q", ff[0]),
				}
			}
			if code < -1 || code > utf8.MaxRune {
				return nil, &FormatError{
					Line:   lineno,
					Reason: fmt.Sprintf("ENCODING %d out of range", code),
				}
			}
			g.Encoding = code
			if code == -1 && len(ff) >= 2 {
				alt, err := strconv.Atoi(ff[1])
				if err != nil {
					return nil, &FormatError{
						Line:   lineno,
						Reason: fmt.Sprintf("invalid ENCODING argument %q", ff[1]),
					}
				}
				g.AltEncoding = alt
			}
		case "SWIDTH", "DWIDTH", "SWIDTH1", "DWIDTH1", "VVECTOR":
			err := parseWidth(&g.Widths, lineno, keyword, value)
			if err != nil {
				return nil, err
			}
		case "BBX":
			bbx, err := parseBBox(lineno, keyword, value)
			if err != nil {
				return nil, err
			}
			g.BBX = bbx
		case "BITMAP":
			err := p.readBitmap(g)
			if err != nil {
				return nil, err
			}
			return g, nil
		case "ENDCHAR":
			if g.BBX.Height > 0 && len(g.Bitmap) == 0 {
				return nil, &FormatError{
					Line:   lineno,
					Reason: "missing BITMAP",
				}
			}
			return g, nil
		default:
			// not our business, skip
		}
	}

	return nil, &FormatError{
		Line:   len(p.lines),
		Reason: "missing ENDCHAR",
	}
}

// readBitmap reads the hexadecimal bitmap rows of a glyph. The number
// of rows is given by the bounding box height, and the row after the
// last one must be ENDCHAR.
func (p *parser) readBitmap(g *Glyph) error {
	for i := 0; i < g.BBX.Height; i++ {
		if p.pos >= len(p.lines) {
			return &FormatError{
				Line:   len(p.lines),
				Reason: "unexpected end of bitmap data",
			}
		}
		lineno := p.pos + 1
		row := strings.TrimSpace(p.lines[p.pos])
		p.pos++

		val, err := strconv.ParseUint(row, 16, 32)
		if err != nil {
			return &FormatError{
				Line:   lineno,
				Reason: fmt.Sprintf("invalid bitmap row %q", row),
			}
		}
		g.Bitmap = append(g.Bitmap, uint32(val))
	}

	if p.pos >= len(p.lines) || strings.TrimSpace(p.lines[p.pos]) != "ENDCHAR" {
		return &FormatError{
			Line:   p.pos + 1,
			Reason: "missing ENDCHAR",
		}
	}
	p.pos++
	return nil
}

// splitLine splits a line into its keyword and the remaining value.
func splitLine(line string) (keyword, value string) {
	line = strings.TrimSpace(line)
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i+1:])
}

func parseInts(lineno int, keyword, value string, n int) ([]int, error) {
	ff := strings.Fields(value)
	if len(ff) < n {
		return nil, &FormatError{
			Line:   lineno,
			Reason: fmt.Sprintf("%s needs %d arguments, got %d", keyword, n, len(ff)),
		}
	}
	res := make([]int, n)
	for i := 0; i < n; i++ {
		x, err := strconv.Atoi(ff[i])
		if err != nil {
			return nil, &FormatError{
				Line:   lineno,
				Reason: fmt.Sprintf("invalid %s argument %q", keyword, ff[i]),
			}
		}
		res[i] = x
	}
	return res, nil
}

func parseBBox(lineno int, keyword, value string) (BoundingBox, error) {
	vv, err := parseInts(lineno, keyword, value, 4)
	if err != nil {
		return BoundingBox{}, err
	}
	if vv[0] < 0 || vv[1] < 0 {
		return BoundingBox{}, &FormatError{
			Line:   lineno,
			Reason: fmt.Sprintf("%s dimensions must not be negative", keyword),
		}
	}
	return BoundingBox{Width: vv[0], Height: vv[1], XOffset: vv[2], YOffset: vv[3]}, nil
}

func parseWidth(w *Widths, lineno int, keyword, value string) error {
	vv, err := parseInts(lineno, keyword, value, 2)
	if err != nil {
		return err
	}
	v := Vector{X: vv[0], Y: vv[1]}
	switch keyword {
	case "SWIDTH":
		w.SWidth = v
	case "DWIDTH":
		w.DWidth = v
	case "SWIDTH1":
		w.SWidth1 = v
	case "DWIDTH1":
		w.DWidth1 = v
	case "VVECTOR":
		w.VVector = v
	}
	return nil
}
