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
	"strings"

	"golang.org/x/text/encoding/charmap"
)

var iso8859 = map[string]*charmap.Charmap{
	"1":  charmap.ISO8859_1,
	"2":  charmap.ISO8859_2,
	"3":  charmap.ISO8859_3,
	"4":  charmap.ISO8859_4,
	"5":  charmap.ISO8859_5,
	"6":  charmap.ISO8859_6,
	"7":  charmap.ISO8859_7,
	"8":  charmap.ISO8859_8,
	"9":  charmap.ISO8859_9,
	"10": charmap.ISO8859_10,
	"13": charmap.ISO8859_13,
	"14": charmap.ISO8859_14,
	"15": charmap.ISO8859_15,
	"16": charmap.ISO8859_16,
}

// charsetMap returns the character map needed to translate runes into
// the font's codepoints, or nil if the codepoints can be used as runes
// directly. The map is chosen using the CHARSET_REGISTRY and
// CHARSET_ENCODING properties of the font.
func (f *Font) charsetMap() *charmap.Charmap {
	registry, ok := f.Property("CHARSET_REGISTRY")
	if !ok {
		return nil
	}
	registry = strings.Trim(registry, `"`)
	enc, _ := f.Property("CHARSET_ENCODING")
	enc = strings.Trim(enc, `"`)

	switch strings.ToUpper(registry) {
	case "ISO8859":
		return iso8859[enc]
	case "KOI8":
		switch strings.ToUpper(enc) {
		case "R":
			return charmap.KOI8R
		case "U":
			return charmap.KOI8U
		}
	}
	return nil
}

// GlyphForRune returns the glyph used to display the given rune.
//
// For fonts encoded in a known single-byte charset the rune is
// translated through the corresponding character map; for ISO10646
// fonts, and fonts with an unknown registry, the rune is used as the
// codepoint directly.
func (f *Font) GlyphForRune(r rune) (*Glyph, bool) {
	if cm := f.charsetMap(); cm != nil {
		b, ok := cm.EncodeRune(r)
		if !ok {
			return nil, false
		}
		g, ok := f.Glyphs[rune(b)]
		return g, ok
	}
	g, ok := f.Glyphs[r]
	return g, ok
}
