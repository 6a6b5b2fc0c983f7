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
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/bdf"
)

// testFont has a two-row font bounding box on the baseline. Glyph "x"
// inks (0,0) and (1,1), "y" is the same shape with a narrower advance,
// "z" is wider than its advance width.
const testFont = `STARTFONT 2.1
FONT test
SIZE 8 75 75
FONTBOUNDINGBOX 8 2 0 0
CHARS 3
STARTCHAR x
ENCODING 120
DWIDTH 8 0
BBX 8 2 0 0
BITMAP
80
40
ENDCHAR
STARTCHAR y
ENCODING 121
DWIDTH 6 0
BBX 6 2 0 0
BITMAP
80
40
ENDCHAR
STARTCHAR z
ENCODING 122
DWIDTH 4 0
BBX 8 2 0 0
BITMAP
FF
FF
ENDCHAR
ENDFONT
`

func mustFont(t *testing.T, text string) *bdf.Font {
	t.Helper()
	font, err := bdf.Read(strings.NewReader(text))
	if err != nil {
		t.Fatal(err)
	}
	return font
}

func TestRenderBitOrder(t *testing.T) {
	font := mustFont(t, testFont)

	bm, err := Render(font, "x")
	if err != nil {
		t.Fatal(err)
	}
	if bm.Width != 8 || bm.Height != 2 {
		t.Fatalf("expected 8x2 bitmap, got %dx%d", bm.Width, bm.Height)
	}
	for y := 0; y < bm.Height; y++ {
		for x := 0; x < bm.Width; x++ {
			want := x == 0 && y == 0 || x == 1 && y == 1
			if got := bm.At(x, y); got != want {
				t.Errorf("pixel (%d, %d) = %t, want %t", x, y, got, want)
			}
		}
	}
}

func TestRenderAdvance(t *testing.T) {
	font := mustFont(t, testFont)

	bm, err := Render(font, "yy")
	if err != nil {
		t.Fatal(err)
	}
	if bm.Width != 12 || bm.Height != 2 {
		t.Errorf("expected 12x2 bitmap, got %dx%d", bm.Width, bm.Height)
	}
	// second glyph starts at the pen position, not at the padded width
	if !bm.At(6, 0) || !bm.At(7, 1) {
		t.Error("second glyph not at advance position")
	}
}

func TestRenderLookup(t *testing.T) {
	font := mustFont(t, testFont)

	bm, err := Render(font, "xq")
	if bm != nil {
		t.Error("got a bitmap despite missing glyph")
	}
	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("expected *LookupError, got %v", err)
	}
	if lookupErr.CodePoint != 'q' {
		t.Errorf("expected codepoint %d in error, got %d", 'q', lookupErr.CodePoint)
	}
}

func TestRenderIdempotent(t *testing.T) {
	font := mustFont(t, testFont)

	bm1, err := Render(font, "xyx")
	if err != nil {
		t.Fatal(err)
	}
	bm2, err := Render(font, "xyx")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(bm1, bm2); d != "" {
		t.Errorf("render is not deterministic (-first +second):\n%s", d)
	}
}

func TestRenderBounds(t *testing.T) {
	font := mustFont(t, testFont)

	// "z" paints 8 columns into a 4 pixel wide bitmap
	bm, err := Render(font, "z")
	if err != nil {
		t.Fatal(err)
	}
	if bm.Width != 4 {
		t.Fatalf("expected width 4, got %d", bm.Width)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if !bm.At(x, y) {
				t.Errorf("expected ink at (%d, %d)", x, y)
			}
		}
	}

	_, err = RenderStrict(font, "z")
	var boundsErr *OutOfBoundsError
	if !errors.As(err, &boundsErr) {
		t.Fatalf("expected *OutOfBoundsError, got %v", err)
	}
	if boundsErr.Glyph != "z" {
		t.Errorf("expected glyph z in error, got %q", boundsErr.Glyph)
	}
}

func TestRenderNegativeAdvance(t *testing.T) {
	const negFont = `STARTFONT 2.1
FONT test
SIZE 8 75 75
FONTBOUNDINGBOX 8 2 0 0
CHARS 1
STARTCHAR n
ENCODING 110
DWIDTH -8 0
BBX 8 2 0 0
BITMAP
80
40
ENDCHAR
ENDFONT
`
	font := mustFont(t, negFont)

	bm, err := Render(font, "n")
	if err != nil {
		t.Fatal(err)
	}
	if bm.Width != 0 || bm.Height != 2 {
		t.Errorf("expected a 0x2 bitmap, got %dx%d", bm.Width, bm.Height)
	}

	_, err = RenderStrict(font, "n")
	var boundsErr *OutOfBoundsError
	if !errors.As(err, &boundsErr) {
		t.Fatalf("expected *OutOfBoundsError, got %v", err)
	}
}

func TestBitmapString(t *testing.T) {
	font := mustFont(t, testFont)

	bm, err := Render(font, "x")
	if err != nil {
		t.Fatal(err)
	}
	expected := "@-------\n-@------\n"
	if got := bm.String(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestBoundString(t *testing.T) {
	font := mustFont(t, testFont)

	bounds, advance, err := BoundString(font, "xy")
	if err != nil {
		t.Fatal(err)
	}
	if advance != 14 {
		t.Errorf("expected advance 14, got %d", advance)
	}
	if bounds.LLx != 0 || bounds.LLy != 0 || bounds.URx != 14 || bounds.URy != 2 {
		t.Errorf("unexpected bounds %v", bounds)
	}

	if _, _, err := BoundString(font, "q"); err == nil {
		t.Error("expected lookup error")
	}
}
