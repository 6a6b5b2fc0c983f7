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
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteReadCycle(t *testing.T) {
	font, err := Read(strings.NewReader(testFont))
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	err = font.Write(buf)
	if err != nil {
		t.Fatal(err)
	}

	font2, err := Read(buf)
	if err != nil {
		t.Fatal(err)
	}

	if d := cmp.Diff(font, font2); d != "" {
		t.Fatalf("mismatch (-want +got):\n%s", d)
	}
}

func FuzzReadBDF(f *testing.F) {
	f.Add([]byte(testFont))

	f.Fuzz(func(t *testing.T, data []byte) {
		font, err := Read(bytes.NewReader(data))
		if err != nil {
			return
		}

		buf := &bytes.Buffer{}
		err = font.Write(buf)
		if err != nil {
			t.Fatal(err)
		}

		font2, err := Read(buf)
		if err != nil {
			t.Fatal(err)
		}

		if !reflect.DeepEqual(font, font2) {
			t.Fatalf("mismatch: %s", cmp.Diff(font, font2))
		}
	})
}
