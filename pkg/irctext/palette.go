// irctext - an IRC text formatting library.
// Copyright (C) 2026 The irctext authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package irctext

// Color indexes of the standard IRC color set.
const (
	White = iota
	Black
	Blue
	Green
	Red
	Brown
	Purple
	Orange
	Yellow
	LightGreen
	Cyan
	LightCyan
	LightBlue
	Pink
	Gray
	LightGray
)

// defaultColors holds the CSS names the standard indexes resolve to when the
// caller has not overridden them.
var defaultColors = [16]string{
	"white",     // 00
	"black",     // 01
	"navy",      // 02 blue
	"green",     // 03
	"red",       // 04
	"maroon",    // 05 brown
	"purple",    // 06
	"olive",     // 07 orange
	"yellow",    // 08
	"lime",      // 09 light green
	"teal",      // 10 cyan
	"aqua",      // 11 light cyan
	"royalblue", // 12 light blue
	"fuchsia",   // 13 pink
	"gray",      // 14
	"lightgray", // 15
}

// Palette maps IRC color indexes to color names. Names can be anything a
// stylesheet understands: CSS keywords, hex values, or class names when the
// formatter emits class attributes. The mapping is sparse, so indexes beyond
// the standard 0-15 set may be assigned freely.
//
// Palettes are not safe for concurrent mutation. Apply overrides before the
// palette is shared with concurrent formatting calls.
type Palette struct {
	colors map[int]string
}

// NewPalette returns a palette preloaded with the standard IRC color set.
func NewPalette() *Palette {
	colors := make(map[int]string, len(defaultColors))
	for i, name := range defaultColors {
		colors[i] = name
	}
	return &Palette{colors: colors}
}

// ColorName resolves an index to its color name. Absent or negative indexes
// resolve to fallback, never to an error.
func (p *Palette) ColorName(index int, fallback string) string {
	if name, ok := p.colors[index]; ok {
		return name
	}
	return fallback
}

// SetColorName inserts or overwrites the name of a single color index.
func (p *Palette) SetColorName(index int, name string) {
	p.colors[index] = name
}
