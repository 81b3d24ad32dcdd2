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

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"go.mau.fi/util/exslices"
)

// SpanFormat selects the attribute form of the span containers emitted by
// ToHTML.
type SpanFormat int

const (
	// SpanStyle emits self-contained style attributes, ready to render
	// without an external stylesheet.
	SpanStyle SpanFormat = iota
	// SpanClass emits class attributes named after the style, for use with
	// an external stylesheet.
	SpanClass
)

// TextFormat converts IRC-style formatted messages to HTML. It holds the
// palette used for color codes, the URL detection pattern, and the span
// attribute form. A TextFormat is read-only during conversion, so a single
// value may serve any number of concurrent ToHTML calls once configured.
type TextFormat struct {
	palette    *Palette
	urlPattern string
	urlRegex   *regexp.Regexp
	spanFormat SpanFormat
}

// NewTextFormat returns a formatter with the default palette, the default URL
// pattern, and the SpanStyle attribute form.
func NewTextFormat() *TextFormat {
	return &TextFormat{
		palette:    NewPalette(),
		urlPattern: DefaultURLPattern,
		urlRegex:   defaultURLRegex,
		spanFormat: SpanStyle,
	}
}

// Palette returns the palette used for color formatting. The formatter owns
// the palette; overrides applied through it are visible to later conversions.
func (f *TextFormat) Palette() *Palette {
	return f.palette
}

// URLPattern returns the regular expression pattern used for matching URLs.
func (f *TextFormat) URLPattern() string {
	return f.urlPattern
}

// SetURLPattern replaces the URL detection pattern. The pattern is compiled
// immediately so that a broken pattern surfaces at configuration time rather
// than mid-conversion. An empty pattern disables URL detection.
func (f *TextFormat) SetURLPattern(pattern string) error {
	if pattern == "" {
		f.urlPattern, f.urlRegex = "", nil
		return nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return errors.Wrap(err, "invalid URL pattern")
	}
	f.urlPattern, f.urlRegex = pattern, re
	return nil
}

// SpanFormat returns the attribute form used for emitted span containers.
func (f *TextFormat) SpanFormat() SpanFormat {
	return f.spanFormat
}

// SetSpanFormat sets the attribute form used for emitted span containers.
func (f *TextFormat) SetSpanFormat(format SpanFormat) {
	f.spanFormat = format
}

type style uint

const (
	styleBold style = 1 << iota
	styleItalic
	styleLineThrough
	styleUnderline
	styleInverse
)

// styleColor marks color containers on the open-container stack. Color codes
// always open a fresh container instead of toggling a flag.
const styleColor style = 0

var spanStyles = map[style]string{
	styleBold:        "font-weight: bold",
	styleItalic:      "font-style: italic",
	styleLineThrough: "text-decoration: line-through",
	styleUnderline:   "text-decoration: underline",
	styleInverse:     "text-decoration: inverse",
}

var spanClasses = map[style]string{
	styleBold:        "bold",
	styleItalic:      "italic",
	styleLineThrough: "line-through",
	styleUnderline:   "underline",
	styleInverse:     "inverse",
}

func (f *TextFormat) styleSpan(s style) string {
	if f.spanFormat == SpanClass {
		return "<span class='" + spanClasses[s] + "'>"
	}
	return "<span style='" + spanStyles[s] + "'>"
}

func (f *TextFormat) colorSpan(fgDigits, bgDigits string) string {
	fg, _ := strconv.Atoi(fgDigits)
	fgName := f.palette.ColorName(fg, "black")
	var bgName string
	if bgDigits != "" {
		bg, _ := strconv.Atoi(bgDigits)
		bgName = f.palette.ColorName(bg, "transparent")
	}
	if f.spanFormat == SpanClass {
		classes := fgName
		if bgName != "" {
			classes += " " + bgName + "-background"
		}
		return "<span class='" + classes + "'>"
	}
	styles := "color: " + fgName
	if bgName != "" {
		styles += "; background-color: " + bgName
	}
	return "<span style='" + styles + "'>"
}

// ToHTML converts text to HTML, replacing IRC-style formatting with nested
// span containers and, when the text looks like it may contain one, rewriting
// URLs and e-mail addresses as hyperlinks.
//
// Close events pop the most recently opened container regardless of which
// style it opened, matching how IRC clients render interleaved toggles.
// Containers still open at the end of input are left open.
func (f *TextFormat) ToHTML(text string) string {
	// Only < is escaped; the input is chat text, not markup, and > on its
	// own is harmless in the output.
	text = strings.ReplaceAll(text, "<", "&lt;")
	var out strings.Builder
	var open exslices.Stack[style]
	var state style
	potentialURL := false
	toggle := func(s style) {
		if state&s != 0 {
			out.WriteString("</span>")
			open.Pop()
		} else {
			out.WriteString(f.styleSpan(s))
			open.Push(s)
		}
		state ^= s
	}
	for {
		nextIdx := strings.IndexAny(text, scanCharacters)
		if nextIdx == -1 {
			break
		}
		out.WriteString(text[:nextIdx])
		meta := text[nextIdx]
		text = text[nextIdx+1:]
		switch meta {
		case bold[0]:
			toggle(styleBold)
		case italic[0]:
			toggle(styleItalic)
		case strikethrough[0]:
			toggle(styleLineThrough)
		case underline[0], underlineAlt[0]:
			toggle(styleUnderline)
		case inverse[0]:
			toggle(styleInverse)
		case color[0]:
			if m := colorRegex.FindStringSubmatch(text); m != nil {
				out.WriteString(f.colorSpan(m[1], m[2]))
				open.Push(styleColor)
				text = text[len(m[0]):]
			} else {
				// a color code with no digit payload closes the most
				// recently opened container
				out.WriteString("</span>")
				open.Pop()
			}
		case reset[0]:
			for range open.PopIter() {
				out.WriteString("</span>")
			}
			state = 0
		case '.', '/', ':':
			// a dot, slash or colon not surrounded by spaces indicates a
			// potential URL
			if !potentialURL {
				prev, _ := utf8.DecodeLastRuneInString(out.String())
				next, _ := utf8.DecodeRuneInString(text)
				if prev != utf8.RuneError && next != utf8.RuneError &&
					!unicode.IsSpace(prev) && !unicode.IsSpace(next) {
					potentialURL = true
				}
			}
			out.WriteByte(meta)
		}
	}
	out.WriteString(text)
	processed := out.String()
	if potentialURL && f.urlRegex != nil {
		processed = f.parseLinks(processed)
	}
	return processed
}

// ToPlainText strips IRC-style formatting from text. Color codes are removed
// together with their digit payload. The result is palette-independent: no
// escaping or URL detection is performed.
func ToPlainText(text string) string {
	var out strings.Builder
	for {
		nextIdx := strings.IndexAny(text, metacharacters)
		if nextIdx == -1 {
			break
		}
		out.WriteString(text[:nextIdx])
		meta := text[nextIdx]
		text = text[nextIdx+1:]
		if meta == color[0] {
			if m := colorRegex.FindString(text); m != "" {
				text = text[len(m):]
			}
		}
	}
	if out.Len() == 0 {
		return text
	}
	out.WriteString(text)
	return out.String()
}
