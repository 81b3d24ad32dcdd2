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
	"context"
	"strings"

	"maunium.net/go/mautrix/format"
)

var htmlParser = format.HTMLParser{
	TabsToSpaces:           4,
	Newline:                "\n",
	HorizontalLine:         "---",
	BoldConverter:          formattingAdder(bold),
	ItalicConverter:        formattingAdder(italic),
	StrikethroughConverter: formattingAdder(strikethrough),
	UnderlineConverter:     formattingAdder(underline),
	ColorConverter: func(text, fg, bg string, ctx format.Context) string {
		ircFG := reverseColors[strings.ToLower(fg)]
		ircBG := reverseColors[strings.ToLower(bg)]
		if ircFG == "" {
			// no IRC equivalent for the foreground, leave the text bare
			return text
		}
		resultFmt := color + ircFG
		if ircBG != "" {
			resultFmt += "," + ircBG
		}
		return doAddFormatting(text, resultFmt)
	},
	TextConverter: func(s string, ctx format.Context) string {
		return ToPlainText(s)
	},
}

// doAddFormatting wraps s in the given formatting codes. Resets already inside
// s would cut the formatting short, so the codes are re-opened after each one.
func doAddFormatting(s, fmt string) string {
	return fmt + strings.ReplaceAll(strings.TrimRight(s, reset), reset, reset+fmt) + reset
}

func formattingAdder(fmt string) func(s string, ctx format.Context) string {
	return func(s string, ctx format.Context) string {
		return doAddFormatting(s, fmt)
	}
}

// ParseHTML converts an HTML fragment to IRC-formatted text. Bold, italic,
// strikethrough and underline elements become their control codes, and color
// spans become color codes when the CSS color name or hex value maps back to
// a standard IRC color index. Control codes already embedded in the fragment's
// text are stripped first.
func ParseHTML(ctx context.Context, html string) string {
	return htmlParser.Parse(html, format.NewContext(ctx))
}
