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
	"strings"
)

// hrefSafe lists the bytes kept literal when percent-encoding an anchor
// target, on top of the unreserved set.
const hrefSafe = ":/?@%#=+&,"

func isUnreserved(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '-' || c == '.' || c == '_' || c == '~'
}

const upperhex = "0123456789ABCDEF"

func percentEncode(s string) string {
	var out strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || strings.IndexByte(hrefSafe, c) != -1 {
			out.WriteByte(c)
		} else {
			out.WriteByte('%')
			out.WriteByte(upperhex[c>>4])
			out.WriteByte(upperhex[c&0xf])
		}
	}
	return out.String()
}

func generateLink(protocol, href string) string {
	return "<a href='" + protocol + percentEncode(href) + "'>" + href + "</a>"
}

// parseLinks rewrites every match of the URL pattern as an anchor. The cursor
// always advances past the just-inserted anchor, so replacement text is never
// re-scanned and the loop terminates even though replacements grow the text.
func (f *TextFormat) parseLinks(text string) string {
	pos := 0
	for pos < len(text) {
		loc := f.urlRegex.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		href := text[start:end]

		// The pattern's second group captures an explicit scheme. Without
		// one, infer the protocol from the shape of the first group.
		var protocol string
		if len(loc) <= 5 || loc[4] == -1 || loc[4] == loc[5] {
			var match string
			if len(loc) > 3 && loc[2] != -1 {
				match = text[pos+loc[2] : pos+loc[3]]
			}
			switch {
			case strings.ContainsRune(match, '@'):
				protocol = "mailto:"
			case len(match) >= 4 && strings.EqualFold(match[:4], "ftp."):
				protocol = "ftp://"
			default:
				protocol = "http://"
			}
		}

		link := generateLink(protocol, href)
		text = text[:start] + link + text[end:]
		pos = start + len(link)
	}
	return text
}
