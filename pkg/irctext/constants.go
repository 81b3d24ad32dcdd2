package irctext

import (
	"regexp"
	"strconv"
)

const (
	// raw bytes to do replacing with
	bold          = "\x02"
	color         = "\x03"
	reset         = "\x0f"
	strikethrough = "\x13"
	underlineAlt  = "\x15"
	inverse       = "\x16"
	italic        = "\x1d"
	underline     = "\x1f"

	metacharacters = bold + color + reset + strikethrough + underlineAlt + inverse + italic + underline

	// metacharacters plus the bytes that feed the potential-URL heuristic
	scanCharacters = metacharacters + "./:"
)

// colorRegex matches the digit payload directly after a color code: fg(,bg)
var colorRegex = regexp.MustCompile(`^([0-9]{1,2})(?:,([0-9]{1,2}))?`)

// DefaultURLPattern matches schemed URLs, www./ftp. prefixed hosts, bare
// domains with a path, and e-mail addresses. Trailing punctuation and common
// quote characters are excluded from the match.
const DefaultURLPattern = `\b((?:(?:([a-z][\w.-]+:/{1,3})|www|ftp\d{0,3}[.]|[a-z0-9.\-]+[.][a-z]{2,4}/)(?:[^\s()<>]+|\(([^\s()<>]+|(\([^\s()<>]+\)))*\))+(?:\(([^\s()<>]+|(\([^\s()<>]+\)))*\)|\}\]|[^\s` + "`" + `!()\[\]{};:'".,<>?«»“”‘’])|[a-z0-9.\-+_]+@[a-z0-9.\-]+[.][a-z]{1,5}[^\s/` + "`" + `!()\[\]{};:'".,<>?«»“”‘’]))`

var defaultURLRegex = regexp.MustCompile(DefaultURLPattern)

// colorHex holds the conventional hex values of the standard IRC color set,
// used to reverse-map colors coming in from HTML.
var colorHex = [16]string{
	"#ffffff", // 00 white
	"#000000", // 01 black
	"#00007f", // 02 blue (navy)
	"#009300", // 03 green
	"#ff0000", // 04 red
	"#7f0000", // 05 brown (maroon)
	"#9c009c", // 06 purple
	"#fc7f00", // 07 orange (olive)
	"#ffff00", // 08 yellow
	"#00fc00", // 09 light green (lime)
	"#009393", // 10 teal (cyan)
	"#00ffff", // 11 light cyan (aqua)
	"#0000fc", // 12 light blue (royal)
	"#ff00ff", // 13 pink (fuchsia)
	"#7f7f7f", // 14 grey
	"#d2d2d2", // 15 light grey (silver)
}

// reverseColors maps both the default color names and the conventional hex
// values back to two-digit IRC color codes.
var reverseColors map[string]string

func init() {
	reverseColors = make(map[string]string, len(defaultColors)+len(colorHex))
	for i, col := range defaultColors {
		idxStr := strconv.Itoa(i)
		if len(idxStr) == 1 {
			idxStr = "0" + idxStr
		}
		reverseColors[col] = idxStr
		reverseColors[colorHex[i]] = idxStr
	}
}
