package irctext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentEncode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"unreserved untouched", "Abc-123_x.y~z", "Abc-123_x.y~z"},
		{"href characters stay literal", "a:b/c?d@e%f#g=h+i&j,k", "a:b/c?d@e%f#g=h+i&j,k"},
		{"space encoded", "a b", "a%20b"},
		{"parens and quotes encoded", "a(b)'c'", "a%28b%29%27c%27"},
		{"multibyte encoded per byte", "pä", "p%C3%A4"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, percentEncode(test.input))
		})
	}
}

func TestGenerateLink(t *testing.T) {
	assert.Equal(t,
		"<a href='mailto:a@b.com'>a@b.com</a>",
		generateLink("mailto:", "a@b.com"))
	// the label stays unencoded even when the target does not
	assert.Equal(t,
		"<a href='http://example.com/a%7Cb'>example.com/a|b</a>",
		generateLink("http://", "example.com/a|b"))
}

func TestParseLinks_GrouplessPattern(t *testing.T) {
	// caller-supplied patterns are not required to have the scheme capture
	// group, inference then falls back to http
	f := NewTextFormat()
	require.NoError(t, f.SetURLPattern(`example\.[a-z]+`))
	assert.Equal(t,
		"see <a href='http://example.org'>example.org</a> now",
		f.ToHTML("see example.org now"))
}

func TestParseLinks_ForwardProgress(t *testing.T) {
	// every replacement is longer than its match, the cursor must still
	// reach the end
	f := NewTextFormat()
	require.NoError(t, f.SetURLPattern(`x\.y`))
	assert.Equal(t,
		"<a href='http://x.y'>x.y</a> <a href='http://x.y'>x.y</a> <a href='http://x.y'>x.y</a>",
		f.ToHTML("x.y x.y x.y"))
}
