package irctext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPalette_Defaults(t *testing.T) {
	p := NewPalette()
	assert.Equal(t, "white", p.ColorName(White, "black"))
	assert.Equal(t, "black", p.ColorName(Black, "white"))
	assert.Equal(t, "navy", p.ColorName(Blue, "black"))
	assert.Equal(t, "red", p.ColorName(Red, "black"))
	assert.Equal(t, "lightgray", p.ColorName(LightGray, "black"))
}

func TestPalette_Fallback(t *testing.T) {
	p := NewPalette()
	assert.Equal(t, "black", p.ColorName(99, "black"))
	assert.Equal(t, "transparent", p.ColorName(42, "transparent"))
	assert.Equal(t, "black", p.ColorName(-1, "black"))
}

func TestPalette_SetColorName(t *testing.T) {
	p := NewPalette()
	p.SetColorName(Red, "#ff3333")
	assert.Equal(t, "#ff3333", p.ColorName(Red, "black"))

	// the mapping is sparse, any index can be assigned
	p.SetColorName(99, "mauve")
	assert.Equal(t, "mauve", p.ColorName(99, "black"))
	assert.Equal(t, "black", p.ColorName(98, "black"))
}
