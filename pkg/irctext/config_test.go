package irctext

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfig_ExampleConfig(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(ExampleConfig), &cfg))
	tf, err := cfg.Compile(zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, SpanStyle, tf.SpanFormat())
	assert.Equal(t, "#ff3333", tf.Palette().ColorName(Red, "black"))
}

func TestConfig_Compile(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(`
colors:
    3: "#33ff33"
    99: mauve
span_format: class
`), &cfg))
	tf, err := cfg.Compile(zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, SpanClass, tf.SpanFormat())
	assert.Equal(t, "#33ff33", tf.Palette().ColorName(Green, "black"))
	assert.Equal(t, "mauve", tf.Palette().ColorName(99, "black"))
	// untouched defaults stay in place
	assert.Equal(t, "red", tf.Palette().ColorName(Red, "black"))
	// the default URL pattern stays active when the config does not set one
	assert.Equal(t, DefaultURLPattern, tf.URLPattern())
}

func TestConfig_DisableURLDetection(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(`url_pattern: ""`), &cfg))
	tf, err := cfg.Compile(zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "", tf.URLPattern())
}

func TestConfig_InvalidSpanFormat(t *testing.T) {
	var cfg Config
	err := yaml.Unmarshal([]byte(`span_format: fancy`), &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "span_format")
}

func TestConfig_NegativeColorIndex(t *testing.T) {
	var cfg Config
	err := yaml.Unmarshal([]byte(`
colors:
    -1: red
`), &cfg)
	require.Error(t, err)
}

func TestConfig_InvalidURLPattern(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(`url_pattern: "["`), &cfg))
	_, err := cfg.Compile(zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "url_pattern")
}
