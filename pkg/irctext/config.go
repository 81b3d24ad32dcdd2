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
	_ "embed"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

//go:embed example-config.yaml
var ExampleConfig string

// Config is the yaml-loadable surface of a TextFormat: palette overrides, the
// URL detection pattern, and the span attribute form.
type Config struct {
	Colors     map[int]string `yaml:"colors"`
	URLPattern *string        `yaml:"url_pattern"`
	SpanFormat string         `yaml:"span_format"`
}

type umConfig Config

func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	err := node.Decode((*umConfig)(c))
	if err != nil {
		return err
	}
	return c.PostProcess()
}

func (c *Config) PostProcess() error {
	switch c.SpanFormat {
	case "", "style", "class":
	default:
		return errors.Errorf("unknown span_format %q", c.SpanFormat)
	}
	for idx := range c.Colors {
		if idx < 0 {
			return errors.Errorf("negative color index %d", idx)
		}
	}
	return nil
}

// Compile builds a TextFormat from the config. Overrides are applied here,
// before the formatter escapes to the caller, so the returned value is safe
// for concurrent use as-is.
func (c *Config) Compile(log zerolog.Logger) (*TextFormat, error) {
	tf := NewTextFormat()
	if c.SpanFormat == "class" {
		tf.SetSpanFormat(SpanClass)
	}
	for idx, name := range c.Colors {
		tf.Palette().SetColorName(idx, name)
	}
	if len(c.Colors) > 0 {
		log.Debug().Int("count", len(c.Colors)).Msg("Applied palette overrides")
	}
	if c.URLPattern != nil {
		if err := tf.SetURLPattern(*c.URLPattern); err != nil {
			return nil, errors.Wrap(err, "failed to compile url_pattern")
		}
		if *c.URLPattern == "" {
			log.Info().Msg("URL detection disabled")
		}
	}
	return tf, nil
}
