package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/jmigpin/histogfx/util/imageutil"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Palette  Palette `yaml:"palette"`
	BarGap   float64 `yaml:"barGap"` // fraction of the bucket width left empty
	HitSize  int     `yaml:"hitSize"`
	FontSize float64 `yaml:"fontSize"`
}

type Palette struct {
	Background string `yaml:"background"`
	Bar        string `yaml:"bar"`
	Hover      string `yaml:"hover"`
	Selected   string `yaml:"selected"`
	Text       string `yaml:"text"`
}

func DefaultConfig() *Config {
	return &Config{
		Palette: Palette{
			Background: "#ffffff",
			Bar:        "#4a7ab5",
			Hover:      "#6fa0dc",
			Selected:   "#d9822b",
			Text:       "#202020",
		},
		BarGap:   0.1,
		HitSize:  3,
		FontSize: 14,
	}
}

// Empty filename gives the default config. Fields missing in the file keep their defaults.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()
	if filename == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if err := cfg.decode(b); err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	return cfg, nil
}

func (cfg *Config) decode(b []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) { // empty file
			return cfg.validate()
		}
		return err
	}
	return cfg.validate()
}

func (cfg *Config) validate() error {
	if cfg.BarGap < 0 || cfg.BarGap >= 1 {
		return fmt.Errorf("barGap out of range [0,1): %v", cfg.BarGap)
	}
	if cfg.HitSize < 1 {
		return fmt.Errorf("bad hitSize: %v", cfg.HitSize)
	}
	if cfg.FontSize <= 0 {
		return fmt.Errorf("bad fontSize: %v", cfg.FontSize)
	}
	_, err := cfg.Palette.colors()
	return err
}

//----------

type colors struct {
	bg, bar, hover, selected, text color.RGBA
}

func (p *Palette) colors() (*colors, error) {
	c := &colors{}
	u := []struct {
		s string
		c *color.RGBA
	}{
		{p.Background, &c.bg},
		{p.Bar, &c.bar},
		{p.Hover, &c.hover},
		{p.Selected, &c.selected},
		{p.Text, &c.text},
	}
	for _, e := range u {
		v, err := imageutil.ParseHexColor(e.s)
		if err != nil {
			return nil, fmt.Errorf("palette: %w", err)
		}
		*e.c = v
	}
	return c, nil
}
