// Package config holds the start-up settings of the paint app.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Title    string   `toml:"title"`
	Canvas   Canvas   `toml:"canvas"`
	Marker   Marker   `toml:"marker"`
	Stickers Stickers `toml:"stickers"`
}

type Canvas struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

type Marker struct {
	Thin  float32 `toml:"thin"`
	Thick float32 `toml:"thick"`
	Color string  `toml:"color"` // "#rrggbb"
}

type Stickers struct {
	Set  []string `toml:"set"`
	Size float32  `toml:"size"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Title:  "Let's Paint",
		Canvas: Canvas{Width: 256, Height: 256},
		Marker: Marker{Thin: 2, Thick: 6, Color: "#000000"},
		Stickers: Stickers{
			Set:  []string{"🎃", "👻", "🍬"},
			Size: 24,
		},
	}
}

// Load reads a TOML file over the defaults. Keys missing from the file keep
// their default value; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	log.Printf("[CONFIG] Loaded %s", path)
	return cfg, nil
}

// Decode parses TOML data into cfg and validates the result.
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	return cfg.Validate()
}

// Validate checks that the settings describe a usable canvas.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas size %gx%g", ErrInvalidConfig, c.Canvas.Width, c.Canvas.Height)
	}
	if c.Marker.Thin <= 0 || c.Marker.Thick <= 0 {
		return fmt.Errorf("%w: marker widths must be positive", ErrInvalidConfig)
	}
	if c.Marker.Thin >= c.Marker.Thick {
		return fmt.Errorf("%w: thin marker (%g) must be narrower than thick (%g)", ErrInvalidConfig, c.Marker.Thin, c.Marker.Thick)
	}
	if _, err := ParseColor(c.Marker.Color); err != nil {
		return fmt.Errorf("%w: marker color: %v", ErrInvalidConfig, err)
	}
	if c.Stickers.Size <= 0 {
		return fmt.Errorf("%w: sticker size must be positive", ErrInvalidConfig)
	}
	for i, s := range c.Stickers.Set {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%w: sticker %d is empty", ErrInvalidConfig, i)
		}
	}
	return nil
}

// MarkerColor returns the configured marker colour. It falls back to black if
// the config was not validated.
func (c Config) MarkerColor() color.Color {
	col, err := ParseColor(c.Marker.Color)
	if err != nil {
		return color.Black
	}
	return col
}

// ParseColor parses "#rrggbb" or "#rgb".
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 || !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, fmt.Errorf("%q is not #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%q is not #rrggbb", s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
