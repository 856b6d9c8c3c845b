package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/scene3d/internal/geom"
)

const (
	DefaultWidth     = 800
	DefaultHeight    = 600
	DefaultAzimuth   = 45.0
	DefaultElevation = 30.0
	DefaultDistance  = 6.0
	DefaultTitleSize = 40
)

// Config is the persisted default for figure creation and backend
// selection. An empty Backend defers to the environment-based resolver.
type Config struct {
	Backend    string     `yaml:"backend"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Background string     `yaml:"background"`
	TitleSize  int        `yaml:"title_size"`
	View       ViewConfig `yaml:"view"`
}

type ViewConfig struct {
	Azimuth    float64    `yaml:"azimuth"`
	Elevation  float64    `yaml:"elevation"`
	Distance   float64    `yaml:"distance"`
	FocalPoint [3]float64 `yaml:"focal_point"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Background: "#000000",
		TitleSize:  DefaultTitleSize,
		View: ViewConfig{
			Azimuth:   DefaultAzimuth,
			Elevation: DefaultElevation,
			Distance:  DefaultDistance,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ParseColor converts a #rrggbb string to a color with components in
// [0, 1].
func ParseColor(s string) (geom.Color, error) {
	var r, g, b int
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return geom.Color{}, fmt.Errorf("config: invalid color %q: %v", s, err)
	}
	return geom.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, nil
}
