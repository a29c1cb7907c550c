package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config represents the main configuration
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Log      LogConfig      `yaml:"log"`
	Assets   AssetsConfig   `yaml:"assets"`
	Controls ControlsConfig `yaml:"controls"`
	Glitch   GlitchConfig   `yaml:"glitch"`
}

type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	VSync      bool   `yaml:"vsync"`
	Fullscreen bool   `yaml:"fullscreen"`
}

type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty logs to the console only
}

type AssetsConfig struct {
	TextureDir string `yaml:"texture_dir"`
}

type ControlsConfig struct {
	PointerSpeed          float32 `yaml:"pointer_speed"`
	ResetVelocityOnUnlock bool    `yaml:"reset_velocity_on_unlock"`
	Gamepad               bool    `yaml:"gamepad"`
}

// GlitchConfig seeds the glitch uniforms; time is always driven by the clock.
type GlitchConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Amount      float32 `yaml:"amount"`
	Angle       float32 `yaml:"angle"`
	Seed        float32 `yaml:"seed"`
	DistortionX float32 `yaml:"distortion_x"`
	DistortionY float32 `yaml:"distortion_y"`
	ColS        float32 `yaml:"col_s"`
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Glitch Corridor",
			VSync:  true,
		},
		Log: LogConfig{
			Level: "info",
		},
		Assets: AssetsConfig{
			TextureDir: "./textures",
		},
		Controls: ControlsConfig{
			PointerSpeed:          1.0,
			ResetVelocityOnUnlock: true,
			Gamepad:               true,
		},
		Glitch: GlitchConfig{
			Enabled:     true,
			Amount:      0.005,
			Angle:       0.02,
			Seed:        0.02,
			DistortionX: 0.1,
			DistortionY: 0.1,
			ColS:        0.05,
		},
	}
}

// LoadConfig reads filePath over the defaults. On any error the returned
// config is still usable.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("error parsing config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return DefaultConfig(), err
	}

	return config, nil
}

// Validate rejects values the renderer cannot work with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Controls.PointerSpeed <= 0 {
		return fmt.Errorf("pointer_speed must be positive, got %v", c.Controls.PointerSpeed)
	}
	if c.Glitch.Amount < 0 {
		return fmt.Errorf("glitch amount must not be negative, got %v", c.Glitch.Amount)
	}
	return nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
