package heartbutton

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the tunables of a Button. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	// Density multiplies the preferred size and stroke widths (device pixels
	// per logical unit).
	Density float64 `toml:"density"`
	// TickMillis is the duration of the tick pop-in.
	TickMillis int `toml:"tick_ms"`
	// ColorMillis is the duration of the heart color crossfade.
	ColorMillis int `toml:"color_ms"`
}

// DefaultConfig returns density 1 with 250 ms tick and 70 ms color phases.
func DefaultConfig() Config {
	return Config{
		Density:     1,
		TickMillis:  250,
		ColorMillis: 70,
	}
}

// TickDuration returns the tick phase length.
func (c Config) TickDuration() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

// ColorDuration returns the crossfade phase length.
func (c Config) ColorDuration() time.Duration {
	return time.Duration(c.ColorMillis) * time.Millisecond
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Density <= 0 {
		return fmt.Errorf("config: density must be positive, got %v", c.Density)
	}
	if c.TickMillis < 0 {
		return fmt.Errorf("config: tick_ms must not be negative, got %d", c.TickMillis)
	}
	if c.ColorMillis < 0 {
		return fmt.Errorf("config: color_ms must not be negative, got %d", c.ColorMillis)
	}
	return nil
}

// LoadConfig decodes TOML from r on top of DefaultConfig, so omitted keys
// keep their defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads a TOML config file.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()
	cfg, err := LoadConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
