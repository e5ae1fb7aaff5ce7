// Package config provides configuration management for the farm
// terminal. Configuration is loaded from TOML files, with environment
// overrides for the backend address.
package config

import (
	"errors"
	"fmt"
)

// Config holds the complete application configuration.
type Config struct {
	API     APIConfig     `toml:"api"`
	Farm    FarmConfig    `toml:"farm"`
	Display DisplayConfig `toml:"display"`
	Logging LoggingConfig `toml:"logging"`
}

// APIConfig points the client at the REST backend.
type APIConfig struct {
	BaseURL string `toml:"base_url"`
}

// FarmConfig carries the identity shown in the header bar.
type FarmConfig struct {
	Name     string `toml:"name"`
	Location string `toml:"location"`
	Currency string `toml:"currency"`
}

// ColorScheme defines the terminal color palette.
type ColorScheme string

const (
	ColorSchemeGreen ColorScheme = "green"
	ColorSchemeAmber ColorScheme = "amber"
	ColorSchemeWhite ColorScheme = "white"
)

// DisplayConfig controls TUI appearance.
type DisplayConfig struct {
	ColorScheme ColorScheme `toml:"color_scheme"`
	DateFormat  string      `toml:"date_format"`
	TimeFormat  string      `toml:"time_format"`
}

// LoggingConfig controls application logging. The TUI owns the
// terminal, so logs always go to a file.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
	JSON  bool   `toml:"json"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:5000/api",
		},
		Farm: FarmConfig{
			Name:     "Niruna Farm",
			Location: "Shyamal Estate",
			Currency: "Rs.",
		},
		Display: DisplayConfig{
			ColorScheme: ColorSchemeGreen,
			DateFormat:  "02/01/2006",
			TimeFormat:  "15:04",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "farmtui.log",
		},
	}
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url must not be empty")
	}
	switch c.Display.ColorScheme {
	case ColorSchemeGreen, ColorSchemeAmber, ColorSchemeWhite, "":
	default:
		return fmt.Errorf("unknown color_scheme %q", c.Display.ColorScheme)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error", "":
	default:
		return fmt.Errorf("unknown logging level %q", c.Logging.Level)
	}
	return nil
}
