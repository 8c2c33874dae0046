package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Validate ensures the file converts into a usable scene configuration.
func (f *File) Validate() error {
	if err := f.validateWindow(); err != nil {
		return err
	}
	if _, err := f.LogLevel(); err != nil {
		return err
	}
	cfg, err := f.ToConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(f.Headline.Text) == "" {
		return errors.New("headline.text must be set")
	}
	if f.Headline.FontSize <= 0 {
		return errors.New("headline.font_size must be positive")
	}
	return nil
}

func (f *File) validateWindow() error {
	if f.Window.Width <= 0 || f.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", f.Window.Width, f.Window.Height)
	}
	return nil
}

// LogLevel parses logging.level.
func (f *File) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	name := strings.TrimSpace(f.Logging.Level)
	if name == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("logging.level: %w", err)
	}
	return lvl, nil
}
