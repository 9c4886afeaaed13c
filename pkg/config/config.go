// Package config loads the application configuration from a YAML file
// and translates it into the typed values the display packages consume.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zoneline/zoneline/pkg/activity"
	"github.com/zoneline/zoneline/pkg/timeline"
)

// HourRange is a [start, end) span of local hours.
type HourRange struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Config is the top-level application configuration.
type Config struct {
	// Zones is the ordered list of IANA timezone names to display.
	Zones []string `yaml:"zones"`

	// WorkHours bounds the working day used for activity shading and
	// date-label anchoring.
	WorkHours HourRange `yaml:"work_hours"`
	// AwakeHours bounds the waking day; hours outside it shade as night.
	AwakeHours HourRange `yaml:"awake_hours"`

	// Theme names the color palette ("default", "ocean", "mono").
	Theme string `yaml:"theme"`

	// TimeFormat is "24h" or "12h".
	TimeFormat string `yaml:"time_format"`
	// TitleMode is "short" (city and offset) or "full" (IANA name).
	TitleMode string `yaml:"title_mode"`

	// ScrubStepMinutes is how far one keypress moves the scrub position.
	ScrubStepMinutes int `yaml:"scrub_step_minutes"`

	ShowDate bool `yaml:"show_date"`
	ShowDST  bool `yaml:"show_dst"`
}

// Default returns the stock configuration used when no file exists.
func Default() *Config {
	return &Config{
		Zones:            []string{"UTC", "America/New_York", "Europe/London", "Asia/Tokyo"},
		WorkHours:        HourRange{Start: 8, End: 18},
		AwakeHours:       HourRange{Start: 6, End: 22},
		Theme:            "default",
		TimeFormat:       "24h",
		TitleMode:        "short",
		ScrubStepMinutes: 15,
		ShowDate:         true,
		ShowDST:          true,
	}
}

// DefaultPath returns the conventional config location under the
// user's config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "zoneline.yaml"
	}
	return filepath.Join(dir, "zoneline", "config.yaml")
}

// Load reads and validates the configuration at path. A missing file is
// not an error: the defaults are returned so the app works out of the
// box.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// WriteDefault creates the default config file at path on first run so
// users have something to edit. Existing files are left alone.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}

// Validate rejects configurations the display layer cannot work with.
func (c *Config) Validate() error {
	if len(c.Zones) == 0 {
		return errors.New("no zones configured")
	}
	if err := c.Rules().Validate(); err != nil {
		return err
	}
	switch c.TimeFormat {
	case "24h", "12h":
	default:
		return fmt.Errorf("time_format %q is not 24h or 12h", c.TimeFormat)
	}
	switch c.TitleMode {
	case "short", "full":
	default:
		return fmt.Errorf("title_mode %q is not short or full", c.TitleMode)
	}
	if c.ScrubStepMinutes <= 0 {
		return fmt.Errorf("scrub_step_minutes %d must be positive", c.ScrubStepMinutes)
	}
	return nil
}

// Rules builds the activity classification rules from the configured
// hour ranges.
func (c *Config) Rules() *activity.Config {
	rules := activity.DefaultConfig()
	rules.WorkStart = c.WorkHours.Start
	rules.WorkEnd = c.WorkHours.End
	rules.AwakeStart = c.AwakeHours.Start
	rules.AwakeEnd = c.AwakeHours.End
	return rules
}

// Format returns the configured caption time format.
func (c *Config) Format() timeline.TimeFormat {
	if c.TimeFormat == "12h" {
		return timeline.TwelveHour
	}
	return timeline.TwentyFourHour
}

// Titles returns the configured border title mode.
func (c *Config) Titles() timeline.TitleMode {
	if c.TitleMode == "full" {
		return timeline.TitleFull
	}
	return timeline.TitleShort
}

// ScrubStep returns the scrub increment as a duration.
func (c *Config) ScrubStep() time.Duration {
	return time.Duration(c.ScrubStepMinutes) * time.Minute
}
