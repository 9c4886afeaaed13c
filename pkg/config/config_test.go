package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/zoneline/zoneline/pkg/timeline"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config does not validate: %v", err)
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load on a missing file: %v", err)
	}
	if len(cfg.Zones) == 0 || cfg.Theme != "default" {
		t.Error("missing file did not fall back to defaults")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
zones:
  - Asia/Tokyo
  - Australia/Lord_Howe
work_hours:
  start: 9
  end: 17
theme: mono
time_format: 12h
title_mode: full
show_date: false
show_dst: true
scrub_step_minutes: 30
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(cfg.Zones) != 2 || cfg.Zones[0] != "Asia/Tokyo" {
		t.Errorf("zones = %v", cfg.Zones)
	}
	if cfg.WorkHours.Start != 9 || cfg.WorkHours.End != 17 {
		t.Errorf("work hours = %+v, want 9-17", cfg.WorkHours)
	}
	// Awake hours were not set in the file and keep their default.
	if cfg.AwakeHours.Start != 6 || cfg.AwakeHours.End != 22 {
		t.Errorf("awake hours = %+v, want default 6-22", cfg.AwakeHours)
	}
	if cfg.Format() != timeline.TwelveHour {
		t.Error("time_format 12h did not map to TwelveHour")
	}
	if cfg.Titles() != timeline.TitleFull {
		t.Error("title_mode full did not map to TitleFull")
	}
	if cfg.ShowDate || !cfg.ShowDST {
		t.Errorf("flags = show_date %v show_dst %v", cfg.ShowDate, cfg.ShowDST)
	}
	if cfg.ScrubStep() != 30*time.Minute {
		t.Errorf("ScrubStep() = %v, want 30m", cfg.ScrubStep())
	}
}

func TestLoadRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no zones", "zones: []"},
		{"inverted work hours", "work_hours: {start: 18, end: 8}"},
		{"unknown time format", "time_format: metric"},
		{"unknown title mode", "title_mode: verbose"},
		{"zero scrub step", "scrub_step_minutes: 0"},
		{"not yaml", ":\n  - ["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("writing fixture: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load accepted an invalid config")
			}
		})
	}
}

func TestWriteDefaultCreatesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading created config: %v", err)
	}

	// A second call must not clobber user edits.
	if err := os.WriteFile(path, []byte("theme: mono\n"), 0o600); err != nil {
		t.Fatalf("editing config: %v", err)
	}
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault (existing): %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("re-reading config: %v", err)
	}
	if string(second) != "theme: mono\n" {
		t.Error("WriteDefault overwrote an existing file")
	}
	if len(first) == 0 {
		t.Error("WriteDefault wrote an empty file")
	}

	// And the created file must round-trip through Load.
	if err := os.WriteFile(path, first, 0o600); err != nil {
		t.Fatalf("restoring config: %v", err)
	}
	if _, err := Load(path); err != nil {
		t.Errorf("created default config does not load: %v", err)
	}
}

func TestRulesClassifiesWithConfiguredHours(t *testing.T) {
	cfg := Default()
	cfg.WorkHours = HourRange{Start: 22, End: 23}
	// 22:00 is outside the default awake range but inside work hours;
	// work wins.
	rules := cfg.Rules()
	if got := rules.Classify(22); got.String() != "work" {
		t.Errorf("Classify(22) = %v, want work", got)
	}
}
