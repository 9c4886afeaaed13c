// Package main implements the zoneline terminal multi-timezone clock.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"

	"github.com/zoneline/zoneline/pkg/activity"
	"github.com/zoneline/zoneline/pkg/app"
	"github.com/zoneline/zoneline/pkg/config"
	"github.com/zoneline/zoneline/pkg/theme"
	"github.com/zoneline/zoneline/pkg/tzone"
)

var (
	configPath  = flag.String("config", config.DefaultPath(), "Path to the YAML config file")
	themeName   = flag.String("theme", "", "Color theme: "+strings.Join(theme.Names(), ", "))
	zoneList    = flag.String("zones", "", "Comma-separated IANA zones, overriding the config")
	twelveHour  = flag.Bool("12h", false, "Use 12-hour time captions")
	listOnly    = flag.Bool("list", false, "Print the configured zones and exit")
	logPath     = flag.String("log", "", "Write debug logs to this file (stderr belongs to the UI)")
	writeConfig = flag.Bool("write-config", false, "Create a default config file if none exists, then exit")
	showVersion = flag.Bool("version", false, "Show version")
)

const version = "zoneline v1.0.0"

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	logger, cleanup, err := newLogger(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zoneline: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	if *writeConfig {
		if err := config.WriteDefault(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "zoneline: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("wrote", *configPath)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zoneline: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "zoneline: %v\n", err)
		os.Exit(1)
	}

	zones, err := tzone.NewRegistry().LoadAll(cfg.Zones)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zoneline: %v\n", err)
		os.Exit(1)
	}

	if *listOnly {
		listZones(zones, cfg.Rules())
		return
	}

	if err := runUI(cfg, zones, logger); err != nil {
		fmt.Fprintf(os.Stderr, "zoneline: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags layers command-line overrides on top of the loaded config.
func applyFlags(cfg *config.Config) {
	if *themeName != "" {
		cfg.Theme = *themeName
	}
	if *zoneList != "" {
		var zones []string
		for _, name := range strings.Split(*zoneList, ",") {
			if name = strings.TrimSpace(name); name != "" {
				zones = append(zones, name)
			}
		}
		cfg.Zones = zones
	}
	if *twelveHour {
		cfg.TimeFormat = "12h"
	}
}

// newLogger builds the slog logger. Without a log file everything is
// discarded: the terminal is owned by the UI.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}

// listZones prints each zone's current local time and activity category
// to stdout, colored per category.
func listZones(zones []*tzone.Zone, rules *activity.Config) {
	now := time.Now().UTC()
	bold := color.New(color.Bold)

	for _, z := range zones {
		local := z.Convert(now)
		cat := rules.Classify(local.Hour())

		bold.Printf("%-24s", z.DisplayName())
		fmt.Printf("%s  %-9s  ", local.Format("15:04 Mon"), z.OffsetString(now))
		categoryColor(cat).Println(cat.String())
	}
}

func categoryColor(cat activity.Category) *color.Color {
	switch cat {
	case activity.Work:
		return color.New(color.FgGreen)
	case activity.Awake:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgBlue)
	}
}

// runUI owns the tcell screen lifecycle around the app's event loop.
func runUI(cfg *config.Config, zones []*tzone.Zone, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "zones", len(zones), "theme", cfg.Theme)
	if err := app.New(screen, cfg, zones, logger).Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
