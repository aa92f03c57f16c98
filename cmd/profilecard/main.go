package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/BrandonKowalski/profilecard/pkg/profilecard"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/config"
)

// SDL calls must stay on the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "profilecard:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to config file (default $PROFILECARD_CONFIG)")
	terminal := flag.Bool("tui", false, "Run in the terminal instead of opening a window")
	route := flag.String("route", "", `Start route: "list" or "detail/{id}"`)
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn or error")
	locale := flag.String("locale", "", `Message language: "en", "de" or "es"`)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *locale != "" {
		cfg.Locale = *locale
	}

	app, err := profilecard.Init(profilecard.Options{
		Config:     cfg,
		StartRoute: *route,
		Terminal:   *terminal,
	})
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		profilecard.GetLogger().Error("Fatal error", "error", err)
		return err
	}
	return nil
}
