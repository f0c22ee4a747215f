package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/iedon/wikigen/config"
)

var CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Build struct {
		Config string `short:"c" help:"Configuration file path (defaults apply when empty)" type:"path"`
		Output string `short:"o" help:"Output directory, overrides the configuration"`
	} `cmd:"" help:"Build the static site from the content directory"`

	Version struct{} `cmd:"" help:"Print version information"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(APP_NAME),
		kong.Description("Builds a multi-page static wiki from markdown documents."),
		kong.UsageOnError(),
	)

	switch ctx.Command() {
	case "version":
		fmt.Println(APP_SIGNATURE)
	case "build":
		logger := newLogger(verboseLevel(""))
		cfg, err := loadConfig(CLI.Build.Config)
		if err != nil {
			logger.Error("load config", "path", CLI.Build.Config, "error", err)
			os.Exit(1)
		}
		if CLI.Build.Output != "" {
			cfg.OutputDir = CLI.Build.Output
		}

		logger = newLogger(verboseLevel(cfg.LogLevel))
		slog.SetDefault(logger)
		logger.Info("starting", "version", APP_SIGNATURE, "content", cfg.ContentDir)

		if err := runBuild(cfg, logger); err != nil {
			logger.Error("build", "error", err)
			os.Exit(1)
		}
		logger.Info("static build completed", "output", cfg.OutputDir)
	default:
		ctx.FatalIfErrorf(fmt.Errorf("unknown command %q", ctx.Command()))
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func verboseLevel(level string) string {
	if CLI.Verbose {
		return "debug"
	}
	return level
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
