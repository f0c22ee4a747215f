package main

import (
	"fmt"
	"log/slog"

	"github.com/iedon/wikigen/config"
	"github.com/iedon/wikigen/renderer"
	"github.com/iedon/wikigen/site"
	"github.com/iedon/wikigen/wiki"
)

func runBuild(cfg *config.Config, logger *slog.Logger) error {
	rend := renderer.New()
	content, err := wiki.NewLoader(rend, cfg.HomeDoc, cfg.Language()).Load(cfg.ContentDir)
	if err != nil {
		return err
	}
	logger.Debug("content loaded", "documents", len(content.Documents))

	opts := []site.Option{
		site.WithOutputDir(cfg.OutputDir),
		site.WithLogger(logger),
	}
	if cfg.Minify {
		opts = append(opts, site.WithMinifier(renderer.NewMinifier()))
	}
	if cfg.AssetsDir != "" {
		opts = append(opts, site.WithAssets(cfg.AssetsDir))
	}
	s := site.New(cfg.SiteName, cfg.Locale, opts...)

	sheets := make([]*site.Stylesheet, 0, len(cfg.Stylesheets)+1)
	for _, sc := range cfg.Stylesheets {
		sheets = append(sheets, site.NewStylesheet(sc.Name, sc.Rules...))
	}
	rules, err := renderer.HighlightCSS(cfg.HighlightStyle)
	if err != nil {
		return err
	}
	sheets = append(sheets, site.NewStylesheet(config.HighlightStylesheet, rules...))
	for _, sheet := range sheets {
		s.AddStylesheet(sheet)
	}

	if err := wiki.Build(s, content, sheets...); err != nil {
		return fmt.Errorf("build pages: %w", err)
	}
	return s.Generate()
}
