package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
)

// StylesheetConfig declares a stylesheet written under <outputDir>/css.
type StylesheetConfig struct {
	Name  string   `json:"name"`
	Rules []string `json:"rules"`
}

// Config encapsulates build-time options.
type Config struct {
	SiteName       string             `json:"siteName"`
	Locale         string             `json:"locale"`
	OutputDir      string             `json:"outputDir"`
	ContentDir     string             `json:"contentDir"`
	HomeDoc        string             `json:"homeDoc"`
	AssetsDir      string             `json:"assetsDir"`
	Stylesheets    []StylesheetConfig `json:"stylesheets"`
	HighlightStyle string             `json:"highlightStyle"`
	Minify         bool               `json:"minify"`
	LogLevel       string             `json:"logLevel"`
	languageTag    language.Tag       `json:"-"`
}

// Load reads configuration from disk and applies sane defaults.
func Load(path string) (*Config, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(bytes, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	// The defaults are constants and always valid.
	_ = cfg.applyDefaults()
	return cfg
}

// Language returns the parsed site locale.
func (c *Config) Language() language.Tag {
	return c.languageTag
}

func (c *Config) applyDefaults() error {
	c.SiteName = strings.TrimSpace(c.SiteName)
	if c.SiteName == "" {
		c.SiteName = "Wiki"
	}
	c.Locale = strings.TrimSpace(c.Locale)
	if c.Locale == "" {
		c.Locale = "en"
	}
	if c.OutputDir == "" {
		c.OutputDir = "docs"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	c.HomeDoc = normalizeHomeDoc(c.HomeDoc)
	c.AssetsDir = strings.TrimSpace(c.AssetsDir)
	if c.HighlightStyle == "" {
		c.HighlightStyle = "github"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	for i := range c.Stylesheets {
		c.Stylesheets[i].Name = strings.TrimSpace(c.Stylesheets[i].Name)
	}

	tag, err := language.Parse(c.Locale)
	if err != nil {
		return fmt.Errorf("locale %q: %w", c.Locale, err)
	}
	c.languageTag = tag
	return nil
}

func (c *Config) validate() error {
	if strings.ContainsAny(c.Locale, `/\`) {
		return fmt.Errorf("locale %q must not contain path separators", c.Locale)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	seen := map[string]struct{}{}
	for _, sheet := range c.Stylesheets {
		if sheet.Name == "" {
			return fmt.Errorf("stylesheet name required")
		}
		if strings.ContainsAny(sheet.Name, `/\`) || sheet.Name == "." || sheet.Name == ".." {
			return fmt.Errorf("invalid stylesheet name %q", sheet.Name)
		}
		if _, ok := seen[sheet.Name]; ok {
			return fmt.Errorf("duplicate stylesheet %q", sheet.Name)
		}
		seen[sheet.Name] = struct{}{}
	}
	if _, ok := seen[HighlightStylesheet]; ok {
		return fmt.Errorf("stylesheet name %q is reserved for syntax highlighting", HighlightStylesheet)
	}
	return nil
}

// HighlightStylesheet is the name of the generated syntax highlighting stylesheet.
const HighlightStylesheet = "highlight"

func normalizeHomeDoc(input string) string {
	trimmed := strings.TrimSpace(input)
	trimmed = strings.ReplaceAll(trimmed, "\\", "/")
	if trimmed == "" {
		trimmed = "Home.md"
	}
	if !strings.HasSuffix(strings.ToLower(trimmed), ".md") {
		trimmed += ".md"
	}
	cleaned := path.Clean(trimmed)
	for strings.HasPrefix(cleaned, "./") {
		cleaned = strings.TrimPrefix(cleaned, "./")
	}
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" {
		cleaned = "Home.md"
	}
	return filepath.ToSlash(cleaned)
}
