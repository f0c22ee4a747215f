// Package site lays out pages and stylesheets on disk and generates them.
package site

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/iedon/wikigen/fsutil"
	"github.com/iedon/wikigen/node"
)

const (
	// DefaultLocale is written at the output root instead of a locale subdirectory.
	DefaultLocale = "en-US"
	// DefaultOutputDir is the output base path when none is configured.
	DefaultOutputDir = "docs"

	defaultSiteLocale = "en"
	themeDir          = "theme"
)

// Minifier shrinks generated documents before they are written.
type Minifier interface {
	MinifyHTML(raw string) (string, error)
	MinifyCSS(raw string) (string, error)
}

// Site owns the stylesheets and pages of one locale of a website.
type Site struct {
	name        string
	locale      string
	outputDir   string
	assetsDir   string
	stylesheets []*Stylesheet
	pages       []*Page
	byID        map[node.PageID]*Page
	logger      *slog.Logger
	minifier    Minifier
	navTargets  []node.PageID
}

// Option configures a Site.
type Option func(*Site)

// WithOutputDir sets the base output path.
func WithOutputDir(dir string) Option {
	return func(s *Site) {
		if strings.TrimSpace(dir) != "" {
			s.outputDir = dir
		}
	}
}

// WithLogger sets the logger used while generating.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Site) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMinifier minifies every page and stylesheet before it is written.
func WithMinifier(m Minifier) Option {
	return func(s *Site) {
		s.minifier = m
	}
}

// WithAssets copies the directory tree at dir to <output>/theme after the pages.
func WithAssets(dir string) Option {
	return func(s *Site) {
		s.assetsDir = dir
	}
}

// New returns an empty site. An empty locale means "en".
func New(name, locale string, opts ...Option) *Site {
	if locale == "" {
		locale = defaultSiteLocale
	}
	s := &Site{
		name:      name,
		locale:    locale,
		outputDir: DefaultOutputDir,
		byID:      make(map[node.PageID]*Page),
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the site display name.
func (s *Site) Name() string { return s.name }

// Locale returns the site language tag.
func (s *Site) Locale() string { return s.locale }

// OutputDir returns the base output path.
func (s *Site) OutputDir() string { return s.outputDir }

// Stylesheets returns the site stylesheets in insertion order.
func (s *Site) Stylesheets() []*Stylesheet {
	return append([]*Stylesheet(nil), s.stylesheets...)
}

// Pages returns the site pages in insertion order.
func (s *Site) Pages() []*Page {
	return append([]*Page(nil), s.pages...)
}

// Page returns the page with the given id.
func (s *Site) Page(id node.PageID) (*Page, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// AddStylesheet appends a stylesheet to be written under <output>/css.
func (s *Site) AddStylesheet(sheet *Stylesheet) *Site {
	s.stylesheets = append(s.stylesheets, sheet)
	return s
}

// AddPage appends a page. Page ids and output directories must be unique.
func (s *Site) AddPage(p *Page) error {
	if p == nil {
		return fmt.Errorf("%w: nil page", ErrInvalidPage)
	}
	if _, ok := s.byID[p.id]; ok {
		return fmt.Errorf("%w: id %q", ErrDuplicatePage, p.id)
	}
	for _, other := range s.pages {
		if other.subpath == p.subpath {
			return fmt.Errorf("%w: pages %q and %q share output directory %q", ErrDuplicatePage, other.id, p.id, p.subpath)
		}
	}
	s.pages = append(s.pages, p)
	s.byID[p.id] = p
	return nil
}

// Href returns the relative link from page from to page to. It reports false
// when either page is unknown to the site.
func (s *Site) Href(from, to node.PageID) (string, bool) {
	src, ok := s.byID[from]
	if !ok {
		return "", false
	}
	dst, ok := s.byID[to]
	if !ok {
		return "", false
	}
	return relativeHref(src.subpath, dst.subpath), true
}

// NavLink returns a link to the page target that renders as inert text on
// target itself. Pages are looked up at render time, so the link may be
// created before target is added; Generate fails with ErrUnknownPage if it
// never is.
func (s *Site) NavLink(target node.PageID, content, currentClass string) *node.RelativeLink {
	s.navTargets = append(s.navTargets, target)
	return node.NewRelativeLink(func(current node.PageID) (string, bool) {
		if current == target {
			return "", false
		}
		if href, ok := s.Href(current, target); ok {
			return href, true
		}
		return "#", true
	}, content, currentClass)
}

func (s *Site) checkNavTargets() error {
	var errs []error
	seen := make(map[node.PageID]bool, len(s.navTargets))
	for _, target := range s.navTargets {
		if seen[target] {
			continue
		}
		seen[target] = true
		if _, ok := s.byID[target]; !ok {
			errs = append(errs, fmt.Errorf("navigation link: %w: %q", ErrUnknownPage, target))
		}
	}
	return errors.Join(errs...)
}

// Generate writes every stylesheet, then every page in insertion order. The
// first failure aborts the run; files written before it are left in place.
// Page content is consumed, so Generate is effective once.
func (s *Site) Generate() error {
	if !isDefaultLocale(s.locale) && !validLocaleSegment(s.locale) {
		return errors.Join(ErrInvalidPath, fmt.Errorf("locale %q", s.locale))
	}
	if err := s.checkNavTargets(); err != nil {
		return err
	}

	base := s.outputDir
	for _, sheet := range s.stylesheets {
		if err := sheet.write(base, s.minifier); err != nil {
			return fmt.Errorf("generate stylesheet %s: %w", sheet.Name(), err)
		}
		s.logger.Debug("stylesheet written", "stylesheet", sheet.Name(), "path", sheet.Path(base))
	}

	for _, p := range s.pages {
		if err := p.Generate(s, base); err != nil {
			return fmt.Errorf("generate page %s: %w", p.id, err)
		}
	}

	if s.assetsDir != "" {
		if err := fsutil.CopyTree(s.assetsDir, filepath.Join(base, themeDir)); err != nil {
			return fmt.Errorf("copy theme assets: %w", err)
		}
	}

	s.logger.Info("site generated", "site", s.name, "locale", s.locale,
		"pages", len(s.pages), "stylesheets", len(s.stylesheets), "output", base)
	return nil
}

func validLocaleSegment(locale string) bool {
	if strings.TrimSpace(locale) == "" || locale == "." || locale == ".." {
		return false
	}
	return !strings.ContainsAny(locale, `/\`)
}
