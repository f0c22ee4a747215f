package site

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iedon/wikigen/fsutil"
	"github.com/iedon/wikigen/node"
)

// SpecialPrefix marks the id of a special page. Special pages are generated
// like any other page but are left out of navigation.
const SpecialPrefix = "_"

const documentHead = `<!-- auto generated file. DO NOT EDIT -->
<!DOCTYPE html>
<html lang="%s">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s - %s</title>
`

// Page is a single HTML document of the site. Its content is built once, at
// construction, and rendered once by Generate.
type Page struct {
	id          node.PageID
	name        string
	subpath     string
	stylesheets []*Stylesheet
	tree        *node.Tree
}

// PageOption configures a Page.
type PageOption func(*Page) error

// WithSubpath places the page in its own directory below the locale root.
func WithSubpath(subpath string) PageOption {
	return func(p *Page) error {
		norm, err := normalizeSubpath(subpath)
		if err != nil {
			return fmt.Errorf("page %s subpath %q: %w", p.id, subpath, err)
		}
		p.subpath = norm
		return nil
	}
}

// WithStylesheets links stylesheets from the page head, in order.
func WithStylesheets(sheets ...*Stylesheet) PageOption {
	return func(p *Page) error {
		p.stylesheets = append(p.stylesheets, sheets...)
		return nil
	}
}

// NewPage builds the content of a page by running build against a fresh builder.
func NewPage(id node.PageID, name string, build func(*node.Builder), opts ...PageOption) (*Page, error) {
	if strings.TrimSpace(string(id)) == "" {
		return nil, fmt.Errorf("%w: empty id", ErrInvalidPage)
	}
	p := &Page{id: id, name: name}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	tree, err := node.Build(build)
	if err != nil {
		return nil, fmt.Errorf("build page %s: %w", id, err)
	}
	p.tree = tree
	return p, nil
}

// ID returns the page identity.
func (p *Page) ID() node.PageID {
	return p.id
}

// Name returns the display name of the page.
func (p *Page) Name() string {
	return p.name
}

// Subpath returns the page directory below the locale root, or "" for the root page.
func (p *Page) Subpath() string {
	return p.subpath
}

// Special reports whether the page id carries the special page prefix.
func (p *Page) Special() bool {
	return strings.HasPrefix(string(p.id), SpecialPrefix)
}

// Static is not supported: a page only has a rendered form for its own identity.
func (p *Page) Static() (string, error) {
	return "", fmt.Errorf("static form of page %s: %w", p.id, errors.ErrUnsupported)
}

// Dir returns the output directory of the page below basePath.
func (p *Page) Dir(s *Site, basePath string) string {
	return pageDir(basePath, s.locale, p.subpath)
}

// StylesheetHref returns the href used by this page to reference stylesheet name.
func (p *Page) StylesheetHref(name string) string {
	return stylesheetHref(p.subpath, name)
}

// Document renders the complete HTML document. It consumes the page content.
func (p *Page) Document(s *Site) (string, error) {
	content, err := p.tree.Render(p.id)
	if err != nil {
		return "", fmt.Errorf("page %s: %w", p.id, err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, documentHead, s.locale, p.name, s.name)
	for _, sheet := range p.stylesheets {
		fmt.Fprintf(&sb, "<link rel=\"stylesheet\" type=\"text/css\" href=\"%s\">\n", p.StylesheetHref(sheet.Name()))
	}
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString(content)
	sb.WriteString("</body>\n</html>")
	return sb.String(), nil
}

// Generate writes the page as index.html in its output directory.
func (p *Page) Generate(s *Site, basePath string) error {
	dir := p.Dir(s, basePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create page dir %s: %w", dir, err)
	}

	doc, err := p.Document(s)
	if err != nil {
		return err
	}
	if s.minifier != nil {
		if doc, err = s.minifier.MinifyHTML(doc); err != nil {
			return fmt.Errorf("page %s: %w", p.id, err)
		}
	}

	target := filepath.Join(dir, "index.html")
	if err := fsutil.WriteText(target, doc); err != nil {
		return err
	}
	s.logger.Debug("page written", "page", p.id, "path", target)
	return nil
}
