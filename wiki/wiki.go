// Package wiki turns a directory of markdown documents into site pages.
package wiki

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/iedon/wikigen/node"
	"github.com/iedon/wikigen/renderer"
	"github.com/iedon/wikigen/site"
)

// HomeID is the page id of the home document.
const HomeID node.PageID = "home"

// ErrNoDocuments is returned when the content directory holds no markdown pages.
var ErrNoDocuments = errors.New("no markdown documents")

// Document is a rendered markdown file mapped to a page.
type Document struct {
	Source  string
	ID      node.PageID
	Subpath string
	Title   string
	Result  *renderer.RenderResult
}

// Special reports whether the document is generated as a special page.
func (d Document) Special() bool {
	return strings.HasPrefix(string(d.ID), site.SpecialPrefix)
}

// Layout holds the rendered _Header.md, _Footer.md and _Sidebar.md fragments.
type Layout struct {
	Header  *renderer.RenderResult
	Footer  *renderer.RenderResult
	Sidebar *renderer.RenderResult
}

// Content is everything loaded from a content directory.
type Content struct {
	Documents []Document
	Layout    Layout
}

// Loader reads and renders markdown documents.
type Loader struct {
	renderer *renderer.Renderer
	homeDoc  string
	tag      language.Tag
}

// NewLoader returns a loader. homeDoc names the document placed at the site root;
// tag selects the casing rules for titles derived from file names.
func NewLoader(rend *renderer.Renderer, homeDoc string, tag language.Tag) *Loader {
	return &Loader{renderer: rend, homeDoc: filepath.ToSlash(homeDoc), tag: tag}
}

// Load renders every markdown file below dir, sorted by path.
func (l *Loader) Load(dir string) (*Content, error) {
	files, err := listMarkdown(dir)
	if err != nil {
		return nil, err
	}

	content := &Content{}
	seen := make(map[node.PageID]string)
	for _, rel := range files {
		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", rel, err)
		}
		rendered, err := l.renderer.Render(data)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", rel, err)
		}

		if kind, ok := layoutFragment(rel); ok {
			switch kind {
			case "header":
				content.Layout.Header = rendered
			case "footer":
				content.Layout.Footer = rendered
			case "sidebar":
				content.Layout.Sidebar = rendered
			}
			continue
		}

		doc := l.document(rel, rendered)
		if prev, ok := seen[doc.ID]; ok {
			return nil, fmt.Errorf("%s and %s: %w", prev, rel, site.ErrDuplicatePage)
		}
		seen[doc.ID] = rel
		content.Documents = append(content.Documents, doc)
	}

	if len(content.Documents) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoDocuments)
	}
	return content, nil
}

func (l *Loader) document(rel string, rendered *renderer.RenderResult) Document {
	title := rendered.Title()
	if title == "" {
		title = deriveTitle(rel, l.tag)
	}
	doc := Document{Source: rel, Title: title, Result: rendered}
	if strings.EqualFold(rel, l.homeDoc) {
		doc.ID = HomeID
		return doc
	}

	slug := pageSlug(rel)
	doc.Subpath = slug
	if strings.HasPrefix(filepath.Base(rel), site.SpecialPrefix) {
		doc.ID = node.PageID(site.SpecialPrefix + slug)
	} else {
		doc.ID = node.PageID(slug)
	}
	return doc
}

func listMarkdown(dir string) ([]string, error) {
	files := make([]string, 0, 32)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if isIgnorable(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !isMarkdown(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}
