package wiki

import (
	"fmt"

	"github.com/yuin/goldmark/util"

	"github.com/iedon/wikigen/node"
	"github.com/iedon/wikigen/renderer"
	"github.com/iedon/wikigen/site"
)

// CurrentClass styles the navigation entry of the page being viewed.
const CurrentClass = "current"

// tocMinHeadings is the number of headings a document needs before it gets a
// table of contents.
const tocMinHeadings = 2

// Build adds one page per document to s. Every page shares a single
// navigation menu, which links all regular documents and marks the current
// one through the page identity passed at render time.
func Build(s *site.Site, content *Content, sheets ...*site.Stylesheet) error {
	nav, err := node.UL(node.Attrs{Class: "nav"}, func(b *node.Builder) {
		for _, doc := range content.Documents {
			if doc.Special() {
				continue
			}
			b.Add(s.NavLink(doc.ID, doc.Title, CurrentClass))
		}
	})
	if err != nil {
		return fmt.Errorf("build navigation: %w", err)
	}

	for _, doc := range content.Documents {
		opts := []site.PageOption{site.WithStylesheets(sheets...)}
		if doc.Subpath != "" {
			opts = append(opts, site.WithSubpath(doc.Subpath))
		}
		page, err := site.NewPage(doc.ID, doc.Title, func(b *node.Builder) {
			addFragment(b, "header", content.Layout.Header)
			b.Add(nav)
			addTOC(b, doc.Result)
			b.Div(node.Attrs{Class: "content"}, func(b *node.Builder) {
				b.Add(doc.Result.Node())
			})
			addFragment(b, "sidebar", content.Layout.Sidebar)
			addFragment(b, "footer", content.Layout.Footer)
		}, opts...)
		if err != nil {
			return fmt.Errorf("page %s: %w", doc.Source, err)
		}
		if err := s.AddPage(page); err != nil {
			return fmt.Errorf("page %s: %w", doc.Source, err)
		}
	}
	return nil
}

func addTOC(b *node.Builder, result *renderer.RenderResult) {
	if result == nil || len(result.Headings) < tocMinHeadings {
		return
	}
	b.UL(node.Attrs{Class: "toc"}, func(b *node.Builder) {
		for _, h := range result.Headings {
			href := string(util.EscapeHTML([]byte("#" + h.ID)))
			text := string(util.EscapeHTML([]byte(h.Text)))
			b.Add(node.LocalA(href, text, node.Attrs{Class: fmt.Sprintf("toc-h%d", h.Level)}))
		}
	})
}

func addFragment(b *node.Builder, class string, fragment *renderer.RenderResult) {
	if fragment == nil {
		return
	}
	b.Div(node.Attrs{Class: class}, func(b *node.Builder) {
		b.Add(fragment.Node())
	})
}
