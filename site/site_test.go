package site

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iedon/wikigen/node"
)

func listFiles(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	sort.Strings(files)
	return files
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestGenerateSinglePage(t *testing.T) {
	out := filepath.Join(t.TempDir(), "docs")
	s := New("Wiki", "en", WithOutputDir(out))

	home, err := NewPage("home", "Home", nil)
	require.NoError(t, err)
	require.NoError(t, s.AddPage(home))

	require.NoError(t, s.Generate())
	require.Equal(t, []string{"index.html"}, listFiles(t, out))

	expected := "<!-- auto generated file. DO NOT EDIT -->\n" +
		"<!DOCTYPE html>\n" +
		"<html lang=\"en\">\n" +
		"<head>\n" +
		"<meta charset=\"UTF-8\">\n" +
		"<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n" +
		"<title>Home - Wiki</title>\n" +
		"</head>\n" +
		"<body>\n" +
		"</body>\n" +
		"</html>"
	doc := readFile(t, filepath.Join(out, "index.html"))
	require.Equal(t, expected, doc)
	require.NotContains(t, doc, "<link")
}

func TestGenerateWithStylesheet(t *testing.T) {
	out := filepath.Join(t.TempDir(), "docs")
	s := New("Wiki", "en", WithOutputDir(out))

	main := NewStylesheet("main").Add("body{margin:0}")
	s.AddStylesheet(main)

	home, err := NewPage("home", "Home", nil, WithStylesheets(main))
	require.NoError(t, err)
	require.NoError(t, s.AddPage(home))

	require.NoError(t, s.Generate())
	require.Equal(t, []string{"css/main.css", "index.html"}, listFiles(t, out))

	require.Equal(t, "/* auto generated file. DO NOT EDIT */\nbody{margin:0}\n", readFile(t, filepath.Join(out, "css", "main.css")))
	require.Contains(t, readFile(t, filepath.Join(out, "index.html")),
		"<title>Home - Wiki</title>\n<link rel=\"stylesheet\" type=\"text/css\" href=\"css/main.css\">\n</head>\n")
}

func TestPageDirLayout(t *testing.T) {
	root, err := NewPage("home", "Home", nil)
	require.NoError(t, err)
	about, err := NewPage("about", "About", nil, WithSubpath("about"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		locale   string
		page     *Page
		expected string
	}{
		{name: "default locale root", locale: DefaultLocale, page: root, expected: "base"},
		{name: "en root", locale: "en", page: root, expected: "base"},
		{name: "default locale subpath", locale: DefaultLocale, page: about, expected: filepath.Join("base", "about")},
		{name: "other locale root", locale: "zh-CN", page: root, expected: filepath.Join("base", "zh-CN")},
		{name: "other locale subpath", locale: "zh-CN", page: about, expected: filepath.Join("base", "zh-CN", "about")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("Wiki", tt.locale)
			require.Equal(t, tt.expected, tt.page.Dir(s, "base"))
		})
	}
}

func TestGenerateLocaleAndSubpath(t *testing.T) {
	out := t.TempDir()
	s := New("Wiki", "zh-CN", WithOutputDir(out))
	main := NewStylesheet("main", "p{color:red}")
	s.AddStylesheet(main)

	about, err := NewPage("about", "About", func(b *node.Builder) {
		b.AddParagraph("hi")
	}, WithSubpath("about"), WithStylesheets(main))
	require.NoError(t, err)
	require.NoError(t, s.AddPage(about))
	require.NoError(t, s.Generate())

	require.Equal(t, []string{"css/main.css", "zh-CN/about/index.html"}, listFiles(t, out))
	doc := readFile(t, filepath.Join(out, "zh-CN", "about", "index.html"))
	require.Contains(t, doc, `<html lang="zh-CN">`)
	require.Contains(t, doc, `href="../css/main.css"`)
	require.True(t, strings.HasSuffix(doc, "<body>\n<p>hi</p>\n</body>\n</html>"))
}

func TestStylesheetHref(t *testing.T) {
	root, err := NewPage("home", "Home", nil)
	require.NoError(t, err)
	sub, err := NewPage("faq", "FAQ", nil, WithSubpath("faq"))
	require.NoError(t, err)

	require.Equal(t, "css/main.css", root.StylesheetHref("main"))
	require.Equal(t, "../css/main.css", sub.StylesheetHref("main"))
}

func TestNavLinkMarksCurrentPage(t *testing.T) {
	out := t.TempDir()
	s := New("Wiki", DefaultLocale, WithOutputDir(out))

	menu := func(b *node.Builder) {
		b.UL(node.Attrs{Class: "nav"}, func(b *node.Builder) {
			b.Add(s.NavLink("home", "Home", "current"))
			b.Add(s.NavLink("about", "About", "current"))
			b.Add(s.NavLink("faq", "FAQ", "current"))
		})
	}

	home, err := NewPage("home", "Home", menu)
	require.NoError(t, err)
	about, err := NewPage("about", "About", menu, WithSubpath("about"))
	require.NoError(t, err)
	faq, err := NewPage("faq", "FAQ", menu, WithSubpath("faq"))
	require.NoError(t, err)
	for _, p := range []*Page{home, about, faq} {
		require.NoError(t, s.AddPage(p))
	}
	require.NoError(t, s.Generate())

	homeDoc := readFile(t, filepath.Join(out, "index.html"))
	require.Contains(t, homeDoc, `<li><b class="current">Home</b></li>`)
	require.Contains(t, homeDoc, `<li><a href="about/index.html" target="_blank" rel="noopener noreferrer">About</a></li>`)
	require.Contains(t, homeDoc, `<li><a href="faq/index.html" target="_blank" rel="noopener noreferrer">FAQ</a></li>`)

	aboutDoc := readFile(t, filepath.Join(out, "about", "index.html"))
	require.Contains(t, aboutDoc, `<li><a href="../index.html" target="_blank" rel="noopener noreferrer">Home</a></li>`)
	require.Contains(t, aboutDoc, `<li><b class="current">About</b></li>`)
	require.Contains(t, aboutDoc, `<li><a href="../faq/index.html" target="_blank" rel="noopener noreferrer">FAQ</a></li>`)
}

func TestNavLinkIgnoresPageOrder(t *testing.T) {
	render := func(order []string) string {
		s := New("Wiki", "en", WithOutputDir(t.TempDir()))
		for _, id := range order {
			var opts []PageOption
			if id != "home" {
				opts = append(opts, WithSubpath(id))
			}
			p, err := NewPage(node.PageID(id), id, nil, opts...)
			require.NoError(t, err)
			require.NoError(t, s.AddPage(p))
		}
		return node.Render(s.NavLink("b", "B", ""), "a")
	}
	require.Equal(t, render([]string{"home", "a", "b"}), render([]string{"b", "a", "home"}))
}

func TestNavLinkToUnknownPage(t *testing.T) {
	out := t.TempDir()
	s := New("Wiki", "en", WithOutputDir(out))
	home, err := NewPage("home", "Home", func(b *node.Builder) {
		b.Add(s.NavLink("faq", "FAQ", "current"))
	})
	require.NoError(t, err)
	require.NoError(t, s.AddPage(home))

	link := node.Render(s.NavLink("faq", "FAQ", "current"), "home")
	require.NotContains(t, link, `<b class="current">`)
	require.Equal(t, `<a href="#" target="_blank" rel="noopener noreferrer">FAQ</a>`, link)
	require.Equal(t, `<b class="current">FAQ</b>`, node.Render(s.NavLink("faq", "FAQ", "current"), "faq"))

	err = s.Generate()
	require.ErrorIs(t, err, ErrUnknownPage)
	require.ErrorContains(t, err, `"faq"`)
	require.Empty(t, listFiles(t, out))
}

func TestGenerateTwiceReportsConsumedContent(t *testing.T) {
	s := New("Wiki", "en", WithOutputDir(t.TempDir()))
	home, err := NewPage("home", "Home", func(b *node.Builder) {
		b.AddParagraph("x")
	})
	require.NoError(t, err)
	require.NoError(t, s.AddPage(home))

	require.NoError(t, s.Generate())
	require.ErrorIs(t, s.Generate(), node.ErrTreeConsumed)
}

func TestNewPageValidation(t *testing.T) {
	_, err := NewPage("", "Empty", nil)
	require.ErrorIs(t, err, ErrInvalidPage)

	_, err = NewPage("h", "Heading", func(b *node.Builder) {
		b.AddHeading("bad", 0)
	})
	require.ErrorIs(t, err, node.ErrInvalidArgument)

	for _, sub := range []string{"a/b", "..", "", "-x"} {
		_, err = NewPage("p", "P", nil, WithSubpath(sub))
		require.ErrorIs(t, err, ErrInvalidPath, sub)
	}
	_, err = NewPage("p", "P", nil, WithSubpath("css"))
	require.ErrorIs(t, err, ErrReservedPath)

	p, err := NewPage("p", "P", nil, WithSubpath("/guide/"))
	require.NoError(t, err)
	require.Equal(t, "guide", p.Subpath())
}

func TestAddPageRejectsDuplicates(t *testing.T) {
	s := New("Wiki", "en")
	a, err := NewPage("a", "A", nil)
	require.NoError(t, err)
	require.NoError(t, s.AddPage(a))

	dupID, err := NewPage("a", "Again", nil, WithSubpath("again"))
	require.NoError(t, err)
	require.ErrorIs(t, s.AddPage(dupID), ErrDuplicatePage)

	dupDir, err := NewPage("b", "B", nil)
	require.NoError(t, err)
	require.ErrorIs(t, s.AddPage(dupDir), ErrDuplicatePage)
}

func TestSpecialPageAndStaticForm(t *testing.T) {
	special, err := NewPage("_404", "Not Found", nil, WithSubpath("404"))
	require.NoError(t, err)
	require.True(t, special.Special())

	_, err = special.Static()
	require.True(t, errors.Is(err, errors.ErrUnsupported))
}

func TestGenerateFailsOnUnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "docs")
	require.NoError(t, os.WriteFile(blocker, []byte("file"), 0o644))

	s := New("Wiki", "en", WithOutputDir(blocker))
	home, err := NewPage("home", "Home", nil)
	require.NoError(t, err)
	require.NoError(t, s.AddPage(home))
	require.Error(t, s.Generate())
}

func TestGenerateRejectsLocaleWithSeparator(t *testing.T) {
	s := New("Wiki", "../x", WithOutputDir(t.TempDir()))
	require.ErrorIs(t, s.Generate(), ErrInvalidPath)
}

type upperMinifier struct{}

func (upperMinifier) MinifyHTML(raw string) (string, error) { return strings.ToUpper(raw), nil }
func (upperMinifier) MinifyCSS(raw string) (string, error)  { return strings.ToUpper(raw), nil }

func TestGenerateAppliesMinifierAndCopiesAssets(t *testing.T) {
	assets := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(assets, "app.js"), []byte("x"), 0o644))

	out := t.TempDir()
	s := New("Wiki", "en", WithOutputDir(out), WithMinifier(upperMinifier{}), WithAssets(assets))
	s.AddStylesheet(NewStylesheet("main", "a{}"))
	home, err := NewPage("home", "Home", nil)
	require.NoError(t, err)
	require.NoError(t, s.AddPage(home))
	require.NoError(t, s.Generate())

	require.Equal(t, []string{"css/main.css", "index.html", "theme/app.js"}, listFiles(t, out))
	require.Contains(t, readFile(t, filepath.Join(out, "index.html")), "<TITLE>HOME - WIKI</TITLE>")
	require.Contains(t, readFile(t, filepath.Join(out, "css", "main.css")), "A{}")
}
