package renderer

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	htmlRenderer "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/iedon/wikigen/node"
)

// ClassPrefix is prepended to every syntax highlighting class.
const ClassPrefix = "z-"

// Heading represents a heading entry for table-of-contents rendering.
type Heading struct {
	ID    string
	Text  string
	Level int
}

// RenderResult wraps HTML markup and extracted metadata.
type RenderResult struct {
	HTML     []byte
	Headings []Heading
	Meta     map[string]any
}

// Title returns the front matter title, if any.
func (r *RenderResult) Title() string {
	if r == nil || r.Meta == nil {
		return ""
	}
	if title, ok := r.Meta["title"].(string); ok {
		return strings.TrimSpace(title)
	}
	return ""
}

// Node returns the rendered HTML as a content node.
func (r *RenderResult) Node() node.Node {
	return node.Text(string(r.HTML))
}

// Renderer transforms markdown sources into HTML fragments.
type Renderer struct {
	md goldmark.Markdown
}

// New constructs a renderer with GitHub-flavored markdown extensions and syntax highlighting.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.DefinitionList,
			extension.Footnote,
			extension.Typographer,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(highlightOptions()...),
				highlighting.WithWrapperRenderer(codeWrapper),
			),
			meta.Meta,
		),
		goldmark.WithParserOptions(
			parser.WithAttribute(),
		),
		goldmark.WithRendererOptions(
			htmlRenderer.WithUnsafe(),
		),
	)

	return &Renderer{md: md}
}

func highlightOptions() []chromahtml.Option {
	return []chromahtml.Option{
		chromahtml.WithClasses(true),
		chromahtml.WithAllClasses(true),
		chromahtml.ClassPrefix(ClassPrefix),
		chromahtml.PreventSurroundingPre(true),
	}
}

// Render converts the provided markdown into HTML and collects the headings
// and front matter.
func (r *Renderer) Render(src []byte) (*RenderResult, error) {
	reader := text.NewReader(src)
	pctx := parser.NewContext()
	doc := r.md.Parser().Parse(reader, parser.WithContext(pctx))

	headings := make([]Heading, 0, 16)
	slugCounts := make(map[string]int)

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch v := n.(type) {
		case *ast.Heading:
			if entering {
				attr, _ := v.AttributeString("id")
				text := extractText(v, src)
				id := attributeToString(attr)
				if id == "" {
					base := slugify(text)
					count := slugCounts[base]
					if count > 0 {
						id = fmt.Sprintf("%s-%d", base, count)
					} else {
						id = base
					}
					slugCounts[base] = count + 1
					v.SetAttributeString("id", []byte(id))
				} else {
					slugCounts[id]++
				}
				headings = append(headings, Heading{ID: id, Text: text, Level: v.Level})
			}
		}
		return ast.WalkContinue, nil
	})

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, src, doc); err != nil {
		return nil, err
	}

	return &RenderResult{
		HTML:     buf.Bytes(),
		Headings: headings,
		Meta:     meta.Get(pctx),
	}, nil
}

// HighlightCSS returns the CSS rules, one per line, for the named chroma style.
// Unknown style names fall back to chroma's default style.
func HighlightCSS(style string) ([]string, error) {
	var buf bytes.Buffer
	formatter := chromahtml.New(highlightOptions()...)
	if err := formatter.WriteCSS(&buf, styles.Get(style)); err != nil {
		return nil, fmt.Errorf("highlight css %q: %w", style, err)
	}
	rules := make([]string, 0, 64)
	for _, line := range strings.Split(buf.String(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rules = append(rules, line)
	}
	return rules, nil
}

func extractText(root ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if n == root {
			return ast.WalkContinue, nil
		}
		if text, ok := n.(*ast.Text); ok && entering {
			sb.Write(text.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

func attributeToString(value interface{}) string {
	switch v := value.(type) {
	case []byte:
		return string(v)
	case string:
		return v
	default:
		return ""
	}
}

// Slugify lowercases input and keeps letters, digits and combining marks of
// any script, joining words with dashes. It returns an empty string when
// nothing survives.
func Slugify(input string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	var sb strings.Builder
	lastDash := false
	for _, r := range input {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsMark(r):
			sb.WriteRune(r)
			lastDash = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if sb.Len() == 0 || lastDash {
				continue
			}
			sb.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(sb.String(), "-")
}

func slugify(input string) string {
	if slug := Slugify(input); slug != "" {
		return slug
	}
	return "section"
}

func codeWrapper(w util.BufWriter, ctx highlighting.CodeBlockContext, entering bool) {
	lang := "text"
	if raw, ok := ctx.Language(); ok && len(raw) > 0 {
		lang = string(raw)
	}
	lang = string(util.EscapeHTML([]byte(lang)))
	if entering {
		_, _ = fmt.Fprintf(w, `<pre tabindex="0" class="%[2]schroma %[2]scode language-%[1]s" data-lang="%[1]s"><code class="language-%[1]s" data-lang="%[1]s">`, lang, ClassPrefix)
		return
	}
	_, _ = w.WriteString("</code></pre>\n")
}
