package wiki

import (
	"fmt"
	"hash/crc32"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/iedon/wikigen/renderer"
)

// pageSlug derives the output directory name of a document. Names without any
// letter or digit get a checksum of the name so distinct files stay distinct.
func pageSlug(relPath string) string {
	name := strings.TrimSuffix(filepath.ToSlash(relPath), filepath.Ext(relPath))
	name = strings.ReplaceAll(name, "/", "-")
	if slug := renderer.Slugify(name); slug != "" {
		return slug
	}
	return fmt.Sprintf("page-%08x", crc32.ChecksumIEEE([]byte(name)))
}

func deriveTitle(relPath string, tag language.Tag) string {
	name := strings.TrimSuffix(filepath.Base(relPath), filepath.Ext(relPath))
	name = strings.TrimPrefix(name, "_")
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.TrimSpace(name)
	if name == "" {
		return "Untitled"
	}
	return cases.Title(tag, cases.NoLower).String(name)
}

func isMarkdown(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".md")
}

func isIgnorable(name string) bool {
	return strings.HasPrefix(name, ".git")
}

func layoutFragment(relPath string) (string, bool) {
	if strings.Contains(filepath.ToSlash(relPath), "/") {
		return "", false
	}
	switch filepath.Base(relPath) {
	case "_Header.md":
		return "header", true
	case "_Footer.md":
		return "footer", true
	case "_Sidebar.md":
		return "sidebar", true
	}
	return "", false
}
