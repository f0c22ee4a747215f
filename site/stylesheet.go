package site

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/iedon/wikigen/fsutil"
)

const cssHeader = "/* auto generated file. DO NOT EDIT */"

// Stylesheet is a named, append-only list of raw CSS rules.
type Stylesheet struct {
	name  string
	rules []string
}

// NewStylesheet returns a stylesheet holding rules in order.
func NewStylesheet(name string, rules ...string) *Stylesheet {
	return &Stylesheet{name: name, rules: append([]string(nil), rules...)}
}

// Name returns the stylesheet name, which is also its file name without extension.
func (c *Stylesheet) Name() string {
	return c.name
}

// Add appends rules to the stylesheet.
func (c *Stylesheet) Add(rules ...string) *Stylesheet {
	c.rules = append(c.rules, rules...)
	return c
}

// Rules returns a copy of the accumulated rules.
func (c *Stylesheet) Rules() []string {
	return append([]string(nil), c.rules...)
}

// Text renders the stylesheet file contents.
func (c *Stylesheet) Text() string {
	var sb strings.Builder
	sb.WriteString(cssHeader)
	sb.WriteByte('\n')
	for _, rule := range c.rules {
		sb.WriteString(rule)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Path returns the output file of the stylesheet below basePath.
func (c *Stylesheet) Path(basePath string) string {
	return filepath.Join(basePath, "css", c.name+".css")
}

// Generate writes the stylesheet to <basePath>/css/<name>.css.
func (c *Stylesheet) Generate(basePath string) error {
	return c.write(basePath, nil)
}

func (c *Stylesheet) write(basePath string, minifier Minifier) error {
	if err := validateStylesheetName(c.name); err != nil {
		return err
	}
	text := c.Text()
	if minifier != nil {
		minified, err := minifier.MinifyCSS(text)
		if err != nil {
			return fmt.Errorf("stylesheet %s: %w", c.name, err)
		}
		text = minified
	}
	return fsutil.WriteText(c.Path(basePath), text)
}

func validateStylesheetName(name string) error {
	if strings.TrimSpace(name) == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return errors.Join(ErrInvalidPath, fmt.Errorf("stylesheet name %q", name))
	}
	return nil
}
