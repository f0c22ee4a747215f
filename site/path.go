package site

import (
	"errors"
	"path/filepath"
	"strings"
)

var reservedRouteNames = map[string]struct{}{
	"css":   {},
	"theme": {},
}

var (
	// ErrInvalidPath is returned when a page subpath fails validation.
	ErrInvalidPath = errors.New("invalid path")
	// ErrReservedPath indicates the caller attempted to use a reserved route name.
	ErrReservedPath = errors.New("reserved path")
)

// normalizeSubpath validates a page subpath. Pages live at most one directory
// below the locale root, so the subpath must be a single path segment.
func normalizeSubpath(input string) (string, error) {
	candidate := strings.TrimSpace(input)
	candidate = strings.ReplaceAll(candidate, "\\", "/")
	candidate = strings.Trim(candidate, "/")
	if candidate == "" {
		return "", errors.Join(ErrInvalidPath, errors.New("empty subpath"))
	}
	if strings.Contains(candidate, "\x00") {
		return "", errors.Join(ErrInvalidPath, errors.New("contains null byte"))
	}
	if strings.Contains(candidate, "/") {
		return "", errors.Join(ErrInvalidPath, errors.New("subpath must be a single segment"))
	}
	if candidate == "." || candidate == ".." {
		return "", errors.Join(ErrInvalidPath, errors.New("invalid path segment"))
	}
	if strings.HasPrefix(candidate, "-") {
		return "", errors.Join(ErrInvalidPath, errors.New("path segment cannot start with '-'"))
	}
	if isReservedPath(candidate) {
		return "", ErrReservedPath
	}
	return candidate, nil
}

func isReservedPath(segment string) bool {
	_, ok := reservedRouteNames[strings.ToLower(segment)]
	return ok
}

// isDefaultLocale reports whether pages for locale are written at the base path.
func isDefaultLocale(locale string) bool {
	return locale == DefaultLocale || locale == defaultSiteLocale
}

// relativeHref returns the link from a page at subpath from to the page at
// subpath to, under the single-level layout.
func relativeHref(from, to string) string {
	target := "index.html"
	if to != "" {
		target = to + "/index.html"
	}
	if from == "" {
		return target
	}
	return "../" + target
}

func stylesheetHref(subpath, name string) string {
	href := "css/" + name + ".css"
	if subpath != "" {
		return "../" + href
	}
	return href
}

func pageDir(base, locale, subpath string) string {
	dir := base
	if !isDefaultLocale(locale) {
		dir = filepath.Join(dir, locale)
	}
	if subpath != "" {
		dir = filepath.Join(dir, subpath)
	}
	return dir
}
