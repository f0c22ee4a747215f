package site

import "errors"

var (
	// ErrDuplicatePage signals that a page id or output directory is already taken.
	ErrDuplicatePage = errors.New("duplicate page")
	// ErrInvalidPage is returned when a page is constructed without an id or name.
	ErrInvalidPage = errors.New("invalid page")
	// ErrUnknownPage is returned by Generate when a navigation link targets a
	// page that was never added to the site.
	ErrUnknownPage = errors.New("unknown page")
)
