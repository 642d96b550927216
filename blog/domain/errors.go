package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPostNotFound is returned when no file exists for a requested slug.
	// It is always joined with the underlying fs error.
	ErrPostNotFound = errors.New("post not found")

	// ErrInvalidPagination is returned for a non-positive limit or page, or a negative offset.
	ErrInvalidPagination = errors.New("invalid pagination")
)

// ParseError reports a post file whose name or front matter could not be turned into a Post.
type ParseError struct {
	File     string
	Problems []string
	Err      error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "parse %s", e.File)
	if len(e.Problems) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Problems, "; "))
	} else if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
