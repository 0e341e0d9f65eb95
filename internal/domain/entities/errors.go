package entities

import (
	"fmt"
	"strings"
)

// ParseError reports a malformed patch-list record.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("patch list line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("patch list: %s", e.Message)
}

// DuplicateEntryError reports a file path that appears under two different
// change requests. The same file listed twice for the same CR is tolerated.
type DuplicateEntryError struct {
	FilePath string
	FirstCR  string
	SecondCR string
}

func (e *DuplicateEntryError) Error() string {
	return fmt.Sprintf(
		"file %q is claimed by both %s and %s",
		e.FilePath, e.FirstCR, e.SecondCR,
	)
}

// UnresolvedPathError reports every patch-list file that could not be mapped
// to a sub-repository. It is raised before any commit is attempted, so the
// whole problem set is visible in a single run.
type UnresolvedPathError struct {
	Paths []string
}

func (e *UnresolvedPathError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d file(s) resolve to no repository under the workspace root:", len(e.Paths))
	for _, p := range e.Paths {
		sb.WriteString("\n  - ")
		sb.WriteString(p)
	}
	return sb.String()
}
