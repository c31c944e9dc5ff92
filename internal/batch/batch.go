// Package batch pairs image files with their recognized text blocks and
// the audio outputs derived from them. It owns the identifier scheme and
// the editable artifact format that carries text across the manual edit
// pause, so that image -> block -> audio stays a strict 1:1 mapping for
// the whole run.
package batch

import (
	"errors"
	"fmt"
)

// Entry is one discovered image with its run-stable identifier.
type Entry struct {
	ID   string
	Path string
}

// Block is one identifier-tagged text block of the artifact.
type Block struct {
	ID   string
	Text string
}

// ErrNotFound reports a missing input folder or a folder with no
// supported images. It aborts the run before any output is written.
var ErrNotFound = errors.New("not found")

// ParseError reports a structural problem in the edited artifact:
// a malformed marker, a duplicated identifier, or a block set that no
// longer matches what was written. Pairing cannot be reconstructed, so
// callers must abort instead of generating audio.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("artifact line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("artifact: %s", e.Reason)
}
