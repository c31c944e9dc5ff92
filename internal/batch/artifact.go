package batch

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Artifact format v1:
//
//	#meme-ocr-tts artifact v1
//	# comment lines before the first marker are ignored
//
//	== <identifier> ==
//	block text (zero or more lines)
//
// A marker line is exactly "== <identifier> ==" with no spaces in the
// identifier. Body lines that start with "==" or "\" are written with a
// leading "\", which the parser strips, so OCR output can never be
// mistaken for a marker.
const (
	artifactVersion = "1"
	headerPrefix    = "#meme-ocr-tts artifact v"
)

var markerRe = regexp.MustCompile(`^== (\S+) ==$`)

// WriteArtifact serializes blocks into one editable file at path, in the
// order given. Exactly one file is written.
func WriteArtifact(path string, blocks []Block) error {
	var b strings.Builder
	b.WriteString(headerPrefix + artifactVersion + "\n")
	b.WriteString("# One block of text per image. Edit the text under each marker.\n")
	b.WriteString("# Marker lines look like \"== 001-name ==\" and must not be changed.\n")

	for _, blk := range blocks {
		b.WriteString("\n== " + blk.ID + " ==\n")
		if blk.Text == "" {
			continue
		}
		for _, line := range strings.Split(blk.Text, "\n") {
			if strings.HasPrefix(line, "==") || strings.HasPrefix(line, `\`) {
				line = `\` + line
			}
			b.WriteString(line + "\n")
		}
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}

// ParseArtifact recovers the ordered block sequence from artifact data.
// It is a pure function of its input. A malformed marker line or a
// duplicated identifier is a *ParseError.
func ParseArtifact(data string) ([]Block, error) {
	lines := strings.Split(data, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	headerSeen := false
	var blocks []Block
	seen := make(map[string]bool)
	var current *Block
	var body []string

	flush := func() {
		if current == nil {
			return
		}
		current.Text = strings.Join(trimBlankEdges(body), "\n")
		blocks = append(blocks, *current)
		current = nil
		body = nil
	}

	for i, line := range lines {
		lineNo := i + 1

		if !headerSeen {
			if strings.TrimSpace(line) == "" {
				continue
			}
			if !strings.HasPrefix(line, headerPrefix) {
				return nil, &ParseError{Line: lineNo, Reason: "missing artifact version header"}
			}
			if v := strings.TrimPrefix(line, headerPrefix); v != artifactVersion {
				return nil, &ParseError{Line: lineNo, Reason: fmt.Sprintf("unsupported artifact version %q", v)}
			}
			headerSeen = true
			continue
		}

		// Escaped body line: strip one backslash, never a marker.
		if strings.HasPrefix(line, `\`) {
			if current == nil {
				return nil, &ParseError{Line: lineNo, Reason: "text before first marker"}
			}
			body = append(body, line[1:])
			continue
		}

		if m := markerRe.FindStringSubmatch(line); m != nil {
			id := m[1]
			if seen[id] {
				return nil, &ParseError{Line: lineNo, Reason: fmt.Sprintf("duplicate identifier %q", id)}
			}
			seen[id] = true
			flush()
			current = &Block{ID: id}
			continue
		}

		if strings.HasPrefix(line, "==") {
			return nil, &ParseError{Line: lineNo, Reason: fmt.Sprintf("malformed marker line %q", line)}
		}

		if current == nil {
			if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
				continue
			}
			return nil, &ParseError{Line: lineNo, Reason: "text before first marker"}
		}

		body = append(body, line)
	}

	flush()
	return blocks, nil
}

// Reconcile verifies that the parsed blocks still match the entries the
// artifact was written from: same identifiers, same order, nothing added
// or lost during the edit. Any mismatch is a *ParseError so the caller
// fails closed instead of guessing at pairing.
func Reconcile(blocks []Block, entries []Entry) error {
	expected := make(map[string]bool, len(entries))
	for _, e := range entries {
		expected[e.ID] = true
	}

	parsed := make(map[string]bool, len(blocks))
	for _, b := range blocks {
		if !expected[b.ID] {
			return &ParseError{Reason: fmt.Sprintf("unknown identifier %q introduced during edit", b.ID)}
		}
		parsed[b.ID] = true
	}

	for _, e := range entries {
		if !parsed[e.ID] {
			return &ParseError{Reason: fmt.Sprintf("block %q missing, the edit removed it", e.ID)}
		}
	}

	for i, e := range entries {
		if blocks[i].ID != e.ID {
			return &ParseError{Reason: fmt.Sprintf("blocks reordered, expected %q at position %d but found %q", e.ID, i+1, blocks[i].ID)}
		}
	}

	return nil
}

func trimBlankEdges(lines []string) []string {
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}
