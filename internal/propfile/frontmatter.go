// Package propfile reads component prop bags from YAML frontmatter, prop
// files and command-line assignments.
package propfile

import (
	"errors"
	"strings"
)

// ErrUnclosedFrontmatter is returned when a document opens a frontmatter
// block that never closes.
var ErrUnclosedFrontmatter = errors.New("unclosed frontmatter")

const delimiter = "---"

// Split separates a document into frontmatter and markup body. Frontmatter
// is delimited by --- on its own line and must start the document.
func Split(input string) (string, string, error) {
	var rest string
	switch {
	case strings.HasPrefix(input, delimiter+"\n"):
		rest = input[len(delimiter)+1:]
	case strings.HasPrefix(input, delimiter+"\r\n"):
		rest = input[len(delimiter)+2:]
	default:
		return "", input, nil
	}

	pos := 0
	for pos < len(rest) {
		line := rest[pos:]
		next := len(rest)
		if nl := strings.IndexByte(line, '\n'); nl >= 0 {
			line = line[:nl]
			next = pos + nl + 1
		}

		if strings.TrimRight(line, " \t\r") == delimiter {
			return rest[:pos], rest[next:], nil
		}
		pos = next
	}

	return "", "", ErrUnclosedFrontmatter
}
