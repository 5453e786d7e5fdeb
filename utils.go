package properties

import (
	"strings"

	"github.com/gobwas/glob"
)

// globMatch implements a glob matcher that supports double-asterisk (**) patterns.
// Property keys conventionally use '.' as their hierarchy separator, so that is
// the separator the patterns honor.
func globMatch(pattern, s string) (bool, error) {
	g, err := glob.Compile(pattern, '.')
	if err != nil {
		return false, err
	}

	return g.Match(s), nil
}

// splitLines splits raw text into physical lines, accepting LF, CRLF and
// bare CR line endings. A trailing newline does not produce a final empty
// line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")

	return strings.Split(s, "\n")
}
