package properties

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/gopasspw/gopass/pkg/debug"
)

// An escaped separator or whitespace character denotes the literal character.
var reEscapedChar = regexp.MustCompile(`\\([:=\s])`)

// Load parses properties data from the given source and returns the parsed
// property map. The source must be either an io.Reader, a string or a []byte
// holding the complete text; any other type fails with ErrSourceType before
// anything is parsed.
//
// Example:
//
//	m, err := properties.Load("user = jane\nhost: example.com\n")
//	if err != nil { ... }
//	v, ok := m.Get("user")
func Load(src any) (*Map, error) {
	switch s := src.(type) {
	case io.Reader:
		return Parse(s)
	case string:
		return LoadString(s), nil
	case []byte:
		return LoadString(string(s)), nil
	default:
		return nil, fmt.Errorf("can only load data from a string or a readable object, given %v: %w", src, ErrSourceType)
	}
}

// Parse reads all properties data from the given io.Reader. Parsing itself
// never fails, the grammar is permissive. Only a read failure is reported,
// and nothing is returned in that case.
func Parse(r io.Reader) (*Map, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read properties data: %w", err)
	}

	return LoadString(string(buf)), nil
}

// LoadString parses properties data held in a string. It never fails.
// Every line is classified as a comment, a blank line or a key/value pair
// by best-effort fallback rules; there is no invalid syntax.
func LoadString(s string) *Map {
	m := NewMap()

	for _, line := range coalesceLines(splitLines(s)) {
		key, value, ok := splitLine(line)
		if !ok {
			debug.V(3).Log("no KV-pair on line: %q", line)

			continue
		}

		debug.V(3).Log("parsed line %q into %q = %q", line, key, value)

		m.Set(key, value)
	}

	return m
}

// LoadFile tries to load properties from the given path.
func LoadFile(fn string) (*Map, error) {
	fh, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer fh.Close() //nolint:errcheck

	m, err := Parse(fh)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", fn, err)
	}

	debug.V(2).Log("loaded %d properties from %s", m.Len(), fn)

	return m, nil
}

// coalesceLines joins physical lines connected by trailing backslash
// continuations into logical lines.
//
// A trailing backslash is detected after stripping surrounding whitespace,
// and the continuation segment is accumulated without it. The line that
// completes a continuation keeps its leading whitespace: that whitespace
// may itself be the key/value separator. A plain line is stripped on both
// sides. An unterminated continuation at the end of input is dropped.
func coalesceLines(lines []string) []string {
	out := make([]string, 0, len(lines))

	var buffer string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasSuffix(trimmed, `\`) {
			buffer += trimmed[:len(trimmed)-1]

			continue
		}

		if buffer != "" {
			buffer += strings.TrimRightFunc(line, unicode.IsSpace)
		} else {
			buffer = trimmed
		}

		out = append(out, buffer)
		buffer = ""
	}

	return out
}

// splitLine classifies one logical line. Comments (leading '#' or '!') and
// blank lines carry no pair. Otherwise the line splits at the first
// unescaped '=' or ':', falling back to the first plain space, falling back
// to the whole line being the key with an empty value.
func splitLine(line string) (string, string, bool) {
	if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
		return "", "", false
	}

	if p := indexUnescapedSep(line); p >= 0 {
		return normalize(line[:p]), normalize(line[p+1:]), true
	}

	if p := strings.IndexByte(line, ' '); p >= 0 {
		return normalize(line[:p]), normalize(line[p:]), true
	}

	return normalize(line), "", true
}

// indexUnescapedSep returns the position of the first '=' or ':' not
// immediately preceded by a backslash, or -1. The separators are ASCII,
// so a byte scan is safe on UTF-8 input.
func indexUnescapedSep(line string) int {
	for i := 0; i < len(line); i++ {
		c := line[i]
		if (c == '=' || c == ':') && (i == 0 || line[i-1] != '\\') {
			return i
		}
	}

	return -1
}

// normalize trims surrounding whitespace from a key or value token and
// replaces each escaped separator or whitespace character with the bare
// character.
func normalize(atom string) string {
	return reEscapedChar.ReplaceAllString(strings.TrimSpace(atom), "$1")
}
