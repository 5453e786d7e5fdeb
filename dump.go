package properties

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/gopasspw/gopass/pkg/debug"
)

// Separator and whitespace characters must be escaped so that a load of the
// output reconstructs the same tokens.
var reMetaChar = regexp.MustCompile(`([:=\s])`)

// Dump serializes the property map to the given destination, one
// "key=value" line per entry in map order. The destination must be either
// an io.Writer or a file path string; any other type fails with
// ErrDestinationType before anything is written.
//
// Path destinations are opened in append-or-create mode and closed before
// Dump returns, on error paths too.
func Dump(props *Map, output any) error {
	switch out := output.(type) {
	case io.Writer:
		return write(props, out)
	case string:
		return DumpFile(props, out)
	default:
		return fmt.Errorf("can only dump data to a path or a writable object, given %v: %w", output, ErrDestinationType)
	}
}

// DumpFile serializes the property map to the file at the given path,
// appending to it if it already exists.
func DumpFile(props *Map, fn string) error {
	fh, err := os.OpenFile(fn, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("%w %s: %v", ErrOpenOutput, fn, err)
	}

	if err := write(props, fh); err != nil {
		_ = fh.Close()

		return err
	}

	debug.V(2).Log("dumped %d properties to %s", props.Len(), fn)

	return fh.Close()
}

// DumpString serializes the property map to a string.
func DumpString(props *Map) string {
	var sb strings.Builder

	// writes to a strings.Builder cannot fail
	_ = write(props, &sb)

	return sb.String()
}

func write(props *Map, w io.Writer) error {
	if props == nil {
		return nil
	}

	for _, k := range props.keys {
		if _, err := fmt.Fprintf(w, "%s=%s\n", escape(k), escape(props.vars[k])); err != nil {
			return fmt.Errorf("failed to write property %q: %w", k, err)
		}
	}

	return nil
}

// escape prefixes every literal separator or whitespace character in the
// token with a backslash, the exact inverse of normalize.
func escape(token string) string {
	return reMetaChar.ReplaceAllString(token, `\$1`)
}
