// Package properties implements a pure Go codec for the java.util.Properties
// text format. It parses a textual stream into an ordered mapping of string
// keys to string values and serializes such a mapping back to the textual
// form, covering the established line syntax: '#' and '!' comments, trailing
// backslash line continuations, '=' / ':' / whitespace key-value separators
// and backslash escaping of separator characters.
//
// The reference for the grammar is
// https://docs.oracle.com/javase/6/docs/api/java/util/Properties.html#load(java.io.Reader)
// with the exception of \uXXXX unicode escape sequences, which are not
// supported. Comments are dropped on load and never reproduced on dump.
//
// # Usage
//
// Use Load with a string or an io.Reader to parse properties data:
//
//	m, err := properties.Load("host = example.com\nport: 8080\n")
//	if err != nil {
//		// only an invalid source type or a read failure can end up here,
//		// the grammar itself is permissive and never fails
//	}
//	host, ok := m.Get("host")
//
// Use Dump with an io.Writer or a file path to serialize a map:
//
//	var buf bytes.Buffer
//	if err := properties.Dump(m, &buf); err != nil { ... }
//
// LoadFile, LoadString, Parse, DumpFile and DumpString are the
// direct-shape entry points for callers that don't need the polymorphic
// Load/Dump surface.
//
// # Ordering
//
// The Map type preserves first-insertion order. Loading the same key twice
// keeps the key's original position and only updates its value, so dump
// output is deterministic and diffs stay small.
//
// # Error Handling
//
// Use errors.Is to detect the two argument-shape error categories:
//
//	if _, err := properties.Load(42); errors.Is(err, properties.ErrSourceType) {
//		// handle invalid source
//	}
//
// There is no "invalid properties syntax" error: every line is classified
// as a comment, a blank line or a key/value pair by best-effort fallback
// rules. I/O failures from the underlying stream or file propagate to the
// caller unmodified; nothing is retried, logged or swallowed.
//
// # Concurrency
//
// Load and Dump keep no state between invocations. They may be called
// concurrently on independent maps and streams. A single Map is not safe
// for concurrent mutation; callers must provide synchronization if needed.
//
// # Known limitations
//
// * \uXXXX unicode escape sequences are not decoded
// * Comments are not round-tripped
// * Values are always strings; no type coercion is performed
package properties
