package properties

import (
	"sort"

	"github.com/gopasspw/gopass/pkg/debug"
)

// Map is an ordered mapping of property keys to string values.
//
// Keys are unique. Setting an existing key updates its value in place
// without changing the key's position, so iteration order is always
// first-insertion order. This matches the ordered-dict semantics of
// java.util.Properties readers and makes Dump output deterministic.
//
// Fields:
// - keys: Insertion order of the keys
// - vars: Key to value mapping
// - defaults: Optional fallback map consulted by Get for absent keys
//
// Note: Map is not thread-safe. Concurrent access from multiple goroutines
// is not supported. Callers must provide synchronization if needed.
// Independent Maps can be used from independent goroutines freely.
type Map struct {
	keys     []string
	vars     map[string]string
	defaults *Map
}

// NewMap returns an empty property map.
func NewMap() *Map {
	return &Map{
		vars: make(map[string]string, 16),
	}
}

// NewWithDefaults returns an empty property map whose Get falls back to
// the given defaults map when a key is not set. The defaults map is only
// read, never modified, and does not contribute to Keys or Dump output.
//
// This mirrors the defaults chain of java.util.Properties.
func NewWithDefaults(defaults *Map) *Map {
	m := NewMap()
	m.defaults = defaults

	return m
}

// NewFromMap creates a property map from a plain Go map. Since Go maps
// are unordered, keys are inserted in sorted order for determinism.
func NewFromMap(data map[string]string) *Map {
	m := &Map{
		keys: make([]string, 0, len(data)),
		vars: make(map[string]string, len(data)),
	}

	for k := range data {
		m.keys = append(m.keys, k)
	}
	sort.Strings(m.keys)

	for k, v := range data {
		m.vars[k] = v
	}

	return m
}

// Get returns the value of the key.
//
// If the key is not set and the map carries a defaults chain the lookup
// continues there.
//
// Returns (value, true) if the key is found, ("", false) otherwise.
func (m *Map) Get(key string) (string, bool) {
	if m == nil {
		return "", false
	}

	v, found := m.vars[key]
	if found {
		return v, true
	}

	if m.defaults != nil {
		return m.defaults.Get(key)
	}

	return "", false
}

// IsSet returns true if the key was set in this map itself, ignoring the
// defaults chain. Returns true even if the value is the empty string.
func (m *Map) IsSet(key string) bool {
	if m == nil {
		return false
	}

	_, present := m.vars[key]

	return present
}

// Set updates or adds a key.
//
// Behavior:
// - If the key exists, its value is replaced and its position kept
// - If the key is new, it is appended at the end of the iteration order
func (m *Map) Set(key, value string) {
	if m.vars == nil {
		m.vars = make(map[string]string, 16)
	}

	if _, present := m.vars[key]; !present {
		m.keys = append(m.keys, key)
	}

	m.vars[key] = value

	debug.V(3).Log("set %q to %q", key, value)
}

// Unset deletes a key from the map.
//
// If the key doesn't exist this is a no-op. A key shadowed by the
// defaults chain becomes visible again through Get.
func (m *Map) Unset(key string) {
	if m == nil {
		return
	}

	if _, present := m.vars[key]; !present {
		return
	}

	delete(m.vars, key)

	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)

			break
		}
	}
}

// Keys returns all keys in iteration (first-insertion) order.
// The returned slice is a copy and safe to modify.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}

	out := make([]string, len(m.keys))
	copy(out, m.keys)

	return out
}

// Len returns the number of keys set in this map, excluding defaults.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Glob returns all keys matching the given glob pattern, in iteration
// order. The pattern syntax supports double-asterisk (**) patterns with
// '.' as the separator, e.g. "db.*.host".
func (m *Map) Glob(pattern string) ([]string, error) {
	if m == nil {
		return nil, nil
	}

	out := make([]string, 0, len(m.keys))
	for _, k := range m.keys {
		match, err := globMatch(pattern, k)
		if err != nil {
			return nil, err
		}
		if match {
			out = append(out, k)
		}
	}

	return out, nil
}

// Merge merges two maps, using the base map's entries extended and
// overridden by the overlay. Keys only present in the overlay are
// appended after the base keys, in the overlay's order. Neither input
// is modified.
func Merge(base, overlay *Map) *Map {
	out := NewMap()

	if base != nil {
		for _, k := range base.keys {
			out.Set(k, base.vars[k])
		}
	}

	if overlay != nil {
		for _, k := range overlay.keys {
			out.Set(k, overlay.vars[k])
		}
	}

	return out
}
