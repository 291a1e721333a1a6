package cache

import (
	"fmt"
	"sort"
	"strings"
)

// KeySeparator defines the delimiter used between cache key segments.
const KeySeparator = "::"

// defaultKeySerializer builds cache keys from string-like arguments. Filter
// discovery keys are made of a method name plus scope identifiers (store view
// codes, filter type names), so the serializer only needs to handle strings,
// stringers, string slices, and the basic scalar kinds deterministically.
type defaultKeySerializer struct{}

// NewDefaultKeySerializer creates a new instance of the default key serializer.
func NewDefaultKeySerializer() KeySerializer {
	return &defaultKeySerializer{}
}

// SerializeKey builds a cache key from method name and args.
// It produces stable keys across runs and across processes.
func (s *defaultKeySerializer) SerializeKey(method string, args ...any) string {
	if len(args) == 0 {
		return method
	}

	parts := make([]string, 0, len(args)+1)
	parts = append(parts, method)

	for _, arg := range args {
		parts = append(parts, s.serializeValue(arg))
	}

	return strings.Join(parts, KeySeparator)
}

func (s *defaultKeySerializer) serializeValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	case []string:
		// Sorted so the same scope set always produces the same key.
		sorted := append([]string(nil), val...)
		sort.Strings(sorted)
		return fmt.Sprintf("slice[%d]:{%s}", len(sorted), strings.Join(sorted, ","))
	default:
		return fmt.Sprintf("%v", val)
	}
}
