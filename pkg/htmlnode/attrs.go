package htmlnode

import (
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Attrs is an ordered attribute mapping. Keys iterate in insertion order;
// setting an existing key replaces its value but keeps its position.
//
// A nil *Attrs means "no attribute mapping" and is distinct from an empty one.
type Attrs struct {
	entries *linkedhashmap.Map
}

// NewAttrs creates an attribute mapping from alternating key/value pairs.
// A trailing key without a value is ignored.
func NewAttrs(pairs ...string) *Attrs {
	attrs := &Attrs{entries: linkedhashmap.New()}
	for i := 0; i+1 < len(pairs); i += 2 {
		attrs.Set(pairs[i], pairs[i+1])
	}
	return attrs
}

// Set stores value under key and returns the Attrs for chaining.
func (a *Attrs) Set(key, value string) *Attrs {
	a.init()
	a.entries.Put(key, value)
	return a
}

// Get returns the value stored under key.
func (a *Attrs) Get(key string) (string, bool) {
	if a == nil || a.entries == nil {
		return "", false
	}
	value, ok := a.entries.Get(key)
	if !ok {
		return "", false
	}
	str, _ := value.(string)
	return str, true
}

// Len returns the number of attributes.
func (a *Attrs) Len() int {
	if a == nil || a.entries == nil {
		return 0
	}
	return a.entries.Size()
}

// Keys returns the attribute keys in insertion order.
func (a *Attrs) Keys() []string {
	if a == nil || a.entries == nil {
		return nil
	}
	keys := make([]string, 0, a.entries.Size())
	for _, key := range a.entries.Keys() {
		keys = append(keys, key.(string)) //nolint:forcetypeassert // only Set inserts
	}
	return keys
}

// HTML renders every pair as ` key="value"`, in insertion order.
// Keys and values are emitted verbatim.
func (a *Attrs) HTML() string {
	if a == nil || a.entries == nil {
		return ""
	}

	var builder strings.Builder
	it := a.entries.Iterator()
	for it.Next() {
		builder.WriteByte(' ')
		builder.WriteString(it.Key().(string)) //nolint:forcetypeassert // only Set inserts
		builder.WriteString(`="`)
		builder.WriteString(it.Value().(string)) //nolint:forcetypeassert // only Set inserts
		builder.WriteByte('"')
	}
	return builder.String()
}

func (a *Attrs) init() {
	if a.entries == nil {
		a.entries = linkedhashmap.New()
	}
}
