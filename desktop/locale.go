package desktop

import (
	"sort"
	"strings"
)

// KeyValue is a single raw key/value line of a section body.
type KeyValue struct {
	Key   string
	Value string
}

// Fields is the ordered raw content of one section as exchanged with the
// line-oriented reader. Keys are unique; readers apply last-write-wins to
// duplicate keys before handing sections to this package.
type Fields []KeyValue

// toMap collapses ordered fields into a mutable working map, applying
// last-write-wins should a caller hand in duplicates anyway.
func (f Fields) toMap() map[string]string {
	m := make(map[string]string, len(f))
	for _, kv := range f {
		m[kv.Key] = kv.Value
	}
	return m
}

// LocaleMap holds the translated variants of one localizable field, keyed by
// locale tag. The empty tag "" is the unsuffixed default variant. A nil map
// means the field is absent; a present field always has at least one variant.
type LocaleMap map[string]string

// Get returns the value for a locale tag.
func (m LocaleMap) Get(locale string) (string, bool) {
	v, ok := m[locale]
	return v, ok
}

// Default returns the unsuffixed variant, or "" when there is none.
func (m LocaleMap) Default() string {
	return m[""]
}

// Locales returns the locale tags in emission order: the default ""
// variant first (when present), then the rest lexically sorted.
func (m LocaleMap) Locales() []string {
	if len(m) == 0 {
		return nil
	}
	tags := make([]string, 0, len(m))
	hasDefault := false
	for tag := range m {
		if tag == "" {
			hasDefault = true
			continue
		}
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	if hasDefault {
		tags = append([]string{""}, tags...)
	}
	return tags
}

// localeSuffix reports whether key addresses the field named prefix, and if
// so under which locale. "Name" matches with locale ""; "Name[de]" matches
// with locale "de". The bracket-or-exact rule means one field prefix can
// never swallow another field's keys ("Name" never matches "GenericName").
func localeSuffix(prefix, key string) (string, bool) {
	if key == prefix {
		return "", true
	}
	if !strings.HasPrefix(key, prefix+"[") || !strings.HasSuffix(key, "]") {
		return "", false
	}
	locale := key[len(prefix)+1 : len(key)-1]
	if locale == "" {
		return "", false
	}
	return locale, true
}

// ExtractLocalized consumes every key of raw that addresses the field named
// prefix, deleting the matched keys from raw and collecting their values by
// locale. It returns nil when no key matched, which is how "field absent" is
// distinguished from any present field. Running it twice with the same
// prefix therefore returns nil the second time: the keys were consumed.
func ExtractLocalized(prefix string, raw map[string]string) LocaleMap {
	var out LocaleMap
	for key, value := range raw {
		locale, ok := localeSuffix(prefix, key)
		if !ok {
			continue
		}
		if out == nil {
			out = LocaleMap{}
		}
		out[locale] = value
		delete(raw, key)
	}
	return out
}

// FoldLocalized is the serialization inverse of ExtractLocalized: it expands
// a locale map back into raw keys, the default variant as prefix and every
// other variant as prefix[locale], in the deterministic order of Locales.
func FoldLocalized(prefix string, m LocaleMap) Fields {
	var out Fields
	for _, locale := range m.Locales() {
		key := prefix
		if locale != "" {
			key = prefix + "[" + locale + "]"
		}
		out = append(out, KeyValue{Key: key, Value: m[locale]})
	}
	return out
}
