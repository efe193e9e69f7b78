package desktop

import (
	"sort"

	"github.com/walker84837/rmenu-ng/errors"
)

// Entry is the typed model of a [Desktop Entry] section. Field order mirrors
// the standard key table and is the order fields are emitted in. Pointer and
// nil-able fields distinguish "absent" from any present value, including a
// present-but-empty one; absent fields are never emitted. Keys outside the
// schema, vendor X- extensions included, are preserved verbatim in Extra.
type Entry struct {
	Type                 string
	Version              *string
	Name                 LocaleMap
	GenericName          LocaleMap
	NoDisplay            *bool
	Comment              LocaleMap
	Icon                 LocaleMap
	Hidden               *bool
	OnlyShowIn           ListValue
	NotShowIn            ListValue
	DBusActivatable      *bool
	TryExec              *string
	Exec                 *string
	Path                 *string
	Terminal             *bool
	Actions              ListValue
	MimeType             ListValue
	Categories           ListValue
	Implements           ListValue
	Keywords             LocaleMap
	StartupNotify        *bool
	StartupWMClass       *string
	URL                  *string
	PrefersNonDefaultGPU *bool
	Extra                map[string]string
}

// ParseEntry binds the raw body of a [Desktop Entry] section. Name and Type
// are required; every other field is optional. The Actions list is not
// cross-checked against actually-present action sections; that is a caller
// concern.
func ParseEntry(fields Fields) (*Entry, error) {
	return parseEntry(MainHeader, fields.toMap())
}

func parseEntry(section string, raw map[string]string) (*Entry, error) {
	e := &Entry{}

	// Localized fields are folded out of the raw map first, in declared
	// order, so the scalar pass below only ever sees unsuffixed keys.
	e.Name = ExtractLocalized("Name", raw)
	if e.Name == nil {
		return nil, errors.MissingField(section, "Name")
	}
	e.GenericName = ExtractLocalized("GenericName", raw)
	e.Comment = ExtractLocalized("Comment", raw)
	e.Icon = ExtractLocalized("Icon", raw)
	e.Keywords = ExtractLocalized("Keywords", raw)

	typ, ok := takeValue(raw, "Type")
	if !ok {
		return nil, errors.MissingField(section, "Type")
	}
	e.Type = typ
	e.Version = takeString(raw, "Version")

	var err error
	if e.NoDisplay, err = takeBool(raw, section, "NoDisplay"); err != nil {
		return nil, err
	}
	if e.Hidden, err = takeBool(raw, section, "Hidden"); err != nil {
		return nil, err
	}
	if e.DBusActivatable, err = takeBool(raw, section, "DBusActivatable"); err != nil {
		return nil, err
	}
	if e.Terminal, err = takeBool(raw, section, "Terminal"); err != nil {
		return nil, err
	}
	if e.StartupNotify, err = takeBool(raw, section, "StartupNotify"); err != nil {
		return nil, err
	}
	if e.PrefersNonDefaultGPU, err = takeBool(raw, section, "PrefersNonDefaultGPU"); err != nil {
		return nil, err
	}

	e.OnlyShowIn = takeList(raw, "OnlyShowIn")
	e.NotShowIn = takeList(raw, "NotShowIn")
	e.Actions = takeList(raw, "Actions")
	e.MimeType = takeList(raw, "MimeType")
	e.Categories = takeList(raw, "Categories")
	e.Implements = takeList(raw, "Implements")

	e.TryExec = takeString(raw, "TryExec")
	e.Exec = takeString(raw, "Exec")
	e.Path = takeString(raw, "Path")
	e.StartupWMClass = takeString(raw, "StartupWMClass")
	e.URL = takeString(raw, "URL")

	if len(raw) > 0 {
		e.Extra = raw
	}
	return e, nil
}

// Fields serializes the entry back into raw key/value form. Emission order is
// fixed: Type first, then each declared field when present, then Extra keys
// lexically sorted, so output is reproducible across runs.
func (e *Entry) Fields() Fields {
	out := Fields{{Key: "Type", Value: e.Type}}
	out = appendString(out, "Version", e.Version)
	out = append(out, FoldLocalized("Name", e.Name)...)
	out = append(out, FoldLocalized("GenericName", e.GenericName)...)
	out = appendBool(out, "NoDisplay", e.NoDisplay)
	out = append(out, FoldLocalized("Comment", e.Comment)...)
	out = append(out, FoldLocalized("Icon", e.Icon)...)
	out = appendBool(out, "Hidden", e.Hidden)
	out = appendList(out, "OnlyShowIn", e.OnlyShowIn)
	out = appendList(out, "NotShowIn", e.NotShowIn)
	out = appendBool(out, "DBusActivatable", e.DBusActivatable)
	out = appendString(out, "TryExec", e.TryExec)
	out = appendString(out, "Exec", e.Exec)
	out = appendString(out, "Path", e.Path)
	out = appendBool(out, "Terminal", e.Terminal)
	out = appendList(out, "Actions", e.Actions)
	out = appendList(out, "MimeType", e.MimeType)
	out = appendList(out, "Categories", e.Categories)
	out = appendList(out, "Implements", e.Implements)
	out = append(out, FoldLocalized("Keywords", e.Keywords)...)
	out = appendBool(out, "StartupNotify", e.StartupNotify)
	out = appendString(out, "StartupWMClass", e.StartupWMClass)
	out = appendString(out, "URL", e.URL)
	out = appendBool(out, "PrefersNonDefaultGPU", e.PrefersNonDefaultGPU)
	return appendExtra(out, e.Extra)
}

// Shared binder helpers. Every take* helper removes the key it consumed from
// the raw map; whatever survives the full pass becomes the Extra catch-all.

func takeValue(raw map[string]string, key string) (string, bool) {
	v, ok := raw[key]
	if ok {
		delete(raw, key)
	}
	return v, ok
}

func takeString(raw map[string]string, key string) *string {
	if v, ok := takeValue(raw, key); ok {
		return &v
	}
	return nil
}

func takeBool(raw map[string]string, section, key string) (*bool, error) {
	v, ok := takeValue(raw, key)
	if !ok {
		return nil, nil
	}
	b, err := ParseBool(v)
	if err != nil {
		e := errors.InvalidValue(section, key, v)
		e.Cause = err
		return nil, e
	}
	return &b, nil
}

func takeList(raw map[string]string, key string) ListValue {
	v, ok := takeValue(raw, key)
	if !ok {
		return nil
	}
	return ParseList(v)
}

func appendString(out Fields, key string, v *string) Fields {
	if v == nil {
		return out
	}
	return append(out, KeyValue{Key: key, Value: *v})
}

func appendBool(out Fields, key string, v *bool) Fields {
	if v == nil {
		return out
	}
	return append(out, KeyValue{Key: key, Value: FormatBool(*v)})
}

func appendList(out Fields, key string, v ListValue) Fields {
	if v == nil {
		return out
	}
	return append(out, KeyValue{Key: key, Value: v.String()})
}

func appendExtra(out Fields, extra map[string]string) Fields {
	if len(extra) == 0 {
		return out
	}
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, KeyValue{Key: k, Value: extra[k]})
	}
	return out
}
