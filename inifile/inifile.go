// Package inifile is the line-oriented text layer for .desktop files.
//
// It turns raw bytes into the ordered (header, key/value) section sequence
// the desktop package consumes, and renders that sequence back to text.
// Blank lines and comment lines are dropped by the underlying INI reader;
// duplicate keys within a section follow last-write-wins, and that policy is
// inherited by everything downstream.
package inifile

import (
	"bytes"
	"os"
	"strings"

	ini "gopkg.in/ini.v1"

	"github.com/walker84837/rmenu-ng/desktop"
	"github.com/walker84837/rmenu-ng/errors"
)

// loadOptions tunes the reader for the desktop-entry dialect: ';' is the
// list delimiter and must survive inside values, '=' is the only key/value
// delimiter, and trailing backslashes are plain value text.
var loadOptions = ini.LoadOptions{
	IgnoreInlineComment: true,
	IgnoreContinuation:  true,
	KeyValueDelimiters:  "=",
}

// Parse reads INI-style text into an ordered section sequence. The unnamed
// default section is skipped when empty, which is the normal case for
// .desktop files where the first line is already a [Section Header].
func Parse(data []byte) ([]desktop.Section, error) {
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, errors.ReadFailed("malformed ini text", err)
	}

	var sections []desktop.Section
	for _, sec := range f.Sections() {
		keys := sec.Keys()
		if sec.Name() == ini.DefaultSection && len(keys) == 0 {
			continue
		}
		fields := make(desktop.Fields, 0, len(keys))
		for _, key := range keys {
			fields = append(fields, desktop.KeyValue{Key: key.Name(), Value: key.Value()})
		}
		sections = append(sections, desktop.Section{Header: sec.Name(), Fields: fields})
	}
	return sections, nil
}

// Render writes a section sequence back to INI-style text. The writer emits
// Key=Value lines verbatim: the .desktop dialect has no quoting, so values
// containing ';', '#' or '"' must reach the file untouched. Only headers,
// keys or values that cannot be expressed on a single line are rejected.
func Render(sections []desktop.Section) ([]byte, error) {
	var buf bytes.Buffer
	for i, sec := range sections {
		if sec.Header == "" || strings.ContainsAny(sec.Header, "[]\n") {
			return nil, errors.New(errors.PhaseSerialize, errors.KindUnclassifiable).
				Section(sec.Header).
				Detail("cannot render section header").
				Build()
		}
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteByte('[')
		buf.WriteString(sec.Header)
		buf.WriteString("]\n")
		for _, kv := range sec.Fields {
			if kv.Key == "" || strings.ContainsAny(kv.Key, "=\n") || strings.ContainsRune(kv.Value, '\n') {
				return nil, errors.New(errors.PhaseSerialize, errors.KindInvalidValue).
					Section(sec.Header).
					Key(kv.Key).
					Value(kv.Value).
					Detail("cannot render key/value line").
					Build()
			}
			buf.WriteString(kv.Key)
			buf.WriteByte('=')
			buf.WriteString(kv.Value)
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes(), nil
}

// Decode parses text all the way into a typed Document.
func Decode(data []byte) (*desktop.Document, error) {
	sections, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return desktop.ParseDocument(sections)
}

// Encode serializes a Document back to text.
func Encode(doc *desktop.Document) ([]byte, error) {
	return Render(doc.Sections())
}

// Load reads and decodes a .desktop file.
func Load(path string) (*desktop.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ReadFailed("read "+path, err)
	}
	return Decode(data)
}

// Save encodes a Document and writes it to path.
func Save(path string, doc *desktop.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
