// Package desktop models freedesktop "Desktop Entry" files.
//
// The package is the format engine only: it converts between per-section raw
// key/value mappings (as produced by a line-oriented INI reader such as
// package inifile) and a typed Document of Entry, Action and opaque
// sections, and back. It performs no I/O and keeps no state between calls;
// concurrent use on independent documents is safe.
//
// Basic usage:
//
//	doc, err := desktop.ParseDocument(sections)
//	if err != nil {
//		// the document failed as a whole; there is no partial result
//	}
//	entry := doc.Main()
//	name := entry.Name.Get("de")
//	out := doc.Sections()
//
// Parsing and serialization round-trip all semantic content: locale-suffixed
// keys (Name[de]=...) are folded into LocaleMap values and re-expanded,
// semicolon lists keep their trailing-delimiter convention, and keys outside
// the schema, vendor X- extensions included, survive byte-for-byte through
// each record's Extra catch-all. Serialization is deterministic: declared
// fields in a fixed order, then catch-all keys lexically sorted.
//
// Not covered: icon-theme resolution, Exec placeholder (%f, %U, ...)
// expansion, and cross-checking Entry.Actions against the action sections
// actually present. Those are consumers' responsibility.
package desktop
