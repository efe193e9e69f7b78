package desktop

import (
	"strings"

	"github.com/walker84837/rmenu-ng/errors"
)

// Section headers recognized by the classifier. Classification is purely
// lexical: an exact MainHeader is the main entry, an ActionHeaderPrefix
// header is an action keyed by the remainder, everything else is opaque.
const (
	MainHeader         = "Desktop Entry"
	ActionHeaderPrefix = "Desktop Action "
)

// Section is one named block of raw key/value lines, the unit exchanged with
// the line-oriented reader in both directions.
type Section struct {
	Header string
	Fields Fields
}

// docSection is one classified section. Exactly one of entry, action and
// opaque is set; header is retained only for opaque sections, the other two
// re-derive theirs on serialization.
type docSection struct {
	header   string
	entry    *Entry
	actionID string
	action   *Action
	opaque   map[string]string
}

// Document is a whole parsed .desktop file: an ordered sequence of uniquely
// named sections, at most one of which is the main entry. It is built once
// by ParseDocument and treated as immutable afterwards; it exclusively owns
// every record it holds.
type Document struct {
	sections []docSection
}

// ParseDocument classifies and binds a whole file's section sequence. A
// second main entry fails with a duplicate-entry error; an action header
// with an empty ID fails with a missing-action-id error; any body failure
// aborts the whole document. There is no partial result. A duplicate header
// other than the main entry replaces the earlier section, consistent with
// the last-write-wins key policy inherited from the reader.
func ParseDocument(sections []Section) (*Document, error) {
	doc := &Document{}
	index := make(map[string]int, len(sections))

	for _, sec := range sections {
		var bound docSection
		switch {
		case sec.Header == MainHeader:
			if _, dup := index[MainHeader]; dup {
				return nil, errors.DuplicateMainEntry(sec.Header)
			}
			entry, err := parseEntry(sec.Header, sec.Fields.toMap())
			if err != nil {
				return nil, err
			}
			bound = docSection{header: sec.Header, entry: entry}

		case strings.HasPrefix(sec.Header, ActionHeaderPrefix):
			id := sec.Header[len(ActionHeaderPrefix):]
			if id == "" {
				return nil, errors.MissingActionID(sec.Header)
			}
			action, err := parseAction(sec.Header, sec.Fields.toMap())
			if err != nil {
				return nil, err
			}
			bound = docSection{header: sec.Header, actionID: id, action: action}

		default:
			// Opaque passthrough: no interpretation at all, not even
			// boolean or list decoding.
			bound = docSection{header: sec.Header, opaque: sec.Fields.toMap()}
		}

		if at, dup := index[sec.Header]; dup {
			doc.sections[at] = bound
			continue
		}
		index[sec.Header] = len(doc.sections)
		doc.sections = append(doc.sections, bound)
	}

	return doc, nil
}

// Sections serializes the document back into raw section form. It cannot
// fail: malformed states are unrepresentable in the typed model. Action
// headers are re-derived from their IDs; opaque bodies are re-emitted with
// lexically sorted keys.
func (d *Document) Sections() []Section {
	out := make([]Section, 0, len(d.sections))
	for _, s := range d.sections {
		switch {
		case s.entry != nil:
			out = append(out, Section{Header: MainHeader, Fields: s.entry.Fields()})
		case s.action != nil:
			out = append(out, Section{Header: ActionHeaderPrefix + s.actionID, Fields: s.action.Fields()})
		default:
			out = append(out, Section{Header: s.header, Fields: appendExtra(nil, s.opaque)})
		}
	}
	return out
}

// Len returns the number of sections.
func (d *Document) Len() int {
	return len(d.sections)
}

// Main returns the main entry, or nil when the document has none.
func (d *Document) Main() *Entry {
	for _, s := range d.sections {
		if s.entry != nil {
			return s.entry
		}
	}
	return nil
}

// ActionIDs returns the action identifiers in document order.
func (d *Document) ActionIDs() []string {
	var ids []string
	for _, s := range d.sections {
		if s.action != nil {
			ids = append(ids, s.actionID)
		}
	}
	return ids
}

// Action returns the action with the given ID, or nil.
func (d *Document) Action(id string) *Action {
	for _, s := range d.sections {
		if s.action != nil && s.actionID == id {
			return s.action
		}
	}
	return nil
}

// Opaque returns the raw body of the opaque section with the given header,
// or nil when there is no such section.
func (d *Document) Opaque(header string) map[string]string {
	for _, s := range d.sections {
		if s.opaque != nil && s.header == header {
			return s.opaque
		}
	}
	return nil
}

// Headers returns every section header in document order, action headers in
// their re-derived form.
func (d *Document) Headers() []string {
	out := make([]string, 0, len(d.sections))
	for _, s := range d.sections {
		switch {
		case s.entry != nil:
			out = append(out, MainHeader)
		case s.action != nil:
			out = append(out, ActionHeaderPrefix+s.actionID)
		default:
			out = append(out, s.header)
		}
	}
	return out
}
