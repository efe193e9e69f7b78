package desktop

import (
	"github.com/walker84837/rmenu-ng/errors"
)

// Action is the typed model of one [Desktop Action <ID>] section. The action
// ID is a property of the section header, not of the body, so it lives on
// the document section carrying this record rather than in the record.
type Action struct {
	Name  LocaleMap
	Icon  LocaleMap
	Exec  *string
	Extra map[string]string
}

// ParseAction binds the raw body of an action section. Name is required.
func ParseAction(fields Fields) (*Action, error) {
	return parseAction("Desktop Action", fields.toMap())
}

func parseAction(section string, raw map[string]string) (*Action, error) {
	a := &Action{}

	a.Name = ExtractLocalized("Name", raw)
	if a.Name == nil {
		return nil, errors.MissingField(section, "Name")
	}
	a.Icon = ExtractLocalized("Icon", raw)
	a.Exec = takeString(raw, "Exec")

	if len(raw) > 0 {
		a.Extra = raw
	}
	return a, nil
}

// Fields serializes the action body: Name variants, Icon variants, Exec,
// then Extra keys lexically sorted.
func (a *Action) Fields() Fields {
	out := FoldLocalized("Name", a.Name)
	out = append(out, FoldLocalized("Icon", a.Icon)...)
	out = appendString(out, "Exec", a.Exec)
	return appendExtra(out, a.Extra)
}
