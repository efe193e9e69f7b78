package desktop

import (
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/walker84837/rmenu-ng/errors"
)

func TestParseEntry(t *testing.T) {
	fields := Fields{
		{"Type", "Application"},
		{"Version", "1.0"},
		{"Name", "Foo Viewer"},
		{"Name[de]", "Foo Betrachter"},
		{"GenericName", "Viewer"},
		{"Comment", "The best viewer for Foo objects available!"},
		{"TryExec", "fooview"},
		{"Exec", "fooview %F"},
		{"Icon", "fooview"},
		{"Terminal", "false"},
		{"StartupNotify", "1"},
		{"MimeType", "image/x-foo;"},
		{"Categories", "Graphics;Viewer;"},
		{"Actions", "Gallery;Create;"},
		{"Keywords", "foo;viewer;"},
		{"Keywords[de]", "foo;betrachter;"},
		{"X-Custom-Field", "value"},
		{"X-KDE-StartupNotify", "whatever"},
	}

	e, err := ParseEntry(fields)
	if err != nil {
		t.Fatalf("ParseEntry failed: %v", err)
	}

	if e.Type != "Application" {
		t.Errorf("Type = %q", e.Type)
	}
	if e.Version == nil || *e.Version != "1.0" {
		t.Errorf("Version = %v", e.Version)
	}
	if got := e.Name.Default(); got != "Foo Viewer" {
		t.Errorf("Name default = %q", got)
	}
	if v, _ := e.Name.Get("de"); v != "Foo Betrachter" {
		t.Errorf("Name[de] = %q", v)
	}
	if e.GenericName.Default() != "Viewer" {
		t.Errorf("GenericName = %#v", e.GenericName)
	}
	if e.Terminal == nil || *e.Terminal {
		t.Errorf("Terminal = %v", e.Terminal)
	}
	if e.StartupNotify == nil || !*e.StartupNotify {
		t.Errorf("StartupNotify = %v", e.StartupNotify)
	}
	if !reflect.DeepEqual(e.MimeType, ListValue{"image/x-foo"}) {
		t.Errorf("MimeType = %#v", e.MimeType)
	}
	if !reflect.DeepEqual(e.Actions, ListValue{"Gallery", "Create"}) {
		t.Errorf("Actions = %#v", e.Actions)
	}
	if v, _ := e.Keywords.Get("de"); v != "foo;betrachter;" {
		t.Errorf("Keywords[de] = %q", v)
	}
	want := map[string]string{
		"X-Custom-Field":      "value",
		"X-KDE-StartupNotify": "whatever",
	}
	if !reflect.DeepEqual(e.Extra, want) {
		t.Errorf("Extra = %#v, want %#v", e.Extra, want)
	}

	// absent fields stay absent
	if e.NoDisplay != nil || e.Hidden != nil || e.URL != nil || e.OnlyShowIn != nil {
		t.Error("absent fields must be nil")
	}
}

func TestParseEntry_Errors(t *testing.T) {
	tests := []struct {
		name   string
		fields Fields
		kind   errors.Kind
		key    string
	}{
		{
			"missing_name",
			Fields{{"Type", "Application"}, {"Exec", "x"}},
			errors.KindFieldMissing, "Name",
		},
		{
			"missing_type",
			Fields{{"Name", "Foo"}},
			errors.KindFieldMissing, "Type",
		},
		{
			"invalid_boolean",
			Fields{{"Type", "Application"}, {"Name", "Foo"}, {"Hidden", "yes"}},
			errors.KindInvalidValue, "Hidden",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEntry(tt.fields)
			if err == nil {
				t.Fatal("expected error")
			}
			if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseParse, Kind: tt.kind}) {
				t.Errorf("error kind mismatch: %v", err)
			}
			var fe *errors.Error
			if !stderrors.As(err, &fe) || fe.Key != tt.key {
				t.Errorf("error key = %v, want %q", err, tt.key)
			}
		})
	}
}

func TestParseEntry_InvalidBooleanCarriesCause(t *testing.T) {
	_, err := ParseEntry(Fields{{"Type", "Application"}, {"Name", "Foo"}, {"Hidden", "yes"}})
	if err == nil {
		t.Fatal("expected error")
	}
	var fe *errors.Error
	if !stderrors.As(err, &fe) {
		t.Fatalf("error type = %T", err)
	}
	if fe.Cause == nil {
		t.Fatal("field error lost its cause")
	}
	var inner *errors.Error
	if !stderrors.As(fe.Cause, &inner) || inner.Value != "yes" {
		t.Errorf("cause = %v, want boolean decode error for %q", fe.Cause, "yes")
	}
}

func TestEntry_Fields_Order(t *testing.T) {
	ver := "1.1"
	hidden := false
	e := &Entry{
		Type:    "Application",
		Version: &ver,
		Name:    LocaleMap{"": "Foo", "de": "Fu"},
		Hidden:  &hidden,
		Actions: ListValue{"Gallery"},
		Extra:   map[string]string{"X-B": "2", "X-A": "1"},
	}

	got := e.Fields()
	want := Fields{
		{"Type", "Application"},
		{"Version", "1.1"},
		{"Name", "Foo"},
		{"Name[de]", "Fu"},
		{"Hidden", "false"},
		{"Actions", "Gallery;"},
		{"X-A", "1"},
		{"X-B", "2"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() = %#v, want %#v", got, want)
	}
}

func TestEntry_RoundTrip(t *testing.T) {
	fields := Fields{
		{"Type", "Link"},
		{"Name", "Homepage"},
		{"Name[fr]", "Page d'accueil"},
		{"URL", "https://example.org"},
		{"NoDisplay", "true"},
		{"X-Vendor-Thing", "kept;as-is;"},
	}
	e, err := ParseEntry(fields)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	back, err := ParseEntry(e.Fields())
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if !reflect.DeepEqual(e, back) {
		t.Errorf("round trip mismatch:\n first %#v\nsecond %#v", e, back)
	}
}

func TestEntry_PresentEmptyValues(t *testing.T) {
	// A key present with an empty value is not the same as an absent key
	// and must survive a round trip.
	fields := Fields{
		{"Type", "Application"},
		{"Name", "Foo"},
		{"TryExec", ""},
		{"MimeType", ""},
	}
	e, err := ParseEntry(fields)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if e.TryExec == nil || *e.TryExec != "" {
		t.Errorf("TryExec = %v, want present empty", e.TryExec)
	}
	if e.MimeType == nil || len(e.MimeType) != 0 {
		t.Errorf("MimeType = %#v, want present empty list", e.MimeType)
	}

	out := e.Fields()
	found := map[string]string{}
	for _, kv := range out {
		found[kv.Key] = kv.Value
	}
	if v, ok := found["TryExec"]; !ok || v != "" {
		t.Errorf("TryExec not re-emitted: %#v", out)
	}
	if v, ok := found["MimeType"]; !ok || v != "" {
		t.Errorf("MimeType not re-emitted: %#v", out)
	}
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction(Fields{
		{"Name", "Browse Gallery"},
		{"Name[de]", "Galerie durchsuchen"},
		{"Exec", "fooview --gallery"},
		{"X-Extra", "v"},
	})
	if err != nil {
		t.Fatalf("ParseAction failed: %v", err)
	}
	if a.Name.Default() != "Browse Gallery" {
		t.Errorf("Name = %#v", a.Name)
	}
	if a.Exec == nil || *a.Exec != "fooview --gallery" {
		t.Errorf("Exec = %v", a.Exec)
	}
	if !reflect.DeepEqual(a.Extra, map[string]string{"X-Extra": "v"}) {
		t.Errorf("Extra = %#v", a.Extra)
	}

	got := a.Fields()
	want := Fields{
		{"Name", "Browse Gallery"},
		{"Name[de]", "Galerie durchsuchen"},
		{"Exec", "fooview --gallery"},
		{"X-Extra", "v"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() = %#v, want %#v", got, want)
	}
}

func TestParseAction_MissingName(t *testing.T) {
	_, err := ParseAction(Fields{{"Exec", "fooview --gallery"}})
	if err == nil {
		t.Fatal("expected error")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseParse, Kind: errors.KindFieldMissing}) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseEntry_DuplicateKeysLastWins(t *testing.T) {
	// Duplicate keys within one section follow the reader's documented
	// last-write-wins policy.
	e, err := ParseEntry(Fields{
		{"Type", "Application"},
		{"Name", "First"},
		{"Name", "Second"},
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if e.Name.Default() != "Second" {
		t.Errorf("Name = %q, want last write", e.Name.Default())
	}
}
