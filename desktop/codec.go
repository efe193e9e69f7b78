package desktop

import (
	"strings"

	"github.com/walker84837/rmenu-ng/errors"
)

// ListValue is an ordered semicolon-delimited list value, e.g.
// "AudioVideo;Video;Player;". No element is ever empty. A nil ListValue
// means the field is absent; a non-nil empty list is a present field with
// no items and encodes to "".
type ListValue []string

// ParseList decodes a semicolon-delimited value. Empty fragments, including
// the one produced by a trailing or doubled delimiter, are dropped. Decoding
// never fails; any input text is representable.
func ParseList(text string) ListValue {
	list := ListValue{}
	for _, part := range strings.Split(text, ";") {
		if part != "" {
			list = append(list, part)
		}
	}
	return list
}

// String encodes the list. An empty list yields "". A non-empty list is
// joined with ";" and always carries a trailing delimiter, matching what
// desktop-entry consumers expect on disk.
func (l ListValue) String() string {
	if len(l) == 0 {
		return ""
	}
	joined := strings.Join(l, ";")
	if !strings.HasSuffix(joined, ";") {
		joined += ";"
	}
	return joined
}

// ParseBool decodes a desktop-entry boolean. "true" and "1" are true,
// "false" and "0" are false (case-insensitive); anything else fails.
// Absence of a key is not a decode failure and is handled by callers.
func ParseBool(text string) (bool, error) {
	switch strings.ToLower(text) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, errors.New(errors.PhaseParse, errors.KindInvalidValue).
		Value(text).
		Detail("invalid boolean %q", text).
		Build()
}

// FormatBool encodes a boolean as "true" or "false".
func FormatBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
