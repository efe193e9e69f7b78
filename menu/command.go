package menu

// Command is one selectable menu item: a stable key, the text shown to the
// user, and the command line dispatched when the item is chosen. The front
// end consumes only these plain strings and has no coupling to the
// desktop-entry engine.
type Command struct {
	Key     string
	Display string
	Exec    string
}

// CommandFromString builds a Command whose key, display text and command
// line are all the given string. Useful for dmenu-style stdin input.
func CommandFromString(s string) Command {
	return Command{Key: s, Display: s, Exec: s}
}
