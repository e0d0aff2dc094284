package data

// Command identifies a canonical command, either a "family action" pair or a
// standalone action. Command values are comparable and equal iff their canonical
// forms match.
type Command struct {
	Family string `json:"family,omitempty"`
	Action string `json:"action"`
}

// CommandNone represents "no command selected yet".
var CommandNone = Command{}

// IsNone reports whether no command is selected.
func (c Command) IsNone() bool {
	return c.Action == ""
}

// Canonical returns the long-spelling form used on the command line.
func (c Command) Canonical() string {
	if c.Family == "" {
		return c.Action
	}
	return c.Family + " " + c.Action
}

// Tokens returns the number of command line tokens the canonical form occupies.
func (c Command) Tokens() int {
	switch {
	case c.IsNone():
		return 0
	case c.Family == "":
		return 1
	default:
		return 2
	}
}

func (c Command) String() string {
	if c.IsNone() {
		return "none"
	}
	return c.Canonical()
}
