package classify

// Status tells which resolution mechanism wins for a command name. The
// numeric order doubles as severity for worst-of reporting, so values
// are fixed: comparing two statuses with > is meaningful.
type Status int

const (
	// StatusBuiltin means a shell builtin or reserved word wins and
	// nothing shadows it from above.
	StatusBuiltin Status = iota

	// StatusFunction means a user-defined shell function shadows the
	// command.
	StatusFunction

	// StatusAlias means an alias shadows the command.
	StatusAlias

	// StatusExternal means resolution falls through to an executable
	// on PATH.
	StatusExternal

	// StatusUnknown means no resolution form was found at all.
	StatusUnknown

	// StatusWhitelisted means an alias or function override exists but
	// the name is on the admin's reviewed-exemption list.
	StatusWhitelisted
)

const unknownStr = "unknown"

// String returns the status label used in reports and JSON output.
func (s Status) String() string {
	switch s {
	case StatusBuiltin:
		return "builtin"
	case StatusFunction:
		return "function-override"
	case StatusAlias:
		return "alias-override"
	case StatusExternal:
		return "external"
	case StatusUnknown:
		return unknownStr
	case StatusWhitelisted:
		return "whitelisted-override"
	default:
		return unknownStr
	}
}

// Result is the classification outcome for one command name.
type Result struct {
	Status  Status
	Command string
	Detail  string
}

// Whitelist is the set of command names exempt from override flagging.
// Built once per run, read-only afterwards.
type Whitelist map[string]bool

// NewWhitelist builds a Whitelist from a name list.
func NewWhitelist(names []string) Whitelist {
	w := make(Whitelist, len(names))
	for _, name := range names {
		w[name] = true
	}
	return w
}
