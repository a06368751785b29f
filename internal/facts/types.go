package facts

// ExternalMatch is one executable found while walking the PATH directory
// list. PathIndex is the 1-based position of the directory that contains
// the match, so shadowing among external binaries stays visible.
type ExternalMatch struct {
	Path      string
	PathIndex int
}

// CommandFacts is a per-query snapshot of every resolution form a shell
// would consider for one command name. It is constructed fresh on each
// lookup and never cached across commands: sourcing an alias file between
// runs legitimately changes the answer.
type CommandFacts struct {
	HasAlias        bool
	AliasDefinition string
	HasFunction     bool
	HasBuiltin      bool
	HasKeyword      bool
	ExternalMatches []ExternalMatch
}

// Empty reports whether no resolution form was found at all.
func (f CommandFacts) Empty() bool {
	return !f.HasAlias && !f.HasFunction && !f.HasBuiltin && !f.HasKeyword && len(f.ExternalMatches) == 0
}

// Provider supplies resolution facts for command names. A failed lookup
// is reported as an error; callers degrade it to an empty snapshot rather
// than aborting a run.
type Provider interface {
	Lookup(name string) (CommandFacts, error)
}
