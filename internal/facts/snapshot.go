package facts

import (
	"os"
	"path/filepath"
	"strings"
)

// Snapshot is a Provider backed by explicit immutable tables. It is
// built once before a run starts and only read afterwards; nothing here
// consults live interpreter state.
type Snapshot struct {
	Aliases   map[string]string
	Functions map[string]bool
	Builtins  map[string]bool
	Keywords  map[string]bool
	PathDirs  []string
}

// NewSnapshot builds a snapshot over the given PATH string with the
// default bash builtin and keyword tables and empty alias/function
// tables. Callers populate aliases and functions via HarvestRC or by
// assigning the maps directly (tests do the latter).
func NewSnapshot(pathEnv string) *Snapshot {
	return &Snapshot{
		Aliases:   make(map[string]string),
		Functions: make(map[string]bool),
		Builtins:  BuiltinSet(),
		Keywords:  KeywordSet(),
		PathDirs:  splitPath(pathEnv),
	}
}

func splitPath(pathEnv string) []string {
	if pathEnv == "" {
		return nil
	}
	dirs := strings.Split(pathEnv, string(os.PathListSeparator))
	for i, dir := range dirs {
		// An empty PATH element means the current directory.
		if dir == "" {
			dirs[i] = "."
		}
	}
	return dirs
}

// Lookup assembles the facts for one command name. The external search
// walks every PATH directory in order and collects every match, not
// just the first, so shadowed binaries are reported too.
func (s *Snapshot) Lookup(name string) (CommandFacts, error) {
	def, hasAlias := s.Aliases[name]
	f := CommandFacts{
		HasAlias:        hasAlias,
		AliasDefinition: def,
		HasFunction:     s.Functions[name],
		HasBuiltin:      s.Builtins[name],
		HasKeyword:      s.Keywords[name],
	}

	// Names containing a separator are invoked by path, not resolved
	// through PATH; leave the external list empty for them.
	if strings.ContainsRune(name, os.PathSeparator) {
		return f, nil
	}

	for i, dir := range s.PathDirs {
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if info.Mode().Perm()&0111 == 0 {
			continue
		}
		f.ExternalMatches = append(f.ExternalMatches, ExternalMatch{
			Path:      candidate,
			PathIndex: i + 1,
		})
	}
	return f, nil
}
