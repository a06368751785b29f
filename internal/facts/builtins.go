package facts

// Bash builtin commands, in the order `enable -a` reports them. The
// ordering matters for the --all audit group: output rows follow this
// sequence so consecutive runs diff cleanly.
var bashBuiltins = []string{
	".", ":", "[", "alias", "bg", "bind", "break", "builtin", "caller",
	"cd", "command", "compgen", "complete", "compopt", "continue",
	"declare", "dirs", "disown", "echo", "enable", "eval", "exec",
	"exit", "export", "false", "fc", "fg", "getopts", "hash", "help",
	"history", "jobs", "kill", "let", "local", "logout", "mapfile",
	"popd", "printf", "pushd", "pwd", "read", "readarray", "readonly",
	"return", "set", "shift", "shopt", "source", "suspend", "test",
	"times", "trap", "type", "typeset", "ulimit", "umask", "unalias",
	"unset", "wait",
}

// Bash reserved words. Reported by `compgen -k`; not invocable like
// commands but introspection classifies them alongside builtins.
var bashKeywords = []string{
	"if", "then", "else", "elif", "fi", "case", "esac", "for", "select",
	"while", "until", "do", "done", "in", "function", "time", "{", "}",
	"!", "[[", "]]", "coproc",
}

// BuiltinSet returns a fresh membership set of bash builtin names.
func BuiltinSet() map[string]bool {
	set := make(map[string]bool, len(bashBuiltins))
	for _, name := range bashBuiltins {
		set[name] = true
	}
	return set
}

// KeywordSet returns a fresh membership set of bash reserved words.
func KeywordSet() map[string]bool {
	set := make(map[string]bool, len(bashKeywords))
	for _, name := range bashKeywords {
		set[name] = true
	}
	return set
}

// AllBuiltins returns every builtin and keyword name, builtins first,
// as the command list for a full audit.
func AllBuiltins() []string {
	all := make([]string, 0, len(bashBuiltins)+len(bashKeywords))
	all = append(all, bashBuiltins...)
	all = append(all, bashKeywords...)
	return all
}
