package classify

import (
	"fmt"
	"strings"

	"github.com/cmdshadow/cmdshadow/internal/facts"
)

// chainSep joins the entries of a detection chain in the detail text.
const chainSep = " | "

// whitelistPrefix marks a detail whose override was reviewed and
// acknowledged by the admin.
const whitelistPrefix = "whitelisted: "

// Classify maps one command's resolution facts to a status following
// shell precedence: alias beats function beats builtin/keyword beats
// external, and a name with no facts at all is unknown. It is pure and
// total; there is no error path.
//
// The detail is the full detection chain, every form found, not just
// the winner. The audit's value is showing what wins and what it
// shadows.
func Classify(command string, f facts.CommandFacts, whitelist Whitelist) Result {
	status := baseStatus(f)
	detail := detectionChain(f)

	if (status == StatusAlias || status == StatusFunction) && whitelist[command] {
		status = StatusWhitelisted
		detail = whitelistPrefix + detail
	}

	return Result{Status: status, Command: command, Detail: detail}
}

func baseStatus(f facts.CommandFacts) Status {
	switch {
	case f.HasAlias:
		return StatusAlias
	case f.HasFunction:
		return StatusFunction
	case f.HasBuiltin || f.HasKeyword:
		return StatusBuiltin
	case len(f.ExternalMatches) > 0:
		return StatusExternal
	default:
		return StatusUnknown
	}
}

func detectionChain(f facts.CommandFacts) string {
	var chain []string
	if f.HasAlias {
		chain = append(chain, "alias: "+StripQuotes(f.AliasDefinition))
	}
	if f.HasFunction {
		chain = append(chain, "function")
	}
	if f.HasBuiltin {
		chain = append(chain, "builtin")
	}
	if f.HasKeyword {
		chain = append(chain, "keyword")
	}
	for _, m := range f.ExternalMatches {
		chain = append(chain, fmt.Sprintf("%s (PATH position %d)", m.Path, m.PathIndex))
	}
	return strings.Join(chain, chainSep)
}

// StripQuotes removes one surrounding layer of backtick, then single,
// then double quotes from each end of a definition. One pass per quote
// character, never recursive: embedded quoting inside the definition is
// preserved verbatim.
func StripQuotes(s string) string {
	for _, q := range []byte{'`', '\'', '"'} {
		if len(s) >= 2 && s[0] == q && s[len(s)-1] == q {
			s = s[1 : len(s)-1]
		}
	}
	return s
}
