// Package critical resolves the set of command names that require a
// mandatory audit because overriding them is high risk.
package critical

// Defaults returns the built-in critical command list. This is the
// variant without ls; CRITICAL directives add names, NONCRITICAL
// directives remove them.
func Defaults() []string {
	return []string{"cd", "rm", "mv", "sudo", "kill", "sh", "bash", "echo", "printf"}
}

// Resolve applies configured additions and removals to a default list
// and returns the final audit set: duplicate-free, first-seen order
// preserved, exact case-sensitive matching.
//
// Additions are applied as one batch before removals, so a name that
// appears in both ends up absent no matter where it was declared.
func Resolve(defaults, additions, removals []string) []string {
	out := make([]string, 0, len(defaults)+len(additions))
	seen := make(map[string]bool, len(defaults)+len(additions))

	for _, name := range defaults {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	for _, name := range additions {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}

	if len(removals) == 0 {
		return out
	}
	drop := make(map[string]bool, len(removals))
	for _, name := range removals {
		drop[name] = true
	}
	kept := out[:0]
	for _, name := range out {
		if !drop[name] {
			kept = append(kept, name)
		}
	}
	return kept
}
