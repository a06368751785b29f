// Package confusable flags alias names that masquerade as other
// commands through Unicode tricks. An alias named with a Cyrillic а
// or with a zero-width joiner stuck in it renders exactly like the
// command it imitates, but resolves as a different name entirely, so
// the per-name classifier never sees the collision. These warnings
// close that gap.
package confusable

import (
	"fmt"
	"unicode"
)

// Warning describes one suspicious rune in an alias name.
type Warning struct {
	Name      string // the alias name carrying the rune
	Codepoint string // e.g. "U+200B"
	Reason    string
}

// CheckName scans one alias name and returns a warning per suspicious
// rune. Plain ASCII names come back clean.
func CheckName(name string) []Warning {
	var warnings []Warning
	for _, r := range name {
		if r < 128 {
			continue
		}
		cp := fmt.Sprintf("U+%04X", r)
		switch {
		case isInvisible(r):
			warnings = append(warnings, Warning{
				Name:      name,
				Codepoint: cp,
				Reason:    "invisible character makes this alias render like another name",
			})
		case isBidiControl(r):
			warnings = append(warnings, Warning{
				Name:      name,
				Codepoint: cp,
				Reason:    "bidirectional control reorders how this alias is displayed",
			})
		default:
			if latin, ok := lookalike(r); ok {
				warnings = append(warnings, Warning{
					Name:      name,
					Codepoint: cp,
					Reason:    fmt.Sprintf("looks like Latin '%c' but is a different character", latin),
				})
			}
		}
	}
	return warnings
}

// CheckNames runs CheckName over a whole alias table.
func CheckNames(names []string) []Warning {
	var warnings []Warning
	for _, name := range names {
		warnings = append(warnings, CheckName(name)...)
	}
	return warnings
}

func isInvisible(r rune) bool {
	switch r {
	case '\u200B', // zero width space
		'\u200C', // zero width non-joiner
		'\u200D', // zero width joiner
		'\uFEFF', // zero width no-break space
		'\u2060', // word joiner
		'\u200E', // left-to-right mark
		'\u200F': // right-to-left mark
		return true
	}
	return false
}

func isBidiControl(r rune) bool {
	return (r >= '\u202A' && r <= '\u202E') || (r >= '\u2066' && r <= '\u2069')
}

func lookalike(r rune) (rune, bool) {
	if unicode.Is(unicode.Cyrillic, r) {
		latin, ok := cyrillicLookalikes[r]
		return latin, ok
	}
	if unicode.Is(unicode.Greek, r) {
		latin, ok := greekLookalikes[r]
		return latin, ok
	}
	return 0, false
}

// Non-Latin letters visually confusable with Latin ones. Lowercase
// entries matter most here: command names are almost always lowercase.
var cyrillicLookalikes = map[rune]rune{
	'а': 'a', 'А': 'A',
	'В': 'B',
	'с': 'c', 'С': 'C',
	'е': 'e', 'Е': 'E',
	'Н': 'H',
	'і': 'i', 'І': 'I',
	'К': 'K',
	'М': 'M',
	'о': 'o', 'О': 'O',
	'р': 'p', 'Р': 'P',
	'Т': 'T',
	'х': 'x', 'Х': 'X',
	'у': 'y', 'У': 'Y',
}

var greekLookalikes = map[rune]rune{
	'ο': 'o', 'Ο': 'O',
	'Α': 'A', 'Β': 'B', 'Ε': 'E', 'Η': 'H', 'Ι': 'I', 'Κ': 'K',
	'Μ': 'M', 'Ν': 'N', 'Ρ': 'P', 'Τ': 'T', 'Υ': 'Y', 'Χ': 'X',
	'Ζ': 'Z',
}
