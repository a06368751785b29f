package config

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Directives are the parsed contents of the audit directive file:
// whitelist entries plus critical-set additions and removals, each in
// file order.
type Directives struct {
	Whitelist []string
	Additions []string
	Removals  []string
}

// LoadDirectives reads the directive file at path. A missing file means
// no directives; any other read error is returned.
func LoadDirectives(path string) (Directives, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Directives{}, nil
		}
		return Directives{}, err
	}
	defer file.Close()
	return ParseDirectives(file), nil
}

// ParseDirectives parses directive lines:
//
//	WHITELIST <name>
//	CRITICAL <name>
//	NONCRITICAL <name>
//
// Blank lines and #-comments are ignored. Malformed lines are skipped
// silently; a bad line in the config must not kill an audit run.
func ParseDirectives(r io.Reader) Directives {
	var d Directives
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		switch fields[0] {
		case "WHITELIST":
			d.Whitelist = append(d.Whitelist, fields[1])
		case "CRITICAL":
			d.Additions = append(d.Additions, fields[1])
		case "NONCRITICAL":
			d.Removals = append(d.Removals, fields[1])
		}
	}
	return d
}
