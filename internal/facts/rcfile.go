package facts

import (
	"bytes"
	"os"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// HarvestRC parses shell rc files and fills the snapshot's alias and
// function tables from what they define. Missing or unparseable files
// are skipped; an rc file that the shell itself would choke on cannot
// tell us anything reliable anyway.
//
// Alias definitions are captured as the verbatim source text after the
// first '=', surrounding quotes included. Stripping happens at
// classification time, once, so embedded quoting survives intact.
func (s *Snapshot) HarvestRC(paths ...string) {
	parser := syntax.NewParser(syntax.KeepComments(false), syntax.Variant(syntax.LangBash))
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		file, err := parser.Parse(bytes.NewReader(src), path)
		if err != nil {
			continue
		}
		s.harvestFile(file, src)
	}
}

func (s *Snapshot) harvestFile(file *syntax.File, src []byte) {
	syntax.Walk(file, func(node syntax.Node) bool {
		switch x := node.(type) {
		case *syntax.FuncDecl:
			s.Functions[x.Name.Value] = true
		case *syntax.CallExpr:
			s.harvestAliasCall(x, src)
		}
		return true
	})
}

func (s *Snapshot) harvestAliasCall(call *syntax.CallExpr, src []byte) {
	if len(call.Args) < 2 || literalValue(call.Args[0]) != "alias" {
		return
	}
	for _, arg := range call.Args[1:] {
		raw := sourceText(arg, src)
		name, def, ok := strings.Cut(raw, "=")
		if !ok || name == "" {
			continue // `alias name` prints, it does not define
		}
		s.Aliases[name] = def
	}
}

// literalValue returns the word's value when it is a single unquoted
// literal, else "".
func literalValue(w *syntax.Word) string {
	if len(w.Parts) != 1 {
		return ""
	}
	lit, ok := w.Parts[0].(*syntax.Lit)
	if !ok {
		return ""
	}
	return lit.Value
}

// sourceText slices the original file bytes covered by a node, keeping
// the author's quoting exactly as written.
func sourceText(node syntax.Node, src []byte) string {
	start, end := node.Pos().Offset(), node.End().Offset()
	if start >= end || end > uint(len(src)) {
		return ""
	}
	return string(src[start:end])
}
