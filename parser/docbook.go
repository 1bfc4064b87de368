//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of ixmark.
//
// ixmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package parser

import (
	"strings"

	"codeberg.org/t73fde/ixmark/ast"
)

// ParseDocBook parses one raw index entry with the XML target grammar. It
// differs from Parse: the sort separator '@' splits an explicit sort key off
// the whole term path, range markers are significant, empty levels are
// dropped, and command text left over after classification is recorded for
// an unsupported-feature diagnostic. Like Parse, it never fails.
func ParseDocBook(raw string) *ast.Entry {
	raw = strings.TrimSpace(raw)
	entry := &ast.Entry{}

	// '@' is supported for sorting only; '@' followed by a formatting
	// command cannot be translated.
	if strings.Contains(raw, "@\\") {
		entry.AddDiag(ast.DiagSortedFormatting,
			"Unsupported feature: an index entry contains an @\\. Complete entry: \""+raw+"\"")
	}

	termPath := raw
	var cmd string
	if pos := strings.IndexByte(raw, '|'); pos >= 0 {
		termPath = raw[:pos]
		cmd = raw[pos+1:]
		entry.Command = cmd
	}

	if parts := strings.Split(termPath, "@"); len(parts) == 2 {
		entry.SortAs = parts[0]
		termPath = parts[1]
	}
	for _, level := range strings.Split(termPath, "!") {
		if level != "" {
			entry.Levels = append(entry.Levels, level)
		}
	}

	// Range markers can only be at the end of well-formed input, but they
	// are detected anywhere. Strip embedded markers from the command so
	// they do not leak into the "see" parsing below.
	hasStart := strings.Contains(raw, "|(")
	hasEnd := strings.Contains(raw, "|)")
	if hasStart || hasEnd {
		cmd = strings.ReplaceAll(cmd, "|(", "(")
		cmd = strings.ReplaceAll(cmd, "|)", ")")
		if cmd != "" && (cmd[0] == '(' || cmd[0] == ')') {
			cmd = cmd[1:]
		}
	}

	var seeKind ast.CommandKind
	if kind, targets, rest, ok := parseSeeCommand(entry, cmd); ok {
		seeKind = kind
		entry.See = targets
		cmd = rest
	}

	switch {
	case hasEnd:
		entry.Kind = ast.KindRangeEnd
	case hasStart:
		entry.Kind = ast.KindRangeStart
	case seeKind != ast.KindNone:
		entry.Kind = seeKind
	case cmd != "":
		entry.Kind = ast.KindFormat
	default:
		entry.Kind = ast.KindNone
	}
	entry.Rest = cmd

	if entry.Rest != "" {
		entry.AddDiag(ast.DiagUnsupportedCommand,
			"Unsupported feature: an index entry contains a | with an unsupported command, "+
				entry.Rest+". Complete entry: \""+raw+"\"")
	}
	if !entry.HasTerm() && entry.Kind != ast.KindRangeEnd {
		entry.AddDiag(ast.DiagNoTerm, "No index term found! Complete entry: \""+raw+"\"")
	}
	return entry
}
