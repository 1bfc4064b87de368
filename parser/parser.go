//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of ixmark.
//
// ixmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package parser turns the raw markup of one index entry into its parsed form.
//
// The grammar knows three separators: '|' splits the term path from the
// trailing command, '!' splits the term path into up to three levels, and
// '@' splits a sort key from a level. Separators behind an escape rune are
// skipped, but since the escape rune is configurable upstream, this stays a
// best-effort heuristic.
package parser

import (
	"strings"

	"codeberg.org/t73fde/ixmark/ast"
	"codeberg.org/t73fde/ixmark/input"
)

// Separator runes of the index entry grammar.
const (
	SepCommand = '|'
	SepLevel   = '!'
	SepSort    = '@'
)

// DefaultEscape is the escape rune assumed when the caller does not know
// better. Style files may redefine it.
const DefaultEscape = '\\'

// Parse splits one raw index entry into its term levels and its trailing
// command and classifies the command. It never fails: input without any
// separator yields a single-level entry without command.
func Parse(raw string, escape rune) *ast.Entry {
	entry := &ast.Entry{}
	termPath := raw
	inp := input.NewInput([]byte(raw))
	if pos := inp.FindUnescaped(SepCommand, escape); pos >= 0 {
		termPath = raw[:pos]
		entry.Command = raw[pos+1:]
	}
	entry.Levels = splitUnescaped(termPath, SepLevel, escape)
	classify(entry)
	return entry
}

// splitUnescaped splits s on every unescaped occurrence of sep. Empty
// elements are kept: they matter when the levels are reassembled.
func splitUnescaped(s string, sep, escape rune) []string {
	var result []string
	inp := input.NewInput([]byte(s))
	last := 0
	for {
		pos := inp.FindUnescaped(sep, escape)
		if pos < 0 {
			result = append(result, s[last:])
			return result
		}
		result = append(result, s[last:pos])
		last = pos + 1
		inp.SetPos(last)
	}
}

// SplitSortKey splits an explicit sort key from a level. The second return
// value is false if the level carries no unescaped sort separator.
func SplitSortKey(level string, escape rune) (sortKey, term string, ok bool) {
	inp := input.NewInput([]byte(level))
	if pos := inp.FindUnescaped(SepSort, escape); pos >= 0 {
		return level[:pos], level[pos+1:], true
	}
	return "", level, false
}

// classify performs the single classification pass over the trailing
// command. All downstream logic matches on entry.Kind instead of re-testing
// substrings.
func classify(entry *ast.Entry) {
	cmd := entry.Command
	switch {
	case cmd == "":
		entry.Kind = ast.KindNone
		return
	case cmd[0] == '(':
		entry.Kind = ast.KindRangeStart
		entry.Rest = cmd[1:]
		return
	case cmd[0] == ')':
		entry.Kind = ast.KindRangeEnd
		entry.Rest = cmd[1:]
		return
	}
	if kind, targets, rest, ok := parseSeeCommand(entry, cmd); ok {
		entry.Kind = kind
		entry.See = targets
		entry.Rest = rest
		return
	}
	entry.Kind = ast.KindFormat
}

// parseSeeCommand extracts the target list of a "see" or "seealso" command.
// "see" is a prefix of "seealso", so the longer keyword is tested first.
// A "see" with multiple comma-separated targets is malformed: a diagnostic
// is recorded and only the first target is kept.
func parseSeeCommand(entry *ast.Entry, cmd string) (kind ast.CommandKind, targets []string, rest string, ok bool) {
	if !strings.HasPrefix(cmd, "see") {
		return ast.KindNone, nil, "", false
	}

	// Escaped braces protect nothing here; unescape them before scanning.
	cmd = strings.ReplaceAll(cmd, `\{`, "{")
	cmd = strings.ReplaceAll(cmd, `\}`, "}")

	posOpen := strings.IndexByte(cmd, '{')
	posClose := strings.IndexByte(cmd, '}')
	if posOpen < 0 || posClose < posOpen {
		return ast.KindNone, nil, "", false
	}
	list := cmd[posOpen+1 : posClose]
	rest = cmd[posClose+1:]

	if strings.HasPrefix(cmd, "seealso") {
		for _, target := range strings.Split(list, ",") {
			if target != "" {
				targets = append(targets, target)
			}
		}
		return ast.KindSeeAlso, targets, rest, true
	}
	if strings.ContainsRune(list, ',') {
		entry.AddDiag(ast.DiagMultipleSeeTargets,
			`Several index terms found as "see"! Only one is acceptable.`)
		list = list[:strings.IndexByte(list, ',')]
	}
	return ast.KindSee, []string{list}, rest, true
}
