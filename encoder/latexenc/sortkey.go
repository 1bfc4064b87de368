//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of ixmark.
//
// ixmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package latexenc

import (
	"strings"

	"codeberg.org/t73fde/ixmark/parser"
)

// needsSortKey returns true iff the level would sort wrongly as written:
// it contains a command introducer and does not already supply an explicit
// sort key.
func needsSortKey(level string, escape rune) bool {
	return strings.ContainsRune(level, escape) &&
		!strings.ContainsRune(level, parser.SepSort)
}

// buildSortKey generates the sort key to prepend to a level, e.g.
// "LyX@\LyX" for the content "\LyX" with the plain text "LyX".
func (le *latexEncoder) buildSortKey(level, plain string) string {
	// Plain text might be empty (e.g. for raw TeX parts); fall back to the
	// markup itself, which might or might not be a good choice.
	candidate := plain
	if candidate == "" {
		candidate = level
	}

	env := le.env
	result, uncodable := env.GetValidator().Transliterate(candidate)
	if uncodable != "" {
		env.GetLogger().Warn().Str("chars", uncodable).
			Msg("Uncodable character in index entry. Sorting might be wrong!")
	}
	if result != candidate && !env.IsDryRun() {
		env.Advise(candidate)
	}

	// Remove remaining command introducers from the sort key.
	result = strings.ReplaceAll(result, string(env.GetEscape()), "")
	// Plain quotes are the default escape character of the index processor
	// and would corrupt nesting; escape them.
	result = strings.ReplaceAll(result, `"`, `\"`)
	return result
}
