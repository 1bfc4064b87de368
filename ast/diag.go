//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of ixmark.
//
// ixmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package ast

// DiagKind enumerates the recoverable conditions an entry can carry.
// None of them stops rendering.
type DiagKind uint8

// Values for DiagKind.
const (
	DiagUnsupportedCommand DiagKind = iota // leftover command text after classification
	DiagMultipleSeeTargets                 // a "see" command with more than one target
	DiagNoTerm                             // a non-range entry without any term level
	DiagSortedFormatting                   // "@\" sequence: formatting inside a sort key
	DiagUncodableSortChar                  // sort key candidate not representable in the encoding
	DiagSortKeyMismatch                    // transliteration altered the sort key candidate
)

func (k DiagKind) String() string {
	switch k {
	case DiagUnsupportedCommand:
		return "unsupported-command"
	case DiagMultipleSeeTargets:
		return "multiple-see-targets"
	case DiagNoTerm:
		return "no-term"
	case DiagSortedFormatting:
		return "sorted-formatting"
	case DiagUncodableSortChar:
		return "uncodable-sort-char"
	case DiagSortKeyMismatch:
		return "sort-key-mismatch"
	}
	return "unknown"
}

// Diagnostic describes one recoverable condition, together with a text that
// can be emitted into the output stream or a log.
type Diagnostic struct {
	Kind DiagKind
	Text string
}

// AddDiag appends a diagnostic to the entry.
func (e *Entry) AddDiag(kind DiagKind, text string) {
	e.Diags = append(e.Diags, Diagnostic{Kind: kind, Text: text})
}
