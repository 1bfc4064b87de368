//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of ixmark.
//
// ixmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package ast provides the parsed form of an index entry.
package ast

import "strings"

// Entry is the parsed form of one raw index entry occurrence. It is built
// fresh for every parse call and never mutated afterwards.
type Entry struct {
	Levels  []string // Hierarchical term levels (main, sub, subsub, ...), verbatim
	SortAs  string   // Explicit sort key, when the grammar splits it off
	Command string   // Raw text behind the first top-level '|', verbatim
	Kind    CommandKind
	See     []string     // Cross-reference targets for KindSee / KindSeeAlso
	Rest    string       // Command text not consumed by classification
	Diags   []Diagnostic // Non-fatal conditions found while parsing
}

// TermPath returns the levels re-joined by the level separator. It is the
// literal key used for range identifier tracking.
func (e *Entry) TermPath() string { return strings.Join(e.Levels, "!") }

// HasTerm returns true if the entry carries at least one non-empty level.
func (e *Entry) HasTerm() bool {
	for _, lvl := range e.Levels {
		if lvl != "" {
			return true
		}
	}
	return false
}

// CommandKind classifies the trailing command of an entry.
type CommandKind uint8

// Values for CommandKind.
const (
	KindNone       CommandKind = iota // no trailing command
	KindFormat                        // page number formatting, e.g. textbf
	KindSee                           // redirect to exactly one other term
	KindSeeAlso                       // redirect to one or more other terms
	KindRangeStart                    // opens a page range
	KindRangeEnd                      // closes a page range
)

func (k CommandKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindFormat:
		return "format"
	case KindSee:
		return "see"
	case KindSeeAlso:
		return "seealso"
	case KindRangeStart:
		return "range-start"
	case KindRangeEnd:
		return "range-end"
	}
	return "unknown"
}

// IsRange returns true if the entry opens or closes a page range.
func (k CommandKind) IsRange() bool { return k == KindRangeStart || k == KindRangeEnd }

// Occurrence couples one raw index entry with the data its document
// collaborator supplies for it.
type Occurrence struct {
	Raw    string // Markup as authored
	Plain  string // Plain text rendering of the same content
	Anchor string // Opaque position token, used to build back-reference links
}
