//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of ixmark.
//
// ixmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package xhtmlenc

import (
	"strings"

	"golang.org/x/text/collate"

	"codeberg.org/t73fde/ixmark/ast"
)

// levelSep separates the levels in the plain text rendering of an entry.
const levelSep = " ! "

// indexEntry is one occurrence, extracted for aggregation. The key fields
// hold the collation form of a level (the sort key side of an '@' pair), the
// plain fields its display form (the term side).
type indexEntry struct {
	main, sub, subsub          string
	keyMain, keySub, keySubsub string
	anchor                     string
}

func newIndexEntry(occ *ast.Occurrence) indexEntry {
	main, sub, subsub := extractLevels(occ.Plain)
	return indexEntry{
		main:      displayItem(main),
		sub:       displayItem(sub),
		subsub:    displayItem(subsub),
		keyMain:   sortItem(main),
		keySub:    sortItem(sub),
		keySubsub: sortItem(subsub),
		anchor:    occ.Anchor,
	}
}

// extractLevels splits the plain text on the level separator, at most twice.
func extractLevels(entry string) (main, sub, subsub string) {
	if entry == "" {
		return "", "", ""
	}
	pos := strings.Index(entry, levelSep)
	if pos < 0 {
		return entry, "", ""
	}
	main = strings.TrimSpace(entry[:pos])
	rest := entry[pos+len(levelSep):]
	if pos2 := strings.Index(rest, levelSep); pos2 >= 0 {
		sub = strings.TrimSpace(rest[:pos2])
		subsub = strings.TrimSpace(rest[pos2+len(levelSep):])
		return main, sub, subsub
	}
	return main, strings.TrimSpace(rest), ""
}

// displayItem returns the display form of a level: the term side of a sort
// key pair, with any trailing command dropped. This does not yet check for
// escaped separators.
func displayItem(s string) string {
	if pos := strings.IndexByte(s, '@'); pos >= 0 {
		s = s[pos+1:]
	}
	if pos := strings.IndexByte(s, '|'); pos >= 0 {
		s = s[:pos]
	}
	return s
}

// sortItem returns the collation form of a level: the sort key side of a
// sort key pair, with any trailing command dropped.
func sortItem(s string) string {
	if pos := strings.IndexByte(s, '@'); pos >= 0 {
		s = s[:pos]
	}
	if pos := strings.IndexByte(s, '|'); pos >= 0 {
		s = s[:pos]
	}
	return s
}

// equal returns true if both entries denote the same logical index entry.
func (ent *indexEntry) equal(other *indexEntry) bool {
	return ent.keyMain == other.keyMain &&
		ent.keySub == other.keySub &&
		ent.keySubsub == other.keySubsub
}

// sameSub returns true if both entries share main and sub level.
func (ent *indexEntry) sameSub(other *indexEntry) bool {
	return ent.keyMain == other.keyMain && ent.keySub == other.keySub
}

// sameMain returns true if both entries share the main level.
func (ent *indexEntry) sameMain(other *indexEntry) bool {
	return ent.keyMain == other.keyMain
}

// less orders entries case-insensitively by (main, sub, subsub).
func (ent *indexEntry) less(coll *collate.Collator, other *indexEntry) bool {
	if cmp := coll.CompareString(ent.keyMain, other.keyMain); cmp != 0 {
		return cmp < 0
	}
	if cmp := coll.CompareString(ent.keySub, other.keySub); cmp != 0 {
		return cmp < 0
	}
	return coll.CompareString(ent.keySubsub, other.keySubsub) < 0
}
