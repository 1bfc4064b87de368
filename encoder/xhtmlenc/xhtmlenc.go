//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of ixmark.
//
// ixmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package xhtmlenc encodes all index entries of a document as a nested,
// three-level XHTML list with back-reference links.
package xhtmlenc

import (
	"io"
	"sort"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"codeberg.org/t73fde/ixmark/api"
	"codeberg.org/t73fde/ixmark/ast"
	"codeberg.org/t73fde/ixmark/encoder"
	"codeberg.org/t73fde/ixmark/encoding/xml"
	"codeberg.org/t73fde/ixmark/strfun"
)

func init() {
	encoder.Register(api.EncoderXHTML, encoder.Info{
		Create: func(env *encoder.Environment) encoder.Encoder { return &xhtmlEncoder{env: env} },
	})
}

type xhtmlEncoder struct {
	env *encoder.Environment
}

func (*xhtmlEncoder) WriteEntry(io.Writer, *ast.Occurrence) (int, error) {
	return 0, encoder.ErrNoWriteEntry
}

// WriteIndex writes the aggregated index of a whole document. The input must
// contain the occurrences in document order; they are stably sorted before
// grouping, so occurrences of the same logical entry keep their relative
// order.
func (xe *xhtmlEncoder) WriteIndex(w io.Writer, occurrences []*ast.Occurrence) (int, error) {
	b := encoder.NewEncWriter(w)
	if len(occurrences) == 0 {
		return b.Flush()
	}

	entries := make([]indexEntry, len(occurrences))
	for i, occ := range occurrences {
		entries[i] = newIndexEntry(occ)
	}
	coll := collate.New(language.Make(xe.getLang()), collate.IgnoreCase)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].less(coll, &entries[j]) })

	xml.WriteStartTag(&b, "div", xml.Attr{Key: "class", Value: "index"})
	b.WriteByte('\n')
	xml.WriteTag(&b, "h2", "Index")
	b.WriteByte('\n')
	xml.WriteStartTag(&b, "ul", xml.Attr{Key: "class", Value: "main"})
	b.WriteByte('\n')
	xe.writeEntries(&b, entries)
	xml.WriteEndTag(&b, "div")
	b.WriteByte('\n')
	return b.Flush()
}

func (xe *xhtmlEncoder) getLang() string {
	if xe.env == nil {
		return ""
	}
	return xe.env.Lang
}

// writeEntries walks the sorted entries once. It tracks whether it is inside
// a main entry (level 1), a sub-entry (2), or a sub-sub-entry (3), closes
// the list levels no longer shared with the current entry, opens the levels
// the entry introduces, and appends one numbered back-reference link per
// occurrence of the same logical entry.
func (xe *xhtmlEncoder) writeEntries(b *encoder.EncWriter, entries []indexEntry) {
	level := 1
	var last indexEntry
	entryNumber := -1
	for i := range entries {
		ent := &entries[i]
		if entryNumber == -1 || !ent.equal(&last) {
			if entryNumber != -1 {
				// Not the first time through the loop: close the previous
				// entry or entries, depending on what changed.
				if level == 3 {
					xml.WriteEndTag(b, "li")
					b.WriteByte('\n')
					if !ent.sameSub(&last) {
						xml.WriteEndTag(b, "ul")
						b.WriteByte('\n')
						level = 2
					}
				}
				// We may get here by falling through, or because the first
				// sub-sub-entry within an unchanged sub-entry started above.
				// Only a changed sub-entry closes anything.
				if level == 2 && !ent.sameSub(&last) {
					xml.WriteEndTag(b, "li")
					b.WriteByte('\n')
					if !ent.sameMain(&last) {
						xml.WriteEndTag(b, "ul")
						b.WriteByte('\n')
						level = 1
					}
				}
				if level == 1 && !ent.sameMain(&last) {
					xml.WriteEndTag(b, "li")
					b.WriteByte('\n')
				}
			}

			entryNumber = 0
			xe.openEntry(b, ent, &last, &level)
		}

		// Output the back-reference link itself.
		if entryNumber == 0 {
			b.WriteString(":")
		} else {
			b.WriteString(",")
		}
		entryNumber++
		b.WriteString(" ")
		xml.WriteStartTag(b, "a", xml.Attr{Key: "href", Value: "#" + ent.anchor})
		b.WriteString(strconv.Itoa(entryNumber))
		xml.WriteEndTag(b, "a")
		last = *ent
	}
	// Close all levels still open.
	for level > 0 {
		xml.WriteEndTag(b, "li")
		xml.WriteEndTag(b, "ul")
		b.WriteByte('\n')
		level--
	}
}

// openEntry opens the list levels the entry introduces and renders their
// display text.
func (*xhtmlEncoder) openEntry(b *encoder.EncWriter, ent, last *indexEntry, level *int) {
	switch *level {
	case 3:
		// Another sub-sub-entry within the same sub-entry.
		xml.WriteStartTag(b, "li", xml.Attr{Key: "class", Value: "subsubentry"})
		strfun.XMLEscape(b, ent.subsub)
	case 2:
		// Only a changed sub-entry needs a new list item; an unchanged one
		// means the first sub-sub-entry within it is about to start.
		if ent.keySub != last.keySub {
			xml.WriteStartTag(b, "li", xml.Attr{Key: "class", Value: "subentry"})
			strfun.XMLEscape(b, ent.sub)
		}
		if ent.subsub != "" {
			b.WriteByte('\n')
			xml.WriteStartTag(b, "ul", xml.Attr{Key: "class", Value: "subsubentry"})
			xml.WriteStartTag(b, "li", xml.Attr{Key: "class", Value: "subsubentry"})
			strfun.XMLEscape(b, ent.subsub)
			*level = 3
		}
	default:
		if ent.keyMain != last.keyMain {
			xml.WriteStartTag(b, "li", xml.Attr{Key: "class", Value: "main"})
			strfun.XMLEscape(b, ent.main)
		}
		if ent.sub != "" {
			b.WriteByte('\n')
			xml.WriteStartTag(b, "ul", xml.Attr{Key: "class", Value: "subentry"})
			xml.WriteStartTag(b, "li", xml.Attr{Key: "class", Value: "subentry"})
			strfun.XMLEscape(b, ent.sub)
			*level = 2
			if ent.subsub != "" {
				b.WriteByte('\n')
				xml.WriteStartTag(b, "ul", xml.Attr{Key: "class", Value: "subsubentry"})
				xml.WriteStartTag(b, "li", xml.Attr{Key: "class", Value: "subsubentry"})
				strfun.XMLEscape(b, ent.subsub)
				*level = 3
			}
		}
	}
}
