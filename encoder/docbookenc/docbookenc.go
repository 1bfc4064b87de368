//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of ixmark.
//
// ixmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package docbookenc encodes an index entry as a DocBook indexterm element.
package docbookenc

import (
	"io"
	"strconv"

	"codeberg.org/t73fde/ixmark/api"
	"codeberg.org/t73fde/ixmark/ast"
	"codeberg.org/t73fde/ixmark/encoder"
	"codeberg.org/t73fde/ixmark/encoding/xml"
	"codeberg.org/t73fde/ixmark/parser"
	"codeberg.org/t73fde/ixmark/strfun"
)

func init() {
	encoder.Register(api.EncoderDocBook, encoder.Info{
		Create: func(env *encoder.Environment) encoder.Encoder {
			return &docbookEncoder{env: env, knownPaths: strfun.NewSet()}
		},
	})
}

// docbookEncoder holds the state of one rendering session. Range identifiers
// are only consistent when all entries of one document pass through the same
// instance, in document order.
type docbookEncoder struct {
	env        *encoder.Environment
	knownPaths strfun.Set // term paths already closed by a range
	nextID     int        // disambiguation counter, incremented on range end
}

// WriteEntry encodes one occurrence as an indexterm element. All malformed
// input conditions are written as XML comments in front of the best-effort
// output; nothing aborts the render.
func (de *docbookEncoder) WriteEntry(w io.Writer, occ *ast.Occurrence) (int, error) {
	b := encoder.NewEncWriter(w)
	entry := parser.ParseDocBook(occ.Raw)
	for _, diag := range entry.Diags {
		de.env.GetLogger().Error().Str("entry", occ.Raw).Msg(diag.Text)
		xml.WriteComment(&b, "Output Error: "+diag.Text)
	}
	if !entry.HasTerm() && entry.Kind != ast.KindRangeEnd {
		return b.Flush()
	}

	attrs := de.termAttrs(entry)
	if entry.Kind == ast.KindRangeEnd {
		xml.WriteCompTag(&b, "indexterm", attrs...)
		return b.Flush()
	}

	xml.WriteStartTag(&b, "indexterm", attrs...)
	if len(entry.Levels) > 0 {
		if entry.SortAs != "" {
			xml.WriteStartTag(&b, "primary", xml.Attr{Key: "sortas", Value: entry.SortAs})
			strfun.XMLEscape(&b, entry.Levels[0])
			xml.WriteEndTag(&b, "primary")
		} else {
			xml.WriteTag(&b, "primary", entry.Levels[0])
		}
	}
	if len(entry.Levels) > 1 {
		xml.WriteTag(&b, "secondary", entry.Levels[1])
	}
	if len(entry.Levels) > 2 {
		xml.WriteTag(&b, "tertiary", entry.Levels[2])
	}

	switch entry.Kind {
	case ast.KindSee:
		xml.WriteTag(&b, "see", entry.See[0])
	case ast.KindSeeAlso:
		for _, target := range entry.See {
			xml.WriteTag(&b, "seealso", target)
		}
	}
	xml.WriteEndTag(&b, "indexterm")
	return b.Flush()
}

// termAttrs computes the attributes of the indexterm element. For range
// entries it performs the identifier disambiguation: the identifier is based
// on the literal term path, and a numeric suffix is appended when that path
// was already used by an earlier range of this session. The counter advances
// only on the range end, so both ends of one range compute the same
// identifier.
func (de *docbookEncoder) termAttrs(entry *ast.Entry) []xml.Attr {
	var attrs []xml.Attr
	// The index type can only be used for singular and start-of-range terms.
	if de.env.MultipleIndices() && entry.Kind != ast.KindRangeEnd {
		attrs = append(attrs, xml.Attr{Key: "type", Value: de.env.GetIndexName()})
	}
	if !entry.Kind.IsRange() {
		return attrs
	}

	path := entry.TermPath()
	id := path
	if de.knownPaths.Has(path) {
		id = path + "-" + strconv.Itoa(de.nextID)
		if entry.Kind == ast.KindRangeEnd {
			de.nextID++
		}
	} else if entry.Kind == ast.KindRangeEnd {
		// Register the path even if it was never opened, to detect reuse.
		de.knownPaths.Set(path)
	}

	if entry.Kind == ast.KindRangeStart {
		return append(attrs,
			xml.Attr{Key: "class", Value: "startofrange"},
			xml.Attr{Key: "xml:id", Value: strfun.CleanID(id)})
	}
	return append(attrs,
		xml.Attr{Key: "class", Value: "endofrange"},
		xml.Attr{Key: "startref", Value: strfun.CleanID(id)})
}

func (*docbookEncoder) WriteIndex(io.Writer, []*ast.Occurrence) (int, error) {
	return 0, encoder.ErrNoWriteIndex
}
