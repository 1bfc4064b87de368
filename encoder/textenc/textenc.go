//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of ixmark.
//
// ixmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package textenc encodes an index entry as its display text, e.g. for
// labels, tooltips, or outlines.
package textenc

import (
	"io"

	"codeberg.org/t73fde/ixmark/api"
	"codeberg.org/t73fde/ixmark/ast"
	"codeberg.org/t73fde/ixmark/encoder"
	"codeberg.org/t73fde/ixmark/parser"
)

func init() {
	encoder.Register(api.EncoderText, encoder.Info{
		Create: func(env *encoder.Environment) encoder.Encoder { return &textEncoder{env: env} },
	})
}

type textEncoder struct {
	env *encoder.Environment
}

// WriteEntry writes the term levels of one occurrence, separated by commas.
// Sort keys and the trailing command are dropped.
func (te *textEncoder) WriteEntry(w io.Writer, occ *ast.Occurrence) (int, error) {
	b := encoder.NewEncWriter(w)
	escape := te.env.GetEscape()
	entry := parser.Parse(occ.Raw, escape)
	first := true
	for _, level := range entry.Levels {
		_, term, _ := parser.SplitSortKey(level, escape)
		if term == "" {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		b.WriteString(term)
		first = false
	}
	return b.Flush()
}

func (*textEncoder) WriteIndex(io.Writer, []*ast.Occurrence) (int, error) {
	return 0, encoder.ErrNoWriteIndex
}
