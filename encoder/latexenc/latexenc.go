//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of ixmark.
//
// ixmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package latexenc encodes an index entry as a LaTeX indexing macro.
package latexenc

import (
	"io"

	"codeberg.org/t73fde/ixmark/api"
	"codeberg.org/t73fde/ixmark/ast"
	"codeberg.org/t73fde/ixmark/encoder"
	"codeberg.org/t73fde/ixmark/parser"
	"codeberg.org/t73fde/ixmark/strfun"
)

func init() {
	encoder.Register(api.EncoderLaTeX, encoder.Info{
		Create: func(env *encoder.Environment) encoder.Encoder { return &latexEncoder{env: env} },
	})
}

type latexEncoder struct {
	env *encoder.Environment
}

// WriteEntry encodes one occurrence as \index{...}, or \sindex[name]{...}
// when multiple indices are active and the entry does not belong to the
// default index.
func (le *latexEncoder) WriteEntry(w io.Writer, occ *ast.Occurrence) (int, error) {
	b := encoder.NewEncWriter(w)
	env := le.env
	if name := env.GetIndexName(); env.MultipleIndices() && name != api.DefaultIndexName {
		b.WriteStrings(`\sindex[`, strfun.LaTeXEscape(name), "]{")
	} else {
		b.WriteString(`\index{`)
	}

	escape := env.GetEscape()
	entry := parser.Parse(occ.Raw, escape)
	plainLevels := le.plainLevels(occ, entry.Command != "", escape)

	for i, level := range entry.Levels {
		// The separator needs to be put back when writing the levels,
		// except for the first level.
		if i > 0 {
			b.WriteByte(parser.SepLevel)
		}
		if needsSortKey(level, escape) {
			var plain string
			if i < len(plainLevels) {
				plain = plainLevels[i]
			}
			b.WriteString(le.buildSortKey(level, plain))
			b.WriteByte(parser.SepSort)
		}
		b.WriteString(level)
	}
	if entry.Command != "" {
		b.WriteByte(parser.SepCommand)
		b.WriteString(entry.Command)
	}
	b.WriteByte('}')
	return b.Flush()
}

// plainLevels splits the plain text rendering the same way the markup is
// split, to get one sort key candidate per level.
func (le *latexEncoder) plainLevels(occ *ast.Occurrence, hasCommand bool, escape rune) []string {
	if occ.Plain == "" {
		return nil
	}
	plainEntry := parser.Parse(occ.Plain, escape)
	if hasCommand && plainEntry.Command == "" {
		le.env.GetLogger().Warn().Str("entry", occ.Raw).
			Msg("The `|' separator was not found in the plaintext version")
	}
	return plainEntry.Levels
}

func (*latexEncoder) WriteIndex(io.Writer, []*ast.Occurrence) (int, error) {
	return 0, encoder.ErrNoWriteIndex
}
