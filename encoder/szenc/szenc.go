//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of ixmark.
//
// ixmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package szenc encodes the parsed form of an index entry as a symbolic
// expression, mostly for debugging and testing.
package szenc

import (
	"io"

	"codeberg.org/t73fde/sxpf"

	"codeberg.org/t73fde/ixmark/api"
	"codeberg.org/t73fde/ixmark/ast"
	"codeberg.org/t73fde/ixmark/encoder"
	"codeberg.org/t73fde/ixmark/parser"
)

func init() {
	encoder.Register(api.EncoderSz, encoder.Info{
		Create: func(env *encoder.Environment) encoder.Encoder { return newSzEncoder(env) },
	})
}

type szEncoder struct {
	env *encoder.Environment

	symEntry      *sxpf.Symbol
	symLevels     *sxpf.Symbol
	symFormat     *sxpf.Symbol
	symSee        *sxpf.Symbol
	symSeeAlso    *sxpf.Symbol
	symRangeStart *sxpf.Symbol
	symRangeEnd   *sxpf.Symbol
	symDiag       *sxpf.Symbol
}

func newSzEncoder(env *encoder.Environment) *szEncoder {
	sf := sxpf.MakeMappedFactory()
	return &szEncoder{
		env:           env,
		symEntry:      sf.MustMake("ENTRY"),
		symLevels:     sf.MustMake("LEVELS"),
		symFormat:     sf.MustMake("FORMAT"),
		symSee:        sf.MustMake("SEE"),
		symSeeAlso:    sf.MustMake("SEEALSO"),
		symRangeStart: sf.MustMake("RANGE-START"),
		symRangeEnd:   sf.MustMake("RANGE-END"),
		symDiag:       sf.MustMake("DIAG"),
	}
}

// WriteEntry writes the parsed form of one occurrence as a s-expression.
func (ze *szEncoder) WriteEntry(w io.Writer, occ *ast.Occurrence) (int, error) {
	entry := parser.Parse(occ.Raw, ze.env.GetEscape())
	return sxpf.Print(w, ze.transform(entry))
}

func (ze *szEncoder) transform(entry *ast.Entry) *sxpf.List {
	objs := []sxpf.Object{ze.symEntry, ze.transformLevels(entry)}
	switch entry.Kind {
	case ast.KindFormat:
		objs = append(objs, sxpf.MakeList(ze.symFormat, sxpf.MakeString(entry.Command)))
	case ast.KindSee:
		objs = append(objs, ze.transformSee(ze.symSee, entry.See))
	case ast.KindSeeAlso:
		objs = append(objs, ze.transformSee(ze.symSeeAlso, entry.See))
	case ast.KindRangeStart:
		objs = append(objs, sxpf.MakeList(ze.symRangeStart))
	case ast.KindRangeEnd:
		objs = append(objs, sxpf.MakeList(ze.symRangeEnd))
	}
	for _, diag := range entry.Diags {
		objs = append(objs, sxpf.MakeList(ze.symDiag, sxpf.MakeString(diag.Kind.String())))
	}
	return sxpf.MakeList(objs...)
}

func (ze *szEncoder) transformLevels(entry *ast.Entry) *sxpf.List {
	objs := make([]sxpf.Object, 0, len(entry.Levels)+1)
	objs = append(objs, ze.symLevels)
	for _, level := range entry.Levels {
		objs = append(objs, sxpf.MakeString(level))
	}
	return sxpf.MakeList(objs...)
}

func (ze *szEncoder) transformSee(sym *sxpf.Symbol, targets []string) *sxpf.List {
	objs := make([]sxpf.Object, 0, len(targets)+1)
	objs = append(objs, sym)
	for _, target := range targets {
		objs = append(objs, sxpf.MakeString(target))
	}
	return sxpf.MakeList(objs...)
}

func (*szEncoder) WriteIndex(io.Writer, []*ast.Occurrence) (int, error) {
	return 0, encoder.ErrNoWriteIndex
}
