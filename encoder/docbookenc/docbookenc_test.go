//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of ixmark.
//
// ixmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package docbookenc_test

import (
	"bytes"
	"testing"

	"codeberg.org/t73fde/ixmark/api"
	"codeberg.org/t73fde/ixmark/ast"
	"codeberg.org/t73fde/ixmark/encoder"

	_ "codeberg.org/t73fde/ixmark/encoder/docbookenc" // Allow to use DocBook encoder.
)

func encodeAll(t *testing.T, env *encoder.Environment, raws []string) []string {
	t.Helper()
	encdr := encoder.Create(api.EncoderDocBook, env)
	if encdr == nil {
		t.Fatal("No DocBook encoder found")
	}
	result := make([]string, len(raws))
	for i, raw := range raws {
		var buf bytes.Buffer
		if _, err := encdr.WriteEntry(&buf, &ast.Occurrence{Raw: raw}); err != nil {
			t.Fatalf("WriteEntry(%q): %v", raw, err)
		}
		result[i] = buf.String()
	}
	return result
}

func TestRangeIdentifiers(t *testing.T) {
	t.Parallel()
	got := encodeAll(t, nil, []string{
		"Term|(", "Term|)",
		"Term|(", "Term|)",
		"Term|(", "Term|)",
	})
	expected := []string{
		`<indexterm class="startofrange" xml:id="term"><primary>Term</primary></indexterm>`,
		`<indexterm class="endofrange" startref="term"/>`,
		`<indexterm class="startofrange" xml:id="term-0"><primary>Term</primary></indexterm>`,
		`<indexterm class="endofrange" startref="term-0"/>`,
		`<indexterm class="startofrange" xml:id="term-1"><primary>Term</primary></indexterm>`,
		`<indexterm class="endofrange" startref="term-1"/>`,
	}
	for i, exp := range expected {
		if got[i] != exp {
			t.Errorf("Entry #%d\nExpected: %q\nGot:      %q", i, exp, got[i])
		}
	}
}

func TestRangeIdentifiersDistinctPaths(t *testing.T) {
	t.Parallel()
	got := encodeAll(t, nil, []string{"Alpha|(", "Beta|(", "Beta|)", "Alpha|)"})
	expected := []string{
		`<indexterm class="startofrange" xml:id="alpha"><primary>Alpha</primary></indexterm>`,
		`<indexterm class="startofrange" xml:id="beta"><primary>Beta</primary></indexterm>`,
		`<indexterm class="endofrange" startref="beta"/>`,
		`<indexterm class="endofrange" startref="alpha"/>`,
	}
	for i, exp := range expected {
		if got[i] != exp {
			t.Errorf("Entry #%d\nExpected: %q\nGot:      %q", i, exp, got[i])
		}
	}
}

func TestRangeIdentifiersSeparateSessions(t *testing.T) {
	t.Parallel()
	raws := []string{"Term|(", "Term|)"}
	first := encodeAll(t, nil, raws)
	second := encodeAll(t, nil, raws)
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Entry #%d differs across sessions: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestIndexTypeAttribute(t *testing.T) {
	t.Parallel()
	env := &encoder.Environment{UseIndices: true, IndexName: "authors"}
	got := encodeAll(t, env, []string{"Stern", "Stern|(", "Stern|)"})
	expected := []string{
		`<indexterm type="authors"><primary>Stern</primary></indexterm>`,
		`<indexterm type="authors" class="startofrange" xml:id="stern"><primary>Stern</primary></indexterm>`,
		`<indexterm class="endofrange" startref="stern"/>`,
	}
	for i, exp := range expected {
		if got[i] != exp {
			t.Errorf("Entry #%d\nExpected: %q\nGot:      %q", i, exp, got[i])
		}
	}
}

func TestDiagnostics(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		raw string
		exp string
	}{
		{
			raw: `key@\textbf{Stern}`,
			exp: "<!-- Output Error: Unsupported feature: an index entry contains an @\\. " +
				"Complete entry: &quot;key@\\textbf{Stern}&quot; -->\n" +
				`<indexterm><primary sortas="key">\textbf{Stern}</primary></indexterm>`,
		},
		{
			raw: "Stern|see{Mond,Planet}",
			exp: "<!-- Output Error: Several index terms found as &quot;see&quot;! " +
				"Only one is acceptable. -->\n" +
				"<indexterm><primary>Stern</primary><see>Mond</see></indexterm>",
		},
		{
			raw: "|textbf",
			exp: "<!-- Output Error: Unsupported feature: an index entry contains a | " +
				"with an unsupported command, textbf. Complete entry: &quot;|textbf&quot; -->\n" +
				"<!-- Output Error: No index term found! Complete entry: &quot;|textbf&quot; -->\n",
		},
	}
	for i, tc := range testCases {
		got := encodeAll(t, nil, []string{tc.raw})
		if got[0] != tc.exp {
			t.Errorf("Test #%d (%q)\nExpected: %q\nGot:      %q", i, tc.raw, tc.exp, got[0])
		}
	}
}

func TestSubentriesAndSee(t *testing.T) {
	t.Parallel()
	got := encodeAll(t, nil, []string{
		"Brot!Herstellung!Teig",
		"Brot|seealso{Mehl,Hefe}",
	})
	expected := []string{
		"<indexterm><primary>Brot</primary><secondary>Herstellung</secondary>" +
			"<tertiary>Teig</tertiary></indexterm>",
		"<indexterm><primary>Brot</primary><seealso>Mehl</seealso><seealso>Hefe</seealso></indexterm>",
	}
	for i, exp := range expected {
		if got[i] != exp {
			t.Errorf("Entry #%d\nExpected: %q\nGot:      %q", i, exp, got[i])
		}
	}
}
