//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of ixmark.
//
// ixmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package encoder_test

import (
	"bytes"
	"fmt"
	"testing"

	"codeberg.org/t73fde/ixmark/api"
	"codeberg.org/t73fde/ixmark/ast"
	"codeberg.org/t73fde/ixmark/encoder"

	_ "codeberg.org/t73fde/ixmark/encoder/docbookenc" // Allow to use DocBook encoder.
	_ "codeberg.org/t73fde/ixmark/encoder/latexenc"   // Allow to use LaTeX encoder.
	_ "codeberg.org/t73fde/ixmark/encoder/szenc"      // Allow to use sz encoder.
	_ "codeberg.org/t73fde/ixmark/encoder/textenc"    // Allow to use text encoder.
)

type entryTestCase struct {
	descr  string
	raw    string
	plain  string
	expect expectMap
}

type expectMap map[api.EncodingEnum]string

const (
	encoderDocBook = api.EncoderDocBook
	encoderLaTeX   = api.EncoderLaTeX
	encoderSz      = api.EncoderSz
	encoderText    = api.EncoderText
)

var tcsEntry = []entryTestCase{
	{
		descr: "Empty entry produces near nothing",
		raw:   "",
		expect: expectMap{
			encoderLaTeX:   `\index{}`,
			encoderDocBook: "<!-- Output Error: No index term found! Complete entry: &quot;&quot; -->\n",
			encoderSz:      `(ENTRY (LEVELS ""))`,
			encoderText:    "",
		},
	},
	{
		descr: "Single term",
		raw:   "Alpha",
		plain: "Alpha",
		expect: expectMap{
			encoderLaTeX:   `\index{Alpha}`,
			encoderDocBook: "<indexterm><primary>Alpha</primary></indexterm>",
			encoderSz:      `(ENTRY (LEVELS "Alpha"))`,
			encoderText:    "Alpha",
		},
	},
	{
		descr: "Three levels with a see command",
		raw:   "Alpha!Beta!Gamma|see{Delta}",
		plain: "Alpha!Beta!Gamma|see{Delta}",
		expect: expectMap{
			encoderLaTeX: `\index{Alpha!Beta!Gamma|see{Delta}}`,
			encoderDocBook: "<indexterm><primary>Alpha</primary><secondary>Beta</secondary>" +
				"<tertiary>Gamma</tertiary><see>Delta</see></indexterm>",
			encoderSz:   `(ENTRY (LEVELS "Alpha" "Beta" "Gamma") (SEE "Delta"))`,
			encoderText: "Alpha, Beta, Gamma",
		},
	},
	{
		descr: "Two levels with a seealso command",
		raw:   "Bread!production|seealso{Flour,Yeast}",
		plain: "Bread!production|seealso{Flour,Yeast}",
		expect: expectMap{
			encoderLaTeX: `\index{Bread!production|seealso{Flour,Yeast}}`,
			encoderDocBook: "<indexterm><primary>Bread</primary><secondary>production</secondary>" +
				"<seealso>Flour</seealso><seealso>Yeast</seealso></indexterm>",
			encoderSz:   `(ENTRY (LEVELS "Bread" "production") (SEEALSO "Flour" "Yeast"))`,
			encoderText: "Bread, production",
		},
	},
	{
		descr: "Formatted term gets a generated sort key",
		raw:   `\LyX`,
		plain: "LyX",
		expect: expectMap{
			encoderLaTeX:   `\index{LyX@\LyX}`,
			encoderDocBook: `<indexterm><primary>\LyX</primary></indexterm>`,
			encoderSz:      `(ENTRY (LEVELS "\\LyX"))`,
			encoderText:    `\LyX`,
		},
	},
	{
		descr: "Explicit sort key is left untouched",
		raw:   "key@Term",
		plain: "key@Term",
		expect: expectMap{
			encoderLaTeX:   `\index{key@Term}`,
			encoderDocBook: `<indexterm><primary sortas="key">Term</primary></indexterm>`,
			encoderSz:      `(ENTRY (LEVELS "key@Term"))`,
			encoderText:    "Term",
		},
	},
	{
		descr: "Range start",
		raw:   "Term|(",
		plain: "Term|(",
		expect: expectMap{
			encoderLaTeX: `\index{Term|(}`,
			encoderDocBook: `<indexterm class="startofrange" xml:id="term">` +
				"<primary>Term</primary></indexterm>",
			encoderSz:   `(ENTRY (LEVELS "Term") (RANGE-START))`,
			encoderText: "Term",
		},
	},
	{
		descr: "Page number formatting command",
		raw:   "Term|textbf",
		plain: "Term|textbf",
		expect: expectMap{
			encoderLaTeX: `\index{Term|textbf}`,
			encoderDocBook: "<!-- Output Error: Unsupported feature: an index entry contains a | " +
				"with an unsupported command, textbf. Complete entry: &quot;Term|textbf&quot; -->\n" +
				"<indexterm><primary>Term</primary></indexterm>",
			encoderSz:   `(ENTRY (LEVELS "Term") (FORMAT "textbf"))`,
			encoderText: "Term",
		},
	},
	{
		descr: "Unknown see-like command",
		raw:   "Term|unknownseecmd{X}",
		plain: "Term|unknownseecmd{X}",
		expect: expectMap{
			encoderLaTeX: `\index{Term|unknownseecmd{X}}`,
			encoderDocBook: "<!-- Output Error: Unsupported feature: an index entry contains a | " +
				"with an unsupported command, unknownseecmd{X}. " +
				"Complete entry: &quot;Term|unknownseecmd{X}&quot; -->\n" +
				"<indexterm><primary>Term</primary></indexterm>",
			encoderSz:   `(ENTRY (LEVELS "Term") (FORMAT "unknownseecmd{X}"))`,
			encoderText: "Term",
		},
	},
}

func TestEncoder(t *testing.T) {
	executeTestCases(t, tcsEntry)
}

func executeTestCases(t *testing.T, testCases []entryTestCase) {
	t.Helper()
	for testNum, tc := range testCases {
		occ := &ast.Occurrence{Raw: tc.raw, Plain: tc.plain, Anchor: "magic"}
		checkEncodings(t, testNum, occ, tc.descr, tc.expect)
	}
}

func checkEncodings(t *testing.T, testNum int, occ *ast.Occurrence, descr string, expected expectMap) {
	t.Helper()
	for enc, exp := range expected {
		encdr := encoder.Create(enc, nil)
		if encdr == nil {
			t.Errorf("No encoder for %q found", enc)
			continue
		}
		var buf bytes.Buffer
		if _, err := encdr.WriteEntry(&buf, occ); err != nil {
			t.Error(err)
			continue
		}
		if got := buf.String(); got != exp {
			prefix := fmt.Sprintf("Test #%d", testNum)
			if d := descr; d != "" {
				prefix += "\nReason:   " + d
			}
			t.Errorf("%s\nEncoder:  %s\nExpected: %q\nGot:      %q", prefix, enc, exp, got)
		}
	}
}

func TestGetEncodings(t *testing.T) {
	encodings := encoder.GetEncodings()
	if len(encodings) < 4 {
		t.Errorf("Expected at least 4 registered encodings, got %v", encodings)
	}
	for _, enc := range encodings {
		if encdr := encoder.Create(enc, nil); encdr == nil {
			t.Errorf("Registered encoding %q has no encoder", enc)
		}
	}
}
