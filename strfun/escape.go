//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of ixmark.
//
// ixmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package strfun

import (
	"io"
	"strings"
)

var (
	escQuot = []byte("&quot;") // longer than "&#34;", but often requested in standards
	escAmp  = []byte("&amp;")
	escLt   = []byte("&lt;")
	escGt   = []byte("&gt;")
	escNull = []byte("�")
)

// XMLEscape writes the string to the given writer, where every rune that has
// a special meaning in XML is escaped.
func XMLEscape(w io.Writer, s string) {
	var esc []byte
	last := 0
	for i, ch := range s {
		switch ch {
		case '\000':
			esc = escNull
		case '"':
			esc = escQuot
		case '&':
			esc = escAmp
		case '<':
			esc = escLt
		case '>':
			esc = escGt
		default:
			continue
		}
		io.WriteString(w, s[last:i])
		w.Write(esc)
		last = i + 1
	}
	io.WriteString(w, s[last:])
}

// LaTeXEscape returns the string with all runes escaped that would break a
// LaTeX macro argument, e.g. a \sindex index name.
func LaTeXEscape(s string) string {
	var sb strings.Builder
	for _, ch := range s {
		switch ch {
		case '\\':
			sb.WriteString(`\textbackslash{}`)
			continue
		case '{', '}', '%', '#', '&', '$', '_':
			sb.WriteByte('\\')
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}
