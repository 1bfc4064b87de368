//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of ixmark.
//
// ixmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package xml provides helper for a XML-based encoding.
package xml

import (
	"io"

	"codeberg.org/t73fde/ixmark/strfun"
)

// Attr is one attribute of a tag.
type Attr struct {
	Key   string
	Value string
}

// WriteStartTag writes an opening tag with the given attributes.
func WriteStartTag(w io.Writer, tag string, attrs ...Attr) {
	io.WriteString(w, "<")
	io.WriteString(w, tag)
	writeAttrs(w, attrs)
	io.WriteString(w, ">")
}

// WriteEndTag writes the closing tag.
func WriteEndTag(w io.Writer, tag string) {
	io.WriteString(w, "</")
	io.WriteString(w, tag)
	io.WriteString(w, ">")
}

// WriteCompTag writes a self-closing tag with the given attributes.
func WriteCompTag(w io.Writer, tag string, attrs ...Attr) {
	io.WriteString(w, "<")
	io.WriteString(w, tag)
	writeAttrs(w, attrs)
	io.WriteString(w, "/>")
}

// WriteTag writes a tag with the given escaped value and no attributes.
func WriteTag(w io.Writer, tag, value string) {
	WriteStartTag(w, tag)
	strfun.XMLEscape(w, value)
	WriteEndTag(w, tag)
}

// WriteComment writes an XML comment, followed by a line break.
func WriteComment(w io.Writer, text string) {
	io.WriteString(w, "<!-- ")
	strfun.XMLEscape(w, text)
	io.WriteString(w, " -->\n")
}

func writeAttrs(w io.Writer, attrs []Attr) {
	for _, attr := range attrs {
		io.WriteString(w, " ")
		io.WriteString(w, attr.Key)
		io.WriteString(w, `="`)
		strfun.XMLEscape(w, attr.Value)
		io.WriteString(w, `"`)
	}
}
