//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of ixmark.
//
// ixmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package api contains common definitions used by the engine and its callers.
package api

import "fmt"

// DefaultIndexName is the name of the standard index. Entries for this index
// are written with the plain \index macro, all others with \sindex.
const DefaultIndexName = "idx"

// EncodingEnum lists all valid encoder keys.
type EncodingEnum uint8

// Values for EncoderEnum
const (
	EncoderUnknown EncodingEnum = iota
	EncoderDocBook
	EncoderLaTeX
	EncoderSz
	EncoderText
	EncoderXHTML
)

// String representation of an encoder key.
func (f EncodingEnum) String() string {
	switch f {
	case EncoderDocBook:
		return "docbook"
	case EncoderLaTeX:
		return "latex"
	case EncoderSz:
		return "sz"
	case EncoderText:
		return "text"
	case EncoderXHTML:
		return "xhtml"
	}
	return fmt.Sprintf("*Unknown*(%d)", f)
}

// Encoder returns the encoder key for the given string value.
func Encoder(value string) EncodingEnum {
	switch value {
	case "docbook":
		return EncoderDocBook
	case "latex":
		return EncoderLaTeX
	case "sz":
		return EncoderSz
	case "text":
		return EncoderText
	case "xhtml":
		return EncoderXHTML
	}
	return EncoderUnknown
}
