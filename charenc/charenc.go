//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of ixmark.
//
// ixmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package charenc validates characters against a target character encoding
// and provides a best-effort transliteration for uncodable ones.
package charenc

import (
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
	"golang.org/x/text/unicode/norm"
)

// Validator reports whether characters are representable in a target
// encoding and offers a transliteration fallback for those that are not.
type Validator interface {
	// Transliterate returns the best-effort representable form of s, together
	// with the concatenation of all runes that were not representable.
	// An empty second value means that s was fully representable.
	Transliterate(s string) (result, uncodable string)
}

// All returns a validator that accepts every character unchanged. It is
// used when the target encoding can represent all of Unicode.
func All() Validator { return allValid{} }

type allValid struct{}

func (allValid) Transliterate(s string) (string, string) { return s, "" }

// NewEncodingValidator returns a validator for the given character encoding.
func NewEncodingValidator(enc encoding.Encoding) Validator {
	return &encValidator{test: makeEncodingTest(enc)}
}

// NewRuneValidator returns a validator that asks the given function whether
// a rune is representable.
func NewRuneValidator(representable func(rune) bool) Validator {
	return &encValidator{test: representable}
}

func makeEncodingTest(enc encoding.Encoding) func(rune) bool {
	e := enc.NewEncoder()
	return func(r rune) bool {
		_, err := e.String(string(r))
		return err == nil
	}
}

var ignoreUnicode = []*unicode.RangeTable{
	unicode.Mark,
	unicode.Sk,
	unicode.Lm,
}

type encValidator struct {
	test func(rune) bool
}

func (v *encValidator) Transliterate(s string) (string, string) {
	var result, uncodable strings.Builder
	for _, r := range s {
		if v.test(r) {
			result.WriteRune(r)
			continue
		}
		uncodable.WriteRune(r)
		// Decompose and retry the base characters, e.g. é -> e.
		wrote := false
		for _, fr := range norm.NFKD.String(string(r)) {
			if unicode.IsOneOf(ignoreUnicode, fr) {
				continue
			}
			if v.test(fr) {
				result.WriteRune(fr)
				wrote = true
			}
		}
		if !wrote {
			result.WriteByte('?')
		}
	}
	return result.String(), uncodable.String()
}
