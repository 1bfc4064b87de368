//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of ixmark.
//
// ixmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package encoder provides a generic interface to encode index entries into
// some target grammar.
package encoder

import (
	"errors"
	"fmt"
	"io"

	"codeberg.org/t73fde/ixmark/api"
	"codeberg.org/t73fde/ixmark/ast"
)

// Encoder is an interface that allows to encode index entries.
//
// An encoder instance is the unit of a rendering session: create one
// instance per ordered scan of a document and call WriteEntry in document
// order. Instances must not be shared across concurrent scans.
type Encoder interface {
	// WriteEntry encodes a single occurrence, streaming.
	WriteEntry(io.Writer, *ast.Occurrence) (int, error)

	// WriteIndex encodes the collected occurrences of a whole document.
	WriteIndex(io.Writer, []*ast.Occurrence) (int, error)
}

// Some errors to signal when encoder methods are not implemented.
var (
	ErrNoWriteEntry = errors.New("method WriteEntry is not implemented")
	ErrNoWriteIndex = errors.New("method WriteIndex is not implemented")
)

// Create builds a new encoder with the given options.
func Create(enc api.EncodingEnum, env *Environment) Encoder {
	if info, ok := registry[enc]; ok {
		return info.Create(env)
	}
	return nil
}

// Info stores some data about an encoder.
type Info struct {
	Create func(*Environment) Encoder
}

var registry = map[api.EncodingEnum]Info{}

// Register the encoder for later retrieval.
func Register(enc api.EncodingEnum, info Info) {
	if _, ok := registry[enc]; ok {
		panic(fmt.Sprintf("Encoder %q already registered", enc))
	}
	registry[enc] = info
}

// GetEncodings returns all registered encodings.
func GetEncodings() []api.EncodingEnum {
	result := make([]api.EncodingEnum, 0, len(registry))
	for enc := range registry {
		result = append(result, enc)
	}
	return result
}
