//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of ixmark.
//
// ixmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package encoder

import (
	"codeberg.org/t73fde/ixmark/api"
	"codeberg.org/t73fde/ixmark/charenc"
	"codeberg.org/t73fde/ixmark/logger"
)

// Environment specifies all data and functions that affect encoding.
type Environment struct {
	Lang       string // default language of the document
	IndexName  string // name of the index the entries belong to
	UseIndices bool   // multiple indices are active
	Escape     rune   // escape rune of the markup, 0 = default
	DryRun     bool   // validation-only pass, suppress user advisories

	Validator charenc.Validator // target encoding of sort keys
	Logger    *logger.Logger    // receives diagnostics; may be nil

	// AdviseSortKey surfaces a non-blocking advisory to the user that
	// automatic sort key generation may have failed for the given entry.
	AdviseSortKey func(entry string)
}

// GetEscape returns the escape rune to use.
func (env *Environment) GetEscape() rune {
	if env == nil || env.Escape == 0 {
		return '\\'
	}
	return env.Escape
}

// GetValidator returns the character validator to use.
func (env *Environment) GetValidator() charenc.Validator {
	if env == nil || env.Validator == nil {
		return charenc.All()
	}
	return env.Validator
}

// GetLogger returns the (possibly nil) logger. A nil logger discards all
// messages.
func (env *Environment) GetLogger() *logger.Logger {
	if env == nil {
		return nil
	}
	return env.Logger
}

// GetIndexName returns the name of the index the entries belong to.
func (env *Environment) GetIndexName() string {
	if env == nil || env.IndexName == "" {
		return api.DefaultIndexName
	}
	return env.IndexName
}

// MultipleIndices returns true if more than one index is in use.
func (env *Environment) MultipleIndices() bool {
	return env != nil && env.UseIndices
}

// IsDryRun returns true if output is only produced for validation.
func (env *Environment) IsDryRun() bool {
	return env != nil && env.DryRun
}

// Advise surfaces a sort key advisory, unless this is a dry run.
func (env *Environment) Advise(entry string) {
	if env != nil && env.AdviseSortKey != nil && !env.DryRun {
		env.AdviseSortKey(entry)
	}
}
