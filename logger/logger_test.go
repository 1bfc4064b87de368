//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of ixmark.
//
// ixmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package logger_test

import (
	"bytes"
	"testing"
	"time"

	"codeberg.org/t73fde/ixmark/logger"
)

func TestParseLevel(t *testing.T) {
	testcases := []struct {
		text string
		exp  logger.Level
	}{
		{"tra", logger.TraceLevel},
		{"deb", logger.DebugLevel},
		{"info", logger.InfoLevel},
		{"warn", logger.WarnLevel},
		{"err", logger.ErrorLevel},
		{"manda", logger.MandatoryLevel},
		{"dis", logger.NeverLevel},
		{"d", logger.Level(0)},
	}
	for i, tc := range testcases {
		got := logger.ParseLevel(tc.text)
		if got != tc.exp {
			t.Errorf("%d: ParseLevel(%q) == %q, but got %q", i, tc.text, tc.exp, got)
		}
	}
}

func TestLogWriterAdapter(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.NewLogWriterAdapter(&buf), "latex")
	log.Warn().Str("entry", `\LyX`).Msg("Uncodable character in index entry")
	got := buf.String()
	stampLen := len("2006-01-02 15:04:05 ")
	if len(got) <= stampLen {
		t.Fatalf("message too short: %q", got)
	}
	exp := "WARN  latex  Uncodable character in index entry, entry=\\LyX\n"
	if got[stampLen:] != exp {
		t.Errorf("expected %q, got %q", exp, got[stampLen:])
	}
}

type countLogWriter struct {
	count int
}

func (clw *countLogWriter) WriteMessage(logger.Level, time.Time, string, string, []byte) error {
	clw.count++
	return nil
}

func TestLevelFilter(t *testing.T) {
	clw := &countLogWriter{}
	log := logger.New(clw, "parse").SetLevel(logger.WarnLevel)
	log.Debug().Msg("must not be written")
	log.Warn().Str("entry", "Term|foo").Msg("must be written")
	if clw.count != 1 {
		t.Errorf("expected exactly one written message, got %d", clw.count)
	}
}

func BenchmarkDisabled(b *testing.B) {
	log := logger.New(&countLogWriter{}, "").SetLevel(logger.NeverLevel)
	for n := 0; n < b.N; n++ {
		log.Info().Str("key", "val").Msg("Benchmark")
	}
}

func BenchmarkStrMessage(b *testing.B) {
	log := logger.New(&countLogWriter{}, "")
	for n := 0; n < b.N; n++ {
		log.Info().Str("key", "val").Msg("Benchmark")
	}
}
