// Package config carries the runtime options cmd/gintendo assembles
// from its flags and hands down to the rest of the program: which ROM
// to load, whether to run headless (no ebiten window, for scripted or
// CI runs), how verbosely to log, and whether a fatal programming
// error should include a stack trace. Grounded on SPEC_FULL.md §3's
// ambient-state addition -- the teacher has no equivalent package,
// since gintendo.go reads its one flag directly into a local variable.
package config

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Config is the fully-resolved set of runtime options for one run of
// the emulator.
type Config struct {
	ROMPath      string
	Headless     bool
	LogLevel     zerolog.Level
	TraceOnPanic bool
}

// ParseLogLevel maps a CLI-facing level name to a zerolog.Level,
// defaulting unrecognized or empty input to zerolog.InfoLevel rather
// than failing the whole run over a cosmetic flag.
func ParseLogLevel(name string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Validate checks the options that must hold before New can safely
// construct a bus/CPU pair: a ROM path was actually given.
func (c Config) Validate() error {
	if c.ROMPath == "" {
		return errors.New("config: no ROM path given")
	}
	return nil
}
