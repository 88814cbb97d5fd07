// Package config loads the type checker's three option flags (spec.md
// §7, §9) from a TOML file or from explicit overrides, the way the
// teacher loads its project manifest through BurntSushi/toml.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Options bundles the checker's externally tunable behaviour.
type Options struct {
	// BackwardCompat demotes Back-compat-type and Duplicate-constants
	// violations from fatal to warning.
	BackwardCompat bool `toml:"backward_compat"`

	// TypeCheckWarningEnabled controls whether non-fatal type-check
	// diagnostics (CheckWarningType and friends) are emitted at all.
	TypeCheckWarningEnabled bool `toml:"type_check_warnings"`

	// Verbosity selects how much diagnostic detail is reported; 0 is
	// errors only, higher values add warnings and info.
	Verbosity int `toml:"verbosity"`
}

// Default returns the checker's out-of-the-box options: strict mode,
// warnings on, verbosity 1.
func Default() Options {
	return Options{
		BackwardCompat:          false,
		TypeCheckWarningEnabled: true,
		Verbosity:               1,
	}
}

// Load reads Options from a TOML file at path, starting from Default()
// so an absent key keeps its default rather than zeroing out.
func Load(path string) (Options, error) {
	opts := Default()
	if _, err := os.Stat(path); err != nil {
		return Options{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if _, err := toml.DecodeFile(path, &opts); err != nil {
		return Options{}, fmt.Errorf("config: %s: failed to parse TOML: %w", path, err)
	}
	return opts, nil
}

// Parse decodes Options from an in-memory TOML document, for tests and
// for callers that already have the bytes (e.g. embedded defaults).
func Parse(doc string) (Options, error) {
	opts := Default()
	if _, err := toml.NewDecoder(bytes.NewReader([]byte(doc))).Decode(&opts); err != nil {
		return Options{}, fmt.Errorf("config: failed to parse TOML: %w", err)
	}
	return opts, nil
}
