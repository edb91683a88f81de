package qnamelit

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config declares constructors, beyond those in package qname, whose
// string argument must be a valid QName.
type Config struct {
	Constructors []Constructor `toml:"constructors"`
}

// Constructor identifies a function that forwards one of its arguments to
// the QName validator.
type Constructor struct {
	// Package is the import path that declares Func.
	Package string `toml:"package"`
	// Func is the name of a package-level function. Methods with the same
	// name are never matched.
	Func string `toml:"func"`
	// Arg is the zero-based index of the QName argument.
	Arg int `toml:"arg"`
	// Must marks constructors that panic on invalid input; under -strict
	// their non-constant arguments are reported.
	Must bool `toml:"must"`
}

type funcKey struct {
	pkg  string
	name string
}

type target struct {
	arg            int
	mustBeConstant bool
}

// loadConfig reads and parses the constructor config file.
// Returns an empty config if path is empty; a path that was given must be
// readable.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config TOML: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	for i, ctor := range c.Constructors {
		if strings.TrimSpace(ctor.Package) == "" {
			errs = append(errs, fmt.Errorf("constructors[%d]: package is required", i))
		}
		if strings.TrimSpace(ctor.Func) == "" {
			errs = append(errs, fmt.Errorf("constructors[%d]: func is required", i))
		}
		if ctor.Arg < 0 {
			errs = append(errs, fmt.Errorf("constructors[%d]: arg must be >= 0, got %d", i, ctor.Arg))
		}
	}
	return errors.Join(errs...)
}

// targets returns the constructors to check, keyed by package and name.
// Entries for package qname always take precedence over the config.
func (c *Config) targets() map[funcKey]target {
	out := make(map[funcKey]target, len(c.Constructors)+2)
	for _, ctor := range c.Constructors {
		out[funcKey{pkg: ctor.Package, name: ctor.Func}] = target{arg: ctor.Arg, mustBeConstant: ctor.Must}
	}
	out[funcKey{pkg: QNamePackage, name: "MustParse"}] = target{arg: 0, mustBeConstant: true}
	out[funcKey{pkg: QNamePackage, name: "Parse"}] = target{arg: 0}
	return out
}
