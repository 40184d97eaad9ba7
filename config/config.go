// Package config holds the emulator configuration, as loaded from a TOML
// file.
package config

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/cellvm/board"
	"github.com/ezrec/cellvm/translate"
)

var f = translate.From

var (
	ErrUnknownKey = errors.New(f("unknown configuration key"))
	ErrCells      = errors.New(f("cells must be positive"))
	ErrFaultDepth = errors.New(f("fault_depth outside the board"))
	ErrTickLimit  = errors.New(f("tick_limit is negative"))
	ErrPredefine  = errors.New(f("predefine name invalid"))
)

// Config is the emulator configuration.
type Config struct {
	Cells      uint              `toml:"cells"`       // Cells on the board.
	FaultDepth int               `toml:"fault_depth"` // Cells captured on a fault; 0 for the decoder default.
	TickLimit  int               `toml:"tick_limit"`  // Opcodes per run; 0 is unlimited.
	Verbose    bool              `toml:"verbose"`     // Enables verbose logging.
	Output     string            `toml:"output"`      // Observation output file; "-" is stdout.
	Predefine  map[string]string `toml:"predefine"`   // Assembler equates.
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Cells:     board.CELL_COUNT,
		Output:    "-",
		Predefine: map[string]string{},
	}
}

// Load reads the TOML file at path over the defaults and validates it.
func Load(path string) (cfg *Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("cannot read %s: %w", path, err)
		return
	}

	cfg, err = Parse(data)
	if err != nil {
		err = fmt.Errorf("%s: %w", path, err)
		cfg = nil
		return
	}

	return
}

// Parse decodes TOML text over the defaults and validates it.
// Keys that do not map to a configuration field are rejected.
func Parse(data []byte) (cfg *Config, err error) {
	cfg = Default()

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		err = fmt.Errorf("parse error: %w", err)
		cfg = nil
		return
	}

	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, len(undecoded))
		for n, key := range undecoded {
			keys[n] = key.String()
		}
		err = fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
		cfg = nil
		return
	}

	err = cfg.Validate()
	if err != nil {
		cfg = nil
		return
	}

	return
}

// Validate checks the configuration, returning every problem found.
func (cfg *Config) Validate() error {
	var errs []error

	if cfg.Cells == 0 {
		errs = append(errs, ErrCells)
	}

	if cfg.FaultDepth < 0 || uint(cfg.FaultDepth) > cfg.Cells {
		errs = append(errs, fmt.Errorf("%w: %d", ErrFaultDepth, cfg.FaultDepth))
	}

	if cfg.TickLimit < 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrTickLimit, cfg.TickLimit))
	}

	for name := range cfg.Predefine {
		if len(name) == 0 || strings.ContainsAny(name, " \t;:$'") {
			errs = append(errs, fmt.Errorf("%w: %q", ErrPredefine, name))
		}
	}

	return errors.Join(errs...)
}

// Defines returns the assembler predefines of the configuration.
func (cfg *Config) Defines() iter.Seq2[string, string] {
	return maps.All(cfg.Predefine)
}
