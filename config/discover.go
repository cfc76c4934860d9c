package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrNotFound indicates an explicitly requested configuration file does
// not exist. Discovery never returns it; a fruitless upward walk is a
// normal empty outcome there.
var ErrNotFound = errors.New("config file not found")

// ParseError describes a malformed configuration file with enough context
// to point at the offending field.
type ParseError struct {
	// File is the path of the configuration file.
	File string

	// Key is the dotted section/field path at which decoding failed,
	// when the decoder could identify one.
	Key string

	// Err is the underlying decode error.
	Err error
}

func (e *ParseError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("parsing %s: field %q: %v", e.File, e.Key, e.Err)
	}
	return fmt.Sprintf("parsing %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Discover walks upward from startDir looking for a docstract.toml file,
// stopping at the first match or the filesystem root. An empty startDir
// means the current working directory. A missing file anywhere on the
// path is not an error: the result is (nil, nil) and callers fall back to
// Default.
func Discover(startDir string) (*ExtractionConfig, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		startDir = wd
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", startDir, err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return FromFile(candidate)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// FromFile loads exactly the given path. Unlike Discover this is strict: a
// missing file wraps ErrNotFound and a malformed file yields a ParseError.
func FromFile(path string) (*ExtractionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return parse(data, path)
}

// parse overlays the file content onto the system defaults. Sections and
// fields absent from the file keep their default values; unknown keys are
// ignored; a wrong-typed field fails with a field-identifying ParseError.
func parse(data []byte, path string) (*ExtractionConfig, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		perr := &ParseError{File: path, Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Key = strings.Join(derr.Key(), ".")
		}
		return nil, perr
	}
	return cfg, nil
}
