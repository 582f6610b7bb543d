// Package jsonb is the primary entry point for this module: a compact
// binary container format for JSON values (package container) and a
// JSONPath query language that walks those containers without fully
// deserializing them (package jsonpath).
package jsonb

import (
	"github.com/pkg/errors"

	"github.com/leiysky/jsonb/container"
	"github.com/leiysky/jsonb/jsonpath"
	"github.com/leiysky/jsonb/value"
)

// Config carries encode/query settings. The zero value is the same as
// NewDefaultConfig(); its With* methods each return a new Config rather
// than mutating the receiver.
type Config struct {
	ignoreCase bool
}

// NewDefaultConfig returns a Config with case-sensitive key lookup, matching
// container.GetByName's own default.
func NewDefaultConfig() *Config {
	return &Config{ignoreCase: false}
}

// WithIgnoreCase controls whether GetByName and member-selector path
// lookups fold ASCII case.
func (config Config) WithIgnoreCase(ignoreCase bool) *Config {
	config.ignoreCase = ignoreCase
	return &config
}

// Document binds a Config to name lookups (Get) and path queries (Query)
// against any number of buffers. Query parses its path on every call;
// CompiledPath holds an already parsed one.
type Document struct {
	config *Config
}

// NewDocument returns a Document that evaluates with the given Config.
func (config *Config) NewDocument() *Document {
	return &Document{config: config}
}

// Encode serializes v into a JSONB buffer.
func Encode(v *value.Value) ([]byte, error) {
	buf, err := container.Encode(v)
	if err != nil {
		return nil, errors.Wrap(err, "jsonb: encode")
	}
	return buf, nil
}

// Decode parses a JSONB buffer back into a value tree.
func Decode(buf []byte) (*value.Value, error) {
	v, err := container.Decode(buf)
	if err != nil {
		return nil, errors.Wrap(err, "jsonb: decode")
	}
	return v, nil
}

// ToString renders buf as canonical JSON text.
func ToString(buf []byte) (string, error) {
	s, err := container.ToString(buf)
	if err != nil {
		return "", errors.Wrap(err, "jsonb: to_string")
	}
	return s, nil
}

// Compare orders two JSONB buffers per the container package's total order.
func Compare(a, b []byte) int {
	return container.Compare(a, b)
}

// Get looks up a field by name, honoring the Document's Config case
// sensitivity.
func (d *Document) Get(buf []byte, name string) ([]byte, bool) {
	return container.GetByName(buf, name, d.config.ignoreCase)
}

// Query compiles and evaluates a path expression against buf in one step.
func (d *Document) Query(buf []byte, path string) ([][]byte, error) {
	compiled, err := jsonpath.Parse(path)
	if err != nil {
		return nil, errors.Wrap(err, "jsonb: query")
	}
	results, err := jsonpath.EvalCase(buf, compiled, d.config.ignoreCase)
	if err != nil {
		return nil, errors.Wrap(err, "jsonb: query")
	}
	return results, nil
}

// CompiledPath is a parsed path expression, reusable across many buffers
// without re-lexing/re-parsing.
type CompiledPath struct {
	path *jsonpath.Path
}

// CompilePath parses path once so it can be evaluated repeatedly.
func CompilePath(path string) (*CompiledPath, error) {
	p, err := jsonpath.Parse(path)
	if err != nil {
		return nil, errors.Wrap(err, "jsonb: compile path")
	}
	return &CompiledPath{path: p}, nil
}

// Eval runs a compiled path against buf.
func (c *CompiledPath) Eval(buf []byte) ([][]byte, error) {
	results, err := jsonpath.Eval(buf, c.path)
	if err != nil {
		return nil, errors.Wrap(err, "jsonb: eval")
	}
	return results, nil
}
