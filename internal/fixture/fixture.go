// Package fixture reads YAML descriptions of modules whose function bodies are written in a
// line oriented text format, one instruction per line:
//
//	types:
//	  - params: [i32]
//	    results: [i32]
//	functions:
//	  - type: 0
//	    body: |
//	      block i32
//	        local.get 0
//	        local.get 0
//	        br_if 0 ;; returns the parameter unless it is zero
//	        drop
//	        i32.const -1
//	      end
//
// The end of the function is implicit.
package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/flatwasm/flatwasm/internal/wasm"
)

// ErrSyntax is returned when a fixture cannot be parsed.
var ErrSyntax = errors.New("syntax error")

type file struct {
	Types     []funcType `yaml:"types"`
	Imports   imports    `yaml:"imports"`
	Globals   []string   `yaml:"globals"`
	Tables    []string   `yaml:"tables"`
	Tags      []uint32   `yaml:"tags"`
	Functions []function `yaml:"functions"`
}

type funcType struct {
	Params  []string `yaml:"params"`
	Results []string `yaml:"results"`
}

type imports struct {
	Functions []uint32 `yaml:"functions"`
	Globals   []string `yaml:"globals"`
	Tables    []string `yaml:"tables"`
}

type function struct {
	Type   uint32   `yaml:"type"`
	Locals []string `yaml:"locals"`
	Body   string   `yaml:"body"`
}

// Load reads and parses the fixture at the given path.
func Load(fs afero.Fs, path string) (*wasm.Module, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse parses a fixture. Unknown fields are rejected.
func Parse(data []byte) (*wasm.Module, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty fixture", ErrSyntax)
		}
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return f.module()
}

func (f *file) module() (m *wasm.Module, err error) {
	m = &wasm.Module{ImportedFunctions: f.Imports.Functions, Tags: f.Tags}
	for i, t := range f.Types {
		ft := &wasm.FunctionType{}
		if ft.Params, err = parseValTypes(t.Params); err != nil {
			return nil, fmt.Errorf("type[%d]: %w", i, err)
		}
		if ft.Results, err = parseValTypes(t.Results); err != nil {
			return nil, fmt.Errorf("type[%d]: %w", i, err)
		}
		m.Types = append(m.Types, ft)
	}
	if m.ImportedGlobals, err = parseValTypes(f.Imports.Globals); err != nil {
		return nil, fmt.Errorf("imported globals: %w", err)
	}
	if m.Globals, err = parseValTypes(f.Globals); err != nil {
		return nil, fmt.Errorf("globals: %w", err)
	}
	if m.ImportedTables, err = parseValTypes(f.Imports.Tables); err != nil {
		return nil, fmt.Errorf("imported tables: %w", err)
	}
	if m.Tables, err = parseValTypes(f.Tables); err != nil {
		return nil, fmt.Errorf("tables: %w", err)
	}

	for i, fn := range f.Functions {
		funcIndex := len(m.ImportedFunctions) + i
		body := &wasm.FunctionBody{}
		if body.Locals, err = parseValTypes(fn.Locals); err != nil {
			return nil, fmt.Errorf("function[%d]: %w", funcIndex, err)
		}
		if body.Instructions, err = ParseBody(fn.Body); err != nil {
			return nil, fmt.Errorf("function[%d]: %w", funcIndex, err)
		}
		m.Functions = append(m.Functions, fn.Type)
		m.Codes = append(m.Codes, body)
	}
	return m, nil
}

func parseValTypes(names []string) ([]wasm.ValType, error) {
	if len(names) == 0 {
		return nil, nil
	}
	ret := make([]wasm.ValType, len(names))
	for i, n := range names {
		vt, err := ParseValType(n)
		if err != nil {
			return nil, err
		}
		ret[i] = vt
	}
	return ret, nil
}
