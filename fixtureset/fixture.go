// Package fixtureset loads the JSON scenario files under testdata/fixtures
// into the concrete Go values each of the five verify entry points expects,
// so that adding a scenario is a matter of dropping a JSON file rather than
// hand-writing a Go literal.
package fixtureset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Kind names which verify entry point a fixture exercises.
type Kind string

const (
	KindAccount     Kind = "account"
	KindStorage     Kind = "storage"
	KindTransaction Kind = "transaction"
	KindReceipt     Kind = "receipt"
	KindHeader      Kind = "header"
)

// Fixture is one named scenario. WantErr is empty for a scenario expected
// to verify successfully, or the sentinel error's message
// (e.g. "verify: Nonce") for one expected to fail. Data holds the
// kind-specific fields, decoded by the matching DecodeXxx function in this
// package.
type Fixture struct {
	Name    string          `json:"name"`
	Kind    Kind            `json:"kind"`
	WantErr string          `json:"wantErr,omitempty"`
	Data    json.RawMessage `json:"data"`
}

// LoadFile reads a single fixture file, which may contain either one
// Fixture object or a JSON array of them.
func LoadFile(path string) ([]Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var list []Fixture
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var single Fixture
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, fmt.Errorf("fixtureset: %s: %w", path, err)
	}
	return []Fixture{single}, nil
}

// LoadDir reads every *.json file directly under dir and concatenates
// their fixtures, in filename order.
func LoadDir(dir string) ([]Fixture, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var out []Fixture
	for _, name := range names {
		fixtures, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		out = append(out, fixtures...)
	}
	return out, nil
}

// ByName finds the single fixture in set matching name.
func ByName(set []Fixture, name string) (Fixture, error) {
	for _, f := range set {
		if f.Name == name {
			return f, nil
		}
	}
	return Fixture{}, fmt.Errorf("fixtureset: no fixture named %q", name)
}
