// SPDX-License-Identifier: MIT

package session

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/topocoords/pointcloud"
	"gopkg.in/yaml.v3"
)

// Format selects the on-disk encoding of a state file.
type Format int

const (
	// YAML is the default encoding.
	YAML Format = iota
	// JSON is chosen for files ending in .json.
	JSON
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSON
	}

	return YAML
}

// Unmarshal decodes state bytes through the same loose-map path as Decode,
// so files get per-key recovery too. Only a syntactically broken document
// is an error.
func Unmarshal(data []byte, f Format) (SelectionState, []KeyIssue, error) {
	m, err := decodeMap(data, f)
	if err != nil {
		return SelectionState{}, nil, err
	}
	s, issues := Decode(m)

	return s, issues, nil
}

func decodeMap(data []byte, f Format) (map[string]any, error) {
	m := map[string]any{}
	if len(bytes.TrimSpace(data)) == 0 {
		return m, nil
	}
	var err error
	switch f {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&m)
	default:
		err = yaml.Unmarshal(data, &m)
	}
	if err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}

	return m, nil
}

// Marshal encodes s in the given format using the ToMap key layout.
func Marshal(s SelectionState, f Format) ([]byte, error) {
	m := s.ToMap()
	if f == JSON {
		return json.MarshalIndent(m, "", "  ")
	}

	return yaml.Marshal(m)
}

// LoadState reads a state file written by SaveState (or by hand).
func LoadState(path string) (SelectionState, []KeyIssue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SelectionState{}, nil, err
	}

	return Unmarshal(data, FormatFor(path))
}

// SaveState writes s to path, creating parent directories as needed.
func SaveState(path string, s SelectionState) error {
	data, err := Marshal(s, FormatFor(path))
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return os.WriteFile(path, data, 0o644)
}

// ResumeFile is ResumeMap over a state file written by SaveState. An
// unreadable or syntactically broken file fails with ErrConstruction.
func ResumeFile(cloud *pointcloud.Cloud, cfg Config, path string, opts ...Option) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConstruction, err)
	}
	m, err := decodeMap(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConstruction, path, err)
	}

	return ResumeMap(cloud, cfg, m, opts...)
}
