package components

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/KirkDiggler/spellcraft/internal/domain/spell"
	spellerr "github.com/KirkDiggler/spellcraft/internal/errors"
	"gopkg.in/yaml.v3"
)

// Table is the serializable form of the component definitions
type Table struct {
	Options []spell.ComponentOption `json:"options" yaml:"options"`
}

// Validate checks every option and rejects duplicate keys
func (t *Table) Validate() error {
	if t == nil || len(t.Options) == 0 {
		return spellerr.Configuration("component table is empty")
	}

	seen := make(map[spell.ComponentKey]bool, len(t.Options))
	for i := range t.Options {
		opt := &t.Options[i]
		if err := opt.Check(); err != nil {
			return err
		}
		if seen[opt.Key] {
			return spellerr.Configurationf("component %s is defined twice", opt.Key).
				WithComponent(opt.Key.String()).
				WithConstraint("unique_key")
		}
		seen[opt.Key] = true
	}

	return nil
}

// ParseYAML decodes and validates a table. Unknown fields are rejected so a
// misspelled rate does not silently become "not applicable".
func ParseYAML(data []byte) (*Table, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var table Table
	if err := dec.Decode(&table); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, spellerr.Configuration("component table is empty")
		}
		return nil, spellerr.WrapWithCode(err, spellerr.CodeConfiguration, "failed to decode component table")
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &table, nil
}

// LoadFile reads a YAML table from disk
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, spellerr.WrapWithCode(err, spellerr.CodeConfiguration, "failed to read component table").
			WithMeta("path", path)
	}
	return ParseYAML(data)
}

// EncodeYAML renders the table in the same format ParseYAML reads
func (t *Table) EncodeYAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return nil, spellerr.Wrap(err, "failed to encode component table")
	}
	if err := enc.Close(); err != nil {
		return nil, spellerr.Wrap(err, "failed to encode component table")
	}
	return buf.Bytes(), nil
}
