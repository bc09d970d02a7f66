package fingerprint

import (
	"errors"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/devicekit/pkg/textmatch"
)

// LoadAndroidTable parses a YAML list of Android fingerprint entries.
// The format mirrors AndroidEntry:
//
//	- gpu: "adreno (tm) 730"
//	  width: 360
//	  height: 800
//	  display_name: "Samsung Galaxy S22"
//	  models: ["Samsung Galaxy S22"]
//
// GPU substrings are folded on load so matching stays case-insensitive
// regardless of how the file spells them.
func LoadAndroidTable(r io.Reader) (AndroidTable, error) {
	if r == nil {
		return nil, ErrInvalidTable
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrInvalidTable, err)
	}

	var table AndroidTable
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return nil, errors.Join(ErrInvalidTable, err)
	}

	for i := range table {
		table[i].GPU = textmatch.Fold(table[i].GPU)
		if table[i].GPU == "" || table[i].Width <= 0 || len(table[i].Models) == 0 {
			return nil, ErrInvalidTableEntry
		}
		if table[i].DisplayName == "" {
			table[i].DisplayName = table[i].Models[0]
		}
	}
	return table, nil
}

// ExtendedAndroidTable returns the built-in table followed by the
// entries parsed from r. Built-ins keep priority and are never mutated;
// the result is a fresh table.
func ExtendedAndroidTable(r io.Reader) (AndroidTable, error) {
	extra, err := LoadAndroidTable(r)
	if err != nil {
		return nil, err
	}
	return append(slices.Clone(builtinAndroidTable), extra...), nil
}
