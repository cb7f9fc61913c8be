package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Load reads a histogram input document: a JSON object mapping suffix
// keys to datasets. The document is schema-validated first, then decoded
// with a token walk so the collection keeps the document's key order —
// Go maps would lose it, and iteration order is the one ordering
// guarantee render passes rely on.
func Load(r io.Reader) (*Collection, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read histogram input: %w", err)
	}

	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode histogram input: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("histogram input must be a JSON object")
	}

	col := NewCollection()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode histogram input: %w", err)
		}
		suffix, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("decode histogram input: unexpected key token %v", keyTok)
		}

		var ds Dataset
		if err := dec.Decode(&ds); err != nil {
			return nil, fmt.Errorf("dataset %q: %w", suffix, err)
		}
		if err := ds.Validate(); err != nil {
			return nil, fmt.Errorf("dataset %q: %w", suffix, err)
		}
		col.Add(suffix, ds)
	}

	return col, nil
}

// LoadFile loads a histogram input document from disk.
func LoadFile(path string) (*Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open histogram input: %w", err)
	}
	defer f.Close()
	return Load(f)
}
