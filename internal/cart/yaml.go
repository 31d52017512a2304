package cart

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// SaveBank serializes the bank to YAML and writes it to path.
func SaveBank(path string, b *Bank) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cart: create %s: %w", path, err)
	}
	defer f.Close()
	return EncodeBank(f, b)
}

// LoadBank reads and decodes a YAML bank from path.
func LoadBank(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cart: open %s: %w", path, err)
	}
	defer f.Close()
	return DecodeBank(f)
}

// EncodeBank writes a bank as YAML to w.
func EncodeBank(w io.Writer, b *Bank) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("cart: encode bank: %w", err)
	}
	return nil
}

// DecodeBank reads a YAML-encoded bank from r, validating every patch
// after decode so a hand-edited file can never hand the engine an
// out-of-range parameter.
func DecodeBank(r io.Reader) (*Bank, error) {
	var b Bank
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("cart: decode bank: %w", err)
	}
	for c := range b.Carts {
		for p := range b.Carts[c].Patches {
			b.Carts[c].Patches[p].Validate()
		}
	}
	return &b, nil
}
