package roadnet

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roadpath/core"
)

// document is the YAML shape of a road network:
//
//	cities: [Dhaka, Khulna, Sylhet]
//	roads:
//	  - {from: Dhaka, to: Khulna, distance: 4}
//	source: Dhaka
type document struct {
	Cities []string `yaml:"cities"`
	Roads  []Road   `yaml:"roads"`
	Source string   `yaml:"source,omitempty"`
}

// ParseYAML decodes a YAML road network. Unknown fields are rejected.
func ParseYAML(r io.Reader, opts ...core.StoreOption) (*Network, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMalformedInput)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	return Build(doc.Cities, doc.Roads, doc.Source, opts...)
}

// WriteYAML encodes n as a YAML document ParseYAML can read.
func WriteYAML(w io.Writer, n *Network) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Cities: n.Cities, Roads: n.Roads, Source: n.Source}); err != nil {
		return err
	}

	return enc.Close()
}
