// Package roadnet is the I/O shell around the shortest-path core: it reads
// road networks written with city names, resolves names to vertex indices,
// builds a frozen core.Store, and renders distance tables back with names.
//
// Two input formats are supported:
//
//   - Text (ParseText): whitespace-separated tokens
//
//     V E
//     name_0 ... name_{V-1}
//     from to weight        (E times)
//     source                (optional)
//
//   - YAML (ParseYAML): a document with cities, roads and an optional source.
//
// City names are case-sensitive and must be unique.
package roadnet

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/roadpath/core"
)

// Sentinel errors for road-network input.
var (
	// ErrUnknownCity indicates a road or source names a city not in the list.
	ErrUnknownCity = errors.New("roadnet: unknown city")

	// ErrDuplicateCity indicates a city name appears more than once.
	ErrDuplicateCity = errors.New("roadnet: duplicate city")

	// ErrMalformedInput indicates missing tokens or non-integer counts/weights.
	ErrMalformedInput = errors.New("roadnet: malformed input")
)

// Road is one directed road between two named cities.
type Road struct {
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Distance int64  `yaml:"distance"`
}

// Network is a named road network over a frozen Store.
type Network struct {
	Cities []string    // index → name
	Roads  []Road      // in Store order
	Source string      // default query source, may be empty
	Store  *core.Store // frozen

	index map[string]int
}

// Build resolves cities and roads into a frozen Store.
//
// Errors: ErrDuplicateCity, ErrUnknownCity, plus anything core.NewStore
// returns (ErrInvalidSize, ErrCapacityExceeded). A non-empty source must name
// a known city.
func Build(cities []string, roads []Road, source string, opts ...core.StoreOption) (*Network, error) {
	n := &Network{
		Cities: append([]string(nil), cities...),
		Roads:  append([]Road(nil), roads...),
		Source: source,
		index:  make(map[string]int, len(cities)),
	}
	for i, c := range n.Cities {
		if c == "" {
			return nil, fmt.Errorf("%w: city %d has an empty name", ErrMalformedInput, i)
		}
		if _, dup := n.index[c]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCity, c)
		}
		n.index[c] = i
	}

	s, err := core.NewStore(len(n.Cities), len(n.Roads), opts...)
	if err != nil {
		return nil, err
	}
	for i, r := range n.Roads {
		from, err := n.Index(r.From)
		if err != nil {
			return nil, fmt.Errorf("road %d: %w", i, err)
		}
		to, err := n.Index(r.To)
		if err != nil {
			return nil, fmt.Errorf("road %d: %w", i, err)
		}
		if err = s.SetEdge(i, from, to, r.Distance); err != nil {
			return nil, err
		}
	}
	if err = s.Freeze(); err != nil {
		return nil, err
	}
	n.Store = s

	if source != "" {
		if _, err = n.Index(source); err != nil {
			return nil, fmt.Errorf("source: %w", err)
		}
	}

	return n, nil
}

// Index resolves a city name to its vertex index.
func (n *Network) Index(name string) (int, error) {
	i, ok := n.index[name]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownCity, name)
	}

	return i, nil
}

// Name returns the display name of vertex i, or "" when out of range.
func (n *Network) Name(i int) string {
	if i < 0 || i >= len(n.Cities) {
		return ""
	}

	return n.Cities[i]
}
