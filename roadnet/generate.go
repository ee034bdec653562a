package roadnet

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/roadpath/core"
)

// GenerateOptions configures Generate. The same options always produce the
// same network.
type GenerateOptions struct {
	Cities  int     // number of cities, named City1..CityN
	Density float64 // probability in (0,1] that road i→j (i≠j) exists; 1 is complete
	Min     int64   // inclusive distance range; Min may be negative
	Max     int64
	Seed    int64
}

// DefaultGenerateOptions returns a complete 5-city network with distances in
// [1, 50].
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Cities:  5,
		Density: 1,
		Min:     1,
		Max:     50,
		Seed:    1,
	}
}

// Generate builds a random road network. The first city is the source.
func Generate(o GenerateOptions, opts ...core.StoreOption) (*Network, error) {
	// Capacity check before the O(V²) road loop.
	if _, err := core.NewStore(o.Cities, 0, opts...); err != nil {
		return nil, err
	}
	if math.IsNaN(o.Density) || o.Density <= 0 || o.Density > 1 {
		return nil, fmt.Errorf("%w: density %.3f not in (0,1]", ErrMalformedInput, o.Density)
	}
	if o.Min > o.Max {
		return nil, fmt.Errorf("%w: min %d > max %d", ErrMalformedInput, o.Min, o.Max)
	}

	r := rand.New(rand.NewSource(o.Seed))
	cities := make([]string, o.Cities)
	for i := range cities {
		cities[i] = fmt.Sprintf("City%d", i+1)
	}

	span := o.Max - o.Min + 1
	if span <= 0 {
		return nil, fmt.Errorf("%w: distance range [%d,%d] too wide", ErrMalformedInput, o.Min, o.Max)
	}
	var roads []Road
	for i := 0; i < o.Cities; i++ {
		for j := 0; j < o.Cities; j++ {
			if i == j || r.Float64() >= o.Density {
				continue
			}
			roads = append(roads, Road{
				From:     cities[i],
				To:       cities[j],
				Distance: o.Min + r.Int63n(span),
			})
		}
	}

	return Build(cities, roads, cities[0], opts...)
}
