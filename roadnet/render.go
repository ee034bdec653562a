package roadnet

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/roadpath/bellmanford"
)

const (
	ruler       = "------------------------------------"
	infinity    = "INF"
	cycleNotice = "Error: Graph contains a negative weight cycle!"
)

// Render writes the distance table for source. When cached is true a
// "Using cached results" banner precedes the table. Unreachable cities print
// as INF.
func Render(w io.Writer, n *Network, source int, d bellmanford.Distances, cached bool) error {
	var b strings.Builder
	if cached {
		fmt.Fprintf(&b, "Using cached results for %s\n\n", n.Name(source))
	}
	fmt.Fprintf(&b, "Source City: %s\n", n.Name(source))
	b.WriteString(ruler + "\n")
	fmt.Fprintf(&b, "%-15s Distance\n", "City")
	b.WriteString(ruler + "\n")
	for i, dist := range d {
		if dist == bellmanford.Unreachable {
			fmt.Fprintf(&b, "%-15s %s\n", n.Name(i), infinity)
			continue
		}
		fmt.Fprintf(&b, "%-15s %d\n", n.Name(i), dist)
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// RenderNegativeCycle writes the negative-cycle notice.
func RenderNegativeCycle(w io.Writer) error {
	_, err := fmt.Fprintln(w, cycleNotice)

	return err
}

// Entry is one row of a named distance vector. Distance is nil when the city
// is unreachable.
type Entry struct {
	City     string `json:"city" yaml:"city"`
	Distance *int64 `json:"distance" yaml:"distance"`
}

// Entries pairs d with city names, in vertex order.
func Entries(n *Network, d bellmanford.Distances) []Entry {
	out := make([]Entry, len(d))
	for i := range d {
		out[i].City = n.Name(i)
		if d.Reachable(i) {
			v := d[i]
			out[i].Distance = &v
		}
	}

	return out
}
