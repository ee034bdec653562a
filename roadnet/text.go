package roadnet

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/roadpath/core"
)

// tokens reads whitespace-separated words and tracks how many were consumed
// so error messages can point at the failing one.
type tokens struct {
	sc  *bufio.Scanner
	pos int
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokens{sc: sc}
}

// next returns the next word, or io.ErrUnexpectedEOF.
func (t *tokens) next(what string) (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: token %d (%s): %v", ErrMalformedInput, t.pos, what, io.ErrUnexpectedEOF)
	}
	t.pos++

	return t.sc.Text(), nil
}

func (t *tokens) integer(what string, bits int) (int64, error) {
	s, err := t.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d (%s) %q is not an integer", ErrMalformedInput, t.pos, what, s)
	}

	return v, nil
}

// preallocLimit bounds slice preallocation from untrusted counts; the Store
// enforces the real capacity.
const preallocLimit = 1024

// ParseText reads the whitespace format described in the package doc.
// The trailing source token is optional.
func ParseText(r io.Reader, opts ...core.StoreOption) (*Network, error) {
	t := newTokens(r)

	v, err := t.integer("city count", 0)
	if err != nil {
		return nil, err
	}
	e, err := t.integer("road count", 0)
	if err != nil {
		return nil, err
	}
	if v < 1 || e < 0 {
		return nil, fmt.Errorf("%w: V=%d E=%d", core.ErrInvalidSize, v, e)
	}
	// Capacity check before reading V names.
	if _, err = core.NewStore(int(v), 0, opts...); err != nil {
		return nil, err
	}

	cities := make([]string, 0, min(v, preallocLimit))
	for i := int64(0); i < v; i++ {
		name, err := t.next("city name")
		if err != nil {
			return nil, err
		}
		cities = append(cities, name)
	}

	roads := make([]Road, 0, min(e, preallocLimit))
	for i := int64(0); i < e; i++ {
		from, err := t.next("road source")
		if err != nil {
			return nil, err
		}
		to, err := t.next("road destination")
		if err != nil {
			return nil, err
		}
		w, err := t.integer("road distance", 64)
		if err != nil {
			return nil, err
		}
		roads = append(roads, Road{From: from, To: to, Distance: w})
	}

	var source string
	if t.sc.Scan() {
		source = t.sc.Text()
	} else if err = t.sc.Err(); err != nil {
		return nil, err
	}

	return Build(cities, roads, source, opts...)
}

// WriteText writes n in the format ParseText reads.
func WriteText(w io.Writer, n *Network) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %d\n", len(n.Cities), len(n.Roads))
	b.WriteString(strings.Join(n.Cities, "\n"))
	b.WriteByte('\n')
	for _, r := range n.Roads {
		fmt.Fprintf(&b, "%s %s %d\n", r.From, r.To, r.Distance)
	}
	if n.Source != "" {
		b.WriteString(n.Source)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())

	return err
}
