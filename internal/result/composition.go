package result

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var compPat = regexp.MustCompile(`Al(\d+).*?Fe(\d+).*?Ni(\d+)`)

// ErrBadComposition reports a name that does not carry the three
// labeled percentage groups.
var ErrBadComposition = errors.New("composition name does not match AlNNFeNNNiNN")

// Composition is a ternary alloy composition in atomic percent.
type Composition struct {
	Al, Fe, Ni int
}

// ParseComposition extracts the atomic percentages from a composition
// directory name such as Comp01_Al100_Fe00_Ni00. The three groups must
// sum to 100.
func ParseComposition(name string) (Composition, error) {
	m := compPat.FindStringSubmatch(name)
	if m == nil {
		return Composition{}, fmt.Errorf("%w: %q", ErrBadComposition, name)
	}
	var c Composition
	// \d+ submatches cannot fail to parse
	c.Al, _ = strconv.Atoi(m[1])
	c.Fe, _ = strconv.Atoi(m[2])
	c.Ni, _ = strconv.Atoi(m[3])
	if c.Al+c.Fe+c.Ni != 100 {
		return Composition{}, fmt.Errorf(
			"composition %q sums to %d, not 100", name, c.Al+c.Fe+c.Ni)
	}
	return c, nil
}

// ID returns the canonical fixed-width identifier, e.g. Al00Fe00Ni100
func (c Composition) ID() string {
	return fmt.Sprintf("Al%02dFe%02dNi%02d", c.Al, c.Fe, c.Ni)
}

// Fractions returns the atomic fractions, which sum to 1.0
func (c Composition) Fractions() (al, fe, ni float64) {
	return float64(c.Al) / 100, float64(c.Fe) / 100, float64(c.Ni) / 100
}
