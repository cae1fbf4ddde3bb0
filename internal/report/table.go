package report

import (
	"fmt"
	"io"

	"sfecalc/internal/sfe"
)

// WriteTable prints a summary table of the fault energies in mJ/m²
func WriteTable(w io.Writer, results []sfe.Result) {
	line := fmt.Sprintf("+%14s-+%6s-+%8s-+%8s-+%8s-+\n",
		"--------------", "------", "--------", "--------", "--------")
	fmt.Fprint(w, line)
	fmt.Fprintf(w, "|%14s |%6s |%8s |%8s |%8s |\n",
		"Composition", "T (K)", "ISF", "ESF", "Twin")
	fmt.Fprint(w, line)
	for _, r := range results {
		fmt.Fprintf(w, "|%14s |%6.0f |%8.2f |%8.2f |%8.2f |\n",
			r.Comp, r.Temp, r.ISFmJ, r.ESFmJ, r.TwinmJ)
	}
	fmt.Fprint(w, line)
}
