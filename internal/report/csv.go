// Package report serializes aggregated fault energies for downstream
// plotting and inspection.
package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"sfecalc/internal/sfe"
)

// Header is the column set of the CSV export, one row per evaluated
// (composition, temperature) cell.
var Header = []string{
	"composition", "temperature",
	"E_fcc", "E_hcp", "E_dhcp", "area_fcc",
	"delta_E_dhcp_fcc", "delta_E_hcp_fcc",
	"gamma_ISF_eV_A2", "gamma_ESF_eV_A2", "gamma_Twin_eV_A2",
	"gamma_ISF_mJ_m2", "gamma_ESF_mJ_m2", "gamma_Twin_mJ_m2",
}

// WriteCSV writes results as CSV with six decimal places
func WriteCSV(w io.Writer, results []sfe.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	f := func(v float64) string { return fmt.Sprintf("%.6f", v) }
	for _, r := range results {
		row := []string{
			r.Comp, f(r.Temp),
			f(r.EFCC), f(r.EHCP), f(r.EDHCP), f(r.AreaFCC),
			f(r.DeltaDHCPFCC), f(r.DeltaHCPFCC),
			f(r.ISF), f(r.ESF), f(r.Twin),
			f(r.ISFmJ), f(r.ESFmJ), f(r.TwinmJ),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
