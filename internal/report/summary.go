package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"sfecalc/internal/sfe"
)

var rule = strings.Repeat("=", 80)

// WriteSummary writes the human-readable analysis report: grid
// overview, per-quantity statistics, and the detailed results grouped
// by composition.
func WriteSummary(w io.Writer, results []sfe.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("summary: no results")
	}
	comps, temps := axes(results)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "STACKING FAULT ENERGY (SFE) ANALYSIS SUMMARY")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total compositions analyzed: %d\n", len(comps))
	fmt.Fprintf(w, "Temperatures: %v K\n", temps)
	fmt.Fprintf(w, "Total data points: %d\n\n", len(results))

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "SUMMARY STATISTICS (mJ/m²)")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
	for _, q := range []struct {
		label string
		get   func(sfe.Result) float64
	}{
		{"γ_ISF", func(r sfe.Result) float64 { return r.ISFmJ }},
		{"γ_ESF", func(r sfe.Result) float64 { return r.ESFmJ }},
		{"γ_Twin", func(r sfe.Result) float64 { return r.TwinmJ }},
	} {
		series := make([]float64, len(results))
		for i, r := range results {
			series[i] = q.get(r)
		}
		fmt.Fprintf(w, "%s:\n", q.label)
		fmt.Fprintf(w, "  Mean:   %8.2f mJ/m²\n", stat.Mean(series, nil))
		fmt.Fprintf(w, "  Std:    %8.2f mJ/m²\n", stat.StdDev(series, nil))
		fmt.Fprintf(w, "  Min:    %8.2f mJ/m²\n", floats.Min(series))
		fmt.Fprintf(w, "  Max:    %8.2f mJ/m²\n\n", floats.Max(series))
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "DETAILED RESULTS BY COMPOSITION")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
	for _, comp := range comps {
		fmt.Fprintf(w, "\nComposition: %s\n", comp)
		fmt.Fprintln(w, strings.Repeat("-", 60))
		for _, r := range results {
			if r.Comp != comp {
				continue
			}
			fmt.Fprintf(w, "  T = %4.0f K:\n", r.Temp)
			fmt.Fprintf(w, "    γ_ISF  = %8.2f mJ/m²\n", r.ISFmJ)
			fmt.Fprintf(w, "    γ_ESF  = %8.2f mJ/m²\n", r.ESFmJ)
			fmt.Fprintf(w, "    γ_Twin = %8.2f mJ/m²\n", r.TwinmJ)
		}
	}
	return nil
}

// axes returns the sorted distinct compositions and temperatures of
// the result set
func axes(results []sfe.Result) ([]string, []float64) {
	cseen := make(map[string]bool)
	tseen := make(map[float64]bool)
	var comps []string
	var temps []float64
	for _, r := range results {
		if !cseen[r.Comp] {
			cseen[r.Comp] = true
			comps = append(comps, r.Comp)
		}
		if !tseen[r.Temp] {
			tseen[r.Temp] = true
			temps = append(temps, r.Temp)
		}
	}
	sort.Strings(comps)
	sort.Float64s(temps)
	return comps, temps
}
