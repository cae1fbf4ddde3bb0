// Package result collects equilibrium records from completed LAMMPS
// runs. Each composition directory carries a results_summary.txt file
// appended to by the simulations, one line per (structure, temperature)
// run; this package parses those lines into typed records and keys them
// for lookup by the analysis layer.
package result
