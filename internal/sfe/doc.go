// Package sfe derives stacking fault energies from equilibrium
// energies of the FCC, HCP, and DHCP reference structures using the
// Diffuse Multi-Layer Fault model of Charpagne et al., Acta Materialia
// 194 (2020) 224-235.
package sfe
