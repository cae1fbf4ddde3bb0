package sfe

import (
	"fmt"
	"strings"

	"sfecalc/internal/result"
)

// EvA2ToMJM2 converts eV/Å² to mJ/m². Downstream interpretation
// depends on this exact value; do not round it.
const EvA2ToMJM2 = 16021.766

// Result holds the fault energies for one (composition, temperature)
// cell in both native eV/Å² and converted mJ/m² units, along with the
// inputs they were derived from.
type Result struct {
	Comp    string
	Temp    float64
	EFCC    float64
	EHCP    float64
	EDHCP   float64
	AreaFCC float64

	DeltaDHCPFCC float64
	DeltaHCPFCC  float64

	ISF  float64 // intrinsic stacking fault, eV/Å²
	ESF  float64 // extrinsic stacking fault, eV/Å²
	Twin float64 // twin boundary, eV/Å²

	ISFmJ  float64
	ESFmJ  float64
	TwinmJ float64
}

// MissingStructureError reports a cell that cannot be evaluated
// because one or more reference structures have no record.
type MissingStructureError struct {
	Comp    string
	Temp    float64
	Missing []result.Structure
}

func (e *MissingStructureError) Error() string {
	names := make([]string, len(e.Missing))
	for i, s := range e.Missing {
		names[i] = s.String()
	}
	return fmt.Sprintf("%s at %g K: missing %s",
		e.Comp, e.Temp, strings.Join(names, ","))
}

// Evaluate applies the DMLF model to one complete cell. The three
// records must share a composition and temperature; the FCC record's
// xy area is the reference area.
//
//	γ_ISF  = 4(E_dhcp − E_fcc) / A_fcc
//	γ_ESF  = (E_hcp + 2·E_dhcp − 3·E_fcc) / A_fcc
//	γ_Twin = 2(E_dhcp − E_fcc) / A_fcc
func Evaluate(fcc, hcp, dhcp result.SimulationResult) Result {
	dDHCP := dhcp.Energy - fcc.Energy
	dHCP := hcp.Energy - fcc.Energy
	area := fcc.AreaXY
	isf := 4 * dDHCP / area
	esf := (dHCP + 2*dDHCP) / area
	twin := 2 * dDHCP / area
	return Result{
		Comp:         fcc.Comp,
		Temp:         fcc.Temp,
		EFCC:         fcc.Energy,
		EHCP:         hcp.Energy,
		EDHCP:        dhcp.Energy,
		AreaFCC:      area,
		DeltaDHCPFCC: dDHCP,
		DeltaHCPFCC:  dHCP,
		ISF:          isf,
		ESF:          esf,
		Twin:         twin,
		ISFmJ:        isf * EvA2ToMJM2,
		ESFmJ:        esf * EvA2ToMJM2,
		TwinmJ:       twin * EvA2ToMJM2,
	}
}

// EvaluateCell looks up the three reference structures for a cell in s
// and evaluates the model. A cell with absent structures returns a
// *MissingStructureError naming them.
func EvaluateCell(s *result.Store, comp string, temp float64) (Result, error) {
	if missing := s.Missing(comp, temp); len(missing) > 0 {
		return Result{}, &MissingStructureError{
			Comp: comp, Temp: temp, Missing: missing,
		}
	}
	fcc, _ := s.Lookup(comp, result.FCC, temp)
	hcp, _ := s.Lookup(comp, result.HCP, temp)
	dhcp, _ := s.Lookup(comp, result.DHCP, temp)
	return Evaluate(fcc, hcp, dhcp), nil
}
