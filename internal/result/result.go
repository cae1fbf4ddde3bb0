package result

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Errors used throughout
var (
	ErrNoData        = errors.New("no simulation data found")
	ErrBadStructure  = errors.New("unknown structure name")
	ErrShortLine     = errors.New("too few fields in result line")
	ErrSummaryAbsent = errors.New("no results_summary.txt in composition directory")
)

// Structure is a reference crystal structure simulated for each
// composition cell.
type Structure int

const (
	FCC Structure = iota
	HCP
	DHCP
)

// Required lists the structures a cell needs before the fault energies
// can be evaluated, in reporting order.
var Required = []Structure{FCC, HCP, DHCP}

func (s Structure) String() string {
	return []string{"FCC", "HCP", "DHCP"}[s]
}

// ParseStructure converts a structure label from a result line
func ParseStructure(str string) (Structure, error) {
	switch strings.ToUpper(str) {
	case "FCC":
		return FCC, nil
	case "HCP":
		return HCP, nil
	case "DHCP":
		return DHCP, nil
	}
	return 0, fmt.Errorf("%w %q", ErrBadStructure, str)
}

// SimulationResult is one equilibrated run: the time-averaged
// production-stage output for a single (composition, structure,
// temperature). Energy is eV/atom, Volume Å³, box lengths Å, AreaXY Å².
type SimulationResult struct {
	Comp      string
	Structure Structure
	Temp      float64
	Atoms     int
	Energy    float64
	Volume    float64
	Lx        float64
	Ly        float64
	Lz        float64
	AreaXY    float64
}

// Key identifies a record in the Store. Temp is compared with exact
// float64 equality: all three structures of a cell read their
// temperature from the same text, so equal text gives equal floats and
// no tolerance band is needed.
type Key struct {
	Comp      string
	Structure Structure
	Temp      float64
}

// ParseLine parses one line of a results_summary.txt file. The schema
// is positional:
//
//	structure temp natoms pe/atom volume lx ly lz area_xy
//
// with at least 9 whitespace-separated fields; trailing fields are
// ignored.
func ParseLine(comp, line string) (SimulationResult, error) {
	var r SimulationResult
	fields := strings.Fields(line)
	if len(fields) < 9 {
		return r, fmt.Errorf("%w: got %d, want 9", ErrShortLine, len(fields))
	}
	s, err := ParseStructure(fields[0])
	if err != nil {
		return r, err
	}
	atoms, err := strconv.Atoi(fields[2])
	if err != nil {
		return r, fmt.Errorf("atom count: %w", err)
	}
	floats := make([]float64, 7)
	for i, f := range []int{1, 3, 4, 5, 6, 7, 8} {
		floats[i], err = strconv.ParseFloat(fields[f], 64)
		if err != nil {
			return r, fmt.Errorf("field %d: %w", f, err)
		}
	}
	r = SimulationResult{
		Comp:      comp,
		Structure: s,
		Temp:      floats[0],
		Atoms:     atoms,
		Energy:    floats[1],
		Volume:    floats[2],
		Lx:        floats[3],
		Ly:        floats[4],
		Lz:        floats[5],
		AreaXY:    floats[6],
	}
	return r, nil
}
