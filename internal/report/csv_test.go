package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sfecalc/internal/result"
	"sfecalc/internal/sfe"
)

func nickel(temp float64) sfe.Result {
	rec := func(st result.Structure, energy float64) result.SimulationResult {
		return result.SimulationResult{
			Comp: "Al00Fe00Ni100", Structure: st, Temp: temp,
			Atoms: 4000, Energy: energy, Volume: 45000,
			Lx: 36, Ly: 36, Lz: 35, AreaXY: 10.0,
		}
	}
	return sfe.Evaluate(
		rec(result.FCC, -4.0100),
		rec(result.HCP, -4.0080),
		rec(result.DHCP, -4.0095),
	)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []sfe.Result{nickel(400), nickel(300)}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Header, rows[0])

	first := rows[1]
	assert.Equal(t, "Al00Fe00Ni100", first[0])
	assert.Equal(t, "400.000000", first[1])
	assert.Equal(t, "-4.010000", first[2])  // E_fcc
	assert.Equal(t, "10.000000", first[5])  // area_fcc
	assert.Equal(t, "0.000500", first[6])   // ΔE_dhcp_fcc
	assert.Equal(t, "0.000200", first[8])   // γ_ISF eV/Å²
	assert.Equal(t, "3.204353", first[11])  // γ_ISF mJ/m²
	assert.Equal(t, "4.806530", first[12])  // γ_ESF mJ/m²
	assert.Equal(t, "1.602177", first[13])  // γ_Twin mJ/m²
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1) // header only
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, []sfe.Result{nickel(400)})
	out := buf.String()
	assert.Contains(t, out, "| Al00Fe00Ni100 |   400 |    3.20 |    4.81 |    1.60 |")
	assert.Contains(t, out, "ISF")
	assert.Contains(t, out, "Twin")
}
