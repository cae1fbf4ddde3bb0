package sfe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sfecalc/internal/result"
)

// fillCell adds all three structures for one (comp, temp)
func fillCell(s *result.Store, comp string, temp float64) {
	s.Add(rec(comp, result.FCC, temp, -4.0100, 10.0))
	s.Add(rec(comp, result.HCP, temp, -4.0080, 10.0))
	s.Add(rec(comp, result.DHCP, temp, -4.0095, 10.0))
}

func TestAnalyzeFullGrid(t *testing.T) {
	s := result.NewStore(nil)
	for _, comp := range []string{"Al10Fe20Ni70", "Al00Fe00Ni100"} {
		for _, temp := range []float64{400, 300} {
			fillCell(s, comp, temp)
		}
	}

	rep, err := Analyze(s, nil)
	require.NoError(t, err)
	assert.Len(t, rep.Results, 4)
	assert.Empty(t, rep.Diagnostics)
	assert.Empty(t, rep.Duplicates)

	// compositions lexicographic, temperatures ascending
	var order []string
	var temps []float64
	for _, r := range rep.Results {
		order = append(order, r.Comp)
		temps = append(temps, r.Temp)
	}
	assert.Equal(t, []string{
		"Al00Fe00Ni100", "Al00Fe00Ni100", "Al10Fe20Ni70", "Al10Fe20Ni70",
	}, order)
	assert.Equal(t, []float64{300, 400, 300, 400}, temps)
}

func TestAnalyzeMissingStructure(t *testing.T) {
	s := result.NewStore(nil)
	fillCell(s, "Al10Fe20Ni70", 300)
	// no DHCP at 400 K
	s.Add(rec("Al10Fe20Ni70", result.FCC, 400, -4.0100, 10.0))
	s.Add(rec("Al10Fe20Ni70", result.HCP, 400, -4.0080, 10.0))

	rep, err := Analyze(s, nil)
	require.NoError(t, err)
	assert.Len(t, rep.Results, 1)
	require.Len(t, rep.Diagnostics, 1)
	d := rep.Diagnostics[0]
	assert.Equal(t, "Al10Fe20Ni70", d.Comp)
	assert.Equal(t, 400.0, d.Temp)
	assert.Equal(t, []result.Structure{result.DHCP}, d.Missing)
}

func TestAnalyzeSparseGrid(t *testing.T) {
	// compositions run at disjoint temperatures: the grid is the cross
	// product, so each misses all three structures at the other's temp
	s := result.NewStore(nil)
	fillCell(s, "Al10Fe20Ni70", 300)
	fillCell(s, "Al20Fe30Ni50", 500)

	rep, err := Analyze(s, nil)
	require.NoError(t, err)
	assert.Len(t, rep.Results, 2)
	require.Len(t, rep.Diagnostics, 2)
	assert.Equal(t, result.Required, rep.Diagnostics[0].Missing)
}

func TestAnalyzeDuplicatesSurfaced(t *testing.T) {
	s := result.NewStore(nil)
	fillCell(s, "Al10Fe20Ni70", 300)
	// rerun appended a second FCC line; newest must win and the
	// overwrite must show up in the report
	s.Add(rec("Al10Fe20Ni70", result.FCC, 300, -4.0150, 10.0))

	rep, err := Analyze(s, nil)
	require.NoError(t, err)
	require.Len(t, rep.Results, 1)
	assert.Equal(t, -4.0150, rep.Results[0].EFCC)
	require.Len(t, rep.Duplicates, 1)
	assert.Equal(t, -4.0100, rep.Duplicates[0].Dropped.Energy)
}

func TestAnalyzeEmpty(t *testing.T) {
	_, err := Analyze(result.NewStore(nil), nil)
	assert.True(t, errors.Is(err, result.ErrNoData))
}
