package sfe

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"sfecalc/internal/result"
)

// A Diagnostic is a cell skipped during aggregation and why
type Diagnostic struct {
	Comp    string
	Temp    float64
	Missing []result.Structure
}

// Report is the outcome of analyzing a full store: one Result per
// complete (composition, temperature) cell in composition-major order,
// compositions lexicographic and temperatures ascending, plus the
// cells that could not be evaluated and any duplicate-record
// overwrites observed during collection.
type Report struct {
	Results     []Result
	Diagnostics []Diagnostic
	Duplicates  []result.Duplicate
}

// Analyze evaluates every cell of the composition × temperature grid
// present in s. Missing structures skip the cell and record a
// diagnostic; only an empty store is an error.
func Analyze(s *result.Store, log *zap.SugaredLogger) (*Report, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	comps := s.Compositions()
	temps := s.Temperatures()
	if len(comps) == 0 || len(temps) == 0 {
		return nil, fmt.Errorf("analyze: %w", result.ErrNoData)
	}
	rep := &Report{Duplicates: s.Duplicates()}
	for _, comp := range comps {
		for _, temp := range temps {
			res, err := EvaluateCell(s, comp, temp)
			if err != nil {
				var miss *MissingStructureError
				if errors.As(err, &miss) {
					rep.Diagnostics = append(rep.Diagnostics, Diagnostic{
						Comp: comp, Temp: temp, Missing: miss.Missing,
					})
					log.Debugw("skipping cell", "err", err)
					continue
				}
				return nil, err
			}
			log.Infow("cell evaluated",
				"comp", comp, "temp", temp,
				"isf", res.ISFmJ, "esf", res.ESFmJ, "twin", res.TwinmJ)
			rep.Results = append(rep.Results, res)
		}
	}
	return rep, nil
}
