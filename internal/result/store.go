package result

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// SummaryFile is the per-composition file the simulations append their
// final results to.
const SummaryFile = "results_summary.txt"

// A Duplicate records a second write to an occupied Key. The newer
// record replaces Dropped in the store; the overwrite is kept visible
// here instead of failing, since reruns legitimately append a fresh
// line for the same cell.
type Duplicate struct {
	Key     Key
	Dropped SimulationResult
}

// Store maps (composition, structure, temperature) to the simulation
// record for that run.
type Store struct {
	records map[Key]SimulationResult
	dups    []Duplicate
	log     *zap.SugaredLogger
}

// NewStore returns an empty Store logging through log, which may be nil
func NewStore(log *zap.SugaredLogger) *Store {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Store{
		records: make(map[Key]SimulationResult),
		log:     log,
	}
}

// Add inserts r, replacing any record already stored under its key.
// Last write wins; the displaced record is retained in Duplicates.
func (s *Store) Add(r SimulationResult) {
	key := Key{Comp: r.Comp, Structure: r.Structure, Temp: r.Temp}
	if old, ok := s.records[key]; ok {
		s.dups = append(s.dups, Duplicate{Key: key, Dropped: old})
		s.log.Warnw("duplicate record, keeping newest",
			"comp", key.Comp, "structure", key.Structure.String(),
			"temp", key.Temp, "old_energy", old.Energy, "new_energy", r.Energy)
	}
	s.records[key] = r
}

// Len returns the number of stored records
func (s *Store) Len() int { return len(s.records) }

// Duplicates returns the records displaced by later writes
func (s *Store) Duplicates() []Duplicate { return s.dups }

// Lookup returns the record for one run, if present
func (s *Store) Lookup(comp string, st Structure, temp float64) (SimulationResult, bool) {
	r, ok := s.records[Key{Comp: comp, Structure: st, Temp: temp}]
	return r, ok
}

// Missing reports which required structures have no record for the
// given cell, in FCC, HCP, DHCP order.
func (s *Store) Missing(comp string, temp float64) (missing []Structure) {
	for _, st := range Required {
		if _, ok := s.Lookup(comp, st, temp); !ok {
			missing = append(missing, st)
		}
	}
	return
}

// Compositions returns the distinct composition IDs in lexicographic
// order.
func (s *Store) Compositions() []string {
	seen := make(map[string]bool)
	var comps []string
	for k := range s.records {
		if !seen[k.Comp] {
			seen[k.Comp] = true
			comps = append(comps, k.Comp)
		}
	}
	sort.Strings(comps)
	return comps
}

// Temperatures returns the distinct temperatures in ascending order
func (s *Store) Temperatures() []float64 {
	seen := make(map[float64]bool)
	var temps []float64
	for k := range s.records {
		if !seen[k.Temp] {
			seen[k.Temp] = true
			temps = append(temps, k.Temp)
		}
	}
	sort.Float64s(temps)
	return temps
}

// Collect scans dir for Comp* composition directories and loads every
// parseable line of their summary files. Malformed lines and
// directories without a summary file are logged and skipped. It
// returns ErrNoData if no composition directory is found or no line
// parses.
func Collect(dir string, log *zap.SugaredLogger) (*Store, error) {
	s := NewStore(log)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("collect: %w", err)
	}
	var found int
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), "Comp") {
			continue
		}
		found++
		comp := compID(e.Name(), s.log)
		if err := s.loadSummary(filepath.Join(dir, e.Name()), comp); err != nil {
			s.log.Warnw("skipping composition directory",
				"dir", e.Name(), "err", err)
		}
	}
	if found == 0 {
		return nil, fmt.Errorf("collect: no composition directories in %s: %w",
			dir, ErrNoData)
	}
	if s.Len() == 0 {
		return nil, fmt.Errorf("collect: no parseable records in %s: %w",
			dir, ErrNoData)
	}
	return s, nil
}

// compID derives the canonical composition ID from a directory name,
// falling back to the raw name when the grammar does not match
func compID(name string, log *zap.SugaredLogger) string {
	c, err := ParseComposition(name)
	if err != nil {
		log.Warnw("using directory name as composition id", "err", err)
		return name
	}
	return c.ID()
}

func (s *Store) loadSummary(dir, comp string) error {
	path := filepath.Join(dir, SummaryFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrSummaryAbsent, dir)
		}
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	var n int
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		r, err := ParseLine(comp, line)
		if err != nil {
			s.log.Warnw("skipping result line",
				"file", path, "line", n, "err", err)
			continue
		}
		s.Add(r)
	}
	return scanner.Err()
}
