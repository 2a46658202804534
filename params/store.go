/*
Copyright © 2026 the AqChem authors.
This file is part of AqChem.

AqChem is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

AqChem is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with AqChem.  If not, see <http://www.gnu.org/licenses/>.
*/

package params

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
)

// Source supplies parameter records from backing data during lazy
// population.
type Source interface {
	// Search returns the parameter records for formula. ok reports
	// whether the species is present in the source data at all; a
	// missing species is not an error.
	Search(formula string) (records []*Parameter, ok bool, err error)
}

// Store maps species formulas to their parameter records. A Store is
// safe for use by multiple goroutines; population from the backing
// source happens at most once per species.
type Store struct {
	mu        sync.Mutex
	species   map[string][]*Parameter
	populated map[string]bool
	source    Source
	log       *slog.Logger
}

// NewStore creates a Store backed by src. A nil src disables lazy
// population; a nil logger falls back to slog.Default.
func NewStore(src Source, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		species:   make(map[string][]*Parameter),
		populated: make(map[string]bool),
		source:    src,
		log:       log,
	}
}

// Populate loads the records for formula from the backing source if
// that has not already been done. It is idempotent: concurrent calls
// for the same formula insert the records only once. A species absent
// from the source data is a no-op here; the absence surfaces later as
// a SpeciesNotFoundError from Get.
func (s *Store) Populate(formula string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.populateLocked(formula)
}

func (s *Store) populateLocked(formula string) error {
	if s.populated[formula] || s.source == nil {
		return nil
	}
	recs, ok, err := s.source.Search(formula)
	if err != nil {
		return fmt.Errorf("params: populating species %s: %v", formula, err)
	}
	s.populated[formula] = true
	if !ok {
		return nil
	}
	s.species[formula] = append(s.species[formula], recs...)
	s.log.Info("populated species parameters", "formula", formula, "records", len(recs))
	return nil
}

// Add inserts a record for formula. Records with the same name are not
// deduplicated: multiple condition-scoped records of one name may
// coexist.
func (s *Store) Add(formula string, p *Parameter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.species[formula] = append(s.species[formula], p)
}

// Species returns a snapshot of the records held for formula and
// whether the species has an entry at all.
func (s *Store) Species(formula string) ([]*Parameter, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs, ok := s.species[formula]
	out := make([]*Parameter, len(recs))
	copy(out, recs)
	return out, ok
}

// Get resolves the record named name for formula under the conditions
// c, populating the species from the backing source first if needed.
//
// When several records share the name and apply under c, the one whose
// temperature-validity midpoint is closest to the queried temperature
// wins; records without a temperature range sort last, and remaining
// ties go to the earliest-inserted record.
//
// Get returns a SpeciesNotFoundError if the species has no entry, and
// a ParameterNotFoundError if the species exists but no applicable
// record carries the name. Both are recoverable; they are also logged
// to the diagnostics logger, which callers must not rely on for
// control flow.
func (s *Store) Get(formula, name string, c Conditions) (*Parameter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.populateLocked(formula); err != nil {
		return nil, err
	}
	recs, ok := s.species[formula]
	if !ok {
		s.log.Warn("species not in parameter store", "formula", formula)
		return nil, &SpeciesNotFoundError{Formula: formula}
	}

	var best *Parameter
	bestDist := math.Inf(1)
	for _, p := range recs {
		if p.Name != name || !p.Applies(c) {
			continue
		}
		dist := math.Inf(1)
		if c.Temperature != nil && p.Temperature != nil {
			dist = math.Abs(p.Temperature.midpoint() - c.Temperature.Value())
		}
		if best == nil || dist < bestDist {
			best, bestDist = p, dist
		}
	}
	if best == nil {
		s.log.Warn("parameter not found", "formula", formula, "name", name)
		return nil, &ParameterNotFoundError{Formula: formula, Name: name}
	}
	return best, nil
}
