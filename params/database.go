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
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spatialmodel/aqchem/chemquant"
)

// Database is a Source backed by TOML parameter files. Each file holds
// a list of species tables:
//
//	[[species]]
//	formula = "Na+"
//
//	  [[species.parameter]]
//	  name = "diffusion_coefficient"
//	  value = 1.334e-9
//	  units = "m^2/s"
//	  temperature = "25 degC"
//	  reference = "CRC Handbook of Chemistry and Physics, 92nd ed."
//
// A parameter may scope its validity with "temperature" (a reference
// point), "temperature_range", "pressure", "pressure_range",
// "ionic_strength_range"; values are quantity strings parsed by
// chemquant.
type Database struct {
	species map[string][]*Parameter
}

type tomlDatabase struct {
	Species []tomlSpecies `toml:"species"`
}

type tomlSpecies struct {
	Formula    string          `toml:"formula"`
	Parameters []tomlParameter `toml:"parameter"`
}

type tomlParameter struct {
	Name               string   `toml:"name"`
	Value              float64  `toml:"value"`
	Units              string   `toml:"units"`
	Temperature        string   `toml:"temperature"`
	TemperatureRange   []string `toml:"temperature_range"`
	Pressure           string   `toml:"pressure"`
	PressureRange      []string `toml:"pressure_range"`
	IonicStrengthRange []string `toml:"ionic_strength_range"`
	Reference          string   `toml:"reference"`
	Comment            string   `toml:"comment"`
}

// ReadDatabase creates a Database from one or more TOML streams.
// Species appearing in several streams have their records combined.
func ReadDatabase(readers ...io.Reader) (*Database, error) {
	d := &Database{species: make(map[string][]*Parameter)}
	for _, r := range readers {
		var raw tomlDatabase
		if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
			return nil, fmt.Errorf("params: decoding parameter database: %v", err)
		}
		for _, sp := range raw.Species {
			if sp.Formula == "" {
				return nil, fmt.Errorf("params: parameter database species with no formula")
			}
			for _, tp := range sp.Parameters {
				p, err := tp.record()
				if err != nil {
					return nil, fmt.Errorf("params: species %s: %v", sp.Formula, err)
				}
				d.species[sp.Formula] = append(d.species[sp.Formula], p)
			}
		}
	}
	return d, nil
}

// LoadDatabase creates a Database from every .toml file in dir.
func LoadDatabase(dir string) (*Database, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return nil, fmt.Errorf("params: listing parameter databases in %s: %v", dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("params: no parameter database files in %s", dir)
	}
	var readers []io.Reader
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return nil, fmt.Errorf("params: opening parameter database: %v", err)
		}
		defer f.Close()
		readers = append(readers, f)
	}
	return ReadDatabase(readers...)
}

// Search implements Source.
func (d *Database) Search(formula string) ([]*Parameter, bool, error) {
	recs, ok := d.species[formula]
	return recs, ok, nil
}

// record converts a decoded TOML parameter into a Parameter.
func (tp tomlParameter) record() (*Parameter, error) {
	if tp.Name == "" {
		return nil, fmt.Errorf("parameter with no name")
	}
	v, err := chemquant.FromValue(tp.Value, tp.Units)
	if err != nil {
		return nil, fmt.Errorf("parameter %s: %v", tp.Name, err)
	}
	p := &Parameter{
		Name:      tp.Name,
		Value:     v,
		Reference: tp.Reference,
		Comment:   tp.Comment,
	}
	p.Temperature, err = decodeRange(tp.Temperature, tp.TemperatureRange)
	if err != nil {
		return nil, fmt.Errorf("parameter %s temperature: %v", tp.Name, err)
	}
	p.Pressure, err = decodeRange(tp.Pressure, tp.PressureRange)
	if err != nil {
		return nil, fmt.Errorf("parameter %s pressure: %v", tp.Name, err)
	}
	p.IonicStrength, err = decodeRange("", tp.IonicStrengthRange)
	if err != nil {
		return nil, fmt.Errorf("parameter %s ionic strength: %v", tp.Name, err)
	}
	return p, nil
}

func decodeRange(point string, bounds []string) (*Range, error) {
	switch {
	case len(bounds) == 2:
		lo, err := chemquant.Parse(bounds[0])
		if err != nil {
			return nil, err
		}
		hi, err := chemquant.Parse(bounds[1])
		if err != nil {
			return nil, err
		}
		return &Range{Min: lo, Max: hi}, nil
	case len(bounds) != 0:
		return nil, fmt.Errorf("range needs exactly two bounds, got %d", len(bounds))
	case point != "":
		q, err := chemquant.Parse(point)
		if err != nil {
			return nil, err
		}
		return Point(q), nil
	}
	return nil, nil
}

//go:embed db.toml
var defaultDB []byte

// DefaultDatabase returns the parameter database shipped with the
// package: infinite-dilution diffusion coefficients and related
// properties for common aqueous species.
func DefaultDatabase() (*Database, error) {
	return ReadDatabase(bytes.NewReader(defaultDB))
}
