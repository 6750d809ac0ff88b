// config.go --  This file is part of goHF project.
// Mirzaeva Irina, 2024
//
//	goHF is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MirzaevaIV/goHF/coulomb"
	"github.com/MirzaevaIV/goHF/orbital"
)

var errInput = errors.New("goqk: bad input")

// errCheck reports table sums that disagree with direct evaluation.
var errCheck = errors.New("goqk: table check failed")

// Config is the parsed input of one run.
type Config struct {
	Symmetry       string        `yaml:"symmetry"`
	NProcs         int           `yaml:"nprocs"`
	NQuad          int           `yaml:"nquad"`
	Iterations     int           `yaml:"iterations"`
	ZScale         float64       `yaml:"zscale"`
	Orthonormalize bool          `yaml:"orthonormalize"`
	Grid           GridConfig    `yaml:"grid"`
	Basis          []ShellConfig `yaml:"basis"`
}

// GridConfig describes the radial grid.
type GridConfig struct {
	R0     float64 `yaml:"r0"`
	RMax   float64 `yaml:"rmax"`
	Points int     `yaml:"points"`
}

// ShellConfig is one orbital in YAML input: prims are [zeta, coeff] pairs.
type ShellConfig struct {
	N     int          `yaml:"n"`
	Kappa int          `yaml:"kappa"`
	Prims [][2]float64 `yaml:"prims"`
}

func defaultConfig() Config {
	return Config{
		Symmetry:   "qk",
		NQuad:      14,
		Iterations: 0,
		ZScale:     1,
		Grid:       GridConfig{R0: 1e-6, RMax: 50, Points: 2000},
	}
}

// Shells converts the basis to orbital shells.
func (c *Config) Shells() []orbital.Shell {
	res := make([]orbital.Shell, len(c.Basis))
	for i, sc := range c.Basis {
		res[i] = orbital.Shell{N: sc.N, Kappa: sc.Kappa}
		for _, p := range sc.Prims {
			res[i].Funcs = append(res[i].Funcs, orbital.PrimitiveGauss{Zeta: p[0], Coeff: p[1]})
		}
	}
	return res
}

func (c *Config) setShells(shells []orbital.Shell) {
	c.Basis = make([]ShellConfig, len(shells))
	for i, s := range shells {
		c.Basis[i] = ShellConfig{N: s.N, Kappa: s.Kappa}
		for _, pg := range s.Funcs {
			c.Basis[i].Prims = append(c.Basis[i].Prims, [2]float64{pg.Zeta, pg.Coeff})
		}
	}
}

func (c *Config) validate() error {
	if len(c.Basis) == 0 {
		return fmt.Errorf("%w: no basis found", errInput)
	}
	if _, err := coulomb.ParseSymmetry(c.Symmetry); err != nil {
		return fmt.Errorf("%w: %v", errInput, err)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("%w: negative number of iterations", errInput)
	}
	if c.ZScale <= 0 {
		return fmt.Errorf("%w: zscale must be positive", errInput)
	}
	return nil
}

// loadConfig reads fname as YAML if it ends in .yaml or .yml and as a
// keyword input otherwise.
func loadConfig(fname string) (Config, error) {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(fname)
		if err != nil {
			return Config{}, err
		}
		return parseYAML(data)
	}
	data, err := ReadFileLines(fname)
	if err != nil {
		return Config{}, err
	}
	return processInput(data)
}

func parseYAML(data []byte) (Config, error) {
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errInput, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// processInput parses the keyword input format:
//
//	Basis
//	  <orbital block>
//	End
//	Grid
//	  r0 rmax points
//	End
//	symmetry qk
//	nprocs 4
//	nquad 14
//	iterations 3
//	zscale 1.05
//	orthonormalize
func processInput(data []string) (Config, error) {
	cfg := defaultConfig()
	for i := 0; i < len(data); i++ {
		words := strings.Fields(data[i])
		if len(words) == 0 || strings.HasPrefix(words[0], "#") {
			continue
		}
		var err error
		switch strings.ToLower(words[0]) {
		case "basis":
			end, e := findBlockEnd(i, data, "Basis")
			if e != nil {
				return Config{}, e
			}
			shells, next, e := orbital.ParseBasis(data, i+1)
			if e != nil {
				return Config{}, e
			}
			if next != end {
				return Config{}, fmt.Errorf("%w: unexpected content in Basis block at line %d", errInput, next+1)
			}
			cfg.setShells(shells)
			OutputLogger.Print("Parsing input. Basis block found at lines ", i+1, " -- ", end+1, ".")
			i = end
		case "grid":
			end, e := findBlockEnd(i, data, "Grid")
			if e != nil {
				return Config{}, e
			}
			if end != i+2 {
				return Config{}, fmt.Errorf("%w: Grid block must hold one line", errInput)
			}
			cfg.Grid, err = parseGrid(strings.Fields(data[i+1]))
			i = end
		case "symmetry":
			cfg.Symmetry, err = word(words, 1)
		case "nprocs":
			cfg.NProcs, err = intArg(words)
		case "nquad":
			cfg.NQuad, err = intArg(words)
		case "iterations":
			cfg.Iterations, err = intArg(words)
		case "zscale":
			cfg.ZScale, err = floatArg(words)
		case "orthonormalize":
			cfg.Orthonormalize = true
		default:
			WarningLogger.Println("Parsing input. Unknown keyword:", words[0])
		}
		if err != nil {
			return Config{}, fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func findBlockEnd(n int, data []string, bname string) (int, error) {
	for i := n + 1; i < len(data); i++ {
		words := strings.Fields(data[i])
		if len(words) > 0 && strings.ToLower(words[0]) == "end" {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: no end of block %s", errInput, bname)
}

func parseGrid(words []string) (GridConfig, error) {
	if len(words) < 3 {
		return GridConfig{}, fmt.Errorf("%w: grid needs r0 rmax points", errInput)
	}
	var g GridConfig
	var err error
	if g.R0, err = strconv.ParseFloat(words[0], 64); err != nil {
		return GridConfig{}, fmt.Errorf("%w: %v", errInput, err)
	}
	if g.RMax, err = strconv.ParseFloat(words[1], 64); err != nil {
		return GridConfig{}, fmt.Errorf("%w: %v", errInput, err)
	}
	if g.Points, err = strconv.Atoi(words[2]); err != nil {
		return GridConfig{}, fmt.Errorf("%w: %v", errInput, err)
	}
	return g, nil
}

func word(words []string, i int) (string, error) {
	if len(words) <= i {
		return "", fmt.Errorf("%w: %s needs a value", errInput, words[0])
	}
	return words[i], nil
}

func intArg(words []string) (int, error) {
	w, err := word(words, 1)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(w)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errInput, err)
	}
	return n, nil
}

func floatArg(words []string) (float64, error) {
	w, err := word(words, 1)
	if err != nil {
		return 0, err
	}
	x, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errInput, err)
	}
	return x, nil
}
