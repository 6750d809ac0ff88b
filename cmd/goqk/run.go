// run.go --  This file is part of goHF project.
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
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/MirzaevaIV/goHF/angular"
	"github.com/MirzaevaIV/goHF/coulomb"
	"github.com/MirzaevaIV/goHF/internal/metrics"
	"github.com/MirzaevaIV/goHF/orbital"
	"github.com/MirzaevaIV/goHF/radial"
)

func run(cmd *cobra.Command, args []string) error {
	inpFname := args[0]
	outFname := outputName(inpFname)
	fmt.Println("Output file: ", outFname)

	file, err := initLog(outFname)
	if err != nil {
		return err
	}
	defer file.Close()

	InfoLogger.Println("Starting goqk...")
	appInfo()

	inpData, err := ReadFileLines(inpFname)
	if err != nil {
		return fmt.Errorf("cannot read input file: %w", err)
	}
	OutputLogger.Println("Input file content:")
	printOutputDelimiter()
	for _, l := range inpData {
		OutputLogger.Println(l)
	}
	printOutputDelimiter()

	cfg, err := loadConfig(inpFname)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)
	if cfg.NProcs > 0 {
		runtime.GOMAXPROCS(cfg.NProcs)
		OutputLogger.Print("Number of threads set to ", cfg.NProcs, ".")
	}

	reg := prometheus.NewRegistry()
	c, err := newCalculation(cfg, metrics.NewTable(reg, "goqk"))
	if err != nil {
		return err
	}
	if err := c.run(); err != nil {
		return err
	}

	if flagMetricsFile != "" {
		if err := prometheus.WriteToTextfile(flagMetricsFile, reg); err != nil {
			WarningLogger.Println("Cannot write metrics file:", err)
		}
	}
	MyMemDebug()
	InfoLogger.Println("Exiting goqk...")
	fmt.Println("goqk done.")
	return nil
}

func applyFlags(cmd *cobra.Command, cfg *Config) {
	if cmd.Flags().Changed("nprocs") {
		cfg.NProcs = flagNProcs
	}
	if cmd.Flags().Changed("symmetry") {
		cfg.Symmetry = flagSymmetry
	}
	if cmd.Flags().Changed("iterations") && flagIterations >= 0 {
		cfg.Iterations = flagIterations
	}
}

// calculation holds everything one run needs.
type calculation struct {
	cfg    Config
	sym    coulomb.Symmetry
	quad   *radial.Quadrature
	shells []orbital.Shell
	basis  []*orbital.Orbital
	eval   *radial.Evaluator
	table  *coulomb.Table
}

func newCalculation(cfg Config, m *metrics.Table) (*calculation, error) {
	sym, err := coulomb.ParseSymmetry(cfg.Symmetry)
	if err != nil {
		return nil, err
	}
	grid, err := radial.NewGrid(cfg.Grid.R0, cfg.Grid.RMax, cfg.Grid.Points)
	if err != nil {
		return nil, err
	}
	quad, err := radial.NewQuadrature(grid, cfg.NQuad)
	if err != nil {
		return nil, err
	}
	shells := cfg.Shells()
	basis, err := orbital.NewBasis(shells, quad)
	if err != nil {
		return nil, err
	}
	if cfg.Orthonormalize {
		if err := orbital.Orthonormalize(basis, quad); err != nil {
			return nil, err
		}
	}

	max2j := 1
	for _, o := range basis {
		max2j = max(max2j, o.TwoJ())
	}
	ang := angular.NewTables(max2j)
	eval := radial.NewEvaluator(quad, ang)

	c := &calculation{
		cfg:    cfg,
		sym:    sym,
		quad:   quad,
		shells: shells,
		basis:  basis,
		eval:   eval,
		table: coulomb.NewTable(sym, eval, ang,
			coulomb.WithWorkers(cfg.NProcs),
			coulomb.WithLogger(InfoLogger),
			coulomb.WithMetrics(m)),
	}
	if err := c.table.Check(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *calculation) run() error {
	OutputLogger.Println("Basis:")
	for _, o := range c.basis {
		OutputLogger.Printf("  %3d  %-4s kappa=%3d  nPrim=%d\n", o.ID, o, o.K, len(o.Funcs))
	}
	OutputLogger.Println("Overlap matrix:")
	PrintDense(orbital.Overlap(c.basis, c.quad))
	printOutputDelimiter()

	tstart := time.Now()
	if err := c.eval.SetBasis(orbital.RadialOrbitals(c.basis), c.cfg.NProcs); err != nil {
		return err
	}
	OutputLogger.Println("y^k functions for", c.eval.YkTable().Len(), "pairs in", time.Since(tstart))

	tstart = time.Now()
	if err := c.table.Fill(orbital.CoulombOrbitals(c.basis)); err != nil {
		return err
	}
	OutputLogger.Printf("Fill (%s, %d threads): %s entries, %s values in %s\n",
		c.sym, runtime.GOMAXPROCS(0), humanize.Comma(int64(c.table.Len())),
		humanize.Comma(int64(c.table.Count())), time.Since(tstart))
	if err := c.check(); err != nil {
		return err
	}
	c.printSample()

	for it := 0; it < c.cfg.Iterations; it++ {
		tstart = time.Now()
		if err := c.step(it); err != nil {
			return fmt.Errorf("iteration %d: %w", it+1, err)
		}
		OutputLogger.Println("Time for update #", it+1, ":", time.Since(tstart))
		if err := c.check(); err != nil {
			return err
		}
	}
	fmt.Println("Entries:", humanize.Comma(int64(c.table.Len())), "values:", humanize.Comma(int64(c.table.Count())))
	return nil
}

// step moves every orbital towards its shell with exponents scaled by
// zscale^(it+1) and refreshes the table.
func (c *calculation) step(it int) error {
	f := math.Pow(c.cfg.ZScale, float64(it+1))
	for i, o := range c.basis {
		next := orbital.Tabulate(c.shells[i].Scaled(f), c.quad.Grid)
		if err := orbital.Mix(o, next, it, c.quad); err != nil {
			return err
		}
	}
	if c.cfg.Orthonormalize {
		if err := orbital.Orthonormalize(c.basis, c.quad); err != nil {
			return err
		}
	}
	if err := c.eval.SetBasis(orbital.RadialOrbitals(c.basis), c.cfg.NProcs); err != nil {
		return err
	}
	return c.table.Update(orbital.CoulombOrbitals(c.basis))
}

// sumTolerance bounds the table sums' deviation from direct evaluation,
// relative to the sum of |Q^k|. Values are stored in single precision.
const sumTolerance = 1e-4

// check compares the sum of all Q^k over all quadruples computed three ways:
// directly, by table lookup and by walking the table in canonical order. It
// fails with errCheck when either table sum is off by more than sumTolerance.
func (c *calculation) check() error {
	basis := orbital.CoulombOrbitals(c.basis)

	tstart := time.Now()
	direct, lookup, scale := 0.0, 0.0, 0.0
	for _, a := range basis {
		for _, b := range basis {
			for _, cc := range basis {
				for _, d := range basis {
					kmin, kmax := c.eval.KRange(a, b, cc, d)
					for k := kmin; k <= kmax; k += 2 {
						q, err := c.eval.Qk(k, a, b, cc, d)
						if err != nil {
							return err
						}
						direct += q
						scale += math.Abs(q)
						lookup += c.table.Q(k, a, b, cc, d)
					}
				}
			}
		}
	}
	tdirect := time.Since(tstart)

	inOrder := 0.0
	for key, e := range c.table.All() {
		m := float64(c.sym.Multiplicity(key))
		for _, v := range e.Values {
			inOrder += m * float64(v)
		}
	}

	epsLookup := relDiff(lookup, direct, scale)
	epsInOrder := relDiff(inOrder, direct, scale)
	OutputLogger.Printf("Sum direct   = %.10e  (%s)\n", direct, tdirect)
	OutputLogger.Printf("Sum lookup   = %.10e  eps = %.2e\n", lookup, epsLookup)
	OutputLogger.Printf("Sum in order = %.10e  eps = %.2e\n", inOrder, epsInOrder)
	printOutputDelimiter()
	if epsLookup > sumTolerance || epsInOrder > sumTolerance {
		ErrorLogger.Println("Table sums differ from direct evaluation.")
		return fmt.Errorf("%w: lookup eps %.2e, in-order eps %.2e", errCheck, epsLookup, epsInOrder)
	}
	return nil
}

func (c *calculation) printSample() {
	basis := orbital.CoulombOrbitals(c.basis)
	n := 0
	OutputLogger.Println("   a   b   c   d   k            Q            R            P            W")
	for key, e := range c.table.All() {
		if n == 10 {
			break
		}
		ia, ib, ic, id := key.Indices()
		a, b, cc, d := basis[ia], basis[ib], basis[ic], basis[id]
		for k := e.KMin; k <= e.KMax(); k += 2 {
			OutputLogger.Printf("%4d%4d%4d%4d%4d %12.6e %12.6e %12.6e %12.6e\n", ia, ib, ic, id, k,
				c.table.Q(k, a, b, cc, d), c.table.R(k, a, b, cc, d),
				c.table.P(k, a, b, cc, d), c.table.W(k, a, b, cc, d))
		}
		n++
	}
	printOutputDelimiter()
}

// relDiff is |x-ref| relative to scale, or absolute when scale is zero.
func relDiff(x, ref, scale float64) float64 {
	if scale == 0 {
		return math.Abs(x - ref)
	}
	return math.Abs(x-ref) / scale
}
