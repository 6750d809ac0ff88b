// main.go --  This file is part of goHF project.
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

// Command goqk builds the symmetry-reduced table of Coulomb integrals
// Q^k_abcd for a basis of Gaussian orbitals, checks it against direct
// evaluation and refreshes it over a few damped orbital updates.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	WarningLogger = log.New(io.Discard, "", 0)
	InfoLogger    = log.New(io.Discard, "", 0)
	ErrorLogger   = log.New(io.Discard, "", 0)
	OutputLogger  = log.New(io.Discard, "", 0)
)

var (
	flagNProcs      int
	flagSymmetry    string
	flagIterations  int
	flagMetricsFile string
)

var rootCmd = &cobra.Command{
	Use:   "goqk [input file]",
	Short: "Build and check a symmetry-reduced table of Coulomb integrals",
	Long: `goqk reads a basis of Gaussian orbitals (keyword input or YAML),
fills the Q^k_abcd table on all cores, compares it with direct evaluation
and refreshes it over damped orbital updates. Results go to <input>.out.`,
	Args:          cobra.ExactArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().IntVar(&flagNProcs, "nprocs", 0, "Number of threads (overrides input)")
	rootCmd.Flags().StringVar(&flagSymmetry, "symmetry", "", "Symmetry class: none, qk or wk (overrides input)")
	rootCmd.Flags().IntVar(&flagIterations, "iterations", -1, "Number of orbital updates (overrides input)")
	rootCmd.Flags().StringVar(&flagMetricsFile, "metrics-file", "", "Write prometheus metrics to this file")
}

func initLog(fname string) (*os.File, error) {
	file, err := os.OpenFile(fname, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	InfoLogger = log.New(file, "INFO: ", log.Ldate|log.Ltime)
	WarningLogger = log.New(file, "WARNING: ", log.Ldate|log.Ltime)
	ErrorLogger = log.New(file, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	OutputLogger = log.New(file, "", 0)
	return file, nil
}

func appInfo() {
	OutputLogger.Print("\n              __  __  ____      |\n             /\\ \\/\\ \\/\\  __\\    |" +
		" goqk: Coulomb integral tables\n   __     ___\\ \\ \\_\\ \\ \\ \\_/    | Q^k_abcd with index symmetry\n" +
		" /'_ `\\  / __`\\ \\  _  \\ \\  _\\   | built on all available cores\n" +
		"/\\ \\L\\ \\/\\ \\L\\ \\ \\ \\ \\ \\ \\ \\/   |" +
		"\n\\ \\____ \\ \\____/\\ \\_\\ \\_\\ \\_\\   | Have Fun!!!\n \\/___L\\" +
		" \\/___/  \\/_/\\/_/\\/_/   |\n   /\\____/                      |\n   \\_/__/                       |\n\n")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		ErrorLogger.Println(err)
		fmt.Fprintln(os.Stderr, "goqk:", err)
		os.Exit(1)
	}
}
