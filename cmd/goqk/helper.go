// helper.go --  This file is part of goHF project.
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
	"bufio"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/mat"
)

func ReadFileLines(fname string) ([]string, error) {
	var result []string

	file, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		result = append(result, scanner.Text())
	}
	return result, scanner.Err()
}

// outputName replaces the extension of the input file by "out".
func outputName(inpFname string) string {
	ext := ""
	if i := strings.LastIndex(inpFname, "."); i > strings.LastIndex(inpFname, "/") {
		ext = inpFname[i+1:]
	}
	if ext == "" {
		return inpFname + ".out"
	}
	return inpFname[:len(inpFname)-len(ext)] + "out"
}

func printOutputDelimiter() {
	OutputLogger.Println(strings.Repeat("-", 70))
}

func PrintDense(m mat.Matrix) {
	fa := mat.Formatted(m, mat.Prefix("    "), mat.Squeeze())
	OutputLogger.Printf("    %.8f\n", fa)
}

func MyMemDebug() {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	printOutputDelimiter()
	OutputLogger.Println("Memory:")
	OutputLogger.Printf("Alloc: %s\n", humanize.Bytes(memStats.Alloc))
	OutputLogger.Printf("TotalAlloc: %s\n", humanize.Bytes(memStats.TotalAlloc))
	OutputLogger.Printf("HeapAlloc: %s\n", humanize.Bytes(memStats.HeapAlloc))
	OutputLogger.Printf("HeapSys: %s\n", humanize.Bytes(memStats.HeapSys))
	printOutputDelimiter()
	fmt.Println("Heap in use:", humanize.Bytes(memStats.HeapAlloc))
}
