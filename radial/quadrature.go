// quadrature.go --  This file is part of goHF project.
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

package radial

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// End-point correction coefficients for nquad = 1..14 (nquad=1 is the
// trapezoid rule). The first nquad points at each end get weight
// quadCoefs[nquad-1][i] / quadDenoms[nquad-1], the interior weight one.
var quadCoefs = [14][]float64{
	{1},
	{1, 2},
	{9, 28, 23},
	{8, 31, 20, 25},
	{475, 1902, 1104, 1586, 1413},
	{459, 1982, 944, 1746, 1333, 1456},
	{36799, 176648, 54851, 177984, 89437, 130936, 119585},
	{35584, 185153, 29336, 220509, 46912, 156451, 111080, 122175},
	{2082753, 11532470, 261166, 16263486, -1020160, 12489922, 5095890, 7783754, 7200319},
	{2034625, 11965622, -1471442, 20306238, -7084288, 18554050, 1053138, 9516362, 6767167, 7305728},
	{262747265, 1637546484, -454944189, 3373884696, -2145575886, 3897945600, -1065220914,
		1942518504, 636547389, 1021256716, 952327935},
	{257696640, 1693103359, -732728564, 4207237821, -3812282136, 6231334350, -3398609664,
		3609224754, -196805736, 1299041091, 896771060, 963053825},
	{1382741929621, 9535909891802, -5605325192308, 28323664941310, -32865015189975,
		53315213499588, -41078125154304, 39022895874876, -13155015007785, 12465244770050,
		3283609164916, 5551687979302, 5206230892907},
	{1360737653653, 9821965479386, -7321658717812, 34616887868158, -48598072507095,
		81634716670404, -78837462715392, 76782233435964, -41474518178601, 28198302087170,
		-3009613761932, 7268021504806, 4920175305323, 5252701747968},
}

var quadDenoms = [14]float64{
	2, 2, 24, 24, 1440, 1440, 120960, 120960, 7257600, 7257600,
	958003200, 958003200, 5230697472000, 5230697472000,
}

// QuadratureCoefs returns the end-point coefficients and their common
// denominator for the given order.
func QuadratureCoefs(nquad int) ([]float64, float64, error) {
	if nquad < 1 || nquad > len(quadCoefs) {
		return nil, 0, fmt.Errorf("%w: got %d", ErrQuadratureOrder, nquad)
	}
	return quadCoefs[nquad-1], quadDenoms[nquad-1], nil
}

// Quadrature integrates functions tabulated on a grid, including dr/du.
type Quadrature struct {
	Grid  *Grid
	NQuad int
	W     []float64 // full weight of each point: end correction * dr/du * du
}

// NewQuadrature builds the weights for g with nquad-point end corrections.
func NewQuadrature(g *Grid, nquad int) (*Quadrature, error) {
	c, d, err := QuadratureCoefs(nquad)
	if err != nil {
		return nil, err
	}
	n := g.Size()
	if n < 2*nquad {
		return nil, fmt.Errorf("%w: %d points is too few for nquad=%d", ErrGrid, n, nquad)
	}
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	for i, ci := range c {
		w[i] = ci / d
		w[n-1-i] = ci / d
	}
	floats.Mul(w, g.Drdu)
	floats.Scale(g.Du, w)
	return &Quadrature{Grid: g, NQuad: nquad, W: w}, nil
}

// Integrate returns the integral over r of f.
func (q *Quadrature) Integrate(f []float64) float64 {
	return floats.Dot(q.W, f)
}

// Integrate2 returns the integral over r of f*g.
func (q *Quadrature) Integrate2(f, g []float64) float64 {
	res := 0.0
	for i, w := range q.W {
		res += w * f[i] * g[i]
	}
	return res
}

// Integrate3 returns the integral over r of f*g*h.
func (q *Quadrature) Integrate3(f, g, h []float64) float64 {
	res := 0.0
	for i, w := range q.W {
		res += w * f[i] * g[i] * h[i]
	}
	return res
}
