// orbital_test.go --  This file is part of goHF project.
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

package orbital_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MirzaevaIV/goHF/orbital"
	"github.com/MirzaevaIV/goHF/radial"
)

const basisBlock = `3
1 -1 2
  13.0 0.2
   2.0 0.8
2 -1 1
   0.5 1.0
2 -2 2
   1.5 0.6
   0.3 0.5
End`

func newQuad(t *testing.T) *radial.Quadrature {
	g, err := radial.NewGrid(1e-6, 40, 1200)
	require.NoError(t, err)
	q, err := radial.NewQuadrature(g, 10)
	require.NoError(t, err)
	return q
}

func TestParseBasis(t *testing.T) {
	data := strings.Split("Basis\n"+basisBlock, "\n")
	shells, next, err := orbital.ParseBasis(data, 1)
	require.NoError(t, err)
	require.Len(t, shells, 3)
	assert.Equal(t, len(data)-1, next, "position of End")

	assert.Equal(t, orbital.Shell{N: 1, Kappa: -1, Funcs: []orbital.PrimitiveGauss{{Zeta: 13, Coeff: 0.2}, {Zeta: 2, Coeff: 0.8}}}, shells[0])
	assert.Equal(t, 2, shells[2].N)
	assert.Equal(t, -2, shells[2].Kappa)
	assert.Len(t, shells[1].Funcs, 1)
}

func TestParseBasisErrors(t *testing.T) {
	cases := map[string]string{
		"count":       "x",
		"truncated":   "2\n1 -1 1\n 1.0 1.0",
		"header":      "1\n1 -1",
		"prim fields": "1\n1 -1 1\n 1.0",
		"bad float":   "1\n1 -1 1\n 1.0 abc",
		"no prims":    "1\n1 -1 0",
		"exponent":    "1\n1 -1 1\n -1.0 1.0",
		"kappa":       "1\n1 x 1\n 1.0 1.0",
	}
	for name, in := range cases {
		_, _, err := orbital.ParseBasis(strings.Split(in, "\n"), 0)
		assert.ErrorIs(t, err, orbital.ErrBasisFormat, name)
	}
}

func TestNewBasis(t *testing.T) {
	q := newQuad(t)
	shells, _, err := orbital.ParseBasis(strings.Split(basisBlock, "\n"), 0)
	require.NoError(t, err)
	basis, err := orbital.NewBasis(shells, q)
	require.NoError(t, err)
	require.Len(t, basis, 3)

	for i, o := range basis {
		assert.Equal(t, i, int(o.Index()))
		assert.InDelta(t, 1, q.Integrate2(o.Radial(), o.Radial()), 1e-12)
		assert.Len(t, o.Radial(), q.Grid.Size())
	}
	assert.Equal(t, "1s", basis[0].String())
	assert.Equal(t, "2p", basis[2].String())
	assert.Equal(t, 1, basis[2].L())
	assert.Equal(t, 3, basis[2].TwoJ())
	assert.Equal(t, shells[1], basis[1].Shell())

	_, err = orbital.NewBasis([]orbital.Shell{{N: 1, Kappa: 1, Funcs: shells[0].Funcs}}, q)
	assert.ErrorIs(t, err, orbital.ErrKappa, "1p- does not exist")
	_, err = orbital.New(0, orbital.Shell{N: 1, Kappa: 0}, q)
	assert.ErrorIs(t, err, orbital.ErrKappa)
	_, err = orbital.New(0, orbital.Shell{N: 1, Kappa: -1}, q)
	assert.ErrorIs(t, err, orbital.ErrNorm, "no primitives")
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "2p-", orbital.Symbol(2, 1))
	assert.Equal(t, "3d", orbital.Symbol(3, -3))
	assert.Equal(t, "3d-", orbital.Symbol(3, 2))
	assert.Equal(t, "4f", orbital.Symbol(4, -4))
}

func TestTabulate(t *testing.T) {
	q := newQuad(t)
	s := orbital.Shell{N: 2, Kappa: -2, Funcs: []orbital.PrimitiveGauss{{Zeta: 0.5, Coeff: 2}}}
	p := orbital.Tabulate(s, q.Grid)
	for i, r := range q.Grid.R {
		assert.InDelta(t, 2*r*r*math.Exp(-0.5*r*r), p[i], 1e-14)
	}

	scaled := s.Scaled(2)
	assert.Equal(t, 1.0, scaled.Funcs[0].Zeta)
	assert.Equal(t, 0.5, s.Funcs[0].Zeta, "original unchanged")
}

func TestMix(t *testing.T) {
	q := newQuad(t)
	s := orbital.Shell{N: 1, Kappa: -1, Funcs: []orbital.PrimitiveGauss{{Zeta: 1, Coeff: 1}}}
	o, err := orbital.New(0, s, q)
	require.NoError(t, err)
	old := append([]float64(nil), o.P...)

	next := orbital.Tabulate(s.Scaled(1.5), q.Grid)
	norm := math.Sqrt(q.Integrate2(next, next))

	// first iteration takes the new function as is
	require.NoError(t, orbital.Mix(o, next, 0, q))
	for i := range next {
		require.InDelta(t, next[i]/norm, o.P[i], 1e-12)
	}

	// later iterations average with the previous function
	copy(o.P, old)
	require.NoError(t, orbital.Mix(o, next, 1, q))
	assert.InDelta(t, 1, q.Integrate2(o.P, o.P), 1e-12)
	want := make([]float64, len(old))
	for i := range want {
		want[i] = orbital.Damping*old[i] + (1-orbital.Damping)*next[i]
	}
	wn := math.Sqrt(q.Integrate2(want, want))
	for i := range want {
		require.InDelta(t, want[i]/wn, o.P[i], 1e-12)
	}

	assert.ErrorIs(t, orbital.Mix(o, next[:10], 2, q), radial.ErrGridSize)
}

func TestOverlapAndOrthonormalize(t *testing.T) {
	q := newQuad(t)
	shells, _, err := orbital.ParseBasis(strings.Split(basisBlock, "\n"), 0)
	require.NoError(t, err)
	basis, err := orbital.NewBasis(shells, q)
	require.NoError(t, err)

	s := orbital.Overlap(basis, q)
	require.Equal(t, 3, s.SymmetricDim())
	assert.InDelta(t, 1, s.At(0, 0), 1e-12)
	assert.Zero(t, s.At(0, 2), "different kappa")
	assert.Greater(t, math.Abs(s.At(0, 1)), 0.1, "1s and 2s overlap before orthogonalisation")

	require.NoError(t, orbital.Orthonormalize(basis, q))
	s = orbital.Overlap(basis, q)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, s.At(i, j), 1e-10, "S[%d][%d]", i, j)
		}
	}

	// identical functions cannot be orthogonalised
	dup, err := orbital.NewBasis([]orbital.Shell{shells[0], shells[0]}, q)
	require.NoError(t, err)
	assert.ErrorIs(t, orbital.Orthonormalize(dup, q), orbital.ErrLinearDependence)
}
