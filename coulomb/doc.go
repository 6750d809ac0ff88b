// doc.go --  This file is part of goHF project.
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

// Package coulomb stores two-particle radial (Coulomb) integrals Q^k_abcd
// for a fixed orbital basis, one dense value per allowed multipolarity k,
// keyed by a symmetry-reduced index quadruple.
//
// A Table is filled once per basis by a pool of workers. Each worker owns a
// contiguous run of leading indices and only enumerates quadruples whose
// canonical key starts with one of them, so the private stores never share a
// key and can be merged without locking. Update refreshes the values in place
// after the orbitals change; the key set stays the same.
//
// Lookups never fail: an absent quadruple or a k outside the stored range
// reads as zero. R, P and W are recombinations of the stored Q's.
//
//	tab := coulomb.NewTable(coulomb.SymmetryQk, eval, ang)
//	if err := tab.Fill(basis); err != nil {
//		log.Fatal(err)
//	}
//	w := tab.W(1, a, b, c, d)
package coulomb
