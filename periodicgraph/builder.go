package periodicgraph

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/Liozou/crystalnets-core/cif"
)

// tieTolerance is the spec §4.5 tie window around the running minimum
// distance.
const tieTolerance = 1e-3

// candidateOffsets are the 27 lattice translations in {-1,0,1}³,
// enumerated in fixed lexicographic order so edge construction is
// deterministic (spec §5: "deterministic because candidate offsets
// are iterated in fixed lexicographic order").
var candidateOffsets = func() []Offset {
	out := make([]Offset, 0, 27)
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				out = append(out, Offset{x, y, z})
			}
		}
	}
	return out
}()

func cartesian(basis *mat.Dense, frac [3]float64) [3]float64 {
	var out [3]float64
	for r := 0; r < 3; r++ {
		var s float64
		for c := 0; c < 3; c++ {
			s += basis.At(r, c) * frac[c]
		}
		out[r] = s
	}
	return out
}

func norm(v [3]float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// BuildEdges constructs the periodic edge set from a bonded pair list,
// a Cartesian basis, and fractional positions, per spec §4.5: for each
// bonded pair (i<k), enumerate the 27 candidate offsets and retain all
// that achieve the minimum Cartesian distance between pos[:,i] and
// pos[:,k]+offset, with running-average tie tolerance 10⁻³. The
// reference distance d0 = ‖basis·(1,1,1)‖ seeds the candidate minimum.
func BuildEdges(bonds *cif.Bonds, basis *mat.Dense, pos *mat.Dense) []PeriodicEdge3D {
	d0 := norm(cartesian(basis, [3]float64{1, 1, 1}))

	fracOf := func(i int) [3]float64 {
		return [3]float64{pos.At(0, i), pos.At(1, i), pos.At(2, i)}
	}

	var edges []PeriodicEdge3D
	for _, pair := range bonds.Pairs() {
		i, k := pair[0], pair[1]
		fi, fk := fracOf(i), fracOf(k)

		dmin := d0
		count := 0
		var winners []Offset

		for _, o := range candidateOffsets {
			diff := [3]float64{
				fi[0] - (fk[0] + float64(o[0])),
				fi[1] - (fk[1] + float64(o[1])),
				fi[2] - (fk[2] + float64(o[2])),
			}
			d := norm(cartesian(basis, diff))

			switch {
			case d < dmin-tieTolerance:
				dmin = d
				count = 1
				winners = []Offset{o}
			case math.Abs(d-dmin) < tieTolerance:
				dmin = (dmin*float64(count) + d) / float64(count+1)
				count++
				winners = append(winners, o)
			}
		}

		for _, o := range winners {
			// bonds.Pairs() always yields i < k, so the edge is
			// already in canonical (U <= V) order.
			edges = append(edges, PeriodicEdge3D{U: i, V: k, O: o})
		}
	}

	return edges
}
