package cif

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/Liozou/crystalnets-core/report"
	"github.com/Liozou/crystalnets-core/symmetry"
)

func fracDistance(a, b [3]float64) float64 {
	var s float64
	for i := 0; i < 3; i++ {
		d := a[i] - b[i]
		s += d * d
	}
	return math.Sqrt(s)
}

// RemovePartialOccupancy sorts vertices by fractional position
// lexicographically and treats any two consecutive positions (in that
// sorted order) closer than 4·10⁻⁴ in fractional Euclidean distance as
// the same site, keeping the smaller original index (spec §4.4).
func RemovePartialOccupancy(r *Record, rep report.Reporter) *Record {
	n := r.NumAtoms()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		fa, fb := r.FracAt(order[a]), r.FracAt(order[b])
		for k := 0; k < 3; k++ {
			if fa[k] != fb[k] {
				return fa[k] < fb[k]
			}
		}
		return false
	})

	remove := make(map[int]bool)
	for k := 0; k+1 < len(order); k++ {
		i, j := order[k], order[k+1]
		if fracDistance(r.FracAt(i), r.FracAt(j)) < 4e-4 {
			keep, drop := i, j
			if drop < keep {
				keep, drop = drop, keep
			}
			if !remove[drop] {
				remove[drop] = true
				rep.Warnf("cif: removing partial-occupancy duplicate atom %d (duplicate of %d)", drop, keep)
			}
		}
	}

	keepList := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if !remove[i] {
			keepList = append(keepList, i)
		}
	}

	return KeepAtoms(r, keepList)
}

// PruneCollisions removes every vertex participating in any pair whose
// periodic distance is below 0.55 Å (spec §4.4).
func PruneCollisions(r *Record, rep report.Reporter) *Record {
	n := r.NumAtoms()
	remove := make(map[int]bool)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := r.Cell.PeriodicDistance(r.FracAt(i), r.FracAt(j))
			if d < 0.55 {
				remove[i] = true
				remove[j] = true
			}
		}
	}
	if len(remove) > 0 {
		rep.Warnf("cif: pruning %d atoms involved in sub-0.55A collisions", len(remove))
	}

	keepList := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if !remove[i] {
			keepList = append(keepList, i)
		}
	}

	return KeepAtoms(r, keepList)
}

// ExpandSymmetry applies every equivalent position attached to r.Cell
// to every current vertex, folding each image into [0,1)³ and merging
// it into an existing vertex within 0.5 Å periodic distance, or else
// appending it as a new vertex with the same element type. Bonds are
// carried through to the corresponding image pairs. The result is
// passed through PruneCollisions (spec §4.4).
func ExpandSymmetry(r *Record, rep report.Reporter) *Record {
	n0 := r.NumAtoms()
	frac := make([][3]float64, n0, n0*4)
	for i := 0; i < n0; i++ {
		frac[i] = r.FracAt(i)
	}
	ids := append([]int(nil), r.Ids...)

	type bondPair struct{ a, b int }
	bondSet := make(map[bondPair]bool)
	addBond := func(a, b int) {
		if a == b {
			return
		}
		if a > b {
			a, b = b, a
		}
		bondSet[bondPair{a, b}] = true
	}
	for _, p := range r.Bonds.Pairs() {
		addBond(p[0], p[1])
	}

	findClose := func(p [3]float64, upTo int) int {
		for i := 0; i < upTo; i++ {
			if r.Cell.PeriodicDistance(p, frac[i]) < 0.5 {
				return i
			}
		}
		return -1
	}

	for _, op := range r.Cell.Equivalents {
		m, t := opToFloat64(op)
		imageOf := make(map[int]int, n0)
		for i := 0; i < n0; i++ {
			p := foldUnit(applyAffine(m, t, frac[i]))

			target := findClose(p, len(frac))
			if target == -1 {
				frac = append(frac, p)
				ids = append(ids, ids[i])
				target = len(frac) - 1
			}
			imageOf[i] = target
		}
		// carry original bonds through to their images for this
		// generator: image(i)-image(j) for every original bond (i,j).
		for _, p := range r.Bonds.Pairs() {
			addBond(imageOf[p[0]], imageOf[p[1]])
		}
	}

	pos := mat.NewDense(3, len(frac), nil)
	for i, p := range frac {
		pos.Set(0, i, p[0])
		pos.Set(1, i, p[1])
		pos.Set(2, i, p[2])
	}
	bonds := NewBonds(len(frac))
	for bp := range bondSet {
		bonds.Set(bp.a, bp.b, true)
	}

	out := &Record{
		Metadata: r.Metadata,
		Cell:     r.Cell,
		Types:    append([]string(nil), r.Types...),
		Ids:      ids,
		Pos:      pos,
		Bonds:    bonds,
	}

	return PruneCollisions(out, rep)
}

// KeepAtoms restricts r to the given vertex indices, dropping any
// element-palette entries no longer referenced and remapping ids
// densely (spec §4.4).
func KeepAtoms(r *Record, keep []int) *Record {
	pos := mat.NewDense(3, len(keep), nil)
	ids := make([]int, len(keep))
	for newIdx, oldIdx := range keep {
		f := r.FracAt(oldIdx)
		pos.Set(0, newIdx, f[0])
		pos.Set(1, newIdx, f[1])
		pos.Set(2, newIdx, f[2])
		ids[newIdx] = r.Ids[oldIdx]
	}

	usedOldType := make(map[int]bool)
	for _, id := range ids {
		usedOldType[id] = true
	}
	oldToNewType := make(map[int]int)
	var newTypes []string
	for oldID := 0; oldID < len(r.Types); oldID++ {
		if usedOldType[oldID] {
			oldToNewType[oldID] = len(newTypes)
			newTypes = append(newTypes, r.Types[oldID])
		}
	}
	for i, id := range ids {
		ids[i] = oldToNewType[id]
	}

	oldToNew := make(map[int]int, len(keep))
	for newIdx, oldIdx := range keep {
		oldToNew[oldIdx] = newIdx
	}
	bonds := NewBonds(len(keep))
	for _, p := range r.Bonds.Pairs() {
		ni, okI := oldToNew[p[0]]
		nj, okJ := oldToNew[p[1]]
		if okI && okJ {
			bonds.Set(ni, nj, true)
		}
	}

	return &Record{
		Metadata: r.Metadata,
		Cell:     r.Cell,
		Types:    newTypes,
		Ids:      ids,
		Pos:      pos,
		Bonds:    bonds,
	}
}

func opToFloat64(op symmetry.EquivalentPosition) (m [3][3]float64, t [3]float64) {
	for i := 0; i < 3; i++ {
		t[i], _ = op.T[i].Float64()
		for j := 0; j < 3; j++ {
			m[i][j], _ = op.M[i][j].Float64()
		}
	}
	return m, t
}

func applyAffine(m [3][3]float64, t [3]float64, v [3]float64) [3]float64 {
	var out [3]float64
	for i := 0; i < 3; i++ {
		s := t[i]
		for j := 0; j < 3; j++ {
			s += m[i][j] * v[j]
		}
		out[i] = s
	}
	return out
}

func foldUnit(v [3]float64) [3]float64 {
	var out [3]float64
	for i, x := range v {
		out[i] = x - math.Floor(x)
	}
	return out
}
