package cif

import (
	"gonum.org/v1/gonum/mat"

	"github.com/Liozou/crystalnets-core/cell"
)

// MetaValue is a CIF metadata value: either a single string or a
// sequence of strings, per spec §3 ("Metadata mapping (string →
// string or sequence-of-strings)"). A scalar is represented as a
// single-element slice.
type MetaValue []string

// Scalar reports v's sole element, or "" if v holds zero or more than
// one element.
func (v MetaValue) Scalar() string {
	if len(v) != 1 {
		return ""
	}
	return v[0]
}

// Bonds is a symmetric N×N boolean adjacency matrix with zero diagonal
// (spec §3 invariant).
type Bonds struct {
	n    int
	data []bool
}

// NewBonds returns an empty N×N bond matrix.
func NewBonds(n int) *Bonds {
	return &Bonds{n: n, data: make([]bool, n*n)}
}

// N returns the number of atoms the matrix covers.
func (b *Bonds) N() int { return b.n }

// Get reports whether i and j are bonded.
func (b *Bonds) Get(i, j int) bool {
	return b.data[i*b.n+j]
}

// Set records or clears a bond between i and j, maintaining symmetry
// and the zero-diagonal invariant (a self-bond is silently ignored).
func (b *Bonds) Set(i, j int, bonded bool) {
	if i == j {
		return
	}
	b.data[i*b.n+j] = bonded
	b.data[j*b.n+i] = bonded
}

// Pairs returns every bonded pair (i, j) with i < j.
func (b *Bonds) Pairs() [][2]int {
	var out [][2]int
	for i := 0; i < b.n; i++ {
		for j := i + 1; j < b.n; j++ {
			if b.Get(i, j) {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}

// Record is a parsed CIF record (spec §3 "CIF record"): metadata, a
// Cell, a palette of element types, a per-atom type index, a 3×N
// fractional position matrix, and a symmetric bond matrix.
type Record struct {
	Metadata map[string]MetaValue
	Cell     *cell.Cell
	Types    []string // element-symbol palette
	Ids      []int    // per-atom index into Types, 0-based
	Pos      *mat.Dense
	Bonds    *Bonds
}

// NumAtoms returns the number of atoms (columns of Pos).
func (r *Record) NumAtoms() int {
	if r.Pos == nil {
		return 0
	}
	_, n := r.Pos.Dims()
	return n
}

// FracAt returns the fractional position of atom i.
func (r *Record) FracAt(i int) [3]float64 {
	return [3]float64{r.Pos.At(0, i), r.Pos.At(1, i), r.Pos.At(2, i)}
}

// clone returns a shallow copy of r suitable as the base for a pure
// transform to mutate before returning.
func (r *Record) clone() *Record {
	out := &Record{
		Metadata: r.Metadata,
		Cell:     r.Cell,
		Types:    append([]string(nil), r.Types...),
		Ids:      append([]int(nil), r.Ids...),
	}
	if r.Pos != nil {
		out.Pos = mat.DenseCopyOf(r.Pos)
	}
	if r.Bonds != nil {
		out.Bonds = &Bonds{n: r.Bonds.n, data: append([]bool(nil), r.Bonds.data...)}
	}
	return out
}
