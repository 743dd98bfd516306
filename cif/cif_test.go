package cif_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/Liozou/crystalnets-core/cell"
	"github.com/Liozou/crystalnets-core/cif"
	"github.com/Liozou/crystalnets-core/report"
	"github.com/Liozou/crystalnets-core/symmetry"
)

func cubicRecord(t *testing.T) *cif.Record {
	c, err := cell.NewCell(10, 10, 10, 90, 90, 90)
	require.NoError(t, err)
	pos := mat.NewDense(3, 2, nil)
	pos.SetRow(0, []float64{0, 0.5})
	pos.SetRow(1, []float64{0, 0.5})
	pos.SetRow(2, []float64{0, 0.5})
	bonds := cif.NewBonds(2)
	bonds.Set(0, 1, true)
	return &cif.Record{
		Metadata: map[string]cif.MetaValue{},
		Cell:     c,
		Types:    []string{"C"},
		Ids:      []int{0, 0},
		Pos:      pos,
		Bonds:    bonds,
	}
}

func TestRemovePartialOccupancy(t *testing.T) {
	c, err := cell.NewCell(10, 10, 10, 90, 90, 90)
	require.NoError(t, err)
	pos := mat.NewDense(3, 3, nil)
	pos.SetRow(0, []float64{0, 0.00001, 0.8})
	pos.SetRow(1, []float64{0, 0, 0.8})
	pos.SetRow(2, []float64{0, 0, 0.8})
	rec := &cif.Record{
		Cell:  c,
		Types: []string{"C", "N"},
		Ids:   []int{0, 1, 0},
		Pos:   pos,
		Bonds: cif.NewBonds(3),
	}
	rep := &report.Recording{}
	out := cif.RemovePartialOccupancy(rec, rep)
	assert.Equal(t, 2, out.NumAtoms())
	assert.NotEmpty(t, rep.Messages)
}

func TestPruneCollisions(t *testing.T) {
	rec := cubicRecord(t)
	rep := &report.Recording{}
	out := cif.PruneCollisions(rec, rep)
	assert.Equal(t, 2, out.NumAtoms())
	assert.Empty(t, rep.Messages)
}

func TestKeepAtoms(t *testing.T) {
	rec := cubicRecord(t)
	out := cif.KeepAtoms(rec, []int{1})
	require.Equal(t, 1, out.NumAtoms())
	assert.Equal(t, []string{"C"}, out.Types)
	assert.Equal(t, 0.5, out.FracAt(0)[0])
}

func TestExpandSymmetry(t *testing.T) {
	c, err := cell.NewCell(10, 10, 10, 90, 90, 90)
	require.NoError(t, err)
	inv, err := symmetry.ParseOperator("-x,-y,-z", symmetry.DefaultIdentifiers, report.Default)
	require.NoError(t, err)
	c.Equivalents = []symmetry.EquivalentPosition{symmetry.Identity(), inv}

	pos := mat.NewDense(3, 1, nil)
	pos.SetRow(0, []float64{0.2})
	pos.SetRow(1, []float64{0.2})
	pos.SetRow(2, []float64{0.2})
	rec := &cif.Record{
		Cell:  c,
		Types: []string{"C"},
		Ids:   []int{0},
		Pos:   pos,
		Bonds: cif.NewBonds(1),
	}
	rep := &report.Recording{}
	out := cif.ExpandSymmetry(rec, rep)
	assert.GreaterOrEqual(t, out.NumAtoms(), 1)
}
