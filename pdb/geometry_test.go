package pdb_test

import (
	"bytes"
	"log"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/andrew-torda/pdbcodec/pdb"
	"github.com/andrew-torda/pdbcodec/pdb/cmmn"
	"github.com/andrew-torda/pdbcodec/pdb/record"
)

func TestCheckBondLengths(t *testing.T) {
	e, err := parseLines(smallLines(t), nil)
	require.NoError(t, err)
	// O of GLY 3 to the zinc is sqrt(6), the file says 2.05
	require.Empty(t, e.CheckBondLengths(nil, 0.5))

	var buf bytes.Buffer
	bad := e.CheckBondLengths(log.New(&buf, "", 0), 0.1)
	require.Len(t, bad, 1)
	require.Equal(t, "LINK", bad[0].Record)
	require.InDelta(t, 2.05, bad[0].Declared, 1e-9)
	require.InDelta(t, math.Sqrt(6), bad[0].Found, 1e-4)
	require.Contains(t, buf.String(), "LINK O A3 - ZN A101")

	e.Links[0].Sym2 = "2555"
	require.Empty(t, e.CheckBondLengths(nil, 0.1), "no check across symmetry operators")
	e.Links[0].Sym2 = "1555"
	e.Links[0].Length = cmmn.NullFloat{}
	require.Empty(t, e.CheckBondLengths(nil, 0.1), "no length, nothing to check")
}

func TestCheckSSBond(t *testing.T) {
	e := NewEntry()
	m := &record.Model{}
	m.Add(&record.Atom{Name: "SG", ResName: "CYS", ChainID: "A", ResSeq: 3, X: 0})
	m.Add(&record.Atom{Name: "SG", ResName: "CYS", ChainID: "A", ResSeq: 9, X: 2.04})
	e.Models = append(e.Models, m)
	e.SSBonds = append(e.SSBonds, &record.SSBond{
		Res1: record.ResID{ResName: "CYS", ChainID: "A", SeqNum: 3},
		Res2: record.ResID{ResName: "CYS", ChainID: "A", SeqNum: 9},
		Sym1: "1555", Sym2: "1555", Length: cmmn.SomeFloat(2.03),
	})
	require.Empty(t, e.CheckBondLengths(nil, 0.05))
	require.Len(t, e.CheckBondLengths(nil, 0.001), 1)
}

func TestCheckCisPeps(t *testing.T) {
	atom := func(name string, seq int, x, y float64) *record.Atom {
		return &record.Atom{Name: name, ChainID: "A", ResSeq: seq, X: x, Y: y}
	}
	m := &record.Model{}
	for _, a := range []*record.Atom{ // a cis peptide, then a trans one
		atom("CA", 1, 0, 1), atom("C", 1, 1, 0), atom("N", 2, 2, 0), atom("CA", 2, 3, 1),
		atom("CA", 3, 0, 1), atom("C", 3, 1, 0), atom("N", 4, 2, 0), atom("CA", 4, 3, -1),
	} {
		m.Add(a)
	}
	e := NewEntry()
	e.Models = append(e.Models, m)
	pep := func(ser, seq int, measure float64) *record.CisPep {
		return &record.CisPep{SerNum: ser,
			Pep1:    record.ResID{ResName: "ALA", ChainID: "A", SeqNum: seq},
			Pep2:    record.ResID{ResName: "PRO", ChainID: "A", SeqNum: seq + 1},
			ModNum:  1,
			Measure: measure}
	}
	e.CisPeps = append(e.CisPeps, pep(1, 1, -3.5), pep(2, 3, -5), pep(3, 7, 0))

	var buf bytes.Buffer
	bad := e.CheckCisPeps(log.New(&buf, "", 0), 30)
	require.Len(t, bad, 1, "residue 7 has no atoms and is not checked")
	require.Equal(t, "CISPEP", bad[0].Record)
	require.InDelta(t, 180, math.Abs(bad[0].Found), 1e-3)
	require.Contains(t, buf.String(), "ALA A3 PRO A4")

	e.CisPeps[1].ModNum = 2
	require.Empty(t, e.CheckCisPeps(nil, 30), "there is no model 2")
}
