package record

import (
	"fmt"
	"strings"

	"github.com/andrew-torda/pdbcodec/pdb/cmmn"
)

// Conect lists the atoms bonded to one atom.
type Conect struct {
	raw
	Serial int
	Bonded []int
}

func (*Conect) Tag() string { return "CONECT" }

func (cn *Conect) Parse(line string) error {
	c := cmmn.NewCols("CONECT", line)
	cn.Serial = c.Int(7, 11)
	for k := 0; k < 4; k++ {
		if b := c.NullInt(12+5*k, 16+5*k); b.Valid {
			cn.Bonded = append(cn.Bonded, b.Int)
		}
	}
	cn.keep(line)
	return c.Err()
}

func (cn *Conect) Format() ([]string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "CONECT%5d", cn.Serial)
	for _, n := range cn.Bonded {
		fmt.Fprintf(&b, "%5d", n)
	}
	return one(b.String())
}

// Master has the counts of other records, for checking.
type Master struct {
	raw
	NumRemark int
	Zero      int // always 0
	NumHet    int
	NumHelix  int
	NumSheet  int
	NumTurn   int // deprecated
	NumSite   int
	NumXform  int
	NumCoord  int
	NumTer    int
	NumConect int
	NumSeq    int
}

func (*Master) Tag() string { return "MASTER" }

func (m *Master) fields() []*int {
	return []*int{&m.NumRemark, &m.Zero, &m.NumHet, &m.NumHelix, &m.NumSheet,
		&m.NumTurn, &m.NumSite, &m.NumXform, &m.NumCoord, &m.NumTer,
		&m.NumConect, &m.NumSeq}
}

func (m *Master) Parse(line string) error {
	c := cmmn.NewCols("MASTER", line)
	for i, p := range m.fields() {
		*p = c.IntOrZero(11+5*i, 15+5*i)
	}
	m.keep(line)
	return c.Err()
}

func (m *Master) Format() ([]string, error) {
	var b strings.Builder
	b.WriteString("MASTER    ")
	for _, p := range m.fields() {
		fmt.Fprintf(&b, "%5d", *p)
	}
	return one(b.String())
}
