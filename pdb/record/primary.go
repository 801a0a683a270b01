package record

import (
	"fmt"
	"strings"

	"github.com/andrew-torda/pdbcodec/pdb/cmmn"
)

// DBRef links a chain to a sequence database entry.
type DBRef struct {
	raw
	IDCode      string
	ChainID     string
	SeqBegin    int
	InsertBegin string
	SeqEnd      int
	InsertEnd   string
	Database    string
	DBAccession string
	DBIDCode    string
	DBSeqBegin  int
	DBInsBegin  string
	DBSeqEnd    int
	DBInsEnd    string
}

func (*DBRef) Tag() string { return "DBREF" }

func (d *DBRef) Parse(line string) error {
	c := cmmn.NewCols("DBREF", line)
	d.IDCode = c.Str(8, 11)
	d.ChainID = c.Str(13, 13)
	d.SeqBegin = c.Int(15, 18)
	d.InsertBegin = c.Str(19, 19)
	d.SeqEnd = c.Int(21, 24)
	d.InsertEnd = c.Str(25, 25)
	d.Database = c.Str(27, 32)
	d.DBAccession = c.Str(34, 41)
	d.DBIDCode = c.Str(43, 54)
	d.DBSeqBegin = c.Int(56, 60)
	d.DBInsBegin = c.Str(61, 61)
	d.DBSeqEnd = c.Int(63, 67)
	d.DBInsEnd = c.Str(68, 68)
	d.keep(line)
	return c.Err()
}

func (d *DBRef) Format() ([]string, error) {
	return one(trimmed("DBREF  %-4s %1s %4d%1s %4d%1s %-6s %-8s %-12s %5d%1s %5d%1s",
		d.IDCode, d.ChainID, d.SeqBegin, d.InsertBegin, d.SeqEnd, d.InsertEnd,
		d.Database, d.DBAccession, d.DBIDCode, d.DBSeqBegin, d.DBInsBegin,
		d.DBSeqEnd, d.DBInsEnd))
}

// DBRef1 is the first half of a DBREF which does not fit on one line.
type DBRef1 struct {
	raw
	IDCode      string
	ChainID     string
	SeqBegin    int
	InsertBegin string
	SeqEnd      int
	InsertEnd   string
	Database    string
	DBIDCode    string
}

func (*DBRef1) Tag() string { return "DBREF1" }

func (d *DBRef1) Parse(line string) error {
	c := cmmn.NewCols("DBREF1", line)
	d.IDCode = c.Str(8, 11)
	d.ChainID = c.Str(13, 13)
	d.SeqBegin = c.Int(15, 18)
	d.InsertBegin = c.Str(19, 19)
	d.SeqEnd = c.Int(21, 24)
	d.InsertEnd = c.Str(25, 25)
	d.Database = c.Str(27, 32)
	d.DBIDCode = c.Str(48, 67)
	d.keep(line)
	return c.Err()
}

func (d *DBRef1) Format() ([]string, error) {
	return one(trimmed("DBREF1 %-4s %1s %4d%1s %4d%1s %-6s               %-20s",
		d.IDCode, d.ChainID, d.SeqBegin, d.InsertBegin, d.SeqEnd, d.InsertEnd,
		d.Database, d.DBIDCode))
}

// DBRef2 is the second half, with the accession and database numbering.
type DBRef2 struct {
	raw
	IDCode      string
	ChainID     string
	DBAccession string
	SeqBegin    int
	SeqEnd      int
}

func (*DBRef2) Tag() string { return "DBREF2" }

func (d *DBRef2) Parse(line string) error {
	c := cmmn.NewCols("DBREF2", line)
	d.IDCode = c.Str(8, 11)
	d.ChainID = c.Str(13, 13)
	d.DBAccession = c.Str(19, 40)
	d.SeqBegin = c.Int(46, 55)
	d.SeqEnd = c.Int(58, 67)
	d.keep(line)
	return c.Err()
}

func (d *DBRef2) Format() ([]string, error) {
	return one(trimmed("DBREF2 %-4s %1s     %-22s     %10d  %10d",
		d.IDCode, d.ChainID, d.DBAccession, d.SeqBegin, d.SeqEnd))
}

// SeqAdv is a difference between SEQRES and the database sequence.
type SeqAdv struct {
	raw
	IDCode      string
	ResName     string
	ChainID     string
	SeqNum      cmmn.NullInt
	ICode       string
	Database    string
	DBAccession string
	DBRes       string
	DBSeq       cmmn.NullInt
	Conflict    string
}

func (*SeqAdv) Tag() string { return "SEQADV" }

func (s *SeqAdv) Parse(line string) error {
	c := cmmn.NewCols("SEQADV", line)
	s.IDCode = c.Str(8, 11)
	s.ResName = c.Str(13, 15)
	s.ChainID = c.Str(17, 17)
	s.SeqNum = c.NullInt(19, 22)
	s.ICode = c.Str(23, 23)
	s.Database = c.Str(25, 28)
	s.DBAccession = c.Str(30, 38)
	s.DBRes = c.Str(40, 42)
	s.DBSeq = c.NullInt(44, 48)
	s.Conflict = c.Text(50)
	s.keep(line)
	return c.Err()
}

func (s *SeqAdv) Format() ([]string, error) {
	return one(trimmed("SEQADV %-4s %3s %1s %4s%1s %-4s %-9s %3s %5s %s",
		s.IDCode, s.ResName, s.ChainID, s.SeqNum.Fmt(4), s.ICode, s.Database,
		s.DBAccession, s.DBRes, s.DBSeq.Fmt(5), s.Conflict))
}

// Residue names on one SEQRES line
const seqresPerLine = 13

// SeqRes is the whole SEQRES block for one chain.
type SeqRes struct {
	raw
	ChainID  string
	NumRes   int
	Residues []string
}

func (*SeqRes) Tag() string { return "SEQRES" }

// Key is the chain.
func (s *SeqRes) Key() string { return s.ChainID }

func (s *SeqRes) Parse(line string) error {
	c := cmmn.NewCols("SEQRES", line)
	c.Int(8, 10) // serial number, regenerated on output
	if len(s.lines) == 0 {
		s.ChainID = c.Str(12, 12)
		s.NumRes = c.Int(14, 17)
	}
	for k := 0; k < seqresPerLine; k++ {
		if r := c.Str(20+4*k, 22+4*k); r != "" {
			s.Residues = append(s.Residues, r)
		}
	}
	s.keep(line)
	return c.Err()
}

func (s *SeqRes) Format() ([]string, error) {
	groups := cmmn.Chunk(s.Residues, seqresPerLine, cmmn.Absent)
	if len(groups) == 0 {
		groups = [][]string{nil}
	}
	out := make([]string, len(groups))
	for i, g := range groups {
		var res []string
		for _, r := range g {
			if r != cmmn.Absent {
				res = append(res, fmt.Sprintf("%3s", r))
			}
		}
		out[i] = trimmed("SEQRES %3d %1s %4d  %s", i+1, s.ChainID, s.NumRes, strings.Join(res, " "))
	}
	return out, nil
}

// ModRes describes a modified residue.
type ModRes struct {
	raw
	IDCode  string
	ResName string
	ChainID string
	SeqNum  int
	ICode   string
	StdRes  string
	Comment string
}

func (*ModRes) Tag() string { return "MODRES" }

func (m *ModRes) Parse(line string) error {
	c := cmmn.NewCols("MODRES", line)
	m.IDCode = c.Str(8, 11)
	m.ResName = c.Str(13, 15)
	m.ChainID = c.Str(17, 17)
	m.SeqNum = c.Int(19, 22)
	m.ICode = c.Str(23, 23)
	m.StdRes = c.Str(25, 27)
	m.Comment = c.Text(30)
	m.keep(line)
	return c.Err()
}

func (m *ModRes) Format() ([]string, error) {
	return one(trimmed("MODRES %-4s %3s %1s %4d%1s %3s  %s",
		m.IDCode, m.ResName, m.ChainID, m.SeqNum, m.ICode, m.StdRes, m.Comment))
}
