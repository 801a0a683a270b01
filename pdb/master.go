package pdb

import (
	"fmt"

	"github.com/andrew-torda/pdbcodec/pdb/record"
)

// MasterMismatch is one count in the MASTER record which does not
// agree with what we read.
type MasterMismatch struct {
	Field    string
	Declared int
	Found    int
}

func (m MasterMismatch) String() string {
	return fmt.Sprintf("MASTER indicates %d %s records; found %d.", m.Declared, m.Field, m.Found)
}

// numLines is how many lines a group of records will be written as.
func numLines[R interface{ Format() ([]string, error) }](rs []R) int {
	n := 0
	for _, r := range rs {
		lines, _ := r.Format()
		n += len(lines)
	}
	return n
}

// CheckMaster compares the MASTER record with the entry. Each
// difference is logged as a warning and returned. Nothing is fatal,
// since files often get MASTER wrong. With no MASTER record there is
// nothing to check.
func (e *Entry) CheckMaster(outlog Logger) []MasterMismatch {
	m := e.Master
	if m == nil {
		return nil
	}
	if outlog == nil {
		outlog = (*Options)(nil).logger()
	}
	wantModels := 1
	if e.NumModels != nil {
		wantModels = e.NumModels.N
	}
	checks := []MasterMismatch{
		{"model", wantModels, len(e.Models)},
		{"REMARK", m.NumRemark, len(e.Remarks)},
		{"HET", m.NumHet, len(e.Hets)},
		{"HELIX", m.NumHelix, len(e.Helices)},
		{"SHEET", m.NumSheet, len(e.Sheets)},
		{"SITE", m.NumSite, numLines(e.Sites)},
		{"transform", m.NumXform, e.NumTransforms()},
		{"coordinate", m.NumCoord, e.NumAtoms(true)},
		{"TER", m.NumTer, e.NumTer()},
		{"CONECT", m.NumConect, len(e.Conects)},
		{"SEQRES", m.NumSeq, numLines(e.SeqRes)},
	}
	var bad []MasterMismatch
	for _, c := range checks {
		if c.Declared != c.Found {
			outlog.Printf("%s However, the MASTER record is hard to interpret.", c)
			bad = append(bad, c)
		}
	}
	return bad
}

// SiteMismatch is a SITE whose residue count is not the number of
// residues listed.
type SiteMismatch struct {
	SiteID   string
	Declared int
	Found    int
}

// CheckSites warns about SITE records with the wrong residue count.
func (e *Entry) CheckSites(outlog Logger) []SiteMismatch {
	if outlog == nil {
		outlog = (*Options)(nil).logger()
	}
	var bad []SiteMismatch
	for _, s := range e.Sites {
		if s.NumRes != len(s.Residues) {
			outlog.Printf("SITE %s says %d residues, but lists %d", s.SiteID, s.NumRes, len(s.Residues))
			bad = append(bad, SiteMismatch{s.SiteID, s.NumRes, len(s.Residues)})
		}
	}
	return bad
}

// ComputeMaster makes a MASTER record which agrees with the entry, as
// CheckMaster counts things.
func (e *Entry) ComputeMaster() *record.Master {
	return &record.Master{
		NumRemark: len(e.Remarks),
		NumHet:    len(e.Hets),
		NumHelix:  len(e.Helices),
		NumSheet:  len(e.Sheets),
		NumSite:   numLines(e.Sites),
		NumXform:  e.NumTransforms(),
		NumCoord:  e.NumAtoms(true),
		NumTer:    e.NumTer(),
		NumConect: len(e.Conects),
		NumSeq:    numLines(e.SeqRes),
	}
}
