package pdb

import (
	"bufio"
	"io"

	"github.com/andrew-torda/pdbcodec/pdb/record"
)

// lineSink collects formatted lines and remembers the first error.
type lineSink struct {
	out []string
	err error
}

func (s *lineSink) add(r record.Record) {
	if s.err != nil {
		return
	}
	lines, err := r.Format()
	if err != nil {
		s.err = err
		return
	}
	s.out = append(s.out, lines...)
}

func addAll[R record.Record](s *lineSink, rs []R) {
	for _, r := range rs {
		s.add(r)
	}
}

// Format writes the whole entry in the order of the PDB sections,
// finishing with END. LINK records are annotated from the coordinates
// first, so a LINK to a missing atom is an error.
func (e *Entry) Format() ([]string, error) {
	if err := e.AnnotateLinks(); err != nil {
		return nil, err
	}
	s := new(lineSink)

	// Title section
	if e.Header != nil {
		s.add(e.Header)
	}
	if e.Obsolete != nil {
		s.add(e.Obsolete)
	}
	if e.Title != nil {
		s.add(e.Title)
	}
	if e.Split != nil {
		s.add(e.Split)
	}
	if e.Caveat != nil {
		s.add(e.Caveat)
	}
	for _, t := range []*record.Text{e.Compound, e.Source, e.Keywords, e.ExpData} {
		if t != nil {
			s.add(t)
		}
	}
	if e.NumModels != nil {
		s.add(e.NumModels)
	}
	if e.ModelType != nil {
		s.add(e.ModelType)
	}
	if e.Author != nil {
		s.add(e.Author)
	}
	addAll(s, e.Revisions)
	if e.Supersedes != nil {
		s.add(e.Supersedes)
	}
	addAll(s, e.Journal)
	addAll(s, e.Remarks)

	// Primary structure
	addAll(s, e.DBRefs)
	addAll(s, e.SeqAdvs)
	addAll(s, e.SeqRes)
	addAll(s, e.ModRes)

	// Heterogen
	addAll(s, e.Hets)
	addAll(s, e.HetNames)
	addAll(s, e.HetSyns)
	addAll(s, e.Formulas)

	// Secondary structure
	addAll(s, e.Helices)
	addAll(s, e.Sheets)

	// Connectivity annotation
	addAll(s, e.SSBonds)
	addAll(s, e.Links)
	addAll(s, e.CisPeps)

	// Miscellaneous
	addAll(s, e.Sites)

	// Crystallographic and coordinate transformation
	if e.UnitCell != nil {
		s.add(e.UnitCell)
	}
	addAll(s, e.OrigX)
	addAll(s, e.Scale)
	addAll(s, e.MTrix)

	// Coordinates
	for _, m := range e.Models {
		s.add(m)
		if len(e.Models) > 1 || m.Explicit {
			s.out = append(s.out, "ENDMDL")
		}
	}

	// Connectivity and bookkeeping
	addAll(s, e.Conects)
	if e.Master != nil {
		s.add(e.Master)
	}
	s.out = append(s.out, "END")
	if s.err != nil {
		return nil, s.err
	}
	return s.out, nil
}

// WriteTo writes the formatted entry with a newline after each line.
func (e *Entry) WriteTo(w io.Writer) (int64, error) {
	lines, err := e.Format()
	if err != nil {
		return 0, err
	}
	bw := bufio.NewWriter(w)
	var n int64
	for _, l := range lines {
		k, err := bw.WriteString(l + "\n")
		n += int64(k)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}
