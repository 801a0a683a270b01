package pdb

import (
	"bufio"
	"io"
	"log"
	"strings"

	"github.com/andrew-torda/pdbcodec/pdb/record"
)

// A handler takes one line of a record type and puts it in the entry.
type handler func(e *Entry, line string) error

// handlers maps each record name to what we do with it. It is filled
// in init() since the handlers refer to Entry methods.
var handlers map[string]handler

func init() {
	handlers = map[string]handler{
		"HEADER": (*Entry).header,
		"OBSLTE": func(e *Entry, l string) error { return replace(&e.Obsolete, record.NewObsolete, l) },
		"TITLE":  func(e *Entry, l string) error { return text(&e.Title, "TITLE", l) },
		"SPLIT": func(e *Entry, l string) error {
			if e.Split == nil {
				e.Split = new(record.Split)
			}
			return e.Split.Parse(l)
		},
		"CAVEAT": func(e *Entry, l string) error {
			if e.Caveat == nil {
				e.Caveat = new(record.Caveat)
			}
			return e.Caveat.Parse(l)
		},
		"COMPND": func(e *Entry, l string) error { return text(&e.Compound, "COMPND", l) },
		"SOURCE": func(e *Entry, l string) error { return text(&e.Source, "SOURCE", l) },
		"KEYWDS": func(e *Entry, l string) error { return text(&e.Keywords, "KEYWDS", l) },
		"EXPDTA": func(e *Entry, l string) error { return text(&e.ExpData, "EXPDTA", l) },
		"NUMMDL": (*Entry).numModels,
		"MDLTYP": func(e *Entry, l string) error { return text(&e.ModelType, "MDLTYP", l) },
		"AUTHOR": func(e *Entry, l string) error { return text(&e.Author, "AUTHOR", l) },
		"REVDAT": func(e *Entry, l string) error { return keyedAdd(&e.Revisions, new(record.RevData), l) },
		"SPRSDE": func(e *Entry, l string) error { return replace(&e.Supersedes, record.NewSupersedes, l) },
		"JRNL":   func(e *Entry, l string) error { return appendTo(&e.Journal, new(record.Journal), l) },
		"REMARK": func(e *Entry, l string) error { return appendTo(&e.Remarks, new(record.Remark), l) },

		"DBREF":  func(e *Entry, l string) error { return appendTo(&e.DBRefs, record.Record(new(record.DBRef)), l) },
		"DBREF1": func(e *Entry, l string) error { return appendTo(&e.DBRefs, record.Record(new(record.DBRef1)), l) },
		"DBREF2": func(e *Entry, l string) error { return appendTo(&e.DBRefs, record.Record(new(record.DBRef2)), l) },
		"SEQADV": func(e *Entry, l string) error { return appendTo(&e.SeqAdvs, new(record.SeqAdv), l) },
		"SEQRES": func(e *Entry, l string) error { return keyedAdd(&e.SeqRes, new(record.SeqRes), l) },
		"MODRES": func(e *Entry, l string) error { return appendTo(&e.ModRes, new(record.ModRes), l) },

		"HET":    func(e *Entry, l string) error { return appendTo(&e.Hets, new(record.Het), l) },
		"HETNAM": func(e *Entry, l string) error { return keyedAdd(&e.HetNames, record.NewHetName(), l) },
		"HETSYN": func(e *Entry, l string) error { return keyedAdd(&e.HetSyns, record.NewHetSyn(), l) },
		"FORMUL": func(e *Entry, l string) error { return keyedAdd(&e.Formulas, new(record.Formula), l) },

		"HELIX": func(e *Entry, l string) error { return appendTo(&e.Helices, new(record.Helix), l) },
		"SHEET": func(e *Entry, l string) error { return appendTo(&e.Sheets, new(record.Sheet), l) },

		"SSBOND": func(e *Entry, l string) error { return appendTo(&e.SSBonds, new(record.SSBond), l) },
		"LINK":   func(e *Entry, l string) error { return appendTo(&e.Links, new(record.Link), l) },
		"CISPEP": func(e *Entry, l string) error { return appendTo(&e.CisPeps, new(record.CisPep), l) },

		"SITE": func(e *Entry, l string) error { return keyedAdd(&e.Sites, new(record.Site), l) },

		"CRYST1": (*Entry).unitCell,

		"MODEL":  (*Entry).model,
		"ATOM":   func(e *Entry, l string) error { return e.coord(record.NewAtom(false), l) },
		"HETATM": func(e *Entry, l string) error { return e.coord(record.NewAtom(true), l) },
		"ANISOU": func(e *Entry, l string) error { return e.coord(new(record.AnisoU), l) },
		"TER":    func(e *Entry, l string) error { return e.coord(new(record.Ter), l) },
		"ENDMDL": func(*Entry, string) error { return nil },

		"CONECT": func(e *Entry, l string) error { return appendTo(&e.Conects, new(record.Conect), l) },
		"MASTER": (*Entry).master,
		"END":    func(*Entry, string) error { return nil },
	}
	for _, k := range []string{record.OrigX, record.Scale, record.MTrix} {
		for _, n := range []string{"1", "2", "3"} {
			handlers[k+n] = (*Entry).transform
		}
	}
}

// coordTags are the records whose errors are fatal even when parsing
// is tolerant.
var coordTags = map[string]bool{"ATOM": true, "HETATM": true}

func (e *Entry) header(line string) error {
	if e.Header != nil {
		return &DuplicateRecordError{Record: "HEADER"}
	}
	e.Header = new(record.Header)
	return e.Header.Parse(line)
}

func (e *Entry) numModels(line string) error {
	if e.NumModels != nil {
		return &DuplicateRecordError{Record: "NUMMDL"}
	}
	e.NumModels = new(record.NumModels)
	return e.NumModels.Parse(line)
}

func (e *Entry) unitCell(line string) error {
	if e.UnitCell != nil {
		return &DuplicateRecordError{Record: "CRYST1"}
	}
	e.UnitCell = new(record.UnitCell)
	return e.UnitCell.Parse(line)
}

func (e *Entry) master(line string) error {
	if e.Master != nil {
		return &DuplicateRecordError{Record: "MASTER"}
	}
	e.Master = new(record.Master)
	return e.Master.Parse(line)
}

func (e *Entry) transform(line string) error {
	t, err := record.NewTransform(record.Tag(line))
	if err != nil {
		return err
	}
	list := e.transforms(t.Kind)
	if len(*list) >= 3 {
		return &TooManyTransformsError{Kind: t.Kind}
	}
	if err := t.Parse(line); err != nil {
		return err
	}
	*list = append(*list, t)
	return nil
}

func (e *Entry) model(line string) error {
	m := new(record.Model)
	if err := m.Parse(line); err != nil {
		return err
	}
	e.Models = append(e.Models, m)
	return nil
}

func (e *Entry) coord(r record.CoordRecord, line string) error {
	if err := r.Parse(line); err != nil {
		return err
	}
	e.currentModel().Add(r)
	return nil
}

// text feeds a line to a text record, making it first if need be.
func text(p **record.Text, tag, line string) error {
	if *p == nil {
		*p = record.NewText(tag)
	}
	return (*p).Parse(line)
}

func replace(p **record.Replace, mk func() *record.Replace, line string) error {
	if *p == nil {
		*p = mk()
	}
	return (*p).Parse(line)
}

// appendTo parses a line into a new record and adds it to the list.
func appendTo[R record.Record](list *[]R, r R, line string) error {
	if err := r.Parse(line); err != nil {
		return err
	}
	*list = append(*list, r)
	return nil
}

type keyedRecord interface {
	record.Record
	Key() string
}

// keyedAdd is for records grouped by a key. The line is parsed into
// fresh to get the key. If there is already a record with that key,
// the line is given to it instead.
func keyedAdd[R keyedRecord](list *[]R, fresh R, line string) error {
	if err := fresh.Parse(line); err != nil {
		return err
	}
	for _, r := range *list {
		if r.Key() == fresh.Key() {
			return r.Parse(line)
		}
	}
	*list = append(*list, fresh)
	return nil
}

// ParseLine puts one line into the entry. Blank lines are ignored.
func (e *Entry) ParseLine(line string) error {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return nil
	}
	name := record.Tag(line)
	h, ok := handlers[name]
	if !ok {
		return &UnknownRecordError{Name: name, Line: line}
	}
	return h(e, line)
}

// Options change how Parse behaves. The zero value is strict and
// quiet.
type Options struct {
	// Tolerant skips lines which cannot be read, except for
	// coordinates, and logs the first problem for each record name.
	Tolerant bool
	Log      Logger
}

func (o *Options) tolerant() bool { return o != nil && o.Tolerant }

func (o *Options) logger() Logger {
	if o == nil || o.Log == nil {
		return log.New(io.Discard, "", 0)
	}
	return o.Log
}

// Parse reads a PDB format file. If there is an error, the entry read
// so far is returned with it. opts may be nil.
func Parse(r io.Reader, opts *Options) (*Entry, error) {
	e := NewEntry()
	return e, e.Read(r, opts)
}

// Read parses lines from r into e.
func (e *Entry) Read(r io.Reader, opts *Options) error {
	tolerant := opts.tolerant()
	outlog := opts.logger()
	skipped := make(map[string]bool)
	scnnr := bufio.NewScanner(r)
	scnnr.Buffer(make([]byte, 0, 4096), 1024*1024)
	for n := 1; scnnr.Scan(); n++ {
		line := scnnr.Text()
		err := e.ParseLine(line)
		if err == nil {
			continue
		}
		lerr := &LineError{N: n, Line: line, Err: err}
		name := record.Tag(line)
		if !tolerant || coordTags[name] {
			return lerr
		}
		if !skipped[name] {
			outlog.Printf("skipping bad %s records, first one: %v", name, lerr)
			skipped[name] = true
		}
	}
	return scnnr.Err()
}
