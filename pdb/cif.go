package pdb

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/andrew-torda/pdbcodec/pdb/cmmn"
	"github.com/andrew-torda/pdbcodec/pdb/mmcif"
	"github.com/andrew-torda/pdbcodec/pdb/record"
)

// CIFCategories are the mmCIF categories FromCIF looks at. Give them to
// mmcif.Reader.Keep so nothing else is stored.
var CIFCategories = []string{
	"entry", "struct", "struct_keywords", "pdbx_database_status", "exptl",
	"audit_author", "pdbx_audit_revision_history",
	"entity", "entity_name_com", "entity_poly",
	"struct_ref", "struct_ref_seq", "pdbx_poly_seq_scheme", "pdbx_struct_mod_residue",
	"pdbx_nonpoly_scheme", "pdbx_entity_nonpoly",
	"struct_conf", "struct_conn", "struct_site", "struct_site_gen",
	"cell", "symmetry", "database_PDB_matrix", "atom_sites", "struct_ncs_oper",
	"atom_site", "atom_site_anisotrop",
}

const water = "HOH"

// cifVals reads typed values from one category and remembers the
// first one that could not be converted, like cmmn.Cols does for
// columns. Attributes are tried in order and the first one which is
// not empty is used, so auth_ names can fall back to label_ names.
type cifVals struct {
	cat  *mmcif.Category
	name string
	err  error
}

func cifCat(c *mmcif.Container, name string) *cifVals {
	return &cifVals{cat: c.Category(name), name: name}
}

func (v *cifVals) Len() int             { return v.cat.Len() }
func (v *cifVals) Has(attr string) bool { return v.cat.Has(attr) }

func (v *cifVals) pick(row int, attrs []string) (attr, s string) {
	for _, a := range attrs {
		if s := v.cat.Value(row, a); s != "" {
			return a, s
		}
	}
	return "", ""
}

func (v *cifVals) fail(row int, attr, s string) {
	if v.err == nil {
		v.err = &CIFValueError{Category: v.name, Attr: attr, Row: row, Value: s}
	}
}

func (v *cifVals) str(row int, attrs ...string) string {
	_, s := v.pick(row, attrs)
	return s
}

func (v *cifVals) nullInt(row int, attrs ...string) cmmn.NullInt {
	a, s := v.pick(row, attrs)
	if s == "" {
		return cmmn.NullInt{}
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		v.fail(row, a, s)
		return cmmn.NullInt{}
	}
	return cmmn.Some(i)
}

func (v *cifVals) num(row int, attrs ...string) int { return v.nullInt(row, attrs...).Int }

func (v *cifVals) nullFloat(row int, attrs ...string) cmmn.NullFloat {
	a, s := v.pick(row, attrs)
	if s == "" {
		return cmmn.NullFloat{}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		v.fail(row, a, s)
		return cmmn.NullFloat{}
	}
	return cmmn.SomeFloat(f)
}

func (v *cifVals) float(row int, attrs ...string) float64 {
	return v.nullFloat(row, attrs...).Float
}

// date reads the YYYY-MM-DD dates of mmCIF.
func (v *cifVals) date(row int, attr string) time.Time {
	s := v.str(row, attr)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		v.fail(row, attr, s)
	}
	return t
}

// resID reads a residue from attributes named like beg_auth_comp_id and
// pdbx_beg_PDB_ins_code, falling back to the label_ names.
func (v *cifVals) resID(row int, p string) record.ResID {
	return record.ResID{
		ResName: v.str(row, p+"_auth_comp_id", p+"_label_comp_id"),
		ChainID: v.str(row, p+"_auth_asym_id", p+"_label_asym_id"),
		SeqNum:  v.num(row, p+"_auth_seq_id", p+"_label_seq_id"),
		ICode:   v.str(row, "pdbx_"+p+"_PDB_ins_code"),
	}
}

// FromCIF builds an entry from an mmCIF container. Missing categories
// leave their records out. Record types which have no counterpart in
// CIFCategories, such as SOURCE, JRNL, REMARK or SHEET, stay empty.
// A MASTER record which agrees with the result is added at the end.
// opts may be nil. If it is tolerant, extra non-crystallographic
// operators are dropped with a warning instead of being an error.
func FromCIF(c *mmcif.Container, opts *Options) (*Entry, error) {
	e := NewEntry()
	steps := []func(*mmcif.Container, *Options) error{
		e.cifTitle,
		e.cifPrimary,
		e.cifCoords, // before heterogens, which count atoms
		e.cifHeterogen,
		e.cifHelices,
		e.cifConnections,
		e.cifSites,
		e.cifCrystal,
	}
	for _, step := range steps {
		if err := step(c, opts); err != nil {
			return e, err
		}
	}
	e.Master = e.ComputeMaster()
	return e, nil
}

func entryID(c *mmcif.Container) string {
	return c.Category("entry").Value(0, "id")
}

// cifText makes a text record from values joined by sep, with white
// space squeezed to single blanks. No text gives nil.
func cifText(tag, sep string, vals ...string) *record.Text {
	var parts []string
	for _, s := range vals {
		if s = strings.Join(strings.Fields(s), " "); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	t := record.NewText(tag)
	t.SetText(strings.Join(parts, sep))
	return t
}

// pdbAuthor turns "Smith, J.A." into "J.A.SMITH".
func pdbAuthor(name string) string {
	last, first, ok := strings.Cut(name, ",")
	if !ok {
		return strings.ToUpper(strings.TrimSpace(name))
	}
	return strings.ToUpper(strings.TrimSpace(first) + strings.TrimSpace(last))
}

func (e *Entry) cifTitle(c *mmcif.Container, _ *Options) error {
	id := entryID(c)
	status := cifCat(c, "pdbx_database_status")
	kw := c.Category("struct_keywords")
	if id != "" || kw.Len() > 0 || status.Len() > 0 {
		e.Header = &record.Header{
			Classification: strings.Join(kw.Column("pdbx_keywords"), ", "),
			DepDate:        status.date(0, "recvd_initial_deposition_date"),
			IDCode:         id,
		}
	}
	st := c.Category("struct")
	e.Title = cifText("TITLE", " ", st.Value(0, "title"))
	e.Keywords = cifText("KEYWDS", ", ", kw.Column("text")...)
	e.ExpData = cifText("EXPDTA", "; ", c.Category("exptl").Column("method")...)
	e.ModelType = cifText("MDLTYP", " ", st.Value(0, "pdbx_model_type_details"))

	var authors []string
	for _, a := range c.Category("audit_author").Column("name") {
		authors = append(authors, pdbAuthor(a))
	}
	e.Author = cifText("AUTHOR", ", ", authors...)
	e.Compound = cifCompound(c)

	// PDB files list the latest revision first.
	revs := cifCat(c, "pdbx_audit_revision_history")
	for i := revs.Len() - 1; i >= 0; i-- {
		modType := cmmn.Some(1)
		if i == 0 {
			modType = cmmn.Some(0)
		}
		e.Revisions = append(e.Revisions, &record.RevData{
			ModNum:  revs.num(i, "ordinal"),
			Date:    revs.date(i, "revision_date"),
			ModID:   id,
			ModType: modType,
		})
	}
	return errors.Join(status.err, revs.err)
}

// cifCompound writes the polymer entities as COMPND tokens, one per
// line.
func cifCompound(c *mmcif.Container) *record.Text {
	synonyms := make(map[string]string)
	if nc := c.Category("entity_name_com"); nc != nil {
		for i := 0; i < nc.Len(); i++ {
			synonyms[nc.Value(i, "entity_id")] = nc.Value(i, "name")
		}
	}
	chains := make(map[string]string)
	if ep := c.Category("entity_poly"); ep != nil {
		for i := 0; i < ep.Len(); i++ {
			ids := strings.Split(ep.Value(i, "pdbx_strand_id"), ",")
			chains[ep.Value(i, "entity_id")] = strings.Join(ids, ", ")
		}
	}
	ent := c.Category("entity")
	var toks []string
	for i := 0; i < ent.Len(); i++ {
		if t := ent.Value(i, "type"); t != "" && t != "polymer" {
			continue
		}
		id := ent.Value(i, "id")
		toks = append(toks, "MOL_ID: "+id)
		for _, kv := range [...][2]string{
			{"MOLECULE", ent.Value(i, "pdbx_description")},
			{"CHAIN", chains[id]},
			{"FRAGMENT", ent.Value(i, "pdbx_fragment")},
			{"SYNONYM", synonyms[id]},
			{"EC", ent.Value(i, "pdbx_ec")},
			{"MUTATION", ent.Value(i, "pdbx_mutation")},
			{"OTHER_DETAILS", ent.Value(i, "details")},
		} {
			if kv[1] != "" {
				toks = append(toks, kv[0]+": "+strings.Join(strings.Fields(kv[1]), " "))
			}
		}
	}
	if len(toks) == 0 {
		return nil
	}
	t := record.NewText("COMPND")
	for i, tok := range toks {
		if i < len(toks)-1 {
			tok += ";"
		}
		for _, l := range cmmn.Wrap(tok, 69) {
			t.Add(l)
		}
	}
	return t
}

func (e *Entry) cifPrimary(c *mmcif.Container, _ *Options) error {
	id := entryID(c)
	ref := cifCat(c, "struct_ref")
	refRow := make(map[string]int)
	for i := 0; i < ref.Len(); i++ {
		refRow[ref.str(i, "id")] = i
	}
	seq := cifCat(c, "struct_ref_seq")
	for i := 0; i < seq.Len(); i++ {
		r, ok := refRow[seq.str(i, "ref_id")]
		if !ok {
			r = -1
		}
		idCode := seq.str(i, "pdbx_PDB_id_code")
		if idCode == "" {
			idCode = id
		}
		chain := seq.str(i, "pdbx_strand_id")
		beg := seq.num(i, "pdbx_auth_seq_align_beg", "seq_align_beg")
		end := seq.num(i, "pdbx_auth_seq_align_end", "seq_align_end")
		begIns := seq.str(i, "pdbx_seq_align_beg_ins_code")
		endIns := seq.str(i, "pdbx_seq_align_end_ins_code")
		db := ref.str(r, "db_name")
		code := ref.str(r, "db_code")
		acc := seq.str(i, "pdbx_db_accession")
		if acc == "" {
			acc = ref.str(r, "pdbx_db_accession")
		}
		dbBeg, dbEnd := seq.num(i, "db_align_beg"), seq.num(i, "db_align_end")

		// Long database codes do not fit in DBREF.
		if len(acc) > 8 || len(code) > 12 {
			e.DBRefs = append(e.DBRefs,
				&record.DBRef1{IDCode: idCode, ChainID: chain, SeqBegin: beg, InsertBegin: begIns,
					SeqEnd: end, InsertEnd: endIns, Database: db, DBIDCode: code},
				&record.DBRef2{IDCode: idCode, ChainID: chain, DBAccession: acc,
					SeqBegin: dbBeg, SeqEnd: dbEnd})
			continue
		}
		e.DBRefs = append(e.DBRefs, &record.DBRef{
			IDCode: idCode, ChainID: chain,
			SeqBegin: beg, InsertBegin: begIns, SeqEnd: end, InsertEnd: endIns,
			Database: db, DBAccession: acc, DBIDCode: code,
			DBSeqBegin: dbBeg, DBInsBegin: seq.str(i, "pdbx_db_align_beg_ins_code"),
			DBSeqEnd: dbEnd, DBInsEnd: seq.str(i, "pdbx_db_align_end_ins_code"),
		})
	}

	// Microheterogeneity gives two rows with one seq_id. Keep the first.
	ps := cifCat(c, "pdbx_poly_seq_scheme")
	lastSeq := make(map[string]string)
	for i := 0; i < ps.Len(); i++ {
		chain := ps.str(i, "pdb_strand_id")
		sid := ps.str(i, "seq_id")
		if prev, ok := lastSeq[chain]; ok && prev == sid {
			continue
		}
		lastSeq[chain] = sid
		s := e.SeqResFor(chain)
		if s == nil {
			s = &record.SeqRes{ChainID: chain}
			e.SeqRes = append(e.SeqRes, s)
		}
		s.Residues = append(s.Residues, ps.str(i, "mon_id"))
		s.NumRes = len(s.Residues)
	}

	mr := cifCat(c, "pdbx_struct_mod_residue")
	for i := 0; i < mr.Len(); i++ {
		e.ModRes = append(e.ModRes, &record.ModRes{
			IDCode:  id,
			ResName: mr.str(i, "auth_comp_id", "label_comp_id"),
			ChainID: mr.str(i, "auth_asym_id", "label_asym_id"),
			SeqNum:  mr.num(i, "auth_seq_id", "label_seq_id"),
			ICode:   mr.str(i, "PDB_ins_code"),
			StdRes:  mr.str(i, "parent_comp_id"),
			Comment: mr.str(i, "details"),
		})
	}
	return errors.Join(ref.err, seq.err, ps.err, mr.err)
}

// Water is left out of HET and HETNAM, as in PDB files.
func (e *Entry) cifHeterogen(c *mmcif.Container, _ *Options) error {
	ns := cifCat(c, "pdbx_nonpoly_scheme")
	for i := 0; i < ns.Len(); i++ {
		h := &record.Het{
			HetID:   ns.str(i, "pdb_mon_id", "mon_id"),
			ChainID: ns.str(i, "pdb_strand_id"),
			SeqNum:  ns.num(i, "pdb_seq_num", "auth_seq_num"),
			ICode:   ns.str(i, "pdb_ins_code"),
		}
		if h.HetID == water {
			continue
		}
		h.NumHetAtoms = len(e.FindResidue(h.ChainID, h.SeqNum, h.ICode))
		e.Hets = append(e.Hets, h)
	}
	en := cifCat(c, "pdbx_entity_nonpoly")
	for i := 0; i < en.Len(); i++ {
		id := en.str(i, "comp_id")
		if id == "" || id == water {
			continue
		}
		hn := record.NewHetName()
		hn.HetID = id
		hn.Fragments = cmmn.Wrap(strings.ToUpper(en.str(i, "name")), 54)
		e.HetNames = append(e.HetNames, hn)
	}
	return errors.Join(ns.err, en.err)
}

func (e *Entry) cifHelices(c *mmcif.Container, _ *Options) error {
	sc := cifCat(c, "struct_conf")
	for i := 0; i < sc.Len(); i++ {
		if !strings.HasPrefix(sc.str(i, "conf_type_id"), "HELX") {
			continue
		}
		e.Helices = append(e.Helices, &record.Helix{
			SerNum:     len(e.Helices) + 1,
			HelixID:    sc.str(i, "pdbx_PDB_helix_id", "id"),
			Init:       sc.resID(i, "beg"),
			End:        sc.resID(i, "end"),
			HelixClass: sc.nullInt(i, "pdbx_PDB_helix_class"),
			Comment:    sc.str(i, "details"),
			Length:     sc.nullInt(i, "pdbx_PDB_helix_length"),
		})
	}
	return sc.err
}

// symop turns 1_555 into the 1555 of a PDB file.
func symop(s string) string { return strings.ReplaceAll(s, "_", "") }

// cifConnections makes SSBOND from disulfides and LINK from the other
// connections. Hydrogen bonds are not written in PDB files.
func (e *Entry) cifConnections(c *mmcif.Container, _ *Options) error {
	sc := cifCat(c, "struct_conn")
	for i := 0; i < sc.Len(); i++ {
		switch sc.str(i, "conn_type_id") {
		case "disulf":
			e.SSBonds = append(e.SSBonds, &record.SSBond{
				SerNum: len(e.SSBonds) + 1,
				Res1:   sc.resID(i, "ptnr1"),
				Res2:   sc.resID(i, "ptnr2"),
				Sym1:   symop(sc.str(i, "ptnr1_symmetry")),
				Sym2:   symop(sc.str(i, "ptnr2_symmetry")),
				Length: sc.nullFloat(i, "pdbx_dist_value"),
			})
		case "hydrog", "":
		default:
			e.Links = append(e.Links, &record.Link{
				Atom1: record.LinkAtom{
					Name:   sc.str(i, "ptnr1_auth_atom_id", "ptnr1_label_atom_id"),
					AltLoc: sc.str(i, "pdbx_ptnr1_label_alt_id"),
					ResID:  sc.resID(i, "ptnr1"),
				},
				Atom2: record.LinkAtom{
					Name:   sc.str(i, "ptnr2_auth_atom_id", "ptnr2_label_atom_id"),
					AltLoc: sc.str(i, "pdbx_ptnr2_label_alt_id"),
					ResID:  sc.resID(i, "ptnr2"),
				},
				Sym1:   symop(sc.str(i, "ptnr1_symmetry")),
				Sym2:   symop(sc.str(i, "ptnr2_symmetry")),
				Length: sc.nullFloat(i, "pdbx_dist_value"),
			})
		}
	}
	return sc.err
}

func (e *Entry) cifSites(c *mmcif.Container, _ *Options) error {
	declared := make(map[string]int)
	ss := cifCat(c, "struct_site")
	for i := 0; i < ss.Len(); i++ {
		if n := ss.nullInt(i, "pdbx_num_residues"); n.Valid {
			declared[ss.str(i, "id")] = n.Int
		}
	}
	sg := cifCat(c, "struct_site_gen")
	byID := make(map[string]*record.Site)
	for i := 0; i < sg.Len(); i++ {
		id := sg.str(i, "site_id")
		s, ok := byID[id]
		if !ok {
			s = &record.Site{SiteID: id}
			byID[id] = s
			e.Sites = append(e.Sites, s)
		}
		s.Residues = append(s.Residues, record.ResID{
			ResName: sg.str(i, "auth_comp_id", "label_comp_id"),
			ChainID: sg.str(i, "auth_asym_id", "label_asym_id"),
			SeqNum:  sg.num(i, "auth_seq_id", "label_seq_id"),
			ICode:   sg.str(i, "pdbx_auth_ins_code"),
		})
	}
	for _, s := range e.Sites {
		s.NumRes = len(s.Residues)
		if n, ok := declared[s.SiteID]; ok {
			s.NumRes = n
		}
	}
	return errors.Join(ss.err, sg.err)
}

// cifTransforms reads the three rows of one operator. mFmt and tFmt
// name the matrix and vector attributes with %d for the indices.
func cifTransforms(kind string, v *cifVals, row int, mFmt, tFmt string) []*record.Transform {
	var out []*record.Transform
	for n := 1; n <= 3; n++ {
		t := &record.Transform{Kind: kind, N: n}
		for j := 0; j < 3; j++ {
			t.M[j] = v.float(row, fmt.Sprintf(mFmt, n, j+1))
		}
		t.T = v.float(row, fmt.Sprintf(tFmt, n))
		out = append(out, t)
	}
	return out
}

func (e *Entry) cifCrystal(c *mmcif.Container, opts *Options) error {
	cell := cifCat(c, "cell")
	if cell.Len() > 0 {
		e.UnitCell = &record.UnitCell{
			A:      cell.float(0, "length_a"),
			B:      cell.float(0, "length_b"),
			C:      cell.float(0, "length_c"),
			Alpha:  cell.float(0, "angle_alpha"),
			Beta:   cell.float(0, "angle_beta"),
			Gamma:  cell.float(0, "angle_gamma"),
			SGroup: c.Category("symmetry").Value(0, "space_group_name_H-M"),
			Z:      cell.nullInt(0, "Z_PDB"),
		}
	}
	om := cifCat(c, "database_PDB_matrix")
	if om.Has("origx[1][1]") {
		e.OrigX = cifTransforms(record.OrigX, om, 0, "origx[%d][%d]", "origx_vector[%d]")
	}
	as := cifCat(c, "atom_sites")
	if as.Has("fract_transf_matrix[1][1]") {
		e.Scale = cifTransforms(record.Scale, as, 0, "fract_transf_matrix[%d][%d]", "fract_transf_vector[%d]")
	}
	ncs := cifCat(c, "struct_ncs_oper")
	if ncs.Len() > 1 {
		if !opts.tolerant() {
			return &TooManyTransformsError{Kind: record.MTrix}
		}
		opts.logger().Printf("only the first of %d struct_ncs_oper operators is kept", ncs.Len())
	}
	if ncs.Len() > 0 {
		e.MTrix = cifTransforms(record.MTrix, ncs, 0, "matrix[%d][%d]", "vector[%d]")
		for _, t := range e.MTrix {
			t.Serial = ncs.num(0, "id")
			if ncs.str(0, "code") == "given" {
				t.IGiven = "1"
			}
		}
	}
	return errors.Join(cell.err, om.err, as.err, ncs.err)
}

// pdbCharge writes a formal charge the PDB way, 2+ or 1-.
func pdbCharge(n cmmn.NullInt) string {
	switch {
	case !n.Valid || n.Int == 0:
		return ""
	case n.Int > 0:
		return strconv.Itoa(n.Int) + "+"
	default:
		return strconv.Itoa(-n.Int) + "-"
	}
}

// cifAniso gives the anisotropic factors, scaled by 10**4, by atom
// serial number.
func cifAniso(c *mmcif.Container) (map[int][6]int, error) {
	v := cifCat(c, "atom_site_anisotrop")
	attrs := [6]string{"U[1][1]", "U[2][2]", "U[3][3]", "U[1][2]", "U[1][3]", "U[2][3]"}
	u := make(map[int][6]int, v.Len())
	for i := 0; i < v.Len(); i++ {
		var x [6]int
		for k, a := range attrs {
			x[k] = int(math.Round(v.float(i, a) * 1e4))
		}
		u[v.num(i, "id")] = x
	}
	return u, v.err
}

type modelChain struct {
	model int
	chain string
}

// cifCoords makes a model for each pdbx_PDB_model_num. mmCIF has no TER,
// so one is put after the last ATOM of each chain. It has no serial
// number, since the next atom already has the one it would take.
func (e *Entry) cifCoords(c *mmcif.Container, _ *Options) error {
	aniso, err := cifAniso(c)
	if err != nil {
		return err
	}
	as := cifCat(c, "atom_site")
	modelNum := func(i int) int {
		if n := as.nullInt(i, "pdbx_PDB_model_num"); n.Valid {
			return n.Int
		}
		return 1
	}
	chainOf := func(i int) string { return as.str(i, "auth_asym_id", "label_asym_id") }
	lastAtom := make(map[modelChain]int)
	for i := 0; i < as.Len(); i++ {
		if as.str(i, "group_PDB") != "HETATM" {
			lastAtom[modelChain{modelNum(i), chainOf(i)}] = i
		}
	}

	models := make(map[int]*record.Model)
	for i := 0; i < as.Len(); i++ {
		a := record.NewAtom(as.str(i, "group_PDB") == "HETATM")
		a.Serial = as.num(i, "id")
		a.Name = as.str(i, "auth_atom_id", "label_atom_id")
		a.AltLoc = as.str(i, "label_alt_id")
		a.ResName = as.str(i, "auth_comp_id", "label_comp_id")
		a.ChainID = chainOf(i)
		a.ResSeq = as.num(i, "auth_seq_id", "label_seq_id")
		a.ICode = as.str(i, "pdbx_PDB_ins_code")
		a.X = as.float(i, "Cartn_x")
		a.Y = as.float(i, "Cartn_y")
		a.Z = as.float(i, "Cartn_z")
		a.Occupancy = as.float(i, "occupancy")
		a.TempFactor = as.float(i, "B_iso_or_equiv")
		a.Element = as.str(i, "type_symbol")
		a.Charge = pdbCharge(as.nullInt(i, "pdbx_formal_charge"))

		n := modelNum(i)
		m, ok := models[n]
		if !ok {
			m = &record.Model{Serial: n}
			models[n] = m
			e.Models = append(e.Models, m)
		}
		m.Add(a)
		if u, ok := aniso[a.Serial]; ok {
			m.Add(&record.AnisoU{
				Serial: a.Serial, Name: a.Name, AltLoc: a.AltLoc, ResName: a.ResName,
				ChainID: a.ChainID, ResSeq: a.ResSeq, ICode: a.ICode, U: u,
				SegID: a.SegID, Element: a.Element, Charge: a.Charge,
			})
		}
		if last, ok := lastAtom[modelChain{n, a.ChainID}]; ok && last == i {
			m.Add(&record.Ter{
				ResName: a.ResName,
				ChainID: a.ChainID,
				ResSeq:  cmmn.Some(a.ResSeq),
				ICode:   a.ICode,
			})
		}
	}
	if len(e.Models) > 1 {
		for _, m := range e.Models {
			m.Explicit = true
		}
		e.NumModels = &record.NumModels{N: len(e.Models)}
	}
	return as.err
}
