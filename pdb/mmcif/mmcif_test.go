package mmcif_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andrew-torda/pdbcodec/pdb/brokenio"
	. "github.com/andrew-torda/pdbcodec/pdb/mmcif"
	"github.com/andrew-torda/pdbcodec/pdb/zwrap"
)

type twostring struct {
	in  string
	out string
}

func TestMessyLine(t *testing.T) {
	// This is from 2a9w.cif. I think there should be seven pieces
	ss :=
		`GA9 non-polymer         . '3,3-BIS(3-BR-4-HYD)-7-CH-1H,3H-BEO[DE]ISO-1-ONE'
'4-CHL-3',3"-DIB-1,8-NAPHTH' 'C24 H13 Br2 Cl O4' 560.619
GLN 'L-peptide linking' y GLUTAMINE                                                                   ? 'C5 H10 N2 O3'
146.144
`
	answers := []int{4, 3, 6, 1}
	scnr := NewCmmtScanner(bytes.NewReader([]byte(ss)), '#')
	retIn := make([]BSlice, 0, 40)
	ndx := 0
	for scnr.Cscan() && scnr.Cbytes() != nil {
		tt, err := SplitCifLine(scnr.Cbytes(), retIn)
		if err != nil {
			t.Error("Splitting messy string", err)
		}
		if len(tt) != answers[ndx] {
			t.Error("wrong number of entries, got", len(tt))
		}
		ndx++
	}
}

// getFp joins the directory to the file, tries to open it, then calls
// zwrap which checks if it is compressed and returns an appropriate
// ReadCloser.
func getFp(dir string, fname string, t *testing.T) (io.ReadCloser, error) {
	if dir != "" {
		fname = filepath.Join(dir, fname)
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, errors.New("opening file error")
	}
	rdr, e2 := zwrap.WrapMaybe(fp)
	if e2 != nil {
		t.Error("broke in zwrap on file ", fname, e2.Error())
		return nil, e2
	}
	return rdr, nil
}

const testdata string = "testdata"

func readString(t *testing.T, s string, keep ...string) (*Container, error) {
	t.Helper()
	mr := NewReader(strings.NewReader(s))
	mr.Keep(keep...)
	return mr.Read()
}

func TestFile(t *testing.T) {
	for _, f := range []string{"1abc.cif", "1abc.cif.gz"} {
		fp, err := getFp(testdata, f, t)
		if err != nil {
			t.Fatal(err, f)
		}
		mr := NewReader(fp)
		mr.Keep("cell", "_atom_site.", "audit_author", "struct")
		c, err := mr.Read()
		fp.Close()
		if err != nil {
			t.Fatal(err, f)
		}
		if c.Name != "1ABC" {
			t.Errorf("%s: block name %q", f, c.Name)
		}
		if got := c.Category("cell").Value(0, "length_a"); got != "52.000" {
			t.Errorf("%s: length_a got %q", f, got)
		}
		if c.Category("entry") != nil {
			t.Errorf("%s: entry should not have been kept", f)
		}
		atoms := c.Category("atom_site")
		if atoms.Len() != 7 || len(atoms.Attrs) != 21 {
			t.Errorf("%s: atom_site has %d rows and %d columns", f, atoms.Len(), len(atoms.Attrs))
		}
		if got := atoms.Value(5, "auth_atom_id"); got != "ZN" {
			t.Errorf("%s: atom 6 name %q", f, got)
		}
		wantNames := []string{"Smith, J.", "Doe, A.B."}
		if diff := cmp.Diff(wantNames, c.Category("audit_author").Column("name")); diff != "" {
			t.Errorf("%s: authors (-want +got)\n%s", f, diff)
		}
		wantTitle := "STRUCTURE OF A SMALL\n TEST PROTEIN"
		if got := c.Category("struct").Value(0, "title"); got != wantTitle {
			t.Errorf("%s: title got %q", f, got)
		}
		if diff := cmp.Diff([]string{"struct", "audit_author", "cell", "atom_site"}, c.Names()); diff != "" {
			t.Errorf("%s: categories (-want +got)\n%s", f, diff)
		}
	}
}

func TestItems(t *testing.T) {
	s := `data_TEST
_a.one    1
_a.two    'with space'
_a.three
"on the next line"
_a.four   ?
_a.five   .
_a.six
;text field
over lines
;
_b.x  "it's"
`
	c, err := readString(t, s)
	if err != nil {
		t.Fatal(err)
	}
	a := c.Category("a")
	want := map[string]string{
		"one":   "1",
		"two":   "with space",
		"three": "on the next line",
		"four":  "",
		"five":  "",
		"six":   "text field\nover lines",
	}
	for attr, v := range want {
		if got := a.Value(0, attr); got != v {
			t.Errorf("_a.%s want %q got %q", attr, v, got)
		}
	}
	if !a.Has("four") || a.Has("seven") {
		t.Error("Has is wrong")
	}
	if a.Len() != 1 {
		t.Error("items should make one row, got", a.Len())
	}
	if got := c.Category("b").Value(0, "x"); got != "it's" {
		t.Errorf("quote inside a word, got %q", got)
	}
}

func TestLoop(t *testing.T) {
	s := `data_L
loop_
_t.a
_t.b
_t.c
1 2 3 4 5 6
7 'eight is long' 9
10
11
;
a text value
;
loop_
_u.z
'only one'
`
	c, err := readString(t, s)
	if err != nil {
		t.Fatal(err)
	}
	tab := c.Category("t")
	if tab.Len() != 4 {
		t.Fatal("want 4 rows, got", tab.Len())
	}
	want := []string{"3", "6", "9", "a text value"}
	if diff := cmp.Diff(want, tab.Column("c")); diff != "" {
		t.Errorf("column c (-want +got)\n%s", diff)
	}
	if got := c.Category("u").Value(0, "z"); got != "only one" {
		t.Errorf("got %q", got)
	}
	if tab.Column("nonsense") != nil {
		t.Error("missing column should be nil")
	}
	if tab.Value(99, "a") != "" || tab.Value(-1, "a") != "" {
		t.Error("out of range rows should be empty")
	}
}

func TestSecondBlock(t *testing.T) {
	s := `data_FIRST
_a.one 1
loop_
_t.a
x
data_SECOND
_a.one 2
loop_
_t.a
y
`
	c, err := readString(t, s)
	if err != nil {
		t.Fatal("second data block should be ignored, got", err)
	}
	if c.Name != "FIRST" {
		t.Error("block name, got", c.Name)
	}
	if got := c.Category("a").Value(0, "one"); got != "1" {
		t.Errorf("_a.one from the second block: %q", got)
	}
	if diff := cmp.Diff([]string{"x"}, c.Category("t").Column("a")); diff != "" {
		t.Errorf("loop t (-want +got)\n%s", diff)
	}
}

// A quote is only closed by a quote followed by white space, so
// 'eight ends up unterminated at the end of the line.
func TestLoopQuoteAcrossLines(t *testing.T) {
	s := "loop_\n_t.a\n_t.b\n7 'eight\n"
	_, err := readString(t, s)
	if err == nil || !strings.Contains(err.Error(), "unterminated quote") {
		t.Error("expected unterminated quote, got", err)
	}
}

func TestKeep(t *testing.T) {
	s := `data_K
_skip.me  1
loop_
_skipped.a
_skipped.b
;
_looks.like an item
;
x
_kept.v  yes
`
	c, err := readString(t, s, "kept")
	if err != nil {
		t.Fatal(err)
	}
	if c.Category("skip") != nil || c.Category("skipped") != nil || c.Category("looks") != nil {
		t.Error("kept something we did not ask for", c.Names())
	}
	if got := c.Category("kept").Value(0, "v"); got != "yes" {
		t.Errorf("got %q", got)
	}
}

func TestReadErrors(t *testing.T) {
	var tests = []struct {
		name string
		in   string
		emsg string
	}{
		{"empty", "", "zero length"},
		{"rubbish", "data_X\nrubbish here\n", "Unknown"},
		{"no dot", "data_X\n_nodot 1\n", "split string at dot"},
		{"too many values", "data_X\n_a.b 1 2\n", "2 values"},
		{"ragged loop", "data_X\nloop_\n_t.a\n_t.b\n1 2 3\n", "not a multiple"},
		{"empty loop", "data_X\nloop_\n_t.a\n_t.b\n", "empty table"},
		{"mixed loop", "data_X\nloop_\n_t.a\n_u.b\n1 2\n", "mixes"},
		{"twice", "data_X\nloop_\n_t.a\n1\nloop_\n_t.a\n2\n", "appears twice"},
		{"text field", "data_X\n_a.b\n;never\nends\n", "unterminated text field"},
	}
	for _, tt := range tests {
		_, err := readString(t, tt.in)
		if err == nil {
			t.Errorf("%s: expected an error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.emsg) {
			t.Errorf("%s: want %q in %q", tt.name, tt.emsg, err)
		}
	}
}

func TestErrorLine(t *testing.T) {
	_, err := readString(t, "data_X\n_a.b 1\n# comment\nrubbish\n")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), "Line: 4 ") {
		t.Error("wrong line number in", err)
	}
	if !strings.Contains(err.Error(), "Line starting with\nrubbish") {
		t.Error("line missing from", err)
	}
}

// A read which fails part way through, and a file which is empty.
func TestBrokenRead(t *testing.T) {
	const head = "data_1ABC\n#\n_entry.id   1ABC\n"
	b, err := os.ReadFile(filepath.Join("testdata", "1abc.cif"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte(head)) {
		t.Fatal("test file does not start as expected")
	}
	r := brokenio.NewReader(io.NopCloser(bytes.NewReader(b)), brokenio.FailAfter(int64(len(head))))
	if _, err := NewReader(r).Read(); err == nil {
		t.Error("expected an error from the broken read")
	} else if !strings.Contains(err.Error(), brokenio.ErrBroken.Error()) {
		t.Error("wrong error from broken read:", err)
	}

	r = brokenio.NewReader(io.NopCloser(bytes.NewReader(b)), brokenio.ZeroFile())
	if _, err := NewReader(r).Read(); err == nil || !strings.Contains(err.Error(), "zero length") {
		t.Error("empty file should give zero length error, got", err)
	}
}

func TestNilReader(t *testing.T) {
	mr := NewReader(nil)
	if _, err := mr.Read(); err == nil {
		t.Error("nil reader should give an error")
	}
	var c *Container
	if c.Category("x").Len() != 0 {
		t.Error("nil container should give empty categories")
	}
}

func TestCmmtscanner(t *testing.T) {
	var ss = []twostring{
		{"some words", "some words"},
		{"#beforecomment#after", ""},
		{"with'quote", "with'quote"},
		{"#hash'#inquote", ""},
		{"hash'#inquote'before#after", "hash'#inquote'before#after"},
		{"ab\"#keep", "ab\"#keep"},
		{"ab\"#keep\"c#", "ab\"#keep\"c#"},
		{"trailing   ", "trailing"},
		{"", ""},
	}
	for _, x := range ss {
		scnr := NewCmmtScanner(bytes.NewReader([]byte(x.in)), '#')
		scnr.Cscan()
		b := scnr.Cbytes()
		if string(b) != x.out {
			t.Errorf("Expected\"%s\" got \"%s\"\n", x.out, string(b))
		}
	}
}

type sb []string
type strSlice struct {
	in  string
	out sb
}

func TestSplitCifLine(t *testing.T) {
	var ss = []strSlice{
		{"", sb{}},
		{"a\"b\"", sb{"a\"b\""}},
		{`b"b"b"b`, sb{"b\"b\"b\"b"}},
		{`b"b"b"b"`, sb{"b\"b\"b\"b\""}},
		{"a b c ", sb{"a", "b", "c"}},
		{"c", sb{"c"}},
		{`aa'aa`, sb{"aa'aa"}},
		{`'a'b' c`, sb{"a'b", "c"}},
		{`"O5'" x`, sb{"O5'", "x"}},
	}
	scratch := make([]BSlice, 3)

	for _, x := range ss {
		tt, err := SplitCifLine([]byte(x.in), scratch)
		if err != nil {
			t.Errorf("Splitting x.in gave error %s\n", err)
		}
		if len(tt) != len(x.out) {
			t.Errorf("Splitting <%s> want %d pieces, got %d", x.in, len(x.out), len(tt))
			continue
		}
		for i, tOut := range tt {
			if string(tOut) != x.out[i] {
				t.Errorf("Splitting <%s> broken, got <%s>", x.in, string(tOut))
			}
		}
	}
}

func TestSplitCifLine2(t *testing.T) {
	ss := `#This is my test string.
word1 word2
"word1"  	word2
"word1"word2
word1 "word2"
# and a comment in the middle of the file
# and the next should give us errors
   word1 word2

`
	scnr := NewCmmtScanner(bytes.NewReader([]byte(ss)), '#')
	var nOk, nBroken int
	scratch := make([]BSlice, 0)
	for scnr.Cscan() && scnr.Cbytes() != nil {
		tt, err := SplitCifLine(scnr.Cbytes(), scratch)
		if err != nil {
			nBroken++
		} else {
			nOk++
			if len(tt) != 2 {
				t.Errorf("\"%s\" want %d items, got %d", string(scnr.Bytes()), 2, len(tt))
			}
			if string(tt[0]) != "word1" || string(tt[1]) != "word2" {
				t.Errorf("string \"%s\" not broken down correctly", string(scnr.Bytes()))
			}
		}
	}
	if nBroken != 1 {
		t.Errorf("Expected one error, got %d\n", nBroken)
	}
	if nOk != 4 {
		t.Errorf("Expected four good lines, got %d\n", nOk)
	}
}

// TestBroken checks that we do get an error on silly strings.
func TestBroken(t *testing.T) {
	ss := []string{
		`'word1'"word2"`,
		`word1 "word2`,
	}
	scratch := make([]BSlice, 0)
	for _, s := range ss {
		_, err := SplitCifLine([]byte(s), scratch)
		if err == nil {
			t.Error("Expected an error on string", s)
		}
	}
}

func TestFields(t *testing.T) {
	type ftest struct {
		s string
		a []string
	}
	var tests = []ftest{
		{" 1", []string{"1"}},
		{"", []string{}},
		{" ", []string{}},
		{"1", []string{"1"}},
		{" 1 ", []string{"1"}},
		{"1 2", []string{"1", "2"}},
		{" 1 2", []string{"1", "2"}},
		{"1   2", []string{"1", "2"}},
		{"1   2    ", []string{"1", "2"}},
		{"12 34 ", []string{"12", "34"}},
		{"1\t2 3 4 ", []string{"1", "2", "3", "4"}},
		{"ATOM 1805  O O    . GLY A 1 10 ? -16.616 0.276   -4.686  1.00 0.00 ?  299 GLY A O    2",
			[]string{"ATOM", "1805", "O", "O", ".", "GLY", "A", "1", "10", "?", "-16.616", "0.276", "-4.686", "1.00", "0.00", "?", "299", "GLY", "A", "O", "2"}},
	}

	for _, tt := range tests {
		var scrtch [40]BSlice
		ret := Fields([]byte(tt.s), scrtch[:0])
		if len(ret) != len(tt.a) {
			t.Errorf("Wanted %d fields, got %d, string '%s'", len(tt.a), len(ret), tt.s)
			continue
		}
		for i, a := range tt.a {
			if string(ret[i]) != a {
				t.Errorf("fields mismatch want '%s' got '%s'", tt.a[i], ret[i])
			}
		}
	}
}

// TestFieldsLong checks nothing is lost when the scratch space is
// too small.
func TestFieldsLong(t *testing.T) {
	const small = 5
	var scrtch [small]BSlice
	in := BSlice(" 1 2 3 4 5 6 7 8 9 0 ")
	out := Fields(in, scrtch[:0])
	if len(out) != 10 {
		t.Error("Problem when scratch array is too small, got", len(out))
	}
	if string(out[9]) != "0" {
		t.Error("last field wrong", string(out[9]))
	}
}
