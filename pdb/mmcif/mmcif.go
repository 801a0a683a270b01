package mmcif

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	squote byte = '\''
	dquote byte = '"'
)

type bSlice []byte // byte slice

// Category is one table from the file, such as atom_site or cell.
// Single data items of a category are kept as a table with one row.
type Category struct {
	Name  string
	Attrs []string   // column names without the category prefix
	Rows  [][]string // values, in the order of Attrs
	index map[string]int
}

func newCategory(name string) *Category {
	return &Category{Name: name, index: make(map[string]int)}
}

func (c *Category) addAttr(attr string) int {
	if i, ok := c.index[attr]; ok {
		return i
	}
	c.index[attr] = len(c.Attrs)
	c.Attrs = append(c.Attrs, attr)
	return len(c.Attrs) - 1
}

// Len is the number of rows. A nil category has none.
func (c *Category) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Rows)
}

// Has says if there is a column called attr.
func (c *Category) Has(attr string) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[attr]
	return ok
}

// Value returns one value, or "" if the row or attribute is not there.
// Values written as ? or . in the file are also "".
func (c *Category) Value(row int, attr string) string {
	if c == nil || row < 0 || row >= len(c.Rows) {
		return ""
	}
	i, ok := c.index[attr]
	if !ok || i >= len(c.Rows[row]) {
		return ""
	}
	return c.Rows[row][i]
}

// Column returns the values of one attribute from every row.
func (c *Category) Column(attr string) []string {
	if !c.Has(attr) {
		return nil
	}
	ret := make([]string, len(c.Rows))
	for i := range c.Rows {
		ret[i] = c.Value(i, attr)
	}
	return ret
}

// Container is one data block.
type Container struct {
	Name  string // from the data_ line
	named bool
	cats  map[string]*Category
	order []string
}

func newContainer() *Container {
	return &Container{cats: make(map[string]*Category)}
}

// Category returns the named category (no leading underscore), or nil.
// The methods of Category are happy with nil.
func (c *Container) Category(name string) *Category {
	if c == nil {
		return nil
	}
	return c.cats[name]
}

// Names lists the categories in the order they came.
func (c *Container) Names() []string { return c.order }

func (c *Container) category(name string) *Category {
	if cat, ok := c.cats[name]; ok {
		return cat
	}
	cat := newCategory(name)
	c.cats[name] = cat
	c.order = append(c.order, name)
	return cat
}

// item stores a single data item in the first row of its category.
func (c *Container) item(name, attr, value string) {
	cat := c.category(name)
	if len(cat.Rows) == 0 {
		cat.Rows = append(cat.Rows, nil)
	}
	i := cat.addAttr(attr)
	row := cat.Rows[0]
	for len(row) <= i {
		row = append(row, "")
	}
	row[i] = value
	cat.Rows[0] = row
}

// Dump is for debugging.
func (c *Container) Dump(w io.Writer) {
	for _, name := range c.order {
		cat := c.cats[name]
		fmt.Fprintln(w, name, cat.Attrs)
		for _, r := range cat.Rows {
			fmt.Fprintln(w, "   ", r)
		}
	}
}

// Reader holds the instructions for reading. Most of a file is of no
// interest, so we only keep the categories we are told about.
type Reader struct {
	cmmtScanner
	keep    map[string]bool
	headers []string
	scrtch  []bSlice
}

// NewReader returns an object to read mmcif files. It is given a
// reader, so the caller decides if it is a file, compressed file or
// something else.
func NewReader(r io.Reader) *Reader {
	if r == nil {
		return nil
	}
	return &Reader{
		cmmtScanner: newCmmtScanner(r, '#'),
		keep:        make(map[string]bool),
		scrtch:      make([]bSlice, 0, 25),
	}
}

// Keep adds categories to be read, like "atom_site" or "cell". If
// Keep is never called, everything is kept.
func (mr *Reader) Keep(names ...string) {
	for _, n := range names {
		n = strings.TrimSuffix(strings.TrimPrefix(n, "_"), ".")
		mr.keep[n] = true
	}
}

func (mr *Reader) wanted(cat string) bool {
	return len(mr.keep) == 0 || mr.keep[cat]
}

// cmmtScanner is a wrapper around bufio.Scanner that jumps over blank
// lines and lines starting with the comment character. It counts lines
// in n, so we can print the line number in error messages.
type cmmtScanner struct {
	*bufio.Scanner           // standard library scanner
	lErr           readError // filled out as soon as an error happens
	ctoken         []byte    // what cbytes() returns
	n              int       // line number in the mmcif file
	cmmt           byte      // comment character
	Ok             bool      // false after an error
}

// newCmmtScanner sets up the scanner with room for long lines.
func newCmmtScanner(r io.Reader, cmmt byte) cmmtScanner {
	s := cmmtScanner{
		Scanner: bufio.NewScanner(r),
		cmmt:    cmmt,
		Ok:      true,
	}
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return s
}

// cscan is a wrapper around the library Scan(). It adds a line counter
// for error messages and jumps over blank lines and comments. Comment
// characters only count in the first column, since they are legitimate
// elsewhere. At the end of the file, ctoken is nil but cscan is still
// true. It is only false after an error.
func (s *cmmtScanner) cscan() (ok bool) {
	var b []byte
	if !s.Ok { // We have already had an error, but nobody has noticed.
		s.ctoken = nil
		s.fill("pre-existing error missed. Small bug ?", false)
		return false
	}
	for len(b) == 0 {
		if !s.Scan() {
			s.ctoken = nil
			if s.Err() != nil {
				s.fill(s.Err().Error(), true)
				return false
			}
			return true // No error, just EOF
		}
		s.n++
		b = bytes.TrimRight(s.Bytes(), " \t\r")
		if len(b) > 0 && b[0] == s.cmmt {
			b = nil
		}
	}
	s.ctoken = b
	return true
}

// cbytes is like Bytes from the library, but the line has been through
// cscan().
func (s *cmmtScanner) cbytes() []byte {
	return s.ctoken
}

// stateFn is the type of state function. It returns the next
// state function that should act on its input.
type stateFn func(*Reader, *Container) stateFn

// stateTop looks at the current line and decides where to go next.
func stateTop(mr *Reader, _ *Container) stateFn {
	b := mr.cbytes() // Does not advance scanner
	if !mr.Ok {
		return nil
	}
	switch {
	case b == nil:
		return nil
	case bytes.HasPrefix(b, []byte("loop_")):
		return stateLoop
	case bytes.HasPrefix(b, []byte("data")):
		return stateData
	case bytes.HasPrefix(b, []byte("_")):
		return stateDItem
	default:
		return stateUnknown
	}
}

// stateData reads the data_ line which names the block. A second
// data_ line ends the first block and the rest of the file is not read.
func stateData(mr *Reader, c *Container) stateFn {
	if c.named {
		return nil
	}
	c.Name = strings.TrimPrefix(string(mr.cbytes()), "data_")
	c.named = true
	if !mr.cscan() {
		return nil
	}
	return stateTop
}

// stateUnknown is where we land if we are confused. It is an error.
func stateUnknown(mr *Reader, _ *Container) stateFn {
	mr.fill("In Unknown state", true)
	return nil
}

// stateLoop jumps over the loop_ line.
func stateLoop(mr *Reader, _ *Container) stateFn {
	if !mr.cscan() {
		return nil
	}
	return stateLoopHdr
}

// splitName turns _atom_site.Cartn_x into atom_site and Cartn_x.
func splitName(b []byte) (cat, attr string, ok bool) {
	c, a, found := bytes.Cut(bytes.TrimPrefix(b, []byte{'_'}), []byte{'.'})
	if !found {
		return "", "", false
	}
	return string(c), string(a), true
}

const notSplit = "Could not split string at dot: "

// stateLoopHdr gets the headers of a loop and decides whether the table
// is kept or skipped.
func stateLoopHdr(mr *Reader, _ *Container) stateFn {
	mr.headers = mr.headers[:0]
	for ok := true; ok && len(mr.cbytes()) > 0 && mr.cbytes()[0] == '_'; ok = mr.cscan() {
		mr.headers = append(mr.headers, string(bytes.TrimSpace(mr.cbytes())))
	}
	if !mr.Ok {
		return nil
	}
	if len(mr.headers) < 1 {
		mr.fill("no contents found while reading loop headers", true)
		return nil
	}
	cat, _, ok := splitName([]byte(mr.headers[0]))
	if !ok {
		mr.fill(notSplit+mr.headers[0], true)
		return nil
	}
	if mr.wanted(cat) {
		return stateLoopTable
	}
	return stateSkipLoopTable
}

// isSpecial returns true if the input is not more of a table. Usually
// this means there is a new directive coming. End of file is also
// special.
// A bare "data" can be a value in a table, but data_ starts a block.
func isSpecial(inline []byte) bool {
	switch {
	case inline == nil:
		return true
	case bytes.HasPrefix(inline, []byte("_")):
		return true
	case bytes.HasPrefix(inline, []byte("loop_")):
		return true
	case bytes.HasPrefix(inline, []byte("data_")):
		return true
	default:
		return false
	}
}

// stateLoopTable reads the rows of a table we want. A row may be spread
// over lines and a line may hold more than one row, so values are
// collected first and then cut up.
func stateLoopTable(mr *Reader, c *Container) stateFn {
	var cat *Category
	for i, h := range mr.headers {
		name, attr, ok := splitName([]byte(h))
		if !ok {
			mr.fill(notSplit+h, true)
			return nil
		}
		if i == 0 {
			if c.Category(name) != nil {
				mr.fill("category "+name+" appears twice", true)
				return nil
			}
			cat = c.category(name)
		} else if name != cat.Name {
			mr.fill("loop mixes "+cat.Name+" and "+name, true)
			return nil
		}
		cat.addAttr(attr)
	}
	mr.headers = mr.headers[:0]
	vals, ok := getValues(mr)
	if !ok {
		return nil
	}
	ncol := len(cat.Attrs)
	if len(vals) == 0 {
		mr.fill("empty table", true)
		return nil
	}
	if len(vals)%ncol != 0 {
		mr.fill(fmt.Sprintf("%s has %d values, which is not a multiple of %d columns", cat.Name, len(vals), ncol), true)
		return nil
	}
	for i := 0; i < len(vals); i += ncol {
		cat.Rows = append(cat.Rows, vals[i:i+ncol:i+ncol])
	}
	return stateTop
}

// stateSkipLoopTable reads the lines of a table, but does not save
// them anywhere. Most of the tables we meet are skipped.
func stateSkipLoopTable(mr *Reader, _ *Container) stateFn {
	foundSomething := false
	for b := mr.cbytes(); !isSpecial(b); b = mr.cbytes() {
		foundSomething = true
		if b[0] == ';' {
			if _, ok := textField(mr); !ok {
				return nil
			}
			continue
		}
		if !mr.cscan() {
			return nil
		}
	}
	if !foundSomething {
		mr.fill("empty table", true)
		return nil
	}
	return stateTop
}

// unknown turns the ? and . placeholders into empty strings.
func unknown(s string) string {
	if s == "?" || s == "." {
		return ""
	}
	return s
}

// hasQuote is true if we cannot use the quick split. That is, the line
// contains quotes.
func hasQuote(b []byte) bool {
	return bytes.IndexByte(b, squote) >= 0 || bytes.IndexByte(b, dquote) >= 0
}

// splitLine breaks a line into values with the quick split if it can.
func (mr *Reader) splitLine(b []byte) ([]bSlice, error) {
	if !hasQuote(b) {
		return fields(b, mr.scrtch), nil
	}
	return splitCifLine(b, mr.scrtch)
}

// getValues collects the values of a loop up to the next data item, loop
// or end of file. They are copied into strings, since calls to cscan()
// reuse the underlying buffer.
func getValues(mr *Reader) (vals []string, ok bool) {
	for b := mr.cbytes(); !isSpecial(b); b = mr.cbytes() {
		if b[0] == ';' {
			s, ok := textField(mr)
			if !ok {
				return nil, false
			}
			vals = append(vals, s)
			continue
		}
		t, err := mr.splitLine(b)
		if err != nil {
			mr.fill(err.Error(), true)
			return nil, false
		}
		for _, u := range t {
			vals = append(vals, unknown(string(u)))
		}
		if !mr.cscan() {
			return nil, false
		}
	}
	return vals, mr.Ok
}

// textField reads a value which starts with a semicolon in the first
// column and runs up to the next line which starts with one. Lines are
// joined with newlines. The scanner is left after the closing line.
func textField(mr *Reader) (string, bool) {
	const msg = "unterminated text field"
	start := mr.n
	var sb strings.Builder
	sb.Write(mr.cbytes()[1:])
	for {
		if !mr.cscan() {
			return "", false
		}
		b := mr.cbytes()
		if b == nil {
			mr.fill(fmt.Sprintf("%s starting on line %d", msg, start), true)
			return "", false
		}
		if b[0] == ';' {
			break
		}
		sb.WriteByte('\n')
		sb.Write(b)
	}
	if !mr.cscan() {
		return "", false
	}
	return strings.TrimSpace(sb.String()), true
}

// stateDItem gets a data item. The value is usually on the same line,
// but it may be on the next one or in a text field.
func stateDItem(mr *Reader, c *Container) stateFn {
	t, err := splitCifLine(mr.cbytes(), mr.scrtch)
	if err != nil {
		mr.fill(err.Error(), true)
		return nil
	}
	cat, attr, ok := splitName(t[0])
	if !ok {
		mr.fill(notSplit+string(t[0]), true)
		return nil
	}
	var value string
	switch len(t) {
	case 2:
		value = unknown(string(t[1]))
		if !mr.cscan() {
			return nil
		}
	case 1:
		if !mr.cscan() {
			return nil
		}
		b := mr.cbytes()
		if isSpecial(b) {
			mr.fill("no value for _"+cat+"."+attr, true)
			return nil
		}
		if b[0] == ';' {
			if value, ok = textField(mr); !ok {
				return nil
			}
			break
		}
		v, err := splitCifLine(b, mr.scrtch)
		if err != nil || len(v) != 1 {
			mr.fill("cannot read value for _"+cat+"."+attr, true)
			return nil
		}
		value = unknown(string(v[0]))
		if !mr.cscan() {
			return nil
		}
	default:
		mr.fill(fmt.Sprintf("%d values for one data item", len(t)-1), true)
		return nil
	}

	if mr.wanted(cat) {
		c.item(cat, attr, value)
	}
	return stateTop
}

// Read parses the file. PDB files have one data block. Its name is kept
// in the container.
func (mr *Reader) Read() (*Container, error) {
	if mr == nil {
		return nil, errors.New("start of file, nil mmcif Reader")
	}
	if !mr.cscan() {
		return nil, mr.lErr
	}
	c := newContainer()
	for state := stateTop; state != nil && mr.Ok; {
		state = state(mr, c)
	}
	if !mr.Ok {
		return nil, mr.lErr
	}
	if mr.n == 0 {
		mr.fill("zero length file", false)
		return nil, mr.lErr
	}
	return c, nil
}
