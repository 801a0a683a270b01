package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/andrew-torda/pdbcodec/pdb"
)

type nummap map[string]int

// badFile is a file we could read, but whose MASTER record was wrong,
// or one we could not read at all.
type badFile struct {
	name   string
	err    error
	master []pdb.MasterMismatch
}

// stats is what one reader collects. At the end, they are merged.
type stats struct {
	nFile  int
	nAtom  int
	nummap nummap
	bad    []badFile
	walk   error
}

func newStats() *stats { return &stats{nummap: make(nummap)} }

// elemKey is what we count an atom under.
func elemKey(element string) string {
	if element == "" {
		return "?"
	}
	return element
}

// eatPDB reads one file and adds what it finds to st.
func eatPDB(fname string, st *stats, rOpts *pdb.Options) error {
	e, err := pdb.ReadFile(fname, rOpts)
	if err != nil {
		return errorName(fname, err)
	}
	st.nFile++
	if m := e.FirstModel(); m != nil {
		for _, a := range m.Atoms() {
			st.nummap[elemKey(a.Element)]++
			st.nAtom++
		}
	}
	if bad := e.CheckMaster(rOpts.Log); len(bad) > 0 {
		st.bad = append(st.bad, badFile{name: fname, master: bad})
	}
	return nil
}

// pdbStat takes filenames from nmChan until it is closed.
// A broken file is noted and we carry on. An error from the walker
// is remembered, but we still drain the channel.
func pdbStat(nmChan <-chan fileRes, st *stats, rOpts *pdb.Options, wg *sync.WaitGroup) {
	defer wg.Done()
	for f := range nmChan {
		if f.err != nil {
			st.walk = f.err
			continue
		}
		if err := eatPDB(f.name, st, rOpts); err != nil {
			st.bad = append(st.bad, badFile{name: f.name, err: err})
		}
	}
}

// collectData starts nReader readers on the channel of names, waits
// for them and merges what they found.
func collectData(nmChan <-chan fileRes, nReader int, rOpts *pdb.Options) (*stats, error) {
	var wg sync.WaitGroup
	cstats := make([]*stats, nReader)
	for i := range cstats {
		wg.Add(1)
		cstats[i] = newStats()
		go pdbStat(nmChan, cstats[i], rOpts, &wg)
	}
	wg.Wait()

	dst := cstats[0]
	for _, src := range cstats[1:] { // merge everything into the first
		for k, v := range src.nummap {
			dst.nummap[k] += v
		}
		dst.nFile += src.nFile
		dst.nAtom += src.nAtom
		dst.bad = append(dst.bad, src.bad...)
		if dst.walk == nil {
			dst.walk = src.walk
		}
	}
	sort.Slice(dst.bad, func(i, j int) bool { return dst.bad[i].name < dst.bad[j].name })

	var err error
	if dst.walk != nil {
		err = dst.walk
	} else if n := dst.nBroken(); n > 0 {
		err = fmt.Errorf("%d of %d files could not be read", n, n+dst.nFile)
	}
	return dst, err
}

// nBroken is the number of files which could not be read.
func (st *stats) nBroken() int {
	n := 0
	for _, b := range st.bad {
		if b.err != nil {
			n++
		}
	}
	return n
}

// writeStats writes the counts as csv, most common first, ties by
// name.
func writeStats(w io.Writer, nummap nummap) error {
	type npair struct {
		name string
		n    int
	}
	pairs := make([]npair, 0, len(nummap))
	for k, v := range nummap {
		pairs = append(pairs, npair{k, v})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].n != pairs[j].n {
			return pairs[i].n > pairs[j].n
		}
		return pairs[i].name < pairs[j].name
	})
	if _, err := fmt.Fprintln(w, "\"name\",\"n\""); err != nil {
		return err
	}
	for _, p := range pairs {
		if _, err := fmt.Fprintf(w, "\"%v\",%v\n", p.name, p.n); err != nil {
			return err
		}
	}
	return nil
}

// printstats writes the csv to fname, or standard output if fname is
// empty.
func printstats(st *stats, fname string) (err error) {
	if fname == "" {
		return writeStats(os.Stdout, st.nummap)
	}
	fp, err := os.Create(fname)
	if err != nil {
		return errorName(fname, err)
	}
	defer func() {
		err = errors.Join(err, fp.Close())
	}()
	return writeStats(fp, st.nummap)
}

// reportBad lists the broken files and the MASTER disagreements.
func reportBad(w io.Writer, st *stats) {
	for _, b := range st.bad {
		if b.err != nil {
			errColor.Fprintln(w, b.err)
			continue
		}
		for _, m := range b.master {
			warnColor.Fprintf(w, "%s: %s\n", b.name, m)
		}
	}
	fmt.Fprintf(w, "%d files, %d atoms, %d unreadable\n", st.nFile, st.nAtom, st.nBroken())
}
