// This is the upper level for reading PDB files.
// Decide if a file is compressed or not, and what format
// we are going to read. Then call the corresponding pdb or mmcif
// format reader.

package pdb

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/pdbcodec/pdb/mmcif"
	"github.com/andrew-torda/pdbcodec/pdb/zwrap"
)

const (
	oldFmt byte = iota
	mmcifFmt
	unkFmt
)

// lookInFile opens a file and guesses if it is in old PDB format or
// in mmcif.
func lookInFile(fname string) (byte, error) {
	pdbWords := []string{"HEADER", "COMPND", "SOURCE", "REMARK", "SEQRES", "CRYST1", "MODEL", "HETATM", "ATOM"}
	mmcifWords := []string{"data_", "_entry.id", "loop_"}
	fp, err := os.Open(fname)
	if err != nil {
		return unkFmt, err
	}
	rdr, e2 := zwrap.WrapMaybe(fp)
	if e2 != nil {
		fp.Close()
		return unkFmt, errors.New("reading " + fname + " " + e2.Error())
	}
	defer rdr.Close() // closes fp as well

	const maxTestLines = 5000
	scnnr := bufio.NewScanner(bufio.NewReader(rdr))
	for i := 0; scnnr.Scan() && i < maxTestLines; i++ {
		s := scnnr.Text()
		for _, w := range mmcifWords {
			if strings.HasPrefix(s, w) {
				return mmcifFmt, nil
			}
		}
		for _, w := range pdbWords {
			if strings.HasPrefix(s, w) {
				return oldFmt, nil
			}
		}
	}
	if err := scnnr.Err(); err != nil {
		return unkFmt, fmt.Errorf("reading %s: %w", fname, err)
	}
	return unkFmt, errors.New(fname + ": cannot recognise format")
}

// oldOrMmcif decides what format we will use.
// Maybe it uses the file name or maybe it peeks inside.
// Only the last extension counts, after taking off a .gz, so
// x.content.cif is mmcif and 1abc.pdb.gz is PDB.
func oldOrMmcif(fname string) (byte, error) {
	s := strings.ToLower(filepath.Base(fname))
	s = strings.TrimSuffix(s, ".gz")
	switch ext := filepath.Ext(s); {
	case ext == ".ent" || strings.HasPrefix(ext, ".pdb"): // .pdb1 for assemblies
		return oldFmt, nil
	case ext == ".cif" || ext == ".mmcif":
		return mmcifFmt, nil
	}
	return lookInFile(fname)
}

// LogWhere decides where to send warnings. "" throws them away,
// "stdout" and "stderr" are what they say and anything else is a file
// which is appended to. The file stays open for the life of the
// program.
func LogWhere(outinfo string) (*log.Logger, error) {
	var iowriter io.Writer
	switch outinfo { // Decide where to send the logged output
	case "":
		iowriter = io.Discard
	case "stdout":
		iowriter = os.Stdout
	case "stderr":
		iowriter = os.Stderr
	default:
		var err error
		iowriter, err = os.OpenFile(outinfo, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
	}
	prefix := ""
	return log.New(iowriter, prefix, log.Lshortfile), nil
}

// ReadFile reads a PDB or mmCIF file, compressed or not. The format
// comes from the name (.pdb, .ent, .cif, with or without .gz) or, if
// that does not help, from the first lines. Plain PDB files are
// memory mapped.
// As with Parse, an entry read up to an error is returned with it.
func ReadFile(fname string, opts *Options) (*Entry, error) {
	typ, err := oldOrMmcif(fname)
	if err != nil {
		return nil, err
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	if typ == oldFmt {
		gz, err := zwrap.IsGzip(fp)
		if err != nil {
			fp.Close()
			return nil, fmt.Errorf("reading %s: %w", fname, err)
		}
		if !gz {
			defer fp.Close()
			return readMapped(fp, opts)
		}
	}
	e, err := readStream(fp, typ, opts)
	if err != nil {
		return e, fmt.Errorf("%s: %w", fname, err)
	}
	return e, nil
}

// readStream reads from src through the decompressor, if it is needed.
// src is closed once, when the decompressor is.
func readStream(src io.ReadSeekCloser, typ byte, opts *Options) (*Entry, error) {
	rdr, err := zwrap.WrapMaybe(src)
	if err != nil {
		src.Close()
		return nil, err
	}
	defer rdr.Close()
	if typ == oldFmt {
		return Parse(rdr, opts)
	}

	mr := mmcif.NewReader(rdr)
	mr.Keep(CIFCategories...)
	c, err := mr.Read()
	if err != nil {
		return nil, err
	}
	return FromCIF(c, opts)
}

// readMapped parses a plain PDB file through a memory map.
func readMapped(fp *os.File, opts *Options) (*Entry, error) {
	fi, err := fp.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() == 0 { // cannot map nothing
		return Parse(bytes.NewReader(nil), opts)
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer mm.Unmap()
	return Parse(bytes.NewReader(mm), opts)
}
