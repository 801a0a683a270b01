// 9 Oct 2026

/*
Pdbfmt reads a structure in PDB or mmCIF format, compressed or not,
and writes it out as PDB text. Continuation lines are renumbered, the
records are put in the standard order and LINK records are checked
against the coordinates.

If the MASTER record does not agree with the contents, a SITE claims
the wrong number of residues or a bond length or CISPEP angle is far
from what the coordinates give, a warning goes to standard error.
The output is written anyway.

Usage:

	pdbfmt [flags] infile

The flags are:

	-k
		Tolerant reading. Broken lines other than coordinates are
		skipped.
	-l logfile
		Where warnings from reading go. "stdout", "stderr" or a file
		which is appended to. By default they are thrown away.
	-m
		Replace the MASTER record with one computed from the contents.
	-b tolerance
		Warn about LINK and SSBOND lengths further than this (Angstrom)
		from the coordinates. 0 turns the check off.
	-c tolerance
		Warn about CISPEP angles further than this (degrees) from the
		coordinates. 0 turns the check off.
	-o outfile
		Write here instead of standard output.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/fatih/color"

	"github.com/andrew-torda/pdbcodec/pdb"
)

const (
	exitSuccess = 0
	exitFailure = 1
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow)
)

type opts struct {
	logFname  string
	outFname  string
	tolerant  bool
	newMaster bool
	bondTol   float64
	omegaTol  float64
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags] infile")
	flag.PrintDefaults()
}

// colorLog sends warnings to w in yellow.
type colorLog struct{ w io.Writer }

func (c colorLog) Printf(format string, v ...interface{}) {
	warnColor.Fprintf(c.w, format+"\n", v...)
}

// convert reads infile and writes it to w. Warnings about MASTER go
// to warn.
func convert(infile string, w io.Writer, warn pdb.Logger, opts *opts) error {
	outlog, err := pdb.LogWhere(opts.logFname)
	if err != nil {
		return err
	}
	e, err := pdb.ReadFile(infile, &pdb.Options{Tolerant: opts.tolerant, Log: outlog})
	if err != nil {
		return err
	}
	e.CheckMaster(warn)
	e.CheckSites(warn)
	if opts.bondTol > 0 {
		e.CheckBondLengths(warn, opts.bondTol)
	}
	if opts.omegaTol > 0 {
		e.CheckCisPeps(warn, opts.omegaTol)
	}
	if opts.newMaster {
		e.Master = e.ComputeMaster()
	}
	_, err = e.WriteTo(w)
	return err
}

// mymain returns an exit code rather than calling os.Exit, so the
// deferred Close happens.
func mymain() int {
	var opts opts
	flag.StringVar(&opts.logFname, "l", "", "log warnings to stdout, stderr or a file")
	flag.StringVar(&opts.outFname, "o", "", "output filename instead of stdout")
	flag.BoolVar(&opts.tolerant, "k", false, "skip broken non-coordinate lines")
	flag.BoolVar(&opts.newMaster, "m", false, "recompute the MASTER record")
	flag.Float64Var(&opts.bondTol, "b", 0.5, "bond length tolerance, 0 for no check")
	flag.Float64Var(&opts.omegaTol, "c", 30, "CISPEP angle tolerance, 0 for no check")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		return exitFailure
	}

	var w io.Writer = os.Stdout
	if opts.outFname != "" {
		fp, err := os.Create(opts.outFname)
		if err != nil {
			errColor.Fprintln(os.Stderr, err)
			return exitFailure
		}
		defer fp.Close()
		w = fp
	}
	if err := convert(flag.Arg(0), w, colorLog{os.Stderr}, &opts); err != nil {
		errColor.Fprintln(os.Stderr, err)
		var le *pdb.LineError
		if errors.As(err, &le) {
			fmt.Fprintln(os.Stderr, "try -k to skip lines which cannot be read")
		}
		return exitFailure
	}
	return exitSuccess
}

func main() {
	os.Exit(mymain())
}
