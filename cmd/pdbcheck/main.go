// 9 Oct 2026

/*
Pdbcheck reads every PDB or mmCIF file under a directory, checks the
MASTER record of each and counts the element types of the atoms it
finds. A tree like the PDB's divided/ layout or a single flat
directory will do. Files may be gzipped.

The counts go out as csv, most common first. Files which could not be
read and files whose MASTER disagrees with their contents are listed
on standard error.

Usage:

	pdbcheck [flags] directory

The flags are:

	-f maxfile
		Stop after this many files. 0 means read them all.
	-k
		Tolerant reading. Skip broken non-coordinate lines.
	-l logfile
		Where warnings go. "stdout", "stderr" or a file name.
	-o outfile
		Write the csv here instead of standard output.
	-r nreader
		Number of files to read at once. The default depends on the
		number of cores.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"path"
	"runtime"

	"github.com/fatih/color"
	"github.com/klauspost/cpuid"

	"github.com/andrew-torda/pdbcodec/pdb"
)

const (
	exitSuccess = 0
	exitFailure = 1
	maxReader   = 8
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow)
)

type opts struct {
	nReader  int
	maxFile  int
	outFname string
	logFname string
	tolerant bool
}

// dfltReader is one reader per physical core, up to maxReader.
func dfltReader() int {
	n := runtime.NumCPU()
	if cpuid.CPU.ThreadsPerCore > 1 {
		n /= cpuid.CPU.ThreadsPerCore
	}
	if n > maxReader {
		n = maxReader
	}
	if n < 1 {
		n = 1
	}
	return n
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags] directory")
	flag.PrintDefaults()
}

func doFlags(opts *opts) {
	flag.IntVar(&opts.nReader, "r", opts.nReader, "num reader threads")
	flag.IntVar(&opts.maxFile, "f", opts.maxFile, "max num files to read, 0 for all")
	flag.StringVar(&opts.outFname, "o", opts.outFname, "output filename instead of stdout")
	flag.StringVar(&opts.logFname, "l", opts.logFname, "log warnings to stdout, stderr or a file")
	flag.BoolVar(&opts.tolerant, "k", opts.tolerant, "skip broken non-coordinate lines")
	flag.Usage = usage
	flag.Parse()
}

func mymain() int {
	opts := opts{nReader: dfltReader()}
	doFlags(&opts)
	if flag.NArg() != 1 {
		usage()
		return exitFailure
	}
	if opts.nReader < 1 {
		opts.nReader = 1
	}
	outlog, err := pdb.LogWhere(opts.logFname)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitFailure
	}
	rOpts := &pdb.Options{Tolerant: opts.tolerant, Log: outlog}

	nmChan := make(chan fileRes)
	go nextPfile(nmChan, flag.Arg(0), opts.maxFile)
	stats, err := collectData(nmChan, opts.nReader, rOpts)
	if stats != nil {
		if perr := printstats(stats, opts.outFname); perr != nil {
			fmt.Fprintln(os.Stderr, perr)
			return exitFailure
		}
		reportBad(os.Stderr, stats)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitFailure
	}
	return exitSuccess
}

func main() {
	os.Exit(mymain())
}
