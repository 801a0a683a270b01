package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	smallPDB = "../../pdb/testdata/small.pdb"
	smallCIF = "../../pdb/mmcif/testdata/1abc.cif"
)

func TestConvertPDB(t *testing.T) {
	var out, warn bytes.Buffer
	require.NoError(t, convert(smallPDB, &out, log.New(&warn, "", 0), &opts{}))
	want, err := os.ReadFile(smallPDB)
	require.NoError(t, err)
	require.Equal(t, string(want), out.String())
	require.Empty(t, warn.String())
}

func TestConvertCIF(t *testing.T) {
	var out, warn bytes.Buffer
	require.NoError(t, convert(smallCIF, &out, log.New(&warn, "", 0), &opts{}))
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.True(t, strings.HasPrefix(lines[0], "HEADER    OXYGEN TRANSPORT"))
	require.Equal(t, "END", lines[len(lines)-1])
	require.Empty(t, warn.String())
}

func TestConvertMaster(t *testing.T) {
	b, err := os.ReadFile(smallPDB)
	require.NoError(t, err)
	good := string(b)
	var master string
	for _, l := range strings.Split(good, "\n") {
		if strings.HasPrefix(l, "MASTER") {
			master = l
		}
	}
	bad := strings.Replace(good, master,
		"MASTER        1    0    2    1    0    0    1    3    6    1    1    1", 1)
	fname := filepath.Join(t.TempDir(), "bad.pdb")
	require.NoError(t, os.WriteFile(fname, []byte(bad), 0o644))

	var out, warn bytes.Buffer
	require.NoError(t, convert(fname, &out, log.New(&warn, "", 0), &opts{}))
	require.Equal(t, bad, out.String(), "without -m the MASTER is left alone")
	require.Contains(t, warn.String(), "MASTER indicates 2 HET records; found 1.")
	require.Equal(t, 1, strings.Count(warn.String(), "\n"))

	out.Reset()
	require.NoError(t, convert(fname, &out, log.New(&warn, "", 0), &opts{newMaster: true}))
	require.Equal(t, good, out.String())
}

func TestConvertGeometry(t *testing.T) {
	var out, warn bytes.Buffer
	require.NoError(t, convert(smallPDB, &out, log.New(&warn, "", 0), &opts{bondTol: 0.5, omegaTol: 30}))
	require.Empty(t, warn.String())
	require.NoError(t, convert(smallPDB, &out, log.New(&warn, "", 0), &opts{bondTol: 0.1}))
	require.Contains(t, warn.String(), "LINK O A3 - ZN A101")
}

func TestConvertErrors(t *testing.T) {
	var out bytes.Buffer
	quiet := log.New(&bytes.Buffer{}, "", 0)
	require.Error(t, convert("/does/not/exist.pdb", &out, quiet, &opts{}))

	fname := filepath.Join(t.TempDir(), "junk.pdb")
	require.NoError(t, os.WriteFile(fname, []byte("NONSENSE\nEND\n"), 0o644))
	require.Error(t, convert(fname, &out, quiet, &opts{}))
	require.Empty(t, out.String())

	require.Error(t, convert(smallPDB, &out, quiet, &opts{logFname: filepath.Join(t.TempDir(), "no", "log")}))
}
