// Test Zwrap
package zwrap_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/pdbcodec/pdb/zwrap"
)

// both of these are "andrewsays", but the first is compressed. Write them to a file
// and check that the file opener does the right thing.
type gztest struct {
	data    []byte
	gzipped bool
}

var gztests = []gztest{
	{[]byte{
		0x1f, 0x8b, 0x08, 0x00, 0xb6, 0xf1, 0xa0, 0x5b, 0x00, 0x03,
		0x4b, 0xcc, 0x4b, 0x29, 0x4a, 0x2d, 0x2f, 0x4e, 0xac, 0x2c,
		0xce, 0x48, 0xcd, 0xc9, 0xc9, 0x07, 0x00, 0x44, 0xa8, 0x66,
		0x89, 0x0f, 0x00, 0x00, 0x00},
		true,
	},
	{[]byte{
		0x61, 0x6e, 0x64, 0x72, 0x65, 0x77, 0x73, 0x61,
		0x79, 0x73, 0x68, 0x65, 0x6c, 0x6c, 0x6f, 0x0a},
		false,
	},
}

// writeToTmp writes a byte slice to a temporary file and returns
// a file pointer.
func writeToTmp(t *testing.T, data []byte) *os.File {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "del_me_testing")
	require.NoError(t, os.WriteFile(fname, data, 0o600))
	fp, err := os.Open(fname)
	require.NoError(t, err)
	return fp
}

func TestWrap(t *testing.T) {
	b := make([]byte, 256)
	for _, x := range gztests {
		tmpfp := writeToTmp(t, x.data)
		tmpr, err := zwrap.Wrap(tmpfp)
		if err != nil {
			if x.gzipped {
				t.Error("Fail on correctly gzipped file")
			}
			tmpfp.Close()
			continue // It is not gzipped, so move on to next
		}
		if !x.gzipped { // But we should get one
			t.Error("Fail on not compressed file")
		}
		if n, err := tmpr.Read(b); n < 5 {
			t.Errorf("Short read of %d bytes, %s", n, err)
		}
		if string(b[:10]) != "andrewsays" {
			t.Errorf("wrong string: %s", b[:10])
		}
		require.NoError(t, tmpr.Close())
	}
}

// Calling WrapMaybe should not fail since it guesses if the file
// is compressed or not.
func TestWrapMaybe(t *testing.T) {
	b := make([]byte, 256)
	for _, x := range gztests {
		tmpfp := writeToTmp(t, x.data)
		tmpr, err := zwrap.WrapMaybe(tmpfp)
		require.NoError(t, err, "compressed was %v", x.gzipped)
		require.Equal(t, x.gzipped, tmpr.Compressed())
		if n, err := tmpr.Read(b); n < 5 {
			t.Errorf("Short read of %d bytes, %s", n, err)
		}
		if string(b[:10]) != "andrewsays" {
			t.Errorf("wrong string: %s", b[:10])
		}
		require.NoError(t, tmpr.Close())
	}
}

func TestIsGzip(t *testing.T) {
	for _, x := range gztests {
		r := bytes.NewReader(x.data)
		got, err := zwrap.IsGzip(r)
		require.NoError(t, err)
		require.Equal(t, x.gzipped, got)
		require.Equal(t, int64(len(x.data)), int64(r.Len()), "stream should be rewound")
	}
	got, err := zwrap.IsGzip(bytes.NewReader([]byte{0x1f}))
	require.NoError(t, err)
	require.False(t, got)
}
