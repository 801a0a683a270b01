// Package zwrap takes a file pointer and optionally wraps it so upon
// calling Close, the decompressor will be closed, followed by the
// underlying file.
// Decompression is done by pgzip, which reads ahead in blocks. For big
// mmcif files this is noticeably faster than compress/gzip.

package zwrap

import (
	"errors"
	"io"

	gzip "github.com/klauspost/pgzip"
)

type FpGzip struct { // This is what we return.
	fp   io.ReadCloser
	zrdr *gzip.Reader
}

// Close closes the decompressor, then the underlying backing readCloser.
// It should work if the source is a file or an http stream.
func (fc *FpGzip) Close() error {
	if fc.zrdr == nil {
		return fc.fp.Close()
	}
	return errors.Join(fc.zrdr.Close(), fc.fp.Close())
}

// Read makes sure we read from the compressed stream and
// not the underlying file stream.
func (fc *FpGzip) Read(p []byte) (int, error) {
	if fc.zrdr != nil {
		return fc.zrdr.Read(p)
	}
	return fc.fp.Read(p)
}

// Compressed says if we are reading through the decompressor.
func (fc *FpGzip) Compressed() bool { return fc.zrdr != nil }

// Wrap takes a source like a file pointer or http stream and wraps it
// so the correct Close and Read will be called. Although we use the
// name fp, it should be happy if it is fed an http stream.
func Wrap(fp io.ReadCloser) (*FpGzip, error) {
	var fpz FpGzip
	var err error
	fpz.fp = fp
	fpz.zrdr, err = gzip.NewReader(fpz.fp)
	return &fpz, err
}

// WrapMaybe will decide if the underlying stream is compressed
// and wrap the file pointer if necessary.
// You do lose something. If you pass in something which can seek,
// you get back a ReadCloser which cannot seek. This is the price
// one pays for reading from a compressed reader.
func WrapMaybe(fpIn io.ReadSeekCloser) (*FpGzip, error) {
	if out, err := Wrap(fpIn); err == nil {
		return out, nil // It was compressed. Return compressed reader.
	}
	_, err := fpIn.Seek(0, io.SeekStart)
	r := &FpGzip{
		fp: fpIn, // Leave the zrdr implicitly nil
	}
	return r, err
}

// IsGzip looks at the first two bytes of a stream for the gzip magic
// number and puts the stream back where it was.
func IsGzip(fp io.ReadSeeker) (bool, error) {
	var magic [2]byte
	n, err := io.ReadFull(fp, magic[:])
	if _, serr := fp.Seek(-int64(n), io.SeekCurrent); serr != nil {
		return false, serr
	}
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return magic[0] == 0x1f && magic[1] == 0x8b, nil
}
