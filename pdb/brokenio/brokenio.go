// Package brokenio wraps an io.ReadCloser so that reads go wrong in
// ways real structure files do. A download may stop half way, a
// gzipped file may be truncated, or a file may be empty. The readers
// in pdb and pdb/mmcif are tested against it.
//
// Typical use:
//
//	r := brokenio.NewReader(fp, brokenio.FailAfter(200))
//	e, err := pdb.Parse(r, nil)
//	errors.Is(err, brokenio.ErrBroken) // true
package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrBroken is the error from a read we broke on purpose.
var ErrBroken = errors.New("brokenio: injected read failure")

// BrknRdrClsr counts what has gone through and fails according to its
// options. Random failures use their own seeded source, so a test
// gives the same result every time.
type BrknRdrClsr struct {
	rdrOrig   io.ReadCloser
	failAfter int64 // fail once this many bytes have gone, < 0 for never
	zeroFile  bool  // first read says EOF
	probFail  float32
	rnd       *rand.Rand
	nCalled   int
	nByte     int64
}

// An Option changes how a reader breaks.
type Option func(*BrknRdrClsr)

// FailAfter makes the reader deliver n bytes, then return ErrBroken.
func FailAfter(n int64) Option {
	return func(r *BrknRdrClsr) { r.failAfter = n }
}

// ZeroFile makes the reader look like an empty file.
func ZeroFile() Option {
	return func(r *BrknRdrClsr) { r.zeroFile = true }
}

// ProbFail makes each read fail with probability prob, using a source
// seeded with seed.
func ProbFail(prob float32, seed int64) Option {
	return func(r *BrknRdrClsr) {
		r.probFail = prob
		r.rnd = rand.New(rand.NewSource(seed))
	}
}

// NewReader wraps rIn.
func NewReader(rIn io.ReadCloser, opts ...Option) *BrknRdrClsr {
	r := &BrknRdrClsr{rdrOrig: rIn, failAfter: -1}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Read passes reads through until it is time to fail. A read which
// crosses the FailAfter limit is cut short at the limit and the error
// comes on the next call. A random failure throws away what was read.
func (r *BrknRdrClsr) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	r.nCalled++
	if r.zeroFile && r.nCalled == 1 {
		return 0, io.EOF
	}
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, fmt.Errorf("after %d bytes: %w", r.nByte, ErrBroken)
		}
		if int64(len(p)) > left {
			p = p[:left]
		}
	}
	n, err := r.rdrOrig.Read(p)
	if r.rnd != nil && r.rnd.Float32() < r.probFail {
		return 0, fmt.Errorf("read %d: %w", r.nCalled, ErrBroken)
	}
	r.nByte += int64(n)
	return n, err
}

// NByte is how much has been delivered.
func (r *BrknRdrClsr) NByte() int64 { return r.nByte }

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error { return r.rdrOrig.Close() }
