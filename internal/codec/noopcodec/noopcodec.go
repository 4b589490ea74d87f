// Package noopcodec provides a pass-through codec for uncompressed
// streams.
package noopcodec

import (
	"io"

	"github.com/MShaffar19/riegeli/internal/codec"
)

// Codec passes bytes through unchanged.
type Codec struct{}

var _ codec.Codec = (*Codec)(nil)

// New creates a new pass-through codec.
func New() *Codec {
	return &Codec{}
}

func (c *Codec) Reader(r io.Reader) (io.ReadCloser, error) {
	if rc, ok := r.(io.ReadCloser); ok {
		return rc, nil
	}
	return io.NopCloser(r), nil
}

func (c *Codec) Writer(w io.Writer) (io.WriteCloser, error) {
	if wc, ok := w.(io.WriteCloser); ok {
		return wc, nil
	}
	return nopWriteCloser{w}, nil
}

func (c *Codec) Name() string { return "uncompressed" }

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
