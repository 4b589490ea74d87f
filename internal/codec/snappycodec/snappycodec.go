// Package snappycodec provides a Snappy framed-stream codec.
package snappycodec

import (
	"io"

	"github.com/klauspost/compress/snappy"

	"github.com/MShaffar19/riegeli/internal/codec"
)

// Codec compresses with the Snappy framing format. Snappy has no tunable
// level or window.
type Codec struct{}

var _ codec.Codec = (*Codec)(nil)

// New creates a Snappy codec.
func New() *Codec {
	return &Codec{}
}

func (c *Codec) Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(snappy.NewReader(r)), nil
}

func (c *Codec) Writer(w io.Writer) (io.WriteCloser, error) {
	return snappy.NewBufferedWriter(w), nil
}

func (c *Codec) Name() string { return "snappy" }
