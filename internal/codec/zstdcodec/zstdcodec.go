// Package zstdcodec provides a Zstandard codec.
package zstdcodec

import (
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/MShaffar19/riegeli/internal/codec"
)

// Codec compresses with Zstandard at a fixed level and optional window.
type Codec struct {
	level     int
	windowLog int
}

var _ codec.Codec = (*Codec)(nil)

// New creates a Zstandard codec with the given compression level and
// window log. A zero windowLog lets the encoder derive the window from
// the level.
func New(level, windowLog int) *Codec {
	return &Codec{level: level, windowLog: windowLog}
}

func (c *Codec) Reader(r io.Reader) (io.ReadCloser, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return zr.IOReadCloser(), nil
}

func (c *Codec) Writer(w io.Writer) (io.WriteCloser, error) {
	opts := []zstd.EOption{
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(c.level)),
	}
	if c.windowLog != 0 {
		size := 1 << c.windowLog
		if size > zstd.MaxWindowSize {
			size = zstd.MaxWindowSize
		}
		opts = append(opts, zstd.WithWindowSize(size))
	}
	return zstd.NewWriter(w, opts...)
}

func (c *Codec) Name() string { return "zstd" }
