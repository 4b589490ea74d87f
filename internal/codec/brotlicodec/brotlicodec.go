// Package brotlicodec provides a Brotli codec.
package brotlicodec

import (
	"io"

	"github.com/andybalholm/brotli"

	"github.com/MShaffar19/riegeli/internal/codec"
)

// The encoder caps its sliding window below the format maximum.
const maxEncoderWindowLog = 24

// Codec compresses with Brotli at a fixed quality and window.
type Codec struct {
	level     int
	windowLog int
}

var _ codec.Codec = (*Codec)(nil)

// New creates a Brotli codec with the given quality level (0..11) and
// window log. Window logs above the encoder's cap are clamped.
func New(level, windowLog int) *Codec {
	if windowLog > maxEncoderWindowLog {
		windowLog = maxEncoderWindowLog
	}
	return &Codec{level: level, windowLog: windowLog}
}

func (c *Codec) Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(brotli.NewReader(r)), nil
}

func (c *Codec) Writer(w io.Writer) (io.WriteCloser, error) {
	return brotli.NewWriterOptions(w, brotli.WriterOptions{
		Quality: c.level,
		LGWin:   c.windowLog,
	}), nil
}

func (c *Codec) Name() string { return "brotli" }
