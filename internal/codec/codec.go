// Package codec defines the compression codec interface shared by the
// concrete codec implementations.
package codec

import "io"

// Codec provides streaming compression and decompression over the
// standard io interfaces.
type Codec interface {
	// Reader wraps r with decompression.
	Reader(r io.Reader) (io.ReadCloser, error)

	// Writer wraps w with compression. Closing the returned writer
	// finishes the compressed stream without closing w.
	Writer(w io.Writer) (io.WriteCloser, error)

	// Name returns the codec's name for logs.
	Name() string
}
