package stream

import "io"

// NewIOWriter adapts a Sink to io.Writer, for codecs and other consumers
// speaking the standard interfaces.
func NewIOWriter(s Sink) io.Writer { return ioWriter{s} }

type ioWriter struct{ s Sink }

func (w ioWriter) Write(p []byte) (int, error) {
	if err := w.s.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// NewIOReader adapts a Source to io.Reader. End of stream is translated to
// io.EOF, as the standard interface requires.
func NewIOReader(s Source) io.Reader { return ioReader{s} }

type ioReader struct{ s Source }

func (r ioReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	ok, err := r.s.Pull(1, len(p))
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, io.EOF
	}
	n := copy(p, r.s.Peek())
	r.s.Advance(n)
	return n, nil
}
