package memstream

import (
	"github.com/MShaffar19/riegeli/stream"
)

// Sink is a forward sink writing into a growable in-memory buffer.
type Sink struct {
	stream.SinkBase

	final []byte
}

var (
	_ stream.Sink       = (*Sink)(nil)
	_ stream.SinkMedium = (*Sink)(nil)
)

// NewSink creates an empty in-memory sink.
func NewSink() *Sink {
	s := &Sink{}
	s.Init(s)
	return s
}

// Bytes returns the bytes written so far. After Close the result is
// stable; before Close it aliases the live buffer and is invalidated by
// further writes.
func (s *Sink) Bytes() []byte {
	if s.Closed() {
		return s.final
	}
	return s.Written()
}

// PushSlow implements stream.SinkMedium by reallocating the buffer.
func (s *Sink) PushSlow(minSize, recommendedSize int) error {
	buf, cursor := s.Window()
	size := 2 * len(buf)
	if size < cursor+recommendedSize {
		size = cursor + recommendedSize
	}
	if size < minBufferSize {
		size = minBufferSize
	}
	grown := make([]byte, size)
	copy(grown, buf[:cursor])
	s.SetWindow(grown, cursor, 0)
	return nil
}

// WriteSlow implements stream.SinkMedium.
func (s *Sink) WriteSlow(p []byte) error {
	if err := s.PushSlow(len(p), len(p)); err != nil {
		return err
	}
	s.Advance(copy(s.Space(), p))
	return nil
}

// FlushImpl implements stream.SinkMedium. All flush degrees are alike for
// memory.
func (s *Sink) FlushImpl(ft stream.FlushType) error { return nil }

// Done implements stream.SinkMedium.
func (s *Sink) Done() error {
	s.final = s.Written()
	return nil
}
