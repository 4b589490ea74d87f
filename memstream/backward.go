package memstream

import (
	"github.com/MShaffar19/riegeli/stream"
)

// BackwardSink is a backward sink writing into a growable in-memory
// buffer. Content accumulates at the tail of the buffer and grows toward
// its front, so Bytes returns it in final reading order.
type BackwardSink struct {
	stream.BackwardSinkBase

	final []byte
}

var (
	_ stream.BackwardSink       = (*BackwardSink)(nil)
	_ stream.BackwardSinkMedium = (*BackwardSink)(nil)
)

// NewBackwardSink creates an empty in-memory backward sink.
func NewBackwardSink() *BackwardSink {
	s := &BackwardSink{}
	s.Init(s)
	return s
}

// Bytes returns the bytes written so far, in reading order. After Close
// the result is stable; before Close it aliases the live buffer.
func (s *BackwardSink) Bytes() []byte {
	if s.Closed() {
		return s.final
	}
	return s.Written()
}

// PushSlow implements stream.BackwardSinkMedium by reallocating the
// buffer, with the content moved to the tail of the larger allocation.
func (s *BackwardSink) PushSlow(minSize, recommendedSize int) error {
	content := s.Written()
	buf, _ := s.Window()
	size := 2 * len(buf)
	if size < len(content)+recommendedSize {
		size = len(content) + recommendedSize
	}
	if size < minBufferSize {
		size = minBufferSize
	}
	grown := make([]byte, size)
	copy(grown[size-len(content):], content)
	s.SetWindow(grown, size-len(content), s.WindowBasePos())
	return nil
}

// WriteSlow implements stream.BackwardSinkMedium.
func (s *BackwardSink) WriteSlow(p []byte) error {
	if err := s.PushSlow(len(p), len(p)); err != nil {
		return err
	}
	space := s.Space()
	copy(space[len(space)-len(p):], p)
	s.Advance(len(p))
	return nil
}

// FlushImpl implements stream.BackwardSinkMedium.
func (s *BackwardSink) FlushImpl(ft stream.FlushType) error { return nil }

// Done implements stream.BackwardSinkMedium.
func (s *BackwardSink) Done() error {
	s.final = s.Written()
	return nil
}
