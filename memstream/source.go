package memstream

import (
	"fmt"

	"github.com/MShaffar19/riegeli/stream"
)

// Source is a forward source reading from a byte slice. The whole slice
// is the window, so every operation is zero-copy.
type Source struct {
	stream.SourceBase

	data []byte
}

var (
	_ stream.Source       = (*Source)(nil)
	_ stream.SourceMedium = (*Source)(nil)
)

// NewSource creates a source reading data. The source aliases data; the
// caller must not mutate it while reading.
func NewSource(data []byte) *Source {
	s := &Source{data: data}
	s.Init(s)
	s.SetWindow(data, 0, 0)
	return s
}

// PullSlow implements stream.SourceMedium. The window already spans the
// whole slice, so an unsatisfied pull is end of stream.
func (s *Source) PullSlow(minSize, recommendedSize int) (bool, error) {
	return false, nil
}

// SeekSlow implements stream.SourceMedium. Every valid position is inside
// the window, so reaching here means the position is out of range.
func (s *Source) SeekSlow(pos uint64) error {
	return s.Fail(fmt.Errorf("%w: seek to %d in source of size %d",
		stream.ErrOutOfRange, pos, len(s.data)))
}

// SizeImpl implements stream.SourceMedium.
func (s *Source) SizeImpl() (uint64, error) {
	return uint64(len(s.data)), nil
}

// Done implements stream.SourceMedium.
func (s *Source) Done() error { return nil }
