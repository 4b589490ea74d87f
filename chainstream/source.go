package chainstream

import (
	"fmt"

	"github.com/MShaffar19/riegeli/stream"
	"github.com/MShaffar19/riegeli/stream/pullable"
)

// Source is a forward source reading a Chain block by block. Requests
// within one block are zero-copy; requests spanning a seam are stitched
// through scratch by the embedded pullable source.
type Source struct {
	pullable.Source

	chain *Chain
	next  int
}

var (
	_ stream.Source   = (*Source)(nil)
	_ pullable.Medium = (*Source)(nil)
)

// NewSource creates a source reading chain from the beginning. The chain
// must not be mutated while the source reads it.
func NewSource(chain *Chain) *Source {
	s := &Source{chain: chain}
	s.Init(s)
	return s
}

// PullBehindScratch implements pullable.Medium by exposing the next block
// as the window.
func (s *Source) PullBehindScratch(recommendedSize int) (bool, error) {
	if s.next >= len(s.chain.blocks) {
		return false, nil
	}
	block := s.chain.blocks[s.next]
	s.next++
	s.SetWindow(block, 0, s.Pos())
	return true, nil
}

// SeekBehindScratch implements pullable.Medium. Any position up to and
// including the chain size is reachable in either direction.
func (s *Source) SeekBehindScratch(pos uint64) error {
	if pos > s.chain.size {
		return s.Fail(fmt.Errorf("%w: seek to %d in chain of size %d",
			stream.ErrOutOfRange, pos, s.chain.size))
	}
	start := uint64(0)
	for i, block := range s.chain.blocks {
		end := start + uint64(len(block))
		if pos < end {
			s.next = i + 1
			s.SetWindow(block, int(pos-start), start)
			return nil
		}
		start = end
	}
	s.next = len(s.chain.blocks)
	s.SetWindow(nil, 0, pos)
	return nil
}

// SizeBehindScratch implements pullable.Medium.
func (s *Source) SizeBehindScratch() (uint64, error) {
	return s.chain.size, nil
}

// DoneBehindScratch implements pullable.Medium.
func (s *Source) DoneBehindScratch() error { return nil }
