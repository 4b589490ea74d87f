package chainstream

import (
	"github.com/MShaffar19/riegeli/stream"
	"github.com/MShaffar19/riegeli/stream/pushable"
)

// Sink is a forward sink appending to a Chain in fixed-size blocks.
// Writes larger than a block are stitched through scratch by the
// embedded pushable sink.
type Sink struct {
	pushable.Sink

	chain     *Chain
	blockSize int
}

var (
	_ stream.Sink     = (*Sink)(nil)
	_ pushable.Medium = (*Sink)(nil)
)

// NewSink creates a sink appending to chain. A non-positive blockSize
// selects DefaultBlockSize.
func NewSink(chain *Chain, blockSize int) *Sink {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	s := &Sink{chain: chain, blockSize: blockSize}
	s.Init(s)
	return s
}

// PushBehindScratch implements pushable.Medium by handing the filled part
// of the current block to the chain and installing a fresh block.
func (s *Sink) PushBehindScratch(recommendedSize int) error {
	s.takeWindow()
	s.SetWindow(make([]byte, s.blockSize), 0, s.Pos())
	return nil
}

// FlushBehindScratch implements pushable.Medium. The partial block is
// handed to the chain so readers see everything written so far.
func (s *Sink) FlushBehindScratch(ft stream.FlushType) error {
	s.takeWindow()
	return nil
}

// DoneBehindScratch implements pushable.Medium.
func (s *Sink) DoneBehindScratch() error {
	s.takeWindow()
	return nil
}

// takeWindow moves the written part of the current block into the chain
// and leaves the sink without a window.
func (s *Sink) takeWindow() {
	s.chain.append(s.Written())
	s.SetWindow(nil, 0, s.Pos())
}
