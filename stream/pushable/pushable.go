// Package pushable builds forward sinks whose media hand out storage in
// bounded pieces, such as fixed-size blocks. When a request does not fit
// in the space the medium can offer, the sink stitches it through a
// scratch buffer: writes land in scratch first and are copied behind it
// once the medium provides room again. The caller sees one contiguous
// window either way.
package pushable

import (
	"fmt"

	"github.com/MShaffar19/riegeli/stats"
	"github.com/MShaffar19/riegeli/stream"
)

// Medium is the storage-specific half of a pushable sink. Methods are
// named BehindScratch because the sink guarantees the scratch buffer is
// never the active window when they run: the window they see and mutate
// is always the medium's own.
type Medium interface {
	// PushBehindScratch makes free space available in the window, typically
	// by taking over the written bytes and installing fresh storage.
	// recommendedSize hints at how much is about to be written. Supplying
	// less than requested is allowed; supplying none means the medium is
	// exhausted.
	PushBehindScratch(recommendedSize int) error

	// FlushBehindScratch implements Flush for the medium.
	FlushBehindScratch(ft stream.FlushType) error

	// DoneBehindScratch finalizes the medium during Close.
	DoneBehindScratch() error
}

type savedWindow struct {
	buf      []byte
	cursor   int
	startPos uint64
}

// Sink is a forward sink over a Medium with bounded windows. A concrete
// medium embeds Sink and calls Init with itself.
//
// At most one scratch buffer exists per sink and its allocation is reused
// across activations.
type Sink struct {
	stream.SinkBase

	medium    Medium
	scratch   []byte
	inScratch bool
	saved     savedWindow
	stats     stats.Collector
}

var _ stream.SinkMedium = (*Sink)(nil)

// Init binds the sink to its medium and resets all state. It must be
// called before any other method.
func (s *Sink) Init(m Medium) {
	s.medium = m
	s.scratch = nil
	s.inScratch = false
	s.saved = savedWindow{}
	s.stats = stats.NewNoop()
	s.SinkBase.Init(s)
}

// SetStats installs a metrics collector. A nil collector disables
// collection.
func (s *Sink) SetStats(c stats.Collector) {
	if c == nil {
		c = stats.NewNoop()
	}
	s.stats = c
}

// ScratchActive reports whether the active window is the scratch buffer.
func (s *Sink) ScratchActive() bool { return s.inScratch }

// PushSlow implements stream.SinkMedium. It first lets the medium supply
// space; only if the medium cannot satisfy minSize in one piece does it
// switch the window to scratch.
func (s *Sink) PushSlow(minSize, recommendedSize int) error {
	if s.inScratch {
		if err := s.syncScratch(); err != nil {
			return err
		}
		if s.Available() >= minSize {
			return nil
		}
	}
	if err := s.medium.PushBehindScratch(recommendedSize); err != nil {
		return err
	}
	if s.Available() >= minSize {
		return nil
	}
	s.startScratch(recommendedSize)
	return nil
}

// WriteSlow implements stream.SinkMedium by writing directly behind
// scratch, piece by piece as the medium supplies space.
func (s *Sink) WriteSlow(p []byte) error {
	if s.inScratch {
		if err := s.syncScratch(); err != nil {
			return err
		}
	}
	return s.writeBehindScratch(p)
}

// FlushImpl implements stream.SinkMedium.
func (s *Sink) FlushImpl(ft stream.FlushType) error {
	if s.inScratch {
		if err := s.syncScratch(); err != nil {
			return err
		}
	}
	return s.medium.FlushBehindScratch(ft)
}

// Done implements stream.SinkMedium. Scratch contents are written out
// before the medium finalizes, so nothing written is lost on Close.
func (s *Sink) Done() error {
	var syncErr error
	if s.inScratch {
		syncErr = s.syncScratch()
	}
	doneErr := s.medium.DoneBehindScratch()
	if syncErr != nil {
		return syncErr
	}
	return doneErr
}

// startScratch saves the medium's window and installs scratch of at least
// size bytes as the active window, positioned at the current Pos.
func (s *Sink) startScratch(size int) {
	pos := s.Pos()
	buf, cursor := s.Window()
	s.saved = savedWindow{buf: buf, cursor: cursor, startPos: s.WindowStartPos()}
	if cap(s.scratch) < size {
		s.scratch = make([]byte, size)
		s.stats.IncCounter(stats.MetricScratchAllocs, 1)
		s.stats.SetGauge(stats.MetricScratchCapacity, int64(size))
	}
	s.inScratch = true
	s.SetWindow(s.scratch[:size], 0, pos)
}

// syncScratch restores the medium's window and writes the bytes collected
// in scratch behind it.
func (s *Sink) syncScratch() error {
	data := s.Written()
	s.SetWindow(s.saved.buf, s.saved.cursor, s.saved.startPos)
	s.saved = savedWindow{}
	s.inScratch = false
	s.stats.IncCounter(stats.MetricScratchBytes, int64(len(data)))
	return s.writeBehindScratch(data)
}

func (s *Sink) writeBehindScratch(p []byte) error {
	for len(p) > 0 {
		if s.Available() == 0 {
			if err := s.medium.PushBehindScratch(len(p)); err != nil {
				return err
			}
			if s.Available() == 0 {
				return s.Fail(fmt.Errorf("%w: medium supplied no space", stream.ErrResourceExhausted))
			}
		}
		n := copy(s.Space(), p)
		s.SinkBase.Advance(n)
		p = p[n:]
	}
	return nil
}
