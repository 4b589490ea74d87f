// Package pullable builds forward sources whose media expose data in
// bounded pieces, such as fixed-size blocks. When a request spans a piece
// boundary, the source stitches the bytes into a scratch buffer and makes
// scratch the active window until the caller has consumed past the seam.
// The caller sees one contiguous window either way.
package pullable

import (
	"github.com/MShaffar19/riegeli/stats"
	"github.com/MShaffar19/riegeli/stream"
)

// Medium is the storage-specific half of a pullable source. Methods are
// named BehindScratch because the source guarantees the scratch buffer is
// never the active window when they run.
type Medium interface {
	// PullBehindScratch makes unread bytes available in the window,
	// typically by installing the next piece of storage. It is called only
	// when the window is empty. Returning false with a nil error reports
	// end of stream.
	PullBehindScratch(recommendedSize int) (bool, error)

	// SeekBehindScratch repositions outside the current window. Media that
	// cannot seek fail with an error wrapping stream.ErrUnsupported.
	SeekBehindScratch(pos uint64) error

	// SizeBehindScratch returns the total length when known.
	SizeBehindScratch() (uint64, error)

	// DoneBehindScratch releases the medium during Close.
	DoneBehindScratch() error
}

type savedWindow struct {
	buf      []byte
	cursor   int
	startPos uint64
}

// Source is a forward source over a Medium with bounded windows. A
// concrete medium embeds Source and calls Init with itself.
//
// At most one scratch buffer exists per source and its allocation is
// reused across activations.
type Source struct {
	stream.SourceBase

	medium    Medium
	scratch   []byte
	inScratch bool
	saved     savedWindow
	stats     stats.Collector
}

var _ stream.SourceMedium = (*Source)(nil)

// Init binds the source to its medium and resets all state. It must be
// called before any other method.
func (s *Source) Init(m Medium) {
	s.medium = m
	s.scratch = nil
	s.inScratch = false
	s.saved = savedWindow{}
	s.stats = stats.NewNoop()
	s.SourceBase.Init(s)
}

// SetStats installs a metrics collector. A nil collector disables
// collection.
func (s *Source) SetStats(c stats.Collector) {
	if c == nil {
		c = stats.NewNoop()
	}
	s.stats = c
}

// ScratchActive reports whether the active window is the scratch buffer.
func (s *Source) ScratchActive() bool { return s.inScratch }

// PullSlow implements stream.SourceMedium. Requests the medium can
// satisfy with a single piece stay zero-copy; requests spanning a seam
// are stitched through scratch.
func (s *Source) PullSlow(minSize, recommendedSize int) (bool, error) {
	pos := s.Pos()
	seed := 0
	if s.inScratch {
		// The unconsumed tail of the old scratch logically precedes the
		// medium's window, so it seeds the next stitch. The copy shifts it
		// to the front of the same allocation; source and destination
		// overlap forward, which copy handles.
		seed = copy(s.scratch, s.Peek())
		s.exitScratch()
		if seed == 0 && s.Available() >= minSize {
			return true, nil
		}
	}
	if seed == 0 && s.Available() == 0 {
		ok, err := s.medium.PullBehindScratch(recommendedSize)
		if err != nil {
			return false, err
		}
		if s.Available() >= minSize {
			return true, nil
		}
		if !ok && s.Available() == 0 {
			return false, nil
		}
	}
	return s.pullToScratch(minSize, recommendedSize, seed, pos)
}

// SeekSlow implements stream.SourceMedium.
func (s *Source) SeekSlow(pos uint64) error {
	if s.inScratch {
		s.exitScratch()
		buf, _ := s.Window()
		start := s.WindowStartPos()
		if pos >= start && pos <= start+uint64(len(buf)) {
			s.SetWindow(buf, int(pos-start), start)
			return nil
		}
	}
	return s.medium.SeekBehindScratch(pos)
}

// SizeImpl implements stream.SourceMedium.
func (s *Source) SizeImpl() (uint64, error) {
	return s.medium.SizeBehindScratch()
}

// Done implements stream.SourceMedium.
func (s *Source) Done() error {
	if s.inScratch {
		s.exitScratch()
	}
	return s.medium.DoneBehindScratch()
}

// pullToScratch gathers bytes from the medium into scratch, starting with
// seed bytes already at its front, and installs scratch as the window at
// logical position pos.
func (s *Source) pullToScratch(minSize, recommendedSize, seed int, pos uint64) (bool, error) {
	if cap(s.scratch) < recommendedSize {
		grown := make([]byte, recommendedSize)
		copy(grown, s.scratch[:seed])
		s.scratch = grown
		s.stats.IncCounter(stats.MetricScratchAllocs, 1)
		s.stats.SetGauge(stats.MetricScratchCapacity, int64(recommendedSize))
	}
	buf := s.scratch[:seed]
	for len(buf) < minSize {
		if s.Available() == 0 {
			ok, err := s.medium.PullBehindScratch(minSize - len(buf))
			if err != nil {
				return false, err
			}
			if !ok || s.Available() == 0 {
				break
			}
		}
		take := minSize - len(buf)
		if avail := s.Available(); take > avail {
			take = avail
		}
		buf = append(buf, s.Peek()[:take]...)
		s.SourceBase.Advance(take)
	}
	if len(buf) == 0 {
		return false, nil
	}
	s.stats.IncCounter(stats.MetricScratchBytes, int64(len(buf)))
	wbuf, wcursor := s.Window()
	s.saved = savedWindow{buf: wbuf, cursor: wcursor, startPos: s.WindowStartPos()}
	s.inScratch = true
	s.SetWindow(buf, 0, pos)
	return len(buf) >= minSize, nil
}

// exitScratch restores the medium's window as the active one.
func (s *Source) exitScratch() {
	s.SetWindow(s.saved.buf, s.saved.cursor, s.saved.startPos)
	s.saved = savedWindow{}
	s.inScratch = false
}
