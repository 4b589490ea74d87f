package stream

// Source is a forward byte source, the dual of Sink. Pull guarantees
// contiguous unread bytes in the window without consuming them; Peek and
// Advance access the window directly; Read copies through it. End of
// stream is an ordinary condition, not a failure: Pull reports it as
// (false, nil) and Read as a short count with a nil error.
type Source interface {
	// Pull ensures at least minSize contiguous unread bytes are available
	// in the window without consuming them. It returns false with a nil
	// error when the stream ends first; whatever remains is still exposed
	// by Peek.
	Pull(minSize, recommendedSize int) (bool, error)

	// Peek returns the unread window bytes, valid until the next mutating
	// call.
	Peek() []byte

	// Advance consumes n bytes of the window.
	Advance(n int)

	// Read consumes len(p) bytes into p, pulling across internal
	// boundaries as needed. It returns a short count only at end of
	// stream.
	Read(p []byte) (int, error)

	// Seek repositions the stream. Media that cannot seek fail with an
	// error wrapping ErrUnsupported; forward seeks past buffered data
	// pull and discard. When the size is known, positions beyond it fail
	// with an error wrapping ErrOutOfRange.
	Seek(pos uint64) error

	// Size returns the total length when known, or an error wrapping
	// ErrUnsupported for unbounded media.
	Size() (uint64, error)

	// Close releases the medium; idempotent.
	Close() error

	// Pos returns the number of bytes consumed so far.
	Pos() uint64

	// Err returns the terminal failure, if any.
	Err() error
}

// SourceMedium is the storage-specific half of a source. SourceBase calls
// these only on an open, healthy source.
type SourceMedium interface {
	// PullSlow makes at least minSize unread bytes available in the
	// window, returning false at end of stream.
	PullSlow(minSize, recommendedSize int) (bool, error)

	// SeekSlow repositions outside the current window.
	SeekSlow(pos uint64) error

	// SizeImpl returns the total length when known.
	SizeImpl() (uint64, error)

	// Done releases the medium during Close.
	Done() error
}

// SourceBase implements the window bookkeeping and fast paths shared by
// sources. The window is buf: buf[cursor:] is unread, and startPos is the
// logical position of buf[0].
type SourceBase struct {
	medium SourceMedium

	buf      []byte
	cursor   int
	startPos uint64

	err    error
	closed bool
}

// Init binds the base to its medium and resets all state.
func (s *SourceBase) Init(m SourceMedium) {
	*s = SourceBase{medium: m}
}

// Peek returns the unread window bytes.
func (s *SourceBase) Peek() []byte { return s.buf[s.cursor:] }

// Advance consumes n bytes of the window.
func (s *SourceBase) Advance(n int) {
	if n < 0 || n > len(s.buf)-s.cursor {
		panic("stream: Advance past the source window")
	}
	s.cursor += n
}

// Available returns the number of unread bytes in the window.
func (s *SourceBase) Available() int { return len(s.buf) - s.cursor }

// Pos returns the number of bytes consumed so far.
func (s *SourceBase) Pos() uint64 { return s.startPos + uint64(s.cursor) }

// Err returns the terminal failure, if any.
func (s *SourceBase) Err() error { return s.err }

// Closed reports whether Close has been called.
func (s *SourceBase) Closed() bool { return s.closed }

func (s *SourceBase) stateErr() error {
	if s.err != nil {
		return s.err
	}
	if s.closed {
		return ErrClosed
	}
	return nil
}

// Pull ensures at least minSize contiguous unread bytes in the window.
func (s *SourceBase) Pull(minSize, recommendedSize int) (bool, error) {
	if minSize < 0 {
		panic("stream: Pull with negative minSize")
	}
	if recommendedSize < minSize {
		recommendedSize = minSize
	}
	if s.Available() >= minSize {
		return true, nil
	}
	if err := s.stateErr(); err != nil {
		return false, err
	}
	return s.medium.PullSlow(minSize, recommendedSize)
}

// Read consumes len(p) bytes into p, short only at end of stream.
func (s *SourceBase) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if s.Available() == 0 {
			ok, err := s.Pull(1, len(p)-n)
			if err != nil {
				return n, err
			}
			if !ok {
				return n, nil
			}
		}
		m := copy(p[n:], s.buf[s.cursor:])
		s.cursor += m
		n += m
	}
	return n, nil
}

// Seek repositions the stream.
func (s *SourceBase) Seek(pos uint64) error {
	if err := s.stateErr(); err != nil {
		return err
	}
	if pos >= s.startPos && pos <= s.startPos+uint64(len(s.buf)) {
		s.cursor = int(pos - s.startPos)
		return nil
	}
	return s.medium.SeekSlow(pos)
}

// Size returns the total length when known.
func (s *SourceBase) Size() (uint64, error) {
	if err := s.stateErr(); err != nil {
		return 0, err
	}
	return s.medium.SizeImpl()
}

// Close releases the medium; idempotent.
func (s *SourceBase) Close() error {
	if s.closed {
		return s.err
	}
	s.closed = true
	err := s.medium.Done()
	if err != nil && s.err == nil {
		s.err = err
	}
	s.startPos = s.Pos()
	s.buf = nil
	s.cursor = 0
	return s.err
}

// Window returns the current window and cursor, for media that manage it.
func (s *SourceBase) Window() (buf []byte, cursor int) { return s.buf, s.cursor }

// WindowStartPos returns the logical position of the first window byte.
func (s *SourceBase) WindowStartPos() uint64 { return s.startPos }

// SetWindow installs a window whose first byte is at logical position
// startPos, with cursor bytes of it already consumed.
func (s *SourceBase) SetWindow(buf []byte, cursor int, startPos uint64) {
	if cursor < 0 || cursor > len(buf) {
		panic("stream: SetWindow with cursor outside the window")
	}
	s.buf = buf
	s.cursor = cursor
	s.startPos = startPos
}

// Fail transitions the source to its terminal failed state. A failed
// source returns no further data and never retries the failed action.
func (s *SourceBase) Fail(err error) error {
	if s.err == nil {
		s.err = err
	}
	s.startPos = s.Pos()
	s.buf = nil
	s.cursor = 0
	return s.err
}
