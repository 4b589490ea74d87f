package stream

// Sink is a forward byte sink. Bytes are produced into a window the sink
// exposes over its medium's storage: Push guarantees free space, Space and
// Advance access it directly for zero-copy writes, and Write copies
// through it. The window returned by Space is valid until the next call
// that mutates the sink.
type Sink interface {
	// Push guarantees at least minSize free bytes in the window, growing,
	// reallocating or flushing as the medium requires. recommendedSize is
	// a hint for how much is about to be written.
	Push(minSize, recommendedSize int) error

	// Space returns the free region of the window. Bytes placed into it
	// are committed with Advance.
	Space() []byte

	// Advance commits the first n bytes of Space.
	Advance(n int)

	// Write appends p. The call either appends all of p or fails without
	// partially applying it.
	Write(p []byte) error

	// Flush makes written data visible to the degree selected by ft.
	Flush(ft FlushType) error

	// Close finalizes the stream. Close is idempotent; Push and Write on
	// a closed sink fail with ErrClosed.
	Close() error

	// Pos returns the number of bytes written so far. It only increases.
	Pos() uint64

	// Err returns the terminal failure, if any.
	Err() error
}

// SinkMedium is the storage-specific half of a sink: the slow paths that
// run when the fast-path window cannot satisfy a request. SinkBase calls
// these only on an open, healthy sink.
type SinkMedium interface {
	// PushSlow makes at least minSize free bytes available in the window.
	PushSlow(minSize, recommendedSize int) error

	// WriteSlow appends p when it does not fit in the window.
	WriteSlow(p []byte) error

	// FlushImpl implements Flush for the medium.
	FlushImpl(ft FlushType) error

	// Done finalizes the medium during Close.
	Done() error
}

// SinkBase implements the window bookkeeping and fast paths shared by
// sinks. A concrete medium embeds SinkBase and calls Init with itself.
//
// The window is buf: buf[:cursor] holds bytes written but not yet taken
// over by the medium, buf[cursor:] is free space, and startPos is the
// logical position of buf[0].
type SinkBase struct {
	medium SinkMedium

	buf      []byte
	cursor   int
	startPos uint64

	err    error
	closed bool
}

// Init binds the base to its medium and resets all state. It must be
// called before any other method.
func (s *SinkBase) Init(m SinkMedium) {
	*s = SinkBase{medium: m}
}

// Space returns the free region of the window.
func (s *SinkBase) Space() []byte { return s.buf[s.cursor:] }

// Advance commits the first n bytes of Space.
func (s *SinkBase) Advance(n int) {
	if n < 0 || n > len(s.buf)-s.cursor {
		panic("stream: Advance past the sink window")
	}
	s.cursor += n
}

// Available returns the number of free bytes in the window.
func (s *SinkBase) Available() int { return len(s.buf) - s.cursor }

// Pos returns the number of bytes written so far.
func (s *SinkBase) Pos() uint64 { return s.startPos + uint64(s.cursor) }

// Err returns the terminal failure, if any.
func (s *SinkBase) Err() error { return s.err }

// Closed reports whether Close has been called.
func (s *SinkBase) Closed() bool { return s.closed }

func (s *SinkBase) stateErr() error {
	if s.err != nil {
		return s.err
	}
	if s.closed {
		return ErrClosed
	}
	return nil
}

// Push guarantees at least minSize free bytes in the window.
func (s *SinkBase) Push(minSize, recommendedSize int) error {
	if minSize < 0 {
		panic("stream: Push with negative minSize")
	}
	if recommendedSize < minSize {
		recommendedSize = minSize
	}
	if s.Available() >= minSize {
		return nil
	}
	if err := s.stateErr(); err != nil {
		return err
	}
	return s.medium.PushSlow(minSize, recommendedSize)
}

// Write appends p, all or nothing.
func (s *SinkBase) Write(p []byte) error {
	if len(p) == 0 {
		return s.stateErr()
	}
	if len(p) <= s.Available() {
		s.cursor += copy(s.buf[s.cursor:], p)
		return nil
	}
	if err := s.stateErr(); err != nil {
		return err
	}
	return s.medium.WriteSlow(p)
}

// Flush makes written data visible to the degree selected by ft.
func (s *SinkBase) Flush(ft FlushType) error {
	if err := s.stateErr(); err != nil {
		return err
	}
	return s.medium.FlushImpl(ft)
}

// Close finalizes the sink. The first call runs the medium's Done; later
// calls return the same outcome without re-running it.
func (s *SinkBase) Close() error {
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
func (s *SinkBase) Window() (buf []byte, cursor int) { return s.buf, s.cursor }

// WindowStartPos returns the logical position of the first window byte.
func (s *SinkBase) WindowStartPos() uint64 { return s.startPos }

// SetWindow installs a window whose first byte is at logical position
// startPos, with cursor bytes already written into it.
func (s *SinkBase) SetWindow(buf []byte, cursor int, startPos uint64) {
	if cursor < 0 || cursor > len(buf) {
		panic("stream: SetWindow with cursor outside the window")
	}
	s.buf = buf
	s.cursor = cursor
	s.startPos = startPos
}

// Written returns the window bytes not yet taken over by the medium.
func (s *SinkBase) Written() []byte { return s.buf[:s.cursor] }

// Fail transitions the sink to its terminal failed state and returns the
// recorded error. The first failure wins; later ones are dropped.
func (s *SinkBase) Fail(err error) error {
	if s.err == nil {
		s.err = err
	}
	s.startPos = s.Pos()
	s.buf = nil
	s.cursor = 0
	return s.err
}
