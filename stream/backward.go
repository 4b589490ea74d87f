package stream

// BackwardSink is a byte sink growing its content from the end backward:
// every write places its bytes immediately before the previously written
// ones, so after N writes the content read forward is the concatenation of
// the calls in reverse order. It builds content whose prefix — a length or
// a checksum — is known only after the payload: write the payload pieces
// first, the prefix last.
type BackwardSink interface {
	// Push guarantees at least minSize free bytes in the window.
	Push(minSize, recommendedSize int) error

	// Space returns the free region of the window. A zero-copy write
	// fills the tail of the region and claims it with Advance.
	Space() []byte

	// Advance commits the last n bytes of Space.
	Advance(n int)

	// Write prepends p, all or nothing.
	Write(p []byte) error

	// Flush makes written data visible to the degree selected by ft.
	Flush(ft FlushType) error

	// Close finalizes the stream; idempotent.
	Close() error

	// Pos returns the number of bytes written so far.
	Pos() uint64

	// Err returns the terminal failure, if any.
	Err() error
}

// BackwardSinkMedium is the storage-specific half of a backward sink.
type BackwardSinkMedium interface {
	PushSlow(minSize, recommendedSize int) error
	WriteSlow(p []byte) error
	FlushImpl(ft FlushType) error
	Done() error
}

// BackwardSinkBase implements the window bookkeeping shared by backward
// sinks. The window is buf: buf[cursor:] holds the written content,
// buf[:cursor] is free space, and basePos counts bytes handed to the
// medium before the current window existed.
type BackwardSinkBase struct {
	medium BackwardSinkMedium

	buf     []byte
	cursor  int
	basePos uint64

	err    error
	closed bool
}

// Init binds the base to its medium and resets all state.
func (s *BackwardSinkBase) Init(m BackwardSinkMedium) {
	*s = BackwardSinkBase{medium: m}
}

// Space returns the free region of the window.
func (s *BackwardSinkBase) Space() []byte { return s.buf[:s.cursor] }

// Advance commits the last n bytes of Space.
func (s *BackwardSinkBase) Advance(n int) {
	if n < 0 || n > s.cursor {
		panic("stream: Advance past the sink window")
	}
	s.cursor -= n
}

// Available returns the number of free bytes in the window.
func (s *BackwardSinkBase) Available() int { return s.cursor }

// Pos returns the number of bytes written so far.
func (s *BackwardSinkBase) Pos() uint64 {
	return s.basePos + uint64(len(s.buf)-s.cursor)
}

// Err returns the terminal failure, if any.
func (s *BackwardSinkBase) Err() error { return s.err }

// Closed reports whether Close has been called.
func (s *BackwardSinkBase) Closed() bool { return s.closed }

func (s *BackwardSinkBase) stateErr() error {
	if s.err != nil {
		return s.err
	}
	if s.closed {
		return ErrClosed
	}
	return nil
}

// Push guarantees at least minSize free bytes in the window.
func (s *BackwardSinkBase) Push(minSize, recommendedSize int) error {
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

// Write prepends p, all or nothing.
func (s *BackwardSinkBase) Write(p []byte) error {
	if len(p) == 0 {
		return s.stateErr()
	}
	if len(p) <= s.cursor {
		copy(s.buf[s.cursor-len(p):s.cursor], p)
		s.cursor -= len(p)
		return nil
	}
	if err := s.stateErr(); err != nil {
		return err
	}
	return s.medium.WriteSlow(p)
}

// Flush makes written data visible to the degree selected by ft.
func (s *BackwardSinkBase) Flush(ft FlushType) error {
	if err := s.stateErr(); err != nil {
		return err
	}
	return s.medium.FlushImpl(ft)
}

// Close finalizes the sink; idempotent.
func (s *BackwardSinkBase) Close() error {
	if s.closed {
		return s.err
	}
	s.closed = true
	err := s.medium.Done()
	if err != nil && s.err == nil {
		s.err = err
	}
	s.basePos = s.Pos()
	s.buf = nil
	s.cursor = 0
	return s.err
}

// Window returns the current window and cursor, for media that manage it.
func (s *BackwardSinkBase) Window() (buf []byte, cursor int) { return s.buf, s.cursor }

// WindowBasePos returns the byte count preceding the current window.
func (s *BackwardSinkBase) WindowBasePos() uint64 { return s.basePos }

// SetWindow installs a window with the content occupying buf[cursor:] and
// basePos bytes written before it.
func (s *BackwardSinkBase) SetWindow(buf []byte, cursor int, basePos uint64) {
	if cursor < 0 || cursor > len(buf) {
		panic("stream: SetWindow with cursor outside the window")
	}
	s.buf = buf
	s.cursor = cursor
	s.basePos = basePos
}

// Written returns the window content, earliest-position byte first.
func (s *BackwardSinkBase) Written() []byte { return s.buf[s.cursor:] }

// Fail transitions the sink to its terminal failed state.
func (s *BackwardSinkBase) Fail(err error) error {
	if s.err == nil {
		s.err = err
	}
	s.basePos = s.Pos()
	s.buf = nil
	s.cursor = 0
	return s.err
}
