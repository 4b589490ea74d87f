package compress

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/MShaffar19/riegeli"
	"github.com/MShaffar19/riegeli/stats"
	"github.com/MShaffar19/riegeli/stream"
)

// maxSkipChunk bounds how much a forward seek pulls at a time while
// discarding.
const maxSkipChunk = 1 << 20

// Source is a forward source that decompresses from an underlying
// source. Pos counts uncompressed bytes. Compressed streams do not carry
// their uncompressed length, so Size is unsupported and Seek works only
// forward.
type Source struct {
	stream.SourceBase

	src    stream.Source
	rc     io.ReadCloser
	buffer []byte
	eof    bool

	logger *zap.Logger
	stats  stats.Collector
}

var (
	_ stream.Source       = (*Source)(nil)
	_ stream.SourceMedium = (*Source)(nil)
)

// NewSource creates a source decompressing src with the given algorithm.
func NewSource(src stream.Source, algo riegeli.Algorithm, opts ...Option) (*Source, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}
	c := codecForAlgorithm(algo)
	rc, err := c.Reader(stream.NewIOReader(src))
	if err != nil {
		return nil, fmt.Errorf("compress: creating %s reader: %w", c.Name(), err)
	}
	s := &Source{
		src:    src,
		rc:     rc,
		buffer: make([]byte, o.bufferSize),
		logger: o.logger,
		stats:  o.stats,
	}
	s.Init(s)
	s.logger.Debug("compressed source opened", zap.String("codec", c.Name()))
	return s, nil
}

// PullSlow implements stream.SourceMedium. The unread window remainder is
// shifted to the front of the buffer and the decompressor fills the rest.
func (s *Source) PullSlow(minSize, recommendedSize int) (bool, error) {
	rem := copy(s.buffer, s.Peek())
	pos := s.Pos()
	if len(s.buffer) < minSize {
		grown := make([]byte, recommendedSize)
		copy(grown, s.buffer[:rem])
		s.buffer = grown
	}
	filled := rem
	for filled < minSize && !s.eof {
		n, err := s.rc.Read(s.buffer[filled:])
		filled += n
		if n > 0 {
			s.stats.IncCounter(stats.MetricDecompressBytes, int64(n))
		}
		if err == io.EOF {
			s.eof = true
			break
		}
		if err != nil {
			return false, s.Fail(fmt.Errorf("compress: %w", err))
		}
	}
	s.SetWindow(s.buffer[:filled], 0, pos)
	return filled >= minSize, nil
}

// SeekSlow implements stream.SourceMedium. Forward seeks decompress and
// discard; backward seeks would need restarting the stream and are
// unsupported.
func (s *Source) SeekSlow(pos uint64) error {
	if pos < s.Pos() {
		return s.Fail(fmt.Errorf("%w: backward seek in compressed stream", stream.ErrUnsupported))
	}
	for s.Pos() < pos {
		remain := pos - s.Pos()
		chunk := remain
		if chunk > maxSkipChunk {
			chunk = maxSkipChunk
		}
		ok, err := s.Pull(1, int(chunk))
		if err != nil {
			return err
		}
		if !ok {
			return s.Fail(fmt.Errorf("%w: seek to %d past end of compressed stream",
				stream.ErrOutOfRange, pos))
		}
		skip := s.Available()
		if uint64(skip) > remain {
			skip = int(remain)
		}
		s.Advance(skip)
	}
	return nil
}

// SizeImpl implements stream.SourceMedium.
func (s *Source) SizeImpl() (uint64, error) {
	return 0, fmt.Errorf("%w: size of compressed stream", stream.ErrUnsupported)
}

// Done implements stream.SourceMedium.
func (s *Source) Done() error {
	if err := s.rc.Close(); err != nil {
		return fmt.Errorf("compress: closing reader: %w", err)
	}
	return nil
}
