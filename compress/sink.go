package compress

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/MShaffar19/riegeli"
	"github.com/MShaffar19/riegeli/stats"
	"github.com/MShaffar19/riegeli/stream"
)

// Sink is a forward sink that compresses everything written to it into an
// underlying sink. Pos counts uncompressed bytes. Closing the sink
// finishes the compressed stream; the underlying sink stays open and is
// owned by the caller.
type Sink struct {
	stream.SinkBase

	dst    stream.Sink
	wc     io.WriteCloser
	buffer []byte

	logger *zap.Logger
	stats  stats.Collector

	startDstPos uint64
}

var (
	_ stream.Sink       = (*Sink)(nil)
	_ stream.SinkMedium = (*Sink)(nil)
)

// NewSink creates a sink compressing into dst with the codec selected by
// copts.
func NewSink(dst stream.Sink, copts riegeli.CompressorOptions, opts ...Option) (*Sink, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}
	c := codecFor(copts)
	wc, err := c.Writer(stream.NewIOWriter(dst))
	if err != nil {
		return nil, fmt.Errorf("compress: creating %s writer: %w", c.Name(), err)
	}
	s := &Sink{
		dst:         dst,
		wc:          wc,
		buffer:      make([]byte, o.bufferSize),
		logger:      o.logger,
		stats:       o.stats,
		startDstPos: dst.Pos(),
	}
	s.Init(s)
	s.SetWindow(s.buffer, 0, 0)
	s.stats.IncCounter(stats.MetricCompressedStreams, 1)
	s.logger.Debug("compressed sink opened",
		zap.String("codec", c.Name()),
		zap.String("options", copts.String()),
	)
	return s, nil
}

// sync hands the staged window bytes to the compressor and resets the
// window at the current position.
func (s *Sink) sync() error {
	data := s.Written()
	pos := s.Pos()
	if len(data) > 0 {
		if _, err := s.wc.Write(data); err != nil {
			return s.Fail(fmt.Errorf("compress: %w", err))
		}
		s.stats.IncCounter(stats.MetricCompressBytesIn, int64(len(data)))
	}
	s.SetWindow(s.buffer, 0, pos)
	return nil
}

// PushSlow implements stream.SinkMedium.
func (s *Sink) PushSlow(minSize, recommendedSize int) error {
	if err := s.sync(); err != nil {
		return err
	}
	if len(s.buffer) < minSize {
		s.buffer = make([]byte, recommendedSize)
		s.SetWindow(s.buffer, 0, s.Pos())
	}
	return nil
}

// WriteSlow implements stream.SinkMedium. Oversized writes bypass the
// staging buffer and go straight to the compressor.
func (s *Sink) WriteSlow(p []byte) error {
	if err := s.sync(); err != nil {
		return err
	}
	pos := s.Pos()
	if _, err := s.wc.Write(p); err != nil {
		return s.Fail(fmt.Errorf("compress: %w", err))
	}
	s.stats.IncCounter(stats.MetricCompressBytesIn, int64(len(p)))
	s.SetWindow(s.buffer, 0, pos+uint64(len(p)))
	return nil
}

// FlushImpl implements stream.SinkMedium. Codecs that can emit a
// restartable boundary do so; the flush then propagates to the underlying
// sink.
func (s *Sink) FlushImpl(ft stream.FlushType) error {
	if err := s.sync(); err != nil {
		return err
	}
	if f, ok := s.wc.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return s.Fail(fmt.Errorf("compress: %w", err))
		}
	}
	return s.dst.Flush(ft)
}

// Done implements stream.SinkMedium by finishing the compressed stream.
func (s *Sink) Done() error {
	syncErr := s.sync()
	closeErr := s.wc.Close()
	if syncErr != nil {
		return syncErr
	}
	if closeErr != nil {
		return fmt.Errorf("compress: finishing stream: %w", closeErr)
	}
	compressed := s.dst.Pos() - s.startDstPos
	raw := s.Pos()
	if raw > 0 {
		s.stats.ObserveHistogram(stats.MetricCompressionRatio, float64(compressed)/float64(raw))
	}
	s.logger.Debug("compressed sink closed",
		zap.Uint64("raw_bytes", raw),
		zap.Uint64("compressed_bytes", compressed),
	)
	return nil
}
