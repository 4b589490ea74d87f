package compress

import (
	"go.uber.org/zap"

	"github.com/MShaffar19/riegeli/stats"
)

// DefaultBufferSize is the staging buffer size used when none is
// configured.
const DefaultBufferSize = 32 << 10

// Option configures a compressed sink or source.
type Option interface {
	apply(*options)
}

type options struct {
	logger     *zap.Logger
	stats      stats.Collector
	bufferSize int
}

type optionFunc func(*options)

func (f optionFunc) apply(o *options) { f(o) }

func defaultOptions() options {
	return options{
		logger:     zap.NewNop(),
		stats:      stats.NewNoop(),
		bufferSize: DefaultBufferSize,
	}
}

// WithLogger sets the logger. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return optionFunc(func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	})
}

// WithStats sets the metrics collector. The default discards metrics.
func WithStats(c stats.Collector) Option {
	return optionFunc(func(o *options) {
		if c != nil {
			o.stats = c
		}
	})
}

// WithBufferSize sets the staging buffer size. Non-positive values select
// DefaultBufferSize.
func WithBufferSize(size int) Option {
	return optionFunc(func(o *options) {
		if size > 0 {
			o.bufferSize = size
		}
	})
}
