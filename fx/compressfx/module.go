// Package compressfx provides an fx module wiring compression options
// and a stats collector for applications embedding the library.
package compressfx

import (
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/MShaffar19/riegeli"
	"github.com/MShaffar19/riegeli/stats"
	"github.com/MShaffar19/riegeli/stats/logger"
)

// Config configures the module.
type Config struct {
	// Options is a compression option list in the textual grammar, for
	// example "brotli:9,window_log:24". Empty selects the defaults.
	Options string
}

// Module provides riegeli.CompressorOptions and a stats.Collector.
var Module = fx.Module("compress",
	fx.Provide(
		newOptions,
		newStatsCollector,
	),
)

func newOptions(cfg Config) (riegeli.CompressorOptions, error) {
	if cfg.Options == "" {
		return riegeli.DefaultCompressorOptions(), nil
	}
	opts, err := riegeli.ParseCompressorOptions(cfg.Options)
	if err != nil {
		return riegeli.CompressorOptions{}, fmt.Errorf("compressfx: %w", err)
	}
	return opts, nil
}

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("compress.stats"))
}
