// Package compress provides a sink that compresses into an underlying
// sink and a source that decompresses from an underlying source, with the
// codec selected by riegeli.CompressorOptions.
package compress

import (
	"github.com/MShaffar19/riegeli"
	"github.com/MShaffar19/riegeli/internal/codec"
	"github.com/MShaffar19/riegeli/internal/codec/brotlicodec"
	"github.com/MShaffar19/riegeli/internal/codec/noopcodec"
	"github.com/MShaffar19/riegeli/internal/codec/snappycodec"
	"github.com/MShaffar19/riegeli/internal/codec/zstdcodec"
)

// codecFor builds the codec a sink uses, honoring the level and window
// log of the options.
func codecFor(opts riegeli.CompressorOptions) codec.Codec {
	switch opts.Algorithm() {
	case riegeli.AlgorithmBrotli:
		return brotlicodec.New(opts.Level(), opts.BrotliWindowLog())
	case riegeli.AlgorithmZstd:
		windowLog, ok := opts.ZstdWindowLog()
		if !ok {
			windowLog = 0
		}
		return zstdcodec.New(opts.Level(), windowLog)
	case riegeli.AlgorithmSnappy:
		return snappycodec.New()
	default:
		return noopcodec.New()
	}
}

// codecForAlgorithm builds the codec a source uses. Decompression needs
// no level or window tuning.
func codecForAlgorithm(algo riegeli.Algorithm) codec.Codec {
	switch algo {
	case riegeli.AlgorithmBrotli:
		return brotlicodec.New(riegeli.DefaultBrotliLevel, riegeli.DefaultBrotliWindowLog)
	case riegeli.AlgorithmZstd:
		return zstdcodec.New(riegeli.DefaultZstdLevel, 0)
	case riegeli.AlgorithmSnappy:
		return snappycodec.New()
	default:
		return noopcodec.New()
	}
}
