// Package stats provides a unified interface for collecting stream
// metrics.
package stats

// Metric names used throughout the library.
const (
	// Compressed stream metrics.
	MetricCompressBytesIn   = "bytestream_compress_bytes_in_total"
	MetricDecompressBytes   = "bytestream_decompress_bytes_total"
	MetricCompressionRatio  = "bytestream_compression_ratio"
	MetricCompressedStreams = "bytestream_compressed_streams_total"

	// Scratch discipline metrics.
	MetricScratchAllocs   = "bytestream_scratch_allocs_total"
	MetricScratchBytes    = "bytestream_scratch_stitched_bytes_total"
	MetricScratchCapacity = "bytestream_scratch_capacity_bytes"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
