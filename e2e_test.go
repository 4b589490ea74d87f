package riegeli_test

import (
	"bytes"
	"io"
	"math/rand"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/MShaffar19/riegeli"
	"github.com/MShaffar19/riegeli/chainstream"
	"github.com/MShaffar19/riegeli/compress"
	"github.com/MShaffar19/riegeli/stream"
)

// End-to-end: parse options, compress a payload into a block chain, read
// it back through the decompressing source, and compare.
func TestCompressedChainRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	words := []string{"stream ", "of ", "records ", "in ", "chunks "}
	var payload bytes.Buffer
	for payload.Len() < 200<<10 {
		payload.WriteString(words[rng.Intn(len(words))])
	}

	tests := []string{
		"uncompressed",
		"brotli:4",
		"zstd:3",
		"zstd:-3,window_log:18",
		"snappy",
	}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			logger := zaptest.NewLogger(t)
			copts, err := riegeli.ParseCompressorOptions(text)
			if err != nil {
				t.Fatalf("ParseCompressorOptions: %v", err)
			}

			chain := chainstream.NewChain()
			dst := chainstream.NewSink(chain, 4<<10)
			sink, err := compress.NewSink(dst, copts, compress.WithLogger(logger))
			if err != nil {
				t.Fatalf("NewSink: %v", err)
			}
			// Mix copying and zero-copy writes.
			data := payload.Bytes()
			if err := sink.Write(data[:1000]); err != nil {
				t.Fatalf("Write: %v", err)
			}
			rest := data[1000:]
			for len(rest) > 0 {
				if err := sink.Push(1, len(rest)); err != nil {
					t.Fatalf("Push: %v", err)
				}
				n := copy(sink.Space(), rest)
				sink.Advance(n)
				rest = rest[n:]
			}
			if err := sink.Close(); err != nil {
				t.Fatalf("closing compressed sink: %v", err)
			}
			if err := dst.Close(); err != nil {
				t.Fatalf("closing chain sink: %v", err)
			}

			source, err := compress.NewSource(chainstream.NewSource(chain),
				copts.Algorithm(), compress.WithLogger(logger))
			if err != nil {
				t.Fatalf("NewSource: %v", err)
			}
			decoded, err := io.ReadAll(stream.NewIOReader(source))
			if err != nil {
				t.Fatalf("ReadAll: %v", err)
			}
			if err := source.Close(); err != nil {
				t.Fatalf("closing source: %v", err)
			}
			if !bytes.Equal(decoded, data) {
				t.Errorf("round trip mismatch: got %d bytes, want %d", len(decoded), len(data))
			}
		})
	}
}

// The canonical option string survives a parse/print cycle and selects
// the same codec end to end.
func TestCanonicalOptionsEquivalence(t *testing.T) {
	copts, err := riegeli.ParseCompressorOptions("zstd:7,window_log:20")
	if err != nil {
		t.Fatalf("ParseCompressorOptions: %v", err)
	}
	reparsed, err := riegeli.ParseCompressorOptions(copts.String())
	if err != nil {
		t.Fatalf("reparsing %q: %v", copts.String(), err)
	}
	if reparsed != copts {
		t.Errorf("reparsed options %v differ from %v", reparsed, copts)
	}
}
