package chainstream

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/MShaffar19/riegeli/memstream"
	"github.com/MShaffar19/riegeli/stream"
)

func TestSinkRoundTrip(t *testing.T) {
	chain := NewChain()
	s := NewSink(chain, 8)
	want := []byte("a stream of bytes crossing many block boundaries")
	if err := s.Write(want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := chain.Size(); got != uint64(len(want)) {
		t.Errorf("chain.Size() = %d, want %d", got, len(want))
	}
	if !bytes.Equal(chain.Bytes(), want) {
		t.Errorf("chain.Bytes() = %q, want %q", chain.Bytes(), want)
	}
	for i := 0; i < chain.Blocks(); i++ {
		if got := len(chain.blocks[i]); got > 8 {
			t.Errorf("block %d has %d bytes, want <= 8", i, got)
		}
	}
}

func TestSinkFlushExposesPartialBlock(t *testing.T) {
	chain := NewChain()
	s := NewSink(chain, 1024)
	if err := s.Write([]byte("partial")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := chain.Size(); got != 0 {
		t.Fatalf("chain.Size() before Flush = %d, want 0", got)
	}
	if err := s.Flush(stream.FlushInProcess); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got := string(chain.Bytes()); got != "partial" {
		t.Errorf("chain.Bytes() = %q, want %q", got, "partial")
	}
	// Writing continues after a flush.
	if err := s.Write([]byte(" more")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := string(chain.Bytes()); got != "partial more" {
		t.Errorf("chain.Bytes() = %q, want %q", got, "partial more")
	}
}

func TestSourceReadsWholeChain(t *testing.T) {
	want := bytes.Repeat([]byte("0123456789"), 100)
	chain := NewChain()
	s := NewSink(chain, 64)
	if err := s.Write(want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	src := NewSource(chain)
	got := make([]byte, len(want))
	n, err := src.Read(got)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if n != len(want) || !bytes.Equal(got, want) {
		t.Errorf("Read = %d bytes, want %d matching the writes", n, len(want))
	}
	if ok, err := src.Pull(1, 1); ok || err != nil {
		t.Errorf("Pull at end = %v,%v, want false,nil", ok, err)
	}
}

// Reading through a chain with scratch stitching must be indistinguishable
// from reading the flattened bytes from a plain in-memory source.
func TestSourceMatchesFlatReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	data := make([]byte, 4096)
	rng.Read(data)

	chain := NewChain()
	s := NewSink(chain, 32)
	if err := s.Write(data); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	chained := NewSource(chain)
	flat := memstream.NewSource(chain.Bytes())
	for {
		n := 1 + rng.Intn(100)
		okC, errC := chained.Pull(n, n)
		okF, errF := flat.Pull(n, n)
		if okC != okF || (errC == nil) != (errF == nil) {
			t.Fatalf("Pull(%d) at %d: chained %v,%v flat %v,%v", n, chained.Pos(), okC, errC, okF, errF)
		}
		if errC != nil {
			t.Fatalf("Pull(%d): %v", n, errC)
		}
		take := n
		if avail := chained.Available(); take > avail {
			take = avail
		}
		if take == 0 {
			break
		}
		if !bytes.Equal(chained.Peek()[:take], flat.Peek()[:take]) {
			t.Fatalf("windows differ at position %d", chained.Pos())
		}
		chained.Advance(take)
		flat.Advance(take)
	}
	if chained.Pos() != flat.Pos() || chained.Pos() != uint64(len(data)) {
		t.Errorf("final positions: chained %d flat %d, want %d", chained.Pos(), flat.Pos(), len(data))
	}
}

func TestSourceSeek(t *testing.T) {
	chain := NewChain([]byte("0123"), []byte("4567"), []byte("89"))
	s := NewSource(chain)

	if err := s.Seek(5); err != nil {
		t.Fatalf("Seek(5): %v", err)
	}
	got := make([]byte, 5)
	n, err := s.Read(got)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got[:n]) != "56789" {
		t.Errorf("Read after Seek(5) = %q, want %q", got[:n], "56789")
	}

	// Backward, across blocks.
	if err := s.Seek(2); err != nil {
		t.Fatalf("Seek(2): %v", err)
	}
	if got := s.Pos(); got != 2 {
		t.Errorf("Pos() = %d, want 2", got)
	}
	n, err = s.Read(got)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got[:n]) != "23456" {
		t.Errorf("Read after Seek(2) = %q, want %q", got[:n], "23456")
	}

	// Seeking to the size leaves the source at end of stream.
	if err := s.Seek(10); err != nil {
		t.Fatalf("Seek(10): %v", err)
	}
	if ok, err := s.Pull(1, 1); ok || err != nil {
		t.Errorf("Pull at end = %v,%v, want false,nil", ok, err)
	}
}

func TestSourceSeekOutOfRange(t *testing.T) {
	chain := NewChain([]byte("0123"))
	s := NewSource(chain)
	if err := s.Seek(5); !errors.Is(err, stream.ErrOutOfRange) {
		t.Fatalf("Seek(5) = %v, want ErrOutOfRange", err)
	}
}

func TestSourceSize(t *testing.T) {
	chain := NewChain([]byte("0123"), nil, []byte("45"))
	s := NewSource(chain)
	size, err := s.Size()
	if err != nil {
		t.Fatalf("Size: %v", err)
	}
	if size != 6 {
		t.Errorf("Size() = %d, want 6", size)
	}
}

func TestNewChainSkipsEmptyBlocks(t *testing.T) {
	chain := NewChain([]byte("a"), []byte{}, nil, []byte("b"))
	if got := chain.Blocks(); got != 2 {
		t.Errorf("Blocks() = %d, want 2", got)
	}
	if got := string(chain.Bytes()); got != "ab" {
		t.Errorf("Bytes() = %q, want %q", got, "ab")
	}
}

func BenchmarkChainRoundTrip(b *testing.B) {
	data := bytes.Repeat([]byte("benchmark data "), 1024)
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		chain := NewChain()
		s := NewSink(chain, DefaultBlockSize)
		if err := s.Write(data); err != nil {
			b.Fatal(err)
		}
		if err := s.Close(); err != nil {
			b.Fatal(err)
		}
		src := NewSource(chain)
		buf := make([]byte, len(data))
		if _, err := src.Read(buf); err != nil {
			b.Fatal(err)
		}
	}
}
