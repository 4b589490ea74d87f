package pullable_test

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/MShaffar19/riegeli/stats"
	"github.com/MShaffar19/riegeli/stream"
	"github.com/MShaffar19/riegeli/stream/pullable"
)

// blockSource is a test medium exposing data one block at a time.
type blockSource struct {
	pullable.Source

	blocks [][]byte
	next   int
}

var _ pullable.Medium = (*blockSource)(nil)

func newBlockSource(blocks ...[]byte) *blockSource {
	s := &blockSource{blocks: blocks}
	s.Init(s)
	return s
}

func (s *blockSource) PullBehindScratch(recommendedSize int) (bool, error) {
	if s.next >= len(s.blocks) {
		return false, nil
	}
	block := s.blocks[s.next]
	s.next++
	s.SetWindow(block, 0, s.Pos())
	return true, nil
}

func (s *blockSource) SeekBehindScratch(pos uint64) error {
	return s.Fail(fmt.Errorf("%w: seek on block source", stream.ErrUnsupported))
}

func (s *blockSource) SizeBehindScratch() (uint64, error) {
	var size uint64
	for _, b := range s.blocks {
		size += uint64(len(b))
	}
	return size, nil
}

func (s *blockSource) DoneBehindScratch() error { return nil }

// countingStats counts counter increments by metric name.
type countingStats struct {
	mu       sync.Mutex
	counters map[string]int64
}

var _ stats.Collector = (*countingStats)(nil)

func newCountingStats() *countingStats {
	return &countingStats{counters: make(map[string]int64)}
}

func (c *countingStats) IncCounter(name string, delta int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counters[name] += delta
}

func (c *countingStats) SetGauge(name string, value int64) {}

func (c *countingStats) ObserveHistogram(name string, value float64) {}

func (c *countingStats) count(name string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counters[name]
}

func TestPullWithinBlockStaysZeroCopy(t *testing.T) {
	s := newBlockSource([]byte("first block"), []byte("second"))
	ok, err := s.Pull(5, 5)
	if !ok || err != nil {
		t.Fatalf("Pull = %v,%v, want true,nil", ok, err)
	}
	if s.ScratchActive() {
		t.Error("scratch active for a pull inside one block")
	}
	if got := string(s.Peek()); got != "first block" {
		t.Errorf("Peek() = %q, want %q", got, "first block")
	}
}

func TestPullAcrossSeamUsesScratch(t *testing.T) {
	s := newBlockSource([]byte("abcd"), []byte("efgh"), []byte("ij"))
	ok, err := s.Pull(6, 6)
	if !ok || err != nil {
		t.Fatalf("Pull = %v,%v, want true,nil", ok, err)
	}
	if !s.ScratchActive() {
		t.Fatal("pull across a seam did not activate scratch")
	}
	if got := s.Peek(); len(got) < 6 || string(got[:6]) != "abcdef" {
		t.Errorf("Peek() = %q, want prefix %q", got, "abcdef")
	}
	if got := s.Pos(); got != 0 {
		t.Errorf("Pos() = %d, want 0", got)
	}
}

func TestScratchExitsAfterConsumption(t *testing.T) {
	s := newBlockSource([]byte("abcd"), []byte("efgh"))
	if ok, err := s.Pull(6, 6); !ok || err != nil {
		t.Fatalf("Pull = %v,%v, want true,nil", ok, err)
	}
	s.Advance(6)
	// The remaining bytes live in the medium's own window again after the
	// next pull.
	if ok, err := s.Pull(1, 1); !ok || err != nil {
		t.Fatalf("Pull = %v,%v, want true,nil", ok, err)
	}
	if s.ScratchActive() {
		t.Error("scratch still active after consuming past the seam")
	}
	if got := string(s.Peek()); got != "gh" {
		t.Errorf("Peek() = %q, want %q", got, "gh")
	}
}

func TestReadEqualsConcatenation(t *testing.T) {
	blocks := [][]byte{
		[]byte("one "),
		[]byte("two "),
		bytes.Repeat([]byte("three "), 50),
		[]byte("."),
	}
	var want []byte
	for _, b := range blocks {
		want = append(want, b...)
	}
	s := newBlockSource(blocks...)
	got := make([]byte, len(want)+10)
	n, err := s.Read(got)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if n != len(want) || !bytes.Equal(got[:n], want) {
		t.Errorf("Read = %d bytes, want %d matching the concatenation", n, len(want))
	}
	if s.Pos() != uint64(len(want)) {
		t.Errorf("Pos() = %d, want %d", s.Pos(), len(want))
	}
}

func TestShortPullAtEndOfStream(t *testing.T) {
	s := newBlockSource([]byte("abc"), []byte("de"))
	ok, err := s.Pull(10, 10)
	if err != nil {
		t.Fatalf("Pull: %v", err)
	}
	if ok {
		t.Error("Pull(10) over 5 bytes = true, want false")
	}
	// The remainder is still exposed.
	if got := string(s.Peek()); got != "abcde" {
		t.Errorf("Peek() = %q, want %q", got, "abcde")
	}
	s.Advance(5)
	if ok, err := s.Pull(1, 1); ok || err != nil {
		t.Errorf("Pull at end = %v,%v, want false,nil", ok, err)
	}
}

func TestPosAcrossSeams(t *testing.T) {
	s := newBlockSource([]byte("0123"), []byte("4567"))
	if ok, _ := s.Pull(6, 6); !ok {
		t.Fatal("Pull(6) failed")
	}
	s.Advance(3)
	if got := s.Pos(); got != 3 {
		t.Errorf("Pos() = %d, want 3", got)
	}
	s.Advance(3)
	if got := s.Pos(); got != 6 {
		t.Errorf("Pos() = %d, want 6", got)
	}
	rest := make([]byte, 4)
	n, err := s.Read(rest)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if n != 2 || string(rest[:n]) != "67" {
		t.Errorf("Read = %d,%q, want 2,%q", n, rest[:n], "67")
	}
}

func TestSeekBehindScratchUnsupported(t *testing.T) {
	s := newBlockSource([]byte("0123"), []byte("4567"))
	err := s.Seek(6)
	if !errors.Is(err, stream.ErrUnsupported) {
		t.Fatalf("Seek = %v, want ErrUnsupported", err)
	}
}

func TestSizeDelegates(t *testing.T) {
	s := newBlockSource([]byte("0123"), []byte("456"))
	size, err := s.Size()
	if err != nil {
		t.Fatalf("Size: %v", err)
	}
	if size != 7 {
		t.Errorf("Size() = %d, want 7", size)
	}
}

func TestScratchAllocationReused(t *testing.T) {
	blocks := make([][]byte, 8)
	for i := range blocks {
		blocks[i] = bytes.Repeat([]byte{byte('a' + i)}, 4)
	}
	s := newBlockSource(blocks...)
	c := newCountingStats()
	s.SetStats(c)

	// Every pull spans a seam, so scratch is re-entered each time, but the
	// allocation is made once.
	for i := 0; i < 5; i++ {
		if ok, err := s.Pull(6, 6); !ok || err != nil {
			t.Fatalf("Pull %d = %v,%v, want true,nil", i, ok, err)
		}
		s.Advance(6)
	}
	if got := c.count(stats.MetricScratchAllocs); got != 1 {
		t.Errorf("scratch allocations = %d, want 1", got)
	}
}
