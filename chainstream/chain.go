// Package chainstream provides stream media over a chain of byte blocks.
// A sink fills fixed-size blocks and appends them to the chain; a source
// exposes each block as a zero-copy window, stitching across block seams
// through scratch when a request spans one.
package chainstream

// DefaultBlockSize is the block size used when a sink is created with a
// non-positive one.
const DefaultBlockSize = 4 << 10

// Chain is an ordered sequence of non-empty byte blocks. It is the
// backing storage shared by a Sink that builds it and Sources that read
// it.
type Chain struct {
	blocks [][]byte
	size   uint64
}

// NewChain creates a chain over the given blocks. Empty blocks are
// skipped. The chain aliases the slices; callers must not mutate them.
func NewChain(blocks ...[]byte) *Chain {
	c := &Chain{}
	for _, b := range blocks {
		c.append(b)
	}
	return c
}

func (c *Chain) append(b []byte) {
	if len(b) == 0 {
		return
	}
	c.blocks = append(c.blocks, b)
	c.size += uint64(len(b))
}

// Size returns the total number of bytes in the chain.
func (c *Chain) Size() uint64 { return c.size }

// Blocks returns the number of blocks in the chain.
func (c *Chain) Blocks() int { return len(c.blocks) }

// Bytes flattens the chain into a single slice.
func (c *Chain) Bytes() []byte {
	out := make([]byte, 0, c.size)
	for _, b := range c.blocks {
		out = append(out, b...)
	}
	return out
}
