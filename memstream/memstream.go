// Package memstream provides stream media backed by a single contiguous
// byte slice: a growable forward sink, a growable backward sink and a
// read-only source. They are the simplest media and the reference against
// which block-based ones are compared.
package memstream

const minBufferSize = 64
