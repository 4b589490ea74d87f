// Package stream defines the byte-stream contracts every concrete medium
// of the container format implements: a forward sink, a backward sink and
// a forward source, each exposing a contiguous window for zero-copy access.
//
// The Sink, BackwardSink and Source interfaces describe the caller-facing
// contract. SinkBase, BackwardSinkBase and SourceBase implement the window
// bookkeeping and the fast paths; a concrete medium embeds one of them,
// implements the matching medium interface for the slow paths, and binds
// the two with Init. Media whose natural windows are bounded by block
// boundaries build on stream/pushable and stream/pullable instead, which
// add the scratch discipline on top of the same bases.
//
// Instances are not safe for concurrent use; independent instances over
// independent resources are fully independent.
package stream

import "errors"

// Sentinel errors for well-defined stream failures. Operational errors
// returned by media wrap one of these; callers match with errors.Is.
var (
	// ErrClosed indicates an operation on a closed stream.
	ErrClosed = errors.New("stream: closed")

	// ErrResourceExhausted indicates the medium cannot supply more space.
	ErrResourceExhausted = errors.New("stream: resource exhausted")

	// ErrUnsupported indicates an operation the medium does not implement,
	// such as Seek on a forward-only source or Size on an unbounded one.
	ErrUnsupported = errors.New("stream: unsupported operation")

	// ErrOutOfRange indicates a position beyond the known size.
	ErrOutOfRange = errors.New("stream: position out of range")
)

// FlushType selects how far a Flush propagates. The exact durability of
// each degree is defined by the medium; an in-memory medium treats all
// three alike.
type FlushType int

const (
	// FlushInProcess makes data visible to readers within the process.
	FlushInProcess FlushType = iota
	// FlushFromProcess hands data to the operating system.
	FlushFromProcess
	// FlushFromMachine forces data onto durable storage.
	FlushFromMachine
)

// String returns a human-readable name for the flush type.
func (ft FlushType) String() string {
	switch ft {
	case FlushInProcess:
		return "in_process"
	case FlushFromProcess:
		return "from_process"
	case FlushFromMachine:
		return "from_machine"
	default:
		return "unknown_flush_type"
	}
}
