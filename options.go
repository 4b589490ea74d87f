package riegeli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Compression level and window-log bounds. The level ranges mirror the
// native ranges of the codecs; the window log is the generic knob that
// BrotliWindowLog and ZstdWindowLog translate per codec.
const (
	MinBrotliLevel     = 0
	MaxBrotliLevel     = 11
	DefaultBrotliLevel = 6

	MinZstdLevel     = -131072
	MaxZstdLevel     = 22
	DefaultZstdLevel = 3

	MinWindowLog = 10
	MaxWindowLog = 31

	// DefaultBrotliWindowLog is the Brotli window log used when no window
	// log is configured. Zstd has no fixed default; the encoder derives it
	// from the level and the content size.
	DefaultBrotliWindowLog = 22
)

// ErrInvalidOption reports an unknown or out-of-range compression option
// token. It is a recoverable parse failure, unlike the setter panics which
// signal caller bugs.
var ErrInvalidOption = errors.New("riegeli: invalid compression option")

// CompressorOptions selects the codec and tuning used when building a
// compressed chunk. Build one with DefaultCompressorOptions or
// ParseCompressorOptions, optionally adjust it through the setters, then
// hand it to a compressed sink or source; consumers treat the value as
// immutable.
type CompressorOptions struct {
	algorithm Algorithm
	level     int
	windowLog int // 0 when unset, otherwise MinWindowLog..MaxWindowLog
}

// DefaultCompressorOptions returns the default configuration: Brotli at its
// default level, no explicit window log.
func DefaultCompressorOptions() CompressorOptions {
	return CompressorOptions{algorithm: AlgorithmBrotli, level: DefaultBrotliLevel}
}

// ParseCompressorOptions parses a textual option list:
//
//	options    ::= option? ("," option?)*
//	option     ::= "uncompressed" |
//	               "brotli" (":" level)? |
//	               "zstd" (":" level)? |
//	               "snappy" |
//	               "window_log" ":" window_log
//	level      ::= integer (Brotli 0..11 default 6, Zstd -131072..22 default 3)
//	window_log ::= "auto" | integer 10..31
//
// Later options override earlier ones; the algorithm and the window log are
// independent axes. Unknown tokens and out-of-range values are reported
// through an error wrapping ErrInvalidOption that names the offending
// token.
func ParseCompressorOptions(text string) (CompressorOptions, error) {
	opts := DefaultCompressorOptions()
	for _, token := range strings.Split(text, ",") {
		if token == "" {
			continue
		}
		name, arg, hasArg := strings.Cut(token, ":")
		switch name {
		case "uncompressed":
			if hasArg {
				return CompressorOptions{}, fmt.Errorf("%w %q: unexpected argument", ErrInvalidOption, token)
			}
			opts.algorithm = AlgorithmNone
			opts.level = 0
		case "brotli":
			level := DefaultBrotliLevel
			if hasArg {
				var err error
				if level, err = parseInt(token, arg, MinBrotliLevel, MaxBrotliLevel); err != nil {
					return CompressorOptions{}, err
				}
			}
			opts.algorithm = AlgorithmBrotli
			opts.level = level
		case "zstd":
			level := DefaultZstdLevel
			if hasArg {
				var err error
				if level, err = parseInt(token, arg, MinZstdLevel, MaxZstdLevel); err != nil {
					return CompressorOptions{}, err
				}
			}
			opts.algorithm = AlgorithmZstd
			opts.level = level
		case "snappy":
			if hasArg {
				return CompressorOptions{}, fmt.Errorf("%w %q: unexpected argument", ErrInvalidOption, token)
			}
			opts.algorithm = AlgorithmSnappy
			opts.level = 0
		case "window_log":
			if !hasArg {
				return CompressorOptions{}, fmt.Errorf("%w %q: missing value", ErrInvalidOption, token)
			}
			if arg == "auto" {
				opts.windowLog = 0
			} else {
				wl, err := parseInt(token, arg, MinWindowLog, MaxWindowLog)
				if err != nil {
					return CompressorOptions{}, err
				}
				opts.windowLog = wl
			}
		default:
			return CompressorOptions{}, fmt.Errorf("%w %q", ErrInvalidOption, token)
		}
	}
	return opts, nil
}

func parseInt(token, arg string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %q is not an integer", ErrInvalidOption, token, arg)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%w %q: value out of range %d..%d", ErrInvalidOption, token, lo, hi)
	}
	return n, nil
}

// SetUncompressed turns compression off.
func (o *CompressorOptions) SetUncompressed() {
	o.algorithm = AlgorithmNone
	o.level = 0
}

// SetBrotli selects Brotli at the given compression level (higher is denser
// but slower). The level must lie within MinBrotliLevel..MaxBrotliLevel; a
// value outside the range is a caller bug and panics.
func (o *CompressorOptions) SetBrotli(level int) {
	if level < MinBrotliLevel || level > MaxBrotliLevel {
		panic(fmt.Sprintf("riegeli: SetBrotli: level %d out of range %d..%d", level, MinBrotliLevel, MaxBrotliLevel))
	}
	o.algorithm = AlgorithmBrotli
	o.level = level
}

// SetZstd selects Zstd at the given compression level. Level 0 is treated
// by the codec as its default. The level must lie within
// MinZstdLevel..MaxZstdLevel; a value outside the range is a caller bug and
// panics.
func (o *CompressorOptions) SetZstd(level int) {
	if level < MinZstdLevel || level > MaxZstdLevel {
		panic(fmt.Sprintf("riegeli: SetZstd: level %d out of range %d..%d", level, MinZstdLevel, MaxZstdLevel))
	}
	o.algorithm = AlgorithmZstd
	o.level = level
}

// SetSnappy selects Snappy. Snappy has no levels to tune.
func (o *CompressorOptions) SetSnappy() {
	o.algorithm = AlgorithmSnappy
	o.level = 0
}

// SetWindowLog sets the base-2 logarithm of the compression sliding window
// (higher is denser but uses more memory). The value must lie within
// MinWindowLog..MaxWindowLog; a value outside the range is a caller bug and
// panics. Use SetWindowLogAuto to return to the codec default.
func (o *CompressorOptions) SetWindowLog(windowLog int) {
	if windowLog < MinWindowLog || windowLog > MaxWindowLog {
		panic(fmt.Sprintf("riegeli: SetWindowLog: window log %d out of range %d..%d", windowLog, MinWindowLog, MaxWindowLog))
	}
	o.windowLog = windowLog
}

// SetWindowLogAuto clears the window log, letting each codec pick its
// default window size.
func (o *CompressorOptions) SetWindowLogAuto() {
	o.windowLog = 0
}

// Algorithm returns the selected compression algorithm.
func (o CompressorOptions) Algorithm() Algorithm { return o.algorithm }

// Level returns the selected compression level. It is 0 for algorithms
// without levels.
func (o CompressorOptions) Level() int { return o.level }

// WindowLog returns the configured window log and whether one is set.
func (o CompressorOptions) WindowLog() (int, bool) {
	return o.windowLog, o.windowLog != 0
}

// BrotliWindowLog returns the window log to hand to the Brotli encoder,
// substituting DefaultBrotliWindowLog when none is configured.
//
// Calling it while a different algorithm is selected is a caller bug and
// panics.
func (o CompressorOptions) BrotliWindowLog() int {
	if o.algorithm != AlgorithmBrotli {
		panic("riegeli: BrotliWindowLog called with algorithm " + o.algorithm.String())
	}
	if o.windowLog == 0 {
		return DefaultBrotliWindowLog
	}
	return o.windowLog
}

// ZstdWindowLog returns the window log for the Zstd encoder; ok is false
// when the encoder should derive the window from the level and the content
// size.
//
// Calling it while a different algorithm is selected is a caller bug and
// panics.
func (o CompressorOptions) ZstdWindowLog() (windowLog int, ok bool) {
	if o.algorithm != AlgorithmZstd {
		panic("riegeli: ZstdWindowLog called with algorithm " + o.algorithm.String())
	}
	return o.windowLog, o.windowLog != 0
}

// String returns the canonical textual form of the options. Parsing the
// result with ParseCompressorOptions reproduces the value.
func (o CompressorOptions) String() string {
	var b strings.Builder
	switch o.algorithm {
	case AlgorithmNone:
		b.WriteString("uncompressed")
	case AlgorithmBrotli:
		fmt.Fprintf(&b, "brotli:%d", o.level)
	case AlgorithmZstd:
		fmt.Fprintf(&b, "zstd:%d", o.level)
	case AlgorithmSnappy:
		b.WriteString("snappy")
	}
	if o.windowLog != 0 {
		fmt.Fprintf(&b, ",window_log:%d", o.windowLog)
	}
	return b.String()
}
