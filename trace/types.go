// Package trace defines the wire constants and sentinel errors of the
// trace-binary codec layer.
package trace

import "errors"

// Trace binary layout: magic, big-endian version, little-endian token
// count, then count little-endian 8-byte ids. File length is exactly
// headerSize + count*tokenSize.
const (
	// traceVersion is the only supported binary version.
	traceVersion uint32 = 0x00000001

	// headerSize is magic (4) + version (4) + count (4).
	headerSize = 12

	// tokenSize is the on-disk width of one token id.
	tokenSize = 8
)

// traceMagic opens every trace binary.
var traceMagic = []byte{'d', 't', 'w', 0}

// Sentinel errors for codec validation.
var (
	// ErrInvalidMagic indicates the file does not start with "dtw\0".
	ErrInvalidMagic = errors.New("trace: invalid magic header")

	// ErrUnsupportedVersion indicates a version other than 0x00000001.
	ErrUnsupportedVersion = errors.New("trace: unsupported trace version")

	// ErrTruncated indicates the file is shorter than its header or
	// declared token count requires.
	ErrTruncated = errors.New("trace: truncated trace binary")

	// ErrUnknownID indicates an id this codec instance never assigned.
	ErrUnknownID = errors.New("trace: unknown token id")

	// ErrBadCleaner indicates a cleaner capture group that the cleaner
	// regex does not define.
	ErrBadCleaner = errors.New("trace: cleaner capture group out of range")
)
