package md2hwpx

import "errors"

// Error kinds surfaced by the library. Everything recoverable (malformed
// Markdown fragments, ragged tables, unresolved footnotes) never errors;
// it degrades locally and surfaces on the Warnings channel instead.
var (
	// ErrConfig covers invalid configuration: unknown presets and
	// out-of-range options. Never retried.
	ErrConfig = errors.New("invalid configuration")

	// ErrEncoding means the input bytes are not valid UTF-8.
	ErrEncoding = errors.New("input is not valid UTF-8")

	// ErrInternal marks an invariant violation inside the pipeline.
	// Seeing it is a bug, not a usage error.
	ErrInternal = errors.New("internal error")
)
