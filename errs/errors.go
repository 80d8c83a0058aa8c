// Package errs defines the sentinel errors returned by litematic packages.
//
// Errors are always wrapped with call-site context, so callers should match
// them with errors.Is rather than by equality:
//
//	doc, err := nbt.Decode(data)
//	if errors.Is(err, errs.ErrTruncated) {
//	    // input ended early
//	}
package errs

import "errors"

// Codec errors.
var (
	ErrTruncated               = errors.New("truncated input")
	ErrUnknownTagType          = errors.New("unknown tag type")
	ErrInvalidListElementCount = errors.New("invalid list element count")
	ErrInvalidLength           = errors.New("invalid array length")
	ErrInvalidRootType         = errors.New("root tag is not a compound")
	ErrDuplicateKey            = errors.New("duplicate compound key")
	ErrMaxDepthExceeded        = errors.New("maximum nesting depth exceeded")
	ErrInvalidString           = errors.New("invalid modified UTF-8 string")
	ErrStringTooLong           = errors.New("string exceeds 65535 encoded bytes")
	ErrTrailingData            = errors.New("trailing data after root compound")
	ErrUnsupportedCompression  = errors.New("unsupported compression type")
)

// Tag model errors.
var (
	ErrWrongVariant     = errors.New("wrong tag variant")
	ErrTypeMismatch     = errors.New("list element type mismatch")
	ErrIndexOutOfRange  = errors.New("list index out of range")
	ErrNilTag           = errors.New("nil tag")
	ErrInvalidContainer = errors.New("invalid container mode")
)

// File and editing errors.
var (
	ErrLoad        = errors.New("failed to load schematic")
	ErrSave        = errors.New("failed to save schematic")
	ErrInvalidRule = errors.New("invalid replacement rule")
	ErrNoSelection = errors.New("no matching block")
)
