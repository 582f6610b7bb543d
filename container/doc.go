// Package container implements the JSONB binary container format: the
// header + jentry + payload layout described for arrays, objects and
// scalars, the numeric sub-encoding, the family of zero-parse accessors
// that read typed projections directly off the encoded bytes, and the
// total-order comparator plus its comparable-byte-string projection.
//
// A JSONB buffer is written once by an encoder and read many times by
// accessors that never rebuild a value tree. Decoders never panic: a
// malformed buffer surfaces as an error (or, for probing accessors, as a
// zero value / false / not-found result) rather than a runtime panic.
package container

import "errors"

// ErrTruncated is returned when a read would run past the end of the buffer.
var ErrTruncated = errors.New("container: truncated buffer")

// ErrInvalidUTF8 is returned when a String payload is not valid UTF-8 and is
// being coerced to text.
var ErrInvalidUTF8 = errors.New("container: invalid utf-8")

// ErrInvalidEncoding is returned by decoders when a buffer violates the
// format's invariants: an unknown container kind, a Scalar header whose
// count is not 1, an unknown jentry type code, or a Null/Bool jentry with a
// nonzero length. Jentry lengths that run past the end of the buffer yield
// ErrTruncated instead; bytes left over after the last payload are not
// checked.
var ErrInvalidEncoding = errors.New("container: invalid jsonb encoding")

// ErrTypeMismatch is returned by the to_* coercions when the source value's
// kind cannot be coerced to the requested type.
var ErrTypeMismatch = errors.New("container: type mismatch")
