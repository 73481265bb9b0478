// Package feltrun provides the runtime value and type core for a
// statically typed language targeting verifiable computation over the
// Stark prime field (P = 2^251 + 17*2^192 + 1).
//
// The core consists of:
//   - felt: field scalars with wraparound modular arithmetic and field
//     division, plus the boolean carried on field storage
//   - uints: checked fixed-width unsigned integers (8 to 256 bits) whose
//     arithmetic fails closed on overflow and underflow
//   - tuple: fixed-arity immutable aggregates
//   - array: the append-only, write-once sequence container with paired
//     fail-fast and fail-safe accessors
//   - literal: deterministic literal-to-value construction with optional
//     width-suffix dispatch
//   - serde: value serialization to felt sequences and a deterministic
//     binary envelope
//
// The parser, compiler front-end and execution engine consuming these
// values live outside this module.
package feltrun

import (
	"github.com/blang/semver/v4"
)

var Version = semver.MustParse("0.1.0")
