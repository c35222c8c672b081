// Package domain defines the core business entities for testgen.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawDocument: Opaque bytes read from an uploaded file
//   - Document: The text extracted from a RawDocument
//   - ControlPoint: A verification statement with its provenance
//   - SimilarityMatrix: Rule by control point cosine scores
//   - TestCase: A structured record verifying one control point
//   - Session: The mutable state of one analyst session
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
