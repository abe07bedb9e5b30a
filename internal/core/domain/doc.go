// Package domain defines the core business entities for Kokua.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - CaseRecord: A scraped court case with precomputed verdicts
//   - AttorneyProfile: The filing attorney and party variant
//   - ClientIdentity: The resolved client name renderings
//   - TemplateDescriptor: A template resource with its placeholder tables
//   - FieldValues: The typed record of values injected into templates
//   - ArtifactResult: The per-document outcome of an assembly run
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
