// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - TemplateSource: Loads template resources by name
//   - ArchivePatcher: Rewrites one markup part of a zip document container
//   - FormEngine: Opens fillable forms for field filling and page appends
//   - ArtifactSink: Saves finished documents
//   - RecordStore: Key/value persistence for case and profile records
//   - RunHistory: Finished batch reports, newest first
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or renderer package
package driven
