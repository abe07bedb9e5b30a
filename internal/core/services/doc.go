// Package services implements the driving port interfaces.
// Services contain the document assembly engine and the record
// and settings services, and orchestrate calls to driven ports (adapters).
//
// The engine steps (catalog lookup, pruning, substitution, form filling,
// pagination, identity resolution) are plain functions over domain values
// so they can be tested without any adapter.
package services
