// Package filesystem provides directory-backed implementations of the
// template source and artifact sink ports.
package filesystem
