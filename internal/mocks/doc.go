// Package mocks provides centralized mock implementations for testing.
//
// This package contains mock implementations of interfaces used throughout
// the application, facilitating consistent testing across the codebase.
// Each mock exposes function fields to override behavior per test, plus a
// usable in-memory default implementation. The in-memory defaults are safe
// for concurrent use so tests can exercise parallel callers.
package mocks
