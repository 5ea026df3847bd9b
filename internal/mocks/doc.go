// Package mocks provides centralized mock implementations for testing.
//
// This package contains mock implementations of the store and auth
// interfaces used throughout the application, so individual test files
// can share one set of in-memory fakes instead of redefining them.
// Each mock offers function fields for custom behavior per test, backed
// by a map-based default implementation.
package mocks
