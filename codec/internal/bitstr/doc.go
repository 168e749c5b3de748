// Package bitstr provides internal utilities for textual bit and hex strings.
//
// This package contains the low-level character-class scans, fixed-width
// binary rendering, and nibble tables used by the codec package. It is
// internal to the codec.
package bitstr
