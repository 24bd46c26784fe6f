// Package types defines the shared vocabulary of nbtkit: the NBT tag type
// enumeration with its naming table, the typed error taxonomy and the
// decoding limits.
//
// Design goals:
//   - Typed errors with stable categories (format/truncated/size/type/...).
//   - errors.Is matches on category, so detailed errors can wrap a sentinel.
//   - Paranoid bounds; never panic on malformed input.
//
// This package has no dependencies beyond the standard library.
package types
