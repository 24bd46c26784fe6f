// Package mmfile provides platform-specific helpers for memory-mapping NBT files.
//
// On Linux and the BSDs the file is mapped read-only with
// golang.org/x/sys/unix; elsewhere it is read into memory. Either way the
// returned cleanup function must be called once the data is no longer
// referenced.
package mmfile
