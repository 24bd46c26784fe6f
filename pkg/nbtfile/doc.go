// Package nbtfile loads and saves NBT documents on disk.
//
// NBT files are usually wrapped in a compression container: gzip for
// level.dat and player data, zlib for region chunks. Load detects the
// container from its magic bytes (gzip, zlib, zstd, LZ4 frame, or none),
// unwraps it and decodes the root tag with the nbt package. Save encodes,
// compresses and replaces the target atomically.
//
//	f, err := nbtfile.Load("level.dat", nbtfile.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	// ... modify f.Root ...
//	opts := nbtfile.DefaultOptions()
//	opts.Compression = f.Compression
//	err = nbtfile.Save("level.dat", f.Root, opts)
//
// On Linux and the BSDs files are memory-mapped while decoding; decoded
// tags never reference the mapping, so it is released before Load returns.
package nbtfile
