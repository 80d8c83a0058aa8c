// Package compress provides the compression codecs used for schematic
// containers and backup copies.
//
// A litematic file is a tag stream that is either stored as-is or wrapped in
// gzip. The gzip codec therefore doubles as the container codec used by the
// nbt package, while the remaining codecs are offered for backups:
//   - None: plain copy
//   - Gzip: container format, readable by every NBT tool
//   - Zstd: best ratio for archived backups
//   - S2: fastest
//   - LZ4: standard frames, readable by the lz4 CLI
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// GzipCompressor additionally implements StreamDecompressor and
// StreamCompressor so that documents can be decoded and encoded without
// buffering the whole inflated payload, and DecompressPartial for salvaging
// files with a damaged trailer.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(data)
//
// # Thread Safety
//
// All codecs are stateless values backed by package-level pools and are safe
// for concurrent use.
package compress
