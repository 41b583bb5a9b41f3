package source

import (
	"strings"

	"github.com/segmentio/columnar/compress"
	"github.com/segmentio/columnar/compress/brotli"
	"github.com/segmentio/columnar/compress/gzip"
	"github.com/segmentio/columnar/compress/lz4"
	"github.com/segmentio/columnar/compress/snappy"
	"github.com/segmentio/columnar/compress/uncompressed"
	"github.com/segmentio/columnar/compress/zstd"
)

var (
	// Uncompressed is a codec passing data through unchanged.
	Uncompressed uncompressed.Codec

	// Gzip is the codec of files with the ".gz" extension.
	Gzip gzip.Codec

	// Zstd is the codec of files with the ".zst" extension.
	Zstd zstd.Codec

	// Snappy is the codec of files with the ".sz" extension.
	Snappy snappy.Codec

	// Lz4 is the codec of files with the ".lz4" extension.
	Lz4 lz4.Codec

	// Brotli is the codec of files with the ".br" extension.
	Brotli brotli.Codec

	codecs = [...]compress.Codec{
		&Gzip,
		&Zstd,
		&Snappy,
		&Lz4,
		&Brotli,
	}
)

// CodecOf returns the codec of the file at path, determined by its extension,
// and the path stripped of the codec extension. Files with no known codec
// extension are uncompressed.
func CodecOf(path string) (compress.Codec, string) {
	for _, codec := range codecs {
		if ext := codec.Extension(); strings.HasSuffix(path, ext) {
			return codec, strings.TrimSuffix(path, ext)
		}
	}
	return &Uncompressed, path
}
