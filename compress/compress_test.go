package compress_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/segmentio/columnar/compress"
	"github.com/segmentio/columnar/compress/brotli"
	"github.com/segmentio/columnar/compress/gzip"
	"github.com/segmentio/columnar/compress/lz4"
	"github.com/segmentio/columnar/compress/snappy"
	"github.com/segmentio/columnar/compress/uncompressed"
	"github.com/segmentio/columnar/compress/zstd"
)

var tests = [...]struct {
	scenario string
	codec    compress.Codec
}{
	{
		scenario: "uncompressed",
		codec:    new(uncompressed.Codec),
	},

	{
		scenario: "snappy",
		codec:    new(snappy.Codec),
	},

	{
		scenario: "gzip",
		codec:    new(gzip.Codec),
	},

	{
		scenario: "brotli",
		codec:    new(brotli.Codec),
	},

	{
		scenario: "zstd",
		codec:    new(zstd.Codec),
	},

	{
		scenario: "lz4",
		codec:    new(lz4.Codec),
	},
}

var random = bytes.Repeat([]byte("1234567890qwertyuiopasdfghjklzxcvbnm"), 1000)

func TestCompressionCodec(t *testing.T) {
	buffer := make([]byte, 0, len(random))
	output := make([]byte, 0, len(random))

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			const N = 10
			// Run the test multiple times to exercise codecs that maintain
			// state across compression/decompression.
			for i := 0; i < N; i++ {
				var err error

				buffer, err = test.codec.Encode(buffer[:0], random)
				if err != nil {
					t.Fatal(err)
				}

				output, err = test.codec.Decode(output[:0], buffer)
				if err != nil {
					t.Fatal(err)
				}

				if !bytes.Equal(random, output) {
					t.Errorf("content mismatch after compressing and decompressing (attempt %d/%d)", i+1, N)
				}
			}
		})
	}
}

func TestCompressionStream(t *testing.T) {
	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			compressed := new(bytes.Buffer)

			w, err := test.codec.NewWriter(compressed)
			if err != nil {
				t.Fatal(err)
			}
			// Write in small chunks to exercise the internal buffering of
			// the codecs.
			for chunk := random; len(chunk) > 0; {
				n := 100
				if n > len(chunk) {
					n = len(chunk)
				}
				if _, err := w.Write(chunk[:n]); err != nil {
					t.Fatal(err)
				}
				chunk = chunk[n:]
			}
			if err := w.Close(); err != nil {
				t.Fatal(err)
			}

			r, err := test.codec.NewReader(compressed)
			if err != nil {
				t.Fatal(err)
			}
			defer r.Close()

			output, err := io.ReadAll(r)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(random, output) {
				t.Error("content mismatch after streaming through the codec")
			}
		})
	}
}

func TestCodecExtensions(t *testing.T) {
	seen := make(map[string]string)
	for _, test := range tests {
		ext := test.codec.Extension()
		if prev, ok := seen[ext]; ok {
			t.Errorf("%s and %s share the extension %q", prev, test.codec, ext)
		}
		seen[ext] = test.codec.String()
	}
}

type simpleReader struct{ io.Reader }

func (s *simpleReader) Close() error            { return nil }
func (s *simpleReader) Reset(r io.Reader) error { s.Reader = r; return nil }

type simpleWriter struct{ io.Writer }

func (s *simpleWriter) Close() error            { return nil }
func (s *simpleWriter) Reset(w io.Writer) error { s.Writer = w; return nil }

func BenchmarkCompressor(b *testing.B) {
	compressor := compress.Compressor{}
	src := make([]byte, 1000)
	dst := make([]byte, 1000)

	allocs := testing.AllocsPerRun(b.N, func() {
		var err error
		dst, err = compressor.Encode(dst, src, func(w io.Writer) (compress.Writer, error) {
			return &simpleWriter{Writer: w}, nil
		})
		if err != nil {
			b.Fatal(err)
		}
	})

	if allocs != 0 {
		b.Errorf("too many memory allocations: %g > 0", allocs)
	}
}

func BenchmarkDecompressor(b *testing.B) {
	decompressor := compress.Decompressor{}
	src := make([]byte, 1000)
	dst := make([]byte, 1000)

	allocs := testing.AllocsPerRun(b.N, func() {
		var err error
		dst, err = decompressor.Decode(dst, src, func(r io.Reader) (compress.Reader, error) {
			return &simpleReader{Reader: r}, nil
		})
		if err != nil {
			b.Fatal(err)
		}
	})

	if allocs != 0 {
		b.Errorf("too many memory allocations: %g > 0", allocs)
	}
}
