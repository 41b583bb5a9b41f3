package source

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/segmentio/columnar"
	"github.com/segmentio/columnar/compress"
	"github.com/segmentio/columnar/compress/uncompressed"
)

// Format is an enumeration of the file formats that sources are loaded from.
type Format int

const (
	CSV Format = iota
	TSV
	Parquet
)

func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case TSV:
		return "tsv"
	case Parquet:
		return "parquet"
	default:
		return "unknown"
	}
}

// FormatOf returns the format and codec of the file at path, based on its
// extensions, for example "data.csv.gz" is a gzip compressed CSV file.
func FormatOf(path string) (Format, compress.Codec, error) {
	codec, name := CodecOf(path)
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".csv":
		return CSV, codec, nil
	case ".tsv":
		return TSV, codec, nil
	case ".parquet":
		return Parquet, codec, nil
	default:
		return 0, nil, errors.Wrapf(columnar.ErrInvalidArgument, "unsupported file extension %q of %s", ext, path)
	}
}

// Open loads the frame held in the file at path.
func Open(path string, options ...Option) (*Frame, error) {
	format, codec, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch format {
	case Parquet:
		if _, ok := codec.(*uncompressed.Codec); ok {
			stat, err := f.Stat()
			if err != nil {
				return nil, err
			}
			return ReadParquet(f, stat.Size(), options...)
		}
		// Parquet files need random access, compressed files are expanded
		// in memory.
		compressed, err := io.ReadAll(f)
		if err != nil {
			return nil, err
		}
		data, err := codec.Decode(nil, compressed)
		if err != nil {
			return nil, errors.Wrapf(err, "decompressing %s with %s", path, codec)
		}
		return ReadParquet(bytes.NewReader(data), int64(len(data)), options...)

	default:
		r, err := codec.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "decompressing %s with %s", path, codec)
		}
		defer r.Close()
		if format == TSV {
			options = append([]Option{Comma('\t')}, options...)
		}
		return ReadCSV(r, options...)
	}
}
