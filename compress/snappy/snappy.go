// Package snappy implements the snappy framing format codec.
package snappy

import (
	"io"

	"github.com/klauspost/compress/snappy"

	"github.com/segmentio/columnar/compress"
)

type Codec struct {
	r compress.Decompressor
	w compress.Compressor
}

func (c *Codec) String() string { return "SNAPPY" }

func (c *Codec) Extension() string { return ".sz" }

func (c *Codec) NewReader(r io.Reader) (compress.Reader, error) {
	return reader{snappy.NewReader(r)}, nil
}

func (c *Codec) NewWriter(w io.Writer) (compress.Writer, error) {
	return writer{snappy.NewBufferedWriter(w)}, nil
}

func (c *Codec) Encode(dst, src []byte) ([]byte, error) {
	return c.w.Encode(dst, src, c.NewWriter)
}

func (c *Codec) Decode(dst, src []byte) ([]byte, error) {
	return c.r.Decode(dst, src, c.NewReader)
}

type reader struct{ *snappy.Reader }

func (r reader) Close() error             { return nil }
func (r reader) Reset(rr io.Reader) error { r.Reader.Reset(rr); return nil }

type writer struct{ *snappy.Writer }

func (w writer) Reset(ww io.Writer) error { w.Writer.Reset(ww); return nil }
