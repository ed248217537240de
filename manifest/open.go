package manifest

import (
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeInvalid DataType = iota
	DataTypeNoCompression
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZ
	DataTypeBZip2
	DataTypeZlib
)

// Byte code signatures from https://stackoverflow.com/a/19127748/199475
var byteCodeSigs = map[DataType][]byte{
	DataTypeGzip:  {0x1f, 0x8b, 0x08},
	DataTypeZip:   {0x50, 0x4b, 0x03, 0x04},
	DataTypeXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	DataTypeZ:     {0x1f, 0x9d},
	DataTypeBZip2: {0x42, 0x5a, 0x68},
	DataTypeZlib:  {0x78, 0x9c},
}

// DetectDataType matches the first bytes of a stream against known
// compression signatures.
func DetectDataType(header []byte) DataType {
Outer:
	for dt, sig := range byteCodeSigs {
		if len(header) < len(sig) {
			continue
		}
		for position := range sig {
			if header[position] != sig[position] {
				continue Outer
			}
		}
		return dt
	}

	return DataTypeNoCompression
}

// Open opens a manifest from local disk or, if client is non-nil and the
// path starts with gs://, from Google Storage. Compressed manifests are
// decompressed transparently.
func Open(ctx context.Context, path string, client *storage.Client) (io.ReadCloser, error) {
	raw, err := openRaw(ctx, path, client)
	if err != nil {
		return nil, err
	}

	rc, err := maybeDecompress(raw)
	if err != nil {
		raw.Close()
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	return rc, nil
}

func openRaw(ctx context.Context, path string, client *storage.Client) (io.ReadCloser, error) {
	if client != nil && strings.HasPrefix(path, "gs://") {
		// Detect the bucket and the path to the actual file
		pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
		if len(pathParts) != 2 {
			return nil, fmt.Errorf("Tried to split your google storage path into 2 parts, but got %d: %v", len(pathParts), pathParts)
		}

		r, err := client.Bucket(pathParts[0]).Object(pathParts[1]).NewReader(ctx)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
		}

		return r, nil
	}

	f, err := os.Open(ExpandHome(path))
	if err != nil {
		return nil, pfx.Err(err)
	}

	return f, nil
}

func maybeDecompress(raw io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReader(raw)

	// Short files simply yield a short header; EOF here is not an error.
	header, err := br.Peek(6)
	if err != nil && err != io.EOF {
		return nil, err
	}

	switch DetectDataType(header) {
	case DataTypeGzip:
		r, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return &stackedCloser{Reader: r, closers: []io.Closer{r, raw}}, nil
	case DataTypeZip:
		// Only the first entry of the archive is read
		r := zipstream.NewReader(br)
		if _, err := r.Next(); err != nil {
			return nil, err
		}
		return &stackedCloser{Reader: r, closers: []io.Closer{raw}}, nil
	case DataTypeBZip2:
		return &stackedCloser{Reader: bzip2.NewReader(br), closers: []io.Closer{raw}}, nil
	case DataTypeXZ:
		r, err := xz.NewReader(br, 0)
		if err != nil {
			return nil, err
		}
		return &stackedCloser{Reader: r, closers: []io.Closer{raw}}, nil
	case DataTypeZ:
		return nil, fmt.Errorf("unix compress (.Z) manifests are not supported")
	case DataTypeZlib:
		r, err := zlib.NewReader(br)
		if err != nil {
			return nil, err
		}
		return &stackedCloser{Reader: r, closers: []io.Closer{r, raw}}, nil
	}

	// No data type detected. For now, we assume this is uncompressed.
	return &stackedCloser{Reader: br, closers: []io.Closer{raw}}, nil
}

// stackedCloser closes the decompressor before the underlying source.
type stackedCloser struct {
	io.Reader
	closers []io.Closer
}

func (c *stackedCloser) Close() error {
	var first error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}
