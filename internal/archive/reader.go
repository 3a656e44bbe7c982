// Package archive opens and creates optionally compressed text streams.
// It supports plain, .gz and .xz files; "-" stands for stdin or stdout.
package archive

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
)

// Compression identifies a stream encoding by file suffix.
type Compression int

const (
	// None is an uncompressed stream.
	None Compression = iota
	// Gzip is a .gz stream.
	Gzip
	// XZ is a .xz stream.
	XZ
)

// Stdio is the path that selects stdin or stdout.
const Stdio = "-"

// DetectCompression returns the compression implied by the path suffix.
func DetectCompression(path string) Compression {
	switch {
	case strings.HasSuffix(path, ".xz"):
		return XZ
	case strings.HasSuffix(path, ".gz"):
		return Gzip
	default:
		return None
	}
}

// Reader wraps a decompressed stream and the file beneath it.
type Reader struct {
	io.Reader
	file         io.Closer
	decompressor io.Closer
}

// Open opens path for reading, decompressing .gz and .xz transparently.
func Open(path string) (*Reader, error) {
	if path == Stdio {
		return &Reader{Reader: os.Stdin}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	r, err := NewReader(f, DetectCompression(path))
	if err != nil {
		f.Close()
		return nil, err
	}
	r.file = f
	return r, nil
}

// NewReader decompresses src according to c. The caller keeps ownership of src.
func NewReader(src io.Reader, c Compression) (*Reader, error) {
	var reader io.Reader = src
	var decompressor io.Closer

	switch c {
	case XZ:
		xzr, err := xz.NewReader(src)
		if err != nil {
			return nil, fmt.Errorf("xz reader: %w", err)
		}
		reader = xzr
		decompressor = nil // xz reader doesn't need closing
	case Gzip:
		gzr, err := gzip.NewReader(src)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		reader = gzr
		decompressor = gzr
	}

	return &Reader{Reader: reader, decompressor: decompressor}, nil
}

// Close closes the decompressor and the underlying file, if any.
func (r *Reader) Close() error {
	var errs []error
	if r.decompressor != nil {
		if err := r.decompressor.Close(); err != nil {
			errs = append(errs, err)
		}
		r.decompressor = nil
	}
	if r.file != nil {
		if err := r.file.Close(); err != nil {
			errs = append(errs, err)
		}
		r.file = nil
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// ReadFile reads a whole, possibly compressed, file.
func ReadFile(path string) ([]byte, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
