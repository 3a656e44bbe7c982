package archive

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ulikunitz/xz"
)

// Writer is a buffered, optionally compressed output stream.
// Close must be called to flush the compressor and the file.
type Writer struct {
	buf        *bufio.Writer
	compressor io.WriteCloser
	file       *os.File
}

// Create opens path for writing, compressing by suffix.
// If createParentDir is true, parent directories of path are created.
func Create(path string, createParentDir bool) (*Writer, error) {
	if path == Stdio {
		return NewWriter(os.Stdout, None)
	}

	if createParentDir {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create parent directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	w, err := NewWriter(f, DetectCompression(path))
	if err != nil {
		f.Close()
		return nil, err
	}
	w.file = f
	return w, nil
}

// NewWriter compresses into dst according to c. The caller keeps ownership of dst.
func NewWriter(dst io.Writer, c Compression) (*Writer, error) {
	var target io.Writer = dst
	var compressor io.WriteCloser

	switch c {
	case XZ:
		xzw, err := xz.NewWriter(dst)
		if err != nil {
			return nil, fmt.Errorf("xz writer: %w", err)
		}
		compressor = xzw
	case Gzip:
		compressor = gzip.NewWriter(dst)
	}
	if compressor != nil {
		target = compressor
	}

	return &Writer{buf: bufio.NewWriter(target), compressor: compressor}, nil
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// Close flushes all buffered data and closes the compressor and file.
func (w *Writer) Close() error {
	if w.buf == nil {
		return nil
	}
	err := w.buf.Flush()
	w.buf = nil
	if w.compressor != nil {
		if cerr := w.compressor.Close(); err == nil {
			err = cerr
		}
	}
	if w.file != nil {
		if cerr := w.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
