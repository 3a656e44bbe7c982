// Package cas fingerprints the inputs of a run so that output can be traced back
// to the exact table transcription and reference data it was derived from.
// Every digest carries both SHA-256 and BLAKE3.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// HashResult contains both SHA-256 and BLAKE3 hashes of a byte stream.
type HashResult struct {
	SHA256 string `json:"sha256"`
	BLAKE3 string `json:"blake3"`
	Size   int64  `json:"size"`
}

// Hasher computes SHA-256 and BLAKE3 over everything written to it.
type Hasher struct {
	sha  hash.Hash
	b3   *blake3.Hasher
	size int64
}

// NewHasher returns an empty Hasher.
func NewHasher() *Hasher {
	return &Hasher{sha: sha256.New(), b3: blake3.New()}
}

// Write implements io.Writer. It never fails.
func (h *Hasher) Write(p []byte) (int, error) {
	h.sha.Write(p)
	h.b3.Write(p)
	h.size += int64(len(p))
	return len(p), nil
}

// Sum returns the digests of the data written so far.
func (h *Hasher) Sum() HashResult {
	return HashResult{
		SHA256: hex.EncodeToString(h.sha.Sum(nil)),
		BLAKE3: hex.EncodeToString(h.b3.Sum(nil)),
		Size:   h.size,
	}
}

// TeeReader returns a reader that hashes everything read through it.
func TeeReader(r io.Reader) (io.Reader, *Hasher) {
	h := NewHasher()
	return io.TeeReader(r, h), h
}

// Sum hashes data.
func Sum(data []byte) HashResult {
	h := NewHasher()
	h.Write(data)
	return h.Sum()
}

// HashFile hashes the bytes of the file at path as stored on disk.
func HashFile(path string) (HashResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return HashResult{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	h := NewHasher()
	if _, err := io.Copy(h, f); err != nil {
		return HashResult{}, fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return h.Sum(), nil
}

// Hash computes the SHA-256 hash of the given data without storing it.
func Hash(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Blake3Hash computes the BLAKE3 hash of the given data without storing it.
func Blake3Hash(data []byte) string {
	h := blake3.Sum256(data)
	return hex.EncodeToString(h[:])
}
