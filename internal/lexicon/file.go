// Package lexicon opens dictionary files, plain or compressed.
package lexicon

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Load reads the dictionary at path, keeping only words of the given length.
// Files ending in .gz, .zst or .lz4 are decompressed transparently.
func Load(path string, length int, opts ...Option) (*Lexicon, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only dictionary.
			_ = cerr
		}
	}()

	r, closeFn, err := decompress(path, file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreadable, path, err)
	}
	defer closeFn()

	return Read(r, length, opts...)
}

func decompress(path string, r io.Reader) (io.Reader, func(), error) {
	noop := func() {}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, noop, err
		}
		return zr, func() { _ = zr.Close() }, nil
	case ".zst":
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, noop, err
		}
		return dec, dec.Close, nil
	case ".lz4":
		return lz4.NewReader(r), noop, nil
	default:
		return r, noop, nil
	}
}
