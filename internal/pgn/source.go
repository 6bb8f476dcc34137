package pgn

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/inhies/go-bytesize"
	"github.com/klauspost/compress/zstd"
)

// Source is an open PGN file, decompressed when its name ends in .zst or
// .bz2.
type Source struct {
	io.Reader
	Size bytesize.ByteSize // Size of the file on disk

	file   *os.File
	closer func() error // Releases the decompressor, if any
}

// Open opens the PGN file at path.
func Open(path string) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	s := &Source{Reader: file, file: file}
	if stat, err := file.Stat(); err == nil {
		s.Size = bytesize.New(float64(stat.Size()))
	}

	switch {
	case strings.HasSuffix(path, ".zst"):
		dec, err := zstd.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("opening zst %s: %w", path, err)
		}
		s.Reader = dec
		s.closer = func() error {
			dec.Close()
			return nil
		}
	case strings.HasSuffix(path, ".bz2"):
		dec, err := bzip2.NewReader(file, nil)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("opening bzip2 %s: %w", path, err)
		}
		s.Reader = dec
		s.closer = dec.Close
	}
	return s, nil
}

// Close releases the decompressor and closes the file.
func (s *Source) Close() error {
	if s.closer != nil {
		if err := s.closer(); err != nil {
			_ = s.file.Close()
			return err
		}
	}
	return s.file.Close()
}
