package trace

import (
	"bufio"
	"encoding/binary"
	"os"
	"path/filepath"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"

	"github.com/katalvlaran/tracedtw/dtw"
)

// Mapped is a sequence accessor backed by a read-only file mapping of
// a trace binary, so traces far larger than RAM page in on demand.
// Half materialises a temporary sibling binary owned by the child
// accessor; Close unmaps the file and deletes owned temporaries.
type Mapped struct {
	path  string
	file  *os.File
	data  mmap.MMap
	count int
	temp  bool // the backing file is ours to delete on Close
}

// OpenMapped maps path read-only and validates its header. A mapping
// failure is returned wrapped (callers may fall back to an eager
// read); a header failure is returned as its sentinel.
func OpenMapped(path string) (*Mapped, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "trace: open %s", path)
	}
	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		_ = f.Close()

		return nil, errors.Wrapf(err, "trace: map %s", path)
	}
	count, err := parseHeader(data)
	if err != nil {
		_ = data.Unmap()
		_ = f.Close()

		return nil, err
	}

	return &Mapped{path: path, file: f, data: data, count: count}, nil
}

// Len reports the number of tokens in the mapped trace.
func (m *Mapped) Len() int {
	return m.count
}

// At reads the 8-byte little-endian token at index i, straight from
// the mapping past the 12-byte header.
func (m *Mapped) At(i int) dtw.TokenID {
	off := headerSize + i*tokenSize

	return dtw.TokenID(binary.LittleEndian.Uint64(m.data[off : off+tokenSize]))
}

// Half writes the even-indexed tokens into a temporary sibling binary
// keyed by the parent's name and returns a Mapped accessor that owns
// it: closing the child unmaps and deletes the temporary.
func (m *Mapped) Half() (dtw.Accessor, error) {
	half := m.count / 2
	f, err := os.CreateTemp(filepath.Dir(m.path), filepath.Base(m.path)+".half-*")
	if err != nil {
		return nil, errors.Wrapf(err, "trace: half of %s", m.path)
	}
	bw := bufio.NewWriter(f)
	err = writeTrace(bw, half, func(i int) dtw.TokenID { return m.At(2 * i) })
	if err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(f.Name())

		return nil, errors.Wrapf(err, "trace: half of %s", m.path)
	}

	child, err := OpenMapped(f.Name())
	if err != nil {
		_ = os.Remove(f.Name())

		return nil, err
	}
	child.temp = true

	return child, nil
}

// Path reports the file backing this accessor.
func (m *Mapped) Path() string {
	return m.path
}

// Close releases the mapping and the file handle, and removes the
// backing file when this accessor owns a materialised temporary.
func (m *Mapped) Close() error {
	err := m.data.Unmap()
	if cerr := m.file.Close(); err == nil {
		err = cerr
	}
	if m.temp {
		if rerr := os.Remove(m.path); err == nil {
			err = rerr
		}
	}

	return err
}
