package trace

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/katalvlaran/tracedtw/dtw"
)

// Codec interns textual tokens into dense ids and moves id streams to
// and from the trace binary format. One codec instance owns one id
// space: ids are assigned in first-seen order starting at 0 and never
// shared across instances. The maps are mutated only while tokenising;
// afterwards the codec is safe for concurrent reads.
type Codec struct {
	tokenToID map[string]dtw.TokenID
	idToToken []string // dense ids index straight into the slice
	largest   int      // longest token text seen so far
}

// NewCodec returns an empty codec.
func NewCodec() *Codec {
	return &Codec{tokenToID: make(map[string]dtw.TokenID)}
}

// TokenToID returns the id of token, assigning the next dense id on
// first sight. The mapping is injective for the codec's lifetime.
func (c *Codec) TokenToID(token string) dtw.TokenID {
	if len(token) > c.largest {
		c.largest = len(token)
	}
	if id, ok := c.tokenToID[token]; ok {
		return id
	}
	id := dtw.TokenID(len(c.idToToken))
	c.tokenToID[token] = id
	c.idToToken = append(c.idToToken, token)

	return id
}

// IDToToken returns the text behind an id assigned by this codec.
func (c *Codec) IDToToken(id dtw.TokenID) (string, error) {
	if id >= dtw.TokenID(len(c.idToToken)) {
		return "", ErrUnknownID
	}

	return c.idToToken[id], nil
}

// LargestTokenLen reports the longest token text the codec has seen;
// the alignment printer pads its columns to this width.
func (c *Codec) LargestTokenLen() int {
	return c.largest
}

// EncodeBin interns every token and writes the id stream to path in
// the trace binary layout. It returns the ids in input order.
func (c *Codec) EncodeBin(tokens []string, path string) ([]dtw.TokenID, error) {
	ids := make([]dtw.TokenID, len(tokens))
	for i, t := range tokens {
		ids[i] = c.TokenToID(t)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "trace: create %s", path)
	}
	bw := bufio.NewWriter(f)
	err = writeTrace(bw, len(ids), func(i int) dtw.TokenID { return ids[i] })
	if err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, errors.Wrapf(err, "trace: write %s", path)
	}

	return ids, nil
}

// Deserialize validates path's header and returns an accessor over its
// id stream: mmap-backed when the platform maps the file, otherwise an
// eager in-memory read. Callers own the accessor and should close it
// when it implements io.Closer.
func (c *Codec) Deserialize(path string) (dtw.Accessor, error) {
	acc, err := OpenMapped(path)
	if err == nil {
		return acc, nil
	}
	// Header problems are final; only mapping failures fall back.
	if errors.Is(err, ErrInvalidMagic) || errors.Is(err, ErrUnsupportedVersion) || errors.Is(err, ErrTruncated) {
		return nil, err
	}

	return readTrace(path)
}

// writeTrace emits the header and count ids supplied by token.
func writeTrace(w io.Writer, count int, token func(int) dtw.TokenID) error {
	var buf [tokenSize]byte
	if _, err := w.Write(traceMagic); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(buf[:4], traceVersion)
	if _, err := w.Write(buf[:4]); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(buf[:4], uint32(count))
	if _, err := w.Write(buf[:4]); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		binary.LittleEndian.PutUint64(buf[:], uint64(token(i)))
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}

	return nil
}

// parseHeader validates the magic, version, and declared length of a
// trace binary and returns the token count.
func parseHeader(data []byte) (int, error) {
	if len(data) < headerSize {
		return 0, ErrTruncated
	}
	for i, b := range traceMagic {
		if data[i] != b {
			return 0, ErrInvalidMagic
		}
	}
	if v := binary.BigEndian.Uint32(data[4:8]); v != traceVersion {
		return 0, errors.Wrapf(ErrUnsupportedVersion, "version 0x%08x", v)
	}
	count := int(binary.LittleEndian.Uint32(data[8:headerSize]))
	if len(data) < headerSize+count*tokenSize {
		return 0, errors.Wrapf(ErrTruncated, "%d tokens declared, %d bytes present", count, len(data)-headerSize)
	}

	return count, nil
}

// readTrace loads a whole trace binary into an in-memory Slice.
func readTrace(path string) (dtw.Accessor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "trace: read %s", path)
	}
	count, err := parseHeader(data)
	if err != nil {
		return nil, err
	}
	s := make(Slice, count)
	for i := range s {
		off := headerSize + i*tokenSize
		s[i] = dtw.TokenID(binary.LittleEndian.Uint64(data[off : off+tokenSize]))
	}

	return s, nil
}
