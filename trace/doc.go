// Package trace turns textual token streams into the compact binary
// form the alignment engine consumes.
//
// 🚀 What lives here?
//
//	The interning codec and the sequence accessors:
//	  • Codec        — bidirectional token↔id maps, first-seen dense ids
//	  • trace binary — "dtw\0" magic, big-endian version, little-endian
//	    count and 8-byte ids; the canonical exchange format between the
//	    tokeniser and the engine
//	  • Slice        — in-memory accessor for small sequences and tests
//	  • Mapped       — mmap-backed accessor for traces far larger than
//	    RAM; halving materialises a temporary sibling binary
//	  • Split        — regex separator and cleaner-regex extraction
//
// ⚙️ Usage:
//
//	codec := trace.NewCodec()
//	tokens, err := trace.Split(text, `\n`, nil)
//	ids, err := codec.EncodeBin(tokens, "run.trace.bin")
//	acc, err := codec.Deserialize("run.trace.bin")
//	defer acc.(io.Closer).Close()
//
// The codec's maps are mutated only while tokenising (single writer)
// and are read-only during alignment rendering. Mapped accessors own
// their kernel mapping and any half-resolution temporaries; Close
// releases both.
package trace
