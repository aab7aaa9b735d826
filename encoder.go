package halva

import (
	"encoding/binary"
	"io"
	"os"
)

// Encoder builds a lexicon from a strictly increasing sequence of
// unique words. The zero value is a ready-to-use, empty encoder.
//
// An Encoder is not safe for concurrent use; it is not meant to be
// shared outside of a single build-then-dump sequence.
type Encoder struct {
	header []uint32 // bucket offsets into body, host order
	body   []byte   // packed head/delta records

	prev    [maxWordLen]byte // previous word added, for prefix computation
	prevLen int

	numWords uint32
	dumped   bool // true once Dump has been called; blocks further Add until Clear
}

// growHeader ensures cap(s) can hold at least n more uint32s beyond
// len(s), following the historical growth policy of expanding to
// max(need, old + old/2 + 16).
func growHeader(s []uint32, n int) []uint32 {
	need := len(s) + n
	if need <= cap(s) {
		return s
	}
	newCap := cap(s) + cap(s)/2 + 16
	if newCap < need {
		newCap = need
	}
	grown := make([]uint32, len(s), newCap)
	copy(grown, s)
	return grown
}

// growBody ensures cap(s) can hold at least n more bytes beyond
// len(s), following the same growth policy as growHeader.
func growBody(s []byte, n int) []byte {
	need := len(s) + n
	if need <= cap(s) {
		return s
	}
	newCap := cap(s) + cap(s)/2 + 16
	if newCap < need {
		newCap = need
	}
	grown := make([]byte, len(s), newCap)
	copy(grown, s)
	return grown
}

// projectedSize returns the serialized size the lexicon would have if
// dumped right now (bucket table bytes + body bytes; the fixed
// 16-byte file header is not counted against the guardrail, matching
// the original implementation).
func (e *Encoder) projectedSize() int {
	return len(e.header)*4 + len(e.body)
}

// Add appends a new word to the lexicon being built. Words must be
// added in strictly increasing lexicographic order (see the package's
// comparator) and must be unique; length must be in 1..255.
//
// Add returns ErrFrozen if the encoder has been dumped and not
// cleared, ErrTooBig if the serialized size of the words already added
// exceeds the format's guardrail (the new word is not counted), ErrWord
// if the length is invalid, or ErrOrder if
// the word is not strictly greater than the previously added word.
func (e *Encoder) Add(word []byte) error {
	if e.dumped {
		return ErrFrozen
	}
	if e.projectedSize() > maxSize {
		return ErrTooBig
	}
	if len(word) == 0 || len(word) > maxWordLen {
		return ErrWord
	}
	if compare(e.prev[:e.prevLen], word) >= 0 {
		return ErrOrder
	}

	if e.numWords%blockSize == 0 {
		e.header = growHeader(e.header, 1)
		e.body = growBody(e.body, 1+len(word))
		e.header = append(e.header, uint32(len(e.body)))
		e.body = append(e.body, byte(len(word)))
		e.body = append(e.body, word...)
	} else {
		prefLen := 0
		minLen := len(word)
		if e.prevLen < minLen {
			minLen = e.prevLen
		}
		if minLen > nibbleMax {
			minLen = nibbleMax
		}
		for prefLen < minLen && word[prefLen] == e.prev[prefLen] {
			prefLen++
		}
		suffix := word[prefLen:]

		e.body = growBody(e.body, 2+len(suffix))
		if len(suffix) > nibbleMax {
			e.body = append(e.body, byte(prefLen), byte(len(suffix)))
		} else {
			e.body = append(e.body, byte(prefLen)|byte(len(suffix)<<4))
		}
		e.body = append(e.body, suffix...)
	}

	e.prevLen = copy(e.prev[:], word)
	e.numWords++
	return nil
}

// Dump serializes the lexicon built so far and writes it to w: the
// fixed file header, the bucket table (converted to big-endian), and
// the body. After Dump returns successfully (or with an error), the
// encoder is frozen: further calls to Add return ErrFrozen until
// Clear is called. Dump may be called more than once on a frozen
// encoder and writes identical bytes each time.
//
// Dump returns a non-nil error wrapping ErrIO if any write fails.
func (e *Encoder) Dump(w io.Writer) error {
	e.dumped = true

	var hdr [fileHeaderSize]byte
	binary.BigEndian.PutUint32(hdr[0:4], magic)
	binary.BigEndian.PutUint32(hdr[4:8], version)
	binary.BigEndian.PutUint32(hdr[8:12], e.numWords)
	binary.BigEndian.PutUint32(hdr[12:16], uint32(len(e.body)))
	if _, err := w.Write(hdr[:]); err != nil {
		return wrapIO(err)
	}

	if len(e.header) != 0 {
		buckets := make([]byte, len(e.header)*4)
		for i, off := range e.header {
			binary.BigEndian.PutUint32(buckets[i*4:], off)
		}
		if _, err := w.Write(buckets); err != nil {
			return wrapIO(err)
		}
	}
	if len(e.body) != 0 {
		if _, err := w.Write(e.body); err != nil {
			return wrapIO(err)
		}
	}
	return nil
}

// DumpFile is a convenience wrapper around Dump for writing directly
// to an *os.File.
func (e *Encoder) DumpFile(f *os.File) error {
	return e.Dump(f)
}

// Clear resets the encoder to an empty, unfrozen state, retaining the
// underlying buffer allocations for reuse.
func (e *Encoder) Clear() {
	e.header = e.header[:0]
	e.body = e.body[:0]
	e.prevLen = 0
	e.numWords = 0
	e.dumped = false
}

// ioError wraps an underlying I/O failure while still satisfying
// errors.Is(err, ErrIO).
type ioError struct{ err error }

func wrapIO(err error) error {
	if err == nil {
		return nil
	}
	return &ioError{err}
}

func (e *ioError) Error() string { return ErrIO.Error() + ": " + e.err.Error() }
func (e *ioError) Unwrap() error { return ErrIO }
