package halva

import (
	"encoding/binary"
	"io"
	"os"
)

// Lexicon is a loaded, immutable, read-only lexicon. It is safe for
// concurrent use by multiple readers, provided each owns its own
// Iterator.
type Lexicon struct {
	numWords uint32
	buckets  []uint32 // one offset into body per block, host order
	body     []byte
}

// Load reads a serialized lexicon from r.
//
// Load returns ErrIO on any short read, ErrMagic if the file's magic
// does not match, or ErrVersion if the format version is not
// supported.
func Load(r io.Reader) (*Lexicon, error) {
	var hdr [fileHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, wrapIO(err)
	}

	gotMagic := binary.BigEndian.Uint32(hdr[0:4])
	if gotMagic != magic {
		return nil, ErrMagic
	}
	gotVersion := binary.BigEndian.Uint32(hdr[4:8])
	if gotVersion != version {
		return nil, ErrVersion
	}
	numWords := binary.BigEndian.Uint32(hdr[8:12])
	bodySize := binary.BigEndian.Uint32(hdr[12:16])
	numBkts := numBlocks(numWords)

	rest := make([]byte, int(numBkts)*4+int(bodySize))
	if len(rest) != 0 {
		if _, err := io.ReadFull(r, rest); err != nil {
			return nil, wrapIO(err)
		}
	}

	buckets := make([]uint32, numBkts)
	for i := range buckets {
		buckets[i] = binary.BigEndian.Uint32(rest[i*4:])
	}

	return &Lexicon{
		numWords: numWords,
		buckets:  buckets,
		body:     rest[int(numBkts)*4:],
	}, nil
}

// LoadFile is a convenience wrapper around Load for reading directly
// from an *os.File.
func LoadFile(f *os.File) (*Lexicon, error) {
	return Load(f)
}

// Size returns the number of words in the lexicon.
func (l *Lexicon) Size() int { return int(l.numWords) }

// limit returns the number of words stored in block bkt.
func (l *Lexicon) limit(bkt uint32) uint32 {
	return blockLimit(l.numWords, bkt)
}

// headWord returns the head word of block bkt and the body offset
// immediately following it.
func (l *Lexicon) headWord(bkt uint32) (word []byte, next int) {
	off := int(l.buckets[bkt])
	n := int(l.body[off])
	off++
	return l.body[off : off+n], off + n
}

// findBlock returns k+1, where k is the largest block index such that
// the head word of block k is <= target, using binary search over
// bucket heads. It returns 0 (meaning "no block qualifies") when
// target precedes the very first head word or the lexicon is empty.
func (l *Lexicon) findBlock(target []byte) uint32 {
	low, high := uint32(0), uint32(len(l.buckets))
	for low < high {
		mid := (low + high) / 2
		head, _ := l.headWord(mid)
		if compare(head, target) > 0 {
			high = mid
		} else {
			low = mid + 1
		}
	}
	return low
}

// Locate returns the 1-based rank of word in the lexicon, or 0 if it
// is not present.
func (l *Lexicon) Locate(word []byte) uint32 {
	bkt := l.findBlock(word)
	if bkt == 0 {
		return 0
	}
	bkt--

	head, off := l.headWord(bkt)
	if compare(head, word) == 0 {
		return bkt*blockSize + 1
	}

	var cur [maxWordLen]byte
	curLen := copy(cur[:], head)

	limit := l.limit(bkt)
	for pos := uint32(1); pos < limit; pos++ {
		prefLen := int(l.body[off] & nibbleMax)
		suffLen := int(l.body[off] >> 4)
		off++
		if suffLen == 0 {
			suffLen = int(l.body[off])
			off++
		}
		copy(cur[prefLen:], l.body[off:off+suffLen])
		off += suffLen
		curLen = prefLen + suffLen

		switch cmp := compare(cur[:curLen], word); {
		case cmp == 0:
			return bkt*blockSize + pos + 1
		case cmp > 0:
			return 0
		}
	}
	return 0
}

// Extract writes the word at 1-based rank pos into buf, which must
// have length at least maxWordLen, and returns its length. If pos is
// 0 or greater than Size(), Extract writes nothing and returns 0.
func (l *Lexicon) Extract(pos uint32, buf []byte) int {
	if pos == 0 || pos > l.numWords {
		return 0
	}
	pos--
	bkt := pos / blockSize
	rest := pos % blockSize

	head, off := l.headWord(bkt)
	prefLen := copy(buf, head)
	if rest == 0 {
		return prefLen
	}

	var suffLen int
	for i := uint32(0); i < rest; i++ {
		prefLen = int(l.body[off] & nibbleMax)
		suffLen = int(l.body[off] >> 4)
		off++
		if suffLen == 0 {
			suffLen = int(l.body[off])
			off++
		}
		copy(buf[prefLen:], l.body[off:off+suffLen])
		off += suffLen
	}
	return prefLen + suffLen
}
