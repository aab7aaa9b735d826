package halva

import "errors"

// Core constants of the on-disk lexicon format.
//
// The values below are fixed by the wire format (spec §6) and must
// never change: a lexicon written by one version of this package must
// stay readable by every later version that keeps the same magic and
// version number.
const (
	magic   = 1751938657 // fixed format sentinel, big-endian on disk
	version = 1          // format version, big-endian on disk

	blockSize  = 16  // words per block (bucket); must stay a power of two
	maxWordLen = 255 // largest word length, in bytes
	maxSize    = 3 << 20 // conservative guardrail on total serialized size (3 MiB)

	nibbleMax = 15 // largest prefix/suffix length representable in one nibble

	fileHeaderSize = 16 // magic(4) + version(4) + numWords(4) + bodySize(4)
)

// Error taxonomy. Every fallible operation in this package returns one
// of these, an error wrapping ErrIO for an I/O failure, or nil for
// success; none of them wrap one another.
var (
	// ErrWord is returned by Add when the word is empty or longer than
	// maxWordLen bytes.
	ErrWord = errors.New("halva: word is empty or too long")
	// ErrOrder is returned by Add when the word is not strictly
	// greater than the previously added word.
	ErrOrder = errors.New("halva: word added out of order")
	// ErrFrozen is returned by Add when the encoder has already been
	// dumped and not cleared since.
	ErrFrozen = errors.New("halva: encoder is frozen, call Clear first")
	// ErrTooBig is returned by Add when the serialized size of the words
	// already added exceeds the guardrail. The word being added is not
	// counted, so the last accepted word may take the size past it.
	ErrTooBig = errors.New("halva: lexicon has grown too large")
	// ErrMagic is returned by Load when the file's magic does not
	// match, indicating a corrupt or foreign file.
	ErrMagic = errors.New("halva: magic identifier mismatch")
	// ErrVersion is returned by Load when the file's format version is
	// not supported by this package.
	ErrVersion = errors.New("halva: format version mismatch")
	// ErrIO is returned when a read or write fails, including a short
	// read of a truncated file.
	ErrIO = errors.New("halva: IO error")
	// ErrNoMem is returned if a buffer cannot be grown. In practice
	// Go does not surface allocation failure to callers, so this is
	// kept for taxonomy completeness but is not expected to occur.
	ErrNoMem = errors.New("halva: out of memory")
)

// compare returns a negative number if a < b, zero if a == b, and a
// positive number if a > b, comparing byte-lexicographically with
// length as a tiebreaker (a shorter string that is a prefix of a
// longer one is less than it).
func compare(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return len(a) - len(b)
}

// numBlocks returns the number of blocks needed to hold numWords words
// given the fixed blockSize.
func numBlocks(numWords uint32) uint32 {
	return (numWords + blockSize - 1) / blockSize
}

// blockLimit returns the number of words stored in block bkt, which is
// blockSize for every block except possibly the last.
func blockLimit(numWords uint32, bkt uint32) uint32 {
	if bkt+1 == numBlocks(numWords) {
		if high := numWords % blockSize; high != 0 {
			return high
		}
	}
	return blockSize
}
