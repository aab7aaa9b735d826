package halva

// Iterator is a forward cursor over the words of a Lexicon, in
// ascending order. It carries mutable per-cursor state (a resident
// word buffer) and holds a non-owning reference to its Lexicon: the
// caller must ensure the Lexicon outlives every Iterator derived from
// it.
//
// An Iterator is not safe for concurrent use, but distinct Iterators
// over the same Lexicon are independent and may be used concurrently.
type Iterator struct {
	lex *Lexicon
	pos uint32 // rank of the word Next will return next, 1-based minus 1
	off int    // body offset of the record that will produce that word

	word    [maxWordLen]byte
	wordLen int
}

// NewIterator returns an Iterator positioned at the beginning of lex.
func NewIterator(lex *Lexicon) *Iterator {
	return &Iterator{lex: lex, pos: 0, off: 0}
}

// NewIteratorAtRank returns an Iterator that will yield the word at
// 1-based rank and every word after it. It returns the iterator and
// the starting rank, or 0 if rank is 0 or greater than lex.Size(), in
// which case the returned iterator is already exhausted.
func NewIteratorAtRank(lex *Lexicon, rank uint32) (*Iterator, uint32) {
	it := &Iterator{lex: lex}
	if rank == 0 || rank > lex.numWords {
		it.pos = lex.numWords
		return it, 0
	}

	pos := rank - 1
	bkt := pos / blockSize
	rest := pos % blockSize

	head, off := lex.headWord(bkt)
	if rest == 0 {
		it.pos = pos
		it.off = int(lex.buckets[bkt])
		return it, rank
	}

	copy(it.word[:], head)
	for i := uint32(0); i < rest-1; i++ {
		prefLen := int(lex.body[off] & nibbleMax)
		suffLen := int(lex.body[off] >> 4)
		off++
		if suffLen == 0 {
			suffLen = int(lex.body[off])
			off++
		}
		copy(it.word[prefLen:], lex.body[off:off+suffLen])
		off += suffLen
	}
	it.pos = pos
	it.off = off
	return it, rank
}

// NewIteratorAtWord returns an Iterator that will yield every word in
// lex that is >= word, in ascending order. It returns the iterator and
// the rank of the first word that will be yielded (equal to
// lex.Locate(word) when word is present), or 0 if no word in lex is
// >= word, in which case the returned iterator is already exhausted.
func NewIteratorAtWord(lex *Lexicon, word []byte) (*Iterator, uint32) {
	bkt := lex.findBlock(word)
	if bkt == 0 {
		return NewIterator(lex), boolToRank(lex.numWords > 0)
	}
	bkt--

	it := &Iterator{lex: lex}
	head, off := lex.headWord(bkt)
	if compare(head, word) == 0 {
		it.pos = bkt * blockSize
		it.off = int(lex.buckets[bkt])
		return it, it.pos + 1
	}

	curLen := copy(it.word[:], head)
	limit := lex.limit(bkt)
	for pos := uint32(1); pos < limit; pos++ {
		recordOff := off
		prefLen := int(lex.body[off] & nibbleMax)
		suffLen := int(lex.body[off] >> 4)
		off++
		if suffLen == 0 {
			suffLen = int(lex.body[off])
			off++
		}
		copy(it.word[prefLen:], lex.body[off:off+suffLen])
		off += suffLen
		curLen = prefLen + suffLen

		if compare(it.word[:curLen], word) < 0 {
			continue
		}
		it.pos = bkt*blockSize + pos
		it.off = recordOff
		return it, it.pos + 1
	}

	it.pos = (bkt + 1) * blockSize
	it.off = off
	if it.pos >= lex.numWords {
		return it, 0
	}
	return it, it.pos + 1
}

func boolToRank(ok bool) uint32 {
	if ok {
		return 1
	}
	return 0
}

// Next returns the next word in the iteration and true, or (nil,
// false) once the iterator is exhausted. The returned slice is only
// valid until the next call to Next.
func (it *Iterator) Next() ([]byte, bool) {
	if it.pos >= it.lex.numWords {
		return nil, false
	}

	if it.pos%blockSize == 0 {
		n := int(it.lex.body[it.off])
		it.off++
		it.wordLen = copy(it.word[:], it.lex.body[it.off:it.off+n])
		it.off += n
	} else {
		prefLen := int(it.lex.body[it.off] & nibbleMax)
		suffLen := int(it.lex.body[it.off] >> 4)
		it.off++
		if suffLen == 0 {
			suffLen = int(it.lex.body[it.off])
			it.off++
		}
		copy(it.word[prefLen:], it.lex.body[it.off:it.off+suffLen])
		it.off += suffLen
		it.wordLen = prefLen + suffLen
	}

	it.pos++
	return it.word[:it.wordLen], true
}
