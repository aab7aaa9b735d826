// Package halva provides a compact, read-only lexicon: a sorted set
// of unique byte strings ("words") backed by a blocked, front-coded
// binary format supporting three queries — ordinal lookup (word to
// rank), ordinal extraction (rank to word), and ordered iteration
// anchored at either a word or a rank.
//
// # Overview
//
// A lexicon is built once, with words added in strictly increasing
// lexicographic order, and is immutable once serialized. Words are
// grouped into fixed-size blocks; the first word of each block is
// stored in full, and the rest are front-coded against their
// predecessor in the same block (a shared-prefix length and the
// remaining suffix). A table of per-block byte offsets makes binary
// search over block heads, followed by a short linear scan within the
// matched block, the whole story for both lookup and iteration setup.
//
// # When to Use halva
//
// halva is a good fit for:
//   - Static dictionaries and vocabularies of up to a few million
//     words, looked up far more often than rebuilt.
//   - Cases where byte-lexicographic order is exactly the order
//     wanted (no locale-aware collation).
//   - Workloads that care about cache-friendly random access and
//     small resident size over mutability.
//
// # When NOT to Use halva
//
// halva is not suitable for:
//   - Lexicons that need updates after construction — rebuild from
//     scratch instead.
//   - Fuzzy or approximate matching — only exact lookup and ordered
//     range iteration are supported.
//   - Unicode-aware sorting — comparisons are plain byte comparisons.
//
// # Basic Usage
//
//	var enc halva.Encoder
//	for _, w := range [][]byte{[]byte("greenish"), []byte("greenness"), []byte("greens")} {
//	    if err := enc.Add(w); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	var buf bytes.Buffer
//	if err := enc.Dump(&buf); err != nil {
//	    log.Fatal(err)
//	}
//
//	lex, err := halva.Load(&buf)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rank := lex.Locate([]byte("greens")) // 3
//
//	it := halva.NewIterator(lex)
//	for w, ok := it.Next(); ok; w, ok = it.Next() {
//	    fmt.Println(string(w))
//	}
//
// # Performance Characteristics
//
// Locate and the iterator constructors are O(log N) block search plus
// O(B) linear scan, where B is the fixed blocking factor (16). Extract
// is O(B) in the worst case. Next is O(1) amortized. Locate, Extract
// and Next do not allocate; each iterator constructor allocates the
// Iterator it returns.
package halva
