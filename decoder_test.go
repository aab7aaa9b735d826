package halva

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildLexicon(t *testing.T, words []string) *Lexicon {
	t.Helper()
	var enc Encoder
	for _, w := range words {
		require.NoError(t, enc.Add([]byte(w)))
	}
	var buf bytes.Buffer
	require.NoError(t, enc.Dump(&buf))
	lex, err := Load(&buf)
	require.NoError(t, err)
	return lex
}

var scenario1Words = []string{
	"greenish", "greenness", "greens", "greet",
	"greeting", "greets", "gregarious", "gregariously",
}

func TestLocateAndExtractScenario1(t *testing.T) {
	lex := buildLexicon(t, scenario1Words)
	require.Equal(t, 8, lex.Size())
	require.EqualValues(t, 4, lex.Locate([]byte("greet")))

	buf := make([]byte, maxWordLen)
	n := lex.Extract(6, buf)
	require.Equal(t, "greets", string(buf[:n]))
}

func TestLocateEveryWord(t *testing.T) {
	lex := buildLexicon(t, scenario1Words)
	for i, w := range scenario1Words {
		require.EqualValues(t, i+1, lex.Locate([]byte(w)), "word %q", w)
	}
}

func TestLocateAbsentWord(t *testing.T) {
	lex := buildLexicon(t, scenario1Words)
	for _, w := range []string{"a", "green", "greeny", "greeu", "zzz", "gregariousness"} {
		require.EqualValues(t, 0, lex.Locate([]byte(w)), "word %q", w)
	}
}

func TestExtractRoundTrip(t *testing.T) {
	lex := buildLexicon(t, scenario1Words)
	buf := make([]byte, maxWordLen)
	for i, w := range scenario1Words {
		n := lex.Extract(uint32(i+1), buf)
		require.Equal(t, w, string(buf[:n]))
	}
}

func TestExtractOutOfRange(t *testing.T) {
	lex := buildLexicon(t, scenario1Words)
	buf := make([]byte, maxWordLen)
	require.Equal(t, 0, lex.Extract(0, buf))
	require.Equal(t, 0, lex.Extract(uint32(lex.Size()+1), buf))
}

func TestEmptyLexicon(t *testing.T) {
	lex := buildLexicon(t, nil)
	require.Equal(t, 0, lex.Size())
	require.EqualValues(t, 0, lex.Locate([]byte("anything")))

	buf := make([]byte, maxWordLen)
	require.Equal(t, 0, lex.Extract(1, buf))

	it := NewIterator(lex)
	_, ok := it.Next()
	require.False(t, ok)
}

func TestSingleWordLexicon(t *testing.T) {
	lex := buildLexicon(t, []string{"a"})
	require.Equal(t, 1, lex.Size())
	require.EqualValues(t, 1, lex.Locate([]byte("a")))
	require.EqualValues(t, 0, lex.Locate([]byte("b")))

	buf := make([]byte, maxWordLen)
	n := lex.Extract(1, buf)
	require.Equal(t, "a", string(buf[:n]))
}

func wordsAA(n int) []string {
	words := make([]string, n)
	for i := 0; i < n; i++ {
		words[i] = string(rune('a')) + string(rune('a'+i))
	}
	return words
}

func TestExactlyOneBlock(t *testing.T) {
	words := wordsAA(blockSize)
	lex := buildLexicon(t, words)
	require.Equal(t, blockSize, lex.Size())
	for i, w := range words {
		require.EqualValues(t, i+1, lex.Locate([]byte(w)))
	}
}

func TestBlockPlusOne(t *testing.T) {
	words := wordsAA(blockSize + 1)
	lex := buildLexicon(t, words)
	require.Equal(t, blockSize+1, lex.Size())
	require.EqualValues(t, blockSize+1, lex.Locate([]byte(words[blockSize])))
}

func TestSeventeenWordsBinarySearch(t *testing.T) {
	words := make([]string, 17)
	for i := 0; i < 17; i++ {
		words[i] = "a" + string(rune('a'+i))
	}
	lex := buildLexicon(t, words)
	require.EqualValues(t, 17, lex.Locate([]byte(words[16])))
}

func TestMaxLengthWord(t *testing.T) {
	word := bytes.Repeat([]byte("z"), maxWordLen)
	lex := buildLexicon(t, []string{"a", string(word)})
	require.EqualValues(t, 2, lex.Locate(word))

	buf := make([]byte, maxWordLen)
	n := lex.Extract(2, buf)
	require.Equal(t, word, buf[:n])
}

func TestLoadBadMagic(t *testing.T) {
	lex := buildLexicon(t, []string{"a"})
	var buf bytes.Buffer
	var enc Encoder
	require.NoError(t, enc.Add([]byte("a")))
	require.NoError(t, enc.Dump(&buf))
	_ = lex

	data := buf.Bytes()
	corrupted := append([]byte{}, data...)
	corrupted[0] ^= 0xFF
	_, err := Load(bytes.NewReader(corrupted))
	require.ErrorIs(t, err, ErrMagic)
}

func TestLoadBadVersion(t *testing.T) {
	var enc Encoder
	require.NoError(t, enc.Add([]byte("a")))
	var buf bytes.Buffer
	require.NoError(t, enc.Dump(&buf))

	data := append([]byte{}, buf.Bytes()...)
	data[7] = 0xFF // version's low byte
	_, err := Load(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrVersion)
}

func TestLoadTruncated(t *testing.T) {
	var enc Encoder
	require.NoError(t, enc.Add([]byte("a")))
	var buf bytes.Buffer
	require.NoError(t, enc.Dump(&buf))

	truncated := buf.Bytes()[:10]
	_, err := Load(bytes.NewReader(truncated))
	require.ErrorIs(t, err, ErrIO)
}
