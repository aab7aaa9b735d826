package halva

import (
	"bytes"
	"fmt"
)

func Example() {
	words := []string{
		"greenish", "greenness", "greens", "greet",
		"greeting", "greets", "gregarious", "gregariously",
	}

	var enc Encoder
	for _, w := range words {
		if err := enc.Add([]byte(w)); err != nil {
			panic(err)
		}
	}

	var buf bytes.Buffer
	if err := enc.Dump(&buf); err != nil {
		panic(err)
	}

	lex, err := Load(&buf)
	if err != nil {
		panic(err)
	}

	it, _ := NewIteratorAtWord(lex, []byte("greet"))
	for w, ok := it.Next(); ok; w, ok = it.Next() {
		fmt.Println(string(w))
	}
	// Output:
	// greet
	// greeting
	// greets
	// gregarious
	// gregariously
}
