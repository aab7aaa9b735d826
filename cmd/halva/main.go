// Command halva builds and inspects lexicon files.
//
//	halva create <path>   reads words, one per line, from stdin and
//	                       writes a lexicon to path.
//	halva dump <path>      reads a lexicon from path and writes its
//	                       words, one per line, to stdout.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
	flag "github.com/spf13/pflag"

	"github.com/michaelnmmeyer/halva"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var code int
	switch os.Args[1] {
	case "create":
		code = runCreate(os.Args[2:])
	case "dump":
		code = runDump(os.Args[2:])
	case "-h", "--help":
		usage()
		code = 0
	default:
		fmt.Fprintf(os.Stderr, "halva: unknown command %q\n", os.Args[1])
		usage()
		code = 1
	}
	os.Exit(code)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: halva create <path>")
	fmt.Fprintln(os.Stderr, "       halva dump [--stats] <path>")
}

func die(format string, args ...any) int {
	fmt.Fprintf(os.Stderr, "halva: "+format+"\n", args...)
	return 1
}

// runCreate reads newline-delimited words from stdin and atomically
// writes a lexicon encoding them to path.
func runCreate(args []string) int {
	flagSet := flag.NewFlagSet("create", flag.ContinueOnError)
	if err := flagSet.Parse(args); err != nil {
		return die("%v", err)
	}
	rest := flagSet.Args()
	if len(rest) != 1 {
		return die("wrong number of arguments")
	}
	path := rest[0]

	var enc halva.Encoder
	scanner := bufio.NewScanner(os.Stdin)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		word := scanner.Text()
		if word == "" {
			continue
		}
		if err := enc.Add([]byte(word)); err != nil {
			return die("cannot add word %q at line %d: %v", word, lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return die("reading input: %v", err)
	}

	var buf bytes.Buffer
	if err := enc.Dump(&buf); err != nil {
		return die("cannot dump lexicon: %v", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(buf.Bytes())); err != nil {
		return die("cannot write %q: %v", path, err)
	}
	return 0
}

// runDump reads a lexicon from path and writes its words, one per
// line, to stdout. The --stats flag additionally prints word count
// and file size to stderr before the word list.
func runDump(args []string) int {
	flagSet := flag.NewFlagSet("dump", flag.ContinueOnError)
	stats := flagSet.Bool("stats", false, "print word count and file size to stderr")
	if err := flagSet.Parse(args); err != nil {
		return die("%v", err)
	}
	rest := flagSet.Args()
	if len(rest) != 1 {
		return die("wrong number of arguments")
	}
	path := rest[0]

	f, err := os.Open(path)
	if err != nil {
		return die("cannot open %q: %v", path, err)
	}
	defer f.Close()

	lex, err := halva.LoadFile(f)
	if err != nil {
		return die("cannot load lexicon %q: %v", path, err)
	}

	if *stats {
		info, err := f.Stat()
		if err == nil {
			fmt.Fprintf(os.Stderr, "words: %d, size: %d bytes\n", lex.Size(), info.Size())
		}
	}

	out := bufio.NewWriter(os.Stdout)
	it := halva.NewIterator(lex)
	for word, ok := it.Next(); ok; word, ok = it.Next() {
		if _, err := out.Write(word); err != nil {
			return die("writing output: %v", err)
		}
		if err := out.WriteByte('\n'); err != nil {
			return die("writing output: %v", err)
		}
	}
	if err := out.Flush(); err != nil {
		return die("writing output: %v", err)
	}
	return 0
}
