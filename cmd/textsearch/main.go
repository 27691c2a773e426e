package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/daisyflemming/textsearch/internal/indexer/index"
	"github.com/daisyflemming/textsearch/internal/loader"
	"github.com/daisyflemming/textsearch/internal/searcher/executor"
)

func main() {
	contextWords := flag.Int("context", 3, "words of context on each side of a match")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: textsearch [-context n] <document> [word]")
		fmt.Fprintln(os.Stderr, "       textsearch [-context n] <document>          (interactive mode)")
		os.Exit(1)
	}

	document, err := loader.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading document: %v\n", err)
		os.Exit(1)
	}
	exec := executor.New(index.Build(document))

	// One-shot lookup when a word is given on the command line.
	if len(args) > 1 {
		printContexts(exec.Search(args[1], *contextWords))
		return
	}

	fmt.Printf("Indexed %d words from %s\n", exec.WordCount(), args[0])
	fmt.Println("Type a word to search, optionally followed by a context width. Ctrl+D to exit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		n := *contextWords
		if len(fields) > 1 {
			if parsed, err := strconv.Atoi(fields[1]); err == nil {
				n = parsed
			}
		}
		printContexts(exec.Search(fields[0], n))
	}
}

func printContexts(contexts []string) {
	if len(contexts) == 0 {
		fmt.Println("no matches")
		return
	}
	for i, c := range contexts {
		fmt.Printf("%d: %s\n", i+1, c)
	}
}
