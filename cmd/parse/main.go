package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"taskmagic/internal/quickadd"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: parse [-now RFC3339] [-pretty] [text...]")
	fmt.Fprintln(os.Stderr, "Parses a quick-add line and prints the extracted patch as JSON.")
	fmt.Fprintln(os.Stderr, "With no text arguments, reads lines from stdin (one patch per line).")
	fmt.Fprintln(os.Stderr, "Lines without markers print null.")
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}

func main() {
	var (
		nowFlag = flag.String("now", "", "pin the reference instant (RFC3339, default: current UTC time)")
		pretty  = flag.Bool("pretty", false, "indent the JSON output")
	)
	flag.Usage = usage
	flag.Parse()

	now := time.Now().UTC()
	if *nowFlag != "" {
		parsed, err := time.Parse(time.RFC3339, *nowFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -now value %q: expected RFC3339\n", *nowFlag)
			os.Exit(2)
		}
		now = parsed.UTC()
	}

	if flag.NArg() > 0 {
		printPatch(os.Stdout, strings.Join(flag.Args(), " "), now, *pretty)
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		printPatch(os.Stdout, scanner.Text(), now, *pretty)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to read stdin: %v\n", err)
		os.Exit(1)
	}
}

// printPatch writes one JSON document per input line. A line with no
// markers encodes as null.
func printPatch(w io.Writer, line string, now time.Time, pretty bool) {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	enc.Encode(quickadd.Parse(line, now))
}
