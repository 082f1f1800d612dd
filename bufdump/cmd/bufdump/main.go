package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/performancecopilot/cursorbuf/bufdump"
)

var width = flag.Int("width", bufdump.DefaultWidth, "number of bytes per row")

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: bufdump [-width n] <file>")
		os.Exit(2)
	}

	r, err := bufdump.DumpFile(flag.Arg(0), *width)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if _, err := r.WriteTo(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
