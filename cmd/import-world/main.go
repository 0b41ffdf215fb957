// Package main provides the import-world binary: convert a legacy text
// world description to the YAML world schema.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mudstone/adventure/internal/game/world"
	"github.com/mudstone/adventure/internal/importer"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [-out path] <worldfile>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	outPath := flag.String("out", "", "output file; empty = stdout")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	w, err := world.LoadFromFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "import-world: %v\n", err)
		os.Exit(1)
	}

	data, err := importer.ToYAML(w)
	if err != nil {
		fmt.Fprintf(os.Stderr, "import-world: %v\n", err)
		os.Exit(1)
	}

	if *outPath == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "import-world: writing %s: %v\n", *outPath, err)
		os.Exit(1)
	}
}
