// Command bmpinfo prints the header and pixel summary of BMP files.
//
// Usage:
//
//	bmpinfo [-pixels N] [-expect EXPR] file...
//
// Each file is printed as a YAML document. With -expect, every file must
// also satisfy EXPR, a boolean expression over size, offset, end,
// header_size, width, height, bpp, method, method_name, colors and pixels,
// for example "bpp == 32 && pixels == width * -height".
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fumiama/ubmp"
)

func main() {
	samples := flag.Int("pixels", 0, "number of decoded pixels to list")
	expect := flag.String("expect", "", "boolean expression every file must satisfy")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("bmpinfo: ")

	if *samples < 0 {
		log.Fatalf("-pixels must not be negative, got %d", *samples)
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var exp *expectation
	if *expect != "" {
		var err error
		exp, err = newExpectation(*expect)
		if err != nil {
			log.Fatal(err)
		}
	}

	failed := false
	for _, name := range flag.Args() {
		if err := inspect(name, *samples, exp); err != nil {
			log.Print(err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func inspect(name string, samples int, exp *expectation) error {
	bm, err := ubmp.Open(name)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	r := newReport(name, bm, samples)
	out, err := r.marshal()
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	fmt.Printf("---\n%s", out)
	if exp != nil {
		return exp.check(r)
	}
	return nil
}
