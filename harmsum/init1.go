package main

import (
	"os"

	. "github.com/spf13/pflag"
)

// Copyright © 2025 Fausto Dasè. Licensed under the MIT license.

const n = "\n"

var pAlgorithm = "v2"
var pNoCodesDefault = false
var pHelp, pBase64, pBenchmark, pFiles, pNoCodes, pQuiet, pTest, pTime bool
var yell, purp, und, zero = "\033[33m", "\033[35m", "\033[4m", "\033[0m"

func init() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--no-codes=false":
			pNoCodes = false
		case "--quiet", "--quiet=true":
			pNoCodes, pQuiet = true, true
		case "--no-codes", "--no-codes=true":
			pNoCodes = true
		}
	}
	if pNoCodes {
		yell, purp, und, zero = "", "", "", ""
	}

	BoolVarP(&pHelp, "help", "h", false,
		purp+"print this help menu"+zero+n)

	StringVarP(&pAlgorithm, "algorithm", "a", "v2",
		purp+"select the hash variant: v2, fast or ng"+zero)

	BoolVarP(&pBase64, "base64", "b", false,
		purp+"render digests in base64"+zero+" (default hex)")

	BoolVar(&pBenchmark, "benchmark", false,
		purp+"measure one-shot throughput across block sizes"+zero)

	BoolVarP(&pFiles, "files", "F", false,
		purp+"process arguments as filepaths to be hashed"+zero+
			n+purp+"(default UTF-8 strings)"+zero)

	Bool("no-codes", pNoCodesDefault,
		purp+"print to console w/o formatting codes or simplified"+zero+
			n+purp+"filepaths"+zero)

	Bool("quiet", false,
		purp+"print ONLY digests or breaking errors"+zero+
			" (enables --no-codes)")

	BoolVar(&pTest, "test", false,
		purp+"check the embedded known-answer vectors of every variant"+zero)

	BoolVarP(&pTime, "time", "t", false,
		purp+"print time taken to read and hash each file (with -F)"+zero)

	/* Order flags alphabetically except for help, which is hoisted to the top. */
	CommandLine.SortFlags = false
	Parse()
}
