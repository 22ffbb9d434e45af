package main

import (
	"encoding/base64"
	"encoding/hex"
	. "fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fdase/harmonia"
	"github.com/p7r0x7/vainpath"
	. "github.com/spf13/pflag"
)

// Copyright © 2025 Fausto Dasè. Licensed under the MIT license.

const success, failure, invalid = 0, 1, 2

var warnings = 0

func main() { os.Exit(program()) }

// help prints a usage menu and quietly exits if no non-flag arguments are given. To
// consistently correctly render this menu in most terminal windows, its content should
// be no wider than 80 columns.
func help() {
	origin, err := os.Executable()
	if err != nil {
		origin = "harmsum" /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(os.Stderr, yell, "The golden-ratio hash function family.", zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h]"+n,
		spaces, "[--test|benchmark] [-a v2|fast|ng]"+n,
		spaces, "[-bt] [-a <name>] [--quiet|no-codes] STRING..."+n,
		spaces, "[-bt] [-a <name>] [--quiet|no-codes] -F -|PATH..."+n+n+
			"Options:"+n)
	PrintDefaults()
	Fprint(os.Stderr, n+"Order of arguments placed after `", name, "` does not matter unless `--` is"+
		n+"specified, signaling the end of parsed flags. Long-form flag equivalents are"+n+
		"above. With `-F`, `-` is treated as a reference to ", os.Stdin.Name(), "."+n)
}

// This program is a command-line interface for the harmonia library: It handles various
// flags and an unlimited number of arguments, hashing strings or files as required by
// the command-line operator.
func program() int {
	if pHelp || NArg() == 0 && !pTest && !pBenchmark {
		help()
		return success
	}

	var sum func([]byte) [harmonia.Size]byte
	switch pAlgorithm {
	case "v2":
		sum = harmonia.Sum256
	case "fast":
		sum = harmonia.FastSum256
	case "ng":
		sum = harmonia.NGSum256
	default:
		Fprint(os.Stderr, purp, "Unknown algorithm: ", pAlgorithm, zero, n)
		return invalid
	}

	if pTest {
		return selfTest()
	}
	if pBenchmark {
		benchmark(sum)
		return success
	}

	for _, target := range Args() {
		start, delta := time.Now(), ""
		var message []byte

		if !pFiles {
			message = []byte(target)
		} else if target == "-" || target == os.Stdin.Name() {
			var err error
			if message, err = io.ReadAll(os.Stdin); err != nil {
				warn()
				continue
			}
		} else {
			var err error
			if message, err = os.ReadFile(target); err != nil {
				warn()
				continue
			}
		}

		digest := sum(message)
		if pTime {
			d := time.Since(start)
			if d.Microseconds() > 99 {
				d = d.Truncate(10 * time.Microsecond)
			}
			delta = " (" + d.String() + ")"
		}

		str := hex.EncodeToString(digest[:])
		if pBase64 {
			str = base64.StdEncoding.EncodeToString(digest[:])
		}

		switch {
		case pQuiet || !pFiles:
			Println(str)
		case pNoCodes:
			Print(str, `  `, filepath.Clean(target), delta, n)
		default:
			Print(yell, str, zero, `  `, und, vainpath.Simplify(target), zero, delta, n)
		}
	}

	if !pQuiet {
		if warnings == 1 {
			Fprint(os.Stderr, "1 ", purp, "target is a directory or is otherwise inaccessible.", zero, n)
		} else if warnings > 1 {
			Fprint(os.Stderr, warnings, " ", purp, "targets are directories or are otherwise inaccessible.", zero, n)
		}
	}
	if warnings > 0 {
		return failure
	}
	return success
}

// selfTest checks every variant against its embedded vectors, reporting the offending
// input and digests on mismatch.
func selfTest() int {
	code := success
	for _, check := range []func() error{
		harmonia.SelfTest, harmonia.FastSelfTest, harmonia.NGSelfTest,
	} {
		if err := check(); err != nil {
			Fprint(os.Stderr, purp, err.Error(), zero, n)
			code = failure
		}
	}
	if code == success {
		Println(yell + "PASS" + zero)
	} else {
		Fprint(os.Stderr, purp, "FAIL", zero, n)
	}
	return code
}

// benchmark prints one-shot throughput for the selected variant across the classic
// block-size ladder.
func benchmark(sum func([]byte) [harmonia.Size]byte) {
	sizes := [...]struct {
		label string
		size  int
		iters int
	}{
		{"Small (64 B)", 64, 100000},
		{"Medium (1 KB)", 1 << 10, 50000},
		{"Large (10 KB)", 10 << 10, 5000},
		{"XL (100 KB)", 100 << 10, 500},
		{"XXL (1 MB)", 1 << 20, 50},
	}

	Printf("%s-%s\n", "HARMONIA", pAlgorithm)
	for _, v := range sizes {
		data := make([]byte, v.size)
		for i := range data {
			data[i] = 'x'
		}
		for i := 0; i < 10; i++ {
			sum(data) /* Warmup */
		}

		start := time.Now()
		for i := 0; i < v.iters; i++ {
			sum(data)
		}
		elapsed := time.Since(start).Seconds()

		throughput := float64(v.size*v.iters) / elapsed / (1 << 20)
		Printf("  %-14s %8d bytes x %6d = %8.2f MiB/s  (%.4f ms/hash)\n",
			v.label, v.size, v.iters, throughput, elapsed/float64(v.iters)*1000)
	}
}

func warn() { warnings++ }
