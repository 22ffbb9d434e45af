package main

import (
	. "fmt"
	"runtime"
	"time"

	"github.com/fdase/harmonia"
	"github.com/klauspost/cpuid/v2"
)

// Copyright © 2025 Fausto Dasè. Licensed under the MIT license.
/* Statistical quality driver: monobit bias of digest bits over counter and keystream
inputs, plus the full-size avalanche measurement (1000 messages × 512 single-bit
flips per variant). These are smoke metrics, not security arguments. */

type algorithm struct {
	name string
	sum  func([]byte) [harmonia.Size]byte
}

var algorithms = [...]algorithm{
	{"HARMONIA v2.2", harmonia.Sum256},
	{"HARMONIA-Fast", harmonia.FastSum256},
	{"HARMONIA-NG", harmonia.NGSum256},
}

func main() {
	Printf("Running Statz on %d CPUs (%s)!\n%s/%s\n\n",
		runtime.NumCPU(), cpuid.CPU.BrandName, runtime.GOOS, runtime.GOARCH)
	t := time.Now()

	for _, alg := range algorithms {
		Println(alg.name)
		Printf("  Integer input Monobit test:  %5.3f%%\n", monobit(alg.sum, false))
		Printf("  Random input Monobit test:   %5.3f%%\n", monobit(alg.sum, true))
		mean, sigma := avalanche(alg.sum)
		Printf("  Avalanche:  mean %7.3f bits, σ %6.3f (ideal 128, 8)\n\n", mean, sigma)
	}

	Println("Finished in " + time.Since(t).Truncate(time.Millisecond).String() + ".")
}
