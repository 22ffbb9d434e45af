package harmonia

import (
	"testing"

	"github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

// Copyright © 2025 Fausto Dasè. Licensed under the MIT license.
/* Comparison benchmarks; run the bench program for the full size ladder and
cycles-per-byte figures. */

const benchSize = 1 << 10

func benchMsg() []byte {
	msg := make([]byte, benchSize)
	for i := range msg {
		msg[i] = byte(i)
	}
	return msg
}

func BenchmarkV2(b *testing.B) {
	msg := benchMsg()
	b.SetBytes(benchSize)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sum256(msg)
	}
}

func BenchmarkFast(b *testing.B) {
	msg := benchMsg()
	b.SetBytes(benchSize)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FastSum256(msg)
	}
}

func BenchmarkNG(b *testing.B) {
	msg := benchMsg()
	b.SetBytes(benchSize)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NGSum256(msg)
	}
}

func BenchmarkNGx4(b *testing.B) {
	msg := benchMsg()
	b.SetBytes(benchSize * 4)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NGSum256x4(msg, msg, msg, msg)
	}
}

func BenchmarkSHA256(b *testing.B) {
	msg := benchMsg()
	b.SetBytes(benchSize)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sha256.Sum256(msg)
	}
}

func BenchmarkBlake3(b *testing.B) {
	msg := benchMsg()
	b.SetBytes(benchSize)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		blake3.Sum256(msg)
	}
}

func BenchmarkXXH3(b *testing.B) {
	msg := benchMsg()
	b.SetBytes(benchSize)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		xxh3.Hash(msg)
	}
}
