package main

import (
	"encoding/binary"
	"math"
	"math/bits"

	"github.com/aead/chacha20/chacha"
	"github.com/fdase/harmonia"
)

// Copyright © 2025 Fausto Dasè. Licensed under the MIT license.

const ints = 1 << 14
const avalancheMsgs = 1000

/* keystream fills dst deterministically; dex selects an independent stream. */
func keystream(dst []byte, dex uint64) {
	var key [chacha.KeySize]byte
	var nonce [chacha.NonceSize]byte
	copy(key[:], "HARMONIA statistical driver keys")
	binary.BigEndian.PutUint64(nonce[:], dex)
	for i := range dst {
		dst[i] = 0
	}
	chacha.XORKeyStream(dst, dst, nonce[:], key[:], 20)
}

/* monobit hashes `ints` inputs and reports the mean per-bit bias of the digest as a
percentage of the expected count; 0% is ideal. */
func monobit(sum func([]byte) [harmonia.Size]byte, random bool) float64 {
	const digestBits = harmonia.Size * 8
	var tally [digestBits]int32

	iBytes, rBytes := make([]byte, 4), make([]byte, 1024)
	for i := uint32(ints); i > 0; i-- {
		var digest [harmonia.Size]byte
		if random {
			keystream(rBytes, uint64(i))
			digest = sum(rBytes)
		} else {
			binary.BigEndian.PutUint32(iBytes, i)
			digest = sum(iBytes)
		}
		for i2 := 0; i2 < digestBits; i2++ {
			if digest[i2>>3]>>(7-i2&7)&1 == 1 {
				tally[i2]++
			}
		}
	}

	var total int32
	for i := range tally {
		tally[i] -= ints >> 1
		if tally[i] < 0 {
			total -= tally[i]
		} else {
			total += tally[i]
		}
	}
	return float64(total) / digestBits / float64(ints>>1) * 100
}

/* avalanche flips every bit of avalancheMsgs one-block messages and returns the mean
and standard deviation of the digest Hamming distances. */
func avalanche(sum func([]byte) [harmonia.Size]byte) (mean, sigma float64) {
	msg := make([]byte, harmonia.BlockSize)
	var total, totalSq, samples float64

	for dex := uint64(0); dex < avalancheMsgs; dex++ {
		keystream(msg, dex)
		base := sum(msg)
		for bit := 0; bit < harmonia.BlockSize*8; bit++ {
			msg[bit>>3] ^= 1 << (bit & 7)
			flipped := sum(msg)
			msg[bit>>3] ^= 1 << (bit & 7)

			distance := 0
			for i := range base {
				distance += bits.OnesCount8(base[i] ^ flipped[i])
			}
			total += float64(distance)
			totalSq += float64(distance * distance)
			samples++
		}
	}

	mean = total / samples
	sigma = math.Sqrt(totalSq/samples - mean*mean)
	return
}
