package harmonia

import (
	"encoding/binary"
	"math/bits"
	"testing"

	"github.com/aead/chacha20/chacha"
	"github.com/stretchr/testify/require"
)

// Copyright © 2025 Fausto Dasè. Licensed under the MIT license.
/* Avalanche smoke test: flipping any single bit of a one-block message should move
about half of the 256 digest bits. This is a sanity check on the diffusion layers, not
a security claim; statz runs the full-size version. */

/* testMessage fills dst with a deterministic keystream unique to dex. */
func testMessage(dst []byte, dex uint64) {
	var key [chacha.KeySize]byte
	var nonce [chacha.NonceSize]byte
	copy(key[:], "HARMONIA avalanche test messages")
	binary.BigEndian.PutUint64(nonce[:], dex)
	for i := range dst {
		dst[i] = 0
	}
	chacha.XORKeyStream(dst, dst, nonce[:], key[:], 20)
}

func hamming(a, b [Size]byte) (count int) {
	for i := range a {
		count += bits.OnesCount8(a[i] ^ b[i])
	}
	return
}

func testAvalanche(t *testing.T, sum func([]byte) [Size]byte) {
	const messages = 25
	msg := make([]byte, BlockSize)
	total, samples := 0, 0

	for dex := uint64(0); dex < messages; dex++ {
		testMessage(msg, dex)
		base := sum(msg)
		for bit := 0; bit < BlockSize*8; bit++ {
			msg[bit>>3] ^= 1 << (bit & 7)
			total += hamming(base, sum(msg))
			samples++
			msg[bit>>3] ^= 1 << (bit & 7)
		}
	}

	mean := float64(total) / float64(samples)
	require.InDelta(t, 128, mean, 4, "mean avalanche distance")
}

func TestAvalanche(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping avalanche statistics in short mode")
	}
	t.Run("V2", func(t *testing.T) { testAvalanche(t, Sum256) })
	t.Run("Fast", func(t *testing.T) { testAvalanche(t, FastSum256) })
	t.Run("NG", func(t *testing.T) { testAvalanche(t, NGSum256) })
}
