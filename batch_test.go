package harmonia

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// Copyright © 2025 Fausto Dasè. Licensed under the MIT license.

/* The batch path must be indistinguishable from four scalar runs at every padding
residue and block count. */
func TestBatchMatchesScalar(t *testing.T) {
	for _, n := range []int{0, 1, 12, 55, 56, 57, 63, 64, 65, 119, 120, 128, 1000} {
		msgs := make([][]byte, 4)
		for m := range msgs {
			msgs[m] = make([]byte, n)
			for i := range msgs[m] {
				msgs[m][i] = byte(i + m*37)
			}
		}
		got := NGSum256x4(msgs[0], msgs[1], msgs[2], msgs[3])
		for m := range msgs {
			require.Equal(t, NGSum256(msgs[m]), got[m], "length %d, lane %d", n, m)
		}
	}
}

func TestBatchVectors(t *testing.T) {
	/* Four equal-length inputs; "Harmonia" has a published NG digest. */
	in := [][]byte{
		bytes.Repeat([]byte{'a'}, 8),
		[]byte("Harmonia"),
		[]byte("HARMONIA"),
		bytes.Repeat([]byte{'x'}, 8),
	}
	got := NGSum256x4(in[0], in[1], in[2], in[3])
	require.Equal(t, "11cd23650f8fd4818848bc6f09da18b06403ed6f5250447c5d1036730cb8987c",
		NGHex(in[1]))
	for m := range in {
		require.Equal(t, NGSum256(in[m]), got[m])
	}
}

func TestBatchUnequalLengths(t *testing.T) {
	require.Panics(t, func() {
		NGSum256x4([]byte("a"), []byte("ab"), []byte("a"), []byte("a"))
	})
}
