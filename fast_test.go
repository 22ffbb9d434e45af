package harmonia

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// Copyright © 2025 Fausto Dasè. Licensed under the MIT license.

var fastBoundaries = map[int]string{
	1:   "75a6caa4a513ceec035c29d2671320dea8c5606be1d4dc51178465f0998125d6",
	3:   "c30fc68c05894e9bbd6e6c72e7b831ddde3f6210e85636c024c32128dc9d7ff1",
	55:  "d1de17a3ff609daef044042650e3d9744c8664d8aa04cad141641fb0961e0ec3",
	56:  "23087cc9a86ac47f77ec9b29bd622b63c6d9329452f12b9ddd985f23c1138e54",
	57:  "0cf92db203fc6da32caeaa879baeba1920da3fb10e3bd0c659003bc5d5a63d39",
	63:  "935dd5a47a36a4acf7cb024ba6a45a1505542547ca0f4cd173c3c2da44412dcf",
	64:  "bf488f6811964f05b0ff70cec5da8f984f1ba67037567e8ea281d3705cef2839",
	65:  "9fb3d132349ad753ff7817ea4c73c0dadf9070031d1a2cb4fab15b30a09d5395",
	119: "8b053466a9fec19695c6fabbb38fac4ba74d1a570f97716134c1f5620ea9d4d3",
	120: "27c1f69db873f544038b7026c6d6e55f455c127dac4445269c3677322055ddec",
	127: "6e68a293c10a237929a4e422878b64ef18fdd63f4bc3d9d5f60f463d48f94d9c",
	128: "e0992002daa8edbeef7be5c65b30ae963940d45d33ab1b1108f22d58e44bbb0e",
	129: "fda8da880c592c51a7956d86c1e748c24d12566625a54465f0ca0f0ac0d256b6",
}

const fastStreaming = "c46f65207ae40b83ce830cbc045b1ddcd1c3ce0d3d8ab839da6669e21bae981f"

func TestFastVectors(t *testing.T) {
	for _, v := range fastVectors {
		require.Equal(t, v.want, FastHex([]byte(v.in)), "input %q", v.in)
	}
	require.Equal(t, "67bdf79de649d87db9d5a1798600efe0005d0d542c6a658967736ffba833e439",
		FastHex([]byte("HARMONIA-NG")))
}

func TestFastBoundaries(t *testing.T) {
	for n, want := range fastBoundaries {
		require.Equal(t, want, FastHex(bytes.Repeat([]byte{'a'}, n)), "length %d", n)
	}
}

func TestFastStreaming(t *testing.T) {
	block := bytes.Repeat([]byte{'x'}, 1<<10)
	d := NewFast()
	for i := 0; i < 1<<10; i++ {
		d.Write(block)
	}
	require.Equal(t, fastStreaming, FastHex(bytes.Repeat([]byte{'x'}, 1<<20)))
	var got [Size]byte
	copy(got[:], d.Sum(nil))
	require.Equal(t, FastSum256(bytes.Repeat([]byte{'x'}, 1<<20)), got)
}

/* Round 31 is of type B; a 32nd Fibonacci symbol would make it type A. The digests
above depend on the word as frozen, so guard it. */
func TestFastRoundTypeWord(t *testing.T) {
	require.Equal(t, uint8(0), fastRoundType[31])
	ones := 0
	for _, v := range fastRoundType {
		ones += int(v)
	}
	require.Equal(t, 19, ones)
}
