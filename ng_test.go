package harmonia

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// Copyright © 2025 Fausto Dasè. Licensed under the MIT license.

var ngBoundaries = map[int]string{
	1:   "6ff65519171d9c9083efce854a1219ce601d8b8e3780bde42a32174a84129362",
	3:   "741b8cc22b7d009a3a50f8b047daffbf9349decba044dfd8b67006866aa3f893",
	55:  "d0140997f4268ea435a742f6676dc0431427fb2fffc4b001662dcdbaa8ac2171",
	56:  "1306549951681882c4e44ea89f98c8c3625c33d9d37fb8678aa6ce034e805a83",
	57:  "1a230f40dccac7a80b0450ef1456cadd1d36a5868b3b530b54a7e4f8a8889ce2",
	63:  "03ec8215d39dd61ffbebc1713ac922c2740e116ff3e915fb1ee319e0eb263458",
	64:  "c2e5998a7bb59d2148ce7722a1db5e08b17f2e4410b068ca646f116f7c408b2b",
	65:  "21952400feff496fbe3dbe61f82e9fabb469cd0b862d852fe901b70e5fd36aba",
	119: "5d46bc1049090af80f2bf9c19b5a0749735194bcbb6e7757f4731260420dc2cc",
	120: "f2d43089b76566b84176ec96fd996c08fb1f42053ac6b093f6cf617a849442f1",
	127: "94ae0407e926ae84cf17e76e42caf32c46aa235ac76026dea87e869d1d01ab57",
	128: "5918456aedcfe2f0ef766be239626c0fc11def8f9eb260b01f7d167d14c524a4",
	129: "dac785d76e89d49beed73680fb4843c76ade11b1b231cf3d9a2a66ab02af34f9",
}

const ngStreaming = "becdd6d233d469a02fc469674057616f0709074f7c9defe093f0a85503df5475"

func TestNGVectors(t *testing.T) {
	for _, v := range ngVectors {
		require.Equal(t, v.want, NGHex([]byte(v.in)), "input %q", v.in)
	}
}

func TestNGBoundaries(t *testing.T) {
	for n, want := range ngBoundaries {
		require.Equal(t, want, NGHex(bytes.Repeat([]byte{'a'}, n)), "length %d", n)
	}
}

func TestNGStreaming(t *testing.T) {
	block := bytes.Repeat([]byte{'x'}, 1<<10)
	d := NewNG()
	for i := 0; i < 1<<10; i++ {
		d.Write(block)
	}
	require.Equal(t, ngStreaming, NGHex(bytes.Repeat([]byte{'x'}, 1<<20)))
	var got [Size]byte
	copy(got[:], d.Sum(nil))
	require.Equal(t, NGSum256(bytes.Repeat([]byte{'x'}, 1<<20)), got)
}
