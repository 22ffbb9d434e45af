package harmonia

import (
	"bytes"
	"hash"
	"testing"

	"github.com/stretchr/testify/require"
)

// Copyright © 2025 Fausto Dasè. Licensed under the MIT license.

/* Digests of 'a' repeated N times, covering every interesting padding residue:
short tails, the 55/56 single-vs-double padding-block boundary, exact blocks, and
the same cases one block later. */
var v2Boundaries = map[int]string{
	1:   "6dc677e39b604beddedf1c1ea38cc4f53533b266c43c4531203fd7dc2c81a112",
	3:   "e7adb4d0ee3b873cf80e2d6b07ebafdfa6b9b6f21f23d2cab9a1ed6485e827b4",
	55:  "53772ce0529284e0a93208b9a0a0bda3d22c5084819d64e9d22f9adcb9a5c7f2",
	56:  "b858f5885f0b754c91b547809171d6e81f40d87c1f656b3e374a7d50938aa4d6",
	57:  "38eb1cbc743a0021b14f14d4cf97bb27dc07408a8f789f188099bbe60d216ab1",
	63:  "cf4930e97043f55acb212b0c93c45459862950b2134d0184cecb6dc4b919adc4",
	64:  "6a7e3c91e8bcf5207bf7a539ac90e9023a1e111275182a815f1643d805f127f4",
	65:  "2573735ed5ea4a3d42a42a8fd641d8c37b845a476f911c2e0c8d0d06f7f1b52a",
	119: "e02da3e7a289ae57eca62ae56d503e1cfb958355aaf5f2890509919d7057277d",
	120: "03e806fbba5387fb1d67f3e6792273cfa3893d1a30e509d97d48d434635ded53",
	127: "6e2f716cfa73d59e62a9f38804a5ccfb6ba0ed661f478f69cf1b01f77adeb409",
	128: "2f19ed49f1ad71b00aded9b69626c08140b0b1931698c59cc156290ab10a7d25",
	129: "833a24ec160651315eb5a774650368b7d49d7233df1b089de583dd6c6287ad6d",
}

const v2Streaming = "107c3bbb27799a6986937083a4f4de963816da29e077eb699174221d1e23826d"

func TestV2Vectors(t *testing.T) {
	for _, v := range v2Vectors {
		require.Equal(t, v.want, Hex([]byte(v.in)), "input %q", v.in)
	}
}

func TestSelfTests(t *testing.T) {
	require.NoError(t, SelfTest())
	require.NoError(t, FastSelfTest())
	require.NoError(t, NGSelfTest())
}

func TestV2Boundaries(t *testing.T) {
	for n, want := range v2Boundaries {
		require.Equal(t, want, Hex(bytes.Repeat([]byte{'a'}, n)), "length %d", n)
	}
}

/* Any partition of the input must produce the one-shot digest. */
func testChunking(t *testing.T, fresh func() hash.Hash) {
	msg := make([]byte, 300)
	for i := range msg {
		msg[i] = byte(i * 131)
	}
	d := fresh()
	d.Write(msg)
	want := d.Sum(nil)

	for _, step := range []int{1, 2, 3, 7, 13, 32, 63, 64, 65, 150, 299} {
		d := fresh()
		for off := 0; off < len(msg); off += step {
			end := off + step
			if end > len(msg) {
				end = len(msg)
			}
			d.Write(msg[off:end])
		}
		require.Equal(t, want, d.Sum(nil), "chunk size %d", step)
	}
}

func TestChunking(t *testing.T) {
	t.Run("V2", func(t *testing.T) { testChunking(t, New) })
	t.Run("Fast", func(t *testing.T) { testChunking(t, NewFast) })
	t.Run("NG", func(t *testing.T) { testChunking(t, NewNG) })
}

func TestStreaming(t *testing.T) {
	block := bytes.Repeat([]byte{'x'}, 1<<10)
	d := New()
	for i := 0; i < 1<<10; i++ {
		d.Write(block)
	}
	require.Equal(t, v2Streaming, Hex(bytes.Repeat([]byte{'x'}, 1<<20)))
	sum := d.Sum(nil)
	var got [Size]byte
	copy(got[:], sum)
	require.Equal(t, Sum256(bytes.Repeat([]byte{'x'}, 1<<20)), got)
}

func TestHashInterface(t *testing.T) {
	for _, fresh := range []func() hash.Hash{New, NewFast, NewNG} {
		d := fresh()
		require.Equal(t, Size, d.Size())
		require.Equal(t, BlockSize, d.BlockSize())

		/* Sum appends and leaves the state intact. */
		d.Write([]byte("Harmonia"))
		prefix := []byte{0xAA, 0xBB}
		sum := d.Sum(prefix)
		require.Equal(t, prefix, sum[:2])
		require.Len(t, sum, 2+Size)
		require.Equal(t, sum[2:], d.Sum(nil))

		/* Reset restores the initial chaining value. */
		d2 := fresh()
		d.Reset()
		require.Equal(t, d2.Sum(nil), d.Sum(nil))
	}
}

func TestLengthSensitivity(t *testing.T) {
	for _, n := range []int{0, 55, 56, 63, 64, 65, 119, 120} {
		msg := bytes.Repeat([]byte{'a'}, n)
		longer := append(bytes.Repeat([]byte{'a'}, n), 0x00)
		require.NotEqual(t, Sum256(msg), Sum256(longer), "v2 length %d", n)
		require.NotEqual(t, FastSum256(msg), FastSum256(longer), "fast length %d", n)
		require.NotEqual(t, NGSum256(msg), NGSum256(longer), "ng length %d", n)
	}
}

/* Every padding residue 0..63, plus the same residues one block later. */
func TestAllResidues(t *testing.T) {
	msg := make([]byte, 130)
	for i := range msg {
		msg[i] = byte(i * 31)
	}
	for n := 0; n <= len(msg); n++ {
		for _, fresh := range []func() hash.Hash{New, NewFast, NewNG} {
			d := fresh()
			d.Write(msg[:n/2])
			d.Write(msg[n/2 : n])
			split := d.Sum(nil)

			d.Reset()
			d.Write(msg[:n])
			require.Equal(t, d.Sum(nil), split, "length %d", n)
		}
	}
}

func TestHexFormat(t *testing.T) {
	h := Hex([]byte("abc"))
	require.Len(t, h, 64)
	require.Equal(t, bytes.ToLower([]byte(h)), []byte(h))
}
