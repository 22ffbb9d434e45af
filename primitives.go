package harmonia

import "math/bits"

// Copyright © 2025 Fausto Dasè. Licensed under the MIT license.
/* The ARX primitives and auxiliary state transformations shared by the HARMONIA
variants. All arithmetic is on 32-bit words modulo 2³²; all rotation amounts are in
1..31. v2.2 and Fast read them from the tables in consts.go; NG uses the per-round
table there plus fixed or index-derived amounts in ng.go. */

func rotl(x uint32, n int) uint32 { return bits.RotateLeft32(x, n) }
func rotr(x uint32, n int) uint32 { return bits.RotateLeft32(x, -n) }

/* qcRot reads the v2.2 quasicrystal table. Row 64 is read by the last compression
round (its r+1 rotation) and by finalization; row 65 only by finalization. */
func qcRot(r, i int) int { return int(quasicrystalRotations[r%66][i%10]) }

func fastRot(r, i int) int { return int(fastRotations[r%32][i%10]) }

/* penroseIndex returns (⌊n·φ⌋ ^ ⌊n·φ²⌋) mod 32 via the precomputed table. */
func penroseIndex(n int) uint32 { return uint32(penroseTable[n]) }

/* mixGolden is the type-A mixing step. Operands are snapshotted so the function stays
correct when a and b alias the same word. */
func mixGolden(a, b *uint32, k uint32, rot1, rot2 int) {
	va, vb := *a, *b

	va = rotr(va, rot1)
	va += vb
	va ^= k

	vb = rotl(vb, rot2)
	vb ^= va
	vb += k

	m := va*3 ^ vb*5
	va ^= m >> 11
	vb ^= m << 7

	*a, *b = va, vb
}

/* mixComplementary is the type-B mixing step. The key is injected as k>>1 on both
sides. */
func mixComplementary(a, b *uint32, k uint32, rot1, rot2 int) {
	va, vb := *a, *b

	va ^= vb
	va = rotl(va, rot1)
	va += k >> 1

	vb += va
	vb = rotr(vb, rot2)
	vb ^= k >> 1

	*a, *b = va, vb
}

/* quarterRound is the ChaCha-shaped 4-word mix used by HARMONIA-NG. */
func quarterRound(s *[8]uint32, a, b, c, d, r1, r2, r3, r4 int) {
	s[a] += s[b]
	s[d] ^= s[a]
	s[d] = rotl(s[d], r1)

	s[c] += s[d]
	s[b] ^= s[c]
	s[b] = rotl(s[b], r2)

	s[a] += s[b]
	s[d] ^= s[a]
	s[d] = rotl(s[d], r3)

	s[c] += s[d]
	s[b] ^= s[c]
	s[b] = rotl(s[b], r4)
}

/* edgeProtect concentrates extra diffusion on state positions 0 and 7. The rotation
amounts differ per variant and schedule, so callers pass them in. */
func edgeProtect(s *[8]uint32, r, rotL, rotR int) {
	fib := fibonacci[r%12] * 0x9E3779B9

	s[0] = rotr(s[0], rotL)
	s[0] ^= fib

	s[7] = rotl(s[7], rotR)
	s[7] ^= ^fib

	inter := (s[0] ^ s[7]) >> 16
	s[0] += inter
	s[7] += inter
}

/* crossDiffuse couples the two streams: each golden word absorbs a rotated mix of the
complementary word three positions ahead. */
func crossDiffuse(g, c *[8]uint32, rot int) {
	for i := 0; i < 8; i++ {
		temp := g[i] ^ c[(i+3)&7]
		g[i] += rotr(temp, rot)
		c[i] ^= rotl(temp, rot)
	}
}

/* exchangeQuasiPeriodic is the v2.2 inter-stream exchange. Type-A rounds exchange the
positions whose penrose index is divisible by three; the 0xFF00 mask keeps the
middle-byte window. Type-B rounds touch only the edges. */
func exchangeQuasiPeriodic(g, c *[8]uint32, r int, roundType uint8) {
	if roundType == 1 {
		for i := 0; i < 8; i++ {
			if penroseIndex(r+i)%3 == 0 {
				temp := g[i] ^ c[i]
				g[i] += temp >> 8
				c[i] += temp & 0xFF00
			}
		}
	} else {
		temp := g[0] ^ c[7]
		g[0] ^= temp >> 16
		c[7] ^= temp & 0xFFFF
	}
}
