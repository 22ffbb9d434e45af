package harmonia

import "encoding/binary"

// Copyright © 2025 Fausto Dasè. Licensed under the MIT license.
/* 4-way batch hashing for HARMONIA-NG. Four independent messages of equal length move
through the compression function in lock-step, one lane per message, so every ARX
operation executes once per lane. The lane code is portable and bit-identical to four
scalar runs; it exists purely for throughput and carries no extra semantics. */

type vec4 [4]uint32

func dupv(x uint32) vec4 { return vec4{x, x, x, x} }

func addv(a, b vec4) vec4 { return vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]} }

func xorv(a, b vec4) vec4 { return vec4{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]} }

func rotlv(a vec4, n int) vec4 {
	return vec4{rotl(a[0], n), rotl(a[1], n), rotl(a[2], n), rotl(a[3], n)}
}

func rotrv(a vec4, n int) vec4 {
	return vec4{rotr(a[0], n), rotr(a[1], n), rotr(a[2], n), rotr(a[3], n)}
}

func shrv(a vec4, n int) vec4 { return vec4{a[0] >> n, a[1] >> n, a[2] >> n, a[3] >> n} }

func notv(a vec4) vec4 { return vec4{^a[0], ^a[1], ^a[2], ^a[3]} }

func quarterRoundX4(s *[8]vec4, a, b, c, d, r1, r2, r3, r4 int) {
	s[a] = addv(s[a], s[b])
	s[d] = xorv(s[d], s[a])
	s[d] = rotlv(s[d], r1)

	s[c] = addv(s[c], s[d])
	s[b] = xorv(s[b], s[c])
	s[b] = rotlv(s[b], r2)

	s[a] = addv(s[a], s[b])
	s[d] = xorv(s[d], s[a])
	s[d] = rotlv(s[d], r3)

	s[c] = addv(s[c], s[d])
	s[b] = xorv(s[b], s[c])
	s[b] = rotlv(s[b], r4)
}

func crossDiffuseX4(g, c *[8]vec4) {
	for i := 0; i < 8; i++ {
		temp := xorv(g[i], c[(i+3)&7])
		g[i] = addv(g[i], rotrv(temp, ngCrossRot))
		c[i] = xorv(c[i], rotlv(temp, ngCrossRot))
	}
}

func edgeProtectX4(s *[8]vec4, r int) {
	fib := dupv(fibonacci[r%12] * 0x9E3779B9)

	s[0] = rotrv(s[0], ngEdgeRotLeft)
	s[0] = xorv(s[0], fib)

	s[7] = rotlv(s[7], ngEdgeRotRight)
	s[7] = xorv(s[7], notv(fib))

	inter := shrv(xorv(s[0], s[7]), 16)
	s[0] = addv(s[0], inter)
	s[7] = addv(s[7], inter)
}

func compressX4(g, c *[8]vec4, blocks *[4][]byte) {
	var w [4][32]uint32
	for m := 0; m < 4; m++ {
		scheduleNG(blocks[m], &w[m])
	}

	sg, sc := *g, *c
	for r := 0; r < 32; r++ {
		rot := &roundRotations[r]
		r1, r2, r3, r4 := int(rot[0]), int(rot[1]), int(rot[2]), int(rot[3])

		sg[0] = addv(sg[0], vec4{w[0][r], w[1][r], w[2][r], w[3][r]})
		sc[0] = addv(sc[0], vec4{w[0][31-r], w[1][31-r], w[2][31-r], w[3][31-r]})
		sg[4] = xorv(sg[4], dupv(phiConstants[r&15]))
		sc[4] = xorv(sc[4], dupv(reciprocalConstants[r&15]))

		quarterRoundX4(&sg, 0, 1, 2, 3, r1, r2, r3, r4)
		quarterRoundX4(&sg, 4, 5, 6, 7, r1, r2, r3, r4)
		quarterRoundX4(&sg, 0, 5, 2, 7, r1, r2, r3, r4)
		quarterRoundX4(&sg, 4, 1, 6, 3, r1, r2, r3, r4)

		quarterRoundX4(&sc, 0, 1, 2, 3, r1, r2, r3, r4)
		quarterRoundX4(&sc, 4, 5, 6, 7, r1, r2, r3, r4)
		quarterRoundX4(&sc, 0, 5, 2, 7, r1, r2, r3, r4)
		quarterRoundX4(&sc, 4, 1, 6, 3, r1, r2, r3, r4)

		if (r+1)&3 == 0 {
			crossDiffuseX4(&sg, &sc)
		}
		if (r+1)&7 == 0 {
			edgeProtectX4(&sg, r)
			edgeProtectX4(&sc, r)
		}
	}

	for i := 0; i < 8; i++ {
		g[i] = addv(g[i], sg[i])
		c[i] = addv(c[i], sc[i])
	}
}

func fuseX4(g, c *[8]vec4) (digests [4][Size]byte) {
	sg, sc := *g, *c
	edgeProtectX4(&sg, 32)
	edgeProtectX4(&sc, 33)

	for i := 0; i < 8; i++ {
		rot := (i*3+5)%16 + 1
		fused := xorv(rotrv(sg[i], rot), rotlv(sc[i], rot))
		fused = addv(fused, dupv(phiConstants[i]))
		for m := 0; m < 4; m++ {
			binary.BigEndian.PutUint32(digests[m][i*4:], fused[m])
		}
	}
	return
}

// NGSum256x4 hashes four messages of equal length and returns their HARMONIA-NG
// digests in order. It is element-wise equivalent to four NGSum256 calls and panics if
// the messages differ in length.
func NGSum256x4(m0, m1, m2, m3 []byte) [4][Size]byte {
	msgs := [4][]byte{m0, m1, m2, m3}
	n := len(m0)
	if len(m1) != n || len(m2) != n || len(m3) != n {
		panic("harmonia: batch messages must be of equal length")
	}

	var g, c [8]vec4
	for i := 0; i < 8; i++ {
		g[i] = dupv(initialHashG[i])
		c[i] = dupv(initialHashC[i])
	}

	processed := 0
	for n-processed >= BlockSize {
		var blocks [4][]byte
		for m := range msgs {
			blocks[m] = msgs[m][processed : processed+BlockSize]
		}
		compressX4(&g, &c, &blocks)
		processed += BlockSize
	}

	/* The messages share a length, so they share a padding layout. */
	remaining := n - processed
	padLen := 56 - remaining
	if remaining >= 56 {
		padLen = 120 - remaining
	}
	total := remaining + padLen + 8

	var pad [4][BlockSize * 2]byte
	for m := range msgs {
		copy(pad[m][:], msgs[m][processed:])
		pad[m][remaining] = 0x80
		binary.BigEndian.PutUint64(pad[m][remaining+padLen:], uint64(n)<<3)
	}
	for off := 0; off < total; off += BlockSize {
		var blocks [4][]byte
		for m := range msgs {
			blocks[m] = pad[m][off : off+BlockSize]
		}
		compressX4(&g, &c, &blocks)
	}

	return fuseX4(&g, &c)
}
