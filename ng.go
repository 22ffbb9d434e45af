package harmonia

import "encoding/binary"

// Copyright © 2025 Fausto Dasè. Licensed under the MIT license.
/* HARMONIA-NG: 32 rounds of ChaCha-shaped quarter-rounds with fixed per-round rotation
sets, a 32-word schedule consumed from both ends, cross-stream diffusion every 4 rounds
and edge protection every 8. Fixed rotations keep every lane of a vectorized build on
the same instruction stream. */

const (
	ngEdgeRotLeft  = 7
	ngEdgeRotRight = 13
	ngCrossRot     = 11
)

var ngVariant = variant{
	name:     "HARMONIA-NG",
	ivG:      initialHashG,
	ivC:      initialHashC,
	compress: compressNG,
	fuse:     fuseNG,
}

func scheduleNG(block []byte, w *[32]uint32) {
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	for i := 16; i < 32; i++ {
		r1 := 7 + i%5
		r2 := 17 + i%4

		s0 := rotr(w[i-15], r1) ^ rotr(w[i-15], r1+11) ^ w[i-15]>>3
		s1 := rotr(w[i-2], r2) ^ rotr(w[i-2], r2+2) ^ w[i-2]>>10

		w[i] = w[i-16] + s0 + w[i-7] + s1 + fibonacci[i%12]
	}
}

func compressNG(stateG, stateC *[8]uint32, block []byte) {
	var w [32]uint32
	scheduleNG(block, &w)

	g, c := *stateG, *stateC
	for r := 0; r < 32; r++ {
		rot := &roundRotations[r]
		r1, r2, r3, r4 := int(rot[0]), int(rot[1]), int(rot[2]), int(rot[3])

		/* Message and constant injection */
		g[0] += w[r]
		c[0] += w[31-r]
		g[4] ^= phiConstants[r&15]
		c[4] ^= reciprocalConstants[r&15]

		/* Columns, then diagonals */
		quarterRound(&g, 0, 1, 2, 3, r1, r2, r3, r4)
		quarterRound(&g, 4, 5, 6, 7, r1, r2, r3, r4)
		quarterRound(&g, 0, 5, 2, 7, r1, r2, r3, r4)
		quarterRound(&g, 4, 1, 6, 3, r1, r2, r3, r4)

		quarterRound(&c, 0, 1, 2, 3, r1, r2, r3, r4)
		quarterRound(&c, 4, 5, 6, 7, r1, r2, r3, r4)
		quarterRound(&c, 0, 5, 2, 7, r1, r2, r3, r4)
		quarterRound(&c, 4, 1, 6, 3, r1, r2, r3, r4)

		if (r+1)&3 == 0 {
			crossDiffuse(&g, &c, ngCrossRot)
		}
		if (r+1)&7 == 0 {
			edgeProtect(&g, r, ngEdgeRotLeft, ngEdgeRotRight)
			edgeProtect(&c, r, ngEdgeRotLeft, ngEdgeRotRight)
		}
	}

	/* Davies–Meyer */
	for i := range g {
		stateG[i] += g[i]
		stateC[i] += c[i]
	}
}

func fuseNG(stateG, stateC *[8]uint32) (digest [Size]byte) {
	g, c := *stateG, *stateC
	edgeProtect(&g, 32, ngEdgeRotLeft, ngEdgeRotRight)
	edgeProtect(&c, 33, ngEdgeRotLeft, ngEdgeRotRight)

	for i := 0; i < 8; i++ {
		rot := (i*3+5)%16 + 1
		fused := rotr(g[i], rot) ^ rotl(c[i], rot)
		fused += phiConstants[i]
		binary.BigEndian.PutUint32(digest[i*4:], fused)
	}
	return
}
