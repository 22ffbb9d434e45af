package harmonia

import "encoding/binary"

// Copyright © 2025 Fausto Dasè. Licensed under the MIT license.
/* HARMONIA-Fast: 32 mix-based rounds over the fixed pairing (i, i+4), scheduled by the
32-symbol round-type word. Rotations come from the Fast table, message words are folded
into the mix keys, and the auxiliary steps fire on r%4/r%8 before the round counter
advances, so round 0 takes neither. */

var fastVariant = variant{
	name:     "HARMONIA-Fast",
	ivG:      *(*[8]uint32)(phiConstants[:8]),
	ivC:      *(*[8]uint32)(reciprocalConstants[:8]),
	compress: compressFast,
	fuse:     fuseFast,
}

func scheduleFast(block []byte, w *[32]uint32) {
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	for i := 16; i < 32; i++ {
		rot1 := fastRot(i, 0)
		rot2 := fastRot(i, 1)

		s0 := rotr(w[i-15], rot1) ^ rotr(w[i-15], rot1+5) ^ w[i-15]>>3
		s1 := rotr(w[i-2], rot2) ^ rotr(w[i-2], rot2+7) ^ w[i-2]>>10

		w[i] = w[i-16] + s0 + w[i-7] + s1 + fibonacci[penroseIndex(i)%12]
	}
}

func compressFast(stateG, stateC *[8]uint32, block []byte) {
	var w [32]uint32
	scheduleFast(block, &w)

	g, c := *stateG, *stateC
	for r := 0; r < 32; r++ {
		kPhi := phiConstants[r&15] ^ w[r]
		kRec := reciprocalConstants[r&15] ^ w[(r+1)&31]

		if fastRoundType[r] == 1 {
			for i := 0; i < 4; i++ {
				j := i + 4
				mixGolden(&g[i], &g[j], kPhi, fastRot(r, i), fastRot(r+1, i+1))
				mixComplementary(&c[i], &c[j], kRec, fastRot(r, j), fastRot(r+1, j+1))
			}
		} else {
			for i := 0; i < 4; i++ {
				j := i + 4
				mixComplementary(&g[i], &g[j], kPhi, fastRot(r, i), fastRot(r+1, i+1))
				mixGolden(&c[i], &c[j], kRec, fastRot(r, j), fastRot(r+1, j+1))
			}
		}

		if r > 0 && r&7 == 0 {
			edgeProtect(&g, r, fastRot(r, 0), fastRot(r, 7))
			edgeProtect(&c, r, fastRot(r, 0), fastRot(r, 7))
		}
		if r > 0 && r&3 == 0 {
			crossDiffuse(&g, &c, fastRot(r, 4))
		}
	}

	/* Davies–Meyer */
	for i := range g {
		stateG[i] += g[i]
		stateC[i] += c[i]
	}
}

func fuseFast(stateG, stateC *[8]uint32) (digest [Size]byte) {
	g, c := *stateG, *stateC
	edgeProtect(&g, 32, fastRot(32, 0), fastRot(32, 7))
	edgeProtect(&c, 33, fastRot(33, 0), fastRot(33, 7))

	for i := 0; i < 8; i++ {
		rot := fastRot(i, i)
		fused := rotr(g[i], rot) ^ rotl(c[i], rot)
		fused += phiConstants[i] >> penroseIndex(i*31+17) & 0xFF
		binary.BigEndian.PutUint32(digest[i*4:], fused)
	}
	return
}
