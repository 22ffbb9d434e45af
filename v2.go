package harmonia

import "encoding/binary"

// Copyright © 2025 Fausto Dasè. Licensed under the MIT license.
/* HARMONIA v2.2: 64 rounds of alternating golden/complementary mixes scheduled by the
Fibonacci word, with quasicrystal-table rotations throughout. The two streams evolve
over a 64-word message schedule consumed from both ends and are coupled after every
round by the quasi-periodic exchange. */

var v2Variant = variant{
	name:     "HARMONIA",
	ivG:      *(*[8]uint32)(phiConstants[:8]),
	ivC:      *(*[8]uint32)(reciprocalConstants[:8]),
	compress: compressV2,
	fuse:     fuseV2,
}

func scheduleV2(block []byte, w *[64]uint32) {
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	for i := 16; i < 64; i++ {
		shift := penroseIndex(i)&0xF + 1
		w[i] = rotr(w[i-2], qcRot(i, 0)) ^
			rotl(w[i-7], qcRot(i, 1)) ^
			w[i-15]>>shift ^
			w[i-16]
	}
}

func compressV2(stateG, stateC *[8]uint32, block []byte) {
	var w [64]uint32
	scheduleV2(block, &w)

	g, c := *stateG, *stateC
	for r := 0; r < 64; r++ {
		roundType := fibonacciWord[r]
		i := r & 7
		j := (r + int(fibonacci[r%12])) & 7

		if roundType == 1 {
			mixGolden(&g[i], &g[j], phiConstants[r&15], qcRot(r, i), qcRot(r+1, i+1))
			g[i] += w[r]

			mixGolden(&c[i], &c[j], reciprocalConstants[r&15], qcRot(r, i), qcRot(r+1, i+1))
			c[j] += w[63-r]
		} else {
			mixComplementary(&g[i], &g[j], phiConstants[r&15], qcRot(r, i), qcRot(r+1, i+1))
			g[j] += w[r]

			mixComplementary(&c[j], &c[i], reciprocalConstants[r&15], qcRot(r, j), qcRot(r+1, j+1))
			c[i] += w[63-r]
		}

		exchangeQuasiPeriodic(&g, &c, r, roundType)

		if r&7 == 7 {
			edgeProtect(&g, r, qcRot(r, 0), qcRot(r, 7))
			edgeProtect(&c, r, qcRot(r, 0), qcRot(r, 7))
		}
	}

	/* Davies–Meyer */
	for i := range g {
		stateG[i] += g[i]
		stateC[i] += c[i]
	}
}

func fuseV2(stateG, stateC *[8]uint32) (digest [Size]byte) {
	g, c := *stateG, *stateC
	edgeProtect(&g, 64, qcRot(64, 0), qcRot(64, 7))
	edgeProtect(&c, 65, qcRot(65, 0), qcRot(65, 7))

	for i := 0; i < 8; i++ {
		rot := qcRot(i, i)
		fused := rotr(g[i], rot) ^ rotl(c[i], rot)
		fused += phiConstants[i] + penroseIndex(i)*0x01010101
		binary.BigEndian.PutUint32(digest[i*4:], fused)
	}
	return
}
