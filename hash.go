// Package harmonia implements the HARMONIA family of experimental 256-bit hash
// functions derived from the golden ratio, Fibonacci numbers and quasi-periodic
// sequences: the original v2.2 (64 rounds, variable rotations), HARMONIA-Fast
// (32 rounds) and the SIMD-friendly HARMONIA-NG (32 rounds, fixed rotations,
// ChaCha-style quarter-rounds) with a 4-way batch API.
//
// None of the variants carries a formal security claim.
package harmonia

import (
	"encoding/binary"
	"encoding/hex"
	"hash"
)

// Copyright © 2025 Fausto Dasè. Licensed under the MIT license.
/* The Merkle–Damgård framing shared by the three variants, exposed through the
standard hash.Hash interface plus one-shot helpers. A variant contributes its initial
chaining value, its compression function and its stream fusion; everything else —
buffering, padding, the trailing big-endian bit length — is identical. */

/* A variant is process-wide read-only after init. */
type variant struct {
	name     string
	ivG, ivC [8]uint32
	compress func(g, c *[8]uint32, block []byte)
	fuse     func(g, c *[8]uint32) [Size]byte
}

type digest struct {
	v    *variant
	g, c [8]uint32
	x    [BlockSize]byte
	nx   int
	len  uint64
}

// New returns a hash.Hash computing the HARMONIA v2.2 digest.
func New() hash.Hash { d := &digest{v: &v2Variant}; d.Reset(); return d }

// NewFast returns a hash.Hash computing the HARMONIA-Fast digest.
func NewFast() hash.Hash { d := &digest{v: &fastVariant}; d.Reset(); return d }

// NewNG returns a hash.Hash computing the HARMONIA-NG digest.
func NewNG() hash.Hash { d := &digest{v: &ngVariant}; d.Reset(); return d }

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Reset() {
	d.g, d.c = d.v.ivG, d.v.ivC
	d.nx, d.len = 0, 0
}

func (d *digest) Write(p []byte) (n int, err error) {
	n = len(p)
	d.len += uint64(n)
	if d.nx > 0 {
		k := copy(d.x[d.nx:], p)
		d.nx += k
		if d.nx == BlockSize {
			d.v.compress(&d.g, &d.c, d.x[:])
			d.nx = 0
		}
		p = p[k:]
	}
	for len(p) >= BlockSize {
		d.v.compress(&d.g, &d.c, p[:BlockSize])
		p = p[BlockSize:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return
}

/* Sum finalizes a copy, so the digest remains usable for further writes. */
func (d *digest) Sum(in []byte) []byte {
	d0 := *d
	sum := d0.checkSum()
	return append(in, sum[:]...)
}

func (d *digest) checkSum() [Size]byte {
	bitLen := d.len << 3
	padLen := 56 - d.nx
	if d.nx >= 56 {
		padLen = 120 - d.nx
	}

	var pad [BlockSize * 2]byte
	pad[0] = 0x80
	binary.BigEndian.PutUint64(pad[padLen:], bitLen)
	d.Write(pad[:padLen+8])

	return d.v.fuse(&d.g, &d.c)
}

func sum256(v *variant, msg []byte) [Size]byte {
	d := digest{v: v}
	d.Reset()
	d.Write(msg)
	return d.checkSum()
}

// Sum256 returns the HARMONIA v2.2 digest of msg.
func Sum256(msg []byte) [Size]byte { return sum256(&v2Variant, msg) }

// FastSum256 returns the HARMONIA-Fast digest of msg.
func FastSum256(msg []byte) [Size]byte { return sum256(&fastVariant, msg) }

// NGSum256 returns the HARMONIA-NG digest of msg.
func NGSum256(msg []byte) [Size]byte { return sum256(&ngVariant, msg) }

// Hex returns the HARMONIA v2.2 digest of msg as 64 lowercase hex characters.
func Hex(msg []byte) string { sum := Sum256(msg); return hex.EncodeToString(sum[:]) }

// FastHex returns the HARMONIA-Fast digest of msg as 64 lowercase hex characters.
func FastHex(msg []byte) string { sum := FastSum256(msg); return hex.EncodeToString(sum[:]) }

// NGHex returns the HARMONIA-NG digest of msg as 64 lowercase hex characters.
func NGHex(msg []byte) string { sum := NGSum256(msg); return hex.EncodeToString(sum[:]) }
