package harmonia

// Copyright © 2025 Fausto Dasè. Licensed under the MIT license.
/* Constant tables shared by the HARMONIA variants. Every value below is effectively part
of the wire format: the published test vectors depend on them byte for byte. The
quasicrystal tables are baked into the source rather than generated at runtime so that
digests stay identical across architectures and floating-point environments. */

const (
	// BlockSize is the compression block size in bytes, identical for every variant.
	BlockSize = 64
	// Size is the digest size in bytes, identical for every variant.
	Size = 32
)

/* Round constants derived from the fractional expansion of φ (Hamming weight ≈ 16). */
var phiConstants = [16]uint32{
	0x9E37605A, 0xDAC1E0F2, 0xF287A338, 0xFA8CFC04,
	0xFD805AA6, 0xCCF29760, 0xFF8184C3, 0xFF850D11,
	0xCC32476B, 0x98767486, 0xFFF82080, 0x30E4E2F3,
	0xFCC3ACC1, 0xE5216F38, 0xF30E4CC9, 0x948395F6,
}

/* Round constants derived from the fractional expansion of 1/φ. */
var reciprocalConstants = [16]uint32{
	0x7249217F, 0x5890EB7C, 0x4786B47C, 0x4C51DBE8,
	0x4E4DA61B, 0x4F76650C, 0x4F2F1A2A, 0x4F6CE289,
	0x4F1ADF40, 0x4E84BABC, 0x4F22D993, 0x497FA704,
	0x4F514F19, 0x4E8F43B8, 0x508E2FD9, 0x4B5F94A4,
}

var fibonacci = [12]uint32{1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144}

/* The Fibonacci word (A→AB, B→A) truncated to 64 symbols; 1 selects a golden round,
0 a complementary round. */
var fibonacciWord = [64]uint8{
	1, 0, 1, 1, 0, 1, 0, 1, 1, 0, 1, 1, 0, 1, 0, 1,
	1, 0, 1, 0, 1, 1, 0, 1, 1, 0, 1, 0, 1, 1, 0, 1,
	1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 1, 0, 1, 1, 0, 1,
	0, 1, 1, 0, 1, 1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 1,
}

/* The 32-symbol round schedule of HARMONIA-Fast. Symbol 31 is 0: the word is one
symbol short of the Fibonacci continuation, and Fast digests depend on that. */
var fastRoundType = [32]uint8{
	1, 0, 1, 1, 0, 1, 0, 1, 1, 0, 1, 1, 0, 1, 0, 1,
	1, 0, 1, 0, 1, 1, 0, 1, 1, 0, 1, 0, 1, 1, 0, 0,
}

/* Quasicrystal rotation amounts for v2.2, indexed [round][position]. Rows 64 and 65
serve finalization. Values are 1..21, never 0, never ≥ 32. */
var quasicrystalRotations = [66][10]uint8{
	{14, 11, 5, 4, 11, 13, 11, 5, 3, 10},
	{5, 11, 13, 11, 4, 5, 11, 13, 11, 5},
	{20, 6, 11, 2, 5, 21, 7, 10, 1, 5},
	{14, 18, 7, 7, 17, 14, 18, 9, 9, 15},
	{6, 12, 18, 1, 3, 10, 9, 16, 2, 6},
	{16, 2, 6, 14, 13, 18, 6, 11, 10, 11},
	{19, 15, 14, 17, 3, 12, 12, 16, 2, 12},
	{16, 20, 6, 12, 4, 7, 6, 16, 8, 9},
	{16, 1, 6, 6, 21, 11, 10, 5, 5, 4},
	{14, 16, 16, 5, 12, 19, 11, 10, 21, 2},
	{11, 16, 14, 9, 17, 20, 8, 19, 10, 10},
	{18, 3, 10, 13, 13, 1, 20, 20, 18, 4},
	{4, 5, 11, 13, 11, 5, 4, 11, 13, 11},
	{13, 10, 3, 5, 12, 13, 11, 4, 5, 11},
	{12, 3, 5, 19, 5, 11, 2, 5, 20, 7},
	{5, 5, 20, 15, 18, 7, 6, 18, 14, 18},
	{20, 21, 21, 5, 14, 18, 1, 2, 8, 11},
	{3, 20, 15, 16, 21, 4, 16, 14, 17, 5},
	{10, 6, 10, 1, 16, 13, 14, 1, 15, 13},
	{21, 17, 18, 11, 5, 11, 14, 2, 2, 12},
	{20, 17, 2, 17, 18, 19, 15, 7, 13, 6},
	{21, 1, 7, 7, 5, 18, 19, 19, 13, 1},
	{11, 19, 2, 19, 15, 17, 3, 20, 8, 7},
	{13, 10, 16, 20, 3, 8, 18, 8, 5, 2},
	{12, 13, 10, 4, 5, 11, 13, 11, 4, 5},
	{2, 6, 12, 13, 10, 3, 6, 12, 13, 10},
	{5, 18, 4, 13, 3, 5, 19, 5, 12, 2},
	{1, 16, 17, 5, 4, 20, 15, 18, 6, 6},
	{17, 1, 17, 20, 21, 20, 3, 15, 19, 1},
	{17, 13, 15, 5, 1, 16, 15, 20, 2, 18},
	{1, 10, 19, 8, 3, 14, 4, 17, 12, 11},
	{9, 15, 3, 4, 18, 16, 6, 10, 15, 15},
	{2, 21, 3, 12, 5, 8, 19, 14, 11, 3},
	{1, 15, 17, 1, 14, 14, 21, 15, 19, 12},
	{2, 12, 20, 13, 13, 2, 5, 14, 19, 18},
	{15, 10, 19, 10, 15, 10, 21, 3, 7, 2},
	{10, 3, 6, 12, 13, 10, 3, 6, 12, 13},
	{12, 13, 9, 2, 7, 12, 13, 10, 3, 6},
	{2, 15, 4, 5, 18, 3, 13, 3, 5, 19},
	{16, 2, 1, 2, 16, 17, 4, 3, 21, 15},
	{21, 21, 19, 16, 2, 19, 20, 20, 18, 2},
	{9, 12, 7, 18, 12, 13, 7, 3, 17, 14},
	{21, 3, 14, 5, 13, 20, 7, 21, 17, 6},
	{2, 18, 20, 6, 10, 9, 8, 18, 13, 1},
	{6, 3, 15, 8, 1, 19, 3, 14, 15, 20},
	{6, 1, 5, 8, 8, 5, 1, 6, 1, 15},
	{2, 7, 17, 21, 18, 18, 14, 6, 2, 12},
	{4, 4, 9, 9, 8, 15, 6, 19, 4, 21},
	{7, 12, 13, 10, 2, 6, 12, 13, 10, 3},
	{9, 1, 7, 12, 13, 9, 2, 7, 12, 13},
	{4, 4, 16, 1, 15, 4, 5, 17, 2, 14},
	{3, 4, 17, 16, 2, 1, 2, 16, 17, 3},
	{18, 12, 7, 1, 1, 19, 15, 4, 20, 21},
	{12, 19, 9, 7, 14, 9, 18, 12, 12, 9},
	{3, 17, 21, 21, 1, 11, 8, 15, 20, 5},
	{21, 17, 13, 7, 21, 21, 4, 5, 14, 12},
	{3, 6, 1, 1, 15, 3, 14, 1, 14, 16},
	{15, 21, 15, 14, 1, 17, 15, 1, 14, 1},
	{17, 13, 5, 21, 8, 9, 20, 3, 16, 16},
	{2, 3, 8, 18, 18, 13, 2, 6, 11, 1},
	{13, 9, 1, 7, 12, 13, 9, 2, 7, 12},
	{8, 13, 13, 8, 1, 8, 13, 13, 9, 2},
	{15, 2, 17, 4, 4, 16, 1, 15, 4, 4},
	{18, 15, 20, 4, 5, 17, 16, 1, 2, 3},
	{12, 5, 2, 17, 11, 8, 2, 1, 18, 14},
	{6, 21, 1, 14, 20, 8, 5, 17, 10, 19},
}

/* HARMONIA-Fast rotation table, indexed [round mod 32][position mod 10]. */
var fastRotations = [32][10]uint8{
	{14, 14, 14, 14, 14, 14, 14, 14, 14, 14},
	{8, 4, 1, 13, 6, 10, 15, 19, 4, 9},
	{3, 19, 16, 8, 17, 2, 5, 18, 14, 5},
	{11, 11, 17, 4, 15, 8, 19, 10, 6, 15},
	{17, 1, 20, 14, 5, 21, 9, 2, 16, 7},
	{6, 16, 7, 18, 11, 1, 12, 21, 13, 2},
	{2, 21, 12, 1, 11, 18, 7, 16, 6, 17},
	{19, 8, 15, 4, 17, 11, 11, 5, 14, 20},
	{9, 4, 19, 15, 10, 6, 2, 17, 8, 16},
	{4, 15, 10, 6, 19, 8, 17, 2, 5, 18},
	{15, 5, 18, 2, 17, 8, 19, 6, 10, 15},
	{21, 14, 5, 17, 8, 16, 3, 19, 14, 3},
	{7, 16, 2, 21, 9, 5, 14, 20, 1, 17},
	{1, 6, 17, 7, 18, 12, 1, 11, 21, 13},
	{13, 21, 11, 1, 12, 18, 7, 17, 6, 2},
	{18, 10, 6, 15, 4, 19, 8, 15, 17, 11},
	{9, 4, 19, 15, 10, 6, 2, 17, 8, 16},
	{4, 15, 10, 19, 6, 8, 17, 2, 5, 18},
	{15, 5, 18, 2, 17, 8, 6, 19, 10, 15},
	{21, 14, 5, 17, 8, 16, 3, 19, 14, 3},
	{7, 16, 2, 21, 9, 5, 14, 1, 20, 17},
	{1, 6, 17, 7, 12, 18, 1, 11, 21, 13},
	{13, 21, 11, 1, 12, 18, 7, 17, 6, 16},
	{5, 18, 10, 6, 15, 4, 8, 19, 17, 11},
	{9, 19, 4, 15, 10, 6, 2, 17, 8, 16},
	{18, 4, 15, 10, 6, 19, 8, 2, 17, 5},
	{15, 18, 5, 2, 17, 8, 19, 6, 10, 15},
	{3, 21, 14, 5, 8, 17, 16, 3, 14, 19},
	{17, 7, 16, 2, 21, 9, 5, 14, 20, 1},
	{13, 1, 6, 17, 7, 18, 12, 1, 21, 11},
	{2, 13, 21, 11, 1, 12, 7, 18, 6, 17},
	{11, 18, 10, 6, 15, 4, 19, 8, 17, 15},
}

/* Per-round quarter-round rotations for HARMONIA-NG, generated from the Fibonacci word
over the rotation sets A=(7,12,8,16) and B=(5,11,9,13). */
var roundRotations = [32][4]uint8{
	{12, 8, 16, 7},
	{11, 9, 13, 5},
	{8, 16, 7, 12},
	{16, 7, 12, 8},
	{11, 9, 13, 5},
	{7, 12, 8, 16},
	{11, 9, 13, 5},
	{12, 8, 16, 7},
	{8, 16, 7, 12},
	{13, 5, 11, 9},
	{12, 8, 16, 7},
	{7, 12, 8, 16},
	{11, 9, 13, 5},
	{12, 8, 16, 7},
	{9, 13, 5, 11},
	{16, 7, 12, 8},
	{12, 8, 16, 7},
	{5, 11, 9, 13},
	{12, 8, 16, 7},
	{11, 9, 13, 5},
	{8, 16, 7, 12},
	{16, 7, 12, 8},
	{11, 9, 13, 5},
	{7, 12, 8, 16},
	{12, 8, 16, 7},
	{11, 9, 13, 5},
	{8, 16, 7, 12},
	{13, 5, 11, 9},
	{12, 8, 16, 7},
	{7, 12, 8, 16},
	{11, 9, 13, 5},
	{12, 8, 16, 7},
}

/* Initial chaining value of the NG golden stream: fractional parts of √p for the first
eight primes, SHA-256 style. */
var initialHashG = [8]uint32{
	0x6A09E667, 0xBB67AE85, 0x3C6EF372, 0xA54FF53A,
	0x510E527F, 0x9B05688C, 0x1F83D9AB, 0x5BE0CD19,
}

/* Initial chaining value of the NG complementary stream, seeded from the φ expansion. */
var initialHashC = [8]uint32{
	0x9E3779B9, 0x7F4A7C15, 0xF39CC060, 0x5CEDC834,
	0x2FE12A6D, 0x4786B47C, 0xC8A5E2F0, 0x3A8D6B7F,
}

/* penroseTable[n] = (⌊n·φ⌋ ^ ⌊n·φ²⌋) mod 32, precomputed with IEEE-754 double
truncation for n < 256. The largest argument any variant passes is 234. */
var penroseTable = [256]uint8{
	0, 3, 6, 3, 12, 5, 6, 25, 24, 25, 10, 13, 12, 23, 18, 31,
	16, 23, 18, 15, 20, 23, 26, 25, 24, 9, 14, 13, 4, 5, 30, 3,
	0, 3, 14, 3, 4, 27, 30, 25, 8, 9, 14, 21, 20, 29, 18, 23,
	16, 15, 18, 23, 28, 31, 26, 23, 8, 9, 10, 5, 28, 29, 6, 1,
	0, 3, 6, 3, 28, 27, 6, 11, 8, 9, 22, 29, 28, 21, 18, 17,
	16, 23, 18, 31, 28, 23, 10, 15, 8, 25, 26, 29, 4, 5, 14, 1,
	0, 1, 30, 3, 4, 11, 14, 11, 24, 27, 30, 21, 20, 13, 14, 17,
	16, 17, 18, 23, 20, 15, 10, 23, 24, 31, 26, 5, 12, 13, 2, 1,
	0, 1, 6, 5, 12, 11, 6, 27, 24, 27, 22, 11, 12, 21, 22, 17,
	16, 17, 18, 13, 12, 23, 26, 31, 24, 7, 10, 15, 4, 5, 2, 1,
	0, 1, 14, 13, 4, 5, 30, 27, 24, 11, 14, 11, 20, 19, 30, 17,
	16, 17, 18, 21, 20, 29, 26, 23, 8, 15, 10, 7, 28, 31, 2, 1,
	0, 1, 2, 5, 28, 29, 6, 9, 8, 11, 22, 27, 28, 19, 22, 19,
	16, 17, 22, 29, 28, 21, 10, 9, 8, 7, 26, 31, 28, 7, 2, 15,
	0, 1, 2, 29, 4, 5, 14, 9, 8, 27, 30, 27, 20, 19, 14, 19,
	16, 19, 30, 21, 20, 13, 10, 9, 24, 25, 26, 7, 4, 15, 2, 7,
}
