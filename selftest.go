package harmonia

import "fmt"

// Copyright © 2025 Fausto Dasè. Licensed under the MIT license.
/* Embedded known-answer vectors. The v2.2 and NG vectors are the published ones; the
Fast vectors were fixed when its round-type word was frozen at 32 symbols. */

type testVector struct{ in, want string }

var v2Vectors = []testVector{
	{"", "3acc512691bd37d475cec1695d99503b4a3401aa9366b312951ba200190bfe3d"},
	{"abc", "a165d969cbc672777da6746c4e1462dead0d2fa7f75a75fef4fb33afd07bc1ff"},
	{"Harmonia", "5aa5b3bf63ed5d726288f05da3b9ecc419216b260cc780e2435dddf9bf593257"},
	{"HARMONIA", "4ad655d4614e11f2e839bfa5f0f2cce13bde89ea9327434a941411f21b65fad3"},
	{"The quick brown fox jumps over the lazy dog",
		"39661e930dae99563e597b155d177e331d3016fa65405624c3b2159b9c86b4aa"},
}

var ngVectors = []testVector{
	{"", "f0861e3ad1a2a438b4ceea78d14f21074dcd712b073917b28d7ae7fad8f6a562"},
	{"Harmonia", "11cd23650f8fd4818848bc6f09da18b06403ed6f5250447c5d1036730cb8987c"},
	{"HARMONIA-NG", "6d310650be2092be611cf35ea8dcc46b8199a3f6299398fa68dcf73f80f8a334"},
	{"The quick brown fox jumps over the lazy dog",
		"05a015d792c2146a00d941ba342e0dbb219ff7ef6da48d05caf8310d3c844172"},
}

var fastVectors = []testVector{
	{"", "f92a2df4bf588be9bd4eb5dba55834b09813346289379564779456d7f82cc988"},
	{"abc", "ed8a7da8a85f4c6f6d813eb60f6bfee7420c60298d0d9123a622f59de3c6d092"},
	{"Harmonia", "6478cfeb2fd5ec08302cdeef72c89553c23202930c03bf8017488d11c5fc1b27"},
	{"HARMONIA", "df92aa953f269cbe7b50cf7efedea17b297b331782c3b286d137bfd85962da61"},
	{"The quick brown fox jumps over the lazy dog",
		"7e9b35fe63fb3275c850f7ae958f9af573cd1f3fa51bc0c03ad77e469d5fa2eb"},
}

func selfTest(name string, hexSum func([]byte) string, vectors []testVector) error {
	for _, v := range vectors {
		if got := hexSum([]byte(v.in)); got != v.want {
			in := v.in
			if len(in) > 48 {
				in = in[:48] + "…"
			}
			return fmt.Errorf("harmonia: %s self-test failed for %q: expected %s, got %s",
				name, in, v.want, got)
		}
	}
	return nil
}

// SelfTest checks the HARMONIA v2.2 known-answer vectors and returns nil on success.
func SelfTest() error { return selfTest(v2Variant.name, Hex, v2Vectors) }

// FastSelfTest checks the HARMONIA-Fast known-answer vectors and returns nil on success.
func FastSelfTest() error { return selfTest(fastVariant.name, FastHex, fastVectors) }

// NGSelfTest checks the HARMONIA-NG known-answer vectors and returns nil on success.
func NGSelfTest() error { return selfTest(ngVariant.name, NGHex, ngVectors) }
