// Package crypto provides the hashing and signing primitives used to
// fingerprint and verify wallet keys.
package crypto

import (
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/types"
	"github.com/zeebo/blake3"
)

// Hash computes a BLAKE3-256 hash of the input data.
func Hash(data []byte) types.Hash {
	return blake3.Sum256(data)
}

// TaggedHash hashes data under a domain tag so digests from different
// uses can never collide.
func TaggedHash(tag string, data ...[]byte) types.Hash {
	h := blake3.New()
	tagSum := blake3.Sum256([]byte(tag))
	h.Write(tagSum[:])
	for _, d := range data {
		h.Write(d)
	}
	var out types.Hash
	copy(out[:], h.Sum(nil))
	return out
}

// FingerprintFromPubKey derives a key fingerprint from a compressed public
// key. Fingerprint = BLAKE3(compressed_pubkey)[:20].
func FingerprintFromPubKey(pubKey []byte) types.Fingerprint {
	h := Hash(pubKey)
	var fp types.Fingerprint
	copy(fp[:], h[:types.FingerprintSize])
	return fp
}
