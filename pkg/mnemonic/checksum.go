package mnemonic

import (
	"crypto/sha256"
	"fmt"
)

// MaxChecksumBits is the largest checksum a SHA-256 digest can supply.
const MaxChecksumBits = sha256.Size * 8

// ChecksumBits returns the first n bits of SHA-256(entropy).
func ChecksumBits(entropy []byte, n int) (Bits, error) {
	if n > MaxChecksumBits {
		return Bits{}, fmt.Errorf("%w: %d bits requested, digest has %d", ErrEntropyTooLarge, n, MaxChecksumBits)
	}
	if n < 0 {
		return Bits{}, fmt.Errorf("%w: negative checksum length %d", ErrInvalidEntropySize, n)
	}
	sum := sha256.Sum256(entropy)
	return BitsFromBytes(sum[:]).Slice(0, n), nil
}

// VerifyChecksum recomputes the checksum of entropy at the length of
// claimed and compares every bit.
func VerifyChecksum(entropy []byte, claimed Bits) error {
	want, err := ChecksumBits(entropy, claimed.Len())
	if err != nil {
		return err
	}
	if !want.Equal(claimed) {
		return ErrChecksumMismatch
	}
	return nil
}
