package mnemonic

import (
	"crypto/sha256"
	"errors"
	"testing"
)

func TestChecksumBits(t *testing.T) {
	entropy := make([]byte, 16)
	sum := sha256.Sum256(entropy)

	cs, err := ChecksumBits(entropy, 4)
	if err != nil {
		t.Fatalf("ChecksumBits() error: %v", err)
	}
	if cs.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", cs.Len())
	}
	if got, want := cs.Uint(0, 4), uint64(sum[0]>>4); got != want {
		t.Errorf("checksum = %#x, want %#x", got, want)
	}
}

func TestChecksumBits_FullDigest(t *testing.T) {
	entropy := make([]byte, 1024)
	cs, err := ChecksumBits(entropy, MaxChecksumBits)
	if err != nil {
		t.Fatalf("ChecksumBits(256) error: %v", err)
	}
	sum := sha256.Sum256(entropy)
	if !cs.Equal(BitsFromBytes(sum[:])) {
		t.Error("256-bit checksum should equal the whole digest")
	}
}

func TestChecksumBits_TooLarge(t *testing.T) {
	_, err := ChecksumBits(make([]byte, 1028), MaxChecksumBits+1)
	if !errors.Is(err, ErrEntropyTooLarge) {
		t.Errorf("error = %v, want ErrEntropyTooLarge", err)
	}
}

func TestVerifyChecksum(t *testing.T) {
	entropy := []byte("0123456789abcdef")
	cs, err := ChecksumBits(entropy, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err := VerifyChecksum(entropy, cs); err != nil {
		t.Errorf("VerifyChecksum() error: %v", err)
	}

	var flipped Bits
	for i := 0; i < cs.Len(); i++ {
		flipped.AppendBit(cs.At(i) != (i == 3))
	}
	if err := VerifyChecksum(entropy, flipped); !errors.Is(err, ErrChecksumMismatch) {
		t.Errorf("VerifyChecksum(flipped) error = %v, want ErrChecksumMismatch", err)
	}
}
