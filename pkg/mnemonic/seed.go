package mnemonic

import (
	"crypto/sha512"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	// SeedSize is the length of a derived seed in bytes.
	SeedSize = 64

	seedIterations = 2048
	seedSaltPrefix = "mnemonic"
)

// DeriveSeed stretches a sentence and passphrase into a 64-byte seed with
// PBKDF2-HMAC-SHA512. Both inputs are NFKD-normalized first. The sentence
// is not checked against any wordlist, so sentences with custom words
// produce a seed as well.
func DeriveSeed(sentence, passphrase string) []byte {
	password := []byte(norm.NFKD.String(sentence))
	salt := []byte(seedSaltPrefix + norm.NFKD.String(passphrase))
	return pbkdf2.Key(password, salt, seedIterations, SeedSize, sha512.New)
}

// DeriveSeedHex is DeriveSeed encoded as lowercase hex.
func DeriveSeedHex(sentence, passphrase string) string {
	return hex.EncodeToString(DeriveSeed(sentence, passphrase))
}
