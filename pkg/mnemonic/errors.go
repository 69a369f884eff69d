package mnemonic

import (
	"errors"
	"fmt"
)

// Mnemonic errors.
var (
	ErrInvalidEntropySize    = errors.New("entropy must be a multiple of 32 bits between 128 and 8192")
	ErrInvalidMnemonicLength = errors.New("mnemonic must have at least 12 words and a multiple of 3")
	ErrUnknownWord           = errors.New("word not in wordlist")
	ErrChecksumMismatch      = errors.New("mnemonic checksum mismatch")
	ErrMisalignedChecksum    = errors.New("entropy bits not byte aligned")
	ErrEntropyTooLarge       = errors.New("checksum exceeds digest size")
	ErrCannotRebuildSentence = errors.New("cannot rebuild sentence with unresolved words")
	ErrUnsupportedLanguage   = errors.New("unsupported language")
	ErrInvalidIndex          = errors.New("word index out of range")
)

// UnknownWordError reports a token that is missing from a wordlist.
type UnknownWordError struct {
	Word     string
	Position int
	Language Language
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("word %d %q not in %s wordlist", e.Position+1, e.Word, e.Language)
}

// Unwrap lets errors.Is match ErrUnknownWord.
func (e *UnknownWordError) Unwrap() error {
	return ErrUnknownWord
}
