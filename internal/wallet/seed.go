package wallet

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
)

// SeedSize is the length of a derived seed in bytes (512 bits).
const SeedSize = mnemonic.SeedSize

// SeedFromMnemonic validates sentence and derives its seed. Unlike
// mnemonic.DeriveSeed it refuses sentences that fail the checksum.
func SeedFromMnemonic(sentence, passphrase string, lang mnemonic.Language) ([]byte, error) {
	m, err := ParseMnemonic(sentence, passphrase, lang)
	if err != nil {
		return nil, err
	}
	seed := m.Seed()
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("derive seed: got %d bytes, want %d", len(seed), SeedSize)
	}
	return seed, nil
}
