// Package wallet derives HD keys from mnemonics and keeps encrypted
// mnemonic backups.
package wallet

import (
	"context"
	"fmt"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
)

// DefaultEntropyBits is the entropy size for 24-word mnemonics.
const DefaultEntropyBits = 256

// GenerateMnemonic creates a new mnemonic of the given entropy size.
func GenerateMnemonic(ctx context.Context, bits int, lang mnemonic.Language) (*mnemonic.Mnemonic, error) {
	defer log.Benchmark(log.Wallet, "generate mnemonic")()

	m, err := mnemonic.New(ctx, bits, "", lang)
	if err != nil {
		return nil, fmt.Errorf("generate mnemonic: %w", err)
	}
	log.Wallet.Debug().
		Str("language", lang.String()).
		Int("words", m.WordCount()).
		Msg("Generated mnemonic")
	return m, nil
}

// ParseMnemonic decodes and checksum-verifies a sentence. Pass
// mnemonic.Unknown to detect the language.
func ParseMnemonic(sentence, passphrase string, lang mnemonic.Language) (*mnemonic.Mnemonic, error) {
	m, err := mnemonic.FromSentence(sentence, passphrase, lang)
	if err != nil {
		return nil, fmt.Errorf("invalid mnemonic: %w", err)
	}
	if lang == mnemonic.Unknown {
		log.Wallet.Debug().
			Str("detected", m.Language().String()).
			Int("words", m.WordCount()).
			Msg("Detected mnemonic language")
	}
	return m, nil
}

// ValidateMnemonic checks word count, word membership and checksum.
func ValidateMnemonic(sentence string, lang mnemonic.Language) error {
	_, err := ParseMnemonic(sentence, "", lang)
	return err
}
