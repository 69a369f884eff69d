package config

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
)

// Validate checks the config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.DataDir == "" {
		return fmt.Errorf("datadir must not be empty")
	}
	if _, err := mnemonic.ParseLanguage(cfg.Mnemonic.Language); err != nil {
		return fmt.Errorf("mnemonic.language: %w", err)
	}
	if err := mnemonic.ValidateEntropyBits(cfg.Mnemonic.EntropyBits); err != nil {
		return fmt.Errorf("mnemonic.bits: %w", err)
	}
	if err := cfg.KDFParams().Validate(); err != nil {
		return fmt.Errorf("keystore: %w", err)
	}
	if cfg.Keystore.CoinType >= 1<<31 {
		return fmt.Errorf("keystore.cointype must be below 2^31")
	}
	if _, err := log.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
