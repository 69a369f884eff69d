package config

import (
	"github.com/Klingon-tech/klingnet-mnemonic/internal/wallet"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
)

// Default returns the default configuration.
func Default() *Config {
	kdf := wallet.DefaultKDFParams()
	return &Config{
		DataDir: DefaultDataDir(),
		Mnemonic: MnemonicConfig{
			Language:    string(mnemonic.English),
			EntropyBits: wallet.DefaultEntropyBits,
		},
		Keystore: KeystoreConfig{
			Memory:      kdf.Memory,
			Iterations:  kdf.Iterations,
			Parallelism: kdf.Parallelism,
			CoinType:    wallet.DefaultCoinType,
		},
		Log: LogConfig{
			Level: "warn",
			JSON:  false,
		},
	}
}
