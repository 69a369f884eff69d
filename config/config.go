// Package config handles application configuration.
//
// Settings are resolved in order: built-in defaults, the mnemonic.conf
// file in the data directory, then command-line flags.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/wallet"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
)

// ConfigFileName is the name of the config file inside the data directory.
const ConfigFileName = "mnemonic.conf"

// Config holds runtime configuration for the mnemonic tools.
type Config struct {
	// Core
	DataDir string `conf:"datadir"`

	// Mnemonic defaults
	Mnemonic MnemonicConfig

	// Encrypted backups
	Keystore KeystoreConfig

	// Logging
	Log LogConfig
}

// MnemonicConfig holds defaults for generating and parsing mnemonics.
type MnemonicConfig struct {
	Language    string `conf:"mnemonic.language"` // "auto" detects on decode
	EntropyBits int    `conf:"mnemonic.bits"`
}

// KeystoreConfig holds keystore sealing and derivation settings.
type KeystoreConfig struct {
	Memory      uint32 `conf:"keystore.memory"` // KiB
	Iterations  uint32 `conf:"keystore.iterations"`
	Parallelism uint8  `conf:"keystore.parallelism"`
	CoinType    uint32 `conf:"keystore.cointype"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// Language returns the configured mnemonic language. An unparsable value
// yields mnemonic.Unknown; Validate reports it.
func (c *Config) Language() mnemonic.Language {
	lang, err := mnemonic.ParseLanguage(c.Mnemonic.Language)
	if err != nil {
		return mnemonic.Unknown
	}
	return lang
}

// KDFParams returns the Argon2id parameters for sealing backups.
func (c *Config) KDFParams() wallet.KDFParams {
	return wallet.KDFParams{
		Memory:      c.Keystore.Memory,
		Iterations:  c.Keystore.Iterations,
		Parallelism: c.Keystore.Parallelism,
	}
}

// =============================================================================
// Directory helpers
// =============================================================================

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.klingnet-mnemonic
//	macOS:   ~/Library/Application Support/KlingnetMnemonic
//	Windows: %APPDATA%\KlingnetMnemonic
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".klingnet-mnemonic"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "KlingnetMnemonic")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "KlingnetMnemonic")
		}
		return filepath.Join(home, "AppData", "Roaming", "KlingnetMnemonic")
	default:
		return filepath.Join(home, ".klingnet-mnemonic")
	}
}

// KeystoreDir returns the keystore database directory.
func (c *Config) KeystoreDir() string {
	return filepath.Join(c.DataDir, "keystore")
}

// LogsDir returns the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.DataDir, "logs")
}

// ConfigFile returns the config file path.
func (c *Config) ConfigFile() string {
	return filepath.Join(c.DataDir, ConfigFileName)
}
