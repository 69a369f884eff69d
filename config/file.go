package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadFile loads configuration values from a .conf file.
// Format: key = value (one per line, # for comments). A missing file
// yields no values.
func LoadFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}
	defer file.Close()

	values := make(map[string]string)
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: invalid format (expected key = value)", lineNum)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		values[key] = value
	}

	return values, scanner.Err()
}

// ApplyFileConfig applies file configuration to a Config struct.
func ApplyFileConfig(cfg *Config, values map[string]string) error {
	for key, value := range values {
		if err := setConfigValue(cfg, key, value); err != nil {
			return fmt.Errorf("config key %q: %w", key, err)
		}
	}
	return nil
}

func setConfigValue(cfg *Config, key, value string) error {
	switch key {
	// Core
	case "datadir":
		cfg.DataDir = value

	// Mnemonic
	case "mnemonic.language", "language":
		cfg.Mnemonic.Language = value
	case "mnemonic.bits", "bits":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.Mnemonic.EntropyBits = n

	// Keystore
	case "keystore.memory":
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return err
		}
		cfg.Keystore.Memory = uint32(n)
	case "keystore.iterations":
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return err
		}
		cfg.Keystore.Iterations = uint32(n)
	case "keystore.parallelism":
		n, err := strconv.ParseUint(value, 10, 8)
		if err != nil {
			return err
		}
		cfg.Keystore.Parallelism = uint8(n)
	case "keystore.cointype":
		n, err := strconv.ParseUint(value, 10, 31)
		if err != nil {
			return err
		}
		cfg.Keystore.CoinType = uint32(n)

	// Logging
	case "log.level":
		cfg.Log.Level = value
	case "log.file":
		cfg.Log.File = value
	case "log.json":
		cfg.Log.JSON = parseBool(value)

	default:
		// Unknown keys are ignored
	}
	return nil
}

// parseBool parses a boolean value.
func parseBool(s string) bool {
	s = strings.ToLower(s)
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// WriteDefaultConfig writes a default configuration file.
func WriteDefaultConfig(path string) error {
	d := Default()
	content := `# Klingnet Mnemonic Configuration

# Data directory (default: ~/.klingnet-mnemonic)
# datadir = ~/.klingnet-mnemonic

# ============================================================================
# Mnemonic
# ============================================================================

# Default wordlist: english, japanese, spanish, chinese-simplified,
# chinese-traditional, french, or auto (detect when decoding)
mnemonic.language = ` + d.Mnemonic.Language + `

# Entropy size for new mnemonics: a multiple of 32 from 128 to 8192
mnemonic.bits = ` + strconv.Itoa(d.Mnemonic.EntropyBits) + `

# ============================================================================
# Keystore
# ============================================================================

# Argon2id parameters for sealing backups (memory in KiB)
keystore.memory = ` + strconv.FormatUint(uint64(d.Keystore.Memory), 10) + `
keystore.iterations = ` + strconv.FormatUint(uint64(d.Keystore.Iterations), 10) + `
keystore.parallelism = ` + strconv.FormatUint(uint64(d.Keystore.Parallelism), 10) + `

# BIP-44 coin type for the fingerprinted account key
keystore.cointype = ` + strconv.FormatUint(uint64(d.Keystore.CoinType), 10) + `

# ============================================================================
# Logging
# ============================================================================

log.level = ` + d.Log.Level + `
# log.file =
log.json = false
`
	return os.WriteFile(path, []byte(content), 0644)
}
