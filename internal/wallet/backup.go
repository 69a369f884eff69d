package wallet

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/crypto"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
)

// ErrBackupMismatch is returned when a mnemonic does not control the
// account recorded in a backup.
var ErrBackupMismatch = errors.New("mnemonic does not match backup")

// VerifyBackup proves that m (with its passphrase) controls the account
// key recorded in info: the derived key signs a fresh random challenge and
// the signature is checked against the stored public key.
func VerifyBackup(info *Info, m *mnemonic.Mnemonic) error {
	pub, err := hex.DecodeString(info.PublicKey)
	if err != nil {
		return fmt.Errorf("stored public key: %w", err)
	}

	master, err := MasterKeyFromMnemonic(m)
	if err != nil {
		return err
	}
	account, err := master.DeriveAccount(info.CoinType, 0, ChangeExternal, 0)
	if err != nil {
		return err
	}
	signer, err := account.Signer()
	if err != nil {
		return err
	}
	defer signer.Zero()

	challenge := make([]byte, 32)
	if _, err := rand.Read(challenge); err != nil {
		return fmt.Errorf("generate challenge: %w", err)
	}
	sig, err := signer.SignMessage(challenge)
	if err != nil {
		return err
	}
	if !crypto.VerifyMessage(challenge, sig, pub) {
		log.Wallet.Warn().Str("name", info.Name).Msg("Backup check failed")
		return fmt.Errorf("%w %q", ErrBackupMismatch, info.Name)
	}
	log.Wallet.Debug().Str("name", info.Name).Msg("Backup check passed")
	return nil
}
