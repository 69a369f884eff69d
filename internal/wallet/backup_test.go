package wallet

import (
	"errors"
	"testing"
)

func TestVerifyBackup(t *testing.T) {
	ks := testKeystore(t)
	info, err := ks.Save("main", testMnemonic(t, "pass"), []byte("pw"))
	if err != nil {
		t.Fatal(err)
	}

	if err := VerifyBackup(info, testMnemonic(t, "pass")); err != nil {
		t.Errorf("VerifyBackup() with matching mnemonic error: %v", err)
	}
	if err := VerifyBackup(info, testMnemonic(t, "other")); !errors.Is(err, ErrBackupMismatch) {
		t.Errorf("VerifyBackup() with wrong passphrase error = %v, want ErrBackupMismatch", err)
	}
}

func TestVerifyBackup_BadPublicKey(t *testing.T) {
	info := &Info{Name: "broken", CoinType: DefaultCoinType, PublicKey: "zz"}
	if err := VerifyBackup(info, testMnemonic(t, "")); err == nil {
		t.Error("VerifyBackup() should reject an undecodable public key")
	}
}
