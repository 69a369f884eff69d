//go:build ignore

// derive_account.go prints the account-0 public key and fingerprint for a
// mnemonic stored in a text file.
// Usage: go run scripts/derive_account.go <mnemonic-file> [coin-type]
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/wallet"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: derive_account <mnemonic-file> [coin-type]")
		os.Exit(1)
	}
	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	coin := uint64(wallet.DefaultCoinType)
	if len(os.Args) > 2 {
		coin, err = strconv.ParseUint(os.Args[2], 10, 31)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	m, err := mnemonic.FromSentence(string(data), "", mnemonic.Unknown)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	master, err := wallet.MasterKeyFromMnemonic(m)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	key, err := master.DeriveAccount(uint32(coin), 0, wallet.ChangeExternal, 0)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("language=%s\n", m.Language())
	fmt.Printf("pubkey=%s\n", hex.EncodeToString(key.PublicKeyBytes()))
	fmt.Printf("fingerprint=%s\n", key.Fingerprint())
}
