package main

import (
	"bytes"
	"flag"
	"fmt"

	"github.com/Klingon-tech/klingnet-mnemonic/config"
	"github.com/Klingon-tech/klingnet-mnemonic/internal/wallet"
)

func cmdKeystore(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fatal("Usage: mnemonic-cli keystore <save|load|list|info|delete|check> [flags]")
	}

	switch args[0] {
	case "save":
		cmdKeystoreSave(cfg, args[1:])
	case "load":
		cmdKeystoreLoad(cfg, args[1:])
	case "list":
		cmdKeystoreList(cfg)
	case "info":
		cmdKeystoreInfo(cfg, args[1:])
	case "delete":
		cmdKeystoreDelete(cfg, args[1:])
	case "check":
		cmdKeystoreCheck(cfg, args[1:])
	default:
		fatal("Unknown keystore command: %s\nUsage: mnemonic-cli keystore <save|load|list|info|delete|check> [flags]", args[0])
	}
}

func openKeystore(cfg *config.Config) *wallet.Keystore {
	ks, err := wallet.OpenKeystore(cfg.KeystoreDir(), cfg.KDFParams(), cfg.Keystore.CoinType)
	if err != nil {
		fatal("open keystore: %v", err)
	}
	return ks
}

func cmdKeystoreSave(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("keystore save", flag.ExitOnError)
	name := fs.String("name", "", "Backup name")
	sentence := fs.String("sentence", "", "Mnemonic sentence")
	lang := fs.String("lang", "", "Wordlist language (default: config, auto detects)")
	prompt := fs.Bool("passphrase-prompt", false, "Prompt for the BIP-39 passphrase used with this mnemonic")
	fs.Parse(args)

	if *name == "" {
		fatal("Usage: mnemonic-cli keystore save --name <name> [--sentence \"...\"]")
	}

	m, err := wallet.ParseMnemonic(readSentence(*sentence), readPassphrase(*prompt), decodeLanguage(cfg, *lang))
	if err != nil {
		fatal("%v", err)
	}

	password, err := readPassword("Enter password: ")
	if err != nil {
		fatal("read password: %v", err)
	}
	defer wallet.Wipe(password)
	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		fatal("read password: %v", err)
	}
	defer wallet.Wipe(confirm)
	if !bytes.Equal(password, confirm) {
		fatal("passwords do not match")
	}

	ks := openKeystore(cfg)
	defer ks.Close()

	info, err := ks.Save(*name, m, password)
	if err != nil {
		fatal("save backup: %v", err)
	}
	fmt.Printf("Backup saved: %s\n", info.Name)
	fmt.Printf("Fingerprint:  %s\n", info.Fingerprint)
}

func cmdKeystoreLoad(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("keystore load", flag.ExitOnError)
	name := fs.String("name", "", "Backup name")
	prompt := fs.Bool("passphrase-prompt", false, "Prompt for the BIP-39 passphrase")
	fs.Parse(args)

	if *name == "" {
		fatal("Usage: mnemonic-cli keystore load --name <name> [--passphrase-prompt]")
	}

	password, err := readPassword("Enter password: ")
	if err != nil {
		fatal("read password: %v", err)
	}
	defer wallet.Wipe(password)
	passphrase := readPassphrase(*prompt)

	ks := openKeystore(cfg)
	defer ks.Close()

	m, err := ks.Load(*name, password, passphrase)
	if err != nil {
		fatal("load backup: %v", err)
	}
	fmt.Println(m.Sentence())
}

func cmdKeystoreList(cfg *config.Config) {
	ks := openKeystore(cfg)
	defer ks.Close()

	infos, err := ks.List()
	if err != nil {
		fatal("list backups: %v", err)
	}
	if len(infos) == 0 {
		fmt.Println("No backups found.")
		return
	}
	fmt.Printf("%-20s %-20s %-6s %-10s %s\n", "NAME", "LANGUAGE", "WORDS", "FINGERPR.", "CREATED")
	for _, info := range infos {
		fmt.Printf("%-20s %-20s %-6d %-10s %s\n",
			info.Name,
			info.Language,
			info.WordCount,
			info.Fingerprint.Short(),
			info.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}
}

func cmdKeystoreInfo(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("keystore info", flag.ExitOnError)
	name := fs.String("name", "", "Backup name")
	fs.Parse(args)

	if *name == "" {
		fatal("Usage: mnemonic-cli keystore info --name <name>")
	}

	ks := openKeystore(cfg)
	defer ks.Close()

	info, err := ks.Info(*name)
	if err != nil {
		fatal("%v", err)
	}
	printJSON(info)
}

func cmdKeystoreDelete(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("keystore delete", flag.ExitOnError)
	name := fs.String("name", "", "Backup name")
	fs.Parse(args)

	if *name == "" {
		fatal("Usage: mnemonic-cli keystore delete --name <name>")
	}

	ks := openKeystore(cfg)
	defer ks.Close()

	if err := ks.Delete(*name); err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Backup deleted: %s\n", *name)
}

func cmdKeystoreCheck(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("keystore check", flag.ExitOnError)
	name := fs.String("name", "", "Backup name")
	sentence := fs.String("sentence", "", "Mnemonic sentence to check")
	lang := fs.String("lang", "", "Wordlist language (default: config, auto detects)")
	prompt := fs.Bool("passphrase-prompt", false, "Prompt for the BIP-39 passphrase")
	fs.Parse(args)

	if *name == "" {
		fatal("Usage: mnemonic-cli keystore check --name <name> [--sentence \"...\"]")
	}

	ks := openKeystore(cfg)
	defer ks.Close()

	info, err := ks.Info(*name)
	if err != nil {
		fatal("%v", err)
	}
	m, err := wallet.ParseMnemonic(readSentence(*sentence), readPassphrase(*prompt), decodeLanguage(cfg, *lang))
	if err != nil {
		fatal("%v", err)
	}
	if err := wallet.VerifyBackup(info, m); err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Mnemonic matches backup %s (%s)\n", info.Name, info.Fingerprint.Short())
}
