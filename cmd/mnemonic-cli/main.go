// mnemonic-cli generates, decodes and stores BIP-39 mnemonics.
package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Klingon-tech/klingnet-mnemonic/config"
	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/internal/wallet"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
	"golang.org/x/term"
)

func main() {
	cfg, flags, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			usage()
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		usage()
		os.Exit(1)
	}
	if flags.Help {
		usage()
		return
	}
	if flags.Version {
		fmt.Printf("mnemonic-cli version %s\n", config.Version)
		return
	}

	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fatal("init logging: %v", err)
	}

	args := flags.Args
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := args[0]
	cmdArgs := args[1:]
	log.CLI.Debug().Str("command", cmd).Str("datadir", cfg.DataDir).Msg("Running command")

	switch cmd {
	case "generate":
		cmdGenerate(ctx, cfg, cmdArgs)
	case "encode":
		cmdEncode(cfg, cmdArgs)
	case "decode":
		cmdDecode(cfg, cmdArgs)
	case "seed":
		cmdSeed(cfg, cmdArgs)
	case "detect":
		cmdDetect(cmdArgs)
	case "translate":
		cmdTranslate(cfg, cmdArgs)
	case "inspect":
		cmdInspect(cfg, cmdArgs)
	case "wordlist":
		cmdWordlist(cfg, cmdArgs)
	case "keystore":
		cmdKeystore(cfg, cmdArgs)
	case "version":
		fmt.Printf("mnemonic-cli version %s\n", config.Version)
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: mnemonic-cli [global flags] <command> [flags]

Global flags:
  --datadir <path>    Data directory (default: ~/.klingnet-mnemonic)
  --config <path>     Config file (default: <datadir>/mnemonic.conf)
  --lang <lang>       Default wordlist language (default: english)
  --bits <n>          Default entropy size for generate (default: 256)
  --log-level <lvl>   debug, info, warn (default), error
  --log-json          Output logs as JSON
  --log-file <path>   Also write JSON logs to a file

Languages:
  english, japanese, spanish, chinese-simplified, chinese-traditional,
  french, or auto (detect from the words)

Commands:
  generate [--bits <n>] [--lang <l>]
                                  Generate a new mnemonic
  encode --entropy <hex> [--lang <l>]
                                  Encode entropy as a mnemonic
  decode --sentence "..." [--lang <l>]
                                  Decode and checksum-verify a mnemonic
  seed --sentence "..." [--passphrase-prompt] [--strict]
                                  Derive the 64-byte seed (words are not
                                  checked unless --strict is given)
  detect <word>...                Guess the wordlist language
  translate --sentence "..." --to <l> [--from <l>]
                                  Re-encode a mnemonic in another language
  inspect --sentence "..." [--passphrase-prompt] [--json]
                                  Show entropy, seed, master xpub, fingerprint
  wordlist [--lang <l>] [--prefix <p>]
                                  Print wordlist entries with their indices

  keystore save --name <n> --sentence "..." [--passphrase-prompt]
                                  Seal a mnemonic under a password
  keystore load --name <n> [--passphrase-prompt]
                                  Unseal and print a stored mnemonic
  keystore list                   List stored backups
  keystore info --name <n>        Show a backup without unsealing it
  keystore delete --name <n>      Delete a backup
  keystore check --name <n> --sentence "..." [--passphrase-prompt]
                                  Check a written-down mnemonic against a backup

When --sentence is omitted the mnemonic is read from standard input.
`)
}

// ── generate ────────────────────────────────────────────────────────────

func cmdGenerate(ctx context.Context, cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	bits := fs.Int("bits", cfg.Mnemonic.EntropyBits, "Entropy size in bits")
	lang := fs.String("lang", "", "Wordlist language")
	fs.Parse(args)

	m, err := wallet.GenerateMnemonic(ctx, *bits, encodeLanguage(cfg, *lang))
	if err != nil {
		fatal("%v", err)
	}
	fmt.Println(m.Sentence())
}

// ── encode / decode ─────────────────────────────────────────────────────

func cmdEncode(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	entropyHex := fs.String("entropy", "", "Entropy as hex")
	lang := fs.String("lang", "", "Wordlist language")
	fs.Parse(args)

	if *entropyHex == "" {
		fatal("Usage: mnemonic-cli encode --entropy <hex> [--lang <l>]")
	}
	entropy, err := hex.DecodeString(strings.TrimPrefix(*entropyHex, "0x"))
	if err != nil {
		fatal("invalid entropy hex: %v", err)
	}
	sentence, err := mnemonic.Encode(entropy, encodeLanguage(cfg, *lang))
	if err != nil {
		fatal("%v", err)
	}
	fmt.Println(sentence)
}

func cmdDecode(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	sentence := fs.String("sentence", "", "Mnemonic sentence")
	lang := fs.String("lang", "", "Wordlist language (default: config, auto detects)")
	fs.Parse(args)

	m, err := wallet.ParseMnemonic(readSentence(*sentence), "", decodeLanguage(cfg, *lang))
	if err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Entropy:  %s\n", m.EntropyHex())
	fmt.Printf("Bits:     %d\n", len(m.Entropy())*8)
	fmt.Printf("Words:    %d\n", m.WordCount())
	fmt.Printf("Language: %s\n", m.Language())
}

// ── seed ────────────────────────────────────────────────────────────────

func cmdSeed(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	sentence := fs.String("sentence", "", "Mnemonic sentence")
	prompt := fs.Bool("passphrase-prompt", false, "Prompt for a BIP-39 passphrase")
	strict := fs.Bool("strict", false, "Reject unknown words and bad checksums")
	lang := fs.String("lang", "", "Wordlist language for --strict")
	fs.Parse(args)

	s := readSentence(*sentence)
	passphrase := readPassphrase(*prompt)

	if *strict {
		seed, err := wallet.SeedFromMnemonic(s, passphrase, decodeLanguage(cfg, *lang))
		if err != nil {
			fatal("%v", err)
		}
		defer wallet.Wipe(seed)
		fmt.Println(hex.EncodeToString(seed))
		return
	}
	fmt.Println(mnemonic.DeriveSeedHex(s, passphrase))
}

// ── detect / translate ──────────────────────────────────────────────────

func cmdDetect(args []string) {
	if len(args) == 0 {
		fatal("Usage: mnemonic-cli detect <word>...")
	}
	tokens := mnemonic.SplitWords(strings.Join(args, " "))
	lang := mnemonic.DetectLanguage(tokens)
	if lang == mnemonic.Unknown {
		fatal("no word matches any supported wordlist")
	}
	fmt.Println(lang)
}

func cmdTranslate(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("translate", flag.ExitOnError)
	sentence := fs.String("sentence", "", "Mnemonic sentence")
	from := fs.String("from", "", "Source language (default: config, auto detects)")
	to := fs.String("to", "", "Target language")
	fs.Parse(args)

	if *to == "" {
		fatal("Usage: mnemonic-cli translate --sentence \"...\" --to <lang> [--from <lang>]")
	}
	target, err := mnemonic.ParseLanguage(*to)
	if err != nil {
		fatal("%v", err)
	}

	m, err := wallet.ParseMnemonic(readSentence(*sentence), "", decodeLanguage(cfg, *from))
	if err != nil {
		fatal("%v", err)
	}
	if err := m.SetLanguage(target); err != nil {
		fatal("%v", err)
	}
	fmt.Println(m.Sentence())
}

// ── inspect ─────────────────────────────────────────────────────────────

type inspectResult struct {
	Language    string   `json:"language"`
	WordCount   int      `json:"word_count"`
	Valid       bool     `json:"valid"`
	Entropy     string   `json:"entropy,omitempty"`
	Indices     []int    `json:"indices"`
	Seed        string   `json:"seed"`
	MasterXPub  string   `json:"master_xpub"`
	Fingerprint string   `json:"fingerprint"`
	Unknown     []string `json:"unknown_words,omitempty"`
}

func cmdInspect(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	sentence := fs.String("sentence", "", "Mnemonic sentence")
	lang := fs.String("lang", "", "Wordlist language (default: config, auto detects)")
	prompt := fs.Bool("passphrase-prompt", false, "Prompt for a BIP-39 passphrase")
	asJSON := fs.Bool("json", false, "Print JSON")
	fs.Parse(args)

	s := readSentence(*sentence)
	m, err := mnemonic.FromCustomSentence(s, readPassphrase(*prompt), decodeLanguage(cfg, *lang))
	if err != nil {
		fatal("%v", err)
	}

	master, err := wallet.MasterKeyFromMnemonic(m)
	if err != nil {
		fatal("derive master key: %v", err)
	}

	res := inspectResult{
		Language:    m.Language().String(),
		WordCount:   m.WordCount(),
		Valid:       m.Valid(),
		Entropy:     m.EntropyHex(),
		Indices:     m.Indices(),
		Seed:        m.SeedHex(),
		MasterXPub:  master.Neuter().ExtendedKey(),
		Fingerprint: master.Fingerprint().String(),
	}
	words := m.Words()
	for i, idx := range res.Indices {
		if idx == mnemonic.AbsentIndex {
			res.Unknown = append(res.Unknown, words[i])
		}
	}

	if *asJSON {
		printJSON(res)
		return
	}
	fmt.Printf("Language:    %s\n", res.Language)
	fmt.Printf("Words:       %d\n", res.WordCount)
	fmt.Printf("Valid:       %v\n", res.Valid)
	if res.Entropy != "" {
		fmt.Printf("Entropy:     %s\n", res.Entropy)
	}
	if len(res.Unknown) > 0 {
		fmt.Printf("Unknown:     %s\n", strings.Join(res.Unknown, ", "))
	}
	fmt.Printf("Seed:        %s\n", res.Seed)
	fmt.Printf("Master xpub: %s\n", res.MasterXPub)
	fmt.Printf("Fingerprint: %s\n", res.Fingerprint)
}

// ── wordlist ────────────────────────────────────────────────────────────

func cmdWordlist(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("wordlist", flag.ExitOnError)
	lang := fs.String("lang", "", "Wordlist language")
	prefix := fs.String("prefix", "", "Only print words with this prefix")
	fs.Parse(args)

	wl, err := mnemonic.WordlistFor(encodeLanguage(cfg, *lang))
	if err != nil {
		fatal("%v", err)
	}
	for _, i := range wl.WithPrefix(*prefix) {
		fmt.Printf("%4d  %s\n", i, wl.Word(i))
	}
}

// ── Helpers ─────────────────────────────────────────────────────────────

// encodeLanguage resolves the language for producing words. "auto" has no
// meaning there and falls back to English.
func encodeLanguage(cfg *config.Config, flagValue string) mnemonic.Language {
	lang := decodeLanguage(cfg, flagValue)
	if lang == mnemonic.Unknown {
		return mnemonic.English
	}
	return lang
}

// decodeLanguage resolves the language for reading words; Unknown means
// detect.
func decodeLanguage(cfg *config.Config, flagValue string) mnemonic.Language {
	if flagValue == "" {
		return cfg.Language()
	}
	lang, err := mnemonic.ParseLanguage(flagValue)
	if err != nil {
		fatal("%v", err)
	}
	return lang
}

// readSentence returns s, or one line from stdin when s is empty.
func readSentence(s string) string {
	if s != "" {
		return s
	}
	if term.IsTerminal(int(syscall.Stdin)) {
		fmt.Fprint(os.Stderr, "Enter mnemonic: ")
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		fatal("read mnemonic: %v", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		fatal("no mnemonic given")
	}
	return line
}

func readPassphrase(prompt bool) string {
	if !prompt {
		return ""
	}
	p, err := readPassword("Enter passphrase: ")
	if err != nil {
		fatal("read passphrase: %v", err)
	}
	return string(p)
}

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return nil, err
	}
	return password, nil
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatal("encode json: %v", err)
	}
	fmt.Println(string(data))
}

// ── Error helper ────────────────────────────────────────────────────────

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
