// stellar-seed-keys derives Stellar account keys from BIP-0039 or Electrum
// seed phrases.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/reverbel/seed-phrases-for-stellar/config"
	"github.com/reverbel/seed-phrases-for-stellar/internal/log"
	"github.com/reverbel/seed-phrases-for-stellar/internal/stellar"
	"github.com/reverbel/seed-phrases-for-stellar/internal/wallet"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg := config.Default()

	// Scan for global flags that appear before the subcommand.
	args := os.Args[1:]
	for len(args) > 0 {
		switch {
		case args[0] == "--datadir" && len(args) > 1:
			cfg.DataDir = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--datadir="):
			cfg.DataDir = args[0][len("--datadir="):]
			args = args[1:]
		case args[0] == "--language" && len(args) > 1:
			cfg.Language = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--language="):
			cfg.Language = args[0][len("--language="):]
			args = args[1:]
		case args[0] == "--log-level" && len(args) > 1:
			cfg.Log.Level = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--log-level="):
			cfg.Log.Level = args[0][len("--log-level="):]
			args = args[1:]
		case args[0] == "--json-logs":
			cfg.Log.JSON = true
			args = args[1:]
		default:
			goto dispatch
		}
	}

dispatch:
	if err := config.Validate(cfg); err != nil {
		fatal("invalid configuration: %v", err)
	}
	log.Init(cfg.Log.Level, cfg.Log.JSON)

	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cmd := args[0]
	cmdArgs := args[1:]

	switch cmd {
	case "derive":
		cmdDerive(cmdArgs, cfg)
	case "classify":
		cmdClassify(cfg)
	case "wallet":
		cmdWallet(cmdArgs, cfg)
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: stellar-seed-keys [global flags] <command> [flags]

Global flags:
  --datadir <path>    Data directory (default: ~/.stellar-seed-keys)
  --language <lang>   BIP-0039 wordlist language (default: english)
  --log-level <lvl>   debug, info, warn or error (default: info)
  --json-logs         Emit JSON logs instead of colored console output

Commands:
  derive [-n N] [-s] [-F] [-L lang]
                                  Derive account keys from a seed phrase
                                  entered interactively. -n shows N accounts,
                                  -s also prints the binary seed,
                                  -F forces derivation for unknown phrases.
  classify                        Report the type of a seed phrase

  wallet create --name <n> [--generate]
                                  Store a seed phrase as an encrypted wallet
  wallet list                     List stored wallets
  wallet accounts --name <n>      List recorded accounts of a wallet
  wallet derive --name <n> --account <i> [--show-secret]
                                  Derive an account key from a stored wallet
  wallet delete --name <n>        Remove a stored wallet
`)
}

// newClassifier builds the classifier with the production collaborators.
// There is no legacy wordlist decoder wired in, so old Electrum phrases are
// recognized through the hex route only.
func newClassifier(cfg *config.Config) *wallet.Classifier {
	return wallet.NewClassifier(wallet.BIP39Checker{}, nil, cfg.Language)
}

// ── derive ──────────────────────────────────────────────────────────────

func cmdDerive(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("derive", flag.ExitOnError)
	accounts := fs.Int("n", 1, "Number of accounts to show")
	showSeed := fs.Bool("s", false, "Show the derived binary seed")
	force := fs.Bool("F", false, "Derive keys even for phrases of unknown type")
	language := fs.String("L", cfg.Language, "BIP-0039 wordlist language")
	fs.Parse(args)

	if *accounts < 1 {
		fatal("number of accounts must be greater than zero")
	}
	cfg.Language = *language

	phrase, err := readLine("Enter the seed phrase:\n")
	if err != nil {
		fatal("read seed phrase: %v", err)
	}
	passphrase, err := readLine("Enter optional custom words (passphrase) to extend the seed phrase:\n")
	if err != nil {
		fatal("read passphrase: %v", err)
	}

	seed, typ := newClassifier(cfg).ToBinarySeed(phrase, passphrase)
	defer zero(seed)

	fmt.Printf("     seed phrase: '%s'\n", wallet.NormalizeText(phrase))
	fmt.Printf("    custom words: '%s'\n", wallet.NormalizeText(passphrase))
	fmt.Printf("seed phrase type: %s\n", typ)

	if typ == wallet.Unknown && !*force {
		log.CLI.Warn().Msg("phrase matched no recognized standard; use -F to derive anyway")
		return
	}

	if *showSeed {
		fmt.Printf("     binary seed: %s\n", hex.EncodeToString(seed))
	}

	lib := stellar.KeypairLibrary{}
	for i := 0; i < *accounts; i++ {
		kp, err := wallet.AccountKeypair(lib, seed, uint32(i))
		if err != nil {
			fatal("derive account %d: %v", i, err)
		}
		if i == 0 {
			fmt.Printf("\n account #0 (primary):\n")
		} else {
			fmt.Printf("\n account #%d:\n", i)
		}
		fmt.Printf("      public key: %s\n", kp.Address)
		fmt.Printf("    private seed: %s\n", kp.Seed)
	}
}

// ── classify ────────────────────────────────────────────────────────────

func cmdClassify(cfg *config.Config) {
	phrase, err := readLine("Enter the seed phrase:\n")
	if err != nil {
		fatal("read seed phrase: %v", err)
	}

	typ := newClassifier(cfg).Classify(wallet.NormalizeText(phrase))
	fmt.Println(typ)
}

// ── wallet ──────────────────────────────────────────────────────────────

func cmdWallet(args []string, cfg *config.Config) {
	if len(args) < 1 {
		fatal("Usage: stellar-seed-keys wallet <create|list|accounts|derive|delete> [flags]")
	}

	switch args[0] {
	case "create":
		cmdWalletCreate(args[1:], cfg)
	case "list":
		cmdWalletList(cfg)
	case "accounts":
		cmdWalletAccounts(args[1:], cfg)
	case "derive":
		cmdWalletDerive(args[1:], cfg)
	case "delete":
		cmdWalletDelete(args[1:], cfg)
	default:
		fatal("unknown wallet subcommand: %s", args[0])
	}
}

func cmdWalletCreate(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("wallet create", flag.ExitOnError)
	name := fs.String("name", "", "Wallet name")
	generate := fs.Bool("generate", false, "Generate a fresh 24-word BIP-0039 phrase")
	fs.Parse(args)

	if *name == "" {
		fatal("Usage: stellar-seed-keys wallet create --name <name> [--generate]")
	}

	var phrase string
	if *generate {
		var err error
		phrase, err = wallet.GenerateMnemonic()
		if err != nil {
			fatal("generate mnemonic: %v", err)
		}
		fmt.Println("Seed phrase (write this down!):")
		fmt.Printf("  %s\n\n", phrase)
	} else {
		var err error
		phrase, err = readLine("Enter the seed phrase:\n")
		if err != nil {
			fatal("read seed phrase: %v", err)
		}
	}
	passphrase, err := readLine("Enter optional custom words (passphrase):\n")
	if err != nil {
		fatal("read passphrase: %v", err)
	}

	seed, typ := newClassifier(cfg).ToBinarySeed(phrase, passphrase)
	defer zero(seed)

	if typ == wallet.Unknown {
		fatal("seed phrase matched no recognized standard")
	}
	fmt.Printf("seed phrase type: %s\n", typ)

	password, err := readPassword("Enter password: ")
	if err != nil {
		fatal("read password: %v", err)
	}
	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		fatal("read password: %v", err)
	}
	if string(password) != string(confirm) {
		fatal("passwords do not match")
	}

	// Derive account 0 before sealing so the address can be recorded.
	kp, err := wallet.AccountKeypair(stellar.KeypairLibrary{}, seed, 0)
	if err != nil {
		fatal("derive account 0: %v", err)
	}

	ks, err := wallet.NewKeystore(cfg.KeystoreDir())
	if err != nil {
		fatal("create keystore: %v", err)
	}
	if err := ks.Create(*name, seed, password, typ, wallet.DefaultKDFParams()); err != nil {
		fatal("create wallet: %v", err)
	}
	if err := ks.AddAccount(*name, wallet.AccountEntry{Account: 0, Name: "Primary", Address: kp.Address}); err != nil {
		fatal("add account: %v", err)
	}

	log.Keystore.Info().Str("wallet", *name).Msg("wallet created")
	fmt.Printf("\nWallet created: %s\n", *name)
	fmt.Printf("Account 0 address: %s\n", kp.Address)
}

func cmdWalletList(cfg *config.Config) {
	ks, err := wallet.NewKeystore(cfg.KeystoreDir())
	if err != nil {
		fatal("open keystore: %v", err)
	}
	names, err := ks.List()
	if err != nil {
		fatal("list wallets: %v", err)
	}
	if len(names) == 0 {
		fmt.Println("No wallets.")
		return
	}
	for _, name := range names {
		typ, fp, created, err := ks.Describe(name)
		if err != nil {
			fatal("describe wallet %q: %v", name, err)
		}
		fmt.Printf("%s\t%s\tfingerprint %s\tcreated %s\n",
			name, typ, fp, created.Format("2006-01-02"))
	}
}

func cmdWalletAccounts(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("wallet accounts", flag.ExitOnError)
	name := fs.String("name", "", "Wallet name")
	fs.Parse(args)

	if *name == "" {
		fatal("Usage: stellar-seed-keys wallet accounts --name <name>")
	}

	ks, err := wallet.NewKeystore(cfg.KeystoreDir())
	if err != nil {
		fatal("open keystore: %v", err)
	}
	accounts, err := ks.ListAccounts(*name)
	if err != nil {
		fatal("list accounts: %v", err)
	}
	if len(accounts) == 0 {
		fmt.Println("No recorded accounts.")
		return
	}
	for _, acct := range accounts {
		fmt.Printf("account #%d\t%s\t%s\n", acct.Account, acct.Address, acct.Name)
	}
}

func cmdWalletDerive(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("wallet derive", flag.ExitOnError)
	name := fs.String("name", "", "Wallet name")
	account := fs.Uint("account", 0, "Account number")
	showSecret := fs.Bool("show-secret", false, "Also print the private seed string")
	fs.Parse(args)

	if *name == "" {
		fatal("Usage: stellar-seed-keys wallet derive --name <name> --account <i> [--show-secret]")
	}
	if *account > 1<<31-1 {
		fatal("account number must fit in 31 bits")
	}

	password, err := readPassword("Enter password: ")
	if err != nil {
		fatal("read password: %v", err)
	}

	ks, err := wallet.NewKeystore(cfg.KeystoreDir())
	if err != nil {
		fatal("open keystore: %v", err)
	}
	seed, err := ks.Load(*name, password)
	if err != nil {
		fatal("load wallet: %v", err)
	}
	defer zero(seed)

	kp, err := wallet.AccountKeypair(stellar.KeypairLibrary{}, seed, uint32(*account))
	if err != nil {
		fatal("derive account %d: %v", *account, err)
	}

	if err := ks.AddAccount(*name, wallet.AccountEntry{Account: uint32(*account), Address: kp.Address}); err != nil {
		log.Keystore.Warn().Err(err).Msg("could not record account")
	}

	fmt.Printf("account #%d\n", *account)
	fmt.Printf("  public key: %s\n", kp.Address)
	if *showSecret {
		fmt.Printf("private seed: %s\n", kp.Seed)
	}
}

func cmdWalletDelete(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("wallet delete", flag.ExitOnError)
	name := fs.String("name", "", "Wallet name")
	fs.Parse(args)

	if *name == "" {
		fatal("Usage: stellar-seed-keys wallet delete --name <name>")
	}

	ks, err := wallet.NewKeystore(cfg.KeystoreDir())
	if err != nil {
		fatal("open keystore: %v", err)
	}
	if err := ks.Delete(*name); err != nil {
		fatal("delete wallet: %v", err)
	}
	log.Keystore.Info().Str("wallet", *name).Msg("wallet deleted")
	fmt.Printf("Wallet deleted: %s\n", *name)
}

// ── Input helpers ───────────────────────────────────────────────────────

func readLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
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

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ── Error helper ────────────────────────────────────────────────────────

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
