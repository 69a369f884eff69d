package wallet

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/internal/storage"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/types"
)

const (
	recordVersion = 1
	recordPrefix  = "mnemonic/"
)

// Keystore errors.
var (
	ErrExists             = errors.New("backup already exists")
	ErrNotFound           = errors.New("backup not found")
	ErrInvalidName        = errors.New("backup names may contain only letters, digits, '.', '_' and '-'")
	ErrNoEntropy          = errors.New("mnemonic has unresolved words and cannot be stored")
	ErrPassphraseMismatch = errors.New("passphrase does not match the stored fingerprint")
)

var validName = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// Info is the public part of a stored backup.
type Info struct {
	Name        string            `json:"name"`
	CreatedAt   time.Time         `json:"created_at"`
	Language    mnemonic.Language `json:"language"`
	WordCount   int               `json:"word_count"`
	CoinType    uint32            `json:"coin_type"`
	Fingerprint types.Fingerprint `json:"fingerprint"`
	PublicKey   string            `json:"public_key"` // hex, m/44'/coin'/0'/0/0
}

// record is the stored JSON form of a backup.
type record struct {
	Version int `json:"version"`
	Info
	SealedEntropy []byte `json:"sealed_entropy"`
}

// Keystore stores password-sealed mnemonic entropy in a storage.DB.
// Passphrases are never stored; the account fingerprint recorded at save
// time lets Load tell whether the right passphrase was supplied.
type Keystore struct {
	db       storage.DB
	records  *storage.PrefixDB
	params   KDFParams
	coinType uint32
}

// NewKeystore creates a keystore on top of db. Close closes db.
func NewKeystore(db storage.DB, params KDFParams, coinType uint32) *Keystore {
	return &Keystore{
		db:       db,
		records:  storage.NewPrefixDB(db, []byte(recordPrefix)),
		params:   params,
		coinType: coinType,
	}
}

// OpenKeystore opens a Badger-backed keystore in dir. Close releases it.
func OpenKeystore(dir string, params KDFParams, coinType uint32) (*Keystore, error) {
	db, err := storage.NewBadger(dir)
	if err != nil {
		return nil, err
	}
	log.Storage.Debug().Str("dir", dir).Msg("Opened keystore database")
	return NewKeystore(db, params, coinType), nil
}

// Close closes the underlying database.
func (ks *Keystore) Close() error {
	return ks.db.Close()
}

// Save seals m's entropy under password and stores it as name.
func (ks *Keystore) Save(name string, m *mnemonic.Mnemonic, password []byte) (*Info, error) {
	if !validName.MatchString(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if !m.Valid() {
		return nil, ErrNoEntropy
	}
	exists, err := ks.records.Has([]byte(name))
	if err != nil {
		return nil, fmt.Errorf("check backup: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %q", ErrExists, name)
	}

	account, err := ks.accountKey(m)
	if err != nil {
		return nil, err
	}

	entropy := m.Entropy()
	defer Wipe(entropy)
	sealed, err := Seal(entropy, password, ks.params)
	if err != nil {
		return nil, fmt.Errorf("seal entropy: %w", err)
	}

	rec := record{
		Version: recordVersion,
		Info: Info{
			Name:        name,
			CreatedAt:   time.Now().UTC(),
			Language:    m.Language(),
			WordCount:   m.WordCount(),
			CoinType:    ks.coinType,
			Fingerprint: account.Fingerprint(),
			PublicKey:   hex.EncodeToString(account.PublicKeyBytes()),
		},
		SealedEntropy: sealed,
	}
	if err := ks.write(&rec); err != nil {
		return nil, err
	}

	log.Keystore.Info().
		Str("name", name).
		Str("fingerprint", rec.Fingerprint.Short()).
		Int("words", rec.WordCount).
		Msg("Saved mnemonic backup")
	return &rec.Info, nil
}

// Load unseals the backup called name and rebuilds its mnemonic with
// passphrase applied. A passphrase that yields a different account key
// than the one recorded at save time fails with ErrPassphraseMismatch.
func (ks *Keystore) Load(name string, password []byte, passphrase string) (*mnemonic.Mnemonic, error) {
	rec, err := ks.read(name)
	if err != nil {
		return nil, err
	}

	entropy, err := Open(rec.SealedEntropy, password)
	if err != nil {
		log.Keystore.Warn().Str("name", name).Msg("Failed to unseal backup")
		return nil, fmt.Errorf("unseal %q: %w", name, err)
	}
	defer Wipe(entropy)

	m, err := mnemonic.FromEntropy(entropy, passphrase, rec.Language)
	if err != nil {
		return nil, fmt.Errorf("rebuild mnemonic: %w", err)
	}

	account, err := ks.accountKeyFor(m, rec.CoinType)
	if err != nil {
		return nil, err
	}
	if account.Fingerprint() != rec.Fingerprint {
		return nil, ErrPassphraseMismatch
	}

	log.Keystore.Debug().Str("name", name).Msg("Loaded mnemonic backup")
	return m, nil
}

// Info returns the public metadata of a backup without unsealing it.
func (ks *Keystore) Info(name string) (*Info, error) {
	rec, err := ks.read(name)
	if err != nil {
		return nil, err
	}
	return &rec.Info, nil
}

// List returns metadata for every backup, sorted by name.
func (ks *Keystore) List() ([]Info, error) {
	var out []Info
	err := ks.records.ForEach(nil, func(key, value []byte) error {
		rec, err := decodeRecord(value)
		if err != nil {
			return fmt.Errorf("backup %q: %w", key, err)
		}
		out = append(out, rec.Info)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a backup.
func (ks *Keystore) Delete(name string) error {
	exists, err := ks.records.Has([]byte(name))
	if err != nil {
		return fmt.Errorf("check backup: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err := ks.records.Delete([]byte(name)); err != nil {
		return fmt.Errorf("delete backup: %w", err)
	}
	log.Keystore.Info().Str("name", name).Msg("Deleted mnemonic backup")
	return nil
}

func (ks *Keystore) accountKey(m *mnemonic.Mnemonic) (*HDKey, error) {
	return ks.accountKeyFor(m, ks.coinType)
}

func (ks *Keystore) accountKeyFor(m *mnemonic.Mnemonic, coin uint32) (*HDKey, error) {
	master, err := MasterKeyFromMnemonic(m)
	if err != nil {
		return nil, err
	}
	return master.DeriveAccount(coin, 0, ChangeExternal, 0)
}

func (ks *Keystore) write(rec *record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal backup: %w", err)
	}
	if err := ks.records.Put([]byte(rec.Name), data); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

func (ks *Keystore) read(name string) (*record, error) {
	data, err := ks.records.Get([]byte(name))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("read backup: %w", err)
	}
	return decodeRecord(data)
}

func decodeRecord(data []byte) (*record, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse backup: %w", err)
	}
	if rec.Version != recordVersion {
		return nil, fmt.Errorf("unsupported backup version: %d", rec.Version)
	}
	return &rec, nil
}
