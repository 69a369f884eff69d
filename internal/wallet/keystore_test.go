package wallet

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/storage"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
)

func testKeystore(t *testing.T) *Keystore {
	t.Helper()
	return NewKeystore(storage.NewMemory(), fastParams(), DefaultCoinType)
}

func testMnemonic(t *testing.T, passphrase string) *mnemonic.Mnemonic {
	t.Helper()
	m, err := mnemonic.FromSentence(abandonAbout, passphrase, mnemonic.English)
	if err != nil {
		t.Fatalf("FromSentence() error: %v", err)
	}
	return m
}

func TestKeystore_SaveLoad(t *testing.T) {
	ks := testKeystore(t)
	m := testMnemonic(t, "extra")

	info, err := ks.Save("main", m, []byte("password"))
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if info.Name != "main" || info.WordCount != 12 || info.Language != mnemonic.English {
		t.Errorf("unexpected info: %+v", info)
	}
	if info.CoinType != DefaultCoinType {
		t.Errorf("CoinType = %d, want %d", info.CoinType, DefaultCoinType)
	}
	if info.Fingerprint.IsZero() {
		t.Error("fingerprint should be set")
	}

	loaded, err := ks.Load("main", []byte("password"), "extra")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Sentence() != m.Sentence() {
		t.Errorf("Sentence() = %q, want %q", loaded.Sentence(), m.Sentence())
	}
	if !bytes.Equal(loaded.Seed(), m.Seed()) {
		t.Error("loaded seed should match original")
	}
}

func TestKeystore_SaveJapanese(t *testing.T) {
	ks := testKeystore(t)
	m, err := mnemonic.FromEntropy(make([]byte, 16), "", mnemonic.Japanese)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ks.Save("jp", m, []byte("pw")); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	loaded, err := ks.Load("jp", []byte("pw"), "")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Language() != mnemonic.Japanese || loaded.Sentence() != m.Sentence() {
		t.Error("Japanese backup should round trip with its language")
	}
}

func TestKeystore_Duplicate(t *testing.T) {
	ks := testKeystore(t)
	m := testMnemonic(t, "")
	if _, err := ks.Save("dup", m, []byte("pw")); err != nil {
		t.Fatal(err)
	}
	if _, err := ks.Save("dup", m, []byte("pw")); !errors.Is(err, ErrExists) {
		t.Errorf("error = %v, want ErrExists", err)
	}
}

func TestKeystore_WrongPassword(t *testing.T) {
	ks := testKeystore(t)
	if _, err := ks.Save("main", testMnemonic(t, ""), []byte("right")); err != nil {
		t.Fatal(err)
	}
	if _, err := ks.Load("main", []byte("wrong"), ""); !errors.Is(err, ErrDecrypt) {
		t.Errorf("error = %v, want ErrDecrypt", err)
	}
}

func TestKeystore_PassphraseMismatch(t *testing.T) {
	ks := testKeystore(t)
	if _, err := ks.Save("main", testMnemonic(t, "one"), []byte("pw")); err != nil {
		t.Fatal(err)
	}
	if _, err := ks.Load("main", []byte("pw"), "two"); !errors.Is(err, ErrPassphraseMismatch) {
		t.Errorf("error = %v, want ErrPassphraseMismatch", err)
	}
}

func TestKeystore_InvalidName(t *testing.T) {
	ks := testKeystore(t)
	m := testMnemonic(t, "")
	for _, name := range []string{"", "a/b", "has space", string(make([]byte, 65))} {
		if _, err := ks.Save(name, m, []byte("pw")); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Save(%q) error = %v, want ErrInvalidName", name, err)
		}
	}
}

func TestKeystore_CustomMnemonic(t *testing.T) {
	ks := testKeystore(t)
	m, err := mnemonic.FromCustomSentence("carcenogenic spiderpig sheep batman digger manly scooter about abandon tree footpath necter", "", mnemonic.English)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ks.Save("custom", m, []byte("pw")); !errors.Is(err, ErrNoEntropy) {
		t.Errorf("error = %v, want ErrNoEntropy", err)
	}
}

func TestKeystore_List(t *testing.T) {
	ks := testKeystore(t)
	m := testMnemonic(t, "")
	for _, name := range []string{"charlie", "alpha", "bravo"} {
		if _, err := ks.Save(name, m, []byte("pw")); err != nil {
			t.Fatal(err)
		}
	}

	infos, err := ks.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	want := []string{"alpha", "bravo", "charlie"}
	if len(infos) != len(want) {
		t.Fatalf("List() returned %d entries, want %d", len(infos), len(want))
	}
	for i, info := range infos {
		if info.Name != want[i] {
			t.Errorf("infos[%d].Name = %q, want %q", i, info.Name, want[i])
		}
	}
}

func TestKeystore_Delete(t *testing.T) {
	ks := testKeystore(t)
	if _, err := ks.Save("gone", testMnemonic(t, ""), []byte("pw")); err != nil {
		t.Fatal(err)
	}
	if err := ks.Delete("gone"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := ks.Info("gone"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Info() after delete error = %v, want ErrNotFound", err)
	}
	if err := ks.Delete("gone"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestKeystore_NotFound(t *testing.T) {
	ks := testKeystore(t)
	if _, err := ks.Load("missing", []byte("pw"), ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestKeystore_SharedDB(t *testing.T) {
	db := storage.NewMemory()
	if err := db.Put([]byte("other"), []byte("data")); err != nil {
		t.Fatal(err)
	}
	ks := NewKeystore(db, fastParams(), DefaultCoinType)
	if _, err := ks.Save("main", testMnemonic(t, ""), []byte("pw")); err != nil {
		t.Fatal(err)
	}
	infos, err := ks.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 1 {
		t.Errorf("List() returned %d entries, want 1", len(infos))
	}
}

func TestKeystore_BadgerPersistence(t *testing.T) {
	dir := t.TempDir()
	m := testMnemonic(t, "")

	ks, err := OpenKeystore(dir, fastParams(), DefaultCoinType)
	if err != nil {
		t.Fatalf("OpenKeystore() error: %v", err)
	}
	if _, err := ks.Save("persist", m, []byte("pw")); err != nil {
		t.Fatal(err)
	}
	if err := ks.Close(); err != nil {
		t.Fatal(err)
	}

	ks, err = OpenKeystore(dir, fastParams(), DefaultCoinType)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer ks.Close()
	loaded, err := ks.Load("persist", []byte("pw"), "")
	if err != nil {
		t.Fatalf("Load() after reopen error: %v", err)
	}
	if loaded.Sentence() != m.Sentence() {
		t.Error("persisted backup should load the same mnemonic")
	}
}
