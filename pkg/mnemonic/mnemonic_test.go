package mnemonic

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	m, err := New(context.Background(), 256, "", English)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if m.WordCount() != 24 {
		t.Errorf("WordCount() = %d, want 24", m.WordCount())
	}
	if len(m.Entropy()) != 32 {
		t.Errorf("entropy length = %d, want 32", len(m.Entropy()))
	}
	if !m.Valid() {
		t.Error("generated mnemonic should be valid")
	}
	back, err := FromSentence(m.Sentence(), "", Unknown)
	if err != nil {
		t.Fatalf("FromSentence(generated) error: %v", err)
	}
	if !bytes.Equal(back.Entropy(), m.Entropy()) {
		t.Error("generated sentence should decode to its entropy")
	}
}

func TestNew_Unique(t *testing.T) {
	a, err := New(context.Background(), 128, "", English)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(context.Background(), 128, "", English)
	if err != nil {
		t.Fatal(err)
	}
	if a.Sentence() == b.Sentence() {
		t.Error("two generated mnemonics should not be identical")
	}
}

func TestNewFromSource(t *testing.T) {
	src := bytes.NewReader(make([]byte, 16))
	m, err := NewFromSource(context.Background(), src, 128, trezorPassphrase, English)
	if err != nil {
		t.Fatalf("NewFromSource() error: %v", err)
	}
	if m.Sentence() != englishVectors[0].sentence {
		t.Errorf("Sentence() = %q, want %q", m.Sentence(), englishVectors[0].sentence)
	}
	if m.SeedHex() != englishVectors[0].seed {
		t.Errorf("SeedHex() = %s, want %s", m.SeedHex(), englishVectors[0].seed)
	}
}

func TestNew_InvalidSize(t *testing.T) {
	if _, err := New(context.Background(), 100, "", English); !errors.Is(err, ErrInvalidEntropySize) {
		t.Errorf("error = %v, want ErrInvalidEntropySize", err)
	}
}

func TestFromEntropy_Vectors(t *testing.T) {
	for _, v := range englishVectors {
		m, err := FromEntropy(mustHex(t, v.entropy), trezorPassphrase, English)
		if err != nil {
			t.Fatalf("FromEntropy(%s) error: %v", v.entropy, err)
		}
		if m.Sentence() != v.sentence {
			t.Errorf("Sentence() = %q, want %q", m.Sentence(), v.sentence)
		}
		if m.SeedHex() != v.seed {
			t.Errorf("SeedHex() = %s, want %s", m.SeedHex(), v.seed)
		}
		if m.EntropyHex() != v.entropy {
			t.Errorf("EntropyHex() = %s, want %s", m.EntropyHex(), v.entropy)
		}
	}
}

func TestFromEntropy_CopiesInput(t *testing.T) {
	entropy := make([]byte, 16)
	m, err := FromEntropy(entropy, "", English)
	if err != nil {
		t.Fatal(err)
	}
	entropy[0] = 0xff
	if m.Entropy()[0] != 0 {
		t.Error("Mnemonic should not alias the caller's entropy")
	}
	out := m.Entropy()
	out[1] = 0xff
	if m.Entropy()[1] != 0 {
		t.Error("Entropy() should return a copy")
	}
}

func TestFromSentence(t *testing.T) {
	v := englishVectors[12]
	m, err := FromSentence(v.sentence, trezorPassphrase, Unknown)
	if err != nil {
		t.Fatalf("FromSentence() error: %v", err)
	}
	if m.Language() != English {
		t.Errorf("Language() = %s, want %s", m.Language(), English)
	}
	if m.EntropyHex() != v.entropy {
		t.Errorf("EntropyHex() = %s, want %s", m.EntropyHex(), v.entropy)
	}
	if m.SeedHex() != v.seed {
		t.Errorf("SeedHex() = %s, want %s", m.SeedHex(), v.seed)
	}
	if len(m.Words()) != 24 {
		t.Errorf("len(Words()) = %d, want 24", len(m.Words()))
	}
}

func TestFromSentence_Errors(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		want     error
	}{
		{"too short", "abandon abandon about", ErrInvalidMnemonicLength},
		{"not multiple of three", repeat("abandon", 13), ErrInvalidMnemonicLength},
		{"unknown word", repeat("abandon", 11) + " xyzzy", ErrUnknownWord},
		{"bad checksum", repeat("abandon", 12), ErrChecksumMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := FromSentence(tt.sentence, "", English)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if m != nil {
				t.Error("failed construction should not return a Mnemonic")
			}
		})
	}
}

func TestSetPassphrase(t *testing.T) {
	v := englishVectors[3]
	m, err := FromSentence(v.sentence, "", English)
	if err != nil {
		t.Fatal(err)
	}
	unprotected := m.SeedHex()

	m.SetPassphrase(trezorPassphrase)
	if m.SeedHex() != v.seed {
		t.Errorf("SeedHex() after SetPassphrase = %s, want %s", m.SeedHex(), v.seed)
	}
	if m.SeedHex() == unprotected {
		t.Error("seed should change with the passphrase")
	}
	if m.Sentence() != v.sentence || m.EntropyHex() != v.entropy {
		t.Error("passphrase change should not touch sentence or entropy")
	}
}

func TestSetLanguage(t *testing.T) {
	v := englishVectors[1]
	m, err := FromEntropy(mustHex(t, v.entropy), "", English)
	if err != nil {
		t.Fatal(err)
	}
	englishSeed := m.SeedHex()

	for _, lang := range Languages() {
		if err := m.SetLanguage(lang); err != nil {
			t.Fatalf("SetLanguage(%s) error: %v", lang, err)
		}
		want, err := Encode(mustHex(t, v.entropy), lang)
		if err != nil {
			t.Fatal(err)
		}
		if m.Sentence() != want {
			t.Errorf("%s Sentence() = %q, want %q", lang, m.Sentence(), want)
		}
		if m.Language() != lang {
			t.Errorf("Language() = %s, want %s", m.Language(), lang)
		}
		if m.EntropyHex() != v.entropy {
			t.Errorf("%s entropy changed to %s", lang, m.EntropyHex())
		}
		if lang != English && m.SeedHex() == englishSeed {
			t.Errorf("%s seed should differ from the English seed", lang)
		}
	}

	if err := m.SetLanguage(English); err != nil {
		t.Fatal(err)
	}
	if m.SeedHex() != englishSeed {
		t.Error("switching back to English should restore the seed")
	}
}

func TestSetLanguage_Unknown(t *testing.T) {
	m, err := FromEntropy(make([]byte, 16), "", French)
	if err != nil {
		t.Fatal(err)
	}
	before := m.Sentence()
	if err := m.SetLanguage(Unknown); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("error = %v, want ErrUnsupportedLanguage", err)
	}
	if m.Sentence() != before || m.Language() != French {
		t.Error("failed SetLanguage should leave the Mnemonic unchanged")
	}
}

func TestFromCustomSentence(t *testing.T) {
	sentence := "carcenogenic spiderpig sheep batman digger manly scooter about abandon tree footpath necter"
	m, err := FromCustomSentence(sentence, trezorPassphrase, English)
	if err != nil {
		t.Fatalf("FromCustomSentence() error: %v", err)
	}
	if m.Valid() {
		t.Error("custom sentence should not be valid")
	}
	if m.Entropy() != nil {
		t.Error("custom sentence should have no entropy")
	}
	want := "88997f2b8047064d207555c21ea5e970a82e726b412077d9f24393beb535baa8b35437319b5e62b419c0be73c6ba216dc8db11896938881cb298542b41c7f5a5"
	if m.SeedHex() != want {
		t.Errorf("SeedHex() = %s, want %s", m.SeedHex(), want)
	}

	idx := m.Indices()
	if idx[0] != AbsentIndex || idx[2] != AbsentIndex || idx[7] != 3 || idx[8] != 0 || idx[9] != 1855 {
		t.Errorf("Indices() = %v, want only about, abandon and tree resolved", idx)
	}

	err = m.SetLanguage(Spanish)
	if !errors.Is(err, ErrCannotRebuildSentence) {
		t.Errorf("SetLanguage() error = %v, want ErrCannotRebuildSentence", err)
	}
	if m.Language() != English || m.Sentence() != sentence {
		t.Error("failed SetLanguage should leave the Mnemonic unchanged")
	}
}

func TestFromCustomSentence_AllKnownWords(t *testing.T) {
	v := englishVectors[9]
	m, err := FromCustomSentence(v.sentence, "", Unknown)
	if err != nil {
		t.Fatal(err)
	}
	if !m.Valid() || m.EntropyHex() != v.entropy {
		t.Errorf("valid sentence should recover entropy, got %q", m.EntropyHex())
	}
	if err := m.SetLanguage(Japanese); err != nil {
		t.Errorf("SetLanguage() error: %v", err)
	}
}

func TestFromCustomSentence_WordCount(t *testing.T) {
	for _, sentence := range []string{
		"   ",
		"carcenogenic spiderpig",
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon",
		"carcenogenic spiderpig sheep batman digger manly scooter about abandon tree footpath necter extra",
	} {
		if _, err := FromCustomSentence(sentence, "", English); !errors.Is(err, ErrInvalidMnemonicLength) {
			t.Errorf("FromCustomSentence(%q) error = %v, want ErrInvalidMnemonicLength", sentence, err)
		}
	}
}

func TestMnemonic_JapaneseSentenceUsesIdeographicSpace(t *testing.T) {
	m, err := FromEntropy(make([]byte, 16), "", Japanese)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(m.Sentence(), "\u3000") != 11 {
		t.Errorf("Sentence() = %q, want 11 ideographic spaces", m.Sentence())
	}
	if len(m.Words()) != 12 {
		t.Errorf("len(Words()) = %d, want 12", len(m.Words()))
	}
}

func TestMnemonic_SeedIsCopied(t *testing.T) {
	m, err := FromEntropy(make([]byte, 16), "", English)
	if err != nil {
		t.Fatal(err)
	}
	s := m.Seed()
	s[0] ^= 0xff
	if bytes.Equal(s, m.Seed()) {
		t.Error("Seed() should return a copy")
	}
}
