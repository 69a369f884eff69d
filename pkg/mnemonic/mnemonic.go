// Package mnemonic encodes entropy as BIP-39 style word sentences and
// derives seeds from them.
//
// Entropy of 128 to 8192 bits (in steps of 32) is extended with a SHA-256
// checksum and split into 11-bit indices into a 2048-word list. Sentences
// are decoded back to entropy with the checksum verified, and stretched into
// a 64-byte seed with PBKDF2-HMAC-SHA512.
package mnemonic

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// AbsentIndex marks a word that is not in the active wordlist.
const AbsentIndex = -1

// Mnemonic holds entropy together with its sentence, language and
// passphrase. Entropy and word indices never change after construction.
// Changing the language rebuilds the sentence; changing either the language
// or the passphrase drops the cached seed.
//
// A Mnemonic is not safe for concurrent mutation.
type Mnemonic struct {
	entropy    []byte
	indices    []int
	lang       Language
	passphrase string
	sentence   string
	seed       []byte
}

// New generates bits of entropy from crypto/rand and encodes it in lang.
func New(ctx context.Context, bits int, passphrase string, lang Language) (*Mnemonic, error) {
	entropy, err := NewEntropy(ctx, bits)
	if err != nil {
		return nil, err
	}
	return FromEntropy(entropy, passphrase, lang)
}

// NewFromSource is New with entropy read from r.
func NewFromSource(ctx context.Context, r io.Reader, bits int, passphrase string, lang Language) (*Mnemonic, error) {
	entropy, err := ReadEntropy(ctx, r, bits)
	if err != nil {
		return nil, err
	}
	return FromEntropy(entropy, passphrase, lang)
}

// FromEntropy encodes entropy in lang. The entropy is copied.
func FromEntropy(entropy []byte, passphrase string, lang Language) (*Mnemonic, error) {
	w, err := WordlistFor(lang)
	if err != nil {
		return nil, err
	}
	indices, err := EntropyToIndices(entropy)
	if err != nil {
		return nil, err
	}
	m := &Mnemonic{
		entropy:    append([]byte(nil), entropy...),
		indices:    indices,
		lang:       lang,
		passphrase: norm.NFKD.String(passphrase),
	}
	m.sentence = w.join(indices)
	return m, nil
}

// FromSentence decodes sentence and verifies its checksum. Pass Unknown to
// detect the language. The stored sentence is rebuilt from the wordlist, so
// extra whitespace and normalization differences in the input are dropped.
func FromSentence(sentence, passphrase string, lang Language) (*Mnemonic, error) {
	d, err := decode(sentence, lang)
	if err != nil {
		return nil, err
	}
	w := mustWordlist(d.lang)
	return &Mnemonic{
		entropy:    d.entropy,
		indices:    d.indices,
		lang:       d.lang,
		passphrase: norm.NFKD.String(passphrase),
		sentence:   w.join(d.indices),
	}, nil
}

// FromCustomSentence accepts a sentence that may contain words outside the
// wordlist. Such words get AbsentIndex, the entropy is unavailable and
// SetLanguage fails with ErrCannotRebuildSentence. The seed is derived from
// the sentence as given. If every word resolves and the checksum holds, the
// result matches FromSentence. The word count must still be at least
// MinWords and a multiple of 3.
func FromCustomSentence(sentence, passphrase string, lang Language) (*Mnemonic, error) {
	tokens := SplitWords(sentence)
	if err := checkWordCount(len(tokens)); err != nil {
		return nil, err
	}
	lang = resolveLanguage(tokens, lang)
	w, err := WordlistFor(lang)
	if err != nil {
		return nil, err
	}

	indices := make([]int, len(tokens))
	resolved := true
	for i, tok := range tokens {
		idx, ok := w.lookup(tok)
		if !ok {
			idx, resolved = AbsentIndex, false
		}
		indices[i] = idx
	}

	m := &Mnemonic{
		indices:    indices,
		lang:       lang,
		passphrase: norm.NFKD.String(passphrase),
		sentence:   strings.Join(tokens, w.Separator()),
	}
	if resolved {
		if entropy, err := IndicesToEntropy(indices); err == nil {
			m.entropy = entropy
		}
	}
	return m, nil
}

// Entropy returns a copy of the entropy, or nil for a custom sentence
// whose entropy could not be recovered.
func (m *Mnemonic) Entropy() []byte {
	if m.entropy == nil {
		return nil
	}
	return append([]byte(nil), m.entropy...)
}

// EntropyHex returns the entropy as lowercase hex.
func (m *Mnemonic) EntropyHex() string {
	return hex.EncodeToString(m.entropy)
}

// Indices returns a copy of the word indices.
func (m *Mnemonic) Indices() []int {
	return append([]int(nil), m.indices...)
}

// Sentence returns the words joined by the language separator.
func (m *Mnemonic) Sentence() string {
	return m.sentence
}

// Words returns the sentence split into words.
func (m *Mnemonic) Words() []string {
	return strings.Split(m.sentence, mustWordlist(m.lang).Separator())
}

// WordCount returns the number of words.
func (m *Mnemonic) WordCount() int {
	return len(m.indices)
}

// Language returns the active language.
func (m *Mnemonic) Language() Language {
	return m.lang
}

// Valid reports whether every word resolved and the checksum holds.
func (m *Mnemonic) Valid() bool {
	return m.entropy != nil
}

// Passphrase returns the NFKD-normalized passphrase.
func (m *Mnemonic) Passphrase() string {
	return m.passphrase
}

// SetPassphrase replaces the passphrase. The next Seed call re-derives.
func (m *Mnemonic) SetPassphrase(passphrase string) {
	m.passphrase = norm.NFKD.String(passphrase)
	m.seed = nil
}

// SetLanguage re-renders the sentence in lang from the stored indices. On
// error the Mnemonic is left unchanged.
func (m *Mnemonic) SetLanguage(lang Language) error {
	if lang == Unknown {
		return fmt.Errorf("%w: %s", ErrUnsupportedLanguage, lang)
	}
	w, err := WordlistFor(lang)
	if err != nil {
		return err
	}
	for pos, idx := range m.indices {
		if idx == AbsentIndex {
			return fmt.Errorf("%w: word %d", ErrCannotRebuildSentence, pos+1)
		}
	}
	m.lang = lang
	m.sentence = w.join(m.indices)
	m.seed = nil
	return nil
}

// Seed returns a copy of the 64-byte seed for the current sentence and
// passphrase.
func (m *Mnemonic) Seed() []byte {
	if m.seed == nil {
		m.seed = DeriveSeed(m.sentence, m.passphrase)
	}
	return append([]byte(nil), m.seed...)
}

// SeedHex returns the seed as lowercase hex.
func (m *Mnemonic) SeedHex() string {
	return hex.EncodeToString(m.Seed())
}
