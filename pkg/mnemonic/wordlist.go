package mnemonic

import (
	"fmt"
	"strings"
	"sync"

	"github.com/tyler-smith/go-bip39/wordlists"
	"golang.org/x/text/unicode/norm"
)

const (
	// WordlistSize is the number of words in every wordlist.
	WordlistSize = 2048
	// BitsPerWord is log2(WordlistSize).
	BitsPerWord = 11

	ideographicSpace = "\u3000"
)

// Wordlist maps between word indices and words of one language.
// Lookups match on the NFKD form of the word. A Wordlist is immutable and
// safe for concurrent use.
type Wordlist struct {
	lang  Language
	words []string
	index map[string]int
	sep   string
}

var (
	registryOnce sync.Once
	registry     map[Language]*Wordlist
)

func loadRegistry() {
	registry = map[Language]*Wordlist{
		English:            newWordlist(English, wordlists.English, " "),
		Japanese:           newWordlist(Japanese, wordlists.Japanese, ideographicSpace),
		Spanish:            newWordlist(Spanish, wordlists.Spanish, " "),
		ChineseSimplified:  newWordlist(ChineseSimplified, wordlists.ChineseSimplified, " "),
		ChineseTraditional: newWordlist(ChineseTraditional, wordlists.ChineseTraditional, " "),
		French:             newWordlist(French, wordlists.French, " "),
	}
}

func newWordlist(lang Language, words []string, sep string) *Wordlist {
	if len(words) != WordlistSize {
		panic(fmt.Sprintf("mnemonic: %s wordlist has %d words, want %d", lang, len(words), WordlistSize))
	}
	w := &Wordlist{
		lang:  lang,
		words: make([]string, len(words)),
		index: make(map[string]int, len(words)),
		sep:   sep,
	}
	copy(w.words, words)
	for i, word := range words {
		w.index[norm.NFKD.String(word)] = i
	}
	return w
}

// WordlistFor returns the wordlist for lang.
func WordlistFor(lang Language) (*Wordlist, error) {
	registryOnce.Do(loadRegistry)
	w, ok := registry[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, lang)
	}
	return w, nil
}

func mustWordlist(lang Language) *Wordlist {
	w, err := WordlistFor(lang)
	if err != nil {
		panic(err)
	}
	return w
}

// Language returns the wordlist language.
func (w *Wordlist) Language() Language {
	return w.lang
}

// Len returns the number of words.
func (w *Wordlist) Len() int {
	return len(w.words)
}

// Word returns the word at index i.
func (w *Wordlist) Word(i int) string {
	return w.words[i]
}

// Index returns the position of word, or false if the word is not listed.
func (w *Wordlist) Index(word string) (int, bool) {
	return w.lookup(norm.NFKD.String(word))
}

// Contains reports whether word is listed.
func (w *Wordlist) Contains(word string) bool {
	_, ok := w.Index(word)
	return ok
}

// WithPrefix returns the indices of the words starting with prefix. The
// prefix is normalized like a lookup, so NFC input matches accented words.
func (w *Wordlist) WithPrefix(prefix string) []int {
	prefix = norm.NFKD.String(prefix)
	var out []int
	for i, word := range w.words {
		if strings.HasPrefix(word, prefix) {
			out = append(out, i)
		}
	}
	return out
}

// Separator returns the string placed between words of a sentence.
func (w *Wordlist) Separator() string {
	return w.sep
}

// lookup expects an already NFKD-normalized word.
func (w *Wordlist) lookup(nfkd string) (int, bool) {
	i, ok := w.index[nfkd]
	return i, ok
}

func (w *Wordlist) join(indices []int) string {
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = w.words[idx]
	}
	return strings.Join(parts, w.sep)
}

// indicesOf resolves NFKD tokens. The first miss aborts with an
// UnknownWordError.
func (w *Wordlist) indicesOf(tokens []string) ([]int, error) {
	out := make([]int, len(tokens))
	for pos, tok := range tokens {
		idx, ok := w.lookup(tok)
		if !ok {
			return nil, &UnknownWordError{Word: tok, Position: pos, Language: w.lang}
		}
		out[pos] = idx
	}
	return out, nil
}

// SplitWords normalizes a sentence to NFKD and splits it on whitespace.
// NFKD maps the ideographic space to an ASCII space, so sentences in every
// language split the same way.
func SplitWords(sentence string) []string {
	return strings.Fields(norm.NFKD.String(sentence))
}
