package mnemonic

import "fmt"

// Entropy and sentence bounds.
const (
	MinEntropyBits = 128
	MaxEntropyBits = 8192
	MinWords       = 12
)

// ValidateEntropyBits checks that bits is a multiple of 32 within
// [MinEntropyBits, MaxEntropyBits].
func ValidateEntropyBits(bits int) error {
	if bits%32 != 0 || bits < MinEntropyBits || bits > MaxEntropyBits {
		return fmt.Errorf("%w: got %d bits", ErrInvalidEntropySize, bits)
	}
	return nil
}

// WordCount returns the number of words that encode entropyBits of entropy.
func WordCount(entropyBits int) int {
	return (entropyBits + entropyBits/32) / BitsPerWord
}

// EntropyToIndices appends the checksum to entropy and splits the result
// into 11-bit word indices.
func EntropyToIndices(entropy []byte) ([]int, error) {
	if err := ValidateEntropyBits(len(entropy) * 8); err != nil {
		return nil, err
	}
	ent := BitsFromBytes(entropy)
	cs, err := ChecksumBits(entropy, ent.Len()/32)
	if err != nil {
		return nil, err
	}
	return Pack(ent.Concat(cs), BitsPerWord), nil
}

// IndicesToEntropy reverses EntropyToIndices, verifying the embedded
// checksum.
func IndicesToEntropy(indices []int) ([]byte, error) {
	if err := checkWordCount(len(indices)); err != nil {
		return nil, err
	}
	bits, err := Unpack(indices, BitsPerWord)
	if err != nil {
		return nil, err
	}

	total := bits.Len()
	csLen := total / 33
	entLen := total - csLen
	if entLen%8 != 0 {
		return nil, fmt.Errorf("%w: %d entropy bits", ErrMisalignedChecksum, entLen)
	}

	entropy := bits.Slice(0, entLen).Bytes()
	if err := VerifyChecksum(entropy, bits.Slice(entLen, total)); err != nil {
		return nil, err
	}
	return entropy, nil
}

// Encode turns entropy into a sentence in lang.
func Encode(entropy []byte, lang Language) (string, error) {
	w, err := WordlistFor(lang)
	if err != nil {
		return "", err
	}
	indices, err := EntropyToIndices(entropy)
	if err != nil {
		return "", err
	}
	return w.join(indices), nil
}

// Decode recovers the entropy of a sentence. Pass Unknown to detect the
// language; English is assumed when detection finds nothing.
func Decode(sentence string, lang Language) ([]byte, error) {
	d, err := decode(sentence, lang)
	if err != nil {
		return nil, err
	}
	return d.entropy, nil
}

type decoded struct {
	entropy []byte
	indices []int
	lang    Language
}

func decode(sentence string, lang Language) (*decoded, error) {
	tokens := SplitWords(sentence)
	if err := checkWordCount(len(tokens)); err != nil {
		return nil, err
	}
	lang = resolveLanguage(tokens, lang)
	w, err := WordlistFor(lang)
	if err != nil {
		return nil, err
	}
	indices, err := w.indicesOf(tokens)
	if err != nil {
		return nil, err
	}
	entropy, err := IndicesToEntropy(indices)
	if err != nil {
		return nil, err
	}
	return &decoded{entropy: entropy, indices: indices, lang: lang}, nil
}

func resolveLanguage(tokens []string, lang Language) Language {
	if lang != Unknown {
		return lang
	}
	if detected := DetectLanguage(tokens); detected != Unknown {
		return detected
	}
	return English
}

func checkWordCount(n int) error {
	if n < MinWords || n%3 != 0 {
		return fmt.Errorf("%w: got %d words", ErrInvalidMnemonicLength, n)
	}
	return nil
}
