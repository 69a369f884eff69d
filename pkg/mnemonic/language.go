package mnemonic

import (
	"fmt"
	"strings"
)

// Language names a wordlist.
type Language string

// Supported languages. Unknown asks decoders to detect the language.
const (
	Unknown            Language = "unknown"
	English            Language = "english"
	Japanese           Language = "japanese"
	Spanish            Language = "spanish"
	ChineseSimplified  Language = "chinese-simplified"
	ChineseTraditional Language = "chinese-traditional"
	French             Language = "french"
)

// languageOrder is also the tie-break order used by DetectLanguage.
var languageOrder = []Language{
	English,
	Japanese,
	Spanish,
	ChineseSimplified,
	ChineseTraditional,
	French,
}

// Languages returns the supported languages in detection priority order.
func Languages() []Language {
	out := make([]Language, len(languageOrder))
	copy(out, languageOrder)
	return out
}

func (l Language) String() string {
	return string(l)
}

// Supported reports whether l has a wordlist.
func (l Language) Supported() bool {
	for _, s := range languageOrder {
		if l == s {
			return true
		}
	}
	return false
}

// ParseLanguage accepts a canonical language name or a short alias.
// An empty string or "auto" yields Unknown.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto", "unknown":
		return Unknown, nil
	case "english", "en":
		return English, nil
	case "japanese", "ja", "jp":
		return Japanese, nil
	case "spanish", "es":
		return Spanish, nil
	case "chinese-simplified", "chinese_simplified", "zh-hans", "zh-cn", "zh":
		return ChineseSimplified, nil
	case "chinese-traditional", "chinese_traditional", "zh-hant", "zh-tw":
		return ChineseTraditional, nil
	case "french", "fr":
		return French, nil
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
}
