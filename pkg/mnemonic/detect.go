package mnemonic

import "golang.org/x/text/unicode/norm"

// DetectLanguage guesses the language of tokens by counting how many appear
// in each wordlist. The highest count wins; ties go to the language listed
// first by Languages. A token counts towards Traditional Chinese only when
// it is absent from the Simplified list, and any such token turns a
// Simplified result into Traditional. Unknown is returned when no token
// matches any list.
func DetectLanguage(tokens []string) Language {
	simplified := mustWordlist(ChineseSimplified)

	counts := make([]int, len(languageOrder))
	traditionalOnly := 0
	for _, tok := range tokens {
		tok = norm.NFKD.String(tok)
		for i, lang := range languageOrder {
			if _, ok := mustWordlist(lang).lookup(tok); !ok {
				continue
			}
			if lang == ChineseTraditional {
				if _, shared := simplified.lookup(tok); shared {
					continue
				}
				traditionalOnly++
			}
			counts[i]++
		}
	}

	best, bestCount := -1, 0
	for i, c := range counts {
		if c > bestCount {
			best, bestCount = i, c
		}
	}
	if best < 0 {
		return Unknown
	}
	if languageOrder[best] == ChineseSimplified && traditionalOnly > 0 {
		return ChineseTraditional
	}
	return languageOrder[best]
}
