package mnemonic

import (
	"strings"
	"testing"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   Language
	}{
		{
			name:   "english",
			tokens: strings.Fields("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"),
			want:   English,
		},
		{
			name: "japanese",
			tokens: []string{"あいこくしん", "あいさつ", "あいだ", "あおぞら", "あかちゃん", "あきる", "あけがた", "あける",
				"あこがれる", "あさい", "あさひ", "あしあと", "あじわう", "あずかる", "あずき", "あそぶ", "あたえる", "あたためる",
				"あたりまえ", "あたる", "あつい", "あつかう", "あっしゅく", "あつまり", "あつめる", "あてな", "あてはまる",
				"あひる", "あぶら", "あぶる", "あふれる", "あまい", "あまど", "あまやかす", "あまり", "あみもの", "あめりか"},
			want: Japanese,
		},
		{
			name:   "spanish",
			tokens: strings.Fields("yoga yogur zafiro zanja zapato zarza zona zorro zumo zurdo"),
			want:   Spanish,
		},
		{
			name:   "chinese simplified",
			tokens: []string{"的", "一", "是", "在", "不", "了", "有", "和", "人", "这"},
			want:   ChineseSimplified,
		},
		{
			name:   "chinese traditional",
			tokens: []string{"的", "一", "是", "在", "不", "了", "有", "和", "載"},
			want:   ChineseTraditional,
		},
		{
			name:   "french",
			tokens: strings.Fields("abaisser brutal bulletin circuler citoyen impact joyeux massif nébuleux"),
			want:   French,
		},
		{
			name:   "unknown",
			tokens: strings.Fields("gffgfg khjkjk kjkkj"),
			want:   Unknown,
		},
		{
			name:   "empty",
			tokens: nil,
			want:   Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLanguage(tt.tokens); got != tt.want {
				t.Errorf("DetectLanguage() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDetectLanguage_SharedChineseIsSimplified(t *testing.T) {
	// Characters present in both Chinese lists never count for Traditional.
	tokens := []string{"的", "一", "是"}
	if got := DetectLanguage(tokens); got != ChineseSimplified {
		t.Errorf("DetectLanguage() = %s, want %s", got, ChineseSimplified)
	}
}

func TestDetectLanguage_TieGoesToEarlierLanguage(t *testing.T) {
	// "abandon" is listed in both English and French.
	if got := DetectLanguage([]string{"abandon"}); got != English {
		t.Errorf("DetectLanguage() = %s, want %s", got, English)
	}
}
