package wallet

import (
	"testing"
	"unicode"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain phrase", "legal winner thank year wave", "legal winner thank year wave"},
		{"uppercase", "Legal WINNER Thank", "legal winner thank"},
		{"accents stripped", "café naïve résumé", "cafe naive resume"},
		{"whitespace collapsed", "  legal \t winner\n\nthank  ", "legal winner thank"},
		{"tabs and newlines", "a\tb\nc", "a b c"},
		{"fullwidth forms", "ＡＢＣ", "abc"},
		{"cjk spaces removed", "的 一 是", "的一是"},
		{"cjk mixed with latin", "word 的 一 word", "word 的一 word"},
		{"kana spaces removed", "あ い う", "あいう"},
		// NFKD decomposes Hangul syllables into jamo and the output stays
		// decomposed, so the expectations are spelled as escapes to keep
		// them apart from their precomposed lookalikes.
		{"hangul spaces removed", "가 나", "\u1100\u1161\u1102\u1161"},
		{"hangul stays decomposed", "가", "\u1100\u1161"},
		{"cjk single char", "的", "的"},
		{"only whitespace", " \t \n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeText(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeText_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"legal winner thank year wave",
		"Legal WINNER Thank",
		"café naïve",
		"  spaced \t out  ",
		"的 一 是",
		"word あ い word",
		"ＡＢＣ mixed É",
	}

	for _, in := range inputs {
		once := NormalizeText(in)
		twice := NormalizeText(once)
		if once != twice {
			t.Errorf("NormalizeText not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeText_NoAdjacentWhitespace(t *testing.T) {
	inputs := []string{
		"a  b\t\tc \n d",
		"  的  一  x  ",
		"one   two    three",
	}

	for _, in := range inputs {
		out := []rune(NormalizeText(in))
		for i := 1; i < len(out); i++ {
			if unicode.IsSpace(out[i-1]) && unicode.IsSpace(out[i]) {
				t.Errorf("NormalizeText(%q) = %q has adjacent whitespace", in, string(out))
			}
		}
	}
}

func TestNormalizeText_NoSpaceBetweenCJK(t *testing.T) {
	inputs := []string{
		"的 一",
		"x 的 一 y",
		"あ ア 가",
	}

	for _, in := range inputs {
		out := []rune(NormalizeText(in))
		for i := 1; i < len(out)-1; i++ {
			if unicode.IsSpace(out[i]) && isCJK(out[i-1]) && isCJK(out[i+1]) {
				t.Errorf("NormalizeText(%q) = %q keeps a space between CJK", in, string(out))
			}
		}
	}
}

func TestNormalizeText_TrimsBoundaries(t *testing.T) {
	out := NormalizeText("  的  ")
	if out != "的" {
		t.Errorf("NormalizeText = %q, want %q", out, "的")
	}
}

func TestIsCJK(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"han ideograph", '的', true},
		{"hiragana", 'あ', true},
		{"katakana", 'ア', true},
		{"hangul syllable", '가', true},
		{"bopomofo", 'ㄅ', true},
		{"extension B", rune(0x20000), true},
		{"latin letter", 'a', false},
		{"ascii space", ' ', false},
		{"cyrillic", 'Ж', false},
		{"arabic", 'ا', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isCJK(tt.r); got != tt.want {
				t.Errorf("isCJK(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}
