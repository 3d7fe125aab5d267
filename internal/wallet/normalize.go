package wallet

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// cjkInterval is a closed range of Unicode code points.
type cjkInterval struct {
	lo, hi rune
}

// cjkIntervals lists the code-point ranges treated as CJK when deciding
// whether a whitespace character separates two CJK characters. This is a
// fixed table, not a general East Asian property lookup.
var cjkIntervals = []cjkInterval{
	{0x4E00, 0x9FFF},   // CJK Unified Ideographs
	{0x3400, 0x4DBF},   // CJK Unified Ideographs Extension A
	{0x20000, 0x2A6DF}, // CJK Unified Ideographs Extension B
	{0x2A700, 0x2B73F}, // CJK Unified Ideographs Extension C
	{0x2B740, 0x2B81F}, // CJK Unified Ideographs Extension D
	{0xF900, 0xFAFF},   // CJK Compatibility Ideographs
	{0x2F800, 0x2FA1D}, // CJK Compatibility Ideographs Supplement
	{0x3190, 0x319F},   // Kanbun
	{0x2E80, 0x2EFF},   // CJK Radicals Supplement
	{0x2F00, 0x2FDF},   // CJK Radicals
	{0x31C0, 0x31EF},   // CJK Strokes
	{0x2FF0, 0x2FFF},   // Ideographic Description Characters
	{0xE0100, 0xE01EF}, // Variation Selectors Supplement
	{0x3100, 0x312F},   // Bopomofo
	{0x31A0, 0x31BF},   // Bopomofo Extended
	{0xFF00, 0xFFEF},   // Halfwidth and Fullwidth Forms
	{0x3040, 0x309F},   // Hiragana
	{0x30A0, 0x30FF},   // Katakana
	{0x31F0, 0x31FF},   // Katakana Phonetic Extensions
	{0x1B000, 0x1B0FF}, // Kana Supplement
	{0xAC00, 0xD7AF},   // Hangul Syllables
	{0x1100, 0x11FF},   // Hangul Jamo
	{0xA960, 0xA97F},   // Hangul Jamo Extended A
	{0xD7B0, 0xD7FF},   // Hangul Jamo Extended B
	{0x3130, 0x318F},   // Hangul Compatibility Jamo
	{0xA4D0, 0xA4FF},   // Lisu
	{0x16F00, 0x16F9F}, // Miao
	{0xA000, 0xA48F},   // Yi Syllables
	{0xA490, 0xA4CF},   // Yi Radicals
}

// isCJK reports whether r falls in one of the fixed CJK intervals.
func isCJK(r rune) bool {
	for _, iv := range cjkIntervals {
		if r >= iv.lo && r <= iv.hi {
			return true
		}
	}
	return false
}

// isCombining reports whether r has a nonzero canonical combining class.
func isCombining(r rune) bool {
	return norm.NFD.PropertiesString(string(r)).CCC() != 0
}

// NormalizeText normalizes a seed phrase or passphrase the way Electrum does:
// NFKD decomposition, lowercasing, removal of combining marks, collapsing of
// whitespace runs to single spaces, and removal of any space left between two
// CJK characters. Every input string is accepted; the result may be empty.
// NormalizeText is idempotent.
func NormalizeText(s string) string {
	s = norm.NFKD.String(s)
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !isCombining(r) {
			b.WriteRune(r)
		}
	}
	s = strings.Join(strings.Fields(b.String()), " ")

	// Drop whitespace flanked by CJK on both sides. Positions outside the
	// string count as non-CJK, so nothing is dropped at the boundaries.
	runes := []rune(s)
	kept := make([]rune, 0, len(runes))
	for i, r := range runes {
		if unicode.IsSpace(r) && cjkAt(runes, i-1) && cjkAt(runes, i+1) {
			continue
		}
		kept = append(kept, r)
	}
	return string(kept)
}

// cjkAt reports whether the rune at position i is CJK, treating positions
// outside the slice as non-CJK.
func cjkAt(runes []rune, i int) bool {
	if i < 0 || i >= len(runes) {
		return false
	}
	return isCJK(runes[i])
}
