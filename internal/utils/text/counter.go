// Package text provides utilities for text processing and analysis.
// It holds the character counting used by the news validation rules so every
// caller measures length the same way.
package text

// CountRunes counts the number of Unicode characters (runes) in the given text.
// The minimum-length rule for news bodies is defined in characters, not bytes,
// so multi-byte characters (accented letters, CJK, emoji) each count as one.
//
// Examples:
//
//	CountRunes("hello")          // returns 5 (ASCII text)
//	CountRunes("résumé")         // returns 6 (accented text)
//	CountRunes("")               // returns 0 (empty string)
func CountRunes(text string) int {
	return len([]rune(text))
}
