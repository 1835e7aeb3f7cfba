package lexer

import (
	"unicode"
)

// ===== Классификаторы =====

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r)
}

// Identifiers are letter runs only; digits end them.
func isIdentContinue(r rune) bool {
	return unicode.IsLetter(r)
}

func isDec(r rune) bool { return r >= '0' && r <= '9' }

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return unicode.IsSpace(r)
}

func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}
