package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0
	// Лексические
	LexBadCharacter       Code = 1001
	LexUnterminatedString Code = 1002
	LexInvalidNumber      Code = 1004

	// Синтаксические
	SynUnexpectedToken  Code = 2001
	SynExpectExpression Code = 2203
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	LexBadCharacter:       "Bad character",
	LexUnterminatedString: "Unterminated string",
	LexInvalidNumber:      "Invalid number literal",
	SynUnexpectedToken:    "Unexpected token",
	SynExpectExpression:   "Expected expression",
}

// ID returns the stable short form, e.g. LEX1001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
