package token

// Уровни приоритета; чем больше число, тем сильнее связывание.
// Zero means "not an operator in this position".
const (
	precAssignment     = 1  // =
	precLogicalOr      = 2  // ||
	precLogicalAnd     = 3  // &&
	precBitwiseOr      = 4  // |
	precBitwiseXor     = 5  // ^
	precBitwiseAnd     = 6  // &
	precEquality       = 7  // == !=
	precRelational     = 8  // < <= > >=
	precAdditive       = 9  // + -
	precMultiplicative = 10 // * /
	precUnary          = 11 // + - ! ~
)

// UnaryPrecedence returns the binding power of k in prefix position.
func UnaryPrecedence(k Kind) int {
	switch k {
	case Plus, Minus, Bang, Tilde:
		return precUnary
	default:
		return 0
	}
}

// BinaryPrecedence returns the binding power of k in infix position.
func BinaryPrecedence(k Kind) int {
	switch k {
	case Assign:
		return precAssignment
	case OrOr:
		return precLogicalOr
	case AndAnd:
		return precLogicalAnd
	case Pipe:
		return precBitwiseOr
	case Caret:
		return precBitwiseXor
	case Amp:
		return precBitwiseAnd
	case EqEq, BangEq:
		return precEquality
	case Lt, LtEq, Gt, GtEq:
		return precRelational
	case Plus, Minus:
		return precAdditive
	case Star, Slash:
		return precMultiplicative
	default:
		return 0
	}
}

// IsRightAssociative reports whether chains of k at equal precedence group
// to the right. Only assignment does.
func IsRightAssociative(k Kind) bool {
	return k == Assign
}
