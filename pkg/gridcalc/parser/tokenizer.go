package parser

import "strings"

// Tokens holds the operand and operator sequences of a formula body.
// len(Operands) is always len(Operators)+1.
type Tokens struct {
	Operands  []string
	Operators []string
}

// Tokenize splits a formula body (no leading "=") into operands and
// operators. Runs of ASCII letters and digits form operands; every other
// character is an operator and closes the current operand, even when that
// operand is empty. The final operand is always flushed, so a trailing
// operator leaves an empty last operand which callers reject when resolving it.
func Tokenize(body string) Tokens {
	var (
		tokens  Tokens
		operand strings.Builder
	)

	for _, r := range body {
		if isAlphanumeric(r) {
			operand.WriteRune(r)
			continue
		}
		tokens.Operands = append(tokens.Operands, operand.String())
		tokens.Operators = append(tokens.Operators, string(r))
		operand.Reset()
	}
	tokens.Operands = append(tokens.Operands, operand.String())

	return tokens
}

// IsNumber reports whether an operand token is a non-negative integer constant.
func IsNumber(operand string) bool {
	if operand == "" {
		return false
	}
	for i := 0; i < len(operand); i++ {
		if operand[i] < '0' || operand[i] > '9' {
			return false
		}
	}
	return true
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
