package svg2tikz

import (
	"strconv"
	"strings"
	"unicode"
)

// TokenKind distinguishes command letters from numeric literals.
type TokenKind int

// Token kinds
const (
	CommandToken TokenKind = iota
	NumberToken
)

// Token is a single lexical element of a path description. Command is
// set for CommandToken, Value for NumberToken.
type Token struct {
	Kind    TokenKind
	Command rune
	Value   float64
}

func commandToken(r rune) Token {
	return Token{Kind: CommandToken, Command: r}
}

func numberToken(v float64) Token {
	return Token{Kind: NumberToken, Value: v}
}

// Tokenize splits a raw path description into command and number tokens.
//
// Letters are commands on their own. Everything else that is not
// whitespace accumulates in a numeric buffer. The buffer is flushed on
// whitespace, before a command and at the end of the input, and split on
// commas, so "10,20" yields two numbers. A buffer holding unparsable text is dropped as a
// whole and reported as MalformedNumber; scanning carries on.
func Tokenize(raw string) ([]Token, Diagnostics) {
	var (
		tokens []Token
		diags  Diagnostics
		buf    strings.Builder
	)

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		text := buf.String()
		buf.Reset()

		parts := strings.Split(text, ",")
		values := make([]Token, 0, len(parts))
		for _, part := range parts {
			v, err := strconv.ParseFloat(part, 64)
			if err != nil {
				diags = append(diags, Diagnostic{Kind: MalformedNumber, Input: text})
				return
			}
			values = append(values, numberToken(v))
		}
		tokens = append(tokens, values...)
	}

	for _, r := range raw {
		switch {
		case unicode.IsSpace(r):
			flush()
		case unicode.IsLetter(r):
			// keep source order for inputs like "M0,0L5,5"
			flush()
			tokens = append(tokens, commandToken(r))
		default:
			buf.WriteRune(r)
		}
	}
	flush()

	return tokens, diags
}
