package svg2tikz

import (
	"strconv"
	"strings"
)

// arity is the number of values each supported command consumes.
var arity = map[rune]int{
	'M': 2,
	'L': 2,
	'C': 6,
	'Q': 4,
	'Z': 0,
	'z': 0,
}

// Interpret groups tokens into drawing operations. Every command takes
// the run of numbers that follows it. A command whose run does not match
// its arity is dropped with BadArity, an unknown command is dropped
// together with its run with UnsupportedCommand. Interpretation always
// continues with the next command.
func Interpret(tokens []Token) ([]Operation, Diagnostics) {
	var (
		ops   []Operation
		diags Diagnostics
	)

	for i := 0; i < len(tokens); {
		tok := tokens[i]
		i++

		// collect the run of values up to the next command
		start := i
		for i < len(tokens) && tokens[i].Kind == NumberToken {
			i++
		}

		if tok.Kind == NumberToken {
			diags = append(diags, Diagnostic{Kind: UnsupportedCommand, Input: joinValues(tokens[start-1 : i])})
			continue
		}

		values := make([]float64, 0, i-start)
		for _, t := range tokens[start:i] {
			values = append(values, t.Value)
		}

		op, diag, ok := parseCommand(tok.Command, values)
		if !ok {
			diags = append(diags, diag)
			continue
		}
		ops = append(ops, op)
	}

	return ops, diags
}

func parseCommand(cmd rune, v []float64) (Operation, Diagnostic, bool) {
	want, known := arity[cmd]
	if !known {
		return Operation{}, Diagnostic{Kind: UnsupportedCommand, Command: string(cmd)}, false
	}
	if len(v) != want {
		return Operation{}, Diagnostic{Kind: BadArity, Command: string(cmd), Expected: want, Got: len(v)}, false
	}

	switch cmd {
	case 'M':
		return MoveTo(v[0], v[1]), Diagnostic{}, true
	case 'L':
		return LineTo(v[0], v[1]), Diagnostic{}, true
	case 'C':
		return CubicTo(v[0], v[1], v[2], v[3], v[4], v[5]), Diagnostic{}, true
	case 'Q':
		return QuadraticTo(v[0], v[1], v[2], v[3]), Diagnostic{}, true
	default:
		return Close(), Diagnostic{}, true
	}
}

func joinValues(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = strconv.FormatFloat(t.Value, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}
