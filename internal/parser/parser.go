package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/lightningnetwork/lnd/fn/v2"

	"github.com/rail44/tally/internal/command"
)

// Parse converts one line of input into a typed command. The first
// whitespace-separated token selects the command; the rest convert
// independently to optional numbers. A token that is not a numeric literal
// becomes an absent operand rather than a parse failure, so the calculator
// can name the command when it rejects it. Zero-operand forms of the list
// commands are accepted here and rejected there for the same reason.
func Parse(line string) (command.Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil, parseError(line)
	}

	operands := toOperands(tokens[1:])
	switch tokens[0] {
	case "sum":
		return command.Sum{Numbers: operands}, nil
	case "average":
		return command.Average{Numbers: operands}, nil
	case "min":
		return command.Min{Numbers: operands}, nil
	case "max":
		return command.Max{Numbers: operands}, nil
	case "divide":
		if len(operands) != 2 {
			return nil, parseError(line)
		}
		return command.Divide{Dividend: operands[0], Divisor: operands[1]}, nil
	default:
		return nil, parseError(line)
	}
}

func parseError(line string) error {
	return command.Errorf("parse command '%s'", strings.TrimSpace(line))
}

func toOperands(tokens []string) []command.Operand {
	operands := make([]command.Operand, len(tokens))
	for i, token := range tokens {
		operands[i] = toOperand(token)
	}
	return operands
}

// toOperand is the single string-to-number conversion point. It takes what
// strconv.ParseFloat takes except the Inf and NaN spellings, which are not
// numbers a command can work with.
func toOperand(token string) command.Operand {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return fn.None[float64]()
	}
	return fn.Some(v)
}
