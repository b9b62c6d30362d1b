package calc

import (
	"slices"

	"github.com/rail44/tally/internal/command"
)

// Calculate validates a command's operands and computes its value. Every
// failure is a command.ErrorMessage; the zero Result never comes back next
// to a nil error.
func Calculate(cmd command.Command) (command.Result, error) {
	switch c := cmd.(type) {
	case command.Divide:
		return divide(c)
	case command.Sum:
		return aggregate(c, c.Numbers, sum)
	case command.Average:
		return aggregate(c, c.Numbers, average)
	case command.Min:
		return aggregate(c, c.Numbers, minOf)
	case command.Max:
		return aggregate(c, c.Numbers, maxOf)
	}
	return command.Result{}, invalidArguments(cmd)
}

func divide(cmd command.Divide) (command.Result, error) {
	numbers, ok := unwrap([]command.Operand{cmd.Dividend, cmd.Divisor})
	if !ok {
		return command.Result{}, invalidArguments(cmd)
	}
	if numbers[1] == 0 {
		return command.Result{}, command.Errorf("division by zero")
	}
	return command.Result{Command: cmd, Numbers: numbers, Value: numbers[0] / numbers[1]}, nil
}

// aggregate handles the list commands: every operand must be present and the
// list non-empty, then fold computes the value.
func aggregate(cmd command.Command, operands []command.Operand, fold func([]float64) float64) (command.Result, error) {
	numbers, ok := unwrap(operands)
	if !ok || len(numbers) == 0 {
		return command.Result{}, invalidArguments(cmd)
	}
	return command.Result{Command: cmd, Numbers: numbers, Value: fold(numbers)}, nil
}

// unwrap extracts every operand value; a single absent operand invalidates
// the whole command.
func unwrap(operands []command.Operand) ([]float64, bool) {
	numbers := make([]float64, 0, len(operands))
	for _, op := range operands {
		if op.IsNone() {
			return nil, false
		}
		numbers = append(numbers, op.UnwrapOr(0))
	}
	return numbers, true
}

func invalidArguments(cmd command.Command) error {
	return command.Errorf("invalid arguments for %s", cmd.Keyword())
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

func average(values []float64) float64 {
	return sum(values) / float64(len(values))
}

func minOf(values []float64) float64 { return slices.Min(values) }

func maxOf(values []float64) float64 { return slices.Max(values) }
