package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rail44/tally/internal/command"
)

// Render formats a successful calculation as one human-readable sentence.
// Every command variant has a template; Render itself never fails.
func Render(res command.Result) string {
	numbers := formatAll(res.Numbers)
	value := Number(res.Value)

	switch res.Command.(type) {
	case command.Divide:
		if len(numbers) != 2 {
			break
		}
		return fmt.Sprintf("%s divided by %s is %s", numbers[0], numbers[1], value)
	case command.Sum:
		return listSentence("sum", numbers, value)
	case command.Average:
		return listSentence("average", numbers, value)
	case command.Min:
		return listSentence("minimum", numbers, value)
	case command.Max:
		return listSentence("maximum", numbers, value)
	}
	return value
}

func listSentence(noun string, numbers []string, value string) string {
	return fmt.Sprintf("the %s of %s is %s", noun, strings.Join(numbers, " "), value)
}

// Number renders one value the way a person would write it: whole values
// drop the decimal point, everything else keeps the shortest decimal form.
// The rule applies to operands and results alike.
func Number(v float64) string {
	if v == 0 {
		v = 0 // fold negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatAll(values []float64) []string {
	formatted := make([]string, len(values))
	for i, v := range values {
		formatted[i] = Number(v)
	}
	return formatted
}
