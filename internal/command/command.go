package command

import (
	"github.com/lightningnetwork/lnd/fn/v2"
)

// Operand is a single command argument. A token that did not convert to a
// number is carried as None so the calculator can reject the command with
// full knowledge of what it was asked to do.
type Operand = fn.Option[float64]

// Command is one parsed calculator instruction. The concrete types below
// form the complete set; consumers switch on them exhaustively.
type Command interface {
	// Keyword returns the leading word that selected this command
	Keyword() string

	isCommand()
}

// Sum adds its operands
type Sum struct {
	Numbers []Operand
}

// Average adds its operands and divides by their count
type Average struct {
	Numbers []Operand
}

// Min picks the smallest operand
type Min struct {
	Numbers []Operand
}

// Max picks the largest operand
type Max struct {
	Numbers []Operand
}

// Divide divides the first operand by the second
type Divide struct {
	Dividend Operand
	Divisor  Operand
}

func (Sum) Keyword() string     { return "sum" }
func (Average) Keyword() string { return "average" }
func (Min) Keyword() string     { return "min" }
func (Max) Keyword() string     { return "max" }
func (Divide) Keyword() string  { return "divide" }

func (Sum) isCommand()     {}
func (Average) isCommand() {}
func (Min) isCommand()     {}
func (Max) isCommand()     {}
func (Divide) isCommand()  {}

// Result is a successful calculation: the command that produced it, the
// operand values it used (all present by this point) and the computed value.
type Result struct {
	Command Command
	Numbers []float64
	Value   float64
}
