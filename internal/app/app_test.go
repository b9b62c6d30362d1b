package app

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcess(t *testing.T) {
	a := NewApp()

	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{name: "divide", line: "divide 4 5", expected: "4 divided by 5 is 0.8"},
		{name: "sum", line: "sum 5 5 6 8.5", expected: "the sum of 5 5 6 8.5 is 24.5"},
		{name: "average", line: "average 4 3 8.5 4", expected: "the average of 4 3 8.5 4 is 4.875"},
		{name: "min", line: "min 4 -3 -17", expected: "the minimum of 4 -3 -17 is -17"},
		{name: "max", line: "max 4 -3 -17", expected: "the maximum of 4 -3 -17 is 4"},
		{name: "whole results drop the decimal point", line: "divide 10 5", expected: "10 divided by 5 is 2"},
		{name: "division by zero", line: "divide 4 0", expected: "Error: division by zero"},
		{name: "bad operand is a calculator failure", line: "max 4 -3 -1x", expected: "Error: invalid arguments for max"},
		{name: "unknown keyword", line: "maq 4 -3 3", expected: "Error: parse command 'maq 4 -3 3'"},
		{name: "empty line", line: "", expected: "Error: parse command ''"},
		{name: "divide with wrong arity", line: "divide 4", expected: "Error: parse command 'divide 4'"},
		{name: "empty operand list", line: "sum", expected: "Error: invalid arguments for sum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, a.Process(tt.line))
		})
	}
}

func TestProcessIsRepeatable(t *testing.T) {
	// Same line in, same text out, no state between calls
	a := NewApp()
	const line = "average 4 3 8.5 4"

	first := a.Process(line)
	for range 3 {
		assert.Equal(t, first, a.Process(line))
	}
}

func TestProcessIgnoresSurroundingWhitespace(t *testing.T) {
	a := NewApp()
	assert.Equal(t, a.Process("sum 5 5"), a.Process("  sum \t 5   5 "))
}

func TestRun(t *testing.T) {
	a := NewApp()
	in := strings.NewReader("divide 4 5\n\nsum 1 2\n")
	var out strings.Builder

	require.NoError(t, a.Run(context.Background(), in, &out))

	expected := "4 divided by 5 is 0.8\n" +
		"Error: parse command ''\n" +
		"the sum of 1 2 is 3\n"
	assert.Equal(t, expected, out.String())
}

func TestRunEmptyInput(t *testing.T) {
	a := NewApp()
	var out strings.Builder

	require.NoError(t, a.Run(context.Background(), strings.NewReader(""), &out))
	assert.Empty(t, out.String())
}

func TestRunMissingTrailingNewline(t *testing.T) {
	a := NewApp()
	var out strings.Builder

	require.NoError(t, a.Run(context.Background(), strings.NewReader("max 1 9"), &out))
	assert.Equal(t, "the maximum of 1 9 is 9\n", out.String())
}

func TestRunHonorsContext(t *testing.T) {
	a := NewApp()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out strings.Builder
	err := a.Run(ctx, strings.NewReader("sum 1 2\nsum 3 4\n"), &out)
	assert.ErrorIs(t, err, context.Canceled)
}
