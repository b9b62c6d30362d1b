package command

import (
	"errors"
	"fmt"
)

// ErrorPrefix labels every user-facing failure line
const ErrorPrefix = "Error: "

// ErrorMessage is the failure type shared by the parser and the calculator.
// The wrapped text is the bare diagnostic; Message adds the display label.
type ErrorMessage struct {
	text string
}

// Errorf builds an ErrorMessage from a format string
func Errorf(format string, args ...any) ErrorMessage {
	return ErrorMessage{text: fmt.Sprintf(format, args...)}
}

func (e ErrorMessage) Error() string {
	return e.text
}

// Message returns the labeled form shown to the user
func (e ErrorMessage) Message() string {
	return ErrorPrefix + e.text
}

// Display converts any pipeline failure into presentable text. Errors other
// than ErrorMessage still come back labeled so the caller always has exactly
// one line to print.
func Display(err error) string {
	var em ErrorMessage
	if errors.As(err, &em) {
		return em.Message()
	}
	return ErrorPrefix + err.Error()
}
