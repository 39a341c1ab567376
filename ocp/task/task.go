// Package task is an open/closed exercise: every new operation means editing Calculate.
package task

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedOperation is returned for any action other than add, subtract, divide and multiply.
	ErrUnsupportedOperation = errors.New("do not support other operations except for add / subtract / divide / multiply")

	// ErrDivisionByZero is returned when dividing by zero.
	ErrDivisionByZero = errors.New("division by zero")
)

type Calculator struct{}

func (Calculator) Calculate(action string, a int, b int) (int, error) {
	switch action {
	case "add":
		return a + b, nil
	case "subtract":
		return a - b, nil
	case "divide":
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	case "multiply":
		return a * b, nil
	default:
		return 0, errors.Join(ErrUnsupportedOperation, fmt.Errorf("action %q", action))
	}
}
