package task_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/solid-principles-go/ocp/task"
)

func Test_Calculator(t *testing.T) {
	tests := []struct {
		name   string
		action string
		a, b   int
		want   int
	}{
		{name: "add", action: "add", a: 6, b: 3, want: 9},
		{name: "subtract", action: "subtract", a: 6, b: 3, want: 3},
		{name: "divide", action: "divide", a: 7, b: 2, want: 3},
		{name: "multiply", action: "multiply", a: 6, b: 3, want: 18},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := task.Calculator{}.Calculate(tc.action, tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func Test_Calculator_Failures(t *testing.T) {
	_, err := task.Calculator{}.Calculate("modulo", 6, 3)
	assert.ErrorIs(t, err, task.ErrUnsupportedOperation)

	_, err = task.Calculator{}.Calculate("divide", 6, 0)
	assert.ErrorIs(t, err, task.ErrDivisionByZero)
}
