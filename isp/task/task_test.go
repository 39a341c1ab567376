package task_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/solid-principles-go/isp/task"
)

func Test_IPhone_SupportsEveryFeature(t *testing.T) {
	// arrange
	var out bytes.Buffer
	var phone task.Phone = task.NewIPhone(&out)

	// act + assert
	assert.NoError(t, phone.Call("555-0100"))
	assert.NoError(t, phone.Text("555-0100"))
	assert.NoError(t, phone.UnlockPhone())
	assert.NoError(t, phone.Restart())
	assert.NoError(t, phone.TakeAPhoto())
	assert.NoError(t, phone.RecordAVideo())
	assert.InDelta(t, 100.0, phone.BatteryAmount(), 0.001)
	assert.Contains(t, out.String(), "Calling 555-0100\n")
}

func Test_Nokia3310_FailsOnMissingFeatures(t *testing.T) {
	// arrange
	var out bytes.Buffer
	var phone task.Phone = task.NewNokia3310(&out)

	// act + assert
	assert.NoError(t, phone.Call("555-0100"))
	assert.NoError(t, phone.Text("555-0100"))
	assert.ErrorIs(t, phone.UnlockPhone(), task.ErrUnsupportedFeature)
	assert.ErrorIs(t, phone.Restart(), task.ErrUnsupportedFeature)
	assert.ErrorIs(t, phone.TakeAPhoto(), task.ErrUnsupportedFeature)
	assert.ErrorIs(t, phone.RecordAVideo(), task.ErrUnsupportedFeature)
	assert.Equal(t, "Calling 555-0100\nTexting 555-0100\n", out.String())
}
