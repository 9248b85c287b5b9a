package isp_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sghaida/solid/isp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Fat interface (violating)
// -----------------------------------------------------------------------------

// TestLegacyRobot_ForcedMethods verifies the robot can only fail on Eat/Sleep.
func TestLegacyRobot_ForcedMethods(t *testing.T) {
	t.Parallel()

	r := isp.LegacyRobot{Model: "R2"}

	line, err := r.Work()
	require.NoError(t, err)
	assert.Equal(t, "R2 is working", line)

	_, err = r.Eat()
	require.ErrorIs(t, err, isp.ErrUnsupported)
	var ue isp.UnsupportedError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, isp.UnsupportedError{Worker: "R2", Capability: "eat"}, ue)
	assert.Equal(t, `isp: "R2" cannot "eat"`, err.Error())

	_, err = r.Sleep()
	assert.ErrorIs(t, err, isp.ErrUnsupported)
}

func TestLunchBreak(t *testing.T) {
	t.Parallel()

	lines, err := isp.LunchBreak(isp.LegacyHuman{Name: "Ann"}, isp.LegacyRobot{Model: "C3"})
	assert.Equal(t, []string{"Ann is eating"}, lines)
	assert.ErrorIs(t, err, isp.ErrUnsupported)

	lines, err = isp.LunchBreak(isp.LegacyHuman{Name: "Ann"})
	assert.NoError(t, err)
	assert.Len(t, lines, 1)
}

//
// -----------------------------------------------------------------------------
// Segregated capabilities (adhering)
// -----------------------------------------------------------------------------

// TestManager_Shift_RobotSkipsLunch verifies only Eaters are sent to lunch.
func TestManager_Shift_RobotSkipsLunch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := isp.Manager{}.Shift(context.Background(), &buf, isp.Human{Name: "Bo"}, isp.Robot{Model: "K9"})
	require.NoError(t, err)

	assert.Equal(t, "Bo is working\nK9 is working\nBo is eating\n", buf.String())
}

func TestManager_Rest(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, isp.Manager{}.Rest(&buf, isp.Human{Name: "Bo"}))
	assert.Equal(t, "Bo is sleeping\n", buf.String())
}

// TestRobot_NotAnEater checks the capability sets at the type level.
func TestRobot_NotAnEater(t *testing.T) {
	t.Parallel()

	var w isp.Workable = isp.Robot{Model: "K9"}
	_, isEater := w.(isp.Eater)
	_, isSleeper := w.(isp.Sleeper)
	assert.False(t, isEater)
	assert.False(t, isSleeper)

	var h isp.Workable = isp.Human{Name: "Bo"}
	_, isHumanWorker := h.(isp.HumanWorker)
	assert.True(t, isHumanWorker)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("boom") }

func TestManager_Shift_WriteError(t *testing.T) {
	t.Parallel()

	err := isp.Manager{}.Shift(context.Background(), failingWriter{}, isp.Robot{Model: "K9"})
	assert.EqualError(t, err, "boom")
}

func TestRun(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, isp.Run(context.Background(), &buf))

	out := buf.String()
	assert.Contains(t, out, `lunch failed: isp: "R2" cannot "eat"`)
	assert.Contains(t, out, "R2 is working")
	assert.NotContains(t, out, "R2 is eating")
	assert.Contains(t, out, "Alice is sleeping")
}
