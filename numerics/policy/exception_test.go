//go:build unit

package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pratik-a/safe-numerics/numerics/checked"
	"github.com/pratik-a/safe-numerics/numerics/numeric"
	nzap "github.com/pratik-a/safe-numerics/numerics/zap"
)

func overflowInt8() *checked.Condition {
	return checked.Add(numeric.Int8, numeric.FromInt64(127), numeric.FromInt64(1)).Condition
}

func TestThrow(t *testing.T) {
	t.Parallel()

	c := overflowInt8()
	_, err := Throw{}.OnError(c)
	require.ErrorIs(t, err, checked.ErrOverflow)

	var condition *checked.Condition
	require.ErrorAs(t, err, &condition)
	assert.Same(t, c, condition)
}

func TestTrap(t *testing.T) {
	t.Parallel()

	c := overflowInt8()
	assert.PanicsWithValue(t, c, func() {
		_, _ = Trap{}.OnError(c)
	})
}

func TestSaturate(t *testing.T) {
	t.Parallel()

	v, err := Saturate{}.OnError(overflowInt8())
	require.NoError(t, err)
	assert.Equal(t, numeric.FromInt64(127), v)

	under := checked.Subtract(numeric.Uint16, numeric.FromInt64(0), numeric.FromInt64(1)).Condition
	v, err = Saturate{}.OnError(under)
	require.NoError(t, err)
	assert.Equal(t, numeric.Value{}, v)

	under = checked.Subtract(numeric.Int16, numeric.FromInt64(-32768), numeric.FromInt64(1)).Condition
	v, err = Saturate{}.OnError(under)
	require.NoError(t, err)
	assert.Equal(t, numeric.FromInt64(-32768), v)

	zero := checked.Divide(numeric.Int32, numeric.FromInt64(9), numeric.Value{}).Condition
	v, err = Saturate{}.OnError(zero)
	require.NoError(t, err)
	assert.True(t, v.IsZero())
}

func TestReporter(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	reporter := NewReporter(nzap.Wrap(zap.New(core)), Saturate{})

	assert.Equal(t, "report(saturate)", reporter.Name())

	v, err := reporter.OnError(overflowInt8())
	require.NoError(t, err)
	assert.Equal(t, numeric.FromInt64(127), v)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "arithmetic error", entry.Message)
	assert.Equal(t, "overflow", entry.ContextMap()["condition"])
	assert.Equal(t, "add", entry.ContextMap()["op"])
	assert.Equal(t, "int8", entry.ContextMap()["result_kind"])
	assert.Equal(t, "127", entry.ContextMap()["left"])
	assert.Equal(t, "1", entry.ContextMap()["right"])
}

func TestReporter_Defaults(t *testing.T) {
	t.Parallel()

	reporter := NewReporter(nil, nil)
	assert.Equal(t, "report(throw)", reporter.Name())

	_, err := reporter.OnError(overflowInt8())
	require.ErrorIs(t, err, checked.ErrOverflow)
}
