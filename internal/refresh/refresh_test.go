package refresh

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_CoalescesBursts(t *testing.T) {
	var fired atomic.Int32
	d := NewDebouncer(50*time.Millisecond, func() { fired.Add(1) })

	// A burst of changes within the quiet period fires once.
	d.Changed()
	d.Changed()
	d.Changed()

	assert.Eventually(t, func() bool { return fired.Load() == 1 },
		time.Second, 5*time.Millisecond)

	// Quiet period passed; a new change fires again.
	d.Changed()
	assert.Eventually(t, func() bool { return fired.Load() == 2 },
		time.Second, 5*time.Millisecond)
}

func TestDebouncer_Stop(t *testing.T) {
	var fired atomic.Int32
	d := NewDebouncer(20*time.Millisecond, func() { fired.Add(1) })

	d.Changed()
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, fired.Load())
}

func TestDebouncer_Flush(t *testing.T) {
	var fired atomic.Int32
	d := NewDebouncer(time.Hour, func() { fired.Add(1) })

	d.Changed()
	d.Flush()
	assert.EqualValues(t, 1, fired.Load())

	// The cancelled timer must not fire a second time.
	time.Sleep(30 * time.Millisecond)
	assert.EqualValues(t, 1, fired.Load())
}
