package accordion

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestStaggerDelay(t *testing.T) {
	tests := []struct {
		name  string
		base  time.Duration
		index int
		want  time.Duration
	}{
		{name: "index zero", base: 250 * time.Millisecond, index: 0, want: 250 * time.Millisecond},
		{name: "index one", base: 250 * time.Millisecond, index: 1, want: 450 * time.Millisecond},
		{name: "index two", base: 250 * time.Millisecond, index: 2, want: 650 * time.Millisecond},
		{name: "per-index extra caps at one second", base: 250 * time.Millisecond, index: 50, want: 1250 * time.Millisecond},
		{name: "zero base", base: 0, index: 3, want: 600 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, staggerDelay(tt.base, tt.index))
		})
	}
}

func TestAnimationDriver_SetTargetDrivesProgress(t *testing.T) {
	// The test driver completes animations in a single tick, so progress
	// lands on the target synchronously.
	app := test.NewApp()
	defer app.Quit()

	var frames []float32
	d := newAnimationDriver(func(p float32) { frames = append(frames, p) })

	d.SetTarget(true)
	assert.Equal(t, float32(1), d.Progress())
	assert.True(t, d.open)
	assert.NotEmpty(t, frames)

	d.SetTarget(false)
	assert.Equal(t, float32(0), d.Progress())
	assert.False(t, d.open)
}

func TestAnimationDriver_SetTargetIsIdempotentAtRest(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	d := newAnimationDriver(nil)

	d.SetTarget(false)
	assert.Equal(t, float32(0), d.Progress(), "closing an already-closed section does not animate")
	assert.Nil(t, d.anim)
}

func TestAnimationDriver_OpenAfterIsOneShot(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	d := newAnimationDriver(nil)

	d.openAfter(time.Hour)
	assert.True(t, d.initialArmed)
	assert.True(t, d.open)
	assert.NotNil(t, d.delayTimer)
	timer := d.delayTimer

	// A second arm attempt must not reschedule.
	d.openAfter(time.Hour)
	assert.Same(t, timer, d.delayTimer)

	d.Stop()
}

func TestAnimationDriver_UserTapCancelsPendingInitialDelay(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	d := newAnimationDriver(nil)

	d.openAfter(5 * time.Millisecond)
	gen := d.generation

	// A user toggle before the stagger fires takes over immediately and
	// invalidates the scheduled opening.
	d.SetTarget(false)
	assert.Nil(t, d.delayTimer)
	assert.Greater(t, d.generation, gen)

	// Even if the timer already popped, the stale callback must not reopen.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, float32(0), d.Progress())
	assert.False(t, d.open)
}

func TestAnimationDriver_UserTransitionsNeverDelayed(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	d := newAnimationDriver(nil)

	// First transition is user-triggered: no delay timer, immediate tween.
	d.SetTarget(true)
	assert.Nil(t, d.delayTimer)
	assert.Equal(t, float32(1), d.Progress())
	assert.True(t, d.initialArmed, "a user transition consumes the one-shot delay slot")

	// The mount delay can no longer apply.
	d.openAfter(time.Hour)
	assert.Nil(t, d.delayTimer)
}

func TestAnimationDriver_StopIsTerminal(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	d := newAnimationDriver(nil)
	d.openAfter(time.Hour)
	d.Stop()

	assert.True(t, d.stopped)
	assert.Nil(t, d.delayTimer)

	d.SetTarget(true)
	assert.Equal(t, float32(0), d.Progress(), "a stopped driver ignores retargets")
}
