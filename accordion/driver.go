package accordion

import (
	"math"
	"time"

	"fyne.io/fyne/v2"
)

const (
	// transitionDuration is the full-distance open/close tween time,
	// roughly matching a critically damped spring (stiffness 200, damping 30).
	transitionDuration = 300 * time.Millisecond
	// minTransition is the floor for short retargets so a near-complete
	// animation still eases instead of snapping.
	minTransition = 40 * time.Millisecond

	// staggerStep is the extra per-index delay of the initial opening cascade.
	staggerStep = 200 * time.Millisecond
	// staggerCap bounds the per-index extra so long lists don't wait forever.
	staggerCap = time.Second
)

// staggerDelay returns the mount-time delay before a section's first opening
// transition: the configured base delay plus min(index*200ms, 1s).
func staggerDelay(base time.Duration, index int) time.Duration {
	extra := time.Duration(index) * staggerStep
	if extra > staggerCap {
		extra = staggerCap
	}
	return base + extra
}

// animationDriver owns one section's expansion progress and tweens it toward
// the current open/closed target. All methods must be called on the Fyne
// event goroutine; timer callbacks hop back onto it via fyne.Do.
type animationDriver struct {
	progress float32 // 0 = collapsed, 1 = expanded
	open     bool

	onFrame func(progress float32)

	anim *fyne.Animation

	// initialArmed records that the one-shot mount delay has been consumed;
	// every transition after it starts immediately.
	initialArmed bool
	delayTimer   *time.Timer
	// generation invalidates stale delay timers: a retarget bumps it, and a
	// timer that fires with an old generation is a no-op.
	generation uint64
	stopped    bool
}

func newAnimationDriver(onFrame func(progress float32)) *animationDriver {
	return &animationDriver{onFrame: onFrame}
}

// Progress returns the current expansion progress in [0,1].
func (d *animationDriver) Progress() float32 {
	return d.progress
}

// openAfter schedules the section's first-ever opening transition, delayed so
// that simultaneously mounted sections cascade instead of popping open at
// once. It applies at most once per section lifetime; once consumed, or after
// any user transition, it does nothing.
func (d *animationDriver) openAfter(delay time.Duration) {
	if d.initialArmed || d.stopped {
		return
	}
	d.initialArmed = true
	d.open = true

	gen := d.generation
	d.delayTimer = time.AfterFunc(delay, func() {
		fyne.Do(func() {
			if d.stopped || gen != d.generation {
				return
			}
			d.animateTo(1)
		})
	})
}

// SetTarget retargets the driver at open or closed. A running animation is
// stopped and the new tween continues from the current progress, so rapid
// re-taps reverse smoothly instead of restarting from rest. A still-pending
// initial delay is invalidated: user transitions never stagger.
func (d *animationDriver) SetTarget(open bool) {
	if d.stopped {
		return
	}
	d.initialArmed = true
	d.open = open
	d.generation++
	d.cancelDelay()

	var target float32
	if open {
		target = 1
	}
	d.animateTo(target)
}

// Stop cancels any pending delay timer and running animation. The driver is
// dead afterwards; late timer callbacks become no-ops.
func (d *animationDriver) Stop() {
	d.stopped = true
	d.generation++
	d.cancelDelay()
	d.stopAnim()
}

func (d *animationDriver) animateTo(target float32) {
	d.stopAnim()

	start := d.progress
	dist := target - start
	if dist == 0 {
		return
	}

	// Scale duration by remaining distance so retargets stay snappy.
	dur := time.Duration(float64(transitionDuration) * math.Abs(float64(dist)))
	if dur < minTransition {
		dur = minTransition
	}

	anim := fyne.NewAnimation(dur, func(f float32) {
		d.progress = start + dist*f
		if d.onFrame != nil {
			d.onFrame(d.progress)
		}
	})
	// Opening leads with speed, closing gathers it: the curve choice seeds
	// the perceived velocity in the direction of travel.
	if dist > 0 {
		anim.Curve = fyne.AnimationEaseOut
	} else {
		anim.Curve = fyne.AnimationEaseIn
	}
	d.anim = anim
	anim.Start()
}

func (d *animationDriver) cancelDelay() {
	if d.delayTimer != nil {
		d.delayTimer.Stop()
		d.delayTimer = nil
	}
}

func (d *animationDriver) stopAnim() {
	if d.anim != nil {
		d.anim.Stop()
		d.anim = nil
	}
}
