package accordion

import (
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
)

const (
	// settleDelay is the pause between a tap opening a section and the
	// scroll-into-view starting, so the expand animation is already visibly
	// under way when the viewport moves.
	settleDelay = 250 * time.Millisecond

	scrollFastDuration = 500 * time.Millisecond
	scrollSlowDuration = time.Second
)

// coordinator owns the ordered open set, the shared scroll handle and the
// settle/scroll timers. It is the only mutator of the open set; sections
// query it read-only. All mutation happens on the Fyne event goroutine, so
// taps are serialized and no locking is needed.
type coordinator struct {
	logger *slog.Logger

	maxOpen      int
	initialDelay time.Duration

	open        []SectionID
	openBinding binding.StringList

	sections []*Section // list order
	byID     map[SectionID]*Section

	scroll *container.Scroll

	settleTimer *time.Timer
	// scrollGen invalidates stale settle timers: every new tap bumps it, so
	// only the most recent pending scroll is honored.
	scrollGen  uint64
	scrollAnim *fyne.Animation
}

func newCoordinator(cfg GlobalConfig) *coordinator {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	maxOpen := cfg.MaxOpenSections
	if maxOpen < 1 {
		logger.Warn("invalid max open sections, clamping",
			slog.Int("configured", maxOpen),
			slog.Int("clamped", 1),
		)
		maxOpen = 1
	}

	return &coordinator{
		logger:       logger,
		maxOpen:      maxOpen,
		initialDelay: cfg.InitialOpeningSequenceDelay,
		openBinding:  binding.NewStringList(),
		byID:         make(map[SectionID]*Section),
	}
}

// register admits a section at construction time, in list order. An
// initially-open section joins the open set only while the cap still has
// room; sections past the cap are forced closed and never animate.
// It returns whether the section was admitted open.
func (c *coordinator) register(sec *Section, initiallyOpen bool) bool {
	c.sections = append(c.sections, sec)
	c.byID[sec.id] = sec

	sec.onTap = c.onHeaderTap
	sec.isOpen = c.isOpen

	if !initiallyOpen {
		return false
	}
	if len(c.open) >= c.maxOpen {
		c.logger.Debug("initially-open section forced closed by cap",
			slog.String("section", string(sec.id)),
			slog.Int("max_open", c.maxOpen),
		)
		return false
	}
	c.open = append(c.open, sec.id)
	return true
}

// armInitial schedules the staggered opening cascade for the sections that
// were admitted open during registration. Called once, after all sections
// are registered.
func (c *coordinator) armInitial() {
	c.syncBinding()
	for _, sec := range c.sections {
		if containsID(c.open, sec.id) {
			sec.driver.openAfter(staggerDelay(c.initialDelay, sec.index))
		}
	}
}

// onHeaderTap applies the open-set policy for a tap on the given section,
// drives the animation targets of every section whose membership changed,
// and schedules the scroll-into-view when the tap opened the section.
// It returns the section's new open status.
func (c *coordinator) onHeaderTap(id SectionID) bool {
	sec, ok := c.byID[id]
	if !ok {
		return false
	}

	// Any tap invalidates the previous tap's pending scroll.
	c.cancelPendingScroll()

	prev := c.open
	c.open = applyTap(prev, c.maxOpen, id)
	nowOpen := containsID(c.open, id)

	// Close evicted sections before retargeting the tapped one.
	for _, old := range prev {
		if old == id || containsID(c.open, old) {
			continue
		}
		if evicted, ok := c.byID[old]; ok {
			evicted.driver.SetTarget(false)
			evicted.Refresh()
		}
	}

	sec.driver.SetTarget(nowOpen)
	sec.Refresh()
	c.syncBinding()

	c.logger.Debug("header tapped",
		slog.String("section", string(id)),
		slog.Bool("open", nowOpen),
		slog.Int("open_count", len(c.open)),
	)

	if nowOpen && sec.scrollMode != ScrollNone {
		c.scheduleScroll(sec)
	}
	return nowOpen
}

// isOpen reports whether the section is currently in the open set.
func (c *coordinator) isOpen(id SectionID) bool {
	return containsID(c.open, id)
}

// scheduleScroll arms the settle timer for a section that just opened.
func (c *coordinator) scheduleScroll(sec *Section) {
	gen := c.scrollGen
	id := sec.id
	c.settleTimer = time.AfterFunc(settleDelay, func() {
		fyne.Do(func() {
			c.fireScroll(gen, id)
		})
	})
}

// fireScroll runs a settle timer's callback. Stale timers — superseded by a
// newer tap, or targeting a section no longer registered or no longer open —
// are no-ops.
func (c *coordinator) fireScroll(gen uint64, id SectionID) {
	if gen != c.scrollGen {
		return
	}
	sec, ok := c.byID[id]
	if !ok || !c.isOpen(id) {
		return
	}
	c.scrollToSection(sec)
}

// cancelPendingScroll stops the settle timer and any in-flight scroll
// animation, and invalidates timers already fired but not yet run.
func (c *coordinator) cancelPendingScroll() {
	c.scrollGen++
	if c.settleTimer != nil {
		c.settleTimer.Stop()
		c.settleTimer = nil
	}
	if c.scrollAnim != nil {
		c.scrollAnim.Stop()
		c.scrollAnim = nil
	}
}

// scrollToSection animates the shared scroll offset so the section's top
// lands at the vertical middle of the viewport.
func (c *coordinator) scrollToSection(sec *Section) {
	if c.scroll == nil {
		return
	}
	if c.scrollAnim != nil {
		c.scrollAnim.Stop()
		c.scrollAnim = nil
	}
	viewH := c.scroll.Size().Height
	if viewH <= 0 {
		return
	}

	targetY := sec.Position().Y - viewH/2
	maxY := c.scroll.Content.MinSize().Height - viewH
	if maxY < 0 {
		maxY = 0
	}
	if targetY < 0 {
		targetY = 0
	} else if targetY > maxY {
		targetY = maxY
	}

	startY := c.scroll.Offset.Y
	if startY == targetY {
		return
	}

	var anim *fyne.Animation
	anim = fyne.NewAnimation(scrollDuration(sec.scrollMode), func(f float32) {
		y := startY + (targetY-startY)*f
		c.scroll.Offset = fyne.NewPos(c.scroll.Offset.X, y)
		c.scroll.Refresh()
		// Release the handle once the animation completes on its own, so a
		// later cancel has nothing stale to stop.
		if f >= 1 && c.scrollAnim == anim {
			c.scrollAnim = nil
		}
	})
	anim.Curve = fyne.AnimationEaseInOut
	c.scrollAnim = anim
	anim.Start()
}

func scrollDuration(mode ScrollMode) time.Duration {
	if mode == ScrollSlow {
		return scrollSlowDuration
	}
	return scrollFastDuration
}

// syncBinding mirrors the open set into the observable binding.
func (c *coordinator) syncBinding() {
	ids := make([]string, len(c.open))
	for i, id := range c.open {
		ids[i] = string(id)
	}
	_ = c.openBinding.Set(ids)
}

// stop releases every timer and animation the coordinator or its sections
// hold. Late timer callbacks become no-ops.
func (c *coordinator) stop() {
	c.cancelPendingScroll()
	for _, sec := range c.sections {
		sec.driver.Stop()
	}
}
