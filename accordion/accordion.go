package accordion

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

// Accordion is a vertically scrolling list of collapsible sections with a
// configurable cap on how many may be open at once. Opening a section past
// the cap evicts the one that has been open longest; opening animations
// cascade on first mount and an opened section is scrolled into view once
// its expand animation has settled.
type Accordion struct {
	widget.BaseWidget

	cfg      GlobalConfig
	coord    *coordinator
	sections []*Section

	box    *fyne.Container
	scroll *container.Scroll
}

// New builds an Accordion from the given configuration and section specs.
// Sections keep the order they are given in; each is assigned the sequential
// index used for scroll targeting and the initial stagger delay.
//
// New fails fast on construction-time contract violations: an empty Title,
// nil Content, or a duplicate section ID. A MaxOpenSections below 1 is not
// an error; it is clamped to 1 and logged as a configuration warning.
func New(cfg GlobalConfig, specs ...SectionSpec) (*Accordion, error) {
	a := &Accordion{
		cfg:   cfg,
		coord: newCoordinator(cfg),
	}

	seen := make(map[SectionID]struct{}, len(specs))
	for i, spec := range specs {
		if spec.Title == "" {
			return nil, fmt.Errorf("sections[%d]: %w", i, ValidationError{Field: "Title", Message: "must not be empty"})
		}
		if spec.Content == nil {
			return nil, fmt.Errorf("sections[%d]: %w", i, ValidationError{Field: "Content", Message: "must not be nil"})
		}
		if spec.ID == "" {
			spec.ID = NewSectionID()
		}
		if _, dup := seen[spec.ID]; dup {
			return nil, fmt.Errorf("sections[%d] %q: %w", i, spec.ID, ErrDuplicateSection)
		}
		seen[spec.ID] = struct{}{}

		sec := newSection(spec, i,
			resolveStyle(cfg.Style, spec.Style),
			resolveScrollMode(cfg.ScrollMode, spec.ScrollMode),
		)
		sec.onLayoutChange = a.relayout
		a.sections = append(a.sections, sec)
	}

	objects := make([]fyne.CanvasObject, len(a.sections))
	for i, sec := range a.sections {
		objects[i] = sec
	}
	a.box = container.NewVBox(objects...)
	a.scroll = container.NewScroll(a.box)
	a.coord.scroll = a.scroll

	// Admission runs in list order; sections past the cap are forced closed.
	for i, sec := range a.sections {
		a.coord.register(sec, specs[i].InitiallyOpen)
	}
	a.coord.armInitial()

	a.ExtendBaseWidget(a)
	return a, nil
}

// Toggle programmatically taps the section's header and returns its new open
// status. Unknown IDs are a no-op returning false.
func (a *Accordion) Toggle(id SectionID) bool {
	return a.coord.onHeaderTap(id)
}

// IsOpen reports whether the section is currently expanded (or animating
// toward expanded).
func (a *Accordion) IsOpen(id SectionID) bool {
	return a.coord.isOpen(id)
}

// OpenIDs exposes the open set as an observable string list, ordered oldest
// opened first. Host applications can attach listeners to react to open set
// changes without polling.
func (a *Accordion) OpenIDs() binding.StringList {
	return a.coord.openBinding
}

// Sections returns the accordion's sections in list order.
func (a *Accordion) Sections() []*Section {
	return a.sections
}

// Stop cancels all pending timers and running animations. Call it when the
// accordion is removed from the UI before its window closes.
func (a *Accordion) Stop() {
	a.coord.stop()
}

// CreateRenderer implements fyne.Widget.
func (a *Accordion) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(a.scroll)
}

// relayout recomputes the list layout after a section's animated height
// changed.
func (a *Accordion) relayout() {
	a.box.Refresh()
}
