package accordion

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Section is one collapsible header+content unit inside an Accordion.
// Its expanded height follows the animation driver's progress, so the list
// above and below it slides smoothly during transitions.
type Section struct {
	widget.BaseWidget

	id         SectionID
	index      int
	title      string
	content    fyne.CanvasObject
	style      resolvedStyle
	scrollMode ScrollMode

	driver *animationDriver

	// onTap is the coordinator's header-tap entry point.
	onTap func(id SectionID) bool
	// isOpen queries the coordinator-owned open set.
	isOpen func(id SectionID) bool
	// onLayoutChange asks the owning accordion to relayout the list.
	onLayoutChange func()
}

func newSection(spec SectionSpec, index int, style resolvedStyle, mode ScrollMode) *Section {
	s := &Section{
		id:         spec.ID,
		index:      index,
		title:      spec.Title,
		content:    spec.Content,
		style:      style,
		scrollMode: mode,
	}
	s.driver = newAnimationDriver(func(float32) {
		s.Refresh()
		if s.onLayoutChange != nil {
			s.onLayoutChange()
		}
	})
	s.ExtendBaseWidget(s)
	return s
}

// ID returns the section's stable identifier.
func (s *Section) ID() SectionID {
	return s.id
}

// Title returns the header text.
func (s *Section) Title() string {
	return s.title
}

func (s *Section) open() bool {
	return s.isOpen != nil && s.isOpen(s.id)
}

// CreateRenderer implements fyne.Widget.
func (s *Section) CreateRenderer() fyne.WidgetRenderer {
	header := newSectionHeader(s.title, s.style, s.open, func() {
		if s.onTap != nil {
			s.onTap(s.id)
		}
	})

	contentBG := canvas.NewRectangle(color.Transparent)
	contentBG.CornerRadius = s.style.contentRadius
	contentBG.StrokeWidth = 1

	// A non-scrolling scroll container clips the content while the section
	// is partially expanded.
	clip := container.NewScroll(s.content)
	clip.Direction = container.ScrollNone

	r := &sectionRenderer{
		section:   s,
		header:    header,
		contentBG: contentBG,
		clip:      clip,
	}
	r.Refresh()
	return r
}

type sectionRenderer struct {
	section   *Section
	header    *sectionHeader
	contentBG *canvas.Rectangle
	clip      *container.Scroll
}

// contentHeight returns the fully expanded height of the content block,
// padding included.
func (r *sectionRenderer) contentHeight() float32 {
	pad := r.section.style.contentPadding
	return r.section.content.MinSize().Height + 2*pad
}

func (r *sectionRenderer) MinSize() fyne.Size {
	style := r.section.style
	headerMin := r.header.MinSize()

	width := headerMin.Width
	if w := r.section.content.MinSize().Width + 2*style.contentPadding; w > width {
		width = w
	}

	// The gap and content block both scale with progress so the height is
	// continuous through zero.
	height := headerMin.Height + r.section.driver.Progress()*(theme.Padding()+r.contentHeight())
	return fyne.NewSize(width, height)
}

func (r *sectionRenderer) Layout(size fyne.Size) {
	style := r.section.style
	headerH := r.header.MinSize().Height
	r.header.Resize(fyne.NewSize(size.Width, headerH))
	r.header.Move(fyne.NewPos(0, 0))

	progress := r.section.driver.Progress()
	if progress <= 0 {
		r.contentBG.Hide()
		r.clip.Hide()
		return
	}
	r.contentBG.Show()
	r.clip.Show()

	pad := style.contentPadding
	top := headerH + progress*theme.Padding()
	blockH := progress * r.contentHeight()

	r.contentBG.Move(fyne.NewPos(0, top))
	r.contentBG.Resize(fyne.NewSize(size.Width, blockH))

	innerH := blockH - 2*pad
	if innerH < 0 {
		innerH = 0
	}
	r.clip.Move(fyne.NewPos(pad, top+pad))
	r.clip.Resize(fyne.NewSize(size.Width-2*pad, innerH))
}

func (r *sectionRenderer) Refresh() {
	style := r.section.style
	progress := r.section.driver.Progress()

	// The content box fades in with progress.
	r.contentBG.FillColor = withAlpha(themeColor(style.contentColor, theme.ColorNameInputBackground), progress)
	r.contentBG.StrokeColor = withAlpha(themeColor(style.borderColor, theme.ColorNameSeparator), progress)
	r.contentBG.Refresh()

	r.header.Refresh()
	r.Layout(r.section.Size())
}

func (r *sectionRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.header, r.contentBG, r.clip}
}

func (r *sectionRenderer) Destroy() {
	r.section.driver.Stop()
}

// withAlpha scales a color's alpha channel by f in [0,1].
func withAlpha(c color.Color, f float32) color.Color {
	if c == nil {
		return color.Transparent
	}
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float32(n.A) * f)
	return n
}

// Compile-time interface check.
var _ fyne.Tappable = (*sectionHeader)(nil)

// sectionHeader is the tappable rounded header bar: title on the left,
// trailing chevron on the right.
type sectionHeader struct {
	widget.BaseWidget

	style    resolvedStyle
	openFn   func() bool
	onTapped func()

	bg    *canvas.Rectangle
	title *canvas.Text
	icon  *widget.Icon
}

func newSectionHeader(title string, style resolvedStyle, openFn func() bool, onTapped func()) *sectionHeader {
	h := &sectionHeader{
		style:    style,
		openFn:   openFn,
		onTapped: onTapped,
	}
	h.bg = canvas.NewRectangle(color.Transparent)
	h.bg.CornerRadius = style.headerRadius
	h.title = canvas.NewText(title, themeColor(style.headerTextColor, theme.ColorNameForeground))
	h.title.TextSize = theme.TextSize()
	h.title.TextStyle = fyne.TextStyle{Bold: true}
	h.icon = widget.NewIcon(theme.MenuDropDownIcon())
	h.ExtendBaseWidget(h)
	return h
}

// Tapped implements fyne.Tappable.
func (h *sectionHeader) Tapped(_ *fyne.PointEvent) {
	if h.onTapped != nil {
		h.onTapped()
	}
}

// CreateRenderer implements fyne.Widget.
func (h *sectionHeader) CreateRenderer() fyne.WidgetRenderer {
	r := &headerRenderer{header: h}
	r.Refresh()
	return r
}

type headerRenderer struct {
	header *sectionHeader
}

func (r *headerRenderer) MinSize() fyne.Size {
	h := r.header
	pad := h.style.headerPadding
	titleMin := h.title.MinSize()
	iconSz := theme.IconInlineSize()

	width := pad + titleMin.Width + theme.Padding() + iconSz + pad
	height := titleMin.Height
	if iconSz > height {
		height = iconSz
	}
	return fyne.NewSize(width, height+2*pad)
}

func (r *headerRenderer) Layout(size fyne.Size) {
	h := r.header
	pad := h.style.headerPadding
	iconSz := theme.IconInlineSize()

	h.bg.Resize(size)
	h.bg.Move(fyne.NewPos(0, 0))

	titleMin := h.title.MinSize()
	h.title.Resize(titleMin)
	h.title.Move(fyne.NewPos(pad, (size.Height-titleMin.Height)/2))

	h.icon.Resize(fyne.NewSize(iconSz, iconSz))
	h.icon.Move(fyne.NewPos(size.Width-pad-iconSz, (size.Height-iconSz)/2))
}

func (r *headerRenderer) Refresh() {
	h := r.header
	open := h.openFn != nil && h.openFn()

	h.bg.FillColor = themeColor(h.style.headerColor, theme.ColorNameButton)
	h.bg.Refresh()

	h.title.Color = themeColor(h.style.headerTextColor, theme.ColorNameForeground)
	h.title.Refresh()

	// The flip is a pure function of open state: the open variant is the
	// 180° rotation (two quarter-turns) of the closed chevron.
	closedIcon := themeIcon(h.style.icon, theme.MenuDropDownIcon())
	openIcon := themeIcon(h.style.openIcon, theme.MenuDropUpIcon())
	if open && h.style.flipIcon {
		h.icon.SetResource(openIcon)
	} else {
		h.icon.SetResource(closedIcon)
	}
}

func (r *headerRenderer) Objects() []fyne.CanvasObject {
	h := r.header
	return []fyne.CanvasObject{h.bg, h.title, h.icon}
}

func (r *headerRenderer) Destroy() {}
