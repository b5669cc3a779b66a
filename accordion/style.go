package accordion

import (
	"image/color"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/google/uuid"
)

// Hardcoded style defaults, used when neither the section override nor the
// global configuration supplies a value.
const (
	DefaultHeaderCornerRadius  float32 = 30
	DefaultHeaderPadding       float32 = 12
	DefaultContentCornerRadius float32 = 20
	DefaultContentPadding      float32 = 10
)

// SectionID is an opaque, process-unique identifier for one section. It is
// assigned once when the SectionSpec is created and stays stable across
// refreshes, so it is safe to use as a map key or to pass to Toggle/IsOpen
// even after sections are reordered.
type SectionID string

// NewSectionID returns a fresh process-unique section identifier.
func NewSectionID() SectionID {
	return SectionID(uuid.NewString())
}

// ScrollMode controls whether (and how fast) a section is scrolled into view
// after a tap opens it.
type ScrollMode int

const (
	// ScrollNone disables scroll-into-view for the section.
	ScrollNone ScrollMode = iota
	// ScrollFast scrolls the opened section into view over 500ms.
	ScrollFast
	// ScrollSlow scrolls the opened section into view over 1000ms.
	ScrollSlow
)

// Style holds the visual knobs for a section. All fields are optional:
// a nil field means "inherit". On a SectionSpec the fallback is the
// GlobalConfig style; on the GlobalConfig style the fallback is the
// hardcoded default (radii, padding) or the current theme (colors, icons).
type Style struct {
	// HeaderColor is the header bar fill. Nil uses the theme button color.
	HeaderColor color.Color
	// HeaderTextColor is the header title color. Nil uses the theme foreground.
	HeaderTextColor color.Color
	// HeaderCornerRadius rounds the header bar corners. Nil uses 30.
	HeaderCornerRadius *float32
	// HeaderPadding is the inset around the header title and icon. Nil uses 12.
	HeaderPadding *float32

	// Icon is the trailing header icon. Nil uses the theme drop-down chevron.
	Icon fyne.Resource
	// OpenIcon replaces Icon while the section is open and FlipIconWhenOpen
	// resolves true. Nil uses the theme drop-up chevron, i.e. the 180°
	// (two quarter-turn) flip of the default Icon.
	OpenIcon fyne.Resource
	// FlipIconWhenOpen swaps Icon for OpenIcon while open. Nil means true.
	FlipIconWhenOpen *bool

	// ContentColor is the content area fill. Nil uses the theme input background.
	ContentColor color.Color
	// ContentCornerRadius rounds the content box corners. Nil uses 20.
	ContentCornerRadius *float32
	// ContentPadding is the inset around the section content. Nil uses 10.
	ContentPadding *float32
	// ContentBorderColor is the content box outline. Nil uses the theme separator.
	ContentBorderColor color.Color
}

// SectionSpec describes one collapsible section. Title and Content are
// required; everything else falls back to the GlobalConfig.
type SectionSpec struct {
	// ID identifies the section. Leave zero to have New assign one.
	ID SectionID
	// Title is the header text. Required.
	Title string
	// Content is the collapsible body. Required.
	Content fyne.CanvasObject
	// InitiallyOpen requests the section start expanded, subject to the
	// MaxOpenSections cap applied in list order at construction time.
	InitiallyOpen bool
	// Style overrides individual GlobalConfig style fields for this section.
	Style Style
	// ScrollMode overrides the global scroll-into-view mode. Nil inherits.
	ScrollMode *ScrollMode
}

// NewSectionSpec returns a SectionSpec with a freshly assigned ID.
func NewSectionSpec(title string, content fyne.CanvasObject) SectionSpec {
	return SectionSpec{
		ID:      NewSectionID(),
		Title:   title,
		Content: content,
	}
}

// GlobalConfig configures an Accordion. The zero value is usable: one open
// section at a time, no initial stagger, no scroll-into-view.
type GlobalConfig struct {
	// MaxOpenSections caps how many sections may be expanded at once.
	// Values below 1 are clamped to 1 and logged as a configuration warning.
	MaxOpenSections int
	// InitialOpeningSequenceDelay delays the whole initial opening cascade.
	// Each initially-open section additionally waits min(index*200ms, 1s)
	// so the cascade staggers down the list.
	InitialOpeningSequenceDelay time.Duration
	// ScrollMode is the default scroll-into-view behavior after a tap opens
	// a section. Sections may override it per spec.
	ScrollMode ScrollMode
	// Style supplies the default look for all sections.
	Style Style
	// Logger receives debug/warning events. Nil discards them.
	Logger *slog.Logger
}

// resolvedStyle is a Style with every inheritance decision already made.
// Color and icon fields stay nil when no override was given so the renderer
// can pull the current theme value on each refresh (theme switches apply
// without rebuilding the accordion).
type resolvedStyle struct {
	headerColor     color.Color
	headerTextColor color.Color
	headerRadius    float32
	headerPadding   float32

	icon     fyne.Resource
	openIcon fyne.Resource
	flipIcon bool

	contentColor   color.Color
	contentRadius  float32
	contentPadding float32
	borderColor    color.Color
}

// resolveStyle merges a per-section override over the global defaults over the
// hardcoded defaults. Resolution is pure: the same inputs always produce the
// same resolved values.
func resolveStyle(global, override Style) resolvedStyle {
	return resolvedStyle{
		headerColor:     firstColor(override.HeaderColor, global.HeaderColor),
		headerTextColor: firstColor(override.HeaderTextColor, global.HeaderTextColor),
		headerRadius:    firstFloat(override.HeaderCornerRadius, global.HeaderCornerRadius, DefaultHeaderCornerRadius),
		headerPadding:   firstFloat(override.HeaderPadding, global.HeaderPadding, DefaultHeaderPadding),
		icon:            firstResource(override.Icon, global.Icon),
		openIcon:        firstResource(override.OpenIcon, global.OpenIcon),
		flipIcon:        firstBool(override.FlipIconWhenOpen, global.FlipIconWhenOpen, true),
		contentColor:    firstColor(override.ContentColor, global.ContentColor),
		contentRadius:   firstFloat(override.ContentCornerRadius, global.ContentCornerRadius, DefaultContentCornerRadius),
		contentPadding:  firstFloat(override.ContentPadding, global.ContentPadding, DefaultContentPadding),
		borderColor:     firstColor(override.ContentBorderColor, global.ContentBorderColor),
	}
}

// resolveScrollMode merges the per-section scroll override over the global one.
func resolveScrollMode(global ScrollMode, override *ScrollMode) ScrollMode {
	if override != nil {
		return *override
	}
	return global
}

func firstColor(values ...color.Color) color.Color {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func firstResource(values ...fyne.Resource) fyne.Resource {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func firstFloat(override, global *float32, fallback float32) float32 {
	if override != nil {
		return *override
	}
	if global != nil {
		return *global
	}
	return fallback
}

func firstBool(override, global *bool, fallback bool) bool {
	if override != nil {
		return *override
	}
	if global != nil {
		return *global
	}
	return fallback
}

// themeColor substitutes the current theme value for unset style colors.
func themeColor(c color.Color, name fyne.ThemeColorName) color.Color {
	if c != nil {
		return c
	}
	return theme.Color(name)
}

// themeIcon substitutes the theme chevron for unset style icons.
func themeIcon(r fyne.Resource, fallback fyne.Resource) fyne.Resource {
	if r != nil {
		return r
	}
	return fallback
}

// Float32 returns a pointer to v, for filling optional Style fields.
func Float32(v float32) *float32 { return &v }

// Bool returns a pointer to v, for filling optional Style fields.
func Bool(v bool) *bool { return &v }

// Mode returns a pointer to m, for filling the per-section ScrollMode override.
func Mode(m ScrollMode) *ScrollMode { return &m }
