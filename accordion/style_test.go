package accordion

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
)

func TestResolveStyle_HardcodedDefaults(t *testing.T) {
	resolved := resolveStyle(Style{}, Style{})

	assert.Equal(t, DefaultHeaderCornerRadius, resolved.headerRadius)
	assert.Equal(t, DefaultHeaderPadding, resolved.headerPadding)
	assert.Equal(t, DefaultContentCornerRadius, resolved.contentRadius)
	assert.Equal(t, DefaultContentPadding, resolved.contentPadding)
	assert.True(t, resolved.flipIcon, "icon flip defaults to on")

	// Colors and icons stay nil so the renderer picks up the live theme.
	assert.Nil(t, resolved.headerColor)
	assert.Nil(t, resolved.contentColor)
	assert.Nil(t, resolved.icon)
}

func TestResolveStyle_GlobalBeatsDefault(t *testing.T) {
	global := Style{
		HeaderCornerRadius: Float32(5),
		ContentPadding:     Float32(2),
		FlipIconWhenOpen:   Bool(false),
		HeaderColor:        color.NRGBA{R: 10, A: 255},
	}

	resolved := resolveStyle(global, Style{})

	assert.Equal(t, float32(5), resolved.headerRadius)
	assert.Equal(t, float32(2), resolved.contentPadding)
	assert.False(t, resolved.flipIcon)
	assert.Equal(t, color.NRGBA{R: 10, A: 255}, resolved.headerColor)
	// Untouched fields still fall through to the hardcoded defaults.
	assert.Equal(t, DefaultContentCornerRadius, resolved.contentRadius)
}

func TestResolveStyle_OverrideBeatsGlobal(t *testing.T) {
	global := Style{
		HeaderCornerRadius: Float32(5),
		HeaderColor:        color.NRGBA{R: 10, A: 255},
		FlipIconWhenOpen:   Bool(false),
	}
	override := Style{
		HeaderCornerRadius: Float32(9),
		HeaderColor:        color.NRGBA{G: 20, A: 255},
		FlipIconWhenOpen:   Bool(true),
		Icon:               theme.InfoIcon(),
	}

	resolved := resolveStyle(global, override)

	assert.Equal(t, float32(9), resolved.headerRadius)
	assert.Equal(t, color.NRGBA{G: 20, A: 255}, resolved.headerColor)
	assert.True(t, resolved.flipIcon)
	assert.Equal(t, theme.InfoIcon().Name(), resolved.icon.Name())
}

func TestResolveStyle_Idempotent(t *testing.T) {
	global := Style{
		HeaderCornerRadius: Float32(7),
		ContentColor:       color.NRGBA{B: 30, A: 255},
	}
	override := Style{
		ContentPadding: Float32(4),
	}

	first := resolveStyle(global, override)
	second := resolveStyle(global, override)

	assert.Equal(t, first, second, "resolution must be a pure function of its inputs")
}

func TestResolveScrollMode(t *testing.T) {
	tests := []struct {
		name     string
		global   ScrollMode
		override *ScrollMode
		want     ScrollMode
	}{
		{name: "inherits global", global: ScrollFast, override: nil, want: ScrollFast},
		{name: "override wins", global: ScrollFast, override: Mode(ScrollNone), want: ScrollNone},
		{name: "override slow", global: ScrollNone, override: Mode(ScrollSlow), want: ScrollSlow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveScrollMode(tt.global, tt.override))
		})
	}
}

func TestNewSectionSpec_AssignsStableID(t *testing.T) {
	a := NewSectionSpec("A", nil)
	b := NewSectionSpec("B", nil)

	assert.NotEmpty(t, a.ID)
	assert.NotEmpty(t, b.ID)
	assert.NotEqual(t, a.ID, b.ID, "each spec gets a process-unique id")
}

func TestWithAlpha(t *testing.T) {
	c := color.NRGBA{R: 100, G: 100, B: 100, A: 200}

	full := withAlpha(c, 1)
	assert.Equal(t, c, full)

	half := withAlpha(c, 0.5).(color.NRGBA)
	assert.Equal(t, uint8(100), half.A)

	none := withAlpha(c, 0).(color.NRGBA)
	assert.Equal(t, uint8(0), none.A)

	clamped := withAlpha(c, 2).(color.NRGBA)
	assert.Equal(t, uint8(200), clamped.A)

	assert.Equal(t, color.Transparent, withAlpha(nil, 1))
}
