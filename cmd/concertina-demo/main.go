package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"runtime/debug"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/concertina/accordion"
	"github.com/shhac/concertina/internal/demo"
	"github.com/shhac/concertina/internal/logging"
)

func main() {
	if err := runApp(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// runApp is the main application entry point with panic recovery.
func runApp() (err error) {
	// Temporary stdout logger for bootstrap errors
	tempLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	defer func() {
		if r := recover(); r != nil {
			tempLogger.Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	cfg := demo.ConfigFromEnv()

	logger, err := logging.New("concertina", cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Info("starting Concertina demo",
		slog.Bool("debug", cfg.Debug),
		slog.Int("max_open", cfg.MaxOpen),
		slog.Duration("stagger_delay", cfg.StaggerDelay),
	)

	fyneApp := app.NewWithID("com.shhac.concertina.demo")
	demo.LoadThemePreference(fyneApp)

	acc, err := buildAccordion(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to build accordion: %w", err)
	}

	window := fyneApp.NewWindow("Concertina")
	window.SetContent(container.NewBorder(
		buildToolbar(fyneApp, acc), nil, nil, nil,
		acc,
	))
	window.Resize(fyne.NewSize(480, 640))

	window.ShowAndRun()
	acc.Stop()

	logger.Info("demo shutdown complete")
	return nil
}

// buildToolbar returns the top bar: theme selector on the left, a live
// open-section counter on the right.
func buildToolbar(a fyne.App, acc *accordion.Accordion) fyne.CanvasObject {
	counter := widget.NewLabel("0 open")
	acc.OpenIDs().AddListener(binding.NewDataListener(func() {
		ids, err := acc.OpenIDs().Get()
		if err != nil {
			return
		}
		counter.SetText(fmt.Sprintf("%d open", len(ids)))
	}))

	return container.NewBorder(nil, nil,
		container.NewHBox(widget.NewLabel("Theme"), demo.NewThemeSelector(a)),
		counter,
	)
}

// buildAccordion assembles the demo sections, exercising per-section style
// and scroll overrides against the global defaults.
func buildAccordion(cfg *demo.Config, logger *slog.Logger) (*accordion.Accordion, error) {
	intro := accordion.NewSectionSpec("Getting started",
		widget.NewLabel("Tap a header to expand it.\nOpening more sections than the cap\ncloses the oldest one."))
	intro.InitiallyOpen = true

	cascade := accordion.NewSectionSpec("Opening cascade",
		widget.NewLabel("Sections that start open reveal\nthemselves one after another,\ntop to bottom."))
	cascade.InitiallyOpen = true

	styled := accordion.NewSectionSpec("Per-section styling",
		widget.NewLabel("This section overrides the header\ncolor and corner radius."))
	styled.Style.HeaderColor = color.NRGBA{R: 0x3a, G: 0x6e, B: 0xa5, A: 0xff}
	styled.Style.HeaderTextColor = color.White
	styled.Style.HeaderCornerRadius = accordion.Float32(8)

	noFlip := accordion.NewSectionSpec("Steady chevron",
		widget.NewLabel("The trailing icon normally flips\nwhile open; this section keeps it\npointing down."))
	noFlip.Style.FlipIconWhenOpen = accordion.Bool(false)

	slow := accordion.NewSectionSpec("Slow scroll-into-view",
		widget.NewLabel("After this section opens, the list\nglides it to the middle of the\nviewport over a full second."))
	slow.ScrollMode = accordion.Mode(accordion.ScrollSlow)

	quiet := accordion.NewSectionSpec("No scrolling",
		widget.NewLabel("Opening this section never moves\nthe viewport."))
	quiet.ScrollMode = accordion.Mode(accordion.ScrollNone)

	tall := accordion.NewSectionSpec("Tall content",
		widget.NewLabel("Line 1\nLine 2\nLine 3\nLine 4\nLine 5\nLine 6\nLine 7\nLine 8\nLine 9\nLine 10"))

	return accordion.New(accordion.GlobalConfig{
		MaxOpenSections:             cfg.MaxOpen,
		InitialOpeningSequenceDelay: cfg.StaggerDelay,
		ScrollMode:                  accordion.ScrollFast,
		Logger:                      logger,
	}, intro, cascade, styled, noFlip, slow, quiet, tall)
}
