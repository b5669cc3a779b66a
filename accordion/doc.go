// Package accordion provides an animated collapsible-section list widget for
// Fyne. Unlike the stock widget.Accordion it animates open/close transitions,
// enforces an oldest-first eviction policy when too many sections are open,
// staggers the initial opening cascade, and scrolls a newly opened section
// into view after its animation settles.
package accordion
