package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar creates and manages the campaign progress bar
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a new progress bar. A count of zero means the
// campaign is unbounded and the bar renders as a spinner.
func NewProgressBar(count int) *ProgressBar {
	if count <= 0 {
		count = -1
	}
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(
			color.CyanString("Running cases: ")+
				color.GreenString("[equivalent: 0")+
				" | "+
				color.RedString("diverged: 0]"),
		),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

// Update updates the progress bar with equivalent and diverged counts
func (p *ProgressBar) Update(equivalentCount, divergedCount int) {
	p.bar.Set(equivalentCount + divergedCount)
	p.bar.Describe(
		color.CyanString("Running cases: ") +
			color.GreenString("[equivalent: %d", equivalentCount) +
			" | " +
			color.RedString("diverged: %d]", divergedCount),
	)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}
