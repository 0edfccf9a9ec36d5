package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"dtr/internal/config"
	"dtr/internal/domain"
	"dtr/internal/storage"
)

// ReportViewer displays a saved campaign report in an interactive TUI
type ReportViewer struct {
	config  *config.Config
	storage storage.Storage
}

// NewReportViewer creates a new ReportViewer
func NewReportViewer(cfg *config.Config, st storage.Storage) *ReportViewer {
	return &ReportViewer{
		config:  cfg,
		storage: st,
	}
}

// View displays the last campaign report in an interactive TUI. With
// no recorded divergence it prints a summary line instead.
func (rv *ReportViewer) View(report *domain.CampaignReport) error {
	if report.Divergence == nil {
		color.Green("✓ No divergence found in the last campaign (%d case(s) run)", report.Meta.CasesRun)
		return nil
	}
	div := report.Divergence

	app := tview.NewApplication()

	// List of the two targets (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i, result := range div.Results {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, result.Path), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	// Stats header (shows the triggering input)
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)
	statsView.SetText(rv.formatInput(div))

	// Captured streams of the selected target (right side)
	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 4, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	headerView.SetText(fmt.Sprintf(
		" Divergence: %s (falsified after %d case(s)) | Use ↑↓ to switch target, → to view details, ← to go back, Ctrl+C to exit ",
		div.CaseName, report.Meta.CasesRun,
	))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(div.Results) {
			detailsView.SetText(rv.formatResult(div.Results[index]))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatInput formats the triggering invocation for the stats header
func (rv *ReportViewer) formatInput(div *domain.DivergenceRecord) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "[cyan]case:[white] [yellow]%s[white]\n", div.CaseName)
	fmt.Fprintf(&builder, "[cyan]stdin:[white] %s\n", tview.Escape(fmt.Sprintf("%q", div.Stdin)))
	fmt.Fprintf(&builder, "[cyan]args:[white] %s\n", tview.Escape(fmt.Sprintf("%q", div.Args)))
	return builder.String()
}

// formatResult formats one target's captured result using tview color tags
func (rv *ReportViewer) formatResult(result domain.ResultRecord) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[blue]%s[white]\n\n", result.Path)

	statusColor := "green"
	if result.Status != 0 {
		statusColor = "red"
	}
	if name := domain.SignalName(result.Status); name != "" {
		fmt.Fprintf(&builder, "[magenta]exit code:[white] [%s]%d(%s)[white]\n\n", statusColor, result.Status, name)
	} else {
		fmt.Fprintf(&builder, "[magenta]exit code:[white] [%s]%d[white]\n\n", statusColor, result.Status)
	}

	fmt.Fprintf(&builder, "[yellow]stdout:[white]\n%s\n\n", tview.Escape(fmt.Sprintf("%q", result.Stdout)))
	fmt.Fprintf(&builder, "[red]stderr:[white]\n%s\n", tview.Escape(fmt.Sprintf("%q", result.Stderr)))

	return builder.String()
}
