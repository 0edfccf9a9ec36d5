package ui

import "dtr/internal/domain"

// Viewer displays a campaign report in an interactive TUI
type Viewer interface {
	View(report *domain.CampaignReport) error
}
